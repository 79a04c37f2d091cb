package engine

import "sort"

// Grid holds the bounds of the plateau and the set of obstacle cells.
// Bounds are fixed at construction; obstacles are append-only.
type Grid struct {
	width     int
	height    int
	obstacles map[Position]struct{}
}

// NewGrid creates a grid of the given size with no obstacles.
// Width and height must be positive; callers validate before constructing.
func NewGrid(width, height int) *Grid {
	return &Grid{
		width:     width,
		height:    height,
		obstacles: make(map[Position]struct{}),
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

// AddObstacle marks (x, y) as blocked. Adding the same cell twice is a no-op,
// and cells outside the bounds are stored as given.
func (g *Grid) AddObstacle(x, y int) {
	g.obstacles[Position{X: x, Y: y}] = struct{}{}
}

// HasObstacle reports whether (x, y) is blocked
func (g *Grid) HasObstacle(x, y int) bool {
	_, ok := g.obstacles[Position{X: x, Y: y}]
	return ok
}

// InBounds reports whether (x, y) lies in [0,width) x [0,height)
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// ObstacleCount returns the number of distinct obstacle cells
func (g *Grid) ObstacleCount() int {
	return len(g.obstacles)
}

// Obstacles returns a copy of the obstacle set ordered by y, then x
func (g *Grid) Obstacles() []Position {
	out := make([]Position, 0, len(g.obstacles))
	for p := range g.obstacles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Y != out[j].Y {
			return out[i].Y < out[j].Y
		}
		return out[i].X < out[j].X
	})
	return out
}
