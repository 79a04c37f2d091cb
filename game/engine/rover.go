package engine

import "fmt"

// Rover is a single agent on a Grid. It reads the grid's bounds and obstacles
// but never mutates them.
type Rover struct {
	x       int
	y       int
	heading Heading
	grid    *Grid
}

// NewRover places a rover at (x, y) facing heading on grid.
// The caller guarantees the initial cell is in bounds and free.
func NewRover(x, y int, heading Heading, grid *Grid) *Rover {
	return &Rover{
		x:       x,
		y:       y,
		heading: heading,
		grid:    grid,
	}
}

// Move steps one cell forward. Blocked moves leave the rover where it is.
func (r *Rover) Move() {
	dx, dy := r.heading.Delta()
	newX, newY := r.x+dx, r.y+dy

	if !r.IsValidMove(newX, newY) {
		return
	}

	r.x = newX
	r.y = newY
}

// TurnLeft rotates the heading counter-clockwise: N, W, S, E
func (r *Rover) TurnLeft() {
	r.heading = r.heading.Left()
}

// TurnRight rotates the heading clockwise: N, E, S, W
func (r *Rover) TurnRight() {
	r.heading = r.heading.Right()
}

// IsValidMove checks if the rover may occupy (x, y)
func (r *Rover) IsValidMove(x, y int) bool {
	if r.grid.HasObstacle(x, y) {
		return false
	}
	return r.grid.InBounds(x, y)
}

// StatusReport describes the rover's position and heading.
// The trailing sentence is fixed text; it does not inspect the grid.
func (r *Rover) StatusReport() string {
	return fmt.Sprintf("Rover is at (%d, %d) facing %s. No obstacles detected.", r.x, r.y, r.heading)
}

// State returns a snapshot of the rover
func (r *Rover) State() State {
	return State{X: r.x, Y: r.y, Heading: r.heading}
}

// Position returns the current coordinates
func (r *Rover) Position() Position {
	return Position{X: r.x, Y: r.y}
}

// Heading returns the current heading
func (r *Rover) Heading() Heading {
	return r.heading
}

// Grid returns the grid the rover moves on
func (r *Rover) Grid() *Grid {
	return r.grid
}
