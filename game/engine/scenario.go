package engine

import "fmt"

const (
	// Validation constants
	MinGridSize = 1
	MaxGridSize = 1000
)

// Placement is the rover's starting cell and heading
type Placement struct {
	X       int     `json:"x" yaml:"x"`
	Y       int     `json:"y" yaml:"y"`
	Heading Heading `json:"heading" yaml:"heading"`
}

// Scenario describes a grid, its obstacles and the rover's initial placement
type Scenario struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Width       int        `json:"width" yaml:"width"`
	Height      int        `json:"height" yaml:"height"`
	Obstacles   []Position `json:"obstacles" yaml:"obstacles"`
	Start       Placement  `json:"start" yaml:"start"`
	Commands    string     `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// ValidateScenario checks a scenario can be built into a valid grid and rover.
// Obstacles outside the grid are allowed; they can never be reached.
func ValidateScenario(s *Scenario) error {
	if s == nil {
		return fmt.Errorf("scenario validation: scenario is nil")
	}
	if s.Name == "" {
		return fmt.Errorf("scenario validation: name is required")
	}

	if s.Width < MinGridSize || s.Width > MaxGridSize {
		return fmt.Errorf("scenario validation: width must be between %d and %d, got %d", MinGridSize, MaxGridSize, s.Width)
	}
	if s.Height < MinGridSize || s.Height > MaxGridSize {
		return fmt.Errorf("scenario validation: height must be between %d and %d, got %d", MinGridSize, MaxGridSize, s.Height)
	}

	if !s.Start.Heading.Valid() {
		return fmt.Errorf("scenario validation: start heading must be one of N, E, S, W, got %q", s.Start.Heading)
	}
	if s.Start.X < 0 || s.Start.X >= s.Width || s.Start.Y < 0 || s.Start.Y >= s.Height {
		return fmt.Errorf("scenario validation: start (%d, %d) is outside the %dx%d grid", s.Start.X, s.Start.Y, s.Width, s.Height)
	}
	for _, o := range s.Obstacles {
		if o.X == s.Start.X && o.Y == s.Start.Y {
			return fmt.Errorf("scenario validation: start (%d, %d) is on an obstacle", s.Start.X, s.Start.Y)
		}
	}

	return nil
}

// OutOfBoundsObstacles returns the obstacles that lie outside the grid
func (s *Scenario) OutOfBoundsObstacles() []Position {
	var out []Position
	for _, o := range s.Obstacles {
		if o.X < 0 || o.X >= s.Width || o.Y < 0 || o.Y >= s.Height {
			out = append(out, o)
		}
	}
	return out
}

// Build creates the grid and a rover at the start placement
func (s *Scenario) Build() (*Grid, *Rover) {
	grid := NewGrid(s.Width, s.Height)
	for _, o := range s.Obstacles {
		grid.AddObstacle(o.X, o.Y)
	}
	return grid, NewRover(s.Start.X, s.Start.Y, s.Start.Heading, grid)
}

// DefaultScenario returns the built-in 10x10 scenario
func DefaultScenario() *Scenario {
	return &Scenario{
		Name:        "default",
		Description: "10x10 plateau with two obstacles, rover at the origin facing north",
		Width:       10,
		Height:      10,
		Obstacles: []Position{
			{X: 2, Y: 2},
			{X: 3, Y: 5},
		},
		Start:    Placement{X: 0, Y: 0, Heading: North},
		Commands: "MMRMLM",
	}
}
