package engine

import (
	"strings"
	"testing"
)

func createTestRover(x, y int, heading Heading) *Rover {
	grid := NewGrid(10, 10)
	grid.AddObstacle(2, 2)
	grid.AddObstacle(3, 5)
	return NewRover(x, y, heading, grid)
}

func TestIsValidMove(t *testing.T) {
	rover := createTestRover(0, 0, North)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"origin", 0, 0, true},
		{"far corner", 9, 9, true},
		{"obstacle", 2, 2, false},
		{"second obstacle", 3, 5, false},
		{"negative x", -1, 0, false},
		{"negative y", 0, -1, false},
		{"x at width", 10, 0, false},
		{"y at height", 0, 10, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := rover.IsValidMove(test.x, test.y)
			if result != test.expected {
				t.Errorf("IsValidMove(%d, %d): expected %v, got %v", test.x, test.y, test.expected, result)
			}
		})
	}
}

func TestMove_DirectionMapping(t *testing.T) {
	tests := []struct {
		heading Heading
		deltaX  int
		deltaY  int
	}{
		{North, 0, 1},
		{South, 0, -1},
		{East, 1, 0},
		{West, -1, 0},
	}

	for _, test := range tests {
		t.Run(string(test.heading), func(t *testing.T) {
			rover := createTestRover(5, 5, test.heading)
			rover.Move()

			expected := Position{X: 5 + test.deltaX, Y: 5 + test.deltaY}
			if rover.Position() != expected {
				t.Errorf("Move %s: expected %v, got %v", test.heading, expected, rover.Position())
			}
			if rover.Heading() != test.heading {
				t.Errorf("Move %s changed heading to %s", test.heading, rover.Heading())
			}
		})
	}
}

func TestMove_BlockedByObstacle(t *testing.T) {
	// (2,1) facing north points at the obstacle on (2,2)
	rover := createTestRover(2, 1, North)
	rover.Move()

	if rover.Position() != (Position{X: 2, Y: 1}) {
		t.Errorf("Position should not change when hitting obstacle, got %v", rover.Position())
	}
	if rover.Heading() != North {
		t.Errorf("Heading should not change, got %s", rover.Heading())
	}
}

func TestMove_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		heading Heading
	}{
		{"origin facing west", 0, 0, West},
		{"origin facing south", 0, 0, South},
		{"top edge facing north", 4, 9, North},
		{"right edge facing east", 9, 4, East},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rover := createTestRover(test.x, test.y, test.heading)
			rover.Move()

			if rover.Position() != (Position{X: test.x, Y: test.y}) {
				t.Errorf("Expected rover to stay at (%d,%d), got %v", test.x, test.y, rover.Position())
			}
		})
	}
}

func TestMove_RepeatedBlockedMovesAreNoOps(t *testing.T) {
	rover := createTestRover(0, 0, South)
	for i := 0; i < 5; i++ {
		rover.Move()
	}
	if rover.State() != (State{X: 0, Y: 0, Heading: South}) {
		t.Errorf("Unexpected state after blocked moves: %v", rover.State())
	}
}

func TestMove_OutOfBoundsObstacleIsUnreachable(t *testing.T) {
	grid := NewGrid(3, 3)
	grid.AddObstacle(5, 5)
	grid.AddObstacle(-1, 0)
	rover := NewRover(0, 0, West, grid)

	rover.Move()
	if rover.Position() != (Position{X: 0, Y: 0}) {
		t.Errorf("Expected rover to stay at origin, got %v", rover.Position())
	}

	rover.TurnRight()
	rover.Move()
	if rover.Position() != (Position{X: 0, Y: 1}) {
		t.Errorf("Expected rover to reach (0,1), got %v", rover.Position())
	}
}

func TestObstacleAddedAfterPlacementIsSeen(t *testing.T) {
	grid := NewGrid(5, 5)
	rover := NewRover(0, 0, North, grid)
	grid.AddObstacle(0, 1)

	rover.Move()
	if rover.Position() != (Position{X: 0, Y: 0}) {
		t.Errorf("Rover should observe obstacles added to its grid, got %v", rover.Position())
	}
}

func TestTurnLeft_Cycle(t *testing.T) {
	expected := []Heading{West, South, East, North}
	rover := createTestRover(0, 0, North)

	for i, want := range expected {
		rover.TurnLeft()
		if rover.Heading() != want {
			t.Errorf("TurnLeft #%d: expected %s, got %s", i+1, want, rover.Heading())
		}
	}
}

func TestTurnRight_Cycle(t *testing.T) {
	expected := []Heading{East, South, West, North}
	rover := createTestRover(0, 0, North)

	for i, want := range expected {
		rover.TurnRight()
		if rover.Heading() != want {
			t.Errorf("TurnRight #%d: expected %s, got %s", i+1, want, rover.Heading())
		}
	}
}

func TestTurns_AreInverses(t *testing.T) {
	for _, h := range []Heading{North, East, South, West} {
		t.Run(string(h), func(t *testing.T) {
			rover := createTestRover(1, 1, h)
			rover.TurnRight()
			rover.TurnLeft()
			if rover.Heading() != h {
				t.Errorf("right then left: expected %s, got %s", h, rover.Heading())
			}

			rover.TurnLeft()
			rover.TurnRight()
			if rover.Heading() != h {
				t.Errorf("left then right: expected %s, got %s", h, rover.Heading())
			}

			if rover.Position() != (Position{X: 1, Y: 1}) {
				t.Errorf("turns should not move the rover, got %v", rover.Position())
			}
		})
	}
}

func TestTurns_FourQuarterTurnsIsIdentity(t *testing.T) {
	for _, h := range []Heading{North, East, South, West} {
		left := createTestRover(0, 0, h)
		right := createTestRover(0, 0, h)
		for i := 0; i < 4; i++ {
			left.TurnLeft()
			right.TurnRight()
		}
		if left.Heading() != h {
			t.Errorf("four left turns from %s ended at %s", h, left.Heading())
		}
		if right.Heading() != h {
			t.Errorf("four right turns from %s ended at %s", h, right.Heading())
		}
	}
}

func TestStatusReport(t *testing.T) {
	rover := createTestRover(1, 3, North)

	report := rover.StatusReport()
	expected := "Rover is at (1, 3) facing N. No obstacles detected."
	if report != expected {
		t.Errorf("Expected %q, got %q", expected, report)
	}
}

func TestStatusReport_FixedSentenceNextToObstacle(t *testing.T) {
	// (2,1) is directly south of an obstacle; the report text does not change
	rover := createTestRover(2, 1, North)
	if !strings.HasSuffix(rover.StatusReport(), "No obstacles detected.") {
		t.Errorf("Unexpected report: %s", rover.StatusReport())
	}
}
