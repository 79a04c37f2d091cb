package engine

import "fmt"

// Heading is the compass direction the rover faces
type Heading string

const (
	North Heading = "N"
	East  Heading = "E"
	South Heading = "S"
	West  Heading = "W"
)

// Command tokens accepted by the dispatcher
const (
	TokenMove      = 'M'
	TokenTurnLeft  = 'L'
	TokenTurnRight = 'R'
)

// Position represents x,y coordinates
type Position struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String renders the position as "(x, y)"
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// State is a snapshot of the rover: position plus heading
type State struct {
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Heading Heading `json:"heading"`
}

// Position returns the coordinate part of the state
func (s State) Position() Position {
	return Position{X: s.X, Y: s.Y}
}

// String renders the state as the "(x, y, H)" triple
func (s State) String() string {
	return fmt.Sprintf("(%d, %d, %s)", s.X, s.Y, s.Heading)
}

// Step records one executed command and the state around it
type Step struct {
	Index  int    `json:"index"`
	Token  string `json:"token"`
	Before State  `json:"before"`
	After  State  `json:"after"`
	Moved  bool   `json:"moved"`
}

// Blocked reports whether the step was a move that left the rover in place
func (s Step) Blocked() bool {
	return s.Token == string(TokenMove) && !s.Moved
}
