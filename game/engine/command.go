package engine

// Command is one unit of work against a rover
type Command interface {
	Execute()
}

// MoveCommand steps the rover forward
type MoveCommand struct {
	rover *Rover
}

// Execute implements Command
func (c MoveCommand) Execute() {
	c.rover.Move()
}

// TurnLeftCommand rotates the rover counter-clockwise
type TurnLeftCommand struct {
	rover *Rover
}

// Execute implements Command
func (c TurnLeftCommand) Execute() {
	c.rover.TurnLeft()
}

// TurnRightCommand rotates the rover clockwise
type TurnRightCommand struct {
	rover *Rover
}

// Execute implements Command
func (c TurnRightCommand) Execute() {
	c.rover.TurnRight()
}

// NewCommand builds the command for token bound to r.
// The second result is false for tokens outside M, L, R.
func NewCommand(token rune, r *Rover) (Command, bool) {
	switch token {
	case TokenMove:
		return MoveCommand{rover: r}, true
	case TokenTurnLeft:
		return TurnLeftCommand{rover: r}, true
	case TokenTurnRight:
		return TurnRightCommand{rover: r}, true
	default:
		return nil, false
	}
}
