// Package engine provides the core simulation logic for the rover simulator.
//
// The engine package implements:
//   - A bounded grid with an append-only set of obstacle cells
//   - The rover state machine: move forward, turn left, turn right
//   - Command objects bound to a rover, one per token
//   - A dispatcher that runs a token sequence and records a step trace
//
// Core Types:
//
// Grid holds the bounds and obstacles. Rover holds position and heading and
// a shared pointer to its Grid. Command is implemented by MoveCommand,
// TurnLeftCommand and TurnRightCommand. Dispatcher maps the tokens M, L and R
// to commands and executes them in order.
//
// Usage:
//
//	grid := engine.NewGrid(10, 10)
//	grid.AddObstacle(2, 2)
//	grid.AddObstacle(3, 5)
//
//	rover := engine.NewRover(0, 0, engine.North, grid)
//	result := engine.Dispatch(rover, "MMRMLM")
//	for _, line := range result.Lines() {
//		fmt.Println(line)
//	}
//
// Movement Rules:
//
// North increases y, South decreases it; East increases x, West decreases it.
// A move into an obstacle or off the grid is ignored and the rover stays put.
// Unknown tokens are skipped. Nothing in this package returns an error.
package engine
