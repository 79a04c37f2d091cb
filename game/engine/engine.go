package engine

import "fmt"

// Result summarizes one dispatched command sequence
type Result struct {
	Initial State  `json:"initial"`
	Final   State  `json:"final"`
	Steps   []Step `json:"steps"`
	Skipped int    `json:"skipped"`
	Report  string `json:"report"`
}

// FinalPosition renders the final state line
func (r Result) FinalPosition() string {
	return fmt.Sprintf("Final Position: %s", r.Final)
}

// Lines returns the two output lines: final state and status report
func (r Result) Lines() []string {
	return []string{r.FinalPosition(), r.Report}
}

// BlockedMoves counts move commands that did not change the position
func (r Result) BlockedMoves() int {
	n := 0
	for _, s := range r.Steps {
		if s.Blocked() {
			n++
		}
	}
	return n
}

// Dispatcher turns command tokens into commands and runs them against one rover
type Dispatcher struct {
	rover *Rover
}

// NewDispatcher creates a dispatcher bound to r
func NewDispatcher(r *Rover) *Dispatcher {
	return &Dispatcher{rover: r}
}

// Rover returns the rover commands are applied to
func (d *Dispatcher) Rover() *Rover {
	return d.rover
}

// Run executes tokens left to right. Tokens other than M, L and R are skipped.
func (d *Dispatcher) Run(tokens string) Result {
	result := Result{
		Initial: d.rover.State(),
		Steps:   []Step{},
	}

	for _, token := range tokens {
		cmd, ok := NewCommand(token, d.rover)
		if !ok {
			result.Skipped++
			continue
		}

		before := d.rover.State()
		cmd.Execute()
		after := d.rover.State()

		result.Steps = append(result.Steps, Step{
			Index:  len(result.Steps) + 1,
			Token:  string(token),
			Before: before,
			After:  after,
			Moved:  before.Position() != after.Position(),
		})
	}

	result.Final = d.rover.State()
	result.Report = d.rover.StatusReport()
	return result
}

// Dispatch runs tokens against r with a fresh dispatcher
func Dispatch(r *Rover, tokens string) Result {
	return NewDispatcher(r).Run(tokens)
}
