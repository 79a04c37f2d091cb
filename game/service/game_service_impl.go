package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wricardo/mcp-training/roversim/game/engine"
)

// roverServiceImpl implements the RoverService interface
type roverServiceImpl struct {
	scenarios ScenarioManager
	sim       *Simulation
	mu        sync.RWMutex
}

// NewRoverService creates a rover service with the manager's default scenario loaded
func NewRoverService(scenarios ScenarioManager) RoverService {
	s := &roverServiceImpl{
		scenarios: scenarios,
	}
	if def := scenarios.GetDefault(); def != nil {
		if sim, err := newSimulation(def); err == nil {
			s.sim = sim
		} else {
			log.Printf("Warning: default scenario %q is invalid: %v", def.Name, err)
		}
	}
	return s
}

// newSimulation builds a fresh grid and rover from scenario
func newSimulation(scenario *engine.Scenario) (*Simulation, error) {
	if err := engine.ValidateScenario(scenario); err != nil {
		return nil, err
	}

	grid, rover := scenario.Build()
	now := time.Now()
	return &Simulation{
		ID:             uuid.NewString(),
		Scenario:       scenario,
		Grid:           grid,
		Rover:          rover,
		Dispatcher:     engine.NewDispatcher(rover),
		Steps:          []engine.Step{},
		CreatedAt:      now,
		LastAccessedAt: now,
	}, nil
}

// LoadScenario replaces the active simulation with one built from a named scenario
func (s *roverServiceImpl) LoadScenario(ctx context.Context, name string) (*SimulationInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var scenario *engine.Scenario
	if name == "" {
		scenario = s.scenarios.GetDefault()
		if scenario == nil {
			return nil, fmt.Errorf("no default scenario configured")
		}
	} else {
		var err error
		scenario, err = s.scenarios.LoadScenario(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario %s: %w", name, err)
		}
	}

	return s.UseScenario(ctx, scenario)
}

// UseScenario replaces the active simulation with one built from scenario
func (s *roverServiceImpl) UseScenario(ctx context.Context, scenario *engine.Scenario) (*SimulationInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sim, err := newSimulation(scenario)
	if err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sim = sim
	log.Printf("Loaded scenario %q as simulation %s", scenario.Name, sim.ID)
	return s.infoLocked(), nil
}

// Reset rebuilds the grid and rover from the active scenario and clears history
func (s *roverServiceImpl) Reset(ctx context.Context) (*SimulationInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resetLocked(); err != nil {
		return nil, err
	}
	return s.infoLocked(), nil
}

// resetLocked rebuilds the active simulation. Callers hold s.mu.
func (s *roverServiceImpl) resetLocked() error {
	if s.sim == nil {
		return ErrNoSimulation
	}

	sim, err := newSimulation(s.sim.Scenario)
	if err != nil {
		return fmt.Errorf("failed to reset simulation: %w", err)
	}
	// Keep the identity of the run across resets
	sim.ID = s.sim.ID
	sim.CreatedAt = s.sim.CreatedAt
	s.sim = sim
	return nil
}

// Execute runs a command token sequence against the rover
func (s *roverServiceImpl) Execute(ctx context.Context, commands string) (*ExecuteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.executeLocked(commands)
}

// ResetAndExecute resets the rover and runs commands under one lock, so no
// other call can run between the reset and the batch
func (s *roverServiceImpl) ResetAndExecute(ctx context.Context, commands string) (*ExecuteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.resetLocked(); err != nil {
		return nil, err
	}
	return s.executeLocked(commands)
}

// executeLocked runs commands against the active rover. Callers hold s.mu.
func (s *roverServiceImpl) executeLocked(commands string) (*ExecuteResult, error) {
	if s.sim == nil {
		return nil, ErrNoSimulation
	}

	result := s.sim.Dispatcher.Run(commands)

	// Renumber steps so history indices stay cumulative
	offset := len(s.sim.Steps)
	for i := range result.Steps {
		result.Steps[i].Index += offset
	}
	s.sim.Steps = append(s.sim.Steps, result.Steps...)
	s.sim.LastAccessedAt = time.Now()

	return &ExecuteResult{
		SimulationID: s.sim.ID,
		Result:       result,
		BlockedMoves: result.BlockedMoves(),
		TotalSteps:   len(s.sim.Steps),
	}, nil
}

// Status returns the current rover and grid state
func (s *roverServiceImpl) Status(ctx context.Context) (*SimulationInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sim == nil {
		return nil, ErrNoSimulation
	}
	return s.infoLocked(), nil
}

// History returns every step executed since the last load or reset
func (s *roverServiceImpl) History(ctx context.Context) (*HistoryResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sim == nil {
		return nil, ErrNoSimulation
	}

	steps := make([]engine.Step, len(s.sim.Steps))
	copy(steps, s.sim.Steps)
	return &HistoryResponse{
		SimulationID: s.sim.ID,
		Steps:        steps,
		TotalSteps:   len(steps),
	}, nil
}

// ListScenarios returns all scenarios the manager can load
func (s *roverServiceImpl) ListScenarios(ctx context.Context) ([]*ScenarioInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.scenarios.ListScenarios()
}

// infoLocked snapshots the active simulation. Callers hold s.mu.
func (s *roverServiceImpl) infoLocked() *SimulationInfo {
	sim := s.sim
	state := sim.Rover.State()
	return &SimulationInfo{
		ID:             sim.ID,
		ScenarioName:   sim.Scenario.Name,
		CreatedAt:      sim.CreatedAt,
		LastAccessedAt: sim.LastAccessedAt,
		State:          state,
		Report:         sim.Rover.StatusReport(),
		Width:          sim.Grid.Width(),
		Height:         sim.Grid.Height(),
		Obstacles:      sim.Grid.Obstacles(),
		TotalSteps:     len(sim.Steps),
		Map:            engine.RenderGrid(sim.Grid, state),
	}
}

// IsNoSimulation reports whether err means nothing has been loaded yet
func IsNoSimulation(err error) bool {
	return errors.Is(err, ErrNoSimulation)
}
