package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/mcp-training/roversim/game/engine"
)

var (
	ErrNoSimulation = errors.New("no simulation loaded")
)

// RoverService defines all rover-related operations
type RoverService interface {
	// Simulation lifecycle
	LoadScenario(ctx context.Context, name string) (*SimulationInfo, error)
	UseScenario(ctx context.Context, scenario *engine.Scenario) (*SimulationInfo, error)
	Reset(ctx context.Context) (*SimulationInfo, error)

	// Commands
	Execute(ctx context.Context, commands string) (*ExecuteResult, error)
	ResetAndExecute(ctx context.Context, commands string) (*ExecuteResult, error)

	// State
	Status(ctx context.Context) (*SimulationInfo, error)
	History(ctx context.Context) (*HistoryResponse, error)

	// Scenarios
	ListScenarios(ctx context.Context) ([]*ScenarioInfo, error)
}

// ScenarioManager handles scenario loading
type ScenarioManager interface {
	LoadScenario(name string) (*engine.Scenario, error)
	ListScenarios() ([]*ScenarioInfo, error)
	GetDefault() *engine.Scenario
}

// Simulation is the single grid and rover the service drives
type Simulation struct {
	ID             string
	Scenario       *engine.Scenario
	Grid           *engine.Grid
	Rover          *engine.Rover
	Dispatcher     *engine.Dispatcher
	Steps          []engine.Step
	CreatedAt      time.Time
	LastAccessedAt time.Time
}
