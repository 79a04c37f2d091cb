package service

import (
	"time"

	"github.com/wricardo/mcp-training/roversim/game/engine"
)

// SimulationInfo provides information about the active simulation
type SimulationInfo struct {
	ID             string            `json:"id"`
	ScenarioName   string            `json:"scenario_name"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	State          engine.State      `json:"state"`
	Report         string            `json:"report"`
	Width          int               `json:"width"`
	Height         int               `json:"height"`
	Obstacles      []engine.Position `json:"obstacles"`
	TotalSteps     int               `json:"total_steps"`
	Map            []string          `json:"map"`
}

// ExecuteResult contains the result of one command batch
type ExecuteResult struct {
	SimulationID string        `json:"simulation_id"`
	Result       engine.Result `json:"result"`
	BlockedMoves int           `json:"blocked_moves"`
	TotalSteps   int           `json:"total_steps"`
}

// HistoryResponse lists every step executed since the last load or reset
type HistoryResponse struct {
	SimulationID string        `json:"simulation_id"`
	Steps        []engine.Step `json:"steps"`
	TotalSteps   int           `json:"total_steps"`
}

// ScenarioInfo provides information about a scenario file
type ScenarioInfo struct {
	Filename    string `json:"filename"`
	ScenarioID  string `json:"scenario_id"` // The identifier to pass to LoadScenario
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Obstacles   int    `json:"obstacles"`
}
