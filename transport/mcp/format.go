package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/roversim/game/engine"
	"github.com/wricardo/mcp-training/roversim/game/service"
)

// Formatting helpers

func formatSimulationInfo(info *service.SimulationInfo) string {
	if info == nil {
		return "No simulation available"
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Simulation: %s\nScenario: %s\nGrid: %dx%d | Obstacles: %d | Steps: %d\n",
		info.ID, info.ScenarioName, info.Width, info.Height, len(info.Obstacles), info.TotalSteps))
	result.WriteString(fmt.Sprintf("Position: %s\n\n", info.State))

	for _, row := range info.Map {
		result.WriteString(row + "\n")
	}
	if len(info.Map) > 0 {
		result.WriteString("\n")
	}

	result.WriteString(info.Report)
	return result.String()
}

func formatExecuteResult(res *service.ExecuteResult) string {
	r := res.Result

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Executed %d command(s)", len(r.Steps)))
	if r.Skipped > 0 {
		result.WriteString(fmt.Sprintf(", skipped %d unknown character(s)", r.Skipped))
	}
	if res.BlockedMoves > 0 {
		result.WriteString(fmt.Sprintf(", %d move(s) blocked", res.BlockedMoves))
	}
	result.WriteString("\n\n")

	for _, step := range r.Steps {
		result.WriteString(formatStepLine(step) + "\n")
	}
	if len(r.Steps) > 0 {
		result.WriteString("\n")
	}

	for _, line := range r.Lines() {
		result.WriteString(line + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

func formatHistory(history *service.HistoryResponse) string {
	if len(history.Steps) == 0 {
		return fmt.Sprintf("Simulation %s: no commands executed yet", history.SimulationID)
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Simulation %s: %d step(s)\n\n", history.SimulationID, history.TotalSteps))
	for _, step := range history.Steps {
		result.WriteString(formatStepLine(step) + "\n")
	}
	return strings.TrimRight(result.String(), "\n")
}

func formatStepLine(step engine.Step) string {
	line := fmt.Sprintf("%3d. %s %s → %s", step.Index, step.Token, step.Before, step.After)
	if step.Blocked() {
		line += " (blocked)"
	}
	return line
}
