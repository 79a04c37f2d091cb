package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/roversim/game/service"
)

// Server exposes the rover service as MCP tools
type Server struct {
	rovers    service.RoverService
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server backed by the rover service
func NewServer(rovers service.RoverService, version string) *Server {
	s := &Server{
		rovers: rovers,
	}

	s.initMCPServer(version)
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer(version string) {
	s.mcpServer = server.NewMCPServer(
		"Rover Simulator",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Rover Simulator - MCP Interface

A single rover drives on a bounded grid with fixed obstacles.

AVAILABLE TOOLS:
- rover_status: Current position, heading, grid map and status report
- execute_commands: Run a command string made of M (move), L (turn left), R (turn right)
- reset_rover: Put the rover back at the scenario's start
- load_scenario: Switch to another scenario
- list_scenarios: List scenarios in the config directory
- command_history: Steps executed since the last load or reset
- rover_instructions: Movement rules

NOTE: Blocked moves and unknown characters are ignored, never reported as errors.`),
	)

	s.registerTools()
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "rover_status",
		Description: "Get the rover's position, heading and the grid map",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleStatus)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "execute_commands",
		Description: "Execute a sequence of rover commands in order",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"commands": map[string]interface{}{
					"type":        "string",
					"description": "Command characters: M moves forward, L turns left, R turns right. Other characters are skipped.",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset the rover to its start before executing (optional)",
				},
			},
			Required: []string{"commands"},
		},
	}, s.handleExecute)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_rover",
		Description: "Reset the rover to the scenario's start placement and clear history",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleReset)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "load_scenario",
		Description: "Load a scenario by id and start a new simulation",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"name": map[string]interface{}{
					"type":        "string",
					"description": "Scenario id from list_scenarios (empty for the default)",
				},
			},
		},
	}, s.handleLoadScenario)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_scenarios",
		Description: "List available scenarios",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListScenarios)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "command_history",
		Description: "List the steps executed since the last load or reset",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "rover_instructions",
		Description: "Get the movement rules of the simulator",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleInstructions)
}

// GetMCPServer returns the underlying MCP server
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the input closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.rovers.Status(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(formatSimulationInfo(info)), nil
}

func (s *Server) handleExecute(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	commands, ok := args["commands"].(string)
	if !ok {
		return mcp.NewToolResultError("commands must be a string such as \"MMRMLM\""), nil
	}
	reset, _ := args["reset"].(bool)

	execute := s.rovers.Execute
	if reset {
		execute = s.rovers.ResetAndExecute
	}

	result, err := execute(ctx, commands)
	if err != nil {
		return toolError(err), nil
	}

	return mcp.NewToolResultText(formatExecuteResult(result)), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.rovers.Reset(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText("Rover reset to start\n\n" + formatSimulationInfo(info)), nil
}

func (s *Server) handleLoadScenario(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := request.GetArguments()["name"].(string)

	info, err := s.rovers.LoadScenario(ctx, name)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText("Scenario loaded\n\n" + formatSimulationInfo(info)), nil
}

func (s *Server) handleListScenarios(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	scenarios, err := s.rovers.ListScenarios(ctx)
	if err != nil {
		return toolError(err), nil
	}

	if len(scenarios) == 0 {
		return mcp.NewToolResultText("No scenario files found; the built-in default is active."), nil
	}

	var result strings.Builder
	result.WriteString("Available Scenarios:\n\n")
	for _, sc := range scenarios {
		result.WriteString(fmt.Sprintf("• %s (%s)\n", sc.ScenarioID, sc.Name))
		if sc.Description != "" {
			result.WriteString(fmt.Sprintf("  %s\n", sc.Description))
		}
		result.WriteString(fmt.Sprintf("  Grid: %dx%d, Obstacles: %d\n\n", sc.Width, sc.Height, sc.Obstacles))
	}
	return mcp.NewToolResultText(result.String()), nil
}

func (s *Server) handleHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := s.rovers.History(ctx)
	if err != nil {
		return toolError(err), nil
	}
	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Rover Simulator - Rules

COMMANDS:
• M - move one cell forward
• L - turn 90° left  (N → W → S → E → N)
• R - turn 90° right (N → E → S → W → N)
• Any other character is skipped

COORDINATES:
• x grows to the East, y grows to the North
• (0,0) is the south-west corner; valid cells are 0 ≤ x < width, 0 ≤ y < height

MOVEMENT:
• A move onto an obstacle or off the grid is ignored; the rover stays where it is
• Turning always succeeds and never changes position

MAP LEGEND (rover_status):
• ^ > v < - rover facing N, E, S, W
• # - obstacle
• . - free cell`

	return mcp.NewToolResultText(instructions), nil
}

func toolError(err error) *mcp.CallToolResult {
	if service.IsNoSimulation(err) {
		return mcp.NewToolResultError("No simulation loaded. Use load_scenario first.")
	}
	return mcp.NewToolResultError(err.Error())
}
