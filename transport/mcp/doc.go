// Package mcp provides a Model Context Protocol server for the rover simulator.
//
// The mcp package implements:
//   - MCP tool definitions for rover operations
//   - Direct calls into service.RoverService (no HTTP hop)
//   - Plain-text formatting of state, step traces and history
//   - Stdio transport for local MCP clients
//
// MCP Tools:
//
// The package exposes the following tools:
//   - rover_status: position, heading, map and status report
//   - execute_commands: run an M/L/R command string, optionally after a reset
//   - reset_rover: return to the scenario's start placement
//   - load_scenario: switch scenarios
//   - list_scenarios: list scenario files
//   - command_history: steps executed since the last load or reset
//   - rover_instructions: movement rules
//
// Service failures are returned as tool results with IsError set, so the
// calling agent sees the message instead of a protocol error.
//
// Usage:
//
//	srv := mcp.NewServer(roverService, Version)
//	if err := srv.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
