// Package service provides the business logic layer for the rover simulator.
//
// The service package implements:
//   - Scenario loading through a ScenarioManager
//   - A single active simulation (grid, rover, dispatcher)
//   - Serialized command execution and cumulative step history
//   - Reset to the scenario's initial placement
//   - Reset followed by a command batch under a single lock
//
// Core Interfaces:
//
// RoverService is the main service interface used by the CLI and the MCP
// tool surface. ScenarioManager loads and lists scenarios; config.Manager
// implements it.
//
// Usage:
//
//	scenarios, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//	roverService := service.NewRoverService(scenarios)
//
//	result, err := roverService.Execute(ctx, "MMRMLM")
//
// Concurrency:
//
// The engine itself is not safe for concurrent use. The service holds a
// mutex around every operation so callers see one ordered command stream.
// A batch that has started always runs to completion; the context is only
// checked before it begins.
package service
