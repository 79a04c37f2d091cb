// Package config provides scenario management for the rover simulator.
//
// The config package handles:
//   - Loading scenarios from JSON or YAML files
//   - Scenario validation through engine.ValidateScenario
//   - Default scenario management
//   - Scenario discovery and listing
//
// Scenario Format:
//
// Scenarios are stored in the configs directory as .json, .yaml or .yml
// files. Each scenario defines:
//   - Grid width and height
//   - A list of obstacle cells ({x, y}); cells outside the grid are allowed
//   - The rover's start cell and heading (N, E, S or W)
//   - An optional default command string such as "MMRMLM"
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific scenario
//	scenario, err := manager.LoadScenario("corridor")
//
//	// Get the default scenario (default.json, or the built-in 10x10 plateau)
//	def := manager.GetDefault()
//
//	// List available scenarios
//	scenarios, err := manager.ListScenarios()
package config
