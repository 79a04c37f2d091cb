// Command validate provides a small CLI that validates scenario files
// (.json, .yaml, .yml) in a configs directory. It checks:
//   - File decoding and required fields
//   - Grid dimensions within the supported range
//   - Start heading is one of N, E, S, W
//   - Start cell is inside the grid and not on an obstacle
//
// Obstacles outside the grid, duplicate obstacles and unknown characters in
// the default command string are reported as warnings; they never make a
// scenario invalid.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wricardo/mcp-training/roversim/game/config"
	"github.com/wricardo/mcp-training/roversim/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
type ValidationResult struct {
	File     string
	Valid    bool
	Errors   []string
	Warnings []string
	Info     []string
}

// validateScenario loads and validates a single scenario file, collecting
// every problem rather than stopping at the first one.
func validateScenario(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	scenario, err := config.Decode(data, filepath.Ext(filePath))
	if err != nil {
		result.Valid = false
		format := strings.ToUpper(strings.TrimPrefix(filepath.Ext(filePath), "."))
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid %s: %v", format, err))
		return result
	}

	fail := func(format string, args ...interface{}) {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf(format, args...))
	}

	if scenario.Name == "" {
		fail("Name is required")
	}
	if scenario.Width < engine.MinGridSize || scenario.Width > engine.MaxGridSize {
		fail("Width must be between %d and %d, got %d", engine.MinGridSize, engine.MaxGridSize, scenario.Width)
	}
	if scenario.Height < engine.MinGridSize || scenario.Height > engine.MaxGridSize {
		fail("Height must be between %d and %d, got %d", engine.MinGridSize, engine.MaxGridSize, scenario.Height)
	}
	if !scenario.Start.Heading.Valid() {
		fail("Start heading must be N, E, S or W, got %q", scenario.Start.Heading)
	}
	if scenario.Start.X < 0 || scenario.Start.X >= scenario.Width || scenario.Start.Y < 0 || scenario.Start.Y >= scenario.Height {
		fail("Start (%d,%d) is outside the %dx%d grid", scenario.Start.X, scenario.Start.Y, scenario.Width, scenario.Height)
	}

	start := engine.Position{X: scenario.Start.X, Y: scenario.Start.Y}
	seen := make(map[engine.Position]bool)
	for _, o := range scenario.Obstacles {
		if seen[o] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Duplicate obstacle at (%d,%d)", o.X, o.Y))
			continue
		}
		if o == start {
			fail("Start (%d,%d) is on an obstacle", o.X, o.Y)
		}
		seen[o] = true
	}

	if !result.Valid {
		return result
	}

	for _, o := range scenario.OutOfBoundsObstacles() {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Obstacle at (%d,%d) is outside the grid and unreachable", o.X, o.Y))
	}

	connectivity := validateConnectivity(scenario)
	result.Warnings = append(result.Warnings, connectivity.Warnings...)
	result.Info = append(result.Info, connectivity.Info...)

	unknown := 0
	for _, c := range scenario.Commands {
		if _, ok := engine.NewCommand(c, nil); !ok {
			unknown++
		}
	}
	if unknown > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Default commands contain %d character(s) that will be skipped", unknown))
	}

	result.Info = append([]string{
		fmt.Sprintf("✓ Name: %s", scenario.Name),
		fmt.Sprintf("✓ Grid: %dx%d", scenario.Width, scenario.Height),
		fmt.Sprintf("✓ Obstacles: %d", len(seen)),
		fmt.Sprintf("✓ Start: (%d,%d) facing %s", scenario.Start.X, scenario.Start.Y, scenario.Start.Heading),
	}, result.Info...)

	return result
}

// validateConnectivity flood-fills the grid from the start cell and reports
// how many obstacle-free cells the rover can reach. Scenario must already be
// structurally valid.
func validateConnectivity(scenario *engine.Scenario) ValidationResult {
	result := ValidationResult{Valid: true, Errors: []string{}}

	grid, _ := scenario.Build()
	free := 0
	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			if !grid.HasObstacle(x, y) {
				free++
			}
		}
	}

	start := engine.Position{X: scenario.Start.X, Y: scenario.Start.Y}
	visited := map[engine.Position]bool{start: true}
	queue := []engine.Position{start}
	headings := []engine.Heading{engine.North, engine.East, engine.South, engine.West}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, h := range headings {
			dx, dy := h.Delta()
			next := engine.Position{X: current.X + dx, Y: current.Y + dy}
			if visited[next] || !grid.InBounds(next.X, next.Y) || grid.HasObstacle(next.X, next.Y) {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	result.Info = append(result.Info, fmt.Sprintf("✓ Reachable cells: %d/%d", len(visited), free))
	if len(visited) < free {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("%d free cell(s) are walled off from the start", free-len(visited)))
	}
	if len(visited) == 1 {
		result.Warnings = append(result.Warnings, "Rover is boxed in and can never move")
	}
	return result
}

// findScenarioFiles lists every scenario file in dir
func findScenarioFiles(dir string) ([]string, error) {
	var files []string
	for _, ext := range config.Extensions {
		matches, err := filepath.Glob(filepath.Join(dir, "*"+ext))
		if err != nil {
			return nil, err
		}
		files = append(files, matches...)
	}
	return files, nil
}

// main scans the configs directory (or the first argument) for scenario files
// and validates each one, printing a concise report and exiting with non-zero
// status if any are invalid.
func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	files, err := findScenarioFiles(configDir)
	if err != nil {
		fmt.Printf("Error finding scenario files: %v\n", err)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateScenario(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Info {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				fmt.Println("  ❌ " + err)
			}
		}
		for _, w := range result.Warnings {
			fmt.Println("  ⚠️  " + w)
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All scenarios are valid!")
	} else {
		fmt.Println("❌ Some scenarios have errors")
		os.Exit(1)
	}
}
