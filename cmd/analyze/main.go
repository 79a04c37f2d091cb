// Command analyze prints quick, human-readable heuristics about the scenario
// files in the project's configs directory. It summarizes dimensions and
// obstacle density, flags obstacles that can never be hit, counts the open
// cells around the start, and dry-runs each scenario's default commands to
// show where the rover ends up and how many moves were blocked.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/wricardo/mcp-training/roversim/game/config"
	"github.com/wricardo/mcp-training/roversim/game/engine"
)

// Analysis holds the heuristics computed for one scenario.
type Analysis struct {
	Name           string
	Width          int
	Height         int
	Obstacles      int
	OutOfBounds    []engine.Position
	Density        float64
	OpenNeighbours int
	Commands       string
	Result         engine.Result
}

func main() {
	configDir := "configs"
	if len(os.Args) > 1 {
		configDir = os.Args[1]
	}

	var files []string
	for _, ext := range config.Extensions {
		matches, err := filepath.Glob(filepath.Join(configDir, "*"+ext))
		if err != nil {
			fmt.Printf("Error listing %s: %v\n", configDir, err)
			os.Exit(1)
		}
		files = append(files, matches...)
	}
	sort.Strings(files)

	for _, file := range files {
		fmt.Printf("\n=== Analyzing %s ===\n", filepath.Base(file))
		scenario, err := config.LoadFile(file)
		if err != nil {
			fmt.Printf("Error loading scenario: %v\n", err)
			continue
		}
		printAnalysis(os.Stdout, analyzeScenario(scenario))
	}
}

// analyzeScenario computes the heuristics for a valid scenario
func analyzeScenario(scenario *engine.Scenario) Analysis {
	grid, rover := scenario.Build()

	a := Analysis{
		Name:        scenario.Name,
		Width:       scenario.Width,
		Height:      scenario.Height,
		OutOfBounds: scenario.OutOfBoundsObstacles(),
		Commands:    scenario.Commands,
	}

	for _, o := range grid.Obstacles() {
		if grid.InBounds(o.X, o.Y) {
			a.Obstacles++
		}
	}
	a.Density = float64(a.Obstacles) / float64(a.Width*a.Height)

	for _, h := range []engine.Heading{engine.North, engine.East, engine.South, engine.West} {
		dx, dy := h.Delta()
		x, y := scenario.Start.X+dx, scenario.Start.Y+dy
		if grid.InBounds(x, y) && !grid.HasObstacle(x, y) {
			a.OpenNeighbours++
		}
	}

	a.Result = engine.Dispatch(rover, scenario.Commands)
	return a
}

func printAnalysis(w io.Writer, a Analysis) {
	fmt.Fprintf(w, "Name: %s\n", a.Name)
	fmt.Fprintf(w, "Grid Size: %d x %d\n", a.Width, a.Height)
	fmt.Fprintf(w, "Obstacles: %d (%.1f%% of cells)\n", a.Obstacles, a.Density*100)
	fmt.Fprintf(w, "Start: %s\n", a.Result.Initial)

	if len(a.OutOfBounds) > 0 {
		fmt.Fprintf(w, "⚠️  WARNING: %d obstacle(s) lie outside the grid and can never block a move\n", len(a.OutOfBounds))
		for i, p := range a.OutOfBounds {
			if i < 5 { // Show first 5 out-of-bounds obstacles
				fmt.Fprintf(w, "   Outside: %s\n", p)
			}
		}
		if len(a.OutOfBounds) > 5 {
			fmt.Fprintf(w, "   ... and %d more\n", len(a.OutOfBounds)-5)
		}
	}

	switch a.OpenNeighbours {
	case 0:
		fmt.Fprintf(w, "⚠️  CRITICAL: rover is boxed in, every move will be blocked\n")
	default:
		fmt.Fprintf(w, "✅ %d open cell(s) next to the start\n", a.OpenNeighbours)
	}

	if a.Commands == "" {
		fmt.Fprintf(w, "No default commands\n")
		return
	}

	final := a.Result.Final
	distance := abs(final.X-a.Result.Initial.X) + abs(final.Y-a.Result.Initial.Y)
	fmt.Fprintf(w, "Default commands: %s (%d step(s), %d skipped)\n", a.Commands, len(a.Result.Steps), a.Result.Skipped)
	fmt.Fprintf(w, "Ends at: %s, %d cell(s) from the start\n", final, distance)
	if blocked := a.Result.BlockedMoves(); blocked > 0 {
		fmt.Fprintf(w, "⚠️  %d move(s) blocked\n", blocked)
	} else {
		fmt.Fprintf(w, "✅ No moves blocked\n")
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
