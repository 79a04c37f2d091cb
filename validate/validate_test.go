package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/roversim/game/engine"
)

func writeScenario(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write scenario: %v", err)
	}
	return path
}

func TestValidateScenario_ValidJSON(t *testing.T) {
	path := writeScenario(t, "valid.json", `{
		"name": "Test Scenario",
		"description": "Test scenario",
		"width": 5,
		"height": 5,
		"obstacles": [{"x": 2, "y": 2}],
		"start": {"x": 0, "y": 0, "heading": "N"},
		"commands": "MMRM"
	}`)

	result := validateScenario(path)
	if !result.Valid {
		t.Errorf("Expected valid scenario, but got errors: %v", result.Errors)
	}
	if result.File != "valid.json" {
		t.Errorf("Expected file name valid.json, got %s", result.File)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", result.Warnings)
	}
	if !containsAny(result.Info, "Reachable cells: 24/24") {
		t.Errorf("Expected reachable cell count in info, got %v", result.Info)
	}
}

func TestValidateScenario_ValidYAML(t *testing.T) {
	path := writeScenario(t, "lane.yaml", "name: Lane\nwidth: 3\nheight: 1\nstart: {x: 0, y: 0, heading: E}\n")

	result := validateScenario(path)
	if !result.Valid {
		t.Errorf("Expected valid scenario, but got errors: %v", result.Errors)
	}
	if !containsAny(result.Info, "Start: (0,0) facing E") {
		t.Errorf("Expected start info, got %v", result.Info)
	}
}

func TestValidateScenario_InvalidJSON(t *testing.T) {
	path := writeScenario(t, "broken.json", `{"name": "test", invalid json}`)

	result := validateScenario(path)
	if result.Valid {
		t.Error("Expected invalid scenario due to bad JSON")
	}
	if !containsAny(result.Errors, "Invalid JSON") {
		t.Errorf("Expected 'Invalid JSON' error, got %v", result.Errors)
	}
}

func TestValidateScenario_MissingFile(t *testing.T) {
	result := validateScenario("/non/existent/file.json")
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !containsAny(result.Errors, "Failed to read file") {
		t.Error("Expected 'Failed to read file' error")
	}
}

func TestValidateScenario_CollectsAllErrors(t *testing.T) {
	path := writeScenario(t, "bad.json", `{
		"width": 0,
		"height": 2000,
		"start": {"x": 0, "y": 0, "heading": "Q"}
	}`)

	result := validateScenario(path)
	if result.Valid {
		t.Fatal("Expected invalid scenario")
	}

	for _, want := range []string{
		"Name is required",
		"Width must be between",
		"Height must be between",
		"Start heading must be N, E, S or W",
		"outside the 0x2000 grid",
	} {
		if !containsAny(result.Errors, want) {
			t.Errorf("Expected %q error, got %v", want, result.Errors)
		}
	}
}

func TestValidateScenario_StartOnObstacle(t *testing.T) {
	path := writeScenario(t, "blocked.json", `{
		"name": "Blocked",
		"width": 3,
		"height": 3,
		"obstacles": [{"x": 1, "y": 1}, {"x": 1, "y": 1}],
		"start": {"x": 1, "y": 1, "heading": "N"}
	}`)

	result := validateScenario(path)
	if result.Valid {
		t.Error("Expected invalid scenario when starting on an obstacle")
	}
	if len(result.Errors) != 1 {
		t.Errorf("Expected exactly one error, got %v", result.Errors)
	}
	if !containsAny(result.Warnings, "Duplicate obstacle at (1,1)") {
		t.Errorf("Expected duplicate obstacle warning, got %v", result.Warnings)
	}
}

func TestValidateScenario_Warnings(t *testing.T) {
	path := writeScenario(t, "warn.yml", `name: Warn
width: 4
height: 1
obstacles:
  - {x: 1, y: 0}
  - {x: 9, y: 9}
start: {x: 0, y: 0, heading: E}
commands: "MXM?"
`)

	result := validateScenario(path)
	if !result.Valid {
		t.Fatalf("Warnings must not invalidate a scenario: %v", result.Errors)
	}

	for _, want := range []string{
		"Obstacle at (9,9) is outside the grid",
		"2 free cell(s) are walled off",
		"boxed in",
		"2 character(s) that will be skipped",
	} {
		if !containsAny(result.Warnings, want) {
			t.Errorf("Expected %q warning, got %v", want, result.Warnings)
		}
	}
}

func TestValidateConnectivity(t *testing.T) {
	tests := []struct {
		name      string
		scenario  engine.Scenario
		reachable string
		warnings  int
	}{
		{
			name: "open grid",
			scenario: engine.Scenario{
				Name: "open", Width: 3, Height: 3,
				Start: engine.Placement{X: 1, Y: 1, Heading: engine.North},
			},
			reachable: "Reachable cells: 9/9",
			warnings:  0,
		},
		{
			name: "wall splits grid",
			scenario: engine.Scenario{
				Name: "split", Width: 3, Height: 2,
				Obstacles: []engine.Position{{X: 1, Y: 0}, {X: 1, Y: 1}},
				Start:     engine.Placement{X: 0, Y: 0, Heading: engine.East},
			},
			reachable: "Reachable cells: 2/4",
			warnings:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validateConnectivity(&tt.scenario)
			if !containsAny(result.Info, tt.reachable) {
				t.Errorf("Expected %q, got %v", tt.reachable, result.Info)
			}
			if len(result.Warnings) != tt.warnings {
				t.Errorf("Expected %d warnings, got %v", tt.warnings, result.Warnings)
			}
		})
	}
}

func TestFindScenarioFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.yaml", "c.yml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := findScenarioFiles(dir)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) != 3 {
		t.Errorf("Expected 3 scenario files, got %d: %v", len(files), files)
	}
}

func TestBundledScenariosAreValid(t *testing.T) {
	files, err := findScenarioFiles(filepath.Join("..", "configs"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(files) == 0 {
		t.Skip("no bundled scenarios")
	}
	for _, file := range files {
		result := validateScenario(file)
		if !result.Valid {
			t.Errorf("%s: %v", result.File, result.Errors)
		}
	}
}

// containsAny reports whether any line contains substr
func containsAny(lines []string, substr string) bool {
	for _, line := range lines {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
