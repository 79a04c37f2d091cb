package engine

import (
	"encoding/json"
	"testing"
)

func TestHeadingConstants(t *testing.T) {
	tests := []struct {
		heading  Heading
		expected string
	}{
		{North, "N"},
		{East, "E"},
		{South, "S"},
		{West, "W"},
	}

	for _, test := range tests {
		if string(test.heading) != test.expected {
			t.Errorf("Expected %s, got %s", test.expected, string(test.heading))
		}
	}
}

func TestParseHeading(t *testing.T) {
	for _, s := range []string{"N", "E", "S", "W"} {
		h, ok := ParseHeading(s)
		if !ok || string(h) != s {
			t.Errorf("ParseHeading(%q) = %q, %v", s, h, ok)
		}
	}
	for _, s := range []string{"", "n", "North", "X"} {
		if _, ok := ParseHeading(s); ok {
			t.Errorf("ParseHeading(%q) should fail", s)
		}
	}
}

func TestHeading_InvalidIsUnchangedByTurns(t *testing.T) {
	h := Heading("Q")
	if h.Left() != h || h.Right() != h {
		t.Error("Turning an invalid heading should return it unchanged")
	}
	if dx, dy := h.Delta(); dx != 0 || dy != 0 {
		t.Errorf("Invalid heading should have zero delta, got (%d,%d)", dx, dy)
	}
}

func TestStateString(t *testing.T) {
	s := State{X: 1, Y: 3, Heading: North}
	if s.String() != "(1, 3, N)" {
		t.Errorf("Unexpected state string: %s", s.String())
	}
	if s.Position().String() != "(1, 3)" {
		t.Errorf("Unexpected position string: %s", s.Position().String())
	}
}

func TestResultJSONMarshaling(t *testing.T) {
	result := Dispatch(createTestRover(0, 0, North), "M")

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Failed to marshal result: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal result: %v", err)
	}

	final, ok := decoded["final"].(map[string]interface{})
	if !ok {
		t.Fatalf("Expected final object, got %v", decoded["final"])
	}
	if final["heading"] != "N" || final["y"] != float64(1) {
		t.Errorf("Unexpected final state: %v", final)
	}
}

func TestRenderGrid(t *testing.T) {
	grid := NewGrid(4, 3)
	grid.AddObstacle(2, 1)
	grid.AddObstacle(7, 7)

	rows := RenderGrid(grid, State{X: 0, Y: 2, Heading: East})

	expected := []string{
		">...",
		"..#.",
		"....",
	}
	if len(rows) != len(expected) {
		t.Fatalf("Expected %d rows, got %d", len(expected), len(rows))
	}
	for i := range expected {
		if rows[i] != expected[i] {
			t.Errorf("Row %d: expected %q, got %q", i, expected[i], rows[i])
		}
	}
}
