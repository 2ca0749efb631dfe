package binding

import (
	"testing"

	"github.com/verte-zerg/reflex/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	lines := formatTable([]string{"Family", "Prompt", "Key"}, [][]string{
		{"generic", "GenericA", "j"},
		{"playstation", "PlaystationCross", "J"},
	})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Family      Prompt           Key" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "generic     GenericA         j" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
}

func TestListingIncludesIcons(t *testing.T) {
	table := Table{"generic": {{Prompt: "GenericA", Key: "j"}, {Prompt: "GenericB", Key: "l"}}}
	icons := func(id model.PromptID) (string, bool) {
		if id == "GenericA" {
			return "A", true
		}
		return "", false
	}
	lines := Listing(table, icons)
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(lines))
	}
	if lines[1] != "generic GenericA j   A" {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if lines[2] != "generic GenericB l   -" {
		t.Fatalf("unexpected row %q", lines[2])
	}
}
