package assets

import (
	"testing"

	"github.com/verte-zerg/reflex/internal/binding"
	"github.com/verte-zerg/reflex/internal/model"
)

func TestDefaultIconsCoverDefaultTable(t *testing.T) {
	set := NewIconSet(nil)
	for family, bindings := range binding.DefaultTable {
		for _, b := range bindings {
			if _, ok := set.IconFor(b.Prompt); !ok {
				t.Fatalf("%s prompt %s has no icon", family, b.Prompt)
			}
		}
	}
}

func TestOverrides(t *testing.T) {
	set := NewIconSet(map[model.PromptID]string{"GenericA": "(A)", "GenericB": ""})
	if glyph, _ := set.IconFor("GenericA"); glyph != "(A)" {
		t.Fatalf("expected override, got %q", glyph)
	}
	if _, ok := set.IconFor("GenericB"); ok {
		t.Fatalf("expected GenericB icon removed")
	}
	if glyph, _ := set.IconFor("GenericX"); glyph != "X" {
		t.Fatalf("expected default to survive, got %q", glyph)
	}
}
