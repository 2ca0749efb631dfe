package binding

import (
	"errors"
	"testing"

	"github.com/verte-zerg/reflex/internal/model"
)

func TestBuildSingleFamily(t *testing.T) {
	reg, err := Build(DefaultTable, []model.DeviceFamily{model.FamilyGeneric})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if reg.Len() != 16 {
		t.Fatalf("expected 16 prompts, got %d", reg.Len())
	}
	if reg.At(0) != "GenericA" {
		t.Fatalf("expected registration order to start with GenericA, got %s", reg.At(0))
	}
	if reg.Contains("PlaystationCross") {
		t.Fatalf("playstation prompt should not be registered")
	}
	id, ok := reg.Lookup("j")
	if !ok || id != "GenericA" {
		t.Fatalf("expected j to map to GenericA, got %q %v", id, ok)
	}
}

func TestBuildBothFamiliesIsAdditive(t *testing.T) {
	reg, err := Build(DefaultTable, []model.DeviceFamily{model.FamilyGeneric, model.FamilyPlayStation})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if reg.Len() != 32 {
		t.Fatalf("expected 32 prompts, got %d", reg.Len())
	}
	for _, id := range []model.PromptID{"GenericDPadDown", "PlaystationCross"} {
		if !reg.Contains(id) {
			t.Fatalf("expected %s in registry", id)
		}
	}
	key, ok := reg.KeyFor("PlaystationCross")
	if !ok || key != "J" {
		t.Fatalf("expected PlaystationCross on J, got %q", key)
	}
}

func TestBuildNoFamilies(t *testing.T) {
	_, err := Build(DefaultTable, nil)
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	_, err = Build(DefaultTable, []model.DeviceFamily{"nintendo"})
	if !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty for unknown family, got %v", err)
	}
}

func TestBuildRejectsDuplicateKeys(t *testing.T) {
	table := Table{
		"a": {{Prompt: "AOne", Key: "x"}},
		"b": {{Prompt: "BOne", Key: "x"}},
	}
	if _, err := Build(table, []model.DeviceFamily{"a", "b"}); err == nil {
		t.Fatalf("expected duplicate key error")
	}
}

func TestDefaultTableHasSixteenPerFamily(t *testing.T) {
	for family, bindings := range DefaultTable {
		if len(bindings) != 16 {
			t.Fatalf("family %s has %d buttons", family, len(bindings))
		}
	}
}
