package generator

import (
	"errors"
	"testing"

	"github.com/verte-zerg/reflex/internal/binding"
	"github.com/verte-zerg/reflex/internal/model"
)

func TestNextStaysInRegistry(t *testing.T) {
	reg, err := binding.Build(binding.DefaultTable, []model.DeviceFamily{model.FamilyPlayStation})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	gen := NewWithSeed(1)
	seen := map[model.PromptID]int{}
	for i := 0; i < 2000; i++ {
		id, err := gen.Next(reg)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if !reg.Contains(id) {
			t.Fatalf("prompt %q not in registry", id)
		}
		seen[id]++
	}
	if len(seen) != reg.Len() {
		t.Fatalf("expected every prompt to be drawn, saw %d of %d", len(seen), reg.Len())
	}
}

func TestNextDeterministicWithSeed(t *testing.T) {
	reg, err := binding.Build(binding.DefaultTable, []model.DeviceFamily{model.FamilyGeneric})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	a := NewWithSeed(42)
	b := NewWithSeed(42)
	for i := 0; i < 50; i++ {
		x, _ := a.Next(reg)
		y, _ := b.Next(reg)
		if x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
	}
}

func TestNextEmptyRegistry(t *testing.T) {
	if _, err := New().Next(nil); !errors.Is(err, ErrNoPrompts) {
		t.Fatalf("expected ErrNoPrompts, got %v", err)
	}
}
