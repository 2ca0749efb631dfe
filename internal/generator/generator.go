// Package generator picks the next button prompt.
package generator

import (
	"errors"
	"math/rand"
	"time"

	"github.com/verte-zerg/reflex/internal/binding"
	"github.com/verte-zerg/reflex/internal/model"
)

// ErrNoPrompts is returned when the registry is nil or empty.
var ErrNoPrompts = errors.New("registry has no prompts")

// Generator produces randomized prompts.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Next selects a prompt uniformly among all registered prompts. The previous
// prompt may repeat.
func (g *Generator) Next(reg *binding.Registry) (model.PromptID, error) {
	if reg == nil || reg.Len() == 0 {
		return "", ErrNoPrompts
	}
	return reg.At(g.rnd.Intn(reg.Len())), nil
}
