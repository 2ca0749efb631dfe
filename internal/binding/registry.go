package binding

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/reflex/internal/model"
)

// ErrEmpty is returned when no supported family contributed any prompt.
var ErrEmpty = errors.New("no supported device family connected")

// Registry is the set of prompts available for one session.
type Registry struct {
	prompts []model.PromptID
	keys    map[string]model.PromptID
	byID    map[model.PromptID]string
}

// Build registers the full button set of every connected family, in the given order.
func Build(table Table, families []model.DeviceFamily) (*Registry, error) {
	r := &Registry{
		keys: map[string]model.PromptID{},
		byID: map[model.PromptID]string{},
	}
	for _, family := range families {
		for _, b := range table[family] {
			if _, ok := r.byID[b.Prompt]; ok {
				return nil, fmt.Errorf("prompt %q registered twice", b.Prompt)
			}
			if other, ok := r.keys[b.Key]; ok {
				return nil, fmt.Errorf("key %q bound to both %s and %s", b.Key, other, b.Prompt)
			}
			r.prompts = append(r.prompts, b.Prompt)
			r.keys[b.Key] = b.Prompt
			r.byID[b.Prompt] = b.Key
		}
	}
	if len(r.prompts) == 0 {
		return nil, ErrEmpty
	}
	return r, nil
}

// Len returns the number of registered prompts.
func (r *Registry) Len() int {
	return len(r.prompts)
}

// At returns the i-th prompt in registration order.
func (r *Registry) At(i int) model.PromptID {
	return r.prompts[i]
}

// Prompts returns a copy of the registered prompts.
func (r *Registry) Prompts() []model.PromptID {
	return append([]model.PromptID(nil), r.prompts...)
}

// Contains reports whether id belongs to the registry.
func (r *Registry) Contains(id model.PromptID) bool {
	_, ok := r.byID[id]
	return ok
}

// Lookup resolves a terminal key to its prompt.
func (r *Registry) Lookup(key string) (model.PromptID, bool) {
	id, ok := r.keys[key]
	return id, ok
}

// KeyFor returns the key bound to a prompt.
func (r *Registry) KeyFor(id model.PromptID) (string, bool) {
	key, ok := r.byID[id]
	return key, ok
}
