package dex

import (
	"errors"
	"fmt"

	"github.com/samdwyer/pokecollate/data"
)

// ErrUnknownGeneration is reported when a generation machine name is not one
// of the nine known release groupings.
var ErrUnknownGeneration = errors.New("unknown generation")

// GenerationRegistry maps generation machine names to their numbers.
type GenerationRegistry struct {
	byName map[string]*data.GenerationDef
	all    []data.GenerationDef
}

// NewGenerationRegistry creates a registry from loaded generation definitions.
func NewGenerationRegistry(generations []data.GenerationDef) *GenerationRegistry {
	registry := &GenerationRegistry{
		byName: make(map[string]*data.GenerationDef),
		all:    generations,
	}
	for i := range generations {
		registry.byName[generations[i].Name] = &generations[i]
	}
	return registry
}

// LoadGenerationRegistry loads and creates a registry from the embedded generations.json.
func LoadGenerationRegistry() (*GenerationRegistry, error) {
	generations, err := data.LoadGenerations()
	if err != nil {
		return nil, err
	}
	if len(generations) == 0 {
		return nil, errors.New("no generations loaded from generations.json")
	}
	return NewGenerationRegistry(generations), nil
}

// MustLoadGenerationRegistry loads a registry, panicking on error.
func MustLoadGenerationRegistry() *GenerationRegistry {
	registry, err := LoadGenerationRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Number returns the generation number for a machine name such as
// "generation-iii". Unknown names yield ErrUnknownGeneration.
func (r *GenerationRegistry) Number(name string) (int, error) {
	def := r.byName[name]
	if def == nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGeneration, name)
	}
	return def.Number, nil
}

// All returns all generation definitions.
func (r *GenerationRegistry) All() []data.GenerationDef {
	return r.all
}

// Count returns the number of known generations.
func (r *GenerationRegistry) Count() int {
	return len(r.all)
}
