// Package collate resolves upstream resources into the denormalized records
// of the dex package. Every resolver reads through a shared resource.Store
// and returns freshly built values.
package collate

import (
	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

// Resolver follows resource references and builds dex records.
type Resolver struct {
	store       *resource.Store
	generations *dex.GenerationRegistry
}

// NewResolver creates a resolver reading from store.
func NewResolver(store *resource.Store, generations *dex.GenerationRegistry) *Resolver {
	return &Resolver{
		store:       store,
		generations: generations,
	}
}

// englishEffect returns the first English effect entry.
func englishEffect(entries []pokeapi.EffectEntry) (pokeapi.EffectEntry, bool) {
	for _, e := range entries {
		if textfmt.IsEnglish(e.Language.Name) {
			return e, true
		}
	}
	return pokeapi.EffectEntry{}, false
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func nonEmpty(values ...*string) *string {
	for _, v := range values {
		if v != nil && *v != "" {
			s := *v
			return &s
		}
	}
	return nil
}
