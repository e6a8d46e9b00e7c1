package collate

import (
	"testing"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/resource/resourcetest"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func named(kind resource.Kind, id int, name string) pokeapi.NamedResource {
	return pokeapi.NamedResource{Name: name, URL: resourcetest.Ref(kind, id)}
}

var typeNames = map[int]string{
	1: "normal", 2: "fighting", 3: "flying", 4: "poison", 5: "ground", 6: "rock",
	7: "bug", 8: "ghost", 9: "steel", 10: "fire", 11: "water", 12: "grass",
	13: "electric", 14: "psychic", 15: "ice", 16: "dragon", 18: "fairy",
}

func typeRefs(ids ...int) []pokeapi.NamedResource {
	refs := make([]pokeapi.NamedResource, 0, len(ids))
	for _, id := range ids {
		refs = append(refs, named(resource.KindType, id, typeNames[id]))
	}
	return refs
}

// putTypes writes grass, poison, normal and a ghost type without relations.
func putTypes(m *resourcetest.Mirror) {
	m.Put(resource.KindType, 12, pokeapi.Type{
		ID:   12,
		Name: "grass",
		DamageRelations: &pokeapi.DamageRelations{
			DoubleDamageFrom: typeRefs(10, 15, 4, 3, 7),
			DoubleDamageTo:   typeRefs(11, 5, 6),
			HalfDamageFrom:   typeRefs(11, 13, 12, 5),
			HalfDamageTo:     typeRefs(10, 12, 4, 3, 7, 16, 9),
		},
	})
	m.Put(resource.KindType, 4, pokeapi.Type{
		ID:   4,
		Name: "poison",
		DamageRelations: &pokeapi.DamageRelations{
			DoubleDamageFrom: typeRefs(5, 14),
			DoubleDamageTo:   typeRefs(12, 18),
			HalfDamageFrom:   typeRefs(2, 4, 7, 12, 18),
			HalfDamageTo:     typeRefs(4, 5, 6, 8),
			NoDamageTo:       typeRefs(9),
		},
	})
	m.Put(resource.KindType, 1, pokeapi.Type{
		ID:   1,
		Name: "normal",
		DamageRelations: &pokeapi.DamageRelations{
			DoubleDamageFrom: typeRefs(2, 8),
			HalfDamageTo:     typeRefs(6, 9),
			NoDamageFrom:     typeRefs(8),
			NoDamageTo:       typeRefs(8),
		},
	})
	m.Put(resource.KindType, 8, pokeapi.Type{ID: 8, Name: "ghost"})
}

func newTestResolver(t *testing.T, m *resourcetest.Mirror) *Resolver {
	t.Helper()
	generations, err := dex.LoadGenerationRegistry()
	if err != nil {
		t.Fatalf("load generations: %v", err)
	}
	return NewResolver(m.Store(), generations)
}
