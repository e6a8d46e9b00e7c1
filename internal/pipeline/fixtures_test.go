package pipeline_test

import (
	"fmt"
	"testing"

	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/resource/resourcetest"
)

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }

func named(kind resource.Kind, id int, name string) pokeapi.NamedResource {
	return pokeapi.NamedResource{Name: name, URL: resourcetest.Ref(kind, id)}
}

type seedSpecies struct {
	id         int
	name       string
	typeID     int
	generation int
}

var seedGenerations = map[int]string{
	1:  "generation-i",
	2:  "generation-ii",
	99: "generation-x",
}

var seedRegions = map[int]string{1: "kanto", 2: "johto"}

// seedMirror builds a mirror with two known generations, one unknown
// generation, an empty generation directory and a stray file. Species 151
// is listed in generation 1 but has no pokemon resource.
func seedMirror(t *testing.T) *resourcetest.Mirror {
	t.Helper()
	m := resourcetest.NewMirror(t)

	m.Put(resource.KindType, 12, pokeapi.Type{
		ID:   12,
		Name: "grass",
		DamageRelations: &pokeapi.DamageRelations{
			DoubleDamageFrom: []pokeapi.NamedResource{named(resource.KindType, 10, "fire")},
			HalfDamageFrom:   []pokeapi.NamedResource{named(resource.KindType, 12, "grass")},
		},
	})
	m.Put(resource.KindType, 10, pokeapi.Type{
		ID:   10,
		Name: "fire",
		DamageRelations: &pokeapi.DamageRelations{
			HalfDamageFrom: []pokeapi.NamedResource{
				named(resource.KindType, 10, "fire"),
				named(resource.KindType, 12, "grass"),
			},
			DoubleDamageTo: []pokeapi.NamedResource{named(resource.KindType, 12, "grass")},
		},
	})
	m.Put(resource.KindAbility, 65, pokeapi.Ability{
		ID:   65,
		Name: "overgrow",
		EffectEntries: []pokeapi.EffectEntry{{
			Effect:      "Powers up <grass> moves & more.",
			ShortEffect: "Powers up grass moves.",
			Language:    pokeapi.NamedResource{Name: "en"},
		}},
	})
	m.Put(resource.KindMove, 33, pokeapi.Move{
		ID:       33,
		Name:     "tackle",
		Accuracy: intPtr(100),
		Power:    intPtr(40),
		Type:     pokeapi.NamedResource{Name: "normal"},
	})

	species := []seedSpecies{
		{id: 4, name: "charmander", typeID: 10, generation: 1},
		{id: 1, name: "bulbasaur", typeID: 12, generation: 1},
		{id: 152, name: "chikorita", typeID: 12, generation: 2},
	}
	listed := map[int][]pokeapi.NamedResource{}
	for _, s := range species {
		putSpecies(m, s)
		listed[s.generation] = append(listed[s.generation], named(resource.KindSpecies, s.id, s.name))
	}
	listed[1] = append(listed[1], named(resource.KindSpecies, 151, "mew"))
	listed[99] = []pokeapi.NamedResource{named(resource.KindSpecies, 1, "bulbasaur")}

	for id, name := range seedGenerations {
		m.Put(resource.KindGeneration, id, pokeapi.Generation{
			ID:             id,
			Name:           name,
			MainRegion:     pokeapi.NamedResource{Name: seedRegions[id]},
			PokemonSpecies: listed[id],
		})
	}
	if err := m.FS.MkdirAll("generation/5", 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	m.PutRaw("generation/README.md", []byte("mirror notes"))
	return m
}

func putSpecies(m *resourcetest.Mirror, s seedSpecies) {
	m.Put(resource.KindSpecies, s.id, pokeapi.PokemonSpecies{
		ID:            s.id,
		Name:          s.name,
		BaseHappiness: intPtr(50),
		CaptureRate:   45,
		Color:         pokeapi.NamedResource{Name: "green"},
		EggGroups:     []pokeapi.NamedResource{{Name: "monster"}},
		FlavorTextEntries: []pokeapi.FlavorTextEntry{{
			FlavorText: fmt.Sprintf("%s is\nlisted here.", s.name),
			Language:   pokeapi.NamedResource{Name: "en"},
		}},
		Generation: named(resource.KindGeneration, s.generation, seedGenerations[s.generation]),
	})
	m.Put(resource.KindForm, s.id, pokeapi.PokemonForm{ID: s.id, Name: s.name, IsDefault: true, Order: s.id})
	m.Put(resource.KindPokemon, s.id, pokeapi.Pokemon{
		ID:             s.id,
		Name:           s.name,
		Height:         7,
		Weight:         69,
		BaseExperience: intPtr(64),
		Abilities:      []pokeapi.PokemonAbility{{Ability: named(resource.KindAbility, 65, "overgrow"), Slot: 1}},
		Forms:          []pokeapi.NamedResource{named(resource.KindForm, s.id, s.name)},
		Moves: []pokeapi.PokemonMove{{
			Move:                named(resource.KindMove, 33, "tackle"),
			VersionGroupDetails: []pokeapi.MoveVersionDetails{{LevelLearnedAt: 1}},
		}},
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 45, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 49, Stat: pokeapi.NamedResource{Name: "attack"}},
			{BaseStat: 49, Stat: pokeapi.NamedResource{Name: "defense"}},
			{BaseStat: 65, Effort: 1, Stat: pokeapi.NamedResource{Name: "special-attack"}},
			{BaseStat: 65, Stat: pokeapi.NamedResource{Name: "special-defense"}},
			{BaseStat: 45, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
		Types: []pokeapi.PokemonType{{Slot: 1, Type: named(resource.KindType, s.typeID, "")}},
		Sprites: pokeapi.Sprites{
			FrontDefault: strPtr(fmt.Sprintf("%d.png", s.id)),
			Other: &pokeapi.OtherSprites{
				Showdown: &pokeapi.SpriteSet{FrontDefault: strPtr(fmt.Sprintf("%d.gif", s.id))},
			},
		},
		Cries:   pokeapi.Cries{Latest: strPtr(fmt.Sprintf("%d.ogg", s.id))},
		Species: named(resource.KindSpecies, s.id, s.name),
	})
}
