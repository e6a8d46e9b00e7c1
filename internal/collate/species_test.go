package collate

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/resource/resourcetest"
)

func bulbasaurChain() pokeapi.EvolutionChain {
	return pokeapi.EvolutionChain{
		ID: 1,
		Chain: link(1, "bulbasaur", "", nil,
			link(2, "ivysaur", "level-up", intPtr(16),
				link(3, "venusaur", "level-up", intPtr(32)),
			),
		),
	}
}

func flavor(lang, text string) pokeapi.FlavorTextEntry {
	return pokeapi.FlavorTextEntry{FlavorText: text, Language: pokeapi.NamedResource{Name: lang}}
}

// putBulbasaurSpecies writes species 1 with its generation and evolution chain.
func putBulbasaurSpecies(m *resourcetest.Mirror) {
	m.Put(resource.KindGeneration, 1, pokeapi.Generation{
		ID:             1,
		Name:           "generation-i",
		MainRegion:     pokeapi.NamedResource{Name: "kanto"},
		PokemonSpecies: []pokeapi.NamedResource{named(resource.KindSpecies, 1, "bulbasaur")},
	})
	m.Put(resource.KindEvolutionChain, 1, bulbasaurChain())
	m.Put(resource.KindSpecies, 1, pokeapi.PokemonSpecies{
		ID:            1,
		Name:          "bulbasaur",
		BaseHappiness: intPtr(50),
		CaptureRate:   45,
		Color:         pokeapi.NamedResource{Name: "green"},
		EggGroups: []pokeapi.NamedResource{
			{Name: "monster"},
			{Name: "plant"},
		},
		Habitat: &pokeapi.NamedResource{Name: "grassland"},
		FlavorTextEntries: []pokeapi.FlavorTextEntry{
			flavor("en", "A strange seed was\nplanted on its back at birth."),
			flavor("ja", "うまれたときから　せなかに"),
			flavor("en", "A STRANGE SEED WAS\fPLANTED ON ITS BACK AT BIRTH."),
			flavor("en", "It can go for days without eating. It carries a seed."),
		},
		Generation:     named(resource.KindGeneration, 1, "generation-i"),
		EvolutionChain: &pokeapi.APIResource{URL: resourcetest.Ref(resource.KindEvolutionChain, 1)},
	})
}

func TestSpecies(t *testing.T) {
	m := resourcetest.NewMirror(t)
	putBulbasaurSpecies(m)
	r := newTestResolver(t, m)

	got, err := r.Species(context.Background(), resourcetest.Ref(resource.KindSpecies, 1))
	if err != nil {
		t.Fatalf("Species returned error: %v", err)
	}
	if len(got.Warnings) != 0 {
		t.Errorf("Warnings = %v, want none", got.Warnings)
	}

	got.EvolutionChain = dex.EvolutionNode{}
	hex, _ := dex.ColorHex("green")
	want := SpeciesDetail{
		Color:         "Green",
		ColorHex:      hex,
		BaseHappiness: intPtr(50),
		CaptureRate:   45,
		EggGroups:     []string{"Monster", "Plant"},
		Habitat:       "Grassland",
		FlavorTextEntries: []string{
			"A strange seed was planted on its back at birth.",
			"It can go for days without eating. It carries a seed.",
		},
		Generation: intPtr(1),
		Region:     "Kanto",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Species() mismatch (-want +got):\n%s", diff)
	}
}

func TestSpeciesDefaults(t *testing.T) {
	m := resourcetest.NewMirror(t)
	m.Put(resource.KindGeneration, 7, pokeapi.Generation{
		ID:         7,
		Name:       "generation-vii",
		MainRegion: pokeapi.NamedResource{Name: "alola"},
	})
	m.Put(resource.KindSpecies, 801, pokeapi.PokemonSpecies{
		ID:          801,
		Name:        "magearna",
		CaptureRate: 3,
		Color:       pokeapi.NamedResource{Name: "gray"},
		Generation:  named(resource.KindGeneration, 7, "generation-vii"),
	})
	r := newTestResolver(t, m)

	got, err := r.Species(context.Background(), resourcetest.Ref(resource.KindSpecies, 801))
	if err != nil {
		t.Fatalf("Species returned error: %v", err)
	}

	if got.Habitat != "Unknown" {
		t.Errorf("Habitat = %q, want %q", got.Habitat, "Unknown")
	}
	if got.BaseHappiness != nil {
		t.Errorf("BaseHappiness = %d, want nil", *got.BaseHappiness)
	}
	if got.EggGroups == nil || got.FlavorTextEntries == nil {
		t.Errorf("EggGroups = %v, FlavorTextEntries = %v, want empty non-nil slices", got.EggGroups, got.FlavorTextEntries)
	}

	wantChain := dex.EvolutionNode{Name: "Magearna", ID: 801, Trigger: dex.UnknownTrigger}
	if diff := cmp.Diff(wantChain, got.EvolutionChain); diff != "" {
		t.Errorf("EvolutionChain mismatch (-want +got):\n%s", diff)
	}
	if flat := got.EvolutionChain.Flatten(); len(flat) != 1 || flat[0].Trigger != "" {
		t.Errorf("Flatten() = %+v, want a single step with an empty trigger", flat)
	}
}

func TestSpeciesUnknownGenerationIsWarning(t *testing.T) {
	m := resourcetest.NewMirror(t)
	m.Put(resource.KindGeneration, 10, pokeapi.Generation{ID: 10, Name: "generation-x"})
	m.Put(resource.KindSpecies, 2000, pokeapi.PokemonSpecies{
		ID:         2000,
		Name:       "futuremon",
		Generation: named(resource.KindGeneration, 10, "generation-x"),
	})
	r := newTestResolver(t, m)

	got, err := r.Species(context.Background(), resourcetest.Ref(resource.KindSpecies, 2000))
	if err != nil {
		t.Fatalf("Species returned error: %v", err)
	}
	if got.Generation != nil {
		t.Errorf("Generation = %d, want nil", *got.Generation)
	}
	if len(got.Warnings) != 1 || !errors.Is(got.Warnings[0], dex.ErrUnknownGeneration) {
		t.Errorf("Warnings = %v, want one ErrUnknownGeneration", got.Warnings)
	}
}

func TestSpeciesMissingChainIsFatal(t *testing.T) {
	m := resourcetest.NewMirror(t)
	putBulbasaurSpecies(m)
	if err := m.FS.Remove(resource.Path(resource.KindEvolutionChain, 1)); err != nil {
		t.Fatalf("remove chain: %v", err)
	}
	r := newTestResolver(t, m)

	_, err := r.Species(context.Background(), resourcetest.Ref(resource.KindSpecies, 1))
	if !errors.Is(err, resource.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
