package collate

import (
	"context"
	"fmt"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

// Pokemon builds the complete entry for the pokemon resource with the given
// id. Every referenced resource must exist; the returned warnings describe
// non-fatal data problems.
func (r *Resolver) Pokemon(ctx context.Context, id int) (dex.Pokemon, []error, error) {
	p, err := resource.Get[pokeapi.Pokemon](ctx, r.store, resource.KindPokemon, id)
	if err != nil {
		return dex.Pokemon{}, nil, err
	}
	if p.ID <= 0 {
		return dex.Pokemon{}, nil, fmt.Errorf("pokemon %s has invalid id %d", p.Name, p.ID)
	}

	species, err := r.Species(ctx, p.Species.URL)
	if err != nil {
		return dex.Pokemon{}, nil, err
	}
	abilities, err := r.Abilities(ctx, p.Abilities)
	if err != nil {
		return dex.Pokemon{}, nil, err
	}
	forms, err := r.Forms(ctx, p.Forms)
	if err != nil {
		return dex.Pokemon{}, nil, err
	}
	moves, err := r.Moves(ctx, p.Moves)
	if err != nil {
		return dex.Pokemon{}, nil, err
	}
	types, err := r.Types(ctx, p.Types)
	if err != nil {
		return dex.Pokemon{}, nil, err
	}

	stats := NormalizeStats(p.Stats)
	captureRate := species.CaptureRate
	stats[dex.StatExperience] = dex.Stat{Base: copyInt(p.BaseExperience)}
	stats[dex.StatHappiness] = dex.Stat{Base: species.BaseHappiness}
	stats[dex.StatCaptureRate] = dex.Stat{Base: &captureRate}

	entry := dex.Pokemon{
		ID:   p.ID,
		Name: textfmt.FormatName(p.Name),
		Dimensions: dex.Dimensions{
			Height: p.Height,
			Weight: p.Weight,
		},
		Abilities:         abilities,
		Forms:             forms,
		Stats:             stats,
		Moves:             moves,
		Sprites:           ResolveSprites(p.Sprites),
		Types:             types,
		Cry:               nonEmpty(p.Cries.Latest, p.Cries.Legacy),
		Color:             species.Color,
		ColorHex:          species.ColorHex,
		EggGroups:         species.EggGroups,
		Habitat:           species.Habitat,
		FlavorTextEntries: species.FlavorTextEntries,
		Generation:        species.Generation,
		Region:            species.Region,
		EvolutionChain:    species.EvolutionChain.Flatten(),
	}
	return entry, species.Warnings, nil
}
