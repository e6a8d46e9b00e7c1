package collate

import (
	"context"
	"fmt"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

const unknownHabitat = "unknown"

// SpeciesDetail is the species-level data merged into a dex.Pokemon.
type SpeciesDetail struct {
	Color             string
	ColorHex          string
	BaseHappiness     *int
	CaptureRate       int
	EggGroups         []string
	Habitat           string
	FlavorTextEntries []string
	Generation        *int
	Region            string
	EvolutionChain    dex.EvolutionNode

	// Warnings holds non-fatal data problems, such as an unknown generation.
	Warnings []error
}

// Species resolves the species at ref together with its generation and
// evolution chain. The chain is returned as a tree.
func (r *Resolver) Species(ctx context.Context, ref string) (SpeciesDetail, error) {
	species, err := resource.Follow[pokeapi.PokemonSpecies](ctx, r.store, resource.KindSpecies, ref)
	if err != nil {
		return SpeciesDetail{}, fmt.Errorf("species: %w", err)
	}

	generation, err := resource.Follow[pokeapi.Generation](ctx, r.store, resource.KindGeneration, species.Generation.URL)
	if err != nil {
		return SpeciesDetail{}, fmt.Errorf("species %s generation: %w", species.Name, err)
	}

	detail := SpeciesDetail{
		Color:             textfmt.FormatName(species.Color.Name),
		BaseHappiness:     copyInt(species.BaseHappiness),
		CaptureRate:       species.CaptureRate,
		EggGroups:         make([]string, 0, len(species.EggGroups)),
		Habitat:           textfmt.FormatName(unknownHabitat),
		FlavorTextEntries: textfmt.DedupeFlavorText(species.FlavorTextEntries),
		Region:            textfmt.FormatName(generation.MainRegion.Name),
	}
	if hex, ok := dex.ColorHex(species.Color.Name); ok {
		detail.ColorHex = hex
	}
	for _, group := range species.EggGroups {
		detail.EggGroups = append(detail.EggGroups, textfmt.FormatName(group.Name))
	}
	if species.Habitat != nil && species.Habitat.Name != "" {
		detail.Habitat = textfmt.FormatName(species.Habitat.Name)
	}

	if number, err := r.generations.Number(species.Generation.Name); err != nil {
		detail.Warnings = append(detail.Warnings, fmt.Errorf("species %s: %w", species.Name, err))
	} else {
		detail.Generation = &number
	}

	if species.EvolutionChain == nil {
		// A species without a chain evolves from and into nothing.
		detail.EvolutionChain = dex.EvolutionNode{
			Name:    textfmt.FormatName(species.Name),
			ID:      species.ID,
			Trigger: dex.UnknownTrigger,
		}
		return detail, nil
	}

	detail.EvolutionChain, err = r.EvolutionChain(ctx, species.EvolutionChain.URL)
	if err != nil {
		return SpeciesDetail{}, fmt.Errorf("species %s: %w", species.Name, err)
	}
	return detail, nil
}
