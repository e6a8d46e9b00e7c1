package collate

import (
	"context"
	"fmt"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

const unknownTrigger = "unknown"

// EvolutionChain loads the evolution chain at ref and maps it to a tree.
func (r *Resolver) EvolutionChain(ctx context.Context, ref string) (dex.EvolutionNode, error) {
	chain, err := resource.Follow[pokeapi.EvolutionChain](ctx, r.store, resource.KindEvolutionChain, ref)
	if err != nil {
		return dex.EvolutionNode{}, fmt.Errorf("evolution chain: %w", err)
	}
	return evolutionNode(chain.Chain)
}

func evolutionNode(link pokeapi.ChainLink) (dex.EvolutionNode, error) {
	id, err := resource.IDFromRef(link.Species.URL)
	if err != nil {
		return dex.EvolutionNode{}, fmt.Errorf("evolution of %s: %w", link.Species.Name, err)
	}

	trigger := unknownTrigger
	var minLevel *int
	if len(link.EvolutionDetails) > 0 {
		details := link.EvolutionDetails[0]
		if details.Trigger != nil && details.Trigger.Name != "" {
			trigger = details.Trigger.Name
		}
		if details.MinLevel != nil && *details.MinLevel != 0 {
			minLevel = copyInt(details.MinLevel)
		}
	}

	node := dex.EvolutionNode{
		Name:      textfmt.FormatName(link.Species.Name),
		ID:        id,
		Trigger:   textfmt.FormatName(trigger),
		MinLevel:  minLevel,
		EvolvesTo: make([]dex.EvolutionNode, 0, len(link.EvolvesTo)),
	}
	for _, next := range link.EvolvesTo {
		child, err := evolutionNode(next)
		if err != nil {
			return dex.EvolutionNode{}, err
		}
		node.EvolvesTo = append(node.EvolvesTo, child)
	}
	return node, nil
}
