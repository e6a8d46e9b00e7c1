package collate

import (
	"context"
	"fmt"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

// Abilities expands each ability reference of a pokemon, in order.
func (r *Resolver) Abilities(ctx context.Context, abilities []pokeapi.PokemonAbility) ([]dex.AbilityDetail, error) {
	out := make([]dex.AbilityDetail, 0, len(abilities))
	for _, a := range abilities {
		detail, err := r.ability(ctx, a.Ability)
		if err != nil {
			return nil, err
		}
		out = append(out, detail)
	}
	return out, nil
}

func (r *Resolver) ability(ctx context.Context, ref pokeapi.NamedResource) (dex.AbilityDetail, error) {
	ability, err := resource.Follow[pokeapi.Ability](ctx, r.store, resource.KindAbility, ref.URL)
	if err != nil {
		return dex.AbilityDetail{}, fmt.Errorf("ability %s: %w", ref.Name, err)
	}

	detail := dex.AbilityDetail{
		Name:          textfmt.FormatName(ability.Name),
		EffectChanges: []string{},
	}
	if entry, ok := englishEffect(ability.EffectEntries); ok {
		detail.Effect = textfmt.CleanText(entry.Effect)
		detail.ShortEffect = textfmt.CleanText(entry.ShortEffect)
	}

	for _, change := range ability.EffectChanges {
		for _, e := range change.EffectEntries {
			if textfmt.IsEnglish(e.Language.Name) {
				detail.EffectChanges = append(detail.EffectChanges, textfmt.CleanText(e.Effect))
			}
		}
	}
	return detail, nil
}
