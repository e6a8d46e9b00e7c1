package collate

import (
	"context"
	"fmt"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

// Moves expands the learnable moves of a pokemon, merging records that
// resolve to the same move. The first non-nil accuracy and power win; every
// other field comes from the latest record. Moves keep first-seen order.
func (r *Resolver) Moves(ctx context.Context, moves []pokeapi.PokemonMove) ([]dex.MoveDetail, error) {
	index := make(map[string]int, len(moves))
	out := make([]dex.MoveDetail, 0, len(moves))

	for _, m := range moves {
		move, err := resource.Follow[pokeapi.Move](ctx, r.store, resource.KindMove, m.Move.URL)
		if err != nil {
			return nil, fmt.Errorf("move %s: %w", m.Move.Name, err)
		}

		detail := dex.MoveDetail{
			Name:     textfmt.FormatName(move.Name),
			Accuracy: copyInt(move.Accuracy),
			Power:    copyInt(move.Power),
			Type:     textfmt.FormatName(move.Type.Name),
		}
		if entry, ok := englishEffect(move.EffectEntries); ok {
			detail.Effect = textfmt.CleanText(entry.Effect)
			detail.ShortEffect = textfmt.CleanText(entry.ShortEffect)
		}
		if len(m.VersionGroupDetails) > 0 {
			detail.FromLevel = m.VersionGroupDetails[0].LevelLearnedAt
		}

		i, seen := index[move.Name]
		if !seen {
			index[move.Name] = len(out)
			out = append(out, detail)
			continue
		}
		existing := out[i]
		if existing.Accuracy != nil {
			detail.Accuracy = existing.Accuracy
		}
		if existing.Power != nil {
			detail.Power = existing.Power
		}
		out[i] = detail
	}
	return out, nil
}
