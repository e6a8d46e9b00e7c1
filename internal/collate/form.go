package collate

import (
	"context"
	"fmt"

	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
	"github.com/samdwyer/pokecollate/internal/resource"
	"github.com/samdwyer/pokecollate/internal/textfmt"
)

const defaultFormName = "default"

// Forms expands each form reference of a pokemon, in order.
func (r *Resolver) Forms(ctx context.Context, forms []pokeapi.NamedResource) ([]dex.FormDetail, error) {
	out := make([]dex.FormDetail, 0, len(forms))
	for _, ref := range forms {
		form, err := resource.Follow[pokeapi.PokemonForm](ctx, r.store, resource.KindForm, ref.URL)
		if err != nil {
			return nil, fmt.Errorf("form %s: %w", ref.Name, err)
		}

		name := form.FormName
		if name == "" {
			name = form.Name
		}
		if name == "" {
			name = defaultFormName
		}

		out = append(out, dex.FormDetail{
			Name:      textfmt.FormatName(name),
			IsDefault: form.IsDefault,
			IsMega:    form.IsMega,
			Order:     form.Order,
		})
	}
	return out, nil
}
