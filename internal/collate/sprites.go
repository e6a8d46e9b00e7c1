package collate

import (
	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
)

// ResolveSprites picks one front and back URL per variant. The default and
// shiny variants prefer the official artwork and fall back to the legacy
// sprites; showdown only has its own animated sprites. Missing URLs and
// empty variants are left out.
func ResolveSprites(sprites pokeapi.Sprites) dex.Sprites {
	var artwork, showdown pokeapi.SpriteSet
	if sprites.Other != nil {
		if sprites.Other.OfficialArtwork != nil {
			artwork = *sprites.Other.OfficialArtwork
		}
		if sprites.Other.Showdown != nil {
			showdown = *sprites.Other.Showdown
		}
	}

	variants := map[string]dex.SpriteSet{
		dex.SpriteDefault: {
			Front: nonEmpty(artwork.FrontDefault, sprites.FrontDefault),
			Back:  nonEmpty(artwork.BackDefault, sprites.BackDefault),
		},
		dex.SpriteShiny: {
			Front: nonEmpty(artwork.FrontShiny, sprites.FrontShiny),
			Back:  nonEmpty(artwork.BackShiny, sprites.BackShiny),
		},
		dex.SpriteShowdown: {
			Front: nonEmpty(showdown.FrontDefault),
			Back:  nonEmpty(showdown.BackDefault),
		},
	}

	out := make(dex.Sprites, len(variants))
	for name, set := range variants {
		if !set.Empty() {
			out[name] = set
		}
	}
	return out
}
