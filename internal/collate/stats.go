package collate

import (
	"github.com/samdwyer/pokecollate/internal/dex"
	"github.com/samdwyer/pokecollate/internal/pokeapi"
)

// NormalizeStats keys the stat list by stat name.
func NormalizeStats(stats []pokeapi.PokemonStat) dex.Stats {
	out := make(dex.Stats, len(stats)+3)
	for _, s := range stats {
		base, effort := s.BaseStat, s.Effort
		out[s.Stat.Name] = dex.Stat{Base: &base, Effort: &effort}
	}
	return out
}
