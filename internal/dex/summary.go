package dex

// SummaryEntry is the list-view projection of a Pokemon.
type SummaryEntry struct {
	ID         int            `json:"id"`
	Name       string         `json:"name"`
	Generation *int           `json:"generation"`
	Sprites    SummarySprites `json:"sprites"`
	Types      []string       `json:"types"`
}

type SummarySprites struct {
	OfficialArtwork *string `json:"officialArtwork"`
	GIF             *string `json:"gif"`
}

// Summarize projects p onto its list-view fields.
func Summarize(p Pokemon) SummaryEntry {
	return SummaryEntry{
		ID:         p.ID,
		Name:       p.Name,
		Generation: p.Generation,
		Sprites: SummarySprites{
			OfficialArtwork: p.Sprites[SpriteDefault].Front,
			GIF:             p.Sprites[SpriteShowdown].Front,
		},
		Types: p.Types.Types,
	}
}
