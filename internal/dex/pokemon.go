// Package dex defines the denormalized records written to the generation
// artifacts.
package dex

// Pokemon is one fully resolved entry of a generation artifact.
type Pokemon struct {
	ID                int             `json:"id"`
	Name              string          `json:"name"`
	Dimensions        Dimensions      `json:"dimensions"`
	Abilities         []AbilityDetail `json:"abilities"`
	Forms             []FormDetail    `json:"forms"`
	Stats             Stats           `json:"stats"`
	Moves             []MoveDetail    `json:"moves"`
	Sprites           Sprites         `json:"sprites"`
	Types             TypeInfo        `json:"types"`
	Cry               *string         `json:"cry"`
	Color             string          `json:"color"`
	ColorHex          string          `json:"colorHex,omitempty"`
	EggGroups         []string        `json:"eggGroups"`
	Habitat           string          `json:"habitat"`
	FlavorTextEntries []string        `json:"flavorTextEntries"`
	Generation        *int            `json:"generation"`
	Region            string          `json:"region"`
	EvolutionChain    []EvolutionStep `json:"evolutionChain"`
}

type Dimensions struct {
	Height int `json:"height"`
	Weight int `json:"weight"`
}

type AbilityDetail struct {
	Name          string   `json:"name"`
	Effect        string   `json:"effect"`
	ShortEffect   string   `json:"shortEffect"`
	EffectChanges []string `json:"effectChanges"`
}

type FormDetail struct {
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
	IsMega    bool   `json:"isMega"`
	Order     int    `json:"order"`
}

// MoveDetail is a learnable move. Accuracy and Power are nil when the move
// has no such value (status moves, fixed-damage moves).
type MoveDetail struct {
	Name        string `json:"name"`
	Accuracy    *int   `json:"accuracy"`
	Power       *int   `json:"power"`
	Type        string `json:"type"`
	Effect      string `json:"effect"`
	ShortEffect string `json:"shortEffect"`
	FromLevel   int    `json:"fromLevel"`
}

// Stat is a base value with an optional effort yield.
type Stat struct {
	Base   *int `json:"base"`
	Effort *int `json:"effort,omitempty"`
}

// Stats maps a stat name to its values.
type Stats map[string]Stat

// Synthetic stat keys merged next to the battle stats.
const (
	StatExperience  = "experience"
	StatHappiness   = "happiness"
	StatCaptureRate = "captureRate"
)

// SpriteSet holds the image URLs of one variant. Absent directions are omitted.
type SpriteSet struct {
	Front *string `json:"front,omitempty"`
	Back  *string `json:"back,omitempty"`
}

// Empty reports whether neither direction is set.
func (s SpriteSet) Empty() bool {
	return s.Front == nil && s.Back == nil
}

// Sprites maps a variant name to its image URLs. Variants without any URL
// are never present.
type Sprites map[string]SpriteSet

// Sprite variant names.
const (
	SpriteDefault  = "default"
	SpriteShiny    = "shiny"
	SpriteShowdown = "showdown"
)

// TypeInfo lists a pokemon's types in slot order and the damage relations
// derived from them.
type TypeInfo struct {
	Types           []string        `json:"types"`
	DamageRelations DamageRelations `json:"damageRelations"`
}

// DamageRelations holds the six relation sets as sorted type names.
type DamageRelations struct {
	DoubleDamageFrom []string `json:"doubleDamageFrom"`
	DoubleDamageTo   []string `json:"doubleDamageTo"`
	HalfDamageFrom   []string `json:"halfDamageFrom"`
	HalfDamageTo     []string `json:"halfDamageTo"`
	NoDamageFrom     []string `json:"noDamageFrom"`
	NoDamageTo       []string `json:"noDamageTo"`
}
