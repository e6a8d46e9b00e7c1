// Package pokeapi describes the upstream resource documents read from the
// dataset mirror. Only the fields consumed during collation are declared.
//
// For values that are pointers, the upstream document may carry null.
package pokeapi

// NamedResource is a reference to another resource.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Language-tagged text entries.

type EffectEntry struct {
	Effect      string        `json:"effect"`
	ShortEffect string        `json:"short_effect"`
	Language    NamedResource `json:"language"`
}

type FlavorTextEntry struct {
	FlavorText string        `json:"flavor_text"`
	Language   NamedResource `json:"language"`
	Version    NamedResource `json:"version"`
}

type EffectChange struct {
	EffectEntries []EffectEntry `json:"effect_entries"`
	VersionGroup  NamedResource `json:"version_group"`
}

// Pokemon is the pokemon/<id>/index.json document.
type Pokemon struct {
	ID             int              `json:"id"`
	Name           string           `json:"name"`
	Height         int              `json:"height"`
	Weight         int              `json:"weight"`
	BaseExperience *int             `json:"base_experience"`
	Abilities      []PokemonAbility `json:"abilities"`
	Forms          []NamedResource  `json:"forms"`
	Moves          []PokemonMove    `json:"moves"`
	Stats          []PokemonStat    `json:"stats"`
	Types          []PokemonType    `json:"types"`
	Sprites        Sprites          `json:"sprites"`
	Cries          Cries            `json:"cries"`
	Species        NamedResource    `json:"species"`
}

type PokemonAbility struct {
	Ability  NamedResource `json:"ability"`
	IsHidden bool          `json:"is_hidden"`
	Slot     int           `json:"slot"`
}

type PokemonMove struct {
	Move                NamedResource        `json:"move"`
	VersionGroupDetails []MoveVersionDetails `json:"version_group_details"`
}

type MoveVersionDetails struct {
	LevelLearnedAt  int           `json:"level_learned_at"`
	MoveLearnMethod NamedResource `json:"move_learn_method"`
	VersionGroup    NamedResource `json:"version_group"`
}

type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

type Cries struct {
	Latest *string `json:"latest"`
	Legacy *string `json:"legacy"`
}

// Sprites holds the legacy low-resolution sprite URLs and the alternative
// artwork sources under Other.
type Sprites struct {
	FrontDefault *string       `json:"front_default"`
	BackDefault  *string       `json:"back_default"`
	FrontShiny   *string       `json:"front_shiny"`
	BackShiny    *string       `json:"back_shiny"`
	Other        *OtherSprites `json:"other"`
}

type OtherSprites struct {
	OfficialArtwork *SpriteSet `json:"official-artwork"`
	Showdown        *SpriteSet `json:"showdown"`
}

type SpriteSet struct {
	FrontDefault *string `json:"front_default"`
	BackDefault  *string `json:"back_default"`
	FrontShiny   *string `json:"front_shiny"`
	BackShiny    *string `json:"back_shiny"`
}

// Ability is the ability/<id>/index.json document.
type Ability struct {
	ID            int            `json:"id"`
	Name          string         `json:"name"`
	EffectEntries []EffectEntry  `json:"effect_entries"`
	EffectChanges []EffectChange `json:"effect_changes"`
}

// PokemonForm is the pokemon-form/<id>/index.json document.
type PokemonForm struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	FormName  string `json:"form_name"`
	IsDefault bool   `json:"is_default"`
	IsMega    bool   `json:"is_mega"`
	Order     int    `json:"order"`
}

// Move is the move/<id>/index.json document.
type Move struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Accuracy      *int          `json:"accuracy"`
	Power         *int          `json:"power"`
	Type          NamedResource `json:"type"`
	EffectEntries []EffectEntry `json:"effect_entries"`
}

// Type is the type/<id>/index.json document.
type Type struct {
	ID              int              `json:"id"`
	Name            string           `json:"name"`
	DamageRelations *DamageRelations `json:"damage_relations"`
}

type DamageRelations struct {
	DoubleDamageFrom []NamedResource `json:"double_damage_from"`
	DoubleDamageTo   []NamedResource `json:"double_damage_to"`
	HalfDamageFrom   []NamedResource `json:"half_damage_from"`
	HalfDamageTo     []NamedResource `json:"half_damage_to"`
	NoDamageFrom     []NamedResource `json:"no_damage_from"`
	NoDamageTo       []NamedResource `json:"no_damage_to"`
}

// PokemonSpecies is the pokemon-species/<id>/index.json document.
type PokemonSpecies struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	BaseHappiness     *int              `json:"base_happiness"`
	CaptureRate       int               `json:"capture_rate"`
	Color             NamedResource     `json:"color"`
	EggGroups         []NamedResource   `json:"egg_groups"`
	Habitat           *NamedResource    `json:"habitat"`
	FlavorTextEntries []FlavorTextEntry `json:"flavor_text_entries"`
	Generation        NamedResource     `json:"generation"`
	EvolutionChain    *APIResource      `json:"evolution_chain"`
}

// APIResource is an unnamed reference.
type APIResource struct {
	URL string `json:"url"`
}

// EvolutionChain is the evolution-chain/<id>/index.json document.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

type ChainLink struct {
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

type EvolutionDetail struct {
	Trigger  *NamedResource `json:"trigger"`
	MinLevel *int           `json:"min_level"`
}

// Generation is the generation/<id>/index.json document.
type Generation struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	MainRegion     NamedResource   `json:"main_region"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
}
