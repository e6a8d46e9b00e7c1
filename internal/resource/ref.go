package resource

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrMalformedReference is returned when a locator carries no numeric id.
var ErrMalformedReference = errors.New("malformed resource reference")

// Kind names one of the resource categories of the dataset mirror.
type Kind string

const (
	KindPokemon        Kind = "pokemon"
	KindAbility        Kind = "ability"
	KindForm           Kind = "pokemon-form"
	KindMove           Kind = "move"
	KindSpecies        Kind = "pokemon-species"
	KindType           Kind = "type"
	KindEvolutionChain Kind = "evolution-chain"
	KindGeneration     Kind = "generation"
)

// Path returns the location of a resource document relative to the dataset root.
func Path(kind Kind, id int) string {
	return filepath.Join(string(kind), strconv.Itoa(id), "index.json")
}

// IDFromRef extracts the numeric id from the last path segment of a locator
// such as "https://pokeapi.co/api/v2/pokemon-species/25/". Trailing
// separators are ignored.
func IDFromRef(ref string) (int, error) {
	trimmed := strings.TrimRight(ref, "/")
	last := trimmed[strings.LastIndex(trimmed, "/")+1:]

	id, err := strconv.Atoi(last)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedReference, ref)
	}
	return id, nil
}
