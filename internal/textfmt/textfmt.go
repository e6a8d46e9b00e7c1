// Package textfmt normalizes upstream identifiers and prose for display.
package textfmt

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"

	"github.com/samdwyer/pokecollate/internal/pokeapi"
)

var (
	wordStart     = regexp.MustCompile(`\b\w`)
	nameSeparator = strings.NewReplacer("-", " ", "_", " ")
	controlChars  = strings.NewReplacer("\n", " ", "\f", " ")
)

// FormatName turns a machine name such as "mega-charizard-x" into its display
// form "Mega Charizard X". Only the first letter of each word changes case.
func FormatName(raw string) string {
	return wordStart.ReplaceAllStringFunc(nameSeparator.Replace(raw), strings.ToUpper)
}

// SentenceCase capitalizes the first character of every ". "-separated
// sentence and lower-cases the rest.
func SentenceCase(text string) string {
	sentences := strings.Split(text, ". ")
	for i, s := range sentences {
		r, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			continue
		}
		sentences[i] = string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
	}
	return strings.Join(sentences, ". ")
}

// CleanText replaces each embedded newline or form feed with a space.
func CleanText(text string) string {
	return controlChars.Replace(text)
}

var englishBase, _ = language.English.Base()

// IsEnglish reports whether a language resource name denotes English.
func IsEnglish(name string) bool {
	tag, err := language.Parse(name)
	if err != nil {
		return false
	}
	base, confidence := tag.Base()
	return confidence == language.Exact && base == englishBase
}

// DedupeFlavorText keeps the English entries, compares them cleaned and
// lower-cased, and returns each distinct text once in first-seen order,
// sentence-cased.
func DedupeFlavorText(entries []pokeapi.FlavorTextEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if !IsEnglish(e.Language.Name) {
			continue
		}
		text := strings.ToLower(CleanText(e.FlavorText))
		if _, ok := seen[text]; ok {
			continue
		}
		seen[text] = struct{}{}
		out = append(out, SentenceCase(text))
	}
	return out
}
