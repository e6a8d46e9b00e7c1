package dex

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ColorHex converts a species color name (e.g., "red") to a "#RRGGBB" string
// using the named color table of tcell. It reports false for names the table
// does not know.
func ColorHex(name string) (string, bool) {
	color := tcell.GetColor(strings.ToLower(strings.TrimSpace(name)))
	if color == tcell.ColorDefault {
		return "", false
	}

	hex := color.Hex()
	if hex < 0 {
		return "", false
	}
	return fmt.Sprintf("#%06X", hex), true
}
