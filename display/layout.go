package display

import (
	"errors"
	"fmt"
	"strings"

	"fakefetch/ascii"
)

// DefaultGutter is the number of columns added after the widest logo line.
// Layout always adds one more space before the info text.
const DefaultGutter = 2

// ErrEmptyArt reports a theme without a single art line. It is a
// configuration error, unlike an unavailable fact.
var ErrEmptyArt = errors.New("theme has no art lines")

// Layout merges art and info into one line per art line.
//
// Art line i is padded to the widest art line plus gutter, then joined to
// info line i by a single space. Art lines without a matching info line are
// emitted as they are. Info lines beyond the last art line are dropped: the
// logo decides the height of the output.
//
// Widths are visible widths, so art lines may already be colorized.
func Layout(art, info []string, gutter int) []string {
	if len(art) == 0 {
		return nil
	}
	if gutter < 0 {
		gutter = 0
	}

	artWidth := 0
	for _, line := range art {
		if w := VisibleWidth(line); w > artWidth {
			artWidth = w
		}
	}

	out := make([]string, len(art))
	for i, line := range art {
		if i < len(info) {
			out[i] = PadRight(line, artWidth+gutter) + " " + info[i]
		} else {
			out[i] = line
		}
	}
	return out
}

// Render colorizes the theme art, lays it out next to info and joins the
// result with newlines. A theme with no art lines yields ErrEmptyArt.
func Render(theme ascii.Theme, info []string, gutter int) (string, error) {
	if len(theme.Art) == 0 {
		return "", fmt.Errorf("render %q: %w", theme.Name, ErrEmptyArt)
	}
	return strings.Join(Layout(theme.Colorized(), info, gutter), "\n"), nil
}
