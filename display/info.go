package display

import (
	"fmt"
	"strings"

	"fakefetch/ascii"
	"fakefetch/sysinfo"
)

// swatchBackgrounds are the seven background colors of the swatch footer.
var swatchBackgrounds = []int{41, 42, 43, 44, 45, 46, 47}

// Compose builds the info block: the user@host header, a separator as wide
// as the header, one line per fact in sysinfo.Labels order, a blank line and
// the color swatch.
//
// Facts are matched by label. A label with no fact, or an empty value, is
// shown as unavailable, so the block always holds every fact line.
func Compose(theme ascii.Theme, id sysinfo.Identity, facts []sysinfo.Fact) []string {
	header := ascii.Colorize(id.User, theme.Color) +
		ascii.Colorize("@", ascii.ColorNeutral) +
		ascii.Colorize(id.Host, theme.Color)
	separator := ascii.Colorize(strings.Repeat("-", VisibleWidth(header)), ascii.ColorNeutral)

	byLabel := make(map[string]string, len(facts))
	for _, f := range facts {
		byLabel[f.Label] = f.Value
	}

	lines := make([]string, 0, len(sysinfo.Labels)+4)
	lines = append(lines, header, separator)
	for _, label := range sysinfo.Labels {
		value := byLabel[label]
		if value == "" {
			value = sysinfo.Placeholder(fmt.Errorf("%w: not collected", sysinfo.ErrUnavailable))
		}
		lines = append(lines, FactLine(theme, label, value))
	}
	lines = append(lines, "", ColorSwatch())
	return lines
}

// FactLine renders "Label: value" with the label in the theme accent and the
// colon in the neutral color.
func FactLine(theme ascii.Theme, label, value string) string {
	return ascii.Colorize(label, theme.Color) + ascii.Colorize(":", ascii.ColorNeutral) + " " + value
}

// ColorSwatch returns seven three-column blocks, one per background color.
// It does not depend on the theme.
func ColorSwatch() string {
	var b strings.Builder
	for _, bg := range swatchBackgrounds {
		b.WriteString(ascii.Colorize("   ", fmt.Sprintf("\033[1;%dm", bg)))
	}
	return b.String()
}
