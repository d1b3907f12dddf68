// Package ascii provides the compiled-in art themes: a named ASCII logo
// paired with the accent color used to draw it and to label system facts.
package ascii

import "sort"

// Color codes shared by every theme.
const (
	ColorReset = "\033[0m"
	// ColorNeutral is bold white, used for punctuation and separators.
	ColorNeutral = "\033[1;37m"
)

const (
	// DefaultName is the theme every unknown name resolves to.
	DefaultName = "default"
	// CLIDefault is the theme drawn when no name is requested.
	CLIDefault = "arch"
)

// Theme pairs an art block with an accent color.
//
// Color is an opaque terminal escape sequence. It is never interpreted here,
// only prefixed to lines.
type Theme struct {
	Name  string
	Art   []string
	Color string
}

var themes = map[string]Theme{
	"default": {Name: "default", Art: defaultLogo, Color: "\033[1;36m"},
	"arch":    {Name: "arch", Art: archLogo, Color: "\033[38;2;23;147;208m"},
	"none":    {Name: "none", Art: blankLogo, Color: "\033[1;36m"},
	"rosa":    {Name: "rosa", Art: rosaLogo, Color: "\033[38;2;255;102;204m"},
	"redhat":  {Name: "redhat", Art: redhatLogo, Color: "\033[38;2;238;0;0m"},
	"manjaro": {Name: "manjaro", Art: manjaroLogo, Color: "\033[38;2;52;190;91m"},
}

// Lookup returns the theme registered under name.
//
// It never fails: any name that is not registered, including the empty
// string, yields the "default" theme. The returned Art is a copy, so callers
// cannot alter the registry.
func Lookup(name string) Theme {
	t, ok := themes[name]
	if !ok {
		t = themes[DefaultName]
	}
	t.Art = append([]string(nil), t.Art...)
	return t
}

// Has reports whether name is a registered theme.
func Has(name string) bool {
	_, ok := themes[name]
	return ok
}

// Names returns all registered theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Colorized returns the art lines each wrapped in the theme color and a
// reset, so the color never bleeds into whatever follows on the line.
func (t Theme) Colorized() []string {
	lines := make([]string, len(t.Art))
	for i, line := range t.Art {
		lines[i] = Colorize(line, t.Color)
	}
	return lines
}

// Colorize wraps text with a color code followed by a reset.
func Colorize(text, color string) string {
	return color + text + ColorReset
}
