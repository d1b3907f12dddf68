// Package display turns a theme and a set of facts into the side-by-side
// terminal output: the info block on the right, the colored logo on the left.
package display

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches SGR escape sequences for removal/measurement purposes.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// StripANSI removes color escape sequences from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// VisibleWidth returns the number of terminal columns s occupies, ignoring
// color escape sequences and counting wide runes as two columns.
//
// Every width computation in this package goes through VisibleWidth.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// PadRight appends spaces to s until it is width columns wide. Strings that
// are already wide enough are returned unchanged.
//
// Example: PadRight("\033[31mHi\033[0m", 5) returns "\033[31mHi\033[0m   "
func PadRight(s string, width int) string {
	n := width - VisibleWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
