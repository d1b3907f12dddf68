// Package sysinfo - Formatting utilities
package sysinfo

import (
	"bytes"
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

const mebibyte = 1024 * 1024

// FormatUptime renders a duration as days, hours and minutes.
//
// Example: FormatUptime(26*time.Hour + 5*time.Minute) returns "1d 2h 5m"
func FormatUptime(uptime time.Duration) string {
	if uptime < 0 {
		uptime = 0
	}
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	return fmt.Sprintf("%dd %dh %dm", days, hours, mins)
}

// FormatMiB renders used and total byte counts as whole mebibytes.
//
// Example: FormatMiB(512<<20, 2048<<20) returns "512 MiB / 2048 MiB"
func FormatMiB(used, total uint64) string {
	return fmt.Sprintf("%d MiB / %d MiB", used/mebibyte, total/mebibyte)
}

// CountLines returns the number of non-blank lines in command output.
func CountLines(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}

// TruncateString shortens s to at most maxWidth terminal columns, ending in
// "..." when something was cut.
//
// Example: TruncateString("Hello World", 8) returns "Hello..."
func TruncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
