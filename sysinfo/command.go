package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
)

// runCommand runs name with args under ctx and returns raw stdout. The
// process is killed when ctx expires, so a hung command costs at most one
// query timeout.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	c := exec.CommandContext(ctx, name, args...)
	out, err := c.Output()
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, name, ctx.Err())
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrUnavailable, name, err)
	}
	return out, nil
}

// packageCount is the number of packages one manager reports.
type packageCount struct {
	manager string
	count   int
}

// packageSummary renders per-manager counts as "N (apt, pacman)". With no
// manager present the value says so rather than failing.
func packageSummary(counts []packageCount) string {
	if len(counts) == 0 {
		return "Unknown package manager"
	}
	total := 0
	names := ""
	for i, c := range counts {
		total += c.count
		if i > 0 {
			names += ", "
		}
		names += c.manager
	}
	return fmt.Sprintf("%d (%s)", total, names)
}
