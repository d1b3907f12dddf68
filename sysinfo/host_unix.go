//go:build linux || darwin || freebsd || netbsd || openbsd

package sysinfo

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"fakefetch/logging"
)

// packageManager describes how to count the packages one manager installed.
type packageManager struct {
	name string
	cmd  string
	args []string
}

var packageManagers = []packageManager{
	{name: "apt", cmd: "dpkg-query", args: []string{"-f", "${binary:Package}\\n", "-W"}},
	{name: "pacman", cmd: "pacman", args: []string{"-Qq"}},
	{name: "rpm", cmd: "rpm", args: []string{"-qa"}},
}

func uname() (unix.Utsname, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		return u, fmt.Errorf("%w: uname: %w", ErrUnavailable, err)
	}
	return u, nil
}

func (hostProvider) OS(context.Context) (string, error) {
	u, err := uname()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s",
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Machine[:]),
	), nil
}

func (hostProvider) Kernel(context.Context) (string, error) {
	u, err := uname()
	if err != nil {
		return "", err
	}
	return unix.ByteSliceToString(u.Release[:]), nil
}

func (hostProvider) Shell(context.Context) (string, error) {
	return shellFromEnv()
}

// Terminal reports the device attached to standard input.
func (hostProvider) Terminal(context.Context) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("%w: stdin is not a terminal", ErrUnavailable)
	}
	if name, err := os.Readlink("/proc/self/fd/0"); err == nil {
		return name, nil
	}
	if tty := os.Getenv("TTY"); tty != "" {
		return tty, nil
	}
	return "", fmt.Errorf("%w: cannot resolve terminal device", ErrUnavailable)
}

// countPackages asks every installed package manager for its package list.
// Managers whose command is absent are skipped; a present manager that fails
// makes the whole count unavailable.
func countPackages(ctx context.Context) ([]packageCount, error) {
	var counts []packageCount
	for _, pm := range packageManagers {
		if _, err := exec.LookPath(pm.cmd); err != nil {
			continue
		}
		out, err := runCommand(ctx, pm.cmd, pm.args...)
		if err != nil {
			return nil, err
		}
		n := CountLines(out)
		logging.Debug("package manager counted",
			zap.String("manager", pm.name),
			zap.Int("packages", n),
		)
		if n == 0 {
			continue
		}
		counts = append(counts, packageCount{manager: pm.name, count: n})
	}
	return counts, nil
}
