package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
)

// hostProvider answers fact queries about the machine the process runs on.
// OS, Kernel, Shell, Terminal and package counting are platform specific.
type hostProvider struct{}

// NewProvider returns the Provider for the local host.
func NewProvider() Provider {
	return hostProvider{}
}

func (hostProvider) Hostname(context.Context) (string, error) {
	name, err := os.Hostname()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return name, nil
}

func (hostProvider) Uptime(ctx context.Context) (string, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: uptime: %w", ErrUnavailable, err)
	}
	return FormatUptime(time.Duration(secs) * time.Second), nil
}

func (hostProvider) Packages(ctx context.Context) (string, error) {
	counts, err := countPackages(ctx)
	if err != nil {
		return "", err
	}
	return packageSummary(counts), nil
}

func (hostProvider) CPU(ctx context.Context) (string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: cpu: %w", ErrUnavailable, err)
	}
	for _, info := range infos {
		if info.ModelName != "" {
			return info.ModelName, nil
		}
	}
	return "", fmt.Errorf("%w: cpu: no model name reported", ErrUnavailable)
}

func (hostProvider) Memory(ctx context.Context) (string, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: memory: %w", ErrUnavailable, err)
	}
	return FormatMiB(vm.Used, vm.Total), nil
}

// shellFromEnv returns the base name of the login shell in $SHELL.
func shellFromEnv() (string, error) {
	sh := os.Getenv("SHELL")
	if sh == "" {
		return "", fmt.Errorf("%w: SHELL is not set", ErrUnavailable)
	}
	return filepath.Base(sh), nil
}
