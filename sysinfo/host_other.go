//go:build !linux && !darwin && !freebsd && !netbsd && !openbsd && !windows

package sysinfo

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"
)

func (hostProvider) OS(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: host info: %w", ErrUnavailable, err)
	}
	return strings.TrimSpace(fmt.Sprintf("%s %s %s", info.Platform, info.PlatformVersion, info.KernelArch)), nil
}

func (hostProvider) Kernel(ctx context.Context) (string, error) {
	v, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: kernel version: %w", ErrUnavailable, err)
	}
	return v, nil
}

func (hostProvider) Shell(context.Context) (string, error) {
	return shellFromEnv()
}

func (hostProvider) Terminal(context.Context) (string, error) {
	if t := os.Getenv("TERM"); t != "" {
		return t, nil
	}
	return "", fmt.Errorf("%w: TERM is not set", ErrUnavailable)
}

func countPackages(context.Context) ([]packageCount, error) {
	return nil, nil
}
