//go:build windows

package sysinfo

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sys/windows/registry"
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

var uninstallKeys = []string{
	`SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`,
	`SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\Uninstall`,
}

// OS reads the product name and display version from the registry, e.g.
// "Windows 11 Pro 23H2 amd64".
func (hostProvider) OS(context.Context) (string, error) {
	product, err := registryString(registry.LOCAL_MACHINE, currentVersionKey, "ProductName")
	if err != nil {
		return "", err
	}
	build, _ := registryString(registry.LOCAL_MACHINE, currentVersionKey, "CurrentBuild")
	// Windows 11 still reports "Windows 10" as its product name.
	if build >= "22000" && len(build) == 5 && strings.Contains(product, "Windows 10") {
		product = strings.Replace(product, "Windows 10", "Windows 11", 1)
	}
	if display, derr := registryString(registry.LOCAL_MACHINE, currentVersionKey, "DisplayVersion"); derr == nil {
		product += " " + display
	}
	return product + " " + runtime.GOARCH, nil
}

func (hostProvider) Kernel(context.Context) (string, error) {
	build, err := registryString(registry.LOCAL_MACHINE, currentVersionKey, "CurrentBuild")
	if err != nil {
		return "", err
	}
	return "Build " + build, nil
}

func (hostProvider) Shell(context.Context) (string, error) {
	if os.Getenv("PSModulePath") != "" {
		return "PowerShell", nil
	}
	if sh, err := shellFromEnv(); err == nil {
		return sh, nil
	}
	if spec := os.Getenv("ComSpec"); spec != "" {
		return spec, nil
	}
	return "", fmt.Errorf("%w: no shell environment found", ErrUnavailable)
}

func (hostProvider) Terminal(context.Context) (string, error) {
	if os.Getenv("WT_SESSION") != "" {
		return "Windows Terminal", nil
	}
	if t := os.Getenv("TERM_PROGRAM"); t != "" {
		return t, nil
	}
	if t := os.Getenv("TERM"); t != "" {
		return t, nil
	}
	return "conhost", nil
}

// countPackages counts the entries under the Uninstall registry keys.
func countPackages(context.Context) ([]packageCount, error) {
	count := 0
	for _, path := range uninstallKeys {
		k, err := registry.OpenKey(registry.LOCAL_MACHINE, path, registry.ENUMERATE_SUB_KEYS)
		if err != nil {
			continue
		}
		subkeys, err := k.ReadSubKeyNames(-1)
		_ = k.Close()
		if err != nil {
			continue
		}
		count += len(subkeys)
	}
	if count == 0 {
		return nil, nil
	}
	return []packageCount{{manager: "registry", count: count}}, nil
}

func registryString(key registry.Key, path, name string) (string, error) {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return "", fmt.Errorf("%w: registry %s: %w", ErrUnavailable, path, err)
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(name)
	if err != nil {
		return "", fmt.Errorf("%w: registry %s: %w", ErrUnavailable, name, err)
	}
	return strings.TrimSpace(value), nil
}
