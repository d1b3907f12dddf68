// Package sysinfo gathers the host facts shown next to the logo.
//
// Each fact is an independent query that may fail. Failures never propagate:
// they are collapsed into a placeholder value at the Resolve boundary so the
// display always has one line per fact.
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"fakefetch/logging"
)

// ErrUnavailable is the only error kind a fact query reports. Missing
// commands, permission problems and parse failures all wrap it.
var ErrUnavailable = errors.New("unavailable")

// Fact labels, in display order.
const (
	LabelOS       = "OS"
	LabelHostname = "Hostname"
	LabelKernel   = "Kernel"
	LabelUptime   = "Uptime"
	LabelPackages = "Packages"
	LabelShell    = "Shell"
	LabelTerminal = "Terminal"
	LabelCPU      = "CPU"
	LabelMemory   = "Memory"
)

// Labels lists the fact labels in the fixed display order.
var Labels = []string{
	LabelOS,
	LabelHostname,
	LabelKernel,
	LabelUptime,
	LabelPackages,
	LabelShell,
	LabelTerminal,
	LabelCPU,
	LabelMemory,
}

// DefaultTimeout bounds a single fact query.
const DefaultTimeout = 2 * time.Second

// MaxValueWidth is the widest value a fact line may carry.
const MaxValueWidth = 72

// placeholderPrefix starts every value produced for a failed query.
const placeholderPrefix = "cannot be retrieved: "

// Fact is one labeled line of host information. Value is never empty.
type Fact struct {
	Label string
	Value string
}

// Identity is the user@host pair shown in the header.
type Identity struct {
	User string
	Host string
}

// Provider answers the nine fact queries. Implementations should honor ctx
// so that a hung external command is abandoned when the query times out.
type Provider interface {
	OS(ctx context.Context) (string, error)
	Hostname(ctx context.Context) (string, error)
	Kernel(ctx context.Context) (string, error)
	Uptime(ctx context.Context) (string, error)
	Packages(ctx context.Context) (string, error)
	Shell(ctx context.Context) (string, error)
	Terminal(ctx context.Context) (string, error)
	CPU(ctx context.Context) (string, error)
	Memory(ctx context.Context) (string, error)
}

type query struct {
	label string
	run   func(context.Context) (string, error)
}

func queries(p Provider) []query {
	return []query{
		{LabelOS, p.OS},
		{LabelHostname, p.Hostname},
		{LabelKernel, p.Kernel},
		{LabelUptime, p.Uptime},
		{LabelPackages, p.Packages},
		{LabelShell, p.Shell},
		{LabelTerminal, p.Terminal},
		{LabelCPU, p.CPU},
		{LabelMemory, p.Memory},
	}
}

type collectConfig struct {
	timeout time.Duration
}

// Option customizes Collect.
type Option func(*collectConfig)

// WithTimeout sets the per-query timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *collectConfig) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Collect runs every query of p and returns one Fact per label, in the
// order of Labels.
//
// Queries run concurrently. Each writes only its own slot and gets its own
// timeout, so a slow or failing query cannot affect the others. A query that
// panics is reported as unavailable.
func Collect(ctx context.Context, p Provider, opts ...Option) []Fact {
	cfg := collectConfig{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	qs := queries(p)
	facts := make([]Fact, len(qs))

	var g errgroup.Group
	for i, q := range qs {
		i, q := i, q
		g.Go(func() error {
			facts[i] = runQuery(ctx, q, cfg.timeout)
			return nil
		})
	}
	_ = g.Wait()

	return facts
}

func runQuery(ctx context.Context, q query, timeout time.Duration) (f Fact) {
	defer func() {
		if r := recover(); r != nil {
			f = Resolve(q.label, "", fmt.Errorf("%w: panic: %v", ErrUnavailable, r))
		}
	}()

	qctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	value, err := q.run(qctx)
	logging.Debug("fact query finished",
		zap.String("fact", q.label),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Resolve(q.label, value, err)
}

// Resolve collapses a query result into a Fact. An error, or an empty value,
// becomes a "cannot be retrieved" placeholder. The value is flattened to a
// single line and truncated to MaxValueWidth.
func Resolve(label, value string, err error) Fact {
	value = strings.Join(strings.Fields(value), " ")
	if err == nil && value == "" {
		err = fmt.Errorf("%w: empty value", ErrUnavailable)
	}
	if err != nil {
		logging.Debug("fact unavailable", zap.String("fact", label), zap.Error(err))
		value = Placeholder(err)
	}
	return Fact{Label: label, Value: TruncateString(value, MaxValueWidth)}
}

// Placeholder renders err as the value shown for an unavailable fact.
func Placeholder(err error) string {
	reason := strings.TrimPrefix(err.Error(), ErrUnavailable.Error()+": ")
	reason = strings.Join(strings.Fields(reason), " ")
	if reason == "" || reason == ErrUnavailable.Error() {
		reason = "unknown reason"
	}
	return placeholderPrefix + reason
}

// IsPlaceholder reports whether value was produced for a failed query.
func IsPlaceholder(value string) bool {
	return strings.HasPrefix(value, placeholderPrefix)
}

// CurrentIdentity returns the current user and host name. Parts that cannot
// be determined are reported as "unknown".
func CurrentIdentity() Identity {
	id := Identity{User: "unknown", Host: "unknown"}

	if u, err := user.Current(); err == nil && u.Username != "" {
		name := u.Username
		// Windows reports DOMAIN\user.
		if i := strings.LastIndex(name, `\`); i >= 0 {
			name = name[i+1:]
		}
		id.User = name
	} else if name := firstEnv("USER", "USERNAME", "LOGNAME"); name != "" {
		id.User = name
	}

	if host, err := os.Hostname(); err == nil && host != "" {
		id.Host = host
	}
	return id
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}
