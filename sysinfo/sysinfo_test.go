package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubProvider answers each query from a map keyed by label.
type stubProvider struct {
	values map[string]string
	errs   map[string]error
	panics map[string]bool
	block  map[string]bool
	calls  atomic.Int32
}

func (s *stubProvider) answer(ctx context.Context, label string) (string, error) {
	s.calls.Add(1)
	if s.panics[label] {
		panic("boom in " + label)
	}
	if s.block[label] {
		<-ctx.Done()
		return "", fmt.Errorf("%w: %w", ErrUnavailable, ctx.Err())
	}
	if err := s.errs[label]; err != nil {
		return "", err
	}
	return s.values[label], nil
}

func (s *stubProvider) OS(ctx context.Context) (string, error) { return s.answer(ctx, LabelOS) }
func (s *stubProvider) Hostname(ctx context.Context) (string, error) {
	return s.answer(ctx, LabelHostname)
}
func (s *stubProvider) Kernel(ctx context.Context) (string, error) { return s.answer(ctx, LabelKernel) }
func (s *stubProvider) Uptime(ctx context.Context) (string, error) { return s.answer(ctx, LabelUptime) }
func (s *stubProvider) Packages(ctx context.Context) (string, error) {
	return s.answer(ctx, LabelPackages)
}
func (s *stubProvider) Shell(ctx context.Context) (string, error) { return s.answer(ctx, LabelShell) }
func (s *stubProvider) Terminal(ctx context.Context) (string, error) {
	return s.answer(ctx, LabelTerminal)
}
func (s *stubProvider) CPU(ctx context.Context) (string, error)    { return s.answer(ctx, LabelCPU) }
func (s *stubProvider) Memory(ctx context.Context) (string, error) { return s.answer(ctx, LabelMemory) }

func healthyValues() map[string]string {
	return map[string]string{
		LabelOS:       "Linux 6.8.0 x86_64",
		LabelHostname: "box",
		LabelKernel:   "6.8.0",
		LabelUptime:   "1d 2h 3m",
		LabelPackages: "1234 (apt)",
		LabelShell:    "zsh",
		LabelTerminal: "/dev/pts/0",
		LabelCPU:      "AMD Ryzen 7 7840U",
		LabelMemory:   "4096 MiB / 16384 MiB",
	}
}

func labelsOf(facts []Fact) []string {
	labels := make([]string, len(facts))
	for i, f := range facts {
		labels[i] = f.Label
	}
	return labels
}

func TestCollect_FixedOrder(t *testing.T) {
	p := &stubProvider{values: healthyValues()}

	facts := Collect(context.Background(), p)

	require.Len(t, facts, 9)
	assert.Equal(t, Labels, labelsOf(facts))
	for _, f := range facts {
		assert.Equal(t, healthyValues()[f.Label], f.Value)
	}
	assert.EqualValues(t, 9, p.calls.Load(), "each query runs exactly once")
}

func TestCollect_AllFailing(t *testing.T) {
	errs := make(map[string]error, len(Labels))
	for _, l := range Labels {
		errs[l] = fmt.Errorf("%w: %s exploded", ErrUnavailable, strings.ToLower(l))
	}
	p := &stubProvider{errs: errs}

	facts := Collect(context.Background(), p)

	require.Len(t, facts, 9)
	assert.Equal(t, Labels, labelsOf(facts))
	for _, f := range facts {
		assert.NotEmpty(t, f.Value)
		assert.True(t, IsPlaceholder(f.Value), "%s: %q", f.Label, f.Value)
		assert.Contains(t, f.Value, "exploded")
	}
}

func TestCollect_FailureIsIsolated(t *testing.T) {
	p := &stubProvider{
		values: healthyValues(),
		errs:   map[string]error{LabelCPU: errors.New("lscpu: not found")},
		panics: map[string]bool{LabelShell: true},
	}

	facts := Collect(context.Background(), p)

	require.Len(t, facts, 9)
	for _, f := range facts {
		switch f.Label {
		case LabelCPU:
			assert.Equal(t, "cannot be retrieved: lscpu: not found", f.Value)
		case LabelShell:
			assert.True(t, IsPlaceholder(f.Value))
			assert.Contains(t, f.Value, "boom in Shell")
		default:
			assert.Equal(t, healthyValues()[f.Label], f.Value)
		}
	}
}

func TestCollect_SlowQueryTimesOut(t *testing.T) {
	p := &stubProvider{
		values: healthyValues(),
		block:  map[string]bool{LabelPackages: true},
	}

	start := time.Now()
	facts := Collect(context.Background(), p, WithTimeout(50*time.Millisecond))

	assert.Less(t, time.Since(start), 2*time.Second)
	require.Len(t, facts, 9)
	assert.Equal(t, LabelPackages, facts[4].Label)
	assert.True(t, IsPlaceholder(facts[4].Value))
	assert.Contains(t, facts[4].Value, "deadline exceeded")
	assert.Equal(t, "zsh", facts[5].Value)
}

func TestCollect_EmptyValueIsUnavailable(t *testing.T) {
	values := healthyValues()
	values[LabelTerminal] = "   "
	p := &stubProvider{values: values}

	facts := Collect(context.Background(), p)

	assert.Equal(t, "cannot be retrieved: empty value", facts[6].Value)
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name  string
		value string
		err   error
		want  string
	}{
		{"plain value", "zsh", nil, "zsh"},
		{"multi-line value is flattened", "line one\nline two", nil, "line one line two"},
		{"wrapped unavailable", "", fmt.Errorf("%w: SHELL is not set", ErrUnavailable), "cannot be retrieved: SHELL is not set"},
		{"bare unavailable", "", ErrUnavailable, "cannot be retrieved: unknown reason"},
		{"foreign error", "", errors.New("permission denied"), "cannot be retrieved: permission denied"},
		{"empty value", "", nil, "cannot be retrieved: empty value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Resolve(LabelShell, tt.value, tt.err)
			assert.Equal(t, LabelShell, f.Label)
			assert.Equal(t, tt.want, f.Value)
		})
	}
}

func TestResolve_Truncates(t *testing.T) {
	f := Resolve(LabelCPU, strings.Repeat("x", 200), nil)

	assert.Len(t, f.Value, MaxValueWidth)
	assert.True(t, strings.HasSuffix(f.Value, "..."))
}

func TestPackageSummary(t *testing.T) {
	assert.Equal(t, "Unknown package manager", packageSummary(nil))
	assert.Equal(t, "12 (apt)", packageSummary([]packageCount{{"apt", 12}}))
	assert.Equal(t, "15 (apt, pacman)", packageSummary([]packageCount{{"apt", 12}, {"pacman", 3}}))
}

func TestRunCommand_Missing(t *testing.T) {
	_, err := runCommand(context.Background(), "fakefetch-no-such-command")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCurrentIdentity(t *testing.T) {
	id := CurrentIdentity()

	assert.NotEmpty(t, id.User)
	assert.NotEmpty(t, id.Host)
	assert.NotContains(t, id.User, `\`)
}

func TestNewProvider_NeverEmpty(t *testing.T) {
	facts := Collect(context.Background(), NewProvider(), WithTimeout(5*time.Second))

	require.Len(t, facts, 9)
	assert.Equal(t, Labels, labelsOf(facts))
	for _, f := range facts {
		assert.NotEmpty(t, f.Value, f.Label)
	}
}
