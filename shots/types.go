// Package shots - result types, options and sentinel errors.
package shots

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/qsim/qreg"
)

// Sentinel errors returned by Run.
var (
	// ErrNilCircuit indicates a nil *circuit.Circuit was passed.
	ErrNilCircuit = errors.New("shots: circuit is nil")

	// ErrShotCount indicates a non-positive shot count.
	ErrShotCount = errors.New("shots: shot count must be at least one")

	// ErrNoClassical indicates the circuit has no classical bits, so shots
	// would have nothing to read out.
	ErrNoClassical = errors.New("shots: circuit records no classical bits")
)

// Counts is a histogram of classical register readouts:
// bitstring (index order) -> occurrences.
type Counts map[string]int

// Total returns the number of shots aggregated in the histogram.
func (c Counts) Total() int {
	var n int
	for _, v := range c {
		n += v
	}

	return n
}

// Probability returns the observed frequency of the given readout,
// 0 for readouts that never occurred (or on an empty histogram).
func (c Counts) Probability(key string) float64 {
	t := c.Total()
	if t == 0 {
		return 0
	}

	return float64(c[key]) / float64(t)
}

// String renders the histogram one readout per line, sorted by bitstring:
//
//	00: 503
//	11: 497
func (c Counts) String() string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %d", k, c[k])
	}

	return b.String()
}

// Result is the aggregate of one multi-shot run.
type Result struct {
	// ID is a fresh UUID identifying this run, for log and report
	// correlation.
	ID string

	// Seed is the base seed the per-shot streams were derived from.
	Seed int64

	// Shots is the number of executions aggregated.
	Shots int

	// Counts maps classical register readouts to occurrences.
	Counts Counts
}

// Options holds the tunable knobs of a multi-shot run.
type Options struct {
	// Seed is the base of every per-shot randomness stream.
	Seed int64

	// StateOpts are forwarded to each per-shot register (hooks, zero
	// policy). A qreg.WithRand here is overridden by the derived per-shot
	// stream, which is always applied last.
	StateOpts []qreg.Option
}

// Option mutates Options. Options are applied in order; last write wins.
type Option func(*Options)

// DefaultOptions returns the baseline configuration: base seed
// qreg.DefaultSeed and no extra register options.
func DefaultOptions() Options {
	return Options{Seed: qreg.DefaultSeed}
}

// WithSeed sets the base seed of the per-shot streams.
// Policy: seed==0 ⇒ qreg.DefaultSeed; any other value is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		s := seed
		if s == 0 {
			s = qreg.DefaultSeed
		}
		o.Seed = s
	}
}

// WithStateOptions appends register options forwarded to every shot.
func WithStateOptions(opts ...qreg.Option) Option {
	return func(o *Options) {
		o.StateOpts = append(o.StateOpts, opts...)
	}
}
