// Package qreg - functional configuration for the register: randomness
// source, trace hooks and zero-amplitude policy.
//
// Design goals (shared across the module):
//   - Determinism: no time-based seeding anywhere; the default source is a
//     fixed-seed math/rand stream, so runs reproduce unless the caller
//     injects entropy.
//   - Safety: option constructors panic only on nonsensical values
//     (programmer error); nil funcs and nil sources mean "keep the default".
//   - No logging in the engine; observability goes through the hooks.
package qreg

import "math/rand"

// DefaultSeed is the fixed "zero" seed behind DefaultOptions and
// WithSeed(0). The value is arbitrary but stable to keep reproducible
// defaults.
const DefaultSeed int64 = 1

// Internal panic messages (no magic strings at call sites).
const panicZeroPolicyInvalid = "qreg: WithZeroPolicy: unknown policy"

// Options holds the tunable knobs of a State. The zero value is not
// meaningful; start from DefaultOptions (New does this for you).
type Options struct {
	// Rand supplies measurement randomness. Never nil after DefaultOptions.
	// math/rand.Rand is not goroutine-safe; share one State across
	// goroutines, not one Rand across States.
	Rand Uniform

	// OnGate fires on entry to every gate application, after index
	// validation and before the state changes. It receives plain values and
	// must not call back into the State.
	OnGate func(g Gate, qubits []int)

	// OnMeasure fires after a measurement has collapsed the state.
	// probZero is the pre-collapse probability of outcome 0.
	OnMeasure func(qubit, outcome int, probZero float64)

	// ZeroPolicy selects pruning behavior for exact-zero amplitudes.
	ZeroPolicy ZeroPolicy
}

// Option mutates Options. Options are applied in order; last write wins.
type Option func(*Options)

// DefaultOptions returns the baseline configuration:
//   - Rand: deterministic stream seeded with DefaultSeed
//   - OnGate / OnMeasure: no-op hooks
//   - ZeroPolicy: DropZeros
func DefaultOptions() Options {
	return Options{
		Rand:       rand.New(rand.NewSource(DefaultSeed)),
		OnGate:     func(Gate, []int) {},
		OnMeasure:  func(int, int, float64) {},
		ZeroPolicy: DropZeros,
	}
}

// WithSeed replaces the randomness source with a deterministic math/rand
// stream. Policy: seed==0 ⇒ DefaultSeed; any other value is used verbatim.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		s := seed
		if s == 0 {
			s = DefaultSeed
		}
		o.Rand = rand.New(rand.NewSource(s))
	}
}

// WithRand injects a caller-supplied randomness source, e.g. a shared
// stream or handcrafted draws in tests. nil keeps the current source.
func WithRand(u Uniform) Option {
	return func(o *Options) {
		if u != nil {
			o.Rand = u
		}
	}
}

// WithOnGate registers a gate trace hook. nil keeps the no-op hook.
func WithOnGate(fn func(g Gate, qubits []int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGate = fn
		}
	}
}

// WithOnMeasure registers a measurement trace hook. nil keeps the no-op hook.
func WithOnMeasure(fn func(qubit, outcome int, probZero float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMeasure = fn
		}
	}
}

// WithZeroPolicy selects pruning behavior for exact-zero amplitudes.
// Panics on values outside the declared enum.
func WithZeroPolicy(p ZeroPolicy) Option {
	return func(o *Options) {
		if p != DropZeros && p != RetainZeros {
			panic(panicZeroPolicyInvalid)
		}
		o.ZeroPolicy = p
	}
}
