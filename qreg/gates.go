// Package qreg - the gate engine: the fixed gate set (X, CX, S, T, H) as
// chainable methods plus the Apply dispatcher.
//
// Every gate is one pass over the current mapping that emits rewritten
// (key, amplitude) pairs into a fresh mapping through a single
// accumulate-add insert. X, CX, S and T are bijective on keys, so their
// inserts never collide; H emits two children per entry and relies on the
// accumulation to merge contributions landing on the same key. Interference
// is complex addition at insert time, never an overwrite.
package qreg

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Gate coefficients.
var (
	// invSqrt2 is the Hadamard normalization factor 1/sqrt(2).
	invSqrt2 = complex(math.Sqrt(0.5), 0)

	// phaseS is the S-gate phase factor i.
	phaseS = complex(0, 1)

	// phaseT is the T-gate phase factor e^{i*pi/4}.
	phaseT = cmplx.Exp(complex(0, math.Pi/4))
)

// X applies the Pauli-X gate to qubit j: bit j of every key is inverted,
// amplitudes are untouched. Panics with ErrQubitOutOfRange on a bad index.
func (s *State) X(j int) *State {
	s.mustQubit(j)
	s.opts.OnGate(GateX, []int{j})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewrite(func(k Key, a complex128) (Key, complex128) {
		return k.Flip(j), a
	})

	return s
}

// CX applies the controlled-X gate: keys whose ctrl bit is 1 have their tgt
// bit inverted, all other keys pass through. Panics with ErrQubitOutOfRange
// on a bad index and with ErrControlTarget when ctrl == tgt (that rewrite
// would not be unitary).
func (s *State) CX(ctrl, tgt int) *State {
	s.mustQubit(ctrl)
	s.mustQubit(tgt)
	if ctrl == tgt {
		panic(fmt.Errorf("%w: qubit %d", ErrControlTarget, ctrl))
	}
	s.opts.OnGate(GateCX, []int{ctrl, tgt})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.rewrite(func(k Key, a complex128) (Key, complex128) {
		if k.Bit(ctrl) == 1 {
			return k.Flip(tgt), a
		}

		return k, a
	})

	return s
}

// S applies the S phase gate to qubit j: keys with bit j set have their
// amplitude multiplied by i. Panics with ErrQubitOutOfRange on a bad index.
func (s *State) S(j int) *State {
	s.mustQubit(j)
	s.opts.OnGate(GateS, []int{j})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase(j, phaseS)

	return s
}

// T applies the T phase gate to qubit j: keys with bit j set have their
// amplitude multiplied by e^{i*pi/4}. Two T applications equal one S up to
// floating-point rounding. Panics with ErrQubitOutOfRange on a bad index.
func (s *State) T(j int) *State {
	s.mustQubit(j)
	s.opts.OnGate(GateT, []int{j})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase(j, phaseT)

	return s
}

// H applies the Hadamard gate to qubit j. Each entry fans out into a bit-0
// child and a bit-1 child scaled by 1/sqrt(2); the bit-1 child is negated
// when the source bit was 1. Children landing on the same key merge by
// complex addition, which is where interference (and cancellation) happens.
// Panics with ErrQubitOutOfRange on a bad index.
func (s *State) H(j int) *State {
	s.mustQubit(j)
	s.opts.OnGate(GateH, []int{j})

	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[Key]complex128, 2*len(s.amps))
	for k, a := range s.amps {
		child := a * invSqrt2
		s.insert(next, k.With(j, 0), child)
		if k.Bit(j) == 1 {
			s.insert(next, k.With(j, 1), -child)
		} else {
			s.insert(next, k.With(j, 1), child)
		}
	}
	s.amps = next

	return s
}

// Apply dispatches g to the matching gate method, so recorded programs can
// drive the register generically. Panics with ErrUnknownGate for values
// outside the fixed set and with ErrGateArity when the operand count does
// not match g.Arity().
func (s *State) Apply(g Gate, qubits ...int) *State {
	s.mustArity(g, qubits)
	switch g {
	case GateX:
		return s.X(qubits[0])
	case GateCX:
		return s.CX(qubits[0], qubits[1])
	case GateS:
		return s.S(qubits[0])
	case GateT:
		return s.T(qubits[0])
	case GateH:
		return s.H(qubits[0])
	default:
		// unreachable: mustArity rejected unknown gates already
		panic(fmt.Errorf("%w: %d", ErrUnknownGate, int(g)))
	}
}

// mustArity validates g and the operand count for Apply.
func (s *State) mustArity(g Gate, qubits []int) {
	n := g.Arity()
	if n == 0 {
		panic(fmt.Errorf("%w: %d", ErrUnknownGate, int(g)))
	}
	if len(qubits) != n {
		panic(fmt.Errorf("%w: %s takes %d, got %d", ErrGateArity, g, n, len(qubits)))
	}
}

// mustQubit panics when j is not a valid qubit index for this register.
func (s *State) mustQubit(j int) {
	if j < 0 || j >= s.qubits {
		panic(fmt.Errorf("%w: index %d, register width %d", ErrQubitOutOfRange, j, s.qubits))
	}
}

// rewrite replaces the mapping with fn applied to every entry. fn must be a
// bijection on keys; the shared insert keeps the merge guarantee regardless.
// Callers hold s.mu.
func (s *State) rewrite(fn func(Key, complex128) (Key, complex128)) {
	next := make(map[Key]complex128, len(s.amps))
	for k, a := range s.amps {
		nk, na := fn(k, a)
		s.insert(next, nk, na)
	}
	s.amps = next
}

// phase multiplies the amplitude of every key with bit j set by factor;
// keys with bit j clear pass through. Callers hold s.mu.
func (s *State) phase(j int, factor complex128) {
	s.rewrite(func(k Key, a complex128) (Key, complex128) {
		if k.Bit(j) == 1 {
			return k, a * factor
		}

		return k, a
	})
}

// insert adds (k, a) into next, merging by complex addition when the key is
// already present. Under DropZeros an exact-zero result is pruned on the
// spot; the comparison is exact, so cancellation like x + (-x) hits it.
func (s *State) insert(next map[Key]complex128, k Key, a complex128) {
	sum := a
	if cur, ok := next[k]; ok {
		sum = cur + a
	}
	if sum == 0 && s.opts.ZeroPolicy == DropZeros {
		delete(next, k)

		return
	}
	next[k] = sum
}
