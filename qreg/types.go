// Package qreg - core value types: basis keys, state entries, the fixed
// gate set and the randomness source interface.
package qreg

import (
	"fmt"
	"strings"
)

// Key is a computational-basis label: a fixed-width string of '0' and '1'
// bytes, one per qubit, qubit 0 first. Keys are immutable; Flip and With
// return fresh values. Ordering is plain string comparison, which on
// equal-width keys is exactly the bit-sequence order used for rendering.
type Key string

// ZeroKey returns the all-zero key of width n ("00...0").
// Panics with ErrQubitCount when n < 1.
func ZeroKey(n int) Key {
	if n < 1 {
		panic(fmt.Errorf("%w: got %d", ErrQubitCount, n))
	}
	return Key(strings.Repeat("0", n))
}

// ParseKey validates that s is a non-empty string of '0' and '1' bytes and
// returns it as a Key. Width is not checked here; State.Amplitude enforces
// it against the register.
func ParseKey(s string) (Key, error) {
	if len(s) == 0 {
		return "", ErrMalformedKey
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return "", fmt.Errorf("%w: byte %q at position %d", ErrMalformedKey, s[i], i)
		}
	}
	return Key(s), nil
}

// Len returns the key width in bits.
func (k Key) Len() int { return len(k) }

// String returns the raw bitstring.
func (k Key) String() string { return string(k) }

// Bit returns the bit at position i (0 or 1).
// Panics with ErrQubitOutOfRange when i is outside [0, Len()).
func (k Key) Bit(i int) int {
	k.mustIndex(i)
	if k[i] == '1' {
		return 1
	}
	return 0
}

// Flip returns a copy of k with bit i inverted.
// Panics with ErrQubitOutOfRange when i is outside [0, Len()).
func (k Key) Flip(i int) Key {
	k.mustIndex(i)
	b := []byte(k)
	if b[i] == '1' {
		b[i] = '0'
	} else {
		b[i] = '1'
	}
	return Key(b)
}

// With returns a copy of k with bit i set to the given value.
// Panics with ErrQubitOutOfRange on a bad index and with ErrMalformedKey on
// a bit value other than 0 or 1.
func (k Key) With(i, bit int) Key {
	k.mustIndex(i)
	if bit != 0 && bit != 1 {
		panic(fmt.Errorf("%w: bit value %d", ErrMalformedKey, bit))
	}
	if k.Bit(i) == bit {
		return k
	}
	return k.Flip(i)
}

// mustIndex panics when i is not a valid bit position of k.
func (k Key) mustIndex(i int) {
	if i < 0 || i >= len(k) {
		panic(fmt.Errorf("%w: index %d, key width %d", ErrQubitOutOfRange, i, len(k)))
	}
}

// Entry is one nonzero row of the state: a basis key and its amplitude.
type Entry struct {
	Key Key
	Amp complex128
}

// Gate identifies one member of the fixed gate set.
type Gate int

const (
	// GateX is the Pauli-X bit flip.
	GateX Gate = iota

	// GateCX is the controlled-X with explicit control and target.
	GateCX

	// GateS is the S phase gate (multiplies the bit-1 component by i).
	GateS

	// GateT is the T phase gate (multiplies the bit-1 component by e^{i*pi/4}).
	GateT

	// GateH is the Hadamard gate.
	GateH
)

// String returns the conventional gate name ("X", "CX", "S", "T", "H").
func (g Gate) String() string {
	switch g {
	case GateX:
		return "X"
	case GateCX:
		return "CX"
	case GateS:
		return "S"
	case GateT:
		return "T"
	case GateH:
		return "H"
	default:
		return fmt.Sprintf("Gate(%d)", int(g))
	}
}

// Arity returns the number of qubit operands the gate takes: 2 for CX,
// 1 for every other member of the set, 0 for values outside it.
func (g Gate) Arity() int {
	switch g {
	case GateCX:
		return 2
	case GateX, GateS, GateT, GateH:
		return 1
	default:
		return 0
	}
}

// Uniform is the source of measurement randomness. Each Float64 call must
// return a sample uniformly distributed in [0,1); *math/rand.Rand satisfies
// the interface. Sources returning values outside [0,1) break the
// measurement contract: a fabricated draw of 1.0 can select a branch of
// zero probability, which panics with ErrZeroProbability.
type Uniform interface {
	Float64() float64
}

// ZeroPolicy controls what happens to exact-zero amplitudes produced by
// interference cancellation or collapse.
//
//   - DropZeros   - prune zero entries as they arise; the mapping stays sparse.
//   - RetainZeros - keep zero entries; skips the pruning work at the cost of
//     memory, changes nothing observable.
//
// Every public view (Amplitude, Entries, String, probabilities) ignores
// exact zeros, so the two policies are observationally identical.
type ZeroPolicy int

const (
	// DropZeros prunes exact-zero amplitudes after every operation.
	DropZeros ZeroPolicy = iota

	// RetainZeros keeps zero entries in the mapping.
	RetainZeros
)
