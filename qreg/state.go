// Package qreg - the State container: construction, accessors, cloning.
package qreg

import (
	"sort"
	"sync"
)

// State is a quantum register of QubitCount qubits with an auxiliary
// classical register of ClassicalCount bits.
//
// Semantics:
//   - Amplitudes live in a sparse mapping from basis keys to complex128;
//     keys absent from the mapping carry amplitude zero.
//   - A fresh State is the all-zero key with amplitude 1 and a zeroed
//     classical register.
//   - Mutators (gates, measurements) return the receiver for chaining and
//     panic on precondition violations; queries return errors instead.
//
// Concurrency: all methods are safe for concurrent use. Mutators serialize
// behind a write lock, so each gate or measurement observes and produces a
// consistent snapshot. Register widths are fixed at construction and read
// without locking.
type State struct {
	mu     sync.RWMutex
	opts   Options
	amps   map[Key]complex128
	creg   []int
	qubits int
	clbits int
}

// New allocates a State of the given widths. qubits must be at least 1
// (ErrQubitCount) and clbits non-negative (ErrClassicalCount). Options
// start from DefaultOptions with the given overrides applied in order.
func New(qubits, clbits int, opts ...Option) (*State, error) {
	if qubits < 1 {
		return nil, ErrQubitCount
	}
	if clbits < 0 {
		return nil, ErrClassicalCount
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &State{
		opts:   o,
		amps:   make(map[Key]complex128, 1),
		creg:   make([]int, clbits),
		qubits: qubits,
		clbits: clbits,
	}
	s.amps[ZeroKey(qubits)] = 1

	return s, nil
}

// MustNew is New that panics on error; convenient for chained literals:
//
//	st := qreg.MustNew(2, 0).H(0).CX(0, 1)
func MustNew(qubits, clbits int, opts ...Option) *State {
	s, err := New(qubits, clbits, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// QubitCount returns the number of qubits in the register.
func (s *State) QubitCount() int { return s.qubits }

// ClassicalCount returns the number of classical bits in the register.
func (s *State) ClassicalCount() int { return s.clbits }

// ClassicalBit returns the classical bit stored at index i.
func (s *State) ClassicalBit(i int) (int, error) {
	if i < 0 || i >= s.clbits {
		return 0, ErrClassicalOutOfRange
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.creg[i], nil
}

// ClassicalBits returns a copy of the classical register in index order.
func (s *State) ClassicalBits() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, len(s.creg))
	copy(out, s.creg)

	return out
}

// Amplitude returns the amplitude attached to key k; absent keys report
// zero. The key must be well formed (ErrMalformedKey) and exactly
// QubitCount wide (ErrKeyLength).
func (s *State) Amplitude(k Key) (complex128, error) {
	if _, err := ParseKey(string(k)); err != nil {
		return 0, err
	}
	if k.Len() != s.qubits {
		return 0, ErrKeyLength
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.amps[k], nil
}

// TotalProbability returns the sum of |amplitude|^2 over all entries.
// Gates preserve it up to floating-point rounding and nothing renormalizes
// between measurements, so a healthy state keeps it within 1e-9 of one.
func (s *State) TotalProbability() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p float64
	for _, a := range s.amps {
		p += real(a)*real(a) + imag(a)*imag(a)
	}

	return p
}

// Entries returns the nonzero rows of the state, sorted by key.
func (s *State) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.entriesLocked()
}

// entriesLocked collects nonzero rows in key order. Callers hold s.mu.
func (s *State) entriesLocked() []Entry {
	out := make([]Entry, 0, len(s.amps))
	for k, a := range s.amps {
		if a == 0 {
			continue
		}
		out = append(out, Entry{Key: k, Amp: a})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// Clone returns a deep copy of the state: amplitudes and classical register
// are fresh, configuration (hooks, zero policy) is carried over, and the
// randomness source is shared with the original. Build clones with New plus
// WithSeed or WithRand when independent streams are needed.
func (s *State) Clone() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amps := make(map[Key]complex128, len(s.amps))
	for k, a := range s.amps {
		amps[k] = a
	}
	creg := make([]int, len(s.creg))
	copy(creg, s.creg)

	return &State{
		opts:   s.opts,
		amps:   amps,
		creg:   creg,
		qubits: s.qubits,
		clbits: s.clbits,
	}
}
