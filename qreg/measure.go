// Package qreg - projective single-qubit measurement in the computational
// basis, with optional classical-bit recording.
package qreg

import (
	"fmt"
	"math"
)

// ProbabilityZero returns the marginal probability of reading 0 on the
// given qubit: the sum of |amplitude|^2 over keys whose bit is 0. The state
// is not changed.
func (s *State) ProbabilityZero(qubit int) (float64, error) {
	if qubit < 0 || qubit >= s.qubits {
		return 0, ErrQubitOutOfRange
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.probZeroLocked(qubit), nil
}

// Measure performs a projective measurement of the given qubit and discards
// the outcome (the OnMeasure hook still sees it). The state collapses onto
// the observed branch and is renormalized. Panics with ErrQubitOutOfRange
// on a bad index.
func (s *State) Measure(qubit int) *State {
	return s.measure(qubit, 0, false)
}

// MeasureInto measures the given qubit and records the outcome in classical
// bit clbit. Panics with ErrQubitOutOfRange or ErrClassicalOutOfRange on
// bad indices.
func (s *State) MeasureInto(qubit, clbit int) *State {
	return s.measure(qubit, clbit, true)
}

// measure implements the protocol shared by Measure and MeasureInto:
//
//  1. probZero = sum of |amplitude|^2 over keys with the measured bit 0.
//  2. Draw r from the configured Uniform source; outcome = 1 iff
//     r >= probZero. The convention is exact: a draw landing precisely on
//     probZero yields 1, so probZero == 0 always yields 1 and
//     probZero == 1 always yields 0 (r stays below 1).
//  3. Record the outcome when asked.
//  4. Collapse: entries on the discarded branch go to zero; surviving
//     amplitudes are divided by sqrt of the observed branch probability.
//     A zero-probability branch would divide by zero and panics with
//     ErrZeroProbability instead of poisoning the state with NaN; it is
//     reachable only through a Uniform that leaves [0,1).
func (s *State) measure(qubit, clbit int, record bool) *State {
	s.mustQubit(qubit)
	if record && (clbit < 0 || clbit >= s.clbits) {
		panic(fmt.Errorf("%w: index %d, register width %d", ErrClassicalOutOfRange, clbit, s.clbits))
	}

	s.mu.Lock()

	probZero := s.probZeroLocked(qubit)
	r := s.opts.Rand.Float64()
	outcome := 0
	if r >= probZero {
		outcome = 1
	}

	branch := probZero
	if outcome == 1 {
		branch = 1 - probZero
	}
	// branch can undershoot zero when probZero carries rounding excess and a
	// broken Uniform still selected outcome 1; both cases divide by zero or
	// worse, so they share the guard.
	if branch <= 0 {
		s.mu.Unlock()
		panic(fmt.Errorf("%w: qubit %d, outcome %d", ErrZeroProbability, qubit, outcome))
	}
	div := complex(math.Sqrt(branch), 0)

	next := make(map[Key]complex128, len(s.amps))
	for k, a := range s.amps {
		if k.Bit(qubit) != outcome {
			if s.opts.ZeroPolicy == RetainZeros {
				next[k] = 0
			}

			continue
		}
		next[k] = a / div
	}
	s.amps = next

	if record {
		s.creg[clbit] = outcome
	}

	s.mu.Unlock()
	s.opts.OnMeasure(qubit, outcome, probZero)

	return s
}

// probZeroLocked sums |amplitude|^2 over keys whose measured bit is 0.
// Magnitudes are accumulated as float64, so no imaginary residue can arise.
// Callers hold s.mu.
func (s *State) probZeroLocked(qubit int) float64 {
	var p float64
	for k, a := range s.amps {
		if k.Bit(qubit) == 0 {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}

	return p
}
