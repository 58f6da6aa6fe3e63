// Package qreg - canonical textual rendering of a State.
package qreg

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// String renders the state in the canonical fixed-point form:
//
//	Quantum state:
//	00: 0.71+0.00i
//	11: 0.71+0.00i
//
// One row per nonzero entry, keys sorted in bit-sequence order, amplitudes
// with two decimals and an explicit sign on the imaginary part. States with
// a classical register append a blank line and the register contents:
//
//	Classical register: [0, 1]
//
// Components rounding to zero print as 0.00, never -0.00. State implements
// fmt.Stringer, so fmt.Println(st) emits the block directly.
func (s *State) String() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var b strings.Builder
	b.WriteString("Quantum state:")
	for _, e := range s.entriesLocked() {
		b.WriteByte('\n')
		b.WriteString(string(e.Key))
		b.WriteString(": ")
		b.WriteString(formatAmplitude(e.Amp))
	}

	if s.clbits > 0 {
		b.WriteString("\n\nClassical register: [")
		for i, bit := range s.creg {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(bit))
		}
		b.WriteByte(']')
	}

	return b.String()
}

// formatAmplitude renders a complex amplitude as "%.2f%+.2fi" with negative
// zero folded on both components.
func formatAmplitude(a complex128) string {
	return fmt.Sprintf("%.2f%+.2fi", round2(real(a)), round2(imag(a)))
}

// round2 rounds to two decimals and folds negative zero, so a residue like
// -1e-18 renders as 0.00 instead of -0.00.
func round2(v float64) float64 {
	r := math.Round(v*100) / 100
	if r == 0 {
		return 0
	}

	return r
}
