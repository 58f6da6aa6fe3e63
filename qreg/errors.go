// Package qreg - sentinel errors shared by the register, gate and
// measurement APIs.
//
// Policy (mirrors the split between queries and mutators):
//   - Query methods (Amplitude, ClassicalBit, ProbabilityZero, ParseKey)
//     return these sentinels directly; match with errors.Is.
//   - Chained mutators (X, CX, S, T, H, Apply, Measure, MeasureInto) treat a
//     bad argument as a precondition violation and panic with an error that
//     wraps the corresponding sentinel; recover + errors.Is still matches.
package qreg

import "errors"

// Sentinel errors returned (or carried by panics) across the package.
var (
	// ErrQubitCount indicates a register was requested with fewer than one qubit.
	ErrQubitCount = errors.New("qreg: qubit count must be at least one")

	// ErrClassicalCount indicates a negative classical register size.
	ErrClassicalCount = errors.New("qreg: classical bit count must be non-negative")

	// ErrQubitOutOfRange indicates a qubit index outside [0, QubitCount).
	ErrQubitOutOfRange = errors.New("qreg: qubit index out of range")

	// ErrClassicalOutOfRange indicates a classical bit index outside [0, ClassicalCount).
	ErrClassicalOutOfRange = errors.New("qreg: classical bit index out of range")

	// ErrControlTarget indicates CX was asked to use the same qubit as both
	// control and target; that rewrite is not unitary and is rejected.
	ErrControlTarget = errors.New("qreg: control and target must be distinct qubits")

	// ErrGateArity indicates Apply received the wrong number of qubit
	// indices for the requested gate.
	ErrGateArity = errors.New("qreg: wrong number of qubit indices for gate")

	// ErrUnknownGate indicates Apply received a Gate value outside the fixed set.
	ErrUnknownGate = errors.New("qreg: unknown gate")

	// ErrMalformedKey indicates a basis key containing bytes other than '0' and '1'.
	ErrMalformedKey = errors.New("qreg: key must be a non-empty string of '0' and '1'")

	// ErrKeyLength indicates a basis key whose width differs from QubitCount.
	ErrKeyLength = errors.New("qreg: key width does not match qubit count")

	// ErrZeroProbability indicates a measurement tried to collapse onto a
	// branch of zero probability; renormalizing would divide by zero.
	ErrZeroProbability = errors.New("qreg: measured branch has zero probability")
)
