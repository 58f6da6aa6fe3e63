// Package circuit - op model and sentinel errors for recorded programs.
package circuit

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qsim/qreg"
)

// Sentinel errors returned by construction, validation and runs.
var (
	// ErrQubitCount indicates a circuit was requested with fewer than one qubit.
	ErrQubitCount = errors.New("circuit: qubit count must be at least one")

	// ErrClassicalCount indicates a negative classical register size.
	ErrClassicalCount = errors.New("circuit: classical bit count must be non-negative")

	// ErrNilCircuit indicates a nil *Circuit was passed or used as receiver.
	ErrNilCircuit = errors.New("circuit: circuit is nil")

	// ErrUnknownKind indicates an op whose Kind is outside the declared enum.
	ErrUnknownKind = errors.New("circuit: unknown op kind")

	// ErrUnknownGate indicates a gate op carrying a value outside the fixed set.
	ErrUnknownGate = errors.New("circuit: unknown gate in op")

	// ErrOpArity indicates an op with the wrong number of qubit indices.
	ErrOpArity = errors.New("circuit: wrong number of qubit indices in op")

	// ErrQubitOutOfRange indicates an op referencing a qubit outside [0, QubitCount).
	ErrQubitOutOfRange = errors.New("circuit: qubit index out of range")

	// ErrClassicalOutOfRange indicates a measurement writing outside [0, ClassicalCount).
	ErrClassicalOutOfRange = errors.New("circuit: classical bit index out of range")

	// ErrControlTarget indicates a CX op using one qubit as control and target.
	ErrControlTarget = errors.New("circuit: control and target must be distinct qubits")
)

// NoBit marks a measurement whose outcome is discarded instead of recorded.
const NoBit = -1

// Kind discriminates the two op flavors.
type Kind int

const (
	// KindGate is a unitary step from the fixed gate set.
	KindGate Kind = iota

	// KindMeasure is a projective measurement step.
	KindMeasure
)

// String returns "gate" or "measure".
func (k Kind) String() string {
	switch k {
	case KindGate:
		return "gate"
	case KindMeasure:
		return "measure"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Op is one recorded step of a circuit. Ops are plain data; nothing is
// checked until Validate or Run.
type Op struct {
	// Kind selects between a gate and a measurement.
	Kind Kind

	// Gate names the gate for KindGate ops; ignored for measurements.
	Gate qreg.Gate

	// Qubits lists the gate operands (control first for CX), or the single
	// measured qubit for KindMeasure.
	Qubits []int

	// CBit is the classical destination of a measurement; NoBit discards
	// the outcome. Ignored for gates.
	CBit int
}
