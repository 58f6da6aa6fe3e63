// Package circuit - the Circuit builder, validation and execution.
package circuit

import (
	"fmt"

	"github.com/katalvlaran/qsim/qreg"
)

// Circuit is a recorded sequence of gate and measurement ops over fixed
// register widths. Circuits are plain data: builders append without
// checking, Validate inspects the whole program, Run replays it onto a
// fresh qreg.State. A validated circuit never trips the register's
// precondition panics.
//
// Circuits are not safe for concurrent mutation; build first, then share.
type Circuit struct {
	qubits int
	clbits int
	ops    []Op
}

// New allocates an empty circuit over the given widths. qubits must be at
// least 1 (ErrQubitCount) and clbits non-negative (ErrClassicalCount).
func New(qubits, clbits int) (*Circuit, error) {
	if qubits < 1 {
		return nil, ErrQubitCount
	}
	if clbits < 0 {
		return nil, ErrClassicalCount
	}

	return &Circuit{qubits: qubits, clbits: clbits}, nil
}

// MustNew is New that panics on error; convenient for chained literals:
//
//	c := circuit.MustNew(2, 2).H(0).CX(0, 1).MeasureInto(0, 0)
func MustNew(qubits, clbits int) *Circuit {
	c, err := New(qubits, clbits)
	if err != nil {
		panic(err)
	}

	return c
}

// QubitCount returns the qubit width the circuit runs on.
func (c *Circuit) QubitCount() int { return c.qubits }

// ClassicalCount returns the classical register width the circuit runs on.
func (c *Circuit) ClassicalCount() int { return c.clbits }

// Len returns the number of recorded ops.
func (c *Circuit) Len() int { return len(c.ops) }

// Ops returns a deep copy of the recorded program.
func (c *Circuit) Ops() []Op {
	out := make([]Op, len(c.ops))
	for i, op := range c.ops {
		qs := make([]int, len(op.Qubits))
		copy(qs, op.Qubits)
		op.Qubits = qs
		out[i] = op
	}

	return out
}

// X records a Pauli-X gate on qubit j.
func (c *Circuit) X(j int) *Circuit { return c.Apply(qreg.GateX, j) }

// CX records a controlled-X gate with the given control and target.
func (c *Circuit) CX(ctrl, tgt int) *Circuit { return c.Apply(qreg.GateCX, ctrl, tgt) }

// S records an S phase gate on qubit j.
func (c *Circuit) S(j int) *Circuit { return c.Apply(qreg.GateS, j) }

// T records a T phase gate on qubit j.
func (c *Circuit) T(j int) *Circuit { return c.Apply(qreg.GateT, j) }

// H records a Hadamard gate on qubit j.
func (c *Circuit) H(j int) *Circuit { return c.Apply(qreg.GateH, j) }

// Apply records an arbitrary gate op. Nothing is validated here; malformed
// ops surface from Validate or Run.
func (c *Circuit) Apply(g qreg.Gate, qubits ...int) *Circuit {
	qs := make([]int, len(qubits))
	copy(qs, qubits)
	c.ops = append(c.ops, Op{Kind: KindGate, Gate: g, Qubits: qs, CBit: NoBit})

	return c
}

// Measure records a measurement of qubit q whose outcome is discarded.
func (c *Circuit) Measure(q int) *Circuit {
	c.ops = append(c.ops, Op{Kind: KindMeasure, Qubits: []int{q}, CBit: NoBit})

	return c
}

// MeasureInto records a measurement of qubit q into classical bit cbit.
func (c *Circuit) MeasureInto(q, cbit int) *Circuit {
	c.ops = append(c.ops, Op{Kind: KindMeasure, Qubits: []int{q}, CBit: cbit})

	return c
}

// Validate checks every recorded op against the circuit widths and the
// fixed gate set. The first violation is returned as the matching sentinel
// wrapped with the op position.
//
// Stages per op:
//  1. Kind within the enum.
//  2. Gate ops: gate known, operand count equals the gate arity, all
//     operands in range, CX operands distinct.
//  3. Measure ops: exactly one qubit, in range; CBit either NoBit or a
//     valid classical index.
func (c *Circuit) Validate() error {
	if c == nil {
		return ErrNilCircuit
	}

	for i, op := range c.ops {
		switch op.Kind {
		case KindGate:
			if err := c.validateGate(op); err != nil {
				return fmt.Errorf("%w: op %d", err, i)
			}
		case KindMeasure:
			if err := c.validateMeasure(op); err != nil {
				return fmt.Errorf("%w: op %d", err, i)
			}
		default:
			return fmt.Errorf("%w: op %d", ErrUnknownKind, i)
		}
	}

	return nil
}

// validateGate applies stage 2 to a single gate op.
func (c *Circuit) validateGate(op Op) error {
	arity := op.Gate.Arity()
	if arity == 0 {
		return ErrUnknownGate
	}
	if len(op.Qubits) != arity {
		return ErrOpArity
	}
	for _, q := range op.Qubits {
		if q < 0 || q >= c.qubits {
			return ErrQubitOutOfRange
		}
	}
	if op.Gate == qreg.GateCX && op.Qubits[0] == op.Qubits[1] {
		return ErrControlTarget
	}

	return nil
}

// validateMeasure applies stage 3 to a single measurement op.
func (c *Circuit) validateMeasure(op Op) error {
	if len(op.Qubits) != 1 {
		return ErrOpArity
	}
	if q := op.Qubits[0]; q < 0 || q >= c.qubits {
		return ErrQubitOutOfRange
	}
	if op.CBit != NoBit && (op.CBit < 0 || op.CBit >= c.clbits) {
		return ErrClassicalOutOfRange
	}

	return nil
}

// Run validates the circuit, builds a fresh register with the given options
// and replays every op in order. Each call produces an independent State,
// so one circuit can be run many times (see the shots package).
//
// Measurement randomness follows the register options; a non-conforming
// injected source can still panic the register with ErrZeroProbability.
func (c *Circuit) Run(opts ...qreg.Option) (*qreg.State, error) {
	if c == nil {
		return nil, ErrNilCircuit
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	st, err := qreg.New(c.qubits, c.clbits, opts...)
	if err != nil {
		return nil, err
	}

	for _, op := range c.ops {
		if op.Kind == KindGate {
			st.Apply(op.Gate, op.Qubits...)

			continue
		}
		if op.CBit == NoBit {
			st.Measure(op.Qubits[0])

			continue
		}
		st.MeasureInto(op.Qubits[0], op.CBit)
	}

	return st, nil
}
