package circuit_test

import (
	"testing"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/qreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tol is the amplitude and probability tolerance used across the suite.
const tol = 1e-9

// fixedDraw always returns the same measurement draw.
type fixedDraw float64

func (f fixedDraw) Float64() float64 { return float64(f) }

// TestNew_RejectsBadWidths verifies the constructor sentinels.
func TestNew_RejectsBadWidths(t *testing.T) {
	_, err := circuit.New(0, 0)
	assert.ErrorIs(t, err, circuit.ErrQubitCount)

	_, err = circuit.New(2, -1)
	assert.ErrorIs(t, err, circuit.ErrClassicalCount)

	assert.Panics(t, func() { circuit.MustNew(0, 0) })
}

// TestBuilders_RecordOpsInOrder verifies the chainable builders append the
// expected op records.
func TestBuilders_RecordOpsInOrder(t *testing.T) {
	c := circuit.MustNew(2, 1).
		X(0).H(1).CX(0, 1).
		MeasureInto(0, 0).Measure(1)

	require.Equal(t, 5, c.Len())
	ops := c.Ops()

	assert.Equal(t, circuit.Op{Kind: circuit.KindGate, Gate: qreg.GateX, Qubits: []int{0}, CBit: circuit.NoBit}, ops[0])
	assert.Equal(t, circuit.Op{Kind: circuit.KindGate, Gate: qreg.GateH, Qubits: []int{1}, CBit: circuit.NoBit}, ops[1])
	assert.Equal(t, circuit.Op{Kind: circuit.KindGate, Gate: qreg.GateCX, Qubits: []int{0, 1}, CBit: circuit.NoBit}, ops[2])
	assert.Equal(t, circuit.Op{Kind: circuit.KindMeasure, Qubits: []int{0}, CBit: 0}, ops[3])
	assert.Equal(t, circuit.Op{Kind: circuit.KindMeasure, Qubits: []int{1}, CBit: circuit.NoBit}, ops[4])
}

// TestOps_ReturnsDeepCopy verifies callers cannot corrupt the recorded
// program through the returned slice.
func TestOps_ReturnsDeepCopy(t *testing.T) {
	c := circuit.MustNew(2, 0).CX(0, 1)

	ops := c.Ops()
	ops[0].Qubits[0] = 99

	fresh := c.Ops()
	assert.Equal(t, []int{0, 1}, fresh[0].Qubits, "mutating the copy must not reach the circuit")
	require.NoError(t, c.Validate(), "the recorded program must still validate")
}

// TestValidate_AcceptsWellFormedProgram verifies a correct circuit passes
// all stages.
func TestValidate_AcceptsWellFormedProgram(t *testing.T) {
	c := circuit.MustNew(3, 2).
		H(0).CX(0, 1).T(1).S(2).X(2).
		MeasureInto(0, 0).MeasureInto(1, 1).Measure(2)

	assert.NoError(t, c.Validate())
}

// TestValidate_CatchesViolations walks the per-op stages: unknown gates,
// arity mismatches, range violations, CX aliasing and bad classical
// destinations.
func TestValidate_CatchesViolations(t *testing.T) {
	cases := []struct {
		name  string
		build func() *circuit.Circuit
		want  error
	}{
		{
			name:  "qubit out of range",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 0).H(2) },
			want:  circuit.ErrQubitOutOfRange,
		},
		{
			name:  "negative qubit",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 0).X(-1) },
			want:  circuit.ErrQubitOutOfRange,
		},
		{
			name:  "control equals target",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 0).CX(1, 1) },
			want:  circuit.ErrControlTarget,
		},
		{
			name:  "unknown gate",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 0).Apply(qreg.Gate(99), 0) },
			want:  circuit.ErrUnknownGate,
		},
		{
			name:  "gate arity",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 0).Apply(qreg.GateCX, 0) },
			want:  circuit.ErrOpArity,
		},
		{
			name:  "measured qubit out of range",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 1).Measure(5) },
			want:  circuit.ErrQubitOutOfRange,
		},
		{
			name:  "classical destination out of range",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 1).MeasureInto(0, 1) },
			want:  circuit.ErrClassicalOutOfRange,
		},
		{
			name:  "classical destination negative but not NoBit",
			build: func() *circuit.Circuit { return circuit.MustNew(2, 1).MeasureInto(0, -2) },
			want:  circuit.ErrClassicalOutOfRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.build().Validate()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestValidate_ReportsOpPosition verifies the wrapped error names the
// offending op index.
func TestValidate_ReportsOpPosition(t *testing.T) {
	c := circuit.MustNew(2, 0).H(0).CX(0, 1).X(7)

	err := c.Validate()
	require.ErrorIs(t, err, circuit.ErrQubitOutOfRange)
	assert.ErrorContains(t, err, "op 2")
}

// TestRun_MatchesDirectChain verifies replaying a recorded program produces
// the same state as calling the register directly.
func TestRun_MatchesDirectChain(t *testing.T) {
	c := circuit.MustNew(2, 0).H(0).CX(0, 1).T(1)

	fromCircuit, err := c.Run()
	require.NoError(t, err)

	direct := qreg.MustNew(2, 0).H(0).CX(0, 1).T(1)

	assert.Equal(t, direct.Entries(), fromCircuit.Entries())
	assert.InDelta(t, 1.0, fromCircuit.TotalProbability(), tol)
}

// TestRun_ForwardsRegisterOptions verifies options reach the register, here
// via a forced measurement draw.
func TestRun_ForwardsRegisterOptions(t *testing.T) {
	c := circuit.MustNew(1, 1).H(0).MeasureInto(0, 0)

	st, err := c.Run(qreg.WithRand(fixedDraw(0.9)))
	require.NoError(t, err)

	b, err := st.ClassicalBit(0)
	require.NoError(t, err)
	assert.Equal(t, 1, b, "forced draw above one half must collapse to 1")
}

// TestRun_FreshStateEachCall verifies runs are independent: identical seeds
// reproduce identical classical outcomes on separate states.
func TestRun_FreshStateEachCall(t *testing.T) {
	c := circuit.MustNew(2, 2).H(0).CX(0, 1).MeasureInto(0, 0).MeasureInto(1, 1)

	first, err := c.Run(qreg.WithSeed(7))
	require.NoError(t, err)
	second, err := c.Run(qreg.WithSeed(7))
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.ClassicalBits(), second.ClassicalBits())
}

// TestRun_RejectsInvalidProgram verifies Run surfaces validation errors
// before touching any register.
func TestRun_RejectsInvalidProgram(t *testing.T) {
	c := circuit.MustNew(2, 0).H(5)

	st, err := c.Run()
	assert.ErrorIs(t, err, circuit.ErrQubitOutOfRange)
	assert.Nil(t, st)
}

// TestNilCircuit verifies nil receivers surface ErrNilCircuit instead of
// dereferencing.
func TestNilCircuit(t *testing.T) {
	var c *circuit.Circuit

	assert.ErrorIs(t, c.Validate(), circuit.ErrNilCircuit)

	_, err := c.Run()
	assert.ErrorIs(t, err, circuit.ErrNilCircuit)
}

// TestKind_String covers the enum rendering.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "gate", circuit.KindGate.String())
	assert.Equal(t, "measure", circuit.KindMeasure.String())
	assert.Equal(t, "Kind(9)", circuit.Kind(9).String())
}
