// Package shots - multi-shot circuit execution.
package shots

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/qreg"
)

// Run executes the circuit the requested number of times and aggregates the
// classical register readouts into a Counts histogram.
//
// Requirements:
//   - c non-nil (ErrNilCircuit); circuit validation errors pass through
//     from circuit.Run.
//   - shots at least 1 (ErrShotCount).
//   - the circuit must carry classical bits to read out (ErrNoClassical).
//
// Each shot runs on a fresh register whose randomness stream is derived
// from (base seed, shot index). Rerunning with the same seed reproduces the
// histogram exactly, and any single shot can be replayed alone by deriving
// its stream.
func Run(c *circuit.Circuit, shots int, opts ...Option) (Result, error) {
	if c == nil {
		return Result{}, ErrNilCircuit
	}
	if shots < 1 {
		return Result{}, ErrShotCount
	}
	if c.ClassicalCount() == 0 {
		return Result{}, ErrNoClassical
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := Result{
		ID:     uuid.NewString(),
		Seed:   o.Seed,
		Shots:  shots,
		Counts: make(Counts, 4),
	}

	for shot := 0; shot < shots; shot++ {
		ropts := make([]qreg.Option, 0, len(o.StateOpts)+1)
		ropts = append(ropts, o.StateOpts...)
		// The derived stream goes last so it wins over caller randomness.
		ropts = append(ropts, qreg.WithRand(shotRand(o.Seed, uint64(shot))))

		st, err := c.Run(ropts...)
		if err != nil {
			return Result{}, err
		}
		res.Counts[readout(st)]++
	}

	return res, nil
}

// readout renders the classical register as a bitstring in index order.
func readout(st *qreg.State) string {
	bits := st.ClassicalBits()
	b := make([]byte, len(bits))
	for i, bit := range bits {
		b[i] = byte('0' + bit)
	}

	return string(b)
}
