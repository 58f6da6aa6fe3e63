// Package circuit records gate and measurement sequences as plain data and
// replays them onto fresh qreg registers.
//
// A Circuit is the data twin of a qreg call chain: builders append ops
// without touching any state, Validate checks the whole program against the
// declared widths, and Run executes it on a brand-new State. Because every
// op is validated before execution, a Run never trips the register's
// precondition panics; circuit construction mistakes come back as ordinary
// sentinel errors with the offending op position attached.
//
// Typical use:
//
//	c := circuit.MustNew(2, 2).
//		H(0).CX(0, 1).
//		MeasureInto(0, 0).MeasureInto(1, 1)
//
//	st, err := c.Run(qreg.WithSeed(42))
//	if err != nil { ... }
//	fmt.Println(st)
//
// Each Run builds an independent State, which is what makes repeated
// execution (the shots package) trivial: same program, fresh register,
// per-run randomness.
package circuit
