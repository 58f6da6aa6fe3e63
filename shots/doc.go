// Package shots runs a recorded circuit many times and histograms the
// classical readouts, the way hardware backends report sampling jobs.
//
// One shot is one full replay: fresh register, every op applied, classical
// register read out as a bitstring. Run aggregates shots into Counts and
// stamps the batch with a UUID so results can be correlated across logs and
// reports.
//
// Determinism: the base seed (WithSeed, default qreg.DefaultSeed) is mixed
// with each shot index through a SplitMix64 finalizer, giving every shot an
// independent stream. Same circuit + same seed ⇒ same histogram, on any
// platform, in any shot order.
//
// Typical use:
//
//	c := circuit.MustNew(2, 2).
//		H(0).CX(0, 1).
//		MeasureInto(0, 0).MeasureInto(1, 1)
//
//	res, err := shots.Run(c, 1024, shots.WithSeed(7))
//	if err != nil { ... }
//	fmt.Println(res.Counts)   // "00: 511\n11: 513" style histogram
//	fmt.Println(res.Counts.Probability("11"))
package shots
