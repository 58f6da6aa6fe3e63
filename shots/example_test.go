package shots_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/qsim/circuit"
	"github.com/katalvlaran/qsim/shots"
)

// ExampleRun - Scenario: a randomness-free program lands every shot on the
// same readout, so the histogram is a single row.
func ExampleRun() {
	c := circuit.MustNew(1, 1).X(0).MeasureInto(0, 0)

	res, err := shots.Run(c, 5)
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}
	fmt.Println(res.Counts)
	// Output:
	// 1: 5
}

// ExampleRun_bell - Scenario: sampling a Bell pair only ever reads the
// correlated bitstrings, whatever the seed.
func ExampleRun_bell() {
	c := circuit.MustNew(2, 2).
		H(0).CX(0, 1).
		MeasureInto(0, 0).MeasureInto(1, 1)

	res, err := shots.Run(c, 200, shots.WithSeed(7))
	if err != nil {
		fmt.Println("run failed:", err)
		return
	}

	keys := make([]string, 0, len(res.Counts))
	for k := range res.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println(keys, res.Counts.Total())
	// Output:
	// [00 11] 200
}
