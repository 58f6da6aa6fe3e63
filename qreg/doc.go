// Package qreg implements a sparse state-vector simulator for quantum
// registers: amplitudes live in a map keyed by basis bitstrings, gates are
// key rewrites, and interference is literal complex addition on key
// collisions.
//
// 🚀 What is qreg?
//
//	A register of n qubits is a mapping from basis keys ("010...") to
//	complex amplitudes; keys absent from the mapping carry amplitude zero.
//	The gate set is fixed: X, CX, S, T and H. The first four rewrite or
//	phase-shift entries one-for-one. H fans each entry out into two
//	children and merges children landing on the same key by adding their
//	amplitudes; cancellation to exact zero removes keys again. Superposition
//	shows up as multiple keys and interference as addition on collision.
//
// ✨ Key features:
//   - sparse mapping: only reachable keys are stored (a 20-qubit GHZ state
//     is two entries, not 2^20)
//   - chainable gate methods: st.H(0).CX(0, 1) reads like the circuit
//   - projective measurement with collapse, renormalization and optional
//     classical-bit recording (MeasureInto)
//   - deterministic by default: measurement randomness comes from a
//     fixed-seed stream unless WithSeed or WithRand says otherwise
//   - trace hooks (WithOnGate, WithOnMeasure) for logging and debugging;
//     the engine itself never logs
//
// ⚙️ Usage:
//
//	st := qreg.MustNew(2, 2)          // 2 qubits, 2 classical bits
//	st.H(0).CX(0, 1)                  // Bell pair
//	st.MeasureInto(0, 0)              // collapse qubit 0 into classical bit 0
//	st.MeasureInto(1, 1)
//	fmt.Println(st)                   // "Quantum state:" block
//
// Error policy:
//   - queries (Amplitude, ClassicalBit, ProbabilityZero, ParseKey) return
//     sentinel errors; match with errors.Is.
//   - chained mutators (gates, measurements) panic on precondition
//     violations: bad indices, CX with control == target, collapse onto a
//     zero-probability branch. The panic value wraps the matching sentinel.
//
// Performance:
//   - Gates: O(E) over the E current entries; H may double E.
//   - Measurement: O(E).
//   - Rendering: O(E log E) for the sorted rows.
//
// See example_test.go for runnable scenarios, and the circuit and shots
// packages for recorded programs and repeated runs.
package qreg
