// Package qsim is a sparse state-vector simulator for small quantum
// circuits: a register is a map from basis bitstrings to complex
// amplitudes, so only nonzero branches occupy memory.
//
// 🚀 What is qsim?
//
//	A compact, thread-safe simulation toolkit that brings together:
//		• Sparse registers: X, CX, S, T, H gates and projective measurement
//		• Circuits: recorded gate programs, validated before replay
//		• Sampling: repeated shots collected into bitstring histograms
//		• Tracing: structured gate/measure logging via zap
//
// ✨ Why choose qsim?
//
//   - Deterministic by default: seeded randomness, reproducible runs
//   - Rock-solid guarantees: R/W locks, staged validation, typed errors
//   - Extensible: inject hooks (OnGate, OnMeasure) and custom RNG streams
//
// Under the hood, everything is organized under four subpackages:
//
//	qreg/    - sparse register, gates, measurement & rendering
//	circuit/ - program recording, validation & replay
//	shots/   - multi-shot sampling & histograms
//	qlog/    - zap adapters for the qreg hooks
//
// Quick ASCII example:
//
//	q0: ─[H]──●──
//	q1: ─────[X]─
//
//	prepares the Bell pair (|00⟩ + |11⟩)/√2.
//
// Dive into examples/ for Bell, GHZ, teleportation and BB84 walkthroughs.
//
//	go get github.com/katalvlaran/qsim
package qsim
