// Package qlog bridges qreg trace hooks to structured zap logging.
//
// The register never logs on its own; it exposes hook callbacks instead.
// qlog turns a *zap.Logger into those hooks, so gate and measurement
// traffic shows up as structured events:
//
//	log, _ := zap.NewDevelopment()
//	st := qreg.MustNew(2, 2, qlog.Options(log)...)
//	st.H(0).CX(0, 1)     // DEBUG  applying gate   {gate: "CX", qubits: [0, 1]}
//	st.MeasureInto(0, 0) // INFO   measured qubit  {qubit: 0, outcome: 1, prob_zero: 0.5}
//
// A nil logger degrades to zap.NewNop, keeping call sites unconditional.
package qlog

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/qsim/qreg"
)

// NewGateHook returns an OnGate hook that logs every gate application at
// Debug level.
func NewGateHook(log *zap.Logger) func(g qreg.Gate, qubits []int) {
	if log == nil {
		log = zap.NewNop()
	}

	return func(g qreg.Gate, qubits []int) {
		log.Debug("applying gate",
			zap.Stringer("gate", g),
			zap.Ints("qubits", qubits),
		)
	}
}

// NewMeasureHook returns an OnMeasure hook that logs outcomes at Info level.
func NewMeasureHook(log *zap.Logger) func(qubit, outcome int, probZero float64) {
	if log == nil {
		log = zap.NewNop()
	}

	return func(qubit, outcome int, probZero float64) {
		log.Info("measured qubit",
			zap.Int("qubit", qubit),
			zap.Int("outcome", outcome),
			zap.Float64("prob_zero", probZero),
		)
	}
}

// Options bundles both hooks for spreading into qreg.New or circuit.Run:
//
//	st, err := qreg.New(2, 2, qlog.Options(log)...)
func Options(log *zap.Logger) []qreg.Option {
	return []qreg.Option{
		qreg.WithOnGate(NewGateHook(log)),
		qreg.WithOnMeasure(NewMeasureHook(log)),
	}
}
