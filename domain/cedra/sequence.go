package cedra

import (
	"cedralab/internal/errors"
)

// ChaosSequence generates the first n terms of the deterministic chaos
// sequence X_i = frac(i·ln C), i = 1..n. Every element lies in [0,1).
// Generation is pure and deterministic; the only failure is n ≤ 0.
func ChaosSequence(n int) ([]float64, error) {
	return WeylSequence(n, LnCedra)
}

// WeylSequence generates the first n terms of the irrational rotation
// X_i = frac(i·alpha), i = 1..n, for an arbitrary rotation parameter.
func WeylSequence(n int, alpha float64) ([]float64, error) {
	if n <= 0 {
		return nil, errors.InvalidInputf("sequence length must be positive, got %d", n)
	}
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = frac(float64(i+1) * alpha)
	}
	return seq, nil
}

// IdealSequence generates the idealized equidistributed sequence i/n for
// i = 0..n−1. Its star discrepancy over thresholds k/n is exactly 0; it is
// used as the calibration baseline for the discrepancy statistic.
func IdealSequence(n int) ([]float64, error) {
	if n <= 0 {
		return nil, errors.InvalidInputf("sequence length must be positive, got %d", n)
	}
	seq := make([]float64, n)
	for i := range seq {
		seq[i] = float64(i) / float64(n)
	}
	return seq, nil
}
