package senses

import (
	"context"
	"math"
	"sort"

	"cedralab/domain/stats"
	"cedralab/internal/errors"
)

// DiscrepancySense measures the star discrepancy of a sequence: the maximum
// deviation between the empirical CDF and the uniform CDF over a grid of
// thresholds.
type DiscrepancySense struct{}

// NewDiscrepancySense creates a new discrepancy sense
func NewDiscrepancySense() *DiscrepancySense {
	return &DiscrepancySense{}
}

// Name returns the sense name
func (s *DiscrepancySense) Name() string {
	return "discrepancy"
}

// Description returns a human-readable description
func (s *DiscrepancySense) Description() string {
	return "Star discrepancy against the uniform CDF over an equally spaced threshold grid"
}

// Analyze computes the star discrepancy over resolution thresholds, plus a
// log(n)/n reference bound for irrational-rotation sequences.
func (s *DiscrepancySense) Analyze(_ context.Context, seq []float64, resolution int) (stats.DiscrepancyResult, error) {
	disc, worstAt, err := StarDiscrepancy(seq, resolution)
	if err != nil {
		return stats.DiscrepancyResult{}, err
	}

	n := float64(len(seq))
	return stats.DiscrepancyResult{
		Resolution:  resolution,
		Discrepancy: disc,
		WorstAt:     worstAt,
		TheoryBound: math.Log(n+1) / n,
	}, nil
}

// StarDiscrepancy evaluates, for each of m thresholds t = k/m in (0,1], the
// absolute difference between the fraction of values below t and t itself,
// and returns the maximum together with the threshold attaining it. Counting
// is strict (values < t), matching the half-open intervals [0,t) of the star
// discrepancy; this makes the idealized sequence i/n score exactly 0.
func StarDiscrepancy(seq []float64, m int) (float64, float64, error) {
	if len(seq) == 0 {
		return 0, 0, errors.InvalidInput("sequence must not be empty")
	}
	if m <= 0 {
		return 0, 0, errors.InvalidInputf("resolution must be positive, got %d", m)
	}

	sorted := make([]float64, len(seq))
	copy(sorted, seq)
	sort.Float64s(sorted)

	n := float64(len(seq))
	maxDiff := 0.0
	worstAt := 0.0

	for k := 1; k <= m; k++ {
		t := float64(k) / float64(m)
		// First index >= t equals the count of values strictly below t.
		below := sort.SearchFloat64s(sorted, t)
		diff := math.Abs(float64(below)/n - t)
		if diff > maxDiff {
			maxDiff = diff
			worstAt = t
		}
	}

	return maxDiff, worstAt, nil
}
