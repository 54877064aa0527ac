package senses

import (
	"context"

	"gonum.org/v1/gonum/stat/distuv"

	"cedralab/domain/stats"
	"cedralab/internal/errors"
)

// UniformitySense measures how evenly a sequence fills [0,1) with a
// histogram chi-squared statistic.
type UniformitySense struct{}

// NewUniformitySense creates a new uniformity sense
func NewUniformitySense() *UniformitySense {
	return &UniformitySense{}
}

// Name returns the sense name
func (s *UniformitySense) Name() string {
	return "uniformity"
}

// Description returns a human-readable description
func (s *UniformitySense) Description() string {
	return "Histogram chi-squared test of uniformity over [0,1)"
}

// Analyze partitions [0,1) into bins equal-width bins, counts occurrences,
// and returns the chi-squared statistic with its upper-tail p-value.
func (s *UniformitySense) Analyze(_ context.Context, seq []float64, bins int) (stats.UniformityResult, error) {
	stat, counts, err := ChiSquaredUniformity(seq, bins)
	if err != nil {
		return stats.UniformityResult{}, err
	}

	df := bins - 1
	pValue := 1.0
	if df > 0 {
		chiDist := distuv.ChiSquared{K: float64(df)}
		pValue = 1 - chiDist.CDF(stat)
	}

	return stats.UniformityResult{
		Bins:       bins,
		ChiSquared: stat,
		PValue:     pValue,
		DF:         df,
		Counts:     counts,
	}, nil
}

// ChiSquaredUniformity returns the raw chi-squared statistic and the per-bin
// counts. Values exactly equal to 1.0 clamp into the last bin.
func ChiSquaredUniformity(seq []float64, bins int) (float64, []int, error) {
	if len(seq) == 0 {
		return 0, nil, errors.InvalidInput("sequence must not be empty")
	}
	if bins <= 0 {
		return 0, nil, errors.InvalidInputf("bin count must be positive, got %d", bins)
	}

	counts := make([]int, bins)
	for _, v := range seq {
		if v < 0 || v > 1 {
			return 0, nil, errors.InvalidInputf("sequence value %f outside [0,1]", v)
		}
		idx := int(v * float64(bins))
		if idx >= bins {
			idx = bins - 1 // clamp v == 1.0
		}
		counts[idx]++
	}

	expected := float64(len(seq)) / float64(bins)
	chiSq := 0.0
	for _, observed := range counts {
		dev := float64(observed) - expected
		chiSq += dev * dev / expected
	}

	return chiSq, counts, nil
}
