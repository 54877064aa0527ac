package senses

import (
	"context"

	"github.com/montanaflynn/stats"

	domainstats "cedralab/domain/stats"
	"cedralab/internal/errors"
)

// MomentsSense computes the descriptive moments of a sequence.
type MomentsSense struct{}

// NewMomentsSense creates a new moments sense
func NewMomentsSense() *MomentsSense {
	return &MomentsSense{}
}

// Name returns the sense name
func (s *MomentsSense) Name() string {
	return "moments"
}

// Description returns a human-readable description
func (s *MomentsSense) Description() string {
	return "Mean, variance, quartiles and extremes of the sequence"
}

// Analyze computes summary statistics over the sequence.
func (s *MomentsSense) Analyze(_ context.Context, seq []float64) (domainstats.SummaryStats, error) {
	if len(seq) == 0 {
		return domainstats.SummaryStats{}, errors.InvalidInput("sequence must not be empty")
	}

	mean, _ := stats.Mean(seq)
	variance, _ := stats.PopulationVariance(seq)
	stdDev, _ := stats.StandardDeviationPopulation(seq)
	min, _ := stats.Min(seq)
	max, _ := stats.Max(seq)
	median, _ := stats.Median(seq)

	// Percentile errors only on empty input, which is excluded above;
	// single-element sequences fall back to the element itself.
	q25, err := stats.Percentile(seq, 25)
	if err != nil {
		q25 = median
	}
	q75, err := stats.Percentile(seq, 75)
	if err != nil {
		q75 = median
	}

	return domainstats.SummaryStats{
		Mean:     mean,
		Variance: variance,
		StdDev:   stdDev,
		Min:      min,
		Max:      max,
		Median:   median,
		Q25:      q25,
		Q75:      q75,
	}, nil
}
