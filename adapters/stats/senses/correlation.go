package senses

import (
	"context"
	"math"

	"cedralab/domain/stats"
	"cedralab/internal/errors"
)

// CorrelationSense measures serial dependence with lagged Pearson
// correlations.
type CorrelationSense struct{}

// NewCorrelationSense creates a new correlation sense
func NewCorrelationSense() *CorrelationSense {
	return &CorrelationSense{}
}

// Name returns the sense name
func (s *CorrelationSense) Name() string {
	return "serial_correlation"
}

// Description returns a human-readable description
func (s *CorrelationSense) Description() string {
	return "Pearson correlation between the sequence and its lag-shifted copy"
}

// AnalyzeLags computes the correlation at every requested lag.
func (s *CorrelationSense) AnalyzeLags(_ context.Context, seq []float64, lags []int) ([]stats.CorrelationResult, error) {
	results := make([]stats.CorrelationResult, 0, len(lags))
	for _, lag := range lags {
		r, err := LaggedPearson(seq, lag)
		if err != nil {
			return nil, err
		}
		results = append(results, stats.CorrelationResult{Lag: lag, Correlation: r})
	}
	return results, nil
}

// LaggedPearson computes the Pearson correlation coefficient between
// seq[:n−lag] and seq[lag:]. Lag 0 yields 1 for any non-constant sequence.
// Returns 0 when either overlapping slice has zero variance. Lags outside
// [0, len) are invalid.
func LaggedPearson(seq []float64, lag int) (float64, error) {
	if len(seq) == 0 {
		return 0, errors.InvalidInput("sequence must not be empty")
	}
	if lag < 0 || lag >= len(seq) {
		return 0, errors.InvalidInputf("lag must be in [0,%d), got %d", len(seq), lag)
	}

	n := len(seq) - lag
	x := seq[:n]
	y := seq[lag:]

	meanX, meanY := 0.0, 0.0
	for i := 0; i < n; i++ {
		meanX += x[i]
		meanY += y[i]
	}
	meanX /= float64(n)
	meanY /= float64(n)

	numerator := 0.0
	varX := 0.0
	varY := 0.0
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		numerator += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0, nil
	}

	return numerator / math.Sqrt(varX*varY), nil
}
