// Package stats defines the immutable report types produced by the sequence
// statistics battery. Reports are created once and never mutated.
package stats

import (
	"cedralab/domain/core"
)

// GenerationParams records how the analyzed sequence was produced.
type GenerationParams struct {
	Length     int     `json:"length"`     // number of generated terms
	Alpha      float64 `json:"alpha"`      // rotation parameter (ln C by default)
	Bins       int     `json:"bins"`       // histogram bins for the uniformity test
	Resolution int     `json:"resolution"` // threshold count for the discrepancy test
	Lags       []int   `json:"lags"`       // serial correlation lags
}

// SummaryStats holds the descriptive moments of a sequence.
type SummaryStats struct {
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
	Min      float64 `json:"min"`
	Max      float64 `json:"max"`
	Median   float64 `json:"median"`
	Q25      float64 `json:"q25"`
	Q75      float64 `json:"q75"`
}

// UniformityResult is the histogram chi-squared test against the uniform
// distribution on [0,1).
type UniformityResult struct {
	Bins       int     `json:"bins"`
	ChiSquared float64 `json:"chi_squared"` // Σ (observed − expected)² / expected
	PValue     float64 `json:"p_value"`     // upper tail of ChiSquared(bins−1)
	DF         int     `json:"df"`          // bins − 1
	Counts     []int   `json:"counts,omitempty"`
}

// DiscrepancyResult is the star discrepancy over a uniform threshold grid.
type DiscrepancyResult struct {
	Resolution  int     `json:"resolution"`
	Discrepancy float64 `json:"discrepancy"`  // max |empirical CDF − t|
	WorstAt     float64 `json:"worst_at"`     // threshold attaining the maximum
	TheoryBound float64 `json:"theory_bound"` // O(log n / n) reference for Weyl sequences
}

// CorrelationResult is the lagged Pearson serial correlation.
type CorrelationResult struct {
	Lag         int     `json:"lag"`
	Correlation float64 `json:"correlation"` // 0 when the variance product is 0
}

// WarningCode represents structured warning types
type WarningCode string

const (
	WarningLowN             WarningCode = "LOW_N"             // sample size < 30
	WarningSparseBins       WarningCode = "SPARSE_BINS"       // expected per-bin count < 5
	WarningHighCorrelation  WarningCode = "HIGH_CORRELATION"  // |r| > 0.5 at some lag
	WarningNonUniform       WarningCode = "NON_UNIFORM"       // uniformity p-value < 0.01
	WarningDegenerateSeries WarningCode = "DEGENERATE_SERIES" // zero variance
)

// StatisticsReport is the complete output of one analysis run. It references
// the generation parameters rather than the raw sequence; the sequence can be
// regenerated deterministically from them.
type StatisticsReport struct {
	ID           core.ReportID       `json:"id"`
	Params       GenerationParams    `json:"params"`
	Summary      SummaryStats        `json:"summary"`
	Uniformity   UniformityResult    `json:"uniformity"`
	Discrepancy  DiscrepancyResult   `json:"discrepancy"`
	Correlations []CorrelationResult `json:"correlations"`
	Warnings     []WarningCode       `json:"warnings,omitempty"`
	Fingerprint  core.Hash           `json:"fingerprint"`
	ComputedAt   core.Timestamp      `json:"computed_at"`
}

// CorrelationAt returns the correlation result for a lag, if present.
func (r *StatisticsReport) CorrelationAt(lag int) (CorrelationResult, bool) {
	for _, c := range r.Correlations {
		if c.Lag == lag {
			return c, true
		}
	}
	return CorrelationResult{}, false
}
