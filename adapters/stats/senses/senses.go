// Package senses implements the sequence statistics battery. Each statistic
// is a "sense" with a name and a description; the engine runs the whole
// battery concurrently and assembles a combined result.
package senses

import (
	"context"

	"golang.org/x/sync/errgroup"

	"cedralab/domain/stats"
)

// SequenceSense is implemented by every statistic in the battery.
type SequenceSense interface {
	Name() string
	Description() string
}

// BatteryResult is the combined output of one battery run.
type BatteryResult struct {
	Summary      stats.SummaryStats
	Uniformity   stats.UniformityResult
	Discrepancy  stats.DiscrepancyResult
	Correlations []stats.CorrelationResult
	Warnings     []stats.WarningCode
}

// Engine orchestrates the statistic battery.
type Engine struct {
	uniformity  *UniformitySense
	discrepancy *DiscrepancySense
	correlation *CorrelationSense
	moments     *MomentsSense
}

// NewEngine creates a battery engine.
func NewEngine() *Engine {
	return &Engine{
		uniformity:  NewUniformitySense(),
		discrepancy: NewDiscrepancySense(),
		correlation: NewCorrelationSense(),
		moments:     NewMomentsSense(),
	}
}

// ListSenses returns the names of all senses in the battery.
func (e *Engine) ListSenses() []string {
	return []string{
		e.moments.Name(),
		e.uniformity.Name(),
		e.discrepancy.Name(),
		e.correlation.Name(),
	}
}

// RunBattery runs every sense concurrently over the sequence. The senses are
// independent and read-only over seq, so they share the slice without
// locking. Any invalid parameter fails the whole battery.
func (e *Engine) RunBattery(ctx context.Context, seq []float64, params stats.GenerationParams) (*BatteryResult, error) {
	result := &BatteryResult{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		summary, err := e.moments.Analyze(ctx, seq)
		if err != nil {
			return err
		}
		result.Summary = summary
		return nil
	})

	g.Go(func() error {
		uniformity, err := e.uniformity.Analyze(ctx, seq, params.Bins)
		if err != nil {
			return err
		}
		result.Uniformity = uniformity
		return nil
	})

	g.Go(func() error {
		discrepancy, err := e.discrepancy.Analyze(ctx, seq, params.Resolution)
		if err != nil {
			return err
		}
		result.Discrepancy = discrepancy
		return nil
	})

	g.Go(func() error {
		correlations, err := e.correlation.AnalyzeLags(ctx, seq, params.Lags)
		if err != nil {
			return err
		}
		result.Correlations = correlations
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Warnings = collectWarnings(seq, params, result)
	return result, nil
}

// collectWarnings derives structured warnings from a completed battery run.
func collectWarnings(seq []float64, params stats.GenerationParams, r *BatteryResult) []stats.WarningCode {
	var warnings []stats.WarningCode

	if len(seq) < 30 {
		warnings = append(warnings, stats.WarningLowN)
	}
	if params.Bins > 0 && float64(len(seq))/float64(params.Bins) < 5 {
		warnings = append(warnings, stats.WarningSparseBins)
	}
	if r.Summary.Variance == 0 {
		warnings = append(warnings, stats.WarningDegenerateSeries)
	}
	if r.Uniformity.PValue < 0.01 {
		warnings = append(warnings, stats.WarningNonUniform)
	}
	for _, c := range r.Correlations {
		if c.Lag > 0 && (c.Correlation > 0.5 || c.Correlation < -0.5) {
			warnings = append(warnings, stats.WarningHighCorrelation)
			break
		}
	}

	return warnings
}
