// Package analysis assembles immutable statistics reports from generated
// sequences and the senses battery.
package analysis

import (
	"context"

	"cedralab/adapters/stats/senses"
	"cedralab/domain/cedra"
	"cedralab/domain/core"
	"cedralab/domain/stats"
	"cedralab/internal/errors"
)

// Request describes one analysis run. Zero values fall back to defaults.
type Request struct {
	Length     int     // sequence length, required > 0
	Alpha      float64 // rotation parameter; 0 means ln(Cedra)
	Bins       int     // histogram bins, default 20
	Resolution int     // discrepancy thresholds, default Length
	Lags       []int   // correlation lags, default {1, 2, 3}
}

const (
	defaultBins = 20
	defaultLags = 3
)

// Builder generates a sequence and runs the statistics battery over it.
type Builder struct {
	engine *senses.Engine
}

// NewBuilder creates a report builder.
func NewBuilder() *Builder {
	return &Builder{engine: senses.NewEngine()}
}

// Build generates the sequence described by the request, runs the battery,
// and returns the finished report together with the sequence itself (the
// report stores only the generation parameters; callers that want the raw
// values, such as the Excel exporter, take them from the second return).
func (b *Builder) Build(ctx context.Context, req Request) (*stats.StatisticsReport, []float64, error) {
	params, err := resolveParams(req)
	if err != nil {
		return nil, nil, err
	}

	seq, err := cedra.WeylSequence(params.Length, params.Alpha)
	if err != nil {
		return nil, nil, err
	}

	battery, err := b.engine.RunBattery(ctx, seq, params)
	if err != nil {
		return nil, nil, errors.Wrap(err, "statistics battery failed")
	}

	report := &stats.StatisticsReport{
		ID:           core.ReportID(core.NewID()),
		Params:       params,
		Summary:      battery.Summary,
		Uniformity:   battery.Uniformity,
		Discrepancy:  battery.Discrepancy,
		Correlations: battery.Correlations,
		Warnings:     battery.Warnings,
		Fingerprint:  core.ComputeSequenceFingerprint(params.Length, params.Bins, params.Resolution, params.Lags),
		ComputedAt:   core.Now(),
	}

	return report, seq, nil
}

// resolveParams validates the request and fills defaults.
func resolveParams(req Request) (stats.GenerationParams, error) {
	if req.Length <= 0 {
		return stats.GenerationParams{}, errors.InvalidInputf("sequence length must be positive, got %d", req.Length)
	}

	alpha := req.Alpha
	if alpha == 0 {
		alpha = cedra.LnCedra
	}

	bins := req.Bins
	if bins == 0 {
		bins = defaultBins
	}
	if bins < 0 {
		return stats.GenerationParams{}, errors.InvalidInputf("bin count must be positive, got %d", bins)
	}

	resolution := req.Resolution
	if resolution == 0 {
		resolution = req.Length
	}
	if resolution < 0 {
		return stats.GenerationParams{}, errors.InvalidInputf("resolution must be positive, got %d", resolution)
	}

	lags := req.Lags
	if len(lags) == 0 {
		lags = make([]int, defaultLags)
		for i := range lags {
			lags[i] = i + 1
		}
	}
	for _, lag := range lags {
		if lag < 0 || lag >= req.Length {
			return stats.GenerationParams{}, errors.InvalidInputf("lag must be in [0,%d), got %d", req.Length, lag)
		}
	}

	return stats.GenerationParams{
		Length:     req.Length,
		Alpha:      alpha,
		Bins:       bins,
		Resolution: resolution,
		Lags:       lags,
	}, nil
}
