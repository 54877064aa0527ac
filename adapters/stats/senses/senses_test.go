package senses

import (
	"context"
	"math"
	"testing"

	"cedralab/domain/cedra"
	"cedralab/domain/stats"
	"cedralab/internal/errors"
)

func TestChiSquaredUniformity_OnePerBin(t *testing.T) {
	// One value centered in each of 8 bins: observed == expected everywhere.
	bins := 8
	seq := make([]float64, bins)
	for i := range seq {
		seq[i] = (float64(i) + 0.5) / float64(bins)
	}

	stat, counts, err := ChiSquaredUniformity(seq, bins)
	if err != nil {
		t.Fatal(err)
	}
	if stat != 0 {
		t.Errorf("chi-squared = %f, want 0 for one value per bin", stat)
	}
	for i, c := range counts {
		if c != 1 {
			t.Errorf("bin %d count = %d, want 1", i, c)
		}
	}
}

func TestChiSquaredUniformity_ClampsOne(t *testing.T) {
	// A value exactly at 1.0 must land in the last bin, not out of range.
	_, counts, err := ChiSquaredUniformity([]float64{0.0, 0.5, 1.0}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if counts[3] != 1 {
		t.Errorf("last bin count = %d, want 1 (clamped 1.0)", counts[3])
	}
}

func TestChiSquaredUniformity_InvalidArgs(t *testing.T) {
	if _, _, err := ChiSquaredUniformity([]float64{0.1}, 0); err == nil {
		t.Error("zero bin count should fail")
	}
	if _, _, err := ChiSquaredUniformity(nil, 4); err == nil {
		t.Error("empty sequence should fail")
	}
	if _, _, err := ChiSquaredUniformity([]float64{1.5}, 4); errors.GetCode(err) != errors.CodeInvalidInput {
		t.Error("out-of-range value should report INVALID_INPUT")
	}
}

func TestStarDiscrepancy_IdealSequenceIsZero(t *testing.T) {
	n := 100
	seq, err := cedra.IdealSequence(n)
	if err != nil {
		t.Fatal(err)
	}

	disc, _, err := StarDiscrepancy(seq, n)
	if err != nil {
		t.Fatal(err)
	}
	if disc != 0 {
		t.Errorf("discrepancy of i/n sequence = %f, want 0", disc)
	}
}

func TestStarDiscrepancy_ChaosSequenceIsSmall(t *testing.T) {
	seq, err := cedra.ChaosSequence(2000)
	if err != nil {
		t.Fatal(err)
	}

	disc, worstAt, err := StarDiscrepancy(seq, 1000)
	if err != nil {
		t.Fatal(err)
	}
	// Irrational rotations are low-discrepancy; anything near 0.1 on 2000
	// terms would indicate a broken generator.
	if disc > 0.02 {
		t.Errorf("discrepancy = %f at t=%f, want < 0.02", disc, worstAt)
	}
	t.Logf("star discrepancy over 2000 terms: %.6f (worst at %.3f)", disc, worstAt)
}

func TestStarDiscrepancy_InvalidResolution(t *testing.T) {
	if _, _, err := StarDiscrepancy([]float64{0.5}, 0); err == nil {
		t.Error("zero resolution should fail")
	}
}

func TestLaggedPearson_LagZeroIsOne(t *testing.T) {
	seq, _ := cedra.ChaosSequence(500)
	r, err := LaggedPearson(seq, 0)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("lag-0 correlation = %f, want 1", r)
	}
}

func TestLaggedPearson_ConstantSequenceIsZero(t *testing.T) {
	seq := []float64{0.25, 0.25, 0.25, 0.25, 0.25}
	r, err := LaggedPearson(seq, 1)
	if err != nil {
		t.Fatal(err)
	}
	if r != 0 {
		t.Errorf("constant sequence correlation = %f, want 0", r)
	}
}

func TestLaggedPearson_InvalidLag(t *testing.T) {
	seq := []float64{0.1, 0.2, 0.3}
	for _, lag := range []int{-1, 3, 10} {
		if _, err := LaggedPearson(seq, lag); err == nil {
			t.Errorf("lag %d should fail", lag)
		}
	}
}

func TestLaggedPearson_PerfectLinear(t *testing.T) {
	// Strictly increasing ramp: every lag keeps a perfect linear
	// relationship between the slice and its shifted copy.
	seq := make([]float64, 50)
	for i := range seq {
		seq[i] = float64(i) / 50
	}
	r, err := LaggedPearson(seq, 5)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r-1) > 1e-12 {
		t.Errorf("ramp lag-5 correlation = %f, want 1", r)
	}
}

func TestEngine_RunBattery(t *testing.T) {
	engine := NewEngine()
	ctx := context.Background()

	seq, err := cedra.ChaosSequence(1000)
	if err != nil {
		t.Fatal(err)
	}

	params := stats.GenerationParams{
		Length:     1000,
		Alpha:      cedra.LnCedra,
		Bins:       20,
		Resolution: 500,
		Lags:       []int{1, 2, 3},
	}

	result, err := engine.RunBattery(ctx, seq, params)
	if err != nil {
		t.Fatal(err)
	}

	if result.Summary.Mean < 0.4 || result.Summary.Mean > 0.6 {
		t.Errorf("mean = %f, expected near 0.5 for an equidistributed sequence", result.Summary.Mean)
	}
	if result.Uniformity.Bins != 20 || result.Uniformity.DF != 19 {
		t.Errorf("uniformity bins/df = %d/%d", result.Uniformity.Bins, result.Uniformity.DF)
	}
	if result.Uniformity.PValue < 0 || result.Uniformity.PValue > 1 {
		t.Errorf("p-value = %f, outside [0,1]", result.Uniformity.PValue)
	}
	if len(result.Correlations) != 3 {
		t.Fatalf("correlation count = %d, want 3", len(result.Correlations))
	}
	// For the mod-1 shift x_{n+k} = frac(x_n + kα), the lag-k correlation
	// tends to 1 − 6a(1−a) with a = frac(kα).
	for _, c := range result.Correlations {
		a := math.Mod(float64(c.Lag)*cedra.LnCedra, 1)
		want := 1 - 6*a*(1-a)
		if math.Abs(c.Correlation-want) > 0.05 {
			t.Errorf("lag %d correlation = %f, want ≈ %f", c.Lag, c.Correlation, want)
		}
	}

	t.Logf("battery: chi2=%.3f p=%.3f disc=%.5f",
		result.Uniformity.ChiSquared, result.Uniformity.PValue, result.Discrepancy.Discrepancy)
}

func TestEngine_RunBatteryInvalidParams(t *testing.T) {
	engine := NewEngine()
	seq, _ := cedra.ChaosSequence(100)

	params := stats.GenerationParams{Length: 100, Bins: 0, Resolution: 50, Lags: []int{1}}
	if _, err := engine.RunBattery(context.Background(), seq, params); err == nil {
		t.Error("zero bin count should fail the battery")
	}
}

func TestEngine_WarningsForShortSequence(t *testing.T) {
	engine := NewEngine()
	seq, _ := cedra.ChaosSequence(10)

	params := stats.GenerationParams{Length: 10, Bins: 5, Resolution: 10, Lags: []int{1}}
	result, err := engine.RunBattery(context.Background(), seq, params)
	if err != nil {
		t.Fatal(err)
	}

	found := map[stats.WarningCode]bool{}
	for _, w := range result.Warnings {
		found[w] = true
	}
	if !found[stats.WarningLowN] {
		t.Error("expected LOW_N warning for 10-element sequence")
	}
	if !found[stats.WarningSparseBins] {
		t.Error("expected SPARSE_BINS warning for 10 elements over 5 bins")
	}
}
