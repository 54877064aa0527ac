package render

import (
	"strings"
	"testing"

	"cedralab/domain/cedra"
	"cedralab/domain/core"
	"cedralab/domain/stats"
)

func sampleReport() *stats.StatisticsReport {
	return &stats.StatisticsReport{
		ID: core.ReportID("report-1"),
		Params: stats.GenerationParams{
			Length: 1000, Alpha: cedra.LnCedra, Bins: 20, Resolution: 1000, Lags: []int{1, 2},
		},
		Summary:    stats.SummaryStats{Mean: 0.5, Variance: 0.083, StdDev: 0.288},
		Uniformity: stats.UniformityResult{Bins: 20, ChiSquared: 14.2, PValue: 0.77, DF: 19},
		Discrepancy: stats.DiscrepancyResult{
			Resolution: 1000, Discrepancy: 0.004, WorstAt: 0.618, TheoryBound: 0.0069,
		},
		Correlations: []stats.CorrelationResult{{Lag: 1, Correlation: -0.418}},
		Warnings:     []stats.WarningCode{stats.WarningNonUniform},
		Fingerprint:  core.NewHash([]byte("params")),
		ComputedAt:   core.Now(),
	}
}

func TestReportMarkdownContainsSections(t *testing.T) {
	md := ReportMarkdown(sampleReport())

	for _, want := range []string{
		"# Sequence Analysis Report",
		"## Uniformity",
		"## Discrepancy",
		"## Serial correlation",
		"## Warnings",
		"NON_UNIFORM",
		"report-1",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

func TestToHTMLRendersTables(t *testing.T) {
	html := string(ToHTML(ReportMarkdown(sampleReport())))

	if !strings.Contains(html, "<table>") {
		t.Error("expected rendered HTML to contain a table")
	}
	if !strings.Contains(html, "<h1") {
		t.Error("expected rendered HTML to contain a heading")
	}
}

func TestConstantsMarkdown(t *testing.T) {
	md := ConstantsMarkdown(cedra.Snapshot())

	if !strings.Contains(md, "1.853371151") {
		t.Error("constants markdown should include the Cedra value")
	}
	if !strings.Contains(md, "Golden ratio") {
		t.Error("constants markdown should include the golden ratio row")
	}
}
