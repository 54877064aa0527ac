// Package render formats statistics reports as markdown and HTML.
package render

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"cedralab/domain/cedra"
	"cedralab/domain/stats"
)

// ReportMarkdown renders a statistics report as a markdown document.
func ReportMarkdown(report *stats.StatisticsReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Sequence Analysis Report\n\n")
	fmt.Fprintf(&b, "Report `%s`, computed %s.\n\n", report.ID.String(), report.ComputedAt.Time().Format("2006-01-02 15:04:05"))

	fmt.Fprintf(&b, "## Generation\n\n")
	fmt.Fprintf(&b, "| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Length | %d |\n", report.Params.Length)
	fmt.Fprintf(&b, "| Rotation α | %.15f |\n", report.Params.Alpha)
	fmt.Fprintf(&b, "| Bins | %d |\n", report.Params.Bins)
	fmt.Fprintf(&b, "| Resolution | %d |\n", report.Params.Resolution)
	fmt.Fprintf(&b, "| Fingerprint | `%s` |\n\n", shortHash(report.Fingerprint.String()))

	fmt.Fprintf(&b, "## Summary\n\n")
	fmt.Fprintf(&b, "| Statistic | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Mean | %.6f |\n", report.Summary.Mean)
	fmt.Fprintf(&b, "| Variance | %.6f |\n", report.Summary.Variance)
	fmt.Fprintf(&b, "| Std dev | %.6f |\n", report.Summary.StdDev)
	fmt.Fprintf(&b, "| Median | %.6f |\n", report.Summary.Median)
	fmt.Fprintf(&b, "| Min / Max | %.6f / %.6f |\n\n", report.Summary.Min, report.Summary.Max)

	fmt.Fprintf(&b, "## Uniformity\n\n")
	fmt.Fprintf(&b, "Chi-squared over %d bins: **%.4f** (df=%d, p=%.4f).\n\n",
		report.Uniformity.Bins, report.Uniformity.ChiSquared, report.Uniformity.DF, report.Uniformity.PValue)

	fmt.Fprintf(&b, "## Discrepancy\n\n")
	fmt.Fprintf(&b, "Star discrepancy over %d thresholds: **%.6f** (worst at t=%.4f, log(n)/n reference %.6f).\n\n",
		report.Discrepancy.Resolution, report.Discrepancy.Discrepancy, report.Discrepancy.WorstAt, report.Discrepancy.TheoryBound)

	fmt.Fprintf(&b, "## Serial correlation\n\n")
	fmt.Fprintf(&b, "| Lag | Pearson r |\n|---|---|\n")
	for _, c := range report.Correlations {
		fmt.Fprintf(&b, "| %d | %.6f |\n", c.Lag, c.Correlation)
	}
	b.WriteString("\n")

	if len(report.Warnings) > 0 {
		fmt.Fprintf(&b, "## Warnings\n\n")
		for _, w := range report.Warnings {
			fmt.Fprintf(&b, "- `%s`\n", string(w))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// ConstantsMarkdown renders the derived constants as a markdown document.
func ConstantsMarkdown(c cedra.Constants) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cedra Constants\n\n")
	fmt.Fprintf(&b, "| Constant | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Cedra | %.15f |\n", c.Cedra)
	fmt.Fprintf(&b, "| ln(Cedra) | %.15f |\n", c.LnCedra)
	fmt.Fprintf(&b, "| Delta | %.15f |\n", c.Delta)
	fmt.Fprintf(&b, "| Cedra × Delta | %.15f |\n", c.Phi)
	fmt.Fprintf(&b, "| Golden ratio | %.15f |\n", c.GoldenRatio)
	fmt.Fprintf(&b, "| Tau | %.15f |\n", c.Tau)
	fmt.Fprintf(&b, "| 1/phi | %.15f |\n", c.InvPhi)
	fmt.Fprintf(&b, "| Order value | %.15f |\n", c.OrderValue)

	return b.String()
}

// ToHTML converts a markdown document to an HTML fragment.
func ToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.Tables)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, renderer)
}

func shortHash(h string) string {
	if len(h) > 12 {
		return h[:12]
	}
	return h
}
