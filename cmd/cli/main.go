package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"cedralab/adapters/excel"
	"cedralab/domain/biquad"
	"cedralab/domain/cedra"
	"cedralab/domain/quasicrystal"
	"cedralab/internal/analysis"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "cedralab",
		Short: "Cedra constant toolkit: deterministic sequences and their statistics",
	}

	rootCmd.AddCommand(
		newConstantsCmd(),
		newGenerateCmd(),
		newAnalyzeCmd(),
		newQuasicrystalCmd(),
		newSolveCmd(),
		newExportCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newConstantsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print the Cedra constant and its derived constants",
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cedra.Snapshot()

			if asJSON {
				return printJSON(c)
			}

			fmt.Printf("Cedra           = %.15f\n", c.Cedra)
			fmt.Printf("ln(Cedra)       = %.15f\n", c.LnCedra)
			fmt.Printf("Delta           = %.15f\n", c.Delta)
			fmt.Printf("Cedra * Delta   = %.15f\n", c.Phi)
			fmt.Printf("Golden ratio    = %.15f\n", c.GoldenRatio)
			fmt.Printf("Match precision = %.2e\n", c.PhiError)
			fmt.Printf("Tau (window)    = %.15f\n", c.Tau)
			fmt.Printf("1/phi           = %.15f\n", c.InvPhi)
			fmt.Printf("Order value     = %.15f (same for all n)\n", c.OrderValue)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the chaos sequence X_n = frac(n·ln C)",
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := cedra.ChaosSequence(count)
			if err != nil {
				return err
			}
			for i, v := range seq {
				fmt.Printf("X%d = %.6f\n", i+1, v)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 10, "Number of terms to generate")
	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var (
		length     int
		bins       int
		resolution int
		lagsFlag   string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the statistics battery over the chaos sequence",
		Long: `Generate the chaos sequence and compute its uniformity (chi-squared),
star discrepancy, descriptive moments, and serial correlations.

Example: cedralab analyze --length 2000 --bins 40 --lags 1,2,5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lags, err := parseLags(lagsFlag)
			if err != nil {
				return err
			}

			builder := analysis.NewBuilder()
			report, seq, err := builder.Build(context.Background(), analysis.Request{
				Length:     length,
				Bins:       bins,
				Resolution: resolution,
				Lags:       lags,
			})
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(report)
			}

			c := cedra.Snapshot()
			fmt.Printf("Cedra = %.15f, ln(Cedra) = %.15f\n\n", c.Cedra, c.LnCedra)

			fmt.Println("First terms:")
			for i := 0; i < len(seq) && i < 5; i++ {
				fmt.Printf("  X%d = %.6f\n", i+1, seq[i])
			}

			fmt.Printf("\nSummary over %d terms:\n", report.Params.Length)
			fmt.Printf("  mean     = %.6f\n", report.Summary.Mean)
			fmt.Printf("  variance = %.6f\n", report.Summary.Variance)
			fmt.Printf("  median   = %.6f\n", report.Summary.Median)

			fmt.Printf("\nUniformity (%d bins): chi2 = %.4f, df = %d, p = %.4f\n",
				report.Uniformity.Bins, report.Uniformity.ChiSquared, report.Uniformity.DF, report.Uniformity.PValue)
			fmt.Printf("Star discrepancy (%d thresholds): %.6f (worst at t = %.4f)\n",
				report.Discrepancy.Resolution, report.Discrepancy.Discrepancy, report.Discrepancy.WorstAt)

			fmt.Println("Serial correlation:")
			for _, corr := range report.Correlations {
				fmt.Printf("  lag %d: r = %+.6f\n", corr.Lag, corr.Correlation)
			}

			if len(report.Warnings) > 0 {
				fmt.Println("Warnings:")
				for _, w := range report.Warnings {
					fmt.Printf("  %s\n", w)
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 1000, "Sequence length")
	cmd.Flags().IntVar(&bins, "bins", 20, "Histogram bins for the uniformity test")
	cmd.Flags().IntVar(&resolution, "resolution", 0, "Discrepancy thresholds (0: match length)")
	cmd.Flags().StringVar(&lagsFlag, "lags", "1,2,3", "Comma-separated correlation lags")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")
	return cmd
}

func newQuasicrystalCmd() *cobra.Command {
	var bound int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "quasicrystal",
		Short: "Generate the temporal quasicrystal (Delone set and Sturmian word)",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := quasicrystal.Generate(bound)
			if err != nil {
				return err
			}

			if asJSON {
				return printJSON(s)
			}

			fmt.Printf("Delone set S_C (bound %d): %v\n", s.Bound, s.DeloneSet)

			bits := make([]string, len(s.Sturmian))
			for i, b := range s.Sturmian {
				bits[i] = fmt.Sprintf("%d", b)
			}
			fmt.Printf("Sturmian word: %s\n", strings.Join(bits, ""))

			fmt.Printf("Observed density: %.6f (theory tau = %.6f, error %.2f%%)\n",
				s.ObservedDensity, s.TheoryDensity, s.DensityError*100)
			if s.IsAperiodic() {
				fmt.Println("Aperiodicity: no period detected")
			} else {
				fmt.Printf("Aperiodicity: period %d detected\n", s.Period)
			}
			fmt.Printf("Unique gaps: %v\n", s.Gaps.Unique)
			fmt.Printf("Gap frequencies: %v\n", s.Gaps.Frequencies)
			return nil
		},
	}

	cmd.Flags().IntVar(&bound, "bound", 50, "Largest index to test for membership")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [a] [b] [c]",
		Short: "Solve the biquadratic equation ax⁴ + bx² + c = 0",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var a, b, c float64
			if _, err := fmt.Sscanf(strings.Join(args, " "), "%f %f %f", &a, &b, &c); err != nil {
				return fmt.Errorf("coefficients must be numbers: %w", err)
			}

			solver := biquad.NewSolver()
			roots := solver.Solve(a, b, c)

			fmt.Printf("%gx⁴ + %gx² + %g = 0\n", a, b, c)
			if len(roots) == 0 {
				fmt.Println("No real solutions")
				return nil
			}
			for _, x := range roots {
				fmt.Printf("  x = %.6f\n", x)
			}
			return nil
		},
	}
	return cmd
}

func newExportCmd() *cobra.Command {
	var (
		length int
		bins   int
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an analysis run to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			builder := analysis.NewBuilder()
			report, seq, err := builder.Build(context.Background(), analysis.Request{
				Length: length,
				Bins:   bins,
			})
			if err != nil {
				return err
			}

			writer := excel.NewReportWriter(output)
			if err := writer.Write(report, seq); err != nil {
				return err
			}

			fmt.Printf("Wrote report %s to %s\n", report.ID, output)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 1000, "Sequence length")
	cmd.Flags().IntVar(&bins, "bins", 20, "Histogram bins")
	cmd.Flags().StringVar(&output, "output", "cedra_report.xlsx", "Output file path")
	return cmd
}

func parseLags(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	lags := make([]int, 0, len(parts))
	for _, p := range parts {
		var lag int
		if _, err := fmt.Sscanf(strings.TrimSpace(p), "%d", &lag); err != nil {
			return nil, fmt.Errorf("invalid lag %q: %w", p, err)
		}
		lags = append(lags, lag)
	}
	return lags, nil
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
