// Package excel exports sequences and statistics reports as xlsx workbooks.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"cedralab/domain/cedra"
	"cedralab/domain/stats"
)

const (
	constantsSheet = "Constants"
	sequenceSheet  = "Sequence"
	reportSheet    = "Statistics"
)

// ReportWriter writes an analysis run to an Excel workbook with three
// sheets: constants, the raw sequence, and the computed statistics.
type ReportWriter struct {
	filePath string
}

// NewReportWriter creates a writer targeting the given path.
func NewReportWriter(filePath string) *ReportWriter {
	return &ReportWriter{filePath: filePath}
}

// Write builds the workbook and saves it.
func (w *ReportWriter) Write(report *stats.StatisticsReport, seq []float64) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := w.writeConstants(f); err != nil {
		return fmt.Errorf("failed to write constants sheet: %w", err)
	}
	if err := w.writeSequence(f, seq); err != nil {
		return fmt.Errorf("failed to write sequence sheet: %w", err)
	}
	if err := w.writeReport(f, report); err != nil {
		return fmt.Errorf("failed to write statistics sheet: %w", err)
	}

	// Drop the default sheet so the workbook opens on Constants.
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx >= 0 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(w.filePath); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func (w *ReportWriter) writeConstants(f *excelize.File) error {
	if _, err := f.NewSheet(constantsSheet); err != nil {
		return err
	}

	c := cedra.Snapshot()
	rows := [][]interface{}{
		{"Name", "Value"},
		{"Cedra", c.Cedra},
		{"ln(Cedra)", c.LnCedra},
		{"Delta", c.Delta},
		{"Cedra × Delta", c.Phi},
		{"Golden ratio", c.GoldenRatio},
		{"Tau (window)", c.Tau},
		{"1/phi", c.InvPhi},
		{"Order value", c.OrderValue},
	}
	return writeRows(f, constantsSheet, rows)
}

func (w *ReportWriter) writeSequence(f *excelize.File, seq []float64) error {
	if _, err := f.NewSheet(sequenceSheet); err != nil {
		return err
	}

	if err := writeRows(f, sequenceSheet, [][]interface{}{{"n", "X_n"}}); err != nil {
		return err
	}
	for i, v := range seq {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sequenceSheet, cell, &[]interface{}{i + 1, v}); err != nil {
			return err
		}
	}
	return nil
}

func (w *ReportWriter) writeReport(f *excelize.File, report *stats.StatisticsReport) error {
	if _, err := f.NewSheet(reportSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Metric", "Value"},
		{"Report ID", report.ID.String()},
		{"Length", report.Params.Length},
		{"Mean", report.Summary.Mean},
		{"Variance", report.Summary.Variance},
		{"Std dev", report.Summary.StdDev},
		{"Median", report.Summary.Median},
		{"Chi-squared", report.Uniformity.ChiSquared},
		{"Chi-squared p-value", report.Uniformity.PValue},
		{"Bins", report.Uniformity.Bins},
		{"Star discrepancy", report.Discrepancy.Discrepancy},
		{"Discrepancy resolution", report.Discrepancy.Resolution},
	}
	for _, c := range report.Correlations {
		rows = append(rows, []interface{}{fmt.Sprintf("Correlation lag %d", c.Lag), c.Correlation})
	}
	for _, warning := range report.Warnings {
		rows = append(rows, []interface{}{"Warning", string(warning)})
	}

	return writeRows(f, reportSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}
