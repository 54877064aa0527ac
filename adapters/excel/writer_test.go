package excel

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"cedralab/internal/analysis"
)

func TestReportWriterRoundTrip(t *testing.T) {
	builder := analysis.NewBuilder()
	report, seq, err := builder.Build(context.Background(), analysis.Request{Length: 100})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "report.xlsx")
	writer := NewReportWriter(path)
	require.NoError(t, writer.Write(report, seq))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, constantsSheet)
	assert.Contains(t, sheets, sequenceSheet)
	assert.Contains(t, sheets, reportSheet)

	// Constants sheet carries the Cedra value in B2.
	val, err := f.GetCellValue(constantsSheet, "B2")
	require.NoError(t, err)
	assert.Contains(t, val, "1.85337115")

	// Sequence sheet has a header plus one row per term.
	rows, err := f.GetRows(sequenceSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 101)

	// Statistics sheet names the report.
	id, err := f.GetCellValue(reportSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, report.ID.String(), id)
}
