// Package export writes analysis results to spreadsheet files for people
// who keep their draw bookkeeping in Excel.
package export

import (
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/lakay-labs/tiraj/internal/analysis"
)

// LogToXLSX writes the detailed analysis log to outputPath, one row per
// hit. Weeks without hits are written too, with empty hit columns, so the
// sheet shows the full scan, not just the positives.
func LogToXLSX(entries []analysis.LogEntry, outputPath string) error {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{
		"input_label", "input_number", "set_id",
		"week", "date1", "date2",
		"hit_date", "number_found", "match_type",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	writeRow := func(e analysis.LogEntry, wc analysis.WeekCheck, hit *analysis.HistoricalHit) {
		set := func(col int, value any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, value)
		}
		set(1, e.InputLabel)
		set(2, e.InputNumber)
		set(3, e.SetID)
		set(4, wc.Week)
		set(5, wc.Date1)
		set(6, wc.Date2)
		if hit != nil {
			set(7, hit.Date)
			set(8, hit.NumberFound)
			set(9, string(hit.Type))
		}
		row++
	}

	for _, e := range entries {
		for _, wc := range e.Weeks {
			if len(wc.Hits) == 0 {
				writeRow(e, wc, nil)
				continue
			}
			for i := range wc.Hits {
				writeRow(e, wc, &wc.Hits[i])
			}
		}
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(outputPath)
}
