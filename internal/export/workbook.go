// Package export writes multi-sheet XLSX workbooks for team workload
// hand-off: aging-bucket tabs, all-data tabs, and the deduplicated PV
// workload summary. Date-valued columns become real date cells.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/gyeh/claimtriage/internal/model"
	"github.com/gyeh/claimtriage/internal/normalize"
)

const dateFormat = "mm/dd/yyyy"

// writer accumulates sheets into one workbook file.
type writer struct {
	f         *excelize.File
	dateStyle int
	sheets    int
}

func newWriter() (*writer, error) {
	f := excelize.NewFile()
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: func() *string { s := dateFormat; return &s }()})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create date style: %w", err)
	}
	return &writer{f: f, dateStyle: style}, nil
}

// addSheet appends a sheet with a header row, data rows, and an
// autofilter. dateCols marks zero-based column indexes holding dates.
func (w *writer) addSheet(name string, headers []string, rows [][]string, dateCols map[int]bool) error {
	if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	w.sheets++

	headerCells := make([]any, len(headers))
	for i, h := range headers {
		headerCells[i] = h
	}
	if err := w.f.SetSheetRow(name, "A1", &headerCells); err != nil {
		return fmt.Errorf("write header row: %w", err)
	}

	for r, row := range rows {
		cells := make([]any, len(row))
		for c, v := range row {
			if dateCols[c] {
				if t := normalize.ParseDate(v); t != nil {
					cells[c] = *t
					continue
				}
			}
			cells[c] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		if err := w.f.SetSheetRow(name, cell, &cells); err != nil {
			return fmt.Errorf("write row %d: %w", r+2, err)
		}
	}

	last, err := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	for c := range dateCols {
		col, err := excelize.ColumnNumberToName(c + 1)
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if len(rows) > 0 {
			start := fmt.Sprintf("%s2", col)
			end := fmt.Sprintf("%s%d", col, len(rows)+1)
			if err := w.f.SetCellStyle(name, start, end, w.dateStyle); err != nil {
				return fmt.Errorf("date style: %w", err)
			}
		}
	}
	if len(rows) > 0 {
		if err := w.f.AutoFilter(name, "A1:"+last, nil); err != nil {
			return fmt.Errorf("autofilter: %w", err)
		}
	}
	return nil
}

// save drops the default sheet and writes the workbook to path.
func (w *writer) save(path string) error {
	defer w.f.Close()
	if w.sheets == 0 {
		return fmt.Errorf("no sheets to write")
	}
	if err := w.f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("drop default sheet: %w", err)
	}
	if err := w.f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

// claimRows projects claims onto the kept column set.
func claimRows(claims []*model.Claim, columns []string) [][]string {
	rows := make([][]string, len(claims))
	for i, c := range claims {
		row := make([]string, len(columns))
		for j, col := range columns {
			row[j] = c.Field(col)
		}
		rows[i] = row
	}
	return rows
}

// dateColumnIndexes marks which kept columns carry date values.
func dateColumnIndexes(columns []string) map[int]bool {
	out := make(map[int]bool)
	for i, col := range columns {
		if model.IsDateColumn(col) {
			out[i] = true
		}
	}
	return out
}

// TeamWorkbook writes one workbook for a team's claims: a tab per aging
// bucket with members plus an all-data tab. columns is the full header set
// for PHI exports or the reduced PV work set. The fullData flag only
// affects tab naming, matching the hand-off convention.
func TeamWorkbook(path string, columns []string, claims []*model.Claim, fullData bool) error {
	w, err := newWriter()
	if err != nil {
		return err
	}

	kept, cleaned := CleanHeaders(columns)
	dateCols := dateColumnIndexes(kept)
	prefix := ""
	if fullData {
		prefix = "Full_"
	}

	for _, bucket := range model.AgingBuckets {
		var members []*model.Claim
		for _, c := range claims {
			if c.AgeBucket == bucket {
				members = append(members, c)
			}
		}
		if len(members) == 0 {
			continue
		}
		name := prefix + sheetName(string(bucket), 25)
		if err := w.addSheet(name, cleaned, claimRows(members, kept), dateCols); err != nil {
			return err
		}
	}

	allName := "All Data"
	if fullData {
		allName = "Full_All_Data"
	}
	if err := w.addSheet(allName, cleaned, claimRows(claims, kept), dateCols); err != nil {
		return err
	}
	return w.save(path)
}

// TeamReport writes a single all-claims sheet for one team using the full
// column set.
func TeamReport(path string, columns []string, claims []*model.Claim) error {
	w, err := newWriter()
	if err != nil {
		return err
	}
	kept, cleaned := CleanHeaders(columns)
	if err := w.addSheet("All Claims Data", cleaned, claimRows(claims, kept), dateColumnIndexes(kept)); err != nil {
		return err
	}
	return w.save(path)
}
