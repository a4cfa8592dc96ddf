// Package tabread decodes tabular claim exports into an ordered header
// list plus row lists. It handles delimited text (tab or comma, sniffed
// from the header line) and XLSX workbooks (first sheet).
package tabread

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Table is parsed tabular data: an ordered header list and ordered-field
// rows. Header cells are trimmed; row values are passed through verbatim.
type Table struct {
	Headers []string
	Rows    [][]string
}

// Read decodes the file at path by extension: .xlsx/.xls via the
// spreadsheet reader, anything else as delimited text.
func Read(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return ReadWorkbook(path)
	default:
		return ReadDelimited(path)
	}
}

// ReadWorkbook decodes the first sheet of an XLSX workbook.
func ReadWorkbook(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("no data found in sheet %q", sheets[0])
	}

	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &Table{Headers: headers, Rows: rows[1:]}, nil
}

// ReadDelimited decodes tab- or comma-separated text. The delimiter is
// sniffed from the header line: tab wins when present, then comma.
func ReadDelimited(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	content := strings.TrimSpace(string(data))
	if content == "" {
		return nil, fmt.Errorf("no data found")
	}
	headerLine, _, _ := strings.Cut(content, "\n")

	var delim rune
	switch {
	case strings.ContainsRune(headerLine, '\t'):
		delim = '\t'
	case strings.ContainsRune(headerLine, ','):
		delim = ','
	default:
		return nil, fmt.Errorf("could not detect separator")
	}

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse delimited data: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("no data found")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	return &Table{Headers: headers, Rows: records[1:]}, nil
}
