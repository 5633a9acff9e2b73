package lutio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
)

// Format is a tabular file encoding.
type Format int

const (
	CSV Format = iota
	TSV
	XLSX
)

func (f Format) String() string {
	switch f {
	case TSV:
		return "tsv"
	case XLSX:
		return "xlsx"
	default:
		return "csv"
	}
}

// FormatFor picks the format from a file extension. Unknown extensions are
// CSV.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv", ".tab":
		return TSV
	case ".xlsx":
		return XLSX
	default:
		return CSV
	}
}

// CellError reports a cell that is neither a float nor SI text.
type CellError struct {
	Row    int // 1-based data row
	Column string
	Err    error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("lutio: row %d column %q: %v", e.Row, e.Column, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// ReadFile loads a LUT, choosing the decoder from the file extension.
func ReadFile(path string) (*lut.Table, error) {
	if FormatFor(path) == XLSX {
		return ReadXLSXFile(path, "")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	comma := ','
	if FormatFor(path) == TSV {
		comma = '\t'
	}
	return ReadDelimited(file, comma)
}

// ReadCSV loads a comma-separated LUT with a header row.
func ReadCSV(r io.Reader) (*lut.Table, error) {
	return ReadDelimited(r, ',')
}

// ReadDelimited loads a delimited LUT with a header row.
func ReadDelimited(r io.Reader, comma rune) (*lut.Table, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("lutio: %w", err)
	}
	return fromRecords(records)
}

// ReadXLSXFile loads a LUT from a workbook sheet. An empty sheet name
// selects the first sheet.
func ReadXLSXFile(path, sheet string) (*lut.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()
	return readWorkbook(f, sheet)
}

// ReadXLSX loads a LUT from a workbook stream.
func ReadXLSX(r io.Reader, sheet string) (*lut.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("lutio: %w", err)
	}
	defer f.Close()
	return readWorkbook(f, sheet)
}

func readWorkbook(f *excelize.File, sheet string) (*lut.Table, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("lutio: workbook has no sheets")
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("lutio: sheet %q: %w", sheet, err)
	}
	return fromRecords(rows)
}

func fromRecords(records [][]string) (*lut.Table, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("lutio: missing header row")
	}

	header := make([]string, len(records[0]))
	for i, name := range records[0] {
		header[i] = strings.TrimSpace(name)
	}
	// pandas writes an unnamed index column first.
	skipIndex := len(header) > 0 && header[0] == ""
	if skipIndex {
		header = header[1:]
	}

	b := lut.NewBuilder(header)
	b.Grow(len(records) - 1)
	values := make([]float64, len(header))
	for r, record := range records[1:] {
		if skipIndex && len(record) > 0 {
			record = record[1:]
		}
		if isBlank(record) {
			continue
		}
		if len(record) < len(header) {
			return nil, fmt.Errorf("lutio: row %d has %d fields, want %d", r+1, len(record), len(header))
		}
		for c := range header {
			v, err := si.ParseNumber(record[c])
			if err != nil {
				return nil, &CellError{Row: r + 1, Column: header[c], Err: err}
			}
			values[c] = v
		}
		if err := b.Append(values); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

func isBlank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
