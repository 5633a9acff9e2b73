package lutio

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/lut"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
)

// Result column names added to the numeric columns on output.
const (
	ColumnCondition = "condition"
	ColumnMetSpecs  = "met_specs"
	ColumnSource    = "source_row"
)

// WriteOptions controls text rendering of numeric cells.
type WriteOptions struct {
	// SI renders numbers with SI suffixes instead of full precision.
	SI bool
}

// records lays a result (or a plain table when res is nil) out as a header
// plus rows of cells; numeric cells stay float64.
type records struct {
	header []string
	rows   func(yield func([]any))
	n      int
}

func tableRecords(t *lut.Table) records {
	names := t.Columns()
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = t.MustColumn(name)
	}
	return records{
		header: names,
		n:      t.Len(),
		rows: func(yield func([]any)) {
			cells := make([]any, len(names))
			for r := 0; r < t.Len(); r++ {
				for c := range cols {
					cells[c] = cols[c][r]
				}
				yield(cells)
			}
		},
	}
}

func resultRecords(res *sizing.Result) records {
	names := res.Table.Columns()
	cols := make([][]float64, len(names))
	for i, name := range names {
		cols[i] = res.Table.MustColumn(name)
	}
	header := append(append([]string{}, names...), ColumnCondition, ColumnSource, ColumnMetSpecs)
	return records{
		header: header,
		n:      res.Len(),
		rows: func(yield func([]any)) {
			cells := make([]any, len(header))
			for r := 0; r < res.Len(); r++ {
				for c := range cols {
					cells[c] = cols[c][r]
				}
				cells[len(cols)] = res.Condition[r]
				cells[len(cols)+1] = res.Source[r]
				met := false
				if r < len(res.MetSpecs) {
					met = res.MetSpecs[r]
				}
				cells[len(cols)+2] = met
				yield(cells)
			}
		},
	}
}

func formatCell(v any, opts WriteOptions) string {
	switch x := v.(type) {
	case float64:
		if opts.SI {
			return si.Encode(x)
		}
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case bool:
		if x {
			return "True"
		}
		return "False"
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}

func writeDelimited(w io.Writer, rec records, comma rune, opts WriteOptions) error {
	cw := csv.NewWriter(w)
	cw.Comma = comma
	if err := cw.Write(rec.header); err != nil {
		return err
	}

	var werr error
	line := make([]string, len(rec.header))
	rec.rows(func(cells []any) {
		if werr != nil {
			return
		}
		for i, cell := range cells {
			line[i] = formatCell(cell, opts)
		}
		werr = cw.Write(line)
	})
	if werr != nil {
		return werr
	}

	cw.Flush()
	return cw.Error()
}

// WriteTable writes a plain table as delimited text.
func WriteTable(w io.Writer, t *lut.Table, comma rune, opts WriteOptions) error {
	return writeDelimited(w, tableRecords(t), comma, opts)
}

// WriteResult writes a sizing result as delimited text with the condition,
// source_row and met_specs columns appended.
func WriteResult(w io.Writer, res *sizing.Result, comma rune, opts WriteOptions) error {
	return writeDelimited(w, resultRecords(res), comma, opts)
}

// SaveTable writes a table to path in the format implied by its extension.
func SaveTable(path string, t *lut.Table, opts WriteOptions) error {
	return save(path, tableRecords(t), nil, opts)
}

// SaveResult writes a result to path in the format implied by its extension.
// Workbooks get an extra Summary sheet.
func SaveResult(path string, res *sizing.Result, opts WriteOptions) error {
	return save(path, resultRecords(res), res, opts)
}

func save(path string, rec records, res *sizing.Result, opts WriteOptions) error {
	format := FormatFor(path)
	if format == XLSX {
		f, err := workbook(rec, res)
		if err != nil {
			return err
		}
		defer f.Close()
		return f.SaveAs(path)
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	comma := ','
	if format == TSV {
		comma = '\t'
	}
	if err := writeDelimited(file, rec, comma, opts); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// WriteResultXLSX writes a result workbook to w.
func WriteResultXLSX(w io.Writer, res *sizing.Result) error {
	f, err := workbook(resultRecords(res), res)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

const dataSheet = "LUT"

func workbook(rec records, res *sizing.Result) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, err
	}

	sw, err := f.NewStreamWriter(dataSheet)
	if err != nil {
		return nil, err
	}
	header := make([]any, len(rec.header))
	for i, h := range rec.header {
		header[i] = h
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, err
	}

	row := 2
	var werr error
	rec.rows(func(cells []any) {
		if werr != nil {
			return
		}
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			werr = err
			return
		}
		out := make([]any, len(cells))
		for i, c := range cells {
			// Workbooks have no NaN/Inf cells.
			if v, ok := c.(float64); ok && (math.IsNaN(v) || math.IsInf(v, 0)) {
				out[i] = si.Encode(v)
				continue
			}
			out[i] = c
		}
		werr = sw.SetRow(cell, out)
		row++
	})
	if werr != nil {
		return nil, werr
	}
	if err := sw.Flush(); err != nil {
		return nil, err
	}

	if res != nil {
		if err := writeSummarySheet(f, res); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeSummarySheet(f *excelize.File, res *sizing.Result) error {
	const summary = "Summary"
	if _, err := f.NewSheet(summary); err != nil {
		return err
	}

	f.SetCellValue(summary, "A1", "Condition")
	f.SetCellValue(summary, "B1", "Rows")
	f.SetCellValue(summary, "C1", "Passing")
	f.SetCellValue(summary, "D1", "Ratio")

	r := 2
	total, passing := 0, 0
	for _, s := range res.Summary() {
		f.SetCellValue(summary, fmt.Sprintf("A%d", r), s.Condition)
		f.SetCellValue(summary, fmt.Sprintf("B%d", r), s.Rows)
		f.SetCellValue(summary, fmt.Sprintf("C%d", r), s.Passing)
		f.SetCellValue(summary, fmt.Sprintf("D%d", r), ratio(s.Passing, s.Rows))
		total += s.Rows
		passing += s.Passing
		r++
	}
	f.SetCellValue(summary, fmt.Sprintf("A%d", r), "ALL")
	f.SetCellValue(summary, fmt.Sprintf("B%d", r), total)
	f.SetCellValue(summary, fmt.Sprintf("C%d", r), passing)
	f.SetCellValue(summary, fmt.Sprintf("D%d", r), ratio(passing, total))
	return nil
}

func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}
