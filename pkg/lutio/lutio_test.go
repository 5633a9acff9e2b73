package lutio

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/scaling"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/specs"
)

const sampleCSV = `,W,L,gm,gmb,rout,cgg,id,region,VSB,VDS
0,1u,100n,1e-3,2e-4,5e4,1e-12,2e-4,2,0.3,0.6
1,2.5u,100n,2e-3,4e-4,3e4,2e-12,4e-4,2,0.3,0.6
`

func TestReadCSVDecodesSIWidth(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len = %d, want 2", tbl.Len())
	}
	if tbl.Has("") {
		t.Fatal("unnamed index column was kept")
	}
	w := tbl.MustColumn("W")
	if math.Abs(w[1]-2.5e-6) > 1e-18 {
		t.Fatalf("W[1] = %g, want 2.5e-6", w[1])
	}
	if l := tbl.MustColumn("L")[0]; math.Abs(l-100e-9) > 1e-20 {
		t.Fatalf("L[0] = %g, want 1e-7", l)
	}
}

func TestReadCSVBadCell(t *testing.T) {
	_, err := ReadCSV(strings.NewReader("W,L\n1u,bad\n"))
	var ce *CellError
	if !errors.As(err, &ce) {
		t.Fatalf("error = %v, want CellError", err)
	}
	if ce.Row != 1 || ce.Column != "L" {
		t.Fatalf("CellError = %+v, want row 1 column L", ce)
	}
	var fe *si.FormatError
	if !errors.As(err, &fe) {
		t.Fatalf("error does not wrap si.FormatError: %v", err)
	}
}

func TestReadCSVShortRow(t *testing.T) {
	if _, err := ReadDelimited(strings.NewReader("W\tL\n1u\n"), '\t'); err == nil {
		t.Fatal("expected error for short row")
	}
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestFormatFor(t *testing.T) {
	cases := map[string]Format{
		"a.csv":  CSV,
		"a.TSV":  TSV,
		"a.xlsx": XLSX,
		"a":      CSV,
	}
	for path, want := range cases {
		if got := FormatFor(path); got != want {
			t.Fatalf("FormatFor(%q) = %s, want %s", path, got, want)
		}
	}
}

func computeSample(t *testing.T) *sizing.Result {
	t.Helper()
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	ext, err := specs.Extend(tbl)
	if err != nil {
		t.Fatalf("Extend failed: %v", err)
	}
	res, err := sizing.NewEngine(scaling.Default(), sizing.DefaultOptions()).
		Compute(ext, []string{"gm=1.5e-3", "rout>3.5e4"})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return res
}

func TestWriteResult(t *testing.T) {
	res := computeSample(t)

	var buf bytes.Buffer
	if err := WriteResult(&buf, res, ',', WriteOptions{}); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want header + 4 rows:\n%s", len(lines), buf.String())
	}
	if !strings.HasSuffix(lines[0], ",area,condition,source_row,met_specs") {
		t.Fatalf("header = %q", lines[0])
	}
	if !strings.HasSuffix(lines[1], ",gm,0,False") || !strings.HasSuffix(lines[2], ",gm,1,True") ||
		!strings.HasSuffix(lines[3], ",rout,0,False") || !strings.HasSuffix(lines[4], ",rout,1,False") {
		t.Fatalf("rows = %q", lines[1:])
	}

	buf.Reset()
	if err := WriteResult(&buf, res, '\t', WriteOptions{SI: true}); err != nil {
		t.Fatalf("WriteResult failed: %v", err)
	}
	if !strings.Contains(buf.String(), "1.50m") {
		t.Fatalf("SI output missing 1.50m:\n%s", buf.String())
	}
}

func TestSaveAndReloadTable(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ReadCSV failed: %v", err)
	}
	dir := t.TempDir()

	for _, name := range []string{"lut.csv", "lut.tsv", "lut.xlsx"} {
		path := filepath.Join(dir, name)
		if err := SaveTable(path, tbl, WriteOptions{}); err != nil {
			t.Fatalf("SaveTable(%s) failed: %v", name, err)
		}
		back, err := ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", name, err)
		}
		if back.Len() != tbl.Len() || len(back.Columns()) != len(tbl.Columns()) {
			t.Fatalf("%s: reloaded %d rows x %d cols, want %d x %d",
				name, back.Len(), len(back.Columns()), tbl.Len(), len(tbl.Columns()))
		}
		if got, want := back.MustColumn("W")[1], tbl.MustColumn("W")[1]; math.Abs(got-want) > want*1e-12 {
			t.Fatalf("%s: W[1] = %g, want %g", name, got, want)
		}
	}
}

func TestSaveResultXLSX(t *testing.T) {
	res := computeSample(t)
	path := filepath.Join(t.TempDir(), "result.xlsx")
	if err := SaveResult(path, res, WriteOptions{}); err != nil {
		t.Fatalf("SaveResult failed: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteResultXLSX(&buf, res); err != nil {
		t.Fatalf("WriteResultXLSX failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("empty workbook")
	}
}
