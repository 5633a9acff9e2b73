package lut

import (
	"errors"
	"testing"
)

func sampleTable(t *testing.T) *Table {
	t.Helper()
	tbl, err := FromColumns(
		[]string{"W", "L", "gm"},
		[][]float64{
			{1e-6, 2e-6, 3e-6},
			{1e-7, 1e-7, 2e-7},
			{1e-3, 2e-3, 3e-3},
		},
	)
	if err != nil {
		t.Fatalf("FromColumns failed: %v", err)
	}
	return tbl
}

func TestFromColumnsValidation(t *testing.T) {
	if _, err := FromColumns([]string{"a"}, [][]float64{{1}, {2}}); err == nil {
		t.Fatal("expected error for name/column count mismatch")
	}
	if _, err := FromColumns([]string{"a", "b"}, [][]float64{{1, 2}, {3}}); err == nil {
		t.Fatal("expected error for ragged columns")
	}
	if _, err := FromColumns([]string{"a", "a"}, [][]float64{{1}, {2}}); err == nil {
		t.Fatal("expected error for duplicate column")
	}
}

func TestColumnMissing(t *testing.T) {
	tbl := sampleTable(t)
	_, err := tbl.Column("rout")
	var mc *MissingColumnError
	if !errors.As(err, &mc) {
		t.Fatalf("Column(rout) error = %v, want MissingColumnError", err)
	}
	if mc.Column != "rout" {
		t.Fatalf("MissingColumnError.Column = %q, want rout", mc.Column)
	}
	if err := tbl.Require("W", "L", "cgg"); err == nil {
		t.Fatal("Require should report cgg")
	}
}

func TestWithColumnDoesNotMutateParent(t *testing.T) {
	tbl := sampleTable(t)
	next, err := tbl.WithColumn("gm", []float64{9, 9, 9})
	if err != nil {
		t.Fatalf("WithColumn failed: %v", err)
	}
	if got := tbl.MustColumn("gm")[0]; got != 1e-3 {
		t.Fatalf("parent gm[0] = %g, want 1e-3", got)
	}
	if got := next.MustColumn("gm")[0]; got != 9 {
		t.Fatalf("child gm[0] = %g, want 9", got)
	}

	added, err := tbl.WithColumn("area", []float64{1, 2, 3})
	if err != nil {
		t.Fatalf("WithColumn failed: %v", err)
	}
	if tbl.Has("area") {
		t.Fatal("parent gained area column")
	}
	if cols := added.Columns(); cols[len(cols)-1] != "area" {
		t.Fatalf("area not appended last: %v", cols)
	}
	if _, err := tbl.WithColumn("x", []float64{1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestFilterKeepsIDs(t *testing.T) {
	tbl := sampleTable(t)
	kept := tbl.Filter(func(i int) bool { return i != 1 })
	if kept.Len() != 2 {
		t.Fatalf("Len = %d, want 2", kept.Len())
	}
	if kept.ID(0) != 0 || kept.ID(1) != 2 {
		t.Fatalf("IDs = %v, want [0 2]", kept.IDs())
	}
	pos, ok := kept.Position(2)
	if !ok || pos != 1 {
		t.Fatalf("Position(2) = %d, %v, want 1, true", pos, ok)
	}
	if _, ok := kept.Position(1); ok {
		t.Fatal("Position(1) found a filtered row")
	}
	if got := kept.Row(1)["gm"]; got != 3e-3 {
		t.Fatalf("Row(1)[gm] = %g, want 3e-3", got)
	}
}

func TestConcat(t *testing.T) {
	tbl := sampleTable(t)
	a := tbl.Take([]int{0})
	b := tbl.Take([]int{2, 0})
	joined, err := Concat(a, b)
	if err != nil {
		t.Fatalf("Concat failed: %v", err)
	}
	if joined.Len() != 3 {
		t.Fatalf("Len = %d, want 3", joined.Len())
	}
	want := []int{0, 2, 0}
	for i, id := range joined.IDs() {
		if id != want[i] {
			t.Fatalf("IDs = %v, want %v", joined.IDs(), want)
		}
	}

	other, _ := FromColumns([]string{"W"}, [][]float64{{1}})
	if _, err := Concat(a, other); err == nil {
		t.Fatal("expected schema mismatch error")
	}
}

func TestBuilder(t *testing.T) {
	b := NewBuilder([]string{"x", "y"})
	b.Grow(2)
	if err := b.Append([]float64{1, 2}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := b.AppendWithID(7, []float64{3, 4}); err != nil {
		t.Fatalf("AppendWithID failed: %v", err)
	}
	if err := b.Append([]float64{1}); err == nil {
		t.Fatal("expected width mismatch error")
	}
	tbl, err := b.Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if tbl.Len() != 2 || tbl.ID(1) != 7 {
		t.Fatalf("unexpected table: len=%d ids=%v", tbl.Len(), tbl.IDs())
	}
	if got := tbl.MustColumn("y")[1]; got != 4 {
		t.Fatalf("y[1] = %g, want 4", got)
	}

	empty, err := NewBuilder([]string{"x"}).Build()
	if err != nil || empty.Len() != 0 {
		t.Fatalf("empty Build = %v, %v", empty, err)
	}
}
