package lut

import (
	"fmt"
)

// Table is an immutable, column-major operating-point table.
type Table struct {
	names []string
	index map[string]int
	cols  [][]float64
	ids   []int

	// byID maps row IDs to row positions when IDs are not 0..n-1.
	byID map[int]int
}

// FromColumns builds a table from parallel columns. Row IDs are 0..n-1.
// The column slices are owned by the table afterwards.
func FromColumns(names []string, cols [][]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("lut: %d names for %d columns", len(names), len(cols))
	}
	n := 0
	if len(cols) > 0 {
		n = len(cols[0])
	}
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	return newTable(names, cols, ids)
}

// FromColumnsWithIDs is FromColumns with explicit row IDs.
func FromColumnsWithIDs(names []string, cols [][]float64, ids []int) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("lut: %d names for %d columns", len(names), len(cols))
	}
	return newTable(names, cols, ids)
}

func newTable(names []string, cols [][]float64, ids []int) (*Table, error) {
	index := make(map[string]int, len(names))
	for i, name := range names {
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("lut: duplicate column %q", name)
		}
		if len(cols[i]) != len(ids) {
			return nil, fmt.Errorf("lut: column %q has %d rows, want %d", name, len(cols[i]), len(ids))
		}
		index[name] = i
	}

	t := &Table{names: names, index: index, cols: cols, ids: ids}
	for i, id := range ids {
		if id != i {
			t.byID = make(map[int]int, len(ids))
			for pos, rowID := range ids {
				t.byID[rowID] = pos
			}
			break
		}
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.ids) }

// Columns returns the column names in table order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Require returns a MissingColumnError for the first absent name.
func (t *Table) Require(names ...string) error {
	for _, name := range names {
		if !t.Has(name) {
			return &MissingColumnError{Column: name}
		}
	}
	return nil
}

// Column returns the values of the named column. The slice is shared with
// the table and must not be modified.
func (t *Table) Column(name string) ([]float64, error) {
	i, ok := t.index[name]
	if !ok {
		return nil, &MissingColumnError{Column: name}
	}
	return t.cols[i], nil
}

// MustColumn is Column for names already checked with Require.
func (t *Table) MustColumn(name string) []float64 {
	col, err := t.Column(name)
	if err != nil {
		panic(err)
	}
	return col
}

// ID returns the stable identifier of row i.
func (t *Table) ID(i int) int { return t.ids[i] }

// IDs returns a copy of all row identifiers.
func (t *Table) IDs() []int {
	out := make([]int, len(t.ids))
	copy(out, t.ids)
	return out
}

// Position returns the row position holding the given ID.
func (t *Table) Position(id int) (int, bool) {
	if t.byID == nil {
		if id < 0 || id >= len(t.ids) {
			return 0, false
		}
		return id, true
	}
	pos, ok := t.byID[id]
	return pos, ok
}

// Row returns row i as a name → value map.
func (t *Table) Row(i int) map[string]float64 {
	row := make(map[string]float64, len(t.names))
	for c, name := range t.names {
		row[name] = t.cols[c][i]
	}
	return row
}

// WithColumn returns a table with the named column added, or replaced when
// it already exists. Other columns are shared.
func (t *Table) WithColumn(name string, values []float64) (*Table, error) {
	if len(values) != t.Len() {
		return nil, fmt.Errorf("lut: column %q has %d rows, want %d", name, len(values), t.Len())
	}

	names := t.Columns()
	cols := make([][]float64, len(t.cols))
	copy(cols, t.cols)
	if i, ok := t.index[name]; ok {
		cols[i] = values
	} else {
		names = append(names, name)
		cols = append(cols, values)
	}
	return newTable(names, cols, t.ids)
}

// Filter returns the rows for which keep returns true, preserving order
// and row IDs.
func (t *Table) Filter(keep func(i int) bool) *Table {
	positions := make([]int, 0, t.Len())
	for i := 0; i < t.Len(); i++ {
		if keep(i) {
			positions = append(positions, i)
		}
	}
	return t.Take(positions)
}

// Take returns the rows at the given positions, in that order.
func (t *Table) Take(positions []int) *Table {
	cols := make([][]float64, len(t.cols))
	for c, src := range t.cols {
		dst := make([]float64, len(positions))
		for i, p := range positions {
			dst[i] = src[p]
		}
		cols[c] = dst
	}
	ids := make([]int, len(positions))
	for i, p := range positions {
		ids[i] = t.ids[p]
	}
	out, err := newTable(t.Columns(), cols, ids)
	if err != nil {
		// Schema comes from a valid table.
		panic(err)
	}
	return out
}

// Concat joins tables with identical column order. Row IDs are kept, so the
// result may contain repeated IDs.
func Concat(tables ...*Table) (*Table, error) {
	if len(tables) == 0 {
		return FromColumns(nil, nil)
	}
	names := tables[0].Columns()
	total := 0
	for _, t := range tables {
		if len(t.names) != len(names) {
			return nil, fmt.Errorf("lut: concat schema mismatch: %d vs %d columns", len(t.names), len(names))
		}
		for i, name := range names {
			if t.names[i] != name {
				return nil, fmt.Errorf("lut: concat schema mismatch at column %d: %q vs %q", i, t.names[i], name)
			}
		}
		total += t.Len()
	}

	cols := make([][]float64, len(names))
	for c := range cols {
		cols[c] = make([]float64, 0, total)
	}
	ids := make([]int, 0, total)
	for _, t := range tables {
		for c := range cols {
			cols[c] = append(cols[c], t.cols[c]...)
		}
		ids = append(ids, t.ids...)
	}
	return newTable(names, cols, ids)
}
