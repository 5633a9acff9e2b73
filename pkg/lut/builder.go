package lut

import "fmt"

// Builder accumulates rows in order and produces a Table.
type Builder struct {
	names []string
	cols  [][]float64
	ids   []int
}

// NewBuilder creates a builder for the given schema.
func NewBuilder(columns []string) *Builder {
	names := make([]string, len(columns))
	copy(names, columns)
	return &Builder{
		names: names,
		cols:  make([][]float64, len(names)),
	}
}

// Grow reserves space for n more rows.
func (b *Builder) Grow(n int) {
	for c := range b.cols {
		if cap(b.cols[c])-len(b.cols[c]) < n {
			grown := make([]float64, len(b.cols[c]), len(b.cols[c])+n)
			copy(grown, b.cols[c])
			b.cols[c] = grown
		}
	}
	if cap(b.ids)-len(b.ids) < n {
		grown := make([]int, len(b.ids), len(b.ids)+n)
		copy(grown, b.ids)
		b.ids = grown
	}
}

// Append adds one row with the next sequential ID.
func (b *Builder) Append(values []float64) error {
	return b.AppendWithID(len(b.ids), values)
}

// AppendWithID adds one row carrying an explicit ID. Values follow the
// builder's column order.
func (b *Builder) AppendWithID(id int, values []float64) error {
	if len(values) != len(b.names) {
		return fmt.Errorf("lut: row has %d values, want %d", len(values), len(b.names))
	}
	for c, v := range values {
		b.cols[c] = append(b.cols[c], v)
	}
	b.ids = append(b.ids, id)
	return nil
}

// Len returns the number of rows appended so far.
func (b *Builder) Len() int { return len(b.ids) }

// Build returns the table. The builder must not be used afterwards.
func (b *Builder) Build() (*Table, error) {
	for c := range b.cols {
		if b.cols[c] == nil {
			b.cols[c] = []float64{}
		}
	}
	ids := b.ids
	if ids == nil {
		ids = []int{}
	}
	return newTable(b.names, b.cols, ids)
}
