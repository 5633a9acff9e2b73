// Package report renders sizing results for terminals: per-condition
// summaries, row listings and single-row dumps with SI-formatted values.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/OpenTraceLab/OpenTraceGMID/pkg/scaling"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/si"
	"github.com/OpenTraceLab/OpenTraceGMID/pkg/sizing"
)

const keyWidth = 20

// FormatRow dumps row i of res as "name value" lines, numbers in SI form.
func FormatRow(res *sizing.Result, i int) (string, error) {
	if i < 0 || i >= res.Len() {
		return "", fmt.Errorf("report: row %d out of range [0, %d)", i, res.Len())
	}

	var b strings.Builder
	for _, name := range res.Table.Columns() {
		v := res.Table.MustColumn(name)[i]
		fmt.Fprintf(&b, "%-*s%s\n", keyWidth, name, si.Encode(v))
	}
	fmt.Fprintf(&b, "%-*s%s\n", keyWidth, "condition", res.Condition[i])
	fmt.Fprintf(&b, "%-*s%d\n", keyWidth, "source_row", res.Source[i])
	met := i < len(res.MetSpecs) && res.MetSpecs[i]
	fmt.Fprintf(&b, "%-*s%s", keyWidth, "met_specs", strconv.FormatBool(met))
	return b.String(), nil
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(Muted)).
		Headers(headers...)
}

// Summary renders rows and passing rows per driving condition.
func Summary(res *sizing.Result) string {
	t := newTable("Condition", "Rows", "Passing", "Ratio")

	total, passing := 0, 0
	for _, s := range res.Summary() {
		t.Row(s.Condition, strconv.Itoa(s.Rows), strconv.Itoa(s.Passing), percent(s.Passing, s.Rows))
		total += s.Rows
		passing += s.Passing
	}
	t.Row("ALL", strconv.Itoa(total), strconv.Itoa(passing), percent(passing, total))

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerCell
		}
		return cell
	})
	return t.String()
}

// Rows renders up to limit rows of res restricted to columns, with a
// trailing met_specs column. A limit of 0 renders every row.
func Rows(res *sizing.Result, columns []string, limit int) (string, error) {
	cols := make([][]float64, len(columns))
	for i, name := range columns {
		col, err := res.Table.Column(name)
		if err != nil {
			return "", err
		}
		cols[i] = col
	}

	headers := append([]string{"#"}, columns...)
	headers = append(headers, "condition", "met_specs")
	t := newTable(headers...)

	n := res.Len()
	if limit > 0 && limit < n {
		n = limit
	}
	for r := 0; r < n; r++ {
		line := make([]string, 0, len(headers))
		line = append(line, strconv.Itoa(r))
		for _, col := range cols {
			line = append(line, si.Encode(col[r]))
		}
		met := r < len(res.MetSpecs) && res.MetSpecs[r]
		line = append(line, res.Condition[r], strconv.FormatBool(met))
		t.Row(line...)
	}

	metCol := len(headers) - 1
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerCell
		}
		if col == metCol && row >= 0 && row < len(res.MetSpecs) {
			if res.MetSpecs[row] {
				return passCell
			}
			return failCell
		}
		return cell
	})
	return t.String(), nil
}

// Classes renders a scaling classification.
func Classes(cls scaling.Classification) string {
	t := newTable("Column", "Scaling")
	for _, k := range []scaling.Kind{scaling.Proportional, scaling.Inverse} {
		for _, name := range cls.Columns(k) {
			t.Row(name, k.String())
		}
	}
	t.Row("(other)", scaling.Invariant.String())
	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row == table.HeaderRow {
			return headerCell
		}
		return cell
	})
	return t.String()
}

func percent(a, b int) string {
	if b == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(a)/float64(b))
}
