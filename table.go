package hw01

import (
	"fmt"
	"math"
	"slices"

	"github.com/etnz/hw01/date"
)

// Table is a chronological date index with named float columns of equal length.
//
// NaN marks a missing observation. A Table is never modified once built:
// With and Between return new tables.
type Table struct {
	days    []date.Date
	names   []string // in file order
	columns map[string][]float64
}

// NewTable builds a Table from rows in any order.
//
// columns[j] holds the values of names[j], row aligned with days. Rows are
// sorted by day and, for duplicate days, the last row in input order wins.
func NewTable(days []date.Date, names []string, columns [][]float64) (*Table, error) {
	if len(names) != len(columns) {
		return nil, fmt.Errorf("%d column names for %d columns", len(names), len(columns))
	}
	for j, col := range columns {
		if len(col) != len(days) {
			return nil, fmt.Errorf("column %q has %d values for %d days", names[j], len(col), len(days))
		}
	}
	// A history of row positions gives the sorted and deduplicated row order.
	rows := make([]float64, len(days))
	for i := range rows {
		rows[i] = float64(i)
	}
	order := date.NewHistory(days, rows)

	t := &Table{
		days:    order.Days(),
		columns: make(map[string][]float64, len(names)),
	}
	for j, name := range names {
		if _, exists := t.columns[name]; exists {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrValidation, name)
		}
		values := make([]float64, 0, order.Len())
		for _, row := range order.Values() {
			values = append(values, columns[j][int(row)])
		}
		t.names = append(t.names, name)
		t.columns[name] = values
	}
	return t, nil
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.days) }

// Days returns a copy of the date index.
func (t *Table) Days() []date.Date { return slices.Clone(t.days) }

// Names returns the column names, in file order.
func (t *Table) Names() []string { return slices.Clone(t.names) }

// Has reports whether the table has a column named name.
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Span returns the range from the first to the last day of the table.
func (t *Table) Span() date.Range {
	if len(t.days) == 0 {
		return date.Range{}
	}
	return date.Range{From: t.days[0], To: t.days[len(t.days)-1]}
}

// Values returns a copy of the values of a column.
func (t *Table) Values(name string) ([]float64, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, missingColumn(name)
	}
	return slices.Clone(col), nil
}

// Column returns a column as a date History.
func (t *Table) Column(name string) (*date.History[float64], error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, missingColumn(name)
	}
	return date.NewHistory(t.days, col), nil
}

// With returns a new table with the column name set to values, replacing an
// existing column of the same name.
//
// values must be row aligned with t.
func (t *Table) With(name string, values []float64) *Table {
	if len(values) != len(t.days) {
		panic(fmt.Sprintf("column %q has %d values for %d rows", name, len(values), len(t.days)))
	}
	res := &Table{
		days:    t.days,
		names:   slices.Clone(t.names),
		columns: make(map[string][]float64, len(t.columns)+1),
	}
	for k, v := range t.columns {
		res.columns[k] = v
	}
	if !t.Has(name) {
		res.names = append(res.names, name)
	}
	res.columns[name] = slices.Clone(values)
	return res
}

// WithHistory is like With for a History, aligned on the table days. Days of
// t missing in h get NaN.
func (t *Table) WithHistory(name string, h *date.History[float64]) *Table {
	values := make([]float64, len(t.days))
	for i, on := range t.days {
		v, ok := h.Get(on)
		if !ok {
			v = math.NaN()
		}
		values[i] = v
	}
	return t.With(name, values)
}

// Between returns a new table with the rows within r, boundaries included.
func (t *Table) Between(r date.Range) *Table {
	from, _ := slices.BinarySearchFunc(t.days, r.From, date.Date.Compare)
	to, found := slices.BinarySearchFunc(t.days, r.To, date.Date.Compare)
	if found {
		to++
	}
	to = max(to, from)
	res := &Table{
		days:    slices.Clone(t.days[from:to]),
		names:   slices.Clone(t.names),
		columns: make(map[string][]float64, len(t.columns)),
	}
	for k, v := range t.columns {
		res.columns[k] = slices.Clone(v[from:to])
	}
	return res
}
