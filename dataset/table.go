package dataset

import (
	"fmt"
	"slices"

	"github.com/YuminosukeSato/pimastat/pkg/errors"
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// Table is an immutable table of named columns and ordered rows. Every
// operation returning a *Table returns a new value; the receiver is never
// modified.
type Table struct {
	frame dataframe.DataFrame
}

func newTable(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, errors.Wrap(df.Err, "dataframe")
	}
	return &Table{frame: df}, nil
}

// NewTableFromRecords builds a Table from string rows. Column types are
// detected from the values.
func NewTableFromRecords(names []string, rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "NewTableFromRecords")
	}
	for i, row := range rows {
		if len(row) != len(names) {
			return nil, errors.Wrapf(errors.NewLengthMismatchError("NewTableFromRecords", len(names), len(row)), "row %d", i)
		}
	}
	records := make([][]string, 0, len(rows)+1)
	records = append(records, names)
	records = append(records, rows...)
	return newTable(dataframe.LoadRecords(records,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(true),
	))
}

// Frame returns a copy of the underlying dataframe.
func (t *Table) Frame() dataframe.DataFrame {
	return t.frame.Copy()
}

// Nrow returns the number of rows.
func (t *Table) Nrow() int { return t.frame.Nrow() }

// Ncol returns the number of columns.
func (t *Table) Ncol() int { return t.frame.Ncol() }

// Names returns the column names in order.
func (t *Table) Names() []string { return t.frame.Names() }

// Has reports whether the table has a column called name.
func (t *Table) Has(name string) bool {
	return slices.Contains(t.frame.Names(), name)
}

// Column returns the named column.
func (t *Table) Column(name string) (*Column, error) {
	if !t.Has(name) {
		return nil, errors.NewUnknownColumnError(name, t.Names())
	}
	return &Column{s: t.frame.Col(name)}, nil
}

// Columns returns all columns in order.
func (t *Table) Columns() []*Column {
	names := t.Names()
	cols := make([]*Column, len(names))
	for i, name := range names {
		cols[i] = &Column{s: t.frame.Col(name)}
	}
	return cols
}

// Select returns a table with only the named columns, in the given order.
func (t *Table) Select(names ...string) (*Table, error) {
	for _, name := range names {
		if !t.Has(name) {
			return nil, errors.NewUnknownColumnError(name, t.Names())
		}
	}
	return newTable(t.frame.Select(names))
}

// Drop returns a table without the named column.
func (t *Table) Drop(name string) (*Table, error) {
	if !t.Has(name) {
		return nil, errors.NewUnknownColumnError(name, t.Names())
	}
	return newTable(t.frame.Drop(name))
}

// Subset returns the given rows, in the given order.
func (t *Table) Subset(rows []int) (*Table, error) {
	n := t.Nrow()
	for _, r := range rows {
		if r < 0 || r >= n {
			return nil, errors.NewValueError("Table.Subset", fmt.Sprintf("row index %d out of range [0, %d)", r, n))
		}
	}
	if len(rows) == 0 {
		return t.empty()
	}
	return newTable(t.frame.Subset(rows))
}

// empty returns a zero-row table with the same schema.
func (t *Table) empty() (*Table, error) {
	cols := make([]series.Series, 0, t.Ncol())
	for _, name := range t.Names() {
		cols = append(cols, series.New([]string{}, t.frame.Col(name).Type(), name))
	}
	return newTable(dataframe.New(cols...))
}

// Head returns the first n rows, or the whole table if it is shorter. A
// negative n yields an empty table.
func (t *Table) Head(n int) *Table {
	n = max(n, 0)
	if n >= t.Nrow() {
		return t
	}
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	head, err := t.Subset(rows)
	if err != nil {
		return t
	}
	return head
}

// Rename assigns new column names. The number of names must match Ncol.
func (t *Table) Rename(names []string) (*Table, error) {
	if err := ValidateColumnCount(t, names); err != nil {
		return nil, err
	}
	df := t.frame.Copy()
	if err := df.SetNames(names...); err != nil {
		return nil, errors.Wrap(err, "Table.Rename")
	}
	return newTable(df)
}

// WithColumn returns a table where c replaces the column of the same name,
// or is appended when no such column exists.
func (t *Table) WithColumn(c *Column) (*Table, error) {
	if c.Len() != t.Nrow() {
		return nil, errors.NewLengthMismatchError("Table.WithColumn", t.Nrow(), c.Len())
	}
	return newTable(t.frame.Copy().Mutate(c.s))
}

// RecodeColumn applies recoder to every value of the named column and stores
// the categorical result in its place.
func (t *Table) RecodeColumn(name string, recoder LabelRecoder) (*Table, error) {
	col, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	labels := make([]string, col.Len())
	for i := range labels {
		label, err := recoder(name, col.Value(i))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", i)
		}
		labels[i] = label
	}
	return t.WithColumn(NewStringColumn(name, labels))
}

// Row materialises row i as an ordered name→value mapping.
func (t *Table) Row(i int) (*Attributes, error) {
	if i < 0 || i >= t.Nrow() {
		return nil, errors.NewValueError("Table.Row", fmt.Sprintf("row index %d out of range [0, %d)", i, t.Nrow()))
	}
	cols := t.Columns()
	values := make([]any, len(cols))
	for j, c := range cols {
		values[j] = c.Value(i)
	}
	return ArrangeValuesToNames(t.Names(), values)
}

// NumericNames returns the names of int and float columns, in order.
func (t *Table) NumericNames() []string {
	var names []string
	for _, c := range t.Columns() {
		if c.IsNumeric() {
			names = append(names, c.Name())
		}
	}
	return names
}

// Matrix returns the numeric columns as a rows × columns gonum matrix,
// together with the names of those columns.
func (t *Table) Matrix() (*mat.Dense, []string, error) {
	names := t.NumericNames()
	r := t.Nrow()
	if r == 0 || len(names) == 0 {
		return nil, names, errors.Wrap(errors.ErrEmptyData, "Table.Matrix")
	}
	m := mat.NewDense(r, len(names), nil)
	for j, name := range names {
		m.SetCol(j, t.frame.Col(name).Float())
	}
	return m, names, nil
}

// Records returns the table as strings, header row first.
func (t *Table) Records() [][]string {
	return t.frame.Records()
}

func (t *Table) String() string {
	return t.frame.String()
}

// Column is a single named column of a Table.
type Column struct {
	s series.Series
}

// NewStringColumn creates a categorical column.
func NewStringColumn(name string, values []string) *Column {
	return &Column{s: series.New(values, series.String, name)}
}

// NewFloatColumn creates a numeric column.
func NewFloatColumn(name string, values []float64) *Column {
	return &Column{s: series.New(values, series.Float, name)}
}

// Name returns the column name.
func (c *Column) Name() string { return c.s.Name }

// Len returns the number of values.
func (c *Column) Len() int { return c.s.Len() }

// Type returns the detected type: "int", "float", "string" or "bool".
func (c *Column) Type() string { return string(c.s.Type()) }

// IsNumeric reports whether the column holds int or float values.
func (c *Column) IsNumeric() bool {
	t := c.s.Type()
	return t == series.Int || t == series.Float
}

// Float returns the values as float64. Non-numeric values become NaN.
func (c *Column) Float() []float64 { return c.s.Float() }

// Strings returns the values formatted as strings.
func (c *Column) Strings() []string { return c.s.Records() }

// Value returns value i as int, float64, bool or string depending on the
// column type, or nil for a missing value.
func (c *Column) Value(i int) any {
	e := c.s.Elem(i)
	if e.IsNA() {
		return nil
	}
	switch c.s.Type() {
	case series.Int:
		v, err := e.Int()
		if err != nil {
			return nil
		}
		return v
	case series.Float:
		return e.Float()
	case series.Bool:
		v, err := e.Bool()
		if err != nil {
			return nil
		}
		return v
	default:
		return e.String()
	}
}

// Subset returns the given rows of the column, in the given order.
func (c *Column) Subset(rows []int) (*Column, error) {
	for _, r := range rows {
		if r < 0 || r >= c.Len() {
			return nil, errors.NewValueError("Column.Subset", fmt.Sprintf("row index %d out of range [0, %d)", r, c.Len()))
		}
	}
	if len(rows) == 0 {
		return &Column{s: series.New([]string{}, c.s.Type(), c.s.Name)}, nil
	}
	s := c.s.Subset(rows)
	if s.Err != nil {
		return nil, errors.Wrap(s.Err, "Column.Subset")
	}
	return &Column{s: s}, nil
}
