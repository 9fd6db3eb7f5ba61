package core

import (
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgtype"
)

// ColumnOriginal is the name of the column holding the raw cells.
const ColumnOriginal = "__original__"

// Column is a row-aligned sequence of nullable typed cells.
// Exactly one of the backing slices is used, chosen by the column type.
type Column struct {
	name   string
	typ    FieldType
	ints   []pgtype.Int8
	floats []pgtype.Float8
	texts  []pgtype.Text
}

// newColumn returns a column of n null cells.
func newColumn(name string, typ FieldType, n int) *Column {
	c := &Column{name: name, typ: typ}
	switch typ {
	case FieldInteger:
		c.ints = make([]pgtype.Int8, n)
	case FieldFloat:
		c.floats = make([]pgtype.Float8, n)
	default:
		c.texts = make([]pgtype.Text, n)
	}
	return c
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the column storage type.
func (c *Column) Type() FieldType { return c.typ }

// Len returns the number of rows.
func (c *Column) Len() int {
	switch c.typ {
	case FieldInteger:
		return len(c.ints)
	case FieldFloat:
		return len(c.floats)
	default:
		return len(c.texts)
	}
}

// Valid reports whether row i holds a value.
func (c *Column) Valid(i int) bool {
	switch c.typ {
	case FieldInteger:
		return c.ints[i].Valid
	case FieldFloat:
		return c.floats[i].Valid
	default:
		return c.texts[i].Valid
	}
}

// Value returns row i as int64, float64 or string, or nil when null.
func (c *Column) Value(i int) any {
	if !c.Valid(i) {
		return nil
	}
	switch c.typ {
	case FieldInteger:
		return c.ints[i].Int64
	case FieldFloat:
		return c.floats[i].Float64
	default:
		return c.texts[i].String
	}
}

// Int returns row i of an integer column.
func (c *Column) Int(i int) pgtype.Int8 {
	if c.typ != FieldInteger {
		return pgtype.Int8{}
	}
	return c.ints[i]
}

// Float returns row i of a float column.
func (c *Column) Float(i int) pgtype.Float8 {
	if c.typ != FieldFloat {
		return pgtype.Float8{}
	}
	return c.floats[i]
}

// Text returns row i of a text column.
func (c *Column) Text(i int) pgtype.Text {
	if c.typ != FieldText {
		return pgtype.Text{}
	}
	return c.texts[i]
}

// String formats row i for display; null cells render as "".
func (c *Column) String(i int) string {
	switch v := c.Value(i).(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// Values returns every row as returned by Value.
func (c *Column) Values() []any {
	out := make([]any, c.Len())
	for i := range out {
		out[i] = c.Value(i)
	}
	return out
}

// check verifies that v can be stored in the column.
func (c *Column) check(v any) error {
	if v == nil {
		return nil
	}
	ok := false
	switch c.typ {
	case FieldInteger:
		_, ok = v.(int64)
	case FieldFloat:
		_, ok = v.(float64)
	default:
		_, ok = v.(string)
	}
	if !ok {
		return fmt.Errorf("column %q expects %s, got %T", c.name, c.typ, v)
	}
	return nil
}

// set stores v at row i. Callers must check v first; nil clears the cell.
func (c *Column) set(i int, v any) {
	switch c.typ {
	case FieldInteger:
		if n, ok := v.(int64); ok {
			c.ints[i] = pgtype.Int8{Int64: n, Valid: true}
		} else {
			c.ints[i] = pgtype.Int8{}
		}
	case FieldFloat:
		if f, ok := v.(float64); ok {
			c.floats[i] = pgtype.Float8{Float64: f, Valid: true}
		} else {
			c.floats[i] = pgtype.Float8{}
		}
	default:
		if s, ok := v.(string); ok {
			c.texts[i] = pgtype.Text{String: s, Valid: true}
		} else {
			c.texts[i] = pgtype.Text{}
		}
	}
}

// Table is the parsed, row-aligned result of a classification:
// the original column, the primary column and every auxiliary column.
type Table struct {
	RunID   string
	columns []*Column
	index   map[string]int
}

func newTable(runID string, cols ...*Column) *Table {
	t := &Table{RunID: runID, index: make(map[string]int, len(cols))}
	for _, c := range cols {
		t.add(c)
	}
	return t
}

func (t *Table) add(c *Column) {
	t.index[c.name] = len(t.columns)
	t.columns = append(t.columns, c)
}

// Column returns a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// Columns returns the columns in order.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// Rows returns the number of rows.
func (t *Table) Rows() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Row returns the display strings of row i across all columns.
func (t *Table) Row(i int) []string {
	out := make([]string, len(t.columns))
	for j, c := range t.columns {
		out[j] = c.String(i)
	}
	return out
}

// renamed returns a view of the column under another name. Cells are shared.
func (c *Column) renamed(name string) *Column {
	out := *c
	out.name = name
	return &out
}
