package core

import (
	"fmt"
	"log/slog"
	"sort"
)

// Frame holds a set of named raw columns and the classifiers registered
// against them. It only orchestrates: every classification rule lives in the
// Classifier.
type Frame struct {
	columns map[string][]any
	order   []string // Source column order
	cols    map[string]*Classifier
	reg     []string // Registration order
	logger  *slog.Logger
}

// ColumnReport is the outcome of parsing one registered column.
type ColumnReport struct {
	Column   string
	Type     string
	Table    *Table
	Messages []string
}

// NewFrame creates a Frame over raw columns. order lists the column names in
// source order; when nil the names are sorted.
func NewFrame(columns map[string][]any, order []string) (*Frame, error) {
	if order == nil {
		for name := range columns {
			order = append(order, name)
		}
		sort.Strings(order)
	}
	for _, name := range order {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, name)
		}
	}

	return &Frame{
		columns: columns,
		order:   append([]string(nil), order...),
		cols:    make(map[string]*Classifier),
		logger:  slog.Default(),
	}, nil
}

// SetLogger sets the logger handed to every classifier registered afterwards.
func (f *Frame) SetLogger(l *slog.Logger) {
	if l != nil {
		f.logger = l
	}
}

// SourceColumns returns the raw column names in source order.
func (f *Frame) SourceColumns() []string {
	return append([]string(nil), f.order...)
}

// Register classifies column as the registered type typeName.
func (f *Frame) Register(column, typeName string) error {
	def, ok := Get(typeName)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownType, typeName)
	}
	return f.RegisterType(column, def.New)
}

// RegisterType classifies column with a custom constructor.
func (f *Frame) RegisterType(column string, newFn Constructor) error {
	if _, exists := f.cols[column]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateColumn, column)
	}
	cells, ok := f.columns[column]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownColumn, column)
	}
	if newFn == nil {
		return fmt.Errorf("%w: no constructor for column %s", ErrUnknownType, column)
	}

	c, err := newFn(cells, WithName(column), WithLogger(f.logger))
	if err != nil {
		return fmt.Errorf("register column %s: %w", column, err)
	}

	f.cols[column] = c
	f.reg = append(f.reg, column)
	return nil
}

// Get returns the classifier registered for column.
func (f *Frame) Get(column string) (*Classifier, bool) {
	c, ok := f.cols[column]
	return c, ok
}

// Columns returns the registered column names in registration order.
func (f *Frame) Columns() []string {
	return append([]string(nil), f.reg...)
}

// ParseAll parses every registered column in registration order.
func (f *Frame) ParseAll(opts ParseOptions) []ColumnReport {
	reports := make([]ColumnReport, 0, len(f.reg))
	for _, name := range f.reg {
		c := f.cols[name]
		table, msgs := c.Parse(opts)
		reports = append(reports, ColumnReport{
			Column:   name,
			Type:     c.Descriptor().Name,
			Table:    table,
			Messages: msgs,
		})
	}
	return reports
}

// DF returns one column per registered classifier, named after the source
// column: the parsed primary column when parsed, otherwise the raw cells.
func (f *Frame) DF() *Table {
	cols := make([]*Column, 0, len(f.reg))
	for _, name := range f.reg {
		cols = append(cols, f.cols[name].Series().renamed(name))
	}
	return newTable("", cols...)
}
