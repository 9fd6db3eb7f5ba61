package core

// classifier.go implements the classification entity: the match cascade and
// the column parse loop.
//
// A Classifier owns one column of raw cells and a schema. Matches are tried in
// registration order for every cell; the first one whose pattern matches
// decides the row. If its primary value does not coerce the row stays unset
// and later entries are not tried. Per-row problems never abort
// the column, they are collected as diagnostics:
//
//	index 3 :: match username@domain :: value can't be parsed: not-an-email
//
// Parsing is bounded by a row cap and a diagnostics cap; exceeding either ends
// the loop early with one explanatory message.

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Classifier classifies one column against a schema and an ordered cascade of matches.
type Classifier struct {
	name       string
	descriptor TypeDescriptor
	original   []any
	schema     Schema
	preParse   []func(string) string
	matches    []*match
	table      *Table
	logger     *slog.Logger
}

// match is one registered cascade entry.
type match struct {
	info   MatchInfo
	re     *regexp.Regexp
	tmpl   outputTemplate
	groups map[string]int // Sub-expression index per schema field present in the pattern
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithName sets the column name used in logs.
func WithName(name string) Option {
	return func(c *Classifier) { c.name = name }
}

// WithDescriptor attaches the semantic type descriptor.
func WithDescriptor(d TypeDescriptor) Option {
	return func(c *Classifier) { c.descriptor = d }
}

// WithLogger sets the logger receiving parse summaries and verbose diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Classifier) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a Classifier over a copy of cells.
// Returns an error if the column is empty or the schema is malformed.
func New(cells []any, schema Schema, opts ...Option) (*Classifier, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: a classifier needs at least one cell", ErrEmptyColumn)
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	c := &Classifier{
		original: append([]any(nil), cells...),
		schema:   append(Schema(nil), schema...),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.descriptor.Name == "" {
		c.descriptor.Name = c.schema.Primary().Name
	}
	if c.name == "" {
		c.name = c.descriptor.Name
	}
	return c, nil
}

// Name returns the column name.
func (c *Classifier) Name() string { return c.name }

// Descriptor returns the semantic type descriptor.
func (c *Classifier) Descriptor() TypeDescriptor { return c.descriptor }

// Schema returns a copy of the schema.
func (c *Classifier) Schema() Schema { return append(Schema(nil), c.schema...) }

// AddPreParseFn appends a transform applied to every cell before matching.
// Transforms run in registration order.
func (c *Classifier) AddPreParseFn(fn func(string) string) error {
	if fn == nil {
		return fmt.Errorf("%w: transform must not be nil", ErrInvalidTransform)
	}
	c.preParse = append(c.preParse, fn)
	return nil
}

// AddMatch appends a cascade entry. The pattern may capture schema fields with
// named groups; the template renders the canonical primary string from them.
func (c *Classifier) AddMatch(name, pattern, template string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name must be a non-empty string", ErrInvalidMatch)
	case pattern == "":
		return fmt.Errorf("%w: pattern for %q must be a non-empty string", ErrInvalidMatch, name)
	case template == "":
		return fmt.Errorf("%w: template for %q must be a non-empty string", ErrInvalidMatch, name)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("%w: match %q: %v", ErrInvalidPattern, name, err)
	}

	tmpl, err := parseTemplate(template, c.schema)
	if err != nil {
		return fmt.Errorf("match %q: %w", name, err)
	}

	groups := make(map[string]int, len(c.schema))
	for _, f := range c.schema {
		if idx := re.SubexpIndex(f.Name); idx > 0 {
			groups[f.Name] = idx
		}
	}

	c.matches = append(c.matches, &match{
		info:   MatchInfo{Name: name, Pattern: pattern, Template: template},
		re:     re,
		tmpl:   tmpl,
		groups: groups,
	})
	return nil
}

// Matches returns the registered cascade entries in trial order.
func (c *Classifier) Matches() []MatchInfo {
	out := make([]MatchInfo, len(c.matches))
	for i, m := range c.matches {
		out[i] = m.info
	}
	return out
}

// apply runs a single cascade entry against s. It also reports whether the
// pattern matched, which ends the cascade even when coercion fails.
func (m *match) apply(s string, schema Schema) (Value[Row], bool) {
	loc := m.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return Message[Row](fmt.Sprintf("value can't be parsed: %s", s)), false
	}

	group := func(name string) (string, bool) {
		idx, ok := m.groups[name]
		if !ok || loc[2*idx] < 0 {
			return "", false
		}
		return s[loc[2*idx]:loc[2*idx+1]], true
	}

	strs := make(map[string]string, len(schema))
	aux := make(map[string]any, len(schema)-1)

	// Auxiliary failures only blank that sub-field
	for _, f := range schema.Auxiliary() {
		raw, ok := group(f.Name)
		if !ok {
			strs[f.Name] = ""
			continue
		}
		normalized, v, err := f.extract(raw)
		if err != nil {
			strs[f.Name] = ""
			continue
		}
		strs[f.Name] = normalized
		aux[f.Name] = v
	}

	primary := schema.Primary()
	if raw, ok := group(primary.Name); ok {
		strs[primary.Name] = primary.normalize(raw)
	}

	rendered := m.tmpl.render(strs)
	_, v, err := primary.extract(rendered)
	if err != nil {
		return Message[Row](fmt.Sprintf("value can't be coerced: %s (%v)", rendered, err)), true
	}
	return Of(Row{Primary: v, Auxiliary: aux}), true
}

// ParseValue runs the cascade over one already transformed cell.
// The first entry whose pattern matches decides the result: its value when the
// primary coerces, otherwise a failure. Earlier entries' messages are dropped
// on success and kept on failure, each prefixed with the entry name.
func (c *Classifier) ParseValue(s string) Value[Row] {
	var msgs []string
	for _, m := range c.matches {
		res, matched := m.apply(s, c.schema)
		if res.Ok() {
			return res
		}
		msgs = append(msgs, res.PrefixMessages(fmt.Sprintf("match %s :: ", m.info.Name)).messages...)
		if matched {
			break
		}
	}
	return Fail[Row](msgs...)
}

// Parse classifies every cell and materializes the parsed table.
// It returns the table and the diagnostics of the whole column. Re-running
// Parse recomputes everything from the original cells.
func (c *Classifier) Parse(opts ParseOptions) (*Table, []string) {
	runID := uuid.NewString()
	logger := c.logger.With("run_id", runID, "column", c.name, "type", c.descriptor.Name)

	n := len(c.original)
	primaryField := c.schema.Primary()
	primary := newColumn(primaryField.Name, primaryField.Type, n)
	cols := []*Column{c.originalColumn(), primary}
	aux := make(map[string]*Column, len(c.schema)-1)
	for _, f := range c.schema.Auxiliary() {
		col := newColumn(f.Name, f.Type, n)
		aux[f.Name] = col
		cols = append(cols, col)
	}
	table := newTable(runID, cols...)

	list := NewValueList[Row](opts.Policy)
	seen := make(map[string]bool)
	nrMessages := 0 // every row message produced, including truncated ones
	emitted := 0
	processed := 0
	written := 0

	logger.Debug("parse started", "rows", n, "matches", len(c.matches))

	for i, cell := range c.original {
		if opts.MaxValues >= 0 && i > opts.MaxValues {
			list.AddMessage("reached maximum number of values, parsing aborted")
			break
		}
		if opts.MaxMessages >= 0 && nrMessages > opts.MaxMessages {
			list.AddMessage("reached maximum number of messages, parsing aborted")
			break
		}
		processed++

		s := cellString(cell)
		for _, fn := range c.preParse {
			s = fn(s)
		}

		res := c.ParseValue(s)
		if row, ok := res.Get(); ok {
			if err := storeRow(i, row, primary, aux); err != nil {
				res = Fail[Row](fmt.Sprintf("value can't be stored: %v", err))
			} else {
				written++
			}
		}

		// Repeats are judged before the index prefix so they collapse across rows
		if opts.Policy == Deduplicate {
			res = res.dropSeen(seen)
		}
		nrMessages += len(res.messages)
		if opts.MaxMessages >= 0 {
			res = res.truncate(opts.MaxMessages - emitted)
		}
		emitted += len(res.messages)
		list.Add(res.PrefixMessages(fmt.Sprintf("index %d :: ", i)))
	}

	list.AddMessage(c.matchIndex())

	c.table = table
	msgs := list.Messages()

	logger.Debug("parse finished", "processed", processed, "parsed", written, "messages", len(msgs))
	if opts.Verbose {
		logger.Info("parse diagnostics", "diagnostics", strings.Join(msgs, "\n"))
	}

	return table, msgs
}

// storeRow writes a parsed row. Nothing is written unless every value fits its column.
func storeRow(i int, row Row, primary *Column, aux map[string]*Column) error {
	if err := primary.check(row.Primary); err != nil {
		return err
	}
	for name, v := range row.Auxiliary {
		col, ok := aux[name]
		if !ok {
			return fmt.Errorf("field %q is not defined in the schema", name)
		}
		if err := col.check(v); err != nil {
			return err
		}
	}

	primary.set(i, row.Primary)
	for name, v := range row.Auxiliary {
		aux[name].set(i, v)
	}
	return nil
}

// matchIndex lists every registered entry, for operator visibility.
func (c *Classifier) matchIndex() string {
	var b strings.Builder
	b.WriteString("using matches:")
	for i, m := range c.matches {
		fmt.Fprintf(&b, "\nmatch %2d :: %s :: %s", i+1, m.info.Name, m.info.Pattern)
	}
	return b.String()
}

// originalColumn returns the raw cells as a text column.
func (c *Classifier) originalColumn() *Column {
	col := newColumn(ColumnOriginal, FieldText, len(c.original))
	for i, cell := range c.original {
		if !isNullCell(cell) {
			col.set(i, cellString(cell))
		}
	}
	return col
}

// IsParsed reports whether Parse has run.
func (c *Classifier) IsParsed() bool {
	return c.table != nil
}

// Series returns the primary column after parsing, otherwise the original column.
func (c *Classifier) Series() *Column {
	if c.table == nil {
		return c.originalColumn()
	}
	col, _ := c.table.Column(c.schema.Primary().Name)
	return col
}

// DF returns the parsed table, or a table holding only the original column
// when Parse has not run yet.
func (c *Classifier) DF() *Table {
	if c.table == nil {
		return newTable("", c.originalColumn())
	}
	return c.table
}
