// Package core provides the column classification engine.
// This package has no I/O dependencies and can be used by any frontend.
package core

import (
	"fmt"
	"strings"
)

// FieldType represents the storage type of a parsed sub-column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldInteger
	FieldFloat
)

// CoerceFunc converts a captured string into the field's typed representation.
// It returns int64 for FieldInteger, float64 for FieldFloat and string for FieldText.
type CoerceFunc func(string) (any, error)

// FieldSpec describes one typed sub-column of a classification.
type FieldSpec struct {
	Name       string              // Column name in the parsed table
	Type       FieldType           // Storage type
	Coerce     CoerceFunc          // Captured text -> typed value
	Normalizer func(string) string // Optional transformation applied before Coerce
}

// normalize applies the field normalizer, if any.
func (f FieldSpec) normalize(s string) string {
	if f.Normalizer == nil {
		return s
	}
	return f.Normalizer(s)
}

// extract runs the normalizer and then the coercion.
func (f FieldSpec) extract(s string) (string, any, error) {
	s = f.normalize(s)
	v, err := f.Coerce(s)
	if err != nil {
		return s, nil, err
	}
	return s, v, nil
}

// Schema is an ordered list of fields. The first entry is the primary field,
// every following entry is an auxiliary field materialized as a sibling column.
type Schema []FieldSpec

// Primary returns the primary field.
func (s Schema) Primary() FieldSpec {
	return s[0]
}

// Auxiliary returns the auxiliary fields in declaration order.
func (s Schema) Auxiliary() []FieldSpec {
	return s[1:]
}

// Names returns every field name, primary first.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Has reports whether the schema declares a field with the given name.
func (s Schema) Has(name string) bool {
	for _, f := range s {
		if f.Name == name {
			return true
		}
	}
	return false
}

// Validate checks that the schema is well formed.
// Returns an error wrapping ErrInvalidSchema listing every problem found.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: primary field missing", ErrInvalidSchema)
	}

	var errs []string
	seen := make(map[string]bool, len(s))

	for i, f := range s {
		name := strings.TrimSpace(f.Name)
		switch {
		case name == "":
			errs = append(errs, fmt.Sprintf("field %d has no name", i))
		case name == ColumnOriginal:
			errs = append(errs, fmt.Sprintf("field name %q is reserved", name))
		case seen[name]:
			errs = append(errs, fmt.Sprintf("duplicate field name %q", name))
		}
		seen[name] = true

		if f.Coerce == nil {
			errs = append(errs, fmt.Sprintf("field %q has no coercion", f.Name))
		}
		if f.Type < FieldText || f.Type > FieldFloat {
			errs = append(errs, fmt.Sprintf("field %q has unknown type %d", f.Name, f.Type))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSchema, strings.Join(errs, "; "))
	}
	return nil
}

// Row is the successful outcome of parsing one cell: the primary typed value
// and the typed values of every auxiliary field that could be extracted.
type Row struct {
	Primary   any
	Auxiliary map[string]any
}

// NoLimit disables a ParseOptions cap.
const NoLimit = -1

// DefaultMaxMessages is the default cap on diagnostics emitted by one parse.
const DefaultMaxMessages = 20

// ParseOptions controls a column parse.
type ParseOptions struct {
	// MaxValues stops parsing once the row index exceeds it (NoLimit disables).
	MaxValues int

	// MaxMessages stops parsing once more than this many row diagnostics were
	// produced; at most this many are reported (NoLimit disables).
	MaxMessages int

	// Verbose logs the joined diagnostics when the parse finishes.
	Verbose bool

	// Policy decides whether a row diagnostic already reported for an
	// earlier row is reported again.
	Policy MessagePolicy
}

// DefaultParseOptions returns the options used when nothing else is configured.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{
		MaxValues:   NoLimit,
		MaxMessages: DefaultMaxMessages,
		Verbose:     true,
		Policy:      KeepDuplicates,
	}
}

// MatchInfo describes a registered cascade entry.
type MatchInfo struct {
	Name     string
	Pattern  string
	Template string
}

// fieldTypeName returns a human-readable name for a field type.
func fieldTypeName(ft FieldType) string {
	switch ft {
	case FieldText:
		return "text"
	case FieldInteger:
		return "integer"
	case FieldFloat:
		return "float"
	default:
		return "value"
	}
}

// String implements fmt.Stringer.
func (ft FieldType) String() string {
	return fieldTypeName(ft)
}
