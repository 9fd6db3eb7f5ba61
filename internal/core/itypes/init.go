// Package itypes registers the built-in semantic types with the core registry.
// Import this package to ensure all types are registered.
package itypes

import (
	"fmt"

	"github.com/JonMunkholm/idataframe/internal/core"
)

// Each type file uses init() to register its types.

// matchDef is one cascade entry of a built-in type.
type matchDef struct {
	name     string
	pattern  string
	template string
}

// build creates a classifier for a built-in type and registers its cascade.
// The descriptor option comes first so callers can still override the name.
func build(cells []any, desc core.TypeDescriptor, schema core.Schema, matches []matchDef, preParse []func(string) string, opts []core.Option) (*core.Classifier, error) {
	all := append([]core.Option{core.WithDescriptor(desc)}, opts...)
	c, err := core.New(cells, schema, all...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", desc.Name, err)
	}

	for _, fn := range preParse {
		if err := c.AddPreParseFn(fn); err != nil {
			return nil, fmt.Errorf("%s: %w", desc.Name, err)
		}
	}

	for _, m := range matches {
		if err := c.AddMatch(m.name, m.pattern, m.template); err != nil {
			return nil, fmt.Errorf("%s: %w", desc.Name, err)
		}
	}

	return c, nil
}

// anchored wraps a named group in a full-string pattern.
func anchored(group, re string) string {
	return fmt.Sprintf(`^(?P<%s>%s)$`, group, re)
}
