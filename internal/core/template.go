package core

import (
	"fmt"
	"strings"
)

// outputTemplate renders the canonical string of a match, e.g. "{username}@{domain}".
// Literal braces are written as "{{" and "}}".
type outputTemplate struct {
	raw      string
	segments []templateSegment
}

type templateSegment struct {
	literal string
	field   string // Non-empty for placeholders
}

// parseTemplate splits a template into literals and placeholders and checks
// that every placeholder names a schema field.
func parseTemplate(raw string, schema Schema) (outputTemplate, error) {
	t := outputTemplate{raw: raw}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.segments = append(t.segments, templateSegment{literal: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == '{' && i+1 < len(raw) && raw[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(raw) && raw[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '{':
			end := strings.IndexByte(raw[i+1:], '}')
			if end < 0 {
				return outputTemplate{}, fmt.Errorf("%w: unclosed placeholder in %q", ErrInvalidTemplate, raw)
			}
			name := strings.TrimSpace(raw[i+1 : i+1+end])
			if name == "" {
				return outputTemplate{}, fmt.Errorf("%w: empty placeholder in %q", ErrInvalidTemplate, raw)
			}
			if !schema.Has(name) {
				return outputTemplate{}, fmt.Errorf("%w: placeholder {%s} is not a field of %v", ErrInvalidTemplate, name, schema.Names())
			}
			flush()
			t.segments = append(t.segments, templateSegment{field: name})
			i += end + 1
		case c == '}':
			return outputTemplate{}, fmt.Errorf("%w: unmatched '}' in %q", ErrInvalidTemplate, raw)
		default:
			lit.WriteByte(c)
		}
	}
	flush()

	return t, nil
}

// render substitutes placeholders; fields missing from values render as "".
func (t outputTemplate) render(values map[string]string) string {
	var b strings.Builder
	for _, seg := range t.segments {
		if seg.field == "" {
			b.WriteString(seg.literal)
			continue
		}
		b.WriteString(values[seg.field])
	}
	return b.String()
}
