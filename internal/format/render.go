package format

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/idataframe/internal/core"
)

// messageWidth wraps long diagnostics in terminal tables.
const messageWidth = 100

// Table renders a parsed table. maxRows limits the rendered rows; -1 renders
// all of them. Null cells render empty.
func Table(t *core.Table, m Mode, maxRows int) string {
	tb := NewTable(m)
	tb.Header(t.Names()...)

	rows := t.Rows()
	shown := rows
	if maxRows >= 0 && maxRows < rows {
		shown = maxRows
	}

	var cfgs []ColumnConfig
	for i, col := range t.Columns() {
		if col.Type() != core.FieldText {
			cfgs = append(cfgs, ColumnConfig{Number: i + 1, Align: AlignRight})
		}
	}
	tb.Columns(cfgs...)

	for i := 0; i < shown; i++ {
		tb.Row(stringsToAny(t.Row(i))...)
	}
	if shown < rows && m != CSV {
		tb.Footer(fmt.Sprintf("%d more rows", rows-shown))
	}

	return tb.String()
}

// Summary renders one line per parsed column: rows, parsed values and diagnostics.
func Summary(reports []core.ColumnReport, m Mode) string {
	tb := NewTable(m)
	tb.Header("Column", "Type", "Rows", "Parsed", "Messages")
	tb.Columns(
		ColumnConfig{Number: 3, Align: AlignRight},
		ColumnConfig{Number: 4, Align: AlignRight},
		ColumnConfig{Number: 5, Align: AlignRight},
	)

	for _, r := range reports {
		tb.Row(r.Column, r.Type, r.Table.Rows(), ParsedCount(r.Table), len(r.Messages))
	}
	return tb.String()
}

// Diagnostics renders every message of every report, one row per message.
func Diagnostics(reports []core.ColumnReport, m Mode) string {
	tb := NewTable(m)
	tb.Header("Column", "Message")
	if m == ASCII {
		tb.Columns(ColumnConfig{Number: 2, MaxWidth: messageWidth})
	}

	for _, r := range reports {
		for _, msg := range r.Messages {
			if m == Markdown {
				msg = strings.ReplaceAll(msg, "\n", "<br>")
			}
			tb.Row(r.Column, msg)
		}
	}
	return tb.String()
}

// Types renders the registered semantic types.
func Types(defs []core.TypeDefinition, m Mode) string {
	tb := NewTable(m)
	tb.Header("Type", "Scale", "Continuity", "Description")
	for _, def := range defs {
		d := def.Descriptor
		tb.Row(d.Name, d.Scale.String(), d.Continuity.String(), d.Description)
	}
	tb.Footer("", "", "", fmt.Sprintf("%d types", len(defs)))
	return tb.String()
}

// ParsedCount counts the non-null values of the primary column, which
// directly follows the original column.
func ParsedCount(t *core.Table) int {
	cols := t.Columns()
	if len(cols) < 2 {
		return 0
	}
	n := 0
	for i := 0; i < cols[1].Len(); i++ {
		if cols[1].Valid(i) {
			n++
		}
	}
	return n
}

func stringsToAny(s []string) []any {
	out := make([]any, len(s))
	for i, v := range s {
		out[i] = v
	}
	return out
}
