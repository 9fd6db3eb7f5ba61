// Package core provides the column classification engine.
//
// The package turns raw, messy column data into semantically typed columns.
// It has no I/O dependencies and can be used by the CLI, other frontends or
// tests without modification.
//
// # Architecture
//
// The package is organized around several key concepts:
//
//   - Fields: a [Schema] is an ordered list of [FieldSpec]. The first field is
//     the primary output column, the others are auxiliary sibling columns.
//   - Values: [Value] carries an optional result plus diagnostic messages
//     through the match cascade.
//   - Classifier: owns the raw column, the schema and the cascade registered
//     with [Classifier.AddMatch]. [Classifier.Parse] materializes a [Table].
//   - Registry: semantic types are registered at init time with [Register]
//     and tagged with a [ScaleKind] and a [Continuity].
//   - Frame: registers named columns against types and parses them all.
//
// # Match Cascade
//
// Entries are tried in registration order and the first one that matches
// wins:
//
//	c, _ := core.New(cells, core.Schema{
//	    core.TextField("email", nil),
//	    core.TextField("username", strings.ToLower),
//	    core.TextField("domain", strings.ToLower),
//	})
//	c.AddMatch("username@domain", `^(?P<username>\S+)@(?P<domain>\S+)$`, "{username}@{domain}")
//	table, diagnostics := c.Parse(core.DefaultParseOptions())
//
// # Diagnostics
//
// Row-level problems never fail a parse. They are returned as messages:
//
//	index 4 :: match username@domain :: value can't be parsed: n/a
//
// Configuration problems are returned as errors at construction or
// registration time. [MapError] maps them to coded user messages:
//
//   - CFG: configuration
//   - SCH, MAT: schemas, matches and templates
//   - COL, TYP: columns and semantic types
//   - SRC, CAT: sources and type catalogs
package core
