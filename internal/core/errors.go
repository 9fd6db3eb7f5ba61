package core

import "errors"

// Configuration errors. They are returned at construction or registration time
// and never deferred to parsing; row-level problems are reported as diagnostics.
var (
	ErrEmptyColumn      = errors.New("empty column")
	ErrInvalidSchema    = errors.New("invalid schema")
	ErrInvalidTransform = errors.New("invalid pre-parse transform")
	ErrInvalidMatch     = errors.New("invalid match")
	ErrInvalidPattern   = errors.New("invalid pattern")
	ErrInvalidTemplate  = errors.New("invalid template")
	ErrUnknownType      = errors.New("unknown type")
	ErrUnknownColumn    = errors.New("column not found")
	ErrDuplicateColumn  = errors.New("column already registered")
)
