package core

// error_messages.go maps technical errors to user-facing messages with codes
// for support reference.
//
// # Error Codes Reference
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Invalid configuration: A configuration value is out of range
//	         Action: Check the IDF_* and LOG_* environment variables
//	         Patterns: "config validation"
//
//	CFG002 - Unparsable setting: A configuration value has the wrong type
//	         Action: Use a number for limits and true/false for switches
//	         Patterns: "invalid value for"
//
// # Schema Errors (SCH001-SCH099)
//
//	SCH001 - Invalid schema: The field list of a type is malformed
//	         Action: Give every field a unique name, a type and a coercion
//	         Patterns: "invalid schema"
//
// # Match Errors (MAT001-MAT099)
//
//	MAT001 - Invalid match: A match is missing its name, pattern or template
//	MAT002 - Invalid pattern: A match pattern is not a valid regular expression
//	MAT003 - Invalid template: A template refers to an unknown field
//	MAT004 - Invalid transform: A pre-parse transform is missing
//
// # Column Errors (COL001-COL099)
//
//	COL001 - Empty column: The column has no cells
//	COL002 - Column not found: The column does not exist in the source
//	COL003 - Duplicate column: The column was registered twice
//	COL004 - Invalid column mapping: A mapping is not written as Column=type
//
// # Type Errors (TYP001-TYP099)
//
//	TYP001 - Unknown type: No semantic type with this name is registered
//
// # Source Errors (SRC001-SRC099)
//
//	SRC001 - Empty file, SRC002 - Invalid CSV, SRC003 - Invalid JSON,
//	SRC004 - File not found, SRC005 - Unsupported source format
//
// # Catalog Errors (CAT001-CAT099)
//
//	CAT001 - Invalid catalog, CAT002 - Unsupported catalog format
//
// # Default Error (ERR000)
//
// Patterns are matched case-insensitively using strings.Contains and the
// first matching pattern wins. Catalog errors wrap the engine errors they were
// caused by, so the engine patterns come first.

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
// The first matching pattern wins, so more specific patterns come first.
var errorPatterns = []errorPattern{
	// Configuration
	{
		pattern: "config validation",
		msg: UserMessage{
			Message: "Invalid configuration",
			Action:  "Check the IDF_* and LOG_* environment variables",
			Code:    "CFG001",
		},
	},
	{
		pattern: "invalid value for",
		msg: UserMessage{
			Message: "A configuration value has the wrong type",
			Action:  "Use a number for limits and true/false for switches",
			Code:    "CFG002",
		},
	},

	// Schema and matches
	{
		pattern: "invalid schema",
		msg: UserMessage{
			Message: "The field list of a type is malformed",
			Action:  "Give every field a unique name, a type and a coercion",
			Code:    "SCH001",
		},
	},
	{
		pattern: "invalid match",
		msg: UserMessage{
			Message: "A match is missing its name, pattern or template",
			Action:  "Fill in the name, pattern and template of every match",
			Code:    "MAT001",
		},
	},
	{
		pattern: "invalid pattern",
		msg: UserMessage{
			Message: "A match pattern is not a valid regular expression",
			Action:  "Fix the pattern syntax; named groups use (?P<field>...)",
			Code:    "MAT002",
		},
	},
	{
		pattern: "invalid template",
		msg: UserMessage{
			Message: "A match template refers to an unknown field",
			Action:  "Use only {field} placeholders naming fields of the type",
			Code:    "MAT003",
		},
	},
	{
		pattern: "invalid pre-parse transform",
		msg: UserMessage{
			Message: "A pre-parse transform is missing",
			Action:  "Use one of the known transforms",
			Code:    "MAT004",
		},
	},

	// Columns
	{
		pattern: "empty column",
		msg: UserMessage{
			Message: "The column has no cells",
			Action:  "Check that the file has data rows",
			Code:    "COL001",
		},
	},
	{
		pattern: "column not found",
		msg: UserMessage{
			Message: "Column not found in the source",
			Action:  "Verify the column name matches the header exactly",
			Code:    "COL002",
		},
	},
	{
		pattern: "column already registered",
		msg: UserMessage{
			Message: "The column was registered twice",
			Action:  "Map every column to a single type",
			Code:    "COL003",
		},
	},
	{
		pattern: "invalid column mapping",
		msg: UserMessage{
			Message: "A column mapping is malformed",
			Action:  "Write mappings as Column=type",
			Code:    "COL004",
		},
	},

	// Types
	{
		pattern: "unknown type",
		msg: UserMessage{
			Message: "Unknown semantic type",
			Action:  "Run 'idf types' to list the available types",
			Code:    "TYP001",
		},
	},

	// Sources
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The file is empty",
			Action:  "Provide a file with a header and data rows",
			Code:    "SRC001",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "File is not a valid CSV",
			Action:  "Ensure file is comma-separated with consistent columns",
			Code:    "SRC002",
		},
	},
	{
		pattern: "invalid json",
		msg: UserMessage{
			Message: "File is not valid JSON",
			Action:  "Provide a JSON array of objects",
			Code:    "SRC003",
		},
	},
	{
		pattern: "no such file",
		msg: UserMessage{
			Message: "File not found",
			Action:  "Check the file path",
			Code:    "SRC004",
		},
	},
	{
		pattern: "unsupported source format",
		msg: UserMessage{
			Message: "Unsupported file format",
			Action:  "Use a .csv or .json file",
			Code:    "SRC005",
		},
	},

	// Catalog
	{
		pattern: "unsupported catalog format",
		msg: UserMessage{
			Message: "Unsupported catalog format",
			Action:  "Use a .yaml, .yml or .toml catalog file",
			Code:    "CAT002",
		},
	},
	{
		pattern: "invalid catalog",
		msg: UserMessage{
			Message: "The type catalog is invalid",
			Action:  "Check the catalog file against the documented layout",
			Code:    "CAT001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Run again with LOG_LEVEL=debug and check the logs",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// It returns the first matching pattern, or the ERR000 fallback.
//
// Example:
//
//	err := fmt.Errorf("%w: email", ErrUnknownType)
//	msg := MapError(err)
//	// msg.Code == "TYP001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether an error matches a known pattern rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-friendly message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
