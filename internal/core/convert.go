package core

// convert.go provides the conversions between raw cells and typed values.
//
// These functions handle the messy reality of user-provided column data:
//   - Cells arriving as strings, numbers, nulls or pgtype values
//   - Currency symbols and thousand separators in numbers
//   - Accounting negatives written as "(123.45)"
//   - Excel formula prefixes (="value") and stray quotes
//
// Coercions return an error for malformed input; callers decide whether that
// is a soft failure (auxiliary field) or a failed cascade entry (primary field).

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/text/unicode/norm"
)

// numericRegex validates that a string is a valid numeric format after cleanup.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// errNotNumeric is returned by the numeric coercions for malformed input.
var errNotNumeric = errors.New("invalid number format")

// cellString converts a raw cell into the trimmed string the cascade sees.
// Null cells (nil, invalid pgtype values, NaN) become the empty string.
func cellString(v any) string {
	var s string
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		s = c
	case []byte:
		s = string(c)
	case pgtype.Text:
		if !c.Valid {
			return ""
		}
		s = c.String
	case pgtype.Int8:
		if !c.Valid {
			return ""
		}
		s = strconv.FormatInt(c.Int64, 10)
	case pgtype.Float8:
		if !c.Valid || math.IsNaN(c.Float64) {
			return ""
		}
		s = strconv.FormatFloat(c.Float64, 'f', -1, 64)
	case int:
		s = strconv.Itoa(c)
	case int32:
		s = strconv.FormatInt(int64(c), 10)
	case int64:
		s = strconv.FormatInt(c, 10)
	case float32:
		if math.IsNaN(float64(c)) {
			return ""
		}
		s = strconv.FormatFloat(float64(c), 'f', -1, 32)
	case float64:
		if math.IsNaN(c) {
			return ""
		}
		s = strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		s = strconv.FormatBool(c)
	case fmt.Stringer:
		s = c.String()
	default:
		s = fmt.Sprint(c)
	}
	return strings.TrimSpace(s)
}

// isNullCell reports whether a raw cell carries no value at all.
func isNullCell(v any) bool {
	switch c := v.(type) {
	case nil:
		return true
	case pgtype.Text:
		return !c.Valid
	case pgtype.Int8:
		return !c.Valid
	case pgtype.Float8:
		return !c.Valid || math.IsNaN(c.Float64)
	case float64:
		return math.IsNaN(c)
	case float32:
		return math.IsNaN(float64(c))
	}
	return false
}

// CleanCell removes common spreadsheet artifacts from a cell value:
// - Applies Unicode NFC normalization
// - Trims whitespace
// - Removes Excel formula prefix (="...")
// - Removes surrounding quotes
//
// It has the pre-parse transform signature and can be passed to AddPreParseFn.
func CleanCell(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))

	if strings.HasPrefix(s, "=\"") && strings.HasSuffix(s, "\"") && len(s) >= 3 {
		s = s[2 : len(s)-1]
	} else if strings.HasPrefix(s, "=") {
		s = s[1:]
	}

	return strings.TrimSpace(strings.Trim(s, `"'`))
}

// ToPgNumeric converts a string to pgtype.Numeric.
// Handles currency symbols, thousands separators, and accounting format (parentheses for negative).
// Returns invalid for empty or malformed input.
func ToPgNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Numeric{Valid: false}
	}

	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
			return pgtype.Numeric{Valid: false}
		}
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// coerceText is the identity coercion.
func coerceText(s string) (any, error) {
	return s, nil
}

// coerceFloat parses a plain float.
func coerceFloat(s string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errNotNumeric, s)
	}
	return f, nil
}

// coerceInt parses a float and rounds half to even, so "8.5" becomes 8.
func coerceInt(s string) (any, error) {
	return coerceIntWith(s, math.RoundToEven)
}

// coerceIntFloor parses a float and rounds down.
func coerceIntFloor(s string) (any, error) {
	return coerceIntWith(s, math.Floor)
}

func coerceIntWith(s string, round func(float64) float64) (any, error) {
	// Integral strings are exact; float64 cannot hold every int64
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	switch {
	case err == nil:
		return n, nil
	case errors.Is(err, strconv.ErrRange):
		return nil, fmt.Errorf("%w: %q out of integer range", errNotNumeric, s)
	}
	v, err := coerceFloat(s)
	if err != nil {
		return nil, err
	}
	f := round(v.(float64))
	// float64(math.MaxInt64) rounds up to 2^63, so the upper bound is exclusive
	if math.IsInf(f, 0) || math.IsNaN(f) || f >= 1<<63 || f < -(1<<63) {
		return nil, fmt.Errorf("%w: %q out of integer range", errNotNumeric, s)
	}
	return int64(f), nil
}

// coerceNumeric parses a plain float first and falls back to the currency
// and accounting cleanup of ToPgNumeric.
func coerceNumeric(s string) (any, error) {
	if v, err := coerceFloat(s); err == nil {
		return v, nil
	}

	n := ToPgNumeric(s)
	if !n.Valid {
		return nil, fmt.Errorf("%w: %q", errNotNumeric, s)
	}
	f, err := n.Float64Value()
	if err != nil || !f.Valid {
		return nil, fmt.Errorf("%w: %q", errNotNumeric, s)
	}
	return f.Float64, nil
}
