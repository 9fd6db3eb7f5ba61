package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/JonMunkholm/idataframe/internal/core"
	"github.com/JonMunkholm/idataframe/internal/core/itypes"
)

// Transforms are the pre-parse functions a catalog can name.
var Transforms = map[string]func(string) string{
	"trim":            strings.TrimSpace,
	"lower":           strings.ToLower,
	"upper":           strings.ToUpper,
	"collapse-spaces": itypes.CollapseSpaces,
	"strip-na":        itypes.StripNotAvailable,
	"clean-cell":      core.CleanCell,
}

// Normalizers are the field normalizers a catalog can name.
var Normalizers = map[string]func(string) string{
	"none":      func(s string) string { return s },
	"trim":      strings.TrimSpace,
	"lower":     strings.ToLower,
	"upper":     strings.ToUpper,
	"title":     func(s string) string { return cases.Title(language.Und).String(s) },
	"street":    itypes.NormalizeStreet,
	"direction": itypes.NormalizeDirection,
	"secondary": itypes.NormalizeSecondary,
}

// Fragments are the built-in sub-patterns a catalog pattern can embed as ${name}.
var Fragments = map[string]string{
	"amount":             itypes.ReAmount,
	"balance":            itypes.ReBalance,
	"count":              itypes.ReCount,
	"rank":               itypes.ReRank,
	"currency-amount":    itypes.ReCurrencyAmount,
	"accounting-balance": itypes.ReAccountingBalance,
	"username":           itypes.ReUsername,
	"domain":             itypes.ReDomain,
	"address-number":     itypes.ReAddressNumber,
	"street":             itypes.ReStreet,
	"direction":          itypes.ReDirection,
	"text":               itypes.ReText,
}

var fragmentRef = regexp.MustCompile(`\$\{([a-z\-]+)\}`)

// expandFragments replaces ${name} references. Fragments are wrapped in a
// non-capturing group so alternations stay local.
func expandFragments(pattern string) (string, error) {
	var missing []string
	out := fragmentRef.ReplaceAllStringFunc(pattern, func(ref string) string {
		name := fragmentRef.FindStringSubmatch(ref)[1]
		frag, ok := Fragments[name]
		if !ok {
			missing = append(missing, name)
			return ref
		}
		return "(?:" + frag + ")"
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w: unknown fragment ${%s}", core.ErrInvalidPattern, strings.Join(missing, "}, ${"))
	}
	return out, nil
}
