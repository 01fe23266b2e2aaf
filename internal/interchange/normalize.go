package interchange

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// NormalizeHeader lowercases a header name and strips everything outside
// [a-z0-9%]. Two headers refer to the same column iff their normalized forms
// are identical. Only used for comparing header names, never for data values.
func NormalizeHeader(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '%' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// currency symbols seen in the wild across supported exports
var currencyReplacer = strings.NewReplacer("₦", "", "$", "", "€", "", "£", "", ",", "")

// ParseNumber converts a raw cell into a float. Empty cells are 0. Cells that
// are already numeric pass through via cast. String cells tolerate currency
// symbols, thousands separators and stray whitespace. Unparsable input yields
// 0 rather than failing the row: numeric fields are best-effort, never fatal.
func ParseNumber(v interface{}) float64 {
	if v == nil {
		return 0
	}
	switch n := v.(type) {
	case string:
		s := strings.TrimSpace(currencyReplacer.Replace(n))
		s = strings.Join(strings.Fields(s), "")
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0
		}
		return f
	}
}

var falsyTokens = map[string]struct{}{
	"false":    {},
	"no":       {},
	"0":        {},
	"inactive": {},
	"disabled": {},
	"n":        {},
	"off":      {},
	"hidden":   {},
}

// ParseBool converts a raw cell into an active flag. Empty cells default to
// true (products are active unless the export says otherwise). Anything not in
// the falsy set is true.
func ParseBool(v interface{}) bool {
	if v == nil {
		return true
	}
	s := strings.ToLower(strings.TrimSpace(cast.ToString(v)))
	if s == "" {
		return true
	}
	_, falsy := falsyTokens[s]
	return !falsy
}
