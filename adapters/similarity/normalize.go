package similarity

import (
	"fmt"
	"math"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Normalize turns a raw cell value into a comparable string.
// Missing values (nil, NaN) become the empty string; everything else is lowercased.
func Normalize(v interface{}) string {
	var s string
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		s = val
	case float64:
		if math.IsNaN(val) {
			return ""
		}
		s = fmt.Sprint(val)
	case float32:
		if math.IsNaN(float64(val)) {
			return ""
		}
		s = fmt.Sprint(val)
	case fmt.Stringer:
		s = val.String()
	default:
		s = fmt.Sprint(val)
	}
	// cases.Caser keeps state, so build one per call
	return cases.Lower(language.Und).String(s)
}
