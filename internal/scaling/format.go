package scaling

import (
	"math"
	"strconv"
	"strings"
)

const exactEpsilon = 1e-9

// FormatAmount renders a quantity for display, preferring fraction glyphs
// ("1 ½") over decimals. Values that are exact at two decimal places keep
// their decimal form unless the glyph is exact too, so 2.33 stays "2.33"
// while 7/3 becomes "2 ⅓". Negative values get a leading sign on the
// whole amount: -1.5 is "-1 ½".
func FormatAmount(value float64) string {
	if value < 0 {
		return "-" + FormatAmount(-value)
	}
	whole := math.Floor(value)
	remainder := value - whole

	if glyph, ok := NearestGlyph(remainder, SnapTolerance); ok && shouldSnap(value, remainder, glyph) {
		if whole == 0 {
			return glyph
		}
		return strconv.FormatFloat(whole, 'f', -1, 64) + " " + glyph
	}

	if value == whole {
		return strconv.FormatFloat(value, 'f', -1, 64)
	}
	s := strconv.FormatFloat(value, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func shouldSnap(value, remainder float64, glyph string) bool {
	v, _ := GlyphToDecimal(glyph)
	if math.Abs(v-remainder) < exactEpsilon {
		return true
	}
	hundredths := value * 100
	return math.Abs(hundredths-math.Round(hundredths)) > exactEpsilon
}
