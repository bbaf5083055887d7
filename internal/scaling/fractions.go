package scaling

import "math"

// SnapTolerance is the maximum distance at which a remainder is displayed as a known fraction.
const SnapTolerance = 0.01

// Fraction pairs a vulgar fraction glyph with its decimal value
type Fraction struct {
	Value float64
	Glyph string
}

// fractionTable is sorted by ascending value. Never modified.
var fractionTable = [...]Fraction{
	{Value: 1.0 / 8, Glyph: "⅛"},
	{Value: 1.0 / 5, Glyph: "⅕"},
	{Value: 1.0 / 4, Glyph: "¼"},
	{Value: 1.0 / 3, Glyph: "⅓"},
	{Value: 3.0 / 8, Glyph: "⅜"},
	{Value: 2.0 / 5, Glyph: "⅖"},
	{Value: 1.0 / 2, Glyph: "½"},
	{Value: 3.0 / 5, Glyph: "⅗"},
	{Value: 5.0 / 8, Glyph: "⅝"},
	{Value: 2.0 / 3, Glyph: "⅔"},
	{Value: 3.0 / 4, Glyph: "¾"},
	{Value: 4.0 / 5, Glyph: "⅘"},
	{Value: 7.0 / 8, Glyph: "⅞"},
}

// Fractions returns a copy of the fraction table in ascending order
func Fractions() []Fraction {
	out := make([]Fraction, len(fractionTable))
	copy(out, fractionTable[:])
	return out
}

// GlyphToDecimal returns the decimal value of a fraction glyph
func GlyphToDecimal(glyph string) (float64, bool) {
	for _, f := range fractionTable {
		if f.Glyph == glyph {
			return f.Value, true
		}
	}
	return 0, false
}

// glyphRune reports the value of r when it is a fraction glyph.
func glyphRune(r rune) (float64, bool) {
	return GlyphToDecimal(string(r))
}

// NearestGlyph returns the glyph closest to fraction, provided it lies within tolerance.
// Ties go to the smaller value.
func NearestGlyph(fraction, tolerance float64) (string, bool) {
	return nearest(fractionTable[:], fraction, tolerance)
}

func nearest(table []Fraction, fraction, tolerance float64) (string, bool) {
	best := -1
	bestDiff := math.Inf(1)
	for i, f := range table {
		// strict comparison keeps the earlier entry on ties
		if diff := math.Abs(f.Value - fraction); diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	if best < 0 || bestDiff > tolerance {
		return "", false
	}
	return table[best].Glyph, true
}
