package scaling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.5, "½"},
		{1.5, "1 ½"},
		{2, "2"},
		{2.33, "2.33"},
		{7.0 / 3, "2 ⅓"},
		{0.25, "¼"},
		{3.75, "3 ¾"},
		{0.125, "⅛"},
		{1.2, "1 ⅕"},
		{2.45, "2.45"},
		{1.1, "1.1"},
		{2.999, "3"},
		{10.004, "10"},
		{0, "0"},
		{12, "12"},
		{-0.5, "-½"},
		{-1.5, "-1 ½"},
		{-2.33, "-2.33"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.value))
		})
	}
}

func TestFormatNegativeRoundTrip(t *testing.T) {
	for _, v := range []float64{-0.5, -1.5, -2.25, -3, -2.33} {
		got, ok := ParseAmount(FormatAmount(v))
		assert.True(t, ok, FormatAmount(v))
		assert.InDelta(t, v, got, 1e-9, FormatAmount(v))
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for _, f := range Fractions() {
		for _, whole := range []float64{0, 1, 3} {
			v := whole + f.Value
			got, ok := ParseAmount(FormatAmount(v))
			assert.True(t, ok, f.Glyph)
			assert.InDelta(t, v, got, SnapTolerance, "%s -> %s", f.Glyph, FormatAmount(v))
		}
	}

	for _, v := range []float64{2.33, 1.1, 4, 0.45, 17.06} {
		got, ok := ParseAmount(FormatAmount(v))
		assert.True(t, ok)
		assert.InDelta(t, v, got, 1e-9)
	}
}
