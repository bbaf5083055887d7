package scaling

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"unicode"
)

var errZeroDenominator = errors.New("zero denominator")

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenGlyph
)

type token struct {
	kind  tokenKind
	text  string
	value float64
}

// ParseAmount converts free-form quantity text into a number.
//
// Glyphs and a/b fractions are resolved first, then every whitespace
// delimited token with a numeric reading is summed, which is what makes
// "1 1/2" come out as 1.5. A sign in front applies to the whole amount, so
// "-1 ½" is -1.5. The second return value is false when nothing numeric was
// found, when a fraction has a zero denominator, or when the sum overflows.
//
// Callers treat a parsed zero the same as an unparseable amount and skip
// scaling for both; that is intentional.
func ParseAmount(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	sign := 1.0
	if strings.HasPrefix(text, "-") {
		sign = -1
		text = text[1:]
	} else {
		text = strings.TrimPrefix(text, "+")
	}
	if text == "" {
		return 0, false
	}
	v, ok := reduce(lex(text))
	if !ok {
		return 0, false
	}
	return sign * v, true
}

// lex splits text on whitespace, emitting every fraction glyph as its own token.
func lex(text string) []token {
	var tokens []token
	start := -1
	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, token{kind: tokenWord, text: text[start:end]})
			start = -1
		}
	}
	for i, r := range text {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if v, ok := glyphRune(r); ok {
			flush(i)
			tokens = append(tokens, token{kind: tokenGlyph, text: string(r), value: v})
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(text))
	return tokens
}

// reduce sums the numeric tokens.
func reduce(tokens []token) (float64, bool) {
	var sum float64
	found := false
	for _, t := range tokens {
		var v float64
		ok := true
		switch t.kind {
		case tokenGlyph:
			v = t.value
		default:
			var err error
			v, ok, err = wordValue(t.text)
			if err != nil {
				return 0, false
			}
		}
		if ok {
			sum += v
			found = true
		}
	}
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		return 0, false
	}
	return sum, found
}

// wordValue reads a/b as a fraction and anything else by its leading number, so "2cups" is 2.
// A fraction over zero is an error rather than a word without a value.
func wordValue(word string) (float64, bool, error) {
	if num, den, ok := slashFraction(word); ok {
		if den == 0 {
			return 0, false, errZeroDenominator
		}
		return num / den, true, nil
	}
	n := numericPrefix(word)
	if n == 0 {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(word[:n], 64)
	if err != nil {
		return 0, false, nil
	}
	return v, true, nil
}

// slashFraction matches words of the form [+-]<digits>/<digits>, with
// anything trailing the denominator ignored.
func slashFraction(word string) (float64, float64, bool) {
	start := 0
	if start < len(word) && (word[0] == '+' || word[0] == '-') {
		start = 1
	}
	i := digitRun(word, start)
	if i == start || i >= len(word) || word[i] != '/' {
		return 0, 0, false
	}
	j := digitRun(word, i+1)
	if j == i+1 {
		return 0, 0, false
	}
	num, err := strconv.ParseFloat(word[start:i], 64)
	if err != nil {
		return 0, 0, false
	}
	den, err := strconv.ParseFloat(word[i+1:j], 64)
	if err != nil {
		return 0, 0, false
	}
	if word[0] == '-' {
		num = -num
	}
	return num, den, true
}

// numericPrefix returns the length of the longest prefix shaped like
// [+-]digits[.digits][e[+-]digits].
func numericPrefix(word string) int {
	i := 0
	if i < len(word) && (word[i] == '+' || word[i] == '-') {
		i++
	}
	intEnd := digitRun(word, i)
	digits := intEnd - i
	end := intEnd
	if intEnd < len(word) && word[intEnd] == '.' {
		fracEnd := digitRun(word, intEnd+1)
		if fracEnd > intEnd+1 {
			digits += fracEnd - intEnd - 1
			end = fracEnd
		}
	}
	if digits == 0 {
		return 0
	}
	if end < len(word) && (word[end] == 'e' || word[end] == 'E') {
		i = end + 1
		if i < len(word) && (word[i] == '+' || word[i] == '-') {
			i++
		}
		if expEnd := digitRun(word, i); expEnd > i {
			end = expEnd
		}
	}
	return end
}

func digitRun(s string, from int) int {
	i := from
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
