package scaling

import (
	"strings"
	"unicode"
)

// Extraction is a quantity split off the front of an ingredient name
type Extraction struct {
	Quantity  string
	Remainder string
}

// Extract looks for a quantity at the start of name, made of digits,
// whitespace, '/', '.' and fraction glyphs.
//
// A name that merely starts with a number, such as "100% whole wheat flour",
// is extracted as well. Nothing here can tell those apart.
func Extract(name string) (Extraction, bool) {
	end := len(name)
	for i, r := range name {
		if !quantityRune(r) {
			end = i
			break
		}
	}
	if end == 0 {
		return Extraction{}, false
	}
	prefix := name[:end]
	if _, ok := ParseAmount(prefix); !ok {
		return Extraction{}, false
	}
	return Extraction{
		Quantity:  prefix,
		Remainder: strings.TrimSpace(name[end:]),
	}, true
}

func quantityRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r == '/', r == '.', unicode.IsSpace(r):
		return true
	}
	_, ok := glyphRune(r)
	return ok
}
