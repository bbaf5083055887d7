package scaling

import "strings"

// Servings tracks the serving count a reader has asked for against the
// recipe's own count. The zero value is not useful; use NewServings.
type Servings struct {
	original int
	target   int
}

// NewServings starts with the target equal to the recipe's servings, or 1
// when the recipe has none.
func NewServings(original int) *Servings {
	return &Servings{original: original, target: max(original, 1)}
}

// Restore resumes a counter at a previously chosen target.
func Restore(original, target int) *Servings {
	s := NewServings(original)
	if target >= 1 {
		s.target = target
	}
	return s
}

// Increment raises the target by one. There is no upper bound.
func (s *Servings) Increment() int {
	s.target++
	return s.target
}

// Decrement lowers the target by one, never below 1
func (s *Servings) Decrement() int {
	if s.target > 1 {
		s.target--
	}
	return s.target
}

// Reset puts the target back to the recipe's servings, never below 1
func (s *Servings) Reset() int {
	s.target = max(s.original, 1)
	return s.target
}

func (s *Servings) Target() int   { return s.target }
func (s *Servings) Original() int { return s.original }

// Context returns the ScaleContext for the current target.
func (s *Servings) Context() ScaleContext {
	return ScaleContext{BaseServings: s.original, TargetServings: s.target}
}

// ParseServings reads the leading whole number of a free-text servings
// value such as "4 servings" or "6-8". It returns 0 when there is none,
// which makes scaling a no-op.
func ParseServings(text string) int {
	text = strings.TrimSpace(text)
	n := 0
	for i := 0; i < len(text) && text[i] >= '0' && text[i] <= '9'; i++ {
		n = n*10 + int(text[i]-'0')
		if n > 1_000_000 {
			return 0
		}
	}
	return n
}
