// Package match implements the lexical containment test used to decide
// whether two free-text ingredient names refer to the same thing.
package match

import (
	"strings"
)

// Matcher decides whether two item names refer to the same ingredient.
// The engine packages take a Matcher so the containment heuristic can be
// swapped for a smarter implementation without touching the scorers.
type Matcher interface {
	Matches(a, b string) bool
}

// Lexical is the default Matcher: case-insensitive substring containment
// with a first-token fallback, so "tomato" matches "diced tomatoes" and a
// fully qualified name still matches a partial catalog entry.
type Lexical struct{}

// NewLexical creates the default lexical matcher
func NewLexical() Lexical {
	return Lexical{}
}

// Matches reports whether a and b name the same ingredient.
// True if a contains b as a substring, or b contains the first
// whitespace-delimited token of a. Empty strings never match.
func (Lexical) Matches(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}

	if strings.Contains(a, b) {
		return true
	}

	firstToken := strings.Fields(a)[0]
	return strings.Contains(b, firstToken)
}
