// Package matcher ckecks input line for containing the pattern - exact or case-insensitive, returns bool
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Predicate func(line string) bool

// NewPredicate returns a substring test for pattern. An empty pattern matches
// every line. The returned predicate is not safe for concurrent use when
// caseSensitive is false.
func NewPredicate(pattern string, caseSensitive bool) Predicate {
	if caseSensitive {
		return func(line string) bool {
			return strings.Contains(line, pattern)
		}
	}

	// Caser.String сбрасывает внутреннее состояние на каждом вызове
	lower := cases.Lower(language.Und)
	loweredPattern := lower.String(pattern)

	return func(line string) bool { //-i
		return strings.Contains(lower.String(line), loweredPattern)
	}
}
