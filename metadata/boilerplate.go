package metadata

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// BoilerplateFilter recognises platform filler text that should be treated as if the description were absent.
// Both lists hold canonicalised text (see Canonicalize).
type BoilerplateFilter struct {
	// Exact canonical strings that are always boilerplate.
	Canonical []string
	// Fragments which, if all present, mark the text as boilerplate. An empty list never matches.
	Phrases []string
}

// DefaultBoilerplate matches the stock channel description that the watch page serves in place of a real one.
var DefaultBoilerplate = BoilerplateFilter{
	Canonical: []string{
		"enjoy the videos and music you love upload original content and " +
			"share it all with friends family and the world on youtube",
	},
	Phrases: []string{
		"enjoy the videos and music you love",
		"upload original content",
		"share it all with friends family and the world on youtube",
	},
}

var nonAlnumSpace = regexp.MustCompile(`[^a-z0-9 ]`)

// Canonicalize case-folds s, collapses whitespace runs to a single space, and drops everything that is not a
// lower-case ASCII letter, digit or space.
func Canonicalize(s string) string {
	folded := cases.Fold().String(s)
	// strings.Fields also splits on non-ASCII whitespace such as U+00A0
	folded = strings.Join(strings.Fields(folded), " ")
	return strings.TrimSpace(nonAlnumSpace.ReplaceAllString(folded, ""))
}

// IsBoilerplate reports whether s is filler text.
func (f BoilerplateFilter) IsBoilerplate(s string) bool {
	canonical := Canonicalize(s)
	for _, known := range f.Canonical {
		if canonical == known {
			return true
		}
	}
	if len(f.Phrases) == 0 {
		return false
	}
	for _, phrase := range f.Phrases {
		if !strings.Contains(canonical, phrase) {
			return false
		}
	}
	return true
}

// Accept trims s and returns it if it is non-empty and not boilerplate.
func (f BoilerplateFilter) Accept(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || f.IsBoilerplate(s) {
		return "", false
	}
	return s, true
}
