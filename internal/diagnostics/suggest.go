package diagnostics

import (
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestionDistance bounds how fuzzy a did-you-mean hint may be.
// Distance 2 covers the common typo classes (swap, drop, double-tap)
// without suggesting unrelated names for short identifiers.
const maxSuggestionDistance = 2

// Suggest returns candidates close to name, best match first, for
// did-you-mean hints on unknown-name errors.
func Suggest(name string, candidates []string) []string {
	type scored struct {
		name     string
		distance int
	}
	var close []scored
	for _, candidate := range candidates {
		if candidate == name {
			continue
		}
		d := levenshtein.ComputeDistance(name, candidate)
		if d <= maxSuggestionDistance {
			close = append(close, scored{name: candidate, distance: d})
		}
	}
	sort.Slice(close, func(i, j int) bool {
		if close[i].distance != close[j].distance {
			return close[i].distance < close[j].distance
		}
		return close[i].name < close[j].name
	})
	names := make([]string, len(close))
	for i, c := range close {
		names[i] = c.name
	}
	return names
}

// DidYouMean formats the closest match as a hint line, or returns "" when
// nothing is close enough.
func DidYouMean(name string, candidates []string) string {
	suggestions := Suggest(name, candidates)
	if len(suggestions) == 0 {
		return ""
	}
	return "did you mean '" + suggestions[0] + "'?"
}
