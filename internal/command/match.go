package command

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// matchScore rates how close typed is to a candidate verb. Exact matches are
// resolved before suggestion ever runs, so the ceiling here is the prefix
// score.
func matchScore(typed, cand string) (float64, bool) {
	if typed == cand {
		return 1.0, true
	}
	if strings.HasPrefix(cand, typed) && len(typed) >= 2 {
		return 0.9, true
	}
	dist := levenshtein.ComputeDistance(typed, cand)
	if dist > levenshteinLimit(len(cand)) {
		return 0, false
	}
	return 0.72 - 0.08*float64(dist), true
}

// levenshteinLimit allows more slop on longer verbs.
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	}
	return 3
}
