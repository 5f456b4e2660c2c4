// Package suggest ranks candidate names by similarity to a likely misspelled
// input, for "did you mean" hints.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// minScore is the similarity below which a candidate is not worth offering.
const minScore = 0.5

type scored struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, best
// match first. Ties are broken alphabetically.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	if target == "" || maxResults <= 0 {
		return nil
	}

	ranked := make([]scored, 0, len(candidates))
	for _, name := range candidates {
		if score := similarity(target, name); score > minScore {
			ranked = append(ranked, scored{name: name, score: score})
		}
	}
	slices.SortFunc(ranked, func(a, b scored) int {
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.name, b.name)
	})

	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}
	result := make([]string, 0, len(ranked))
	for _, s := range ranked {
		result = append(result, s.name)
	}
	return result
}

// similarity scores two strings in [0, 1]. Exact matches score 1, prefix
// matches 0.9, everything else by normalized edit distance.
func similarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	distance := levenshtein(a, b)
	longest := float64(max(len(a), len(b)))
	return 1.0 - float64(distance)/longest
}

// levenshtein computes edit distance with the two-row variant, avoiding the
// full matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
