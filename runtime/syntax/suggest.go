package syntax

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/jasmine-lang/jasmine/runtime/lexer"
)

// maxTypoDistance bounds the edit distance of a suggested keyword
const maxTypoDistance = 2

// closestClause returns the query keyword most likely meant, or ""
func closestClause(word string) string {
	return findClosestMatch(word, lexer.QueryKeywords)
}

// findClosestMatch finds the closest matching string using fuzzy search.
// Abbreviations (sel) rank first, then small typos (fitler).
func findClosestMatch(target string, candidates []string) string {
	if len(candidates) == 0 || target == "" {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}

	best, bestDistance := "", maxTypoDistance+1
	for _, c := range candidates {
		if d := fuzzy.LevenshteinDistance(target, c); d < bestDistance {
			best, bestDistance = c, d
		}
	}
	return best
}
