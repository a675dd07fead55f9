package match

import "sort"

// Rank orders candidates by match quality and returns a new slice.
//
// The order is lexicographic over three keys: best-match flag first, then
// confidence descending with unscored candidates below any scored one, then
// source rank ascending. The sort is stable, so equal candidates keep their
// input order, and ranking an already-ranked slice reproduces it.
func Rank(candidates []Candidate) []Candidate {
	ranked := make([]Candidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		if a.BestMatch != b.BestMatch {
			return a.BestMatch
		}

		switch {
		case a.Confidence != nil && b.Confidence == nil:
			return true
		case a.Confidence == nil && b.Confidence != nil:
			return false
		case a.Confidence != nil && b.Confidence != nil && *a.Confidence != *b.Confidence:
			return *a.Confidence > *b.Confidence
		}

		return a.Rank < b.Rank
	})

	return ranked
}
