package refine

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
)

// SortKey selects the comparator applied to a filtered result set.
type SortKey int

const (
	SortRelevance SortKey = iota // source order, the catalog's own ranking
	SortTitleAsc
	SortTitleDesc
	SortYearAsc
	SortYearDesc
	SortIssuesAsc
	SortIssuesDesc
)

// String returns the display label for the sort key.
func (k SortKey) String() string {
	switch k {
	case SortRelevance:
		return "relevance"
	case SortTitleAsc:
		return "title ↑"
	case SortTitleDesc:
		return "title ↓"
	case SortYearAsc:
		return "year ↑"
	case SortYearDesc:
		return "year ↓"
	case SortIssuesAsc:
		return "issues ↑"
	case SortIssuesDesc:
		return "issues ↓"
	}
	return "unknown"
}

// Next cycles to the following sort key, wrapping back to relevance.
func (k SortKey) Next() SortKey {
	if k >= SortIssuesDesc {
		return SortRelevance
	}
	return k + 1
}

// Sort returns a new slice ordered by the given key. Relevance performs no
// comparison at all and is the only key guaranteed to preserve source order;
// the other keys are stable, so ties keep their relative input order.
// Missing years and issue counts compare as 0.
func Sort(results []comicvine.Volume, key SortKey) []comicvine.Volume {
	sorted := make([]comicvine.Volume, len(results))
	copy(sorted, results)

	if key == SortRelevance {
		return sorted
	}

	var less func(a, b comicvine.Volume) bool
	switch key {
	case SortTitleAsc, SortTitleDesc:
		// Collation handles case folding and accents across locales,
		// which byte comparison gets wrong for non-ASCII titles.
		coll := collate.New(language.Und, collate.IgnoreCase)
		if key == SortTitleAsc {
			less = func(a, b comicvine.Volume) bool { return coll.CompareString(a.Name, b.Name) < 0 }
		} else {
			less = func(a, b comicvine.Volume) bool { return coll.CompareString(a.Name, b.Name) > 0 }
		}
	case SortYearAsc:
		less = func(a, b comicvine.Volume) bool { return a.StartYear < b.StartYear }
	case SortYearDesc:
		less = func(a, b comicvine.Volume) bool { return a.StartYear > b.StartYear }
	case SortIssuesAsc:
		less = func(a, b comicvine.Volume) bool { return a.IssueCount < b.IssueCount }
	case SortIssuesDesc:
		less = func(a, b comicvine.Volume) bool { return a.IssueCount > b.IssueCount }
	default:
		return sorted
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return less(sorted[i], sorted[j])
	})
	return sorted
}
