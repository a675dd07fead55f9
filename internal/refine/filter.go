// Package refine narrows, orders and pages catalog search results locally.
package refine

import (
	"fmt"
	"sort"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
)

// UnknownPublisher is the filter label for results without a publisher.
const UnknownPublisher = "Unknown publisher"

// Filters holds the active result predicates. Zero values mean "no filter":
// empty strings for the label filters, 0 for the numeric bounds. Predicates
// are independent and ANDed, so their evaluation order does not matter.
type Filters struct {
	Publisher string // exact publisher label, UnknownPublisher matches blank
	Tag       string // volume tag, matched against the effective tag
	YearMin   int
	YearMax   int
	IssuesMin int
	IssuesMax int
}

// Active reports whether any predicate is set.
func (f Filters) Active() bool {
	return f != Filters{}
}

// Apply returns the results that satisfy every active predicate.
// The input slice is not modified.
func Apply(results []comicvine.Volume, f Filters) []comicvine.Volume {
	filtered := make([]comicvine.Volume, 0, len(results))
	for _, v := range results {
		if matches(v, f) {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

func matches(v comicvine.Volume, f Filters) bool {
	if f.Publisher != "" && publisherLabel(v) != f.Publisher {
		return false
	}
	if f.Tag != "" {
		tag := EffectiveTag(v)
		if tag == "" || tag != f.Tag {
			return false
		}
	}
	// Missing years and counts compare as 0 against the lower bound and
	// pass any upper bound.
	if f.YearMin > 0 && v.StartYear < f.YearMin {
		return false
	}
	if f.YearMax > 0 && v.StartYear > 0 && v.StartYear > f.YearMax {
		return false
	}
	if f.IssuesMin > 0 && v.IssueCount < f.IssuesMin {
		return false
	}
	if f.IssuesMax > 0 && v.IssueCount > 0 && v.IssueCount > f.IssuesMax {
		return false
	}
	return true
}

// publisherLabel returns the filter label for a result's publisher.
func publisherLabel(v comicvine.Volume) string {
	if v.Publisher == "" {
		return UnknownPublisher
	}
	return v.Publisher
}

// EffectiveTag returns the volume tag used for tag filtering: the explicit
// tag when present, otherwise one synthesized from the start year ("V2012").
// Returns "" for a result with neither, which no tag filter matches.
func EffectiveTag(v comicvine.Volume) string {
	if v.Tag != "" {
		return v.Tag
	}
	if v.StartYear > 0 {
		return fmt.Sprintf("V%d", v.StartYear)
	}
	return ""
}

// Publishers returns the distinct publisher labels present in the results,
// sorted, for building the publisher filter choices.
func Publishers(results []comicvine.Volume) []string {
	seen := make(map[string]struct{}, len(results))
	var labels []string
	for _, v := range results {
		label := publisherLabel(v)
		if _, ok := seen[label]; ok {
			continue
		}
		seen[label] = struct{}{}
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Tags returns the distinct effective volume tags present in the results,
// sorted, for building the tag filter choices.
func Tags(results []comicvine.Volume) []string {
	seen := make(map[string]struct{}, len(results))
	var tags []string
	for _, v := range results {
		tag := EffectiveTag(v)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
