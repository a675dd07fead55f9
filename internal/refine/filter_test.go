package refine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ComicarrDev/comicarr-sub001/internal/comicvine"
)

func sampleResults() []comicvine.Volume {
	return []comicvine.Volume{
		{ID: 1, Name: "Saga", StartYear: 2012, IssueCount: 54, Publisher: "Image"},
		{ID: 2, Name: "Saga: Compendium", StartYear: 2019, IssueCount: 3, Publisher: "Image"},
		{ID: 3, Name: "Fables", StartYear: 2002, IssueCount: 150, Publisher: "Vertigo"},
		{ID: 4, Name: "Obscure", Publisher: ""},
		{ID: 5, Name: "Tagged", StartYear: 2005, IssueCount: 12, Publisher: "Vertigo", Tag: "V2"},
	}
}

func ids(results []comicvine.Volume) []int64 {
	out := make([]int64, len(results))
	for i, v := range results {
		out[i] = v.ID
	}
	return out
}

func TestApply_NoFilters(t *testing.T) {
	results := sampleResults()
	filtered := Apply(results, Filters{})
	assert.Len(t, filtered, len(results))
}

func TestApply_Publisher(t *testing.T) {
	filtered := Apply(sampleResults(), Filters{Publisher: "Image"})
	assert.Equal(t, []int64{1, 2}, ids(filtered))
}

func TestApply_UnknownPublisherLabel(t *testing.T) {
	filtered := Apply(sampleResults(), Filters{Publisher: UnknownPublisher})
	assert.Equal(t, []int64{4}, ids(filtered))
}

func TestApply_YearBounds(t *testing.T) {
	results := sampleResults()

	// Lower bound treats a missing year as 0 and excludes it.
	filtered := Apply(results, Filters{YearMin: 2010})
	assert.Equal(t, []int64{1, 2}, ids(filtered))

	// Upper bound never excludes a result with no year.
	filtered = Apply(results, Filters{YearMax: 2010})
	assert.Equal(t, []int64{3, 4, 5}, ids(filtered))

	filtered = Apply(results, Filters{YearMin: 2002, YearMax: 2012})
	assert.Equal(t, []int64{1, 3, 5}, ids(filtered))
}

func TestApply_IssueCountBounds(t *testing.T) {
	results := sampleResults()

	filtered := Apply(results, Filters{IssuesMin: 50})
	assert.Equal(t, []int64{1, 3}, ids(filtered))

	filtered = Apply(results, Filters{IssuesMax: 20})
	assert.Equal(t, []int64{2, 4, 5}, ids(filtered))
}

func TestApply_Tag(t *testing.T) {
	results := sampleResults()

	// Explicit tag wins over the synthesized one.
	filtered := Apply(results, Filters{Tag: "V2"})
	assert.Equal(t, []int64{5}, ids(filtered))

	// Results without an explicit tag match their synthesized "V<year>" tag.
	filtered = Apply(results, Filters{Tag: "V2012"})
	assert.Equal(t, []int64{1}, ids(filtered))

	// A result with neither tag nor year never matches a tag filter.
	filtered = Apply(results, Filters{Tag: "V0"})
	assert.Empty(t, filtered)
}

func TestApply_PredicatesCommute(t *testing.T) {
	results := sampleResults()

	// Independent ANDed predicates: applying them together equals applying
	// them one at a time in any order.
	combined := Apply(results, Filters{Publisher: "Image", YearMin: 2015})

	oneWay := Apply(Apply(results, Filters{Publisher: "Image"}), Filters{YearMin: 2015})
	otherWay := Apply(Apply(results, Filters{YearMin: 2015}), Filters{Publisher: "Image"})

	assert.Equal(t, combined, oneWay)
	assert.Equal(t, combined, otherWay)
}

func TestApply_SagaScenario(t *testing.T) {
	results := []comicvine.Volume{
		{Name: "Saga", StartYear: 2012, IssueCount: 54, Publisher: "Image"},
		{Name: "Saga: Compendium", StartYear: 2019, IssueCount: 3, Publisher: "Image"},
	}

	filtered := Apply(results, Filters{Publisher: "Image", YearMin: 2015})
	require.Len(t, filtered, 1)
	assert.Equal(t, "Saga: Compendium", filtered[0].Name)

	sorted := Sort(filtered, SortYearDesc)
	assert.Equal(t, filtered, sorted)

	page := Page(sorted, 1)
	assert.Len(t, page, 1)
	assert.Equal(t, 1, TotalPages(len(sorted)))
}

func TestEffectiveTag(t *testing.T) {
	tests := []struct {
		name   string
		volume comicvine.Volume
		want   string
	}{
		{"explicit tag", comicvine.Volume{Tag: "V2", StartYear: 2005}, "V2"},
		{"synthesized from year", comicvine.Volume{StartYear: 2012}, "V2012"},
		{"neither", comicvine.Volume{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveTag(tt.volume))
		})
	}
}

func TestPublishersAndTags(t *testing.T) {
	results := sampleResults()

	assert.Equal(t, []string{"Image", UnknownPublisher, "Vertigo"}, Publishers(results))
	assert.Equal(t, []string{"V2", "V2002", "V2012", "V2019"}, Tags(results))
}

func TestFilters_Active(t *testing.T) {
	assert.False(t, Filters{}.Active())
	assert.True(t, Filters{Publisher: "Image"}.Active())
	assert.True(t, Filters{YearMin: 2000}.Active())
}
