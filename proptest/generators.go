package proptest

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"slices"

	"pgregory.net/rapid"
)

var (
	iterDirGen = rapid.StringMatching(`[a-z]{8}`)
	nameGen    = rapid.StringMatching(`[A-Z][a-z]{2,10}( [A-Z][a-z]{2,10})?`)
)

func recordCategoryGen() *rapid.Generator[catalog.Category] {
	return rapid.SampledFrom(catalog.Categories()[1:])
}

// filterCategoryGen includes All.
func filterCategoryGen() *rapid.Generator[catalog.Category] {
	return rapid.SampledFrom(catalog.Categories())
}

// priceGen favors whole prices so boundary equality is exercised.
func priceGen() *rapid.Generator[float64] {
	return rapid.OneOf(
		rapid.Map(rapid.IntRange(0, 3000), func(n int) float64 { return float64(n) }),
		rapid.Float64Range(0, 3000),
	)
}

func ratingGen() *rapid.Generator[float64] {
	return rapid.OneOf(
		rapid.SampledFrom([]float64{0, 3, 4, 4.5, 4.6, 4.7, 4.8, 4.9, 5}),
		rapid.Float64Range(0, catalog.MaxRating),
	)
}

func filterStateGen() *rapid.Generator[catalog.FilterState] {
	return rapid.Custom(func(t *rapid.T) catalog.FilterState {
		return catalog.FilterState{
			Category:  filterCategoryGen().Draw(t, "category"),
			MaxPrice:  priceGen().Draw(t, "maxPrice"),
			MinRating: ratingGen().Draw(t, "minRating"),
		}
	})
}

func uniqueIDsGen(minCount, maxCount int) *rapid.Generator[[]int] {
	return rapid.Custom(func(t *rapid.T) []int {
		ids := rapid.SliceOfNDistinct(rapid.IntRange(1, maxID), minCount, maxCount, rapid.ID[int]).Draw(t, "ids")
		if rapid.Bool().Draw(t, "sorted") {
			slices.Sort(ids)
		}
		return ids
	})
}

func commandLineGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.Just("list"),
		rapid.Just("reset"),
		rapid.Just("favs"),
		rapid.Just("close"),
		rapid.Just("filters"),
		rapid.Just("apply"),
		rapid.Just("help"),
		rapid.Just("price nan"),
		rapid.Just("rating NaN"),
		rapid.Map(filterCategoryGen(), func(c catalog.Category) string { return "category " + string(c) }),
		rapid.Map(rapid.SampledFrom(browse.PriceSteps()), func(p float64) string { return "price " + formatNum(p) }),
		rapid.Map(rapid.SampledFrom(browse.RatingSteps()), func(r float64) string { return "rating " + formatNum(r) }),
		rapid.Map(rapid.IntRange(0, maxID), func(id int) string { return "fav " + formatInt(id) }),
		rapid.Map(rapid.IntRange(0, maxID), func(id int) string { return "open " + formatInt(id) }),
		rapid.StringMatching(`[a-z]{1,8}( [a-z0-9]{1,4})?`),
	)
}

func malformedYAMLGen() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just("{{{{"),
		rapid.Just("- - - -"),
		rapid.Just(":::"),
		rapid.Just("key: [unclosed"),
		rapid.Just("version: \"unmatched quote"),
		rapid.Just("version: 1\ndestinations:\n  - id: one\n"),
		rapid.Just("version: 1\ndestinations:\n  - id: 1\n    category: Moon\n"),
		rapid.Just("version: 1\ndestinations:\n  - id: 1\n    price: -5\n    category: City\n"),
		rapid.Just("version: 1\ndestinations:\n  - id: 1\n    rating: 6\n    category: City\n"),
		rapid.Just("version: 1\ndestinations:\n  - id: 1\n    category: City\n  - id: 1\n    category: Forest\n"),
		rapid.Just("version: 3\ndestinations: []\n"),
		rapid.StringMatching(`[^a-zA-Z0-9\s]{10,50}`),
	)
}
