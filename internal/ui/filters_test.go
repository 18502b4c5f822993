package ui

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestRenderFilterSummary(t *testing.T) {
	f := catalog.FilterState{Category: catalog.CategoryBeaches, MaxPrice: 1500, MinRating: 4.5}

	output := stripANSI(RenderFilterSummary(browse.KindLodges, f, "$"))

	assert.Contains(t, output, "┌ Filters for lodges")
	assert.Contains(t, output, "◆ Category · Beaches")
	assert.Contains(t, output, "◆ Max price · $1500")
	assert.Contains(t, output, "◆ Min rating · 4.5+")
}

func TestFilterFields(t *testing.T) {
	t.Run("page defaults are unchanged", func(t *testing.T) {
		fields := FilterFields(browse.KindDestinations, catalog.NewFilterState(1000), "€")

		assert.Equal(t, []Field{
			{Label: "Category", Value: "All"},
			{Label: "Max price", Value: "€1000"},
			{Label: "Min rating", Value: "Any"},
		}, fields)
	})

	t.Run("ceiling depends on the page", func(t *testing.T) {
		fields := FilterFields(browse.KindLodges, catalog.NewFilterState(1000), "$")

		assert.True(t, fields[1].Changed)
		assert.False(t, fields[0].Changed)
	})
}

func optionValues(opts []huh.Option[float64]) []float64 {
	var out []float64
	for _, o := range opts {
		out = append(out, o.Value)
	}
	return out
}

func TestPriceOptions(t *testing.T) {
	t.Run("current on a step is not duplicated", func(t *testing.T) {
		values := optionValues(priceOptions(2000, "$"))

		assert.Len(t, values, len(browse.PriceSteps()))
	})

	t.Run("current between steps is inserted in order", func(t *testing.T) {
		values := optionValues(priceOptions(450, "$"))

		assert.Equal(t, []float64{300, 400, 450, 500}, values[:4])
	})

	t.Run("current below the first step comes first", func(t *testing.T) {
		values := optionValues(priceOptions(100, "$"))

		assert.Equal(t, 100.0, values[0])
	})

	t.Run("current above the last step comes last", func(t *testing.T) {
		values := optionValues(priceOptions(5000, "$"))

		assert.Equal(t, 5000.0, values[len(values)-1])
	})
}

func TestNewFilterForm(t *testing.T) {
	f := catalog.NewFilterState(2000)

	assert.NotNil(t, NewFilterForm(&f, "$"))
}

func TestHandleFormError(t *testing.T) {
	t.Run("ErrUserAborted returns nil", func(t *testing.T) {
		assert.NoError(t, HandleFormError(huh.ErrUserAborted))
	})

	t.Run("other errors propagate", func(t *testing.T) {
		assert.Error(t, HandleFormError(errors.New("unexpected")))
	})
}
