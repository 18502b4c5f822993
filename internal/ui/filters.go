package ui

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
)

// FilterFields describes f in panel order, marking values that differ from
// the page defaults of kind.
func FilterFields(kind browse.Kind, f catalog.FilterState, currency string) []Field {
	defaults := catalog.NewFilterState(kind.Ceiling())
	return []Field{
		{Label: "Category", Value: string(f.Category), Changed: f.Category != defaults.Category},
		{Label: "Max price", Value: fmt.Sprintf("%s%.0f", currency, f.MaxPrice), Changed: f.MaxPrice != defaults.MaxPrice},
		{Label: "Min rating", Value: browse.RatingLabel(f.MinRating), Changed: f.MinRating != defaults.MinRating},
	}
}

func RenderFilterSummary(kind browse.Kind, f catalog.FilterState, currency string) string {
	return RenderPanel("Filters for "+string(kind), FilterFields(kind, f, currency))
}

// NewFilterForm builds the advanced filter panel. Submitting writes the
// choices into f; the caller validates and applies them.
func NewFilterForm(f *catalog.FilterState, currency string) *huh.Form {
	categories := make([]huh.Option[catalog.Category], 0, len(catalog.Categories()))
	for _, c := range catalog.Categories() {
		categories = append(categories, huh.NewOption(string(c), c))
	}

	prices := priceOptions(f.MaxPrice, currency)

	ratings := make([]huh.Option[float64], 0, len(browse.RatingSteps()))
	for _, r := range browse.RatingSteps() {
		ratings = append(ratings, huh.NewOption(browse.RatingLabel(r), r))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[catalog.Category]().
				Title("Category").
				Options(categories...).
				Value(&f.Category),
			huh.NewSelect[float64]().
				Title("Max price").
				Options(prices...).
				Value(&f.MaxPrice),
			huh.NewSelect[float64]().
				Title("Min rating").
				Options(ratings...).
				Value(&f.MinRating),
		),
	).WithTheme(PanelTheme())
}

// priceOptions lists the panel steps, keeping current selectable when it
// falls between steps.
func priceOptions(current float64, currency string) []huh.Option[float64] {
	var opts []huh.Option[float64]
	seen := false
	for _, p := range browse.PriceSteps() {
		if !seen && current < p {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s%.0f", currency, current), current))
			seen = true
		}
		if p == current {
			seen = true
		}
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s%.0f", currency, p), p))
	}
	if !seen {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s%.0f", currency, current), current))
	}
	return opts
}

func HandleFormError(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}
	return err
}
