package main

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"earthly/internal/ui"
	"fmt"
)

type PageFlags struct {
	Category    string   `short:"c" help:"Category (All, Mountains, Beaches, Desert, Forest, City)"`
	MaxPrice    *float64 `name:"max-price" short:"p" help:"Maximum price (defaults to the page ceiling)"`
	MinRating   float64  `name:"min-rating" short:"r" help:"Minimum rating, 0 to 5"`
	Names       bool     `short:"n" help:"Output only names (one per line)"`
	Interactive bool     `short:"i" help:"Pick filters in the advanced filter panel"`
}

func (f PageFlags) apply(set filterSetter) error {
	if f.Category != "" {
		if err := set.SetCategory(f.Category); err != nil {
			return fmt.Errorf("invalid --category: %w", err)
		}
	}
	if f.MaxPrice != nil {
		if err := set.SetMaxPrice(*f.MaxPrice); err != nil {
			return fmt.Errorf("invalid --max-price: %w", err)
		}
	}
	if err := set.SetMinRating(f.MinRating); err != nil {
		return fmt.Errorf("invalid --min-rating: %w", err)
	}
	return nil
}

type filterSetter interface {
	SetCategory(name string) error
	SetMaxPrice(price float64) error
	SetMinRating(rating float64) error
}

type DestinationsCmd struct {
	Filters PageFlags `embed:""`
}

func (cmd *DestinationsCmd) Run(g *Globals) error {
	store, err := loadDestinations(g)
	if err != nil {
		return err
	}
	return runCatalog(g, browse.NewPage(browse.KindDestinations, store, g.Log), cmd.Filters)
}

type LodgesCmd struct {
	Filters PageFlags `embed:""`
}

func (cmd *LodgesCmd) Run(g *Globals) error {
	store, err := loadLodges(g)
	if err != nil {
		return err
	}
	return runCatalog(g, browse.NewPage(browse.KindLodges, store, g.Log), cmd.Filters)
}

func runCatalog[R catalog.Record](g *Globals, page *browse.Page[R], flags PageFlags) error {
	if err := flags.apply(page); err != nil {
		return err
	}

	if flags.Interactive {
		if err := editFilters(g, page); err != nil {
			return err
		}
	}

	if flags.Names {
		for _, r := range page.Visible() {
			fmt.Fprintln(g.Out, r.Title())
		}
		return nil
	}

	fmt.Fprint(g.Out, g.Render.RenderCards(cardList(page)))
	return nil
}

// editFilters runs the advanced filter panel against the page's current
// filters. An aborted form leaves them untouched.
func editFilters[R catalog.Record](g *Globals, page *browse.Page[R]) error {
	page.OpenFilterPanel()
	defer page.CloseFilterPanel()

	f := page.Filter()
	if err := g.runForm(ui.NewFilterForm(&f, g.Settings.Currency)); err != nil {
		return ui.HandleFormError(err)
	}
	if err := page.SetFilter(f); err != nil {
		return fmt.Errorf("invalid filters: %w", err)
	}

	fmt.Fprint(g.Out, ui.RenderFilterSummary(page.Kind(), page.Filter(), g.Settings.Currency))
	return nil
}
