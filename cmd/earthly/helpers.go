package main

import (
	"earthly/cmd/earthly/render"
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"earthly/internal/config"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Destinations have no per-record amenities; every trip includes these.
var (
	destinationAmenities  = []string{"Eco-Transfers", "Organic Breakfast", "Zero-Waste Kit"}
	destinationHighlights = []string{"Photography", "Stargazing", "Wellness"}
)

const destinationExperience = "Designed for the conscious traveler who values the subtle balance between human luxury and the raw power of nature."

type AmbiguousMatchError struct {
	Query   string
	Matches []catalog.Record
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("multiple records match %q", e.Query)
}

func (e *AmbiguousMatchError) WriteMatches(w io.Writer) {
	fmt.Fprintln(w, "Multiple records match. Please be more specific:")
	for _, r := range e.Matches {
		fmt.Fprintf(w, "  - %d %s (%s)\n", r.RecordID(), r.Title(), r.Place())
	}
}

func handleFindError(w io.Writer, err error) bool {
	var ambErr *AmbiguousMatchError
	if errors.As(err, &ambErr) {
		ambErr.WriteMatches(w)
		return true
	}
	return false
}

// findRecord resolves query as an id first, then as a unique name or
// location match.
func findRecord[R catalog.Record](store *catalog.Store[R], kind browse.Kind, query string) (R, error) {
	if id, err := strconv.Atoi(query); err == nil {
		r, err := store.Get(id)
		if err != nil {
			return r, fmt.Errorf("no %s with id %d: %w", kind, id, err)
		}
		return r, nil
	}

	var zero R
	matches := store.Search(query)
	if len(matches) == 0 {
		return zero, fmt.Errorf("no %s found matching: %s", kind, query)
	}
	if len(matches) > 1 {
		records := make([]catalog.Record, len(matches))
		for i, m := range matches {
			records[i] = m
		}
		return zero, &AmbiguousMatchError{Query: query, Matches: records}
	}
	return matches[0], nil
}

func loadDestinations(g *Globals) (*catalog.Store[catalog.Destination], error) {
	store, err := catalog.LoadDestinations(config.CatalogPath(g.Settings.DataDir, string(browse.KindDestinations)))
	if err != nil {
		return nil, fmt.Errorf("failed to load destinations: %w", err)
	}
	return store, nil
}

func loadLodges(g *Globals) (*catalog.Store[catalog.Lodge], error) {
	store, err := catalog.LoadLodges(config.CatalogPath(g.Settings.DataDir, string(browse.KindLodges)))
	if err != nil {
		return nil, fmt.Errorf("failed to load lodges: %w", err)
	}
	return store, nil
}

func cardItem(r catalog.Record, favorite bool) render.CardItem {
	item := render.CardItem{
		ID:       r.RecordID(),
		Name:     r.Title(),
		Location: r.Place(),
		Category: string(r.RecordCategory()),
		Price:    r.RecordPrice(),
		Rating:   r.RecordRating(),
		Favorite: favorite,
	}
	switch v := r.(type) {
	case catalog.Destination:
		item.Description = v.Description
	case catalog.Lodge:
		item.Description = v.Description
	}
	return item
}

func cardList[R catalog.Record](p *browse.Page[R]) render.CardListView {
	visible := p.Visible()
	view := render.CardListView{
		Noun:  p.Kind().Noun(),
		Total: p.Store().Len(),
		Items: make([]render.CardItem, 0, len(visible)),
	}
	for _, r := range visible {
		view.Items = append(view.Items, cardItem(r, p.IsFavorite(r.RecordID())))
	}
	return view
}

func favoritesList[R catalog.Record](p *browse.Page[R]) render.CardListView {
	favs := p.FavoriteRecords()
	view := render.CardListView{
		Noun:  "favorite " + p.Kind().Noun(),
		Total: p.Store().Len(),
		Items: make([]render.CardItem, 0, len(favs)),
	}
	for _, r := range favs {
		view.Items = append(view.Items, cardItem(r, true))
	}
	return view
}

func detailView(r catalog.Record, favorite bool) render.DetailView {
	view := render.DetailView{
		ID:       r.RecordID(),
		Name:     r.Title(),
		Location: r.Place(),
		Category: string(r.RecordCategory()),
		Price:    r.RecordPrice(),
		Rating:   r.RecordRating(),
		Favorite: favorite,
	}
	switch v := r.(type) {
	case catalog.Destination:
		view.Description = v.Description
		view.Experience = destinationExperience
		view.Amenities = destinationAmenities
		view.Highlights = destinationHighlights
	case catalog.Lodge:
		view.Description = v.Description
		view.Experience = v.ExtendedDescription
		view.Amenities = v.Amenities
		view.Highlights = v.Highlights
	}
	return view
}
