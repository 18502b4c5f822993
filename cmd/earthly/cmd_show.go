package main

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"fmt"
)

type ShowCmd struct {
	Kind  string `arg:"" enum:"destinations,lodges" help:"Catalog to search (destinations, lodges)"`
	Query string `arg:"" help:"Record id, or part of its name or location"`
}

func (cmd *ShowCmd) Run(g *Globals) error {
	kind, err := browse.ParseKind(cmd.Kind)
	if err != nil {
		return err
	}

	switch kind {
	case browse.KindLodges:
		store, err := loadLodges(g)
		if err != nil {
			return err
		}
		return showRecord(g, kind, store, cmd.Query)
	default:
		store, err := loadDestinations(g)
		if err != nil {
			return err
		}
		return showRecord(g, kind, store, cmd.Query)
	}
}

func showRecord[R catalog.Record](g *Globals, kind browse.Kind, store *catalog.Store[R], query string) error {
	r, err := findRecord(store, kind, query)
	if err != nil {
		if handleFindError(g.Out, err) {
			return nil
		}
		return err
	}

	fmt.Fprint(g.Out, g.Render.RenderDetail(detailView(r, false)))
	return nil
}
