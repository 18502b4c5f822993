package main

import (
	"bufio"
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"earthly/internal/ui"
	"fmt"
)

type BrowseCmd struct {
	Kind string `arg:"" enum:"destinations,lodges" help:"Page to browse (destinations, lodges)"`
}

func (cmd *BrowseCmd) Run(g *Globals) error {
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
		return runBrowse(g, browse.NewPage(kind, store, g.Log))
	default:
		store, err := loadDestinations(g)
		if err != nil {
			return err
		}
		return runBrowse(g, browse.NewPage(kind, store, g.Log))
	}
}

// runBrowse reads line commands from g.In until quit or end of input.
// Command errors are reported and the session continues.
func runBrowse[R catalog.Record](g *Globals, page *browse.Page[R]) error {
	fmt.Fprint(g.Out, g.Render.RenderCards(cardList(page)))
	fmt.Fprintln(g.Out, "Type 'help' for commands.")

	scanner := bufio.NewScanner(g.In)
	for {
		fmt.Fprint(g.Out, prompt(page))
		if !scanner.Scan() {
			fmt.Fprintln(g.Out)
			break
		}

		cmd, err := browse.ParseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintf(g.Out, "error: %v\n", err)
			continue
		}

		effect, err := page.Apply(cmd)
		if err != nil {
			fmt.Fprintf(g.Out, "error: %v\n", err)
			continue
		}

		// The form needs the terminal; with piped input the panel stays open
		// and is driven by line commands until apply.
		if cmd.Op == browse.OpFilters {
			if !g.InTTY {
				fmt.Fprint(g.Out, ui.RenderFilterSummary(page.Kind(), page.Filter(), g.Settings.Currency))
				fmt.Fprintln(g.Out, "Set category, price or rating, then apply.")
				continue
			}
			if err := editFilters(g, page); err != nil {
				fmt.Fprintf(g.Out, "error: %v\n", err)
				continue
			}
			effect = browse.EffectList
		}

		switch effect {
		case browse.EffectList:
			fmt.Fprint(g.Out, g.Render.RenderCards(cardList(page)))
		case browse.EffectDetail:
			if r, ok := page.Selected(); ok {
				fmt.Fprint(g.Out, g.Render.RenderDetail(detailView(r, page.IsFavorite(r.RecordID()))))
			}
		case browse.EffectFavorites:
			if len(page.FavoriteRecords()) == 0 {
				fmt.Fprintln(g.Out, "No favorites yet.")
				continue
			}
			fmt.Fprint(g.Out, g.Render.RenderCards(favoritesList(page)))
		case browse.EffectHelp:
			fmt.Fprint(g.Out, browse.Help)
		case browse.EffectQuit:
			return nil
		}
	}

	return scanner.Err()
}

func prompt[R catalog.Record](page *browse.Page[R]) string {
	switch {
	case page.FilterActive():
		return fmt.Sprintf("%s [%s]> ", page.Kind(), page.Filter().Category)
	case page.FilterPanelOpen():
		return fmt.Sprintf("%s [filters]> ", page.Kind())
	}
	return fmt.Sprintf("%s> ", page.Kind())
}
