package main

import (
	"earthly/internal/pages"
	"earthly/internal/util"
	"fmt"
)

type AboutCmd struct{}

func (cmd *AboutCmd) Run(g *Globals) error {
	about := assert.Success(pages.LoadAbout())
	fmt.Fprint(g.Out, g.Render.RenderAbout(about))
	return nil
}
