package main

import (
	"earthly/internal/pages"
	"earthly/internal/util"
	"fmt"
)

type HomeCmd struct{}

func (cmd *HomeCmd) Run(g *Globals) error {
	home := assert.Success(pages.LoadHome())
	fmt.Fprint(g.Out, g.Render.RenderHome(home))
	return nil
}
