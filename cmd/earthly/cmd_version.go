package main

import "fmt"

type VersionCmd struct{}

func (cmd *VersionCmd) Run(g *Globals) error {
	fmt.Fprintf(g.Out, "earthly %s\n", version)
	return nil
}
