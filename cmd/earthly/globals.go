package main

import (
	"earthly/cmd/earthly/render"
	"earthly/internal/config"
	"io"
	"log/slog"

	"github.com/charmbracelet/huh"
)

type Globals struct {
	Settings     config.Settings
	SettingsPath string
	Out          io.Writer
	In           io.Reader
	InTTY        bool
	Render       render.Renderer
	Log          *slog.Logger
	RunForm      func(form *huh.Form) error
}

func defaultRunForm(form *huh.Form) error {
	return form.Run()
}

func (g *Globals) runForm(form *huh.Form) error {
	run := g.RunForm
	if run == nil {
		run = defaultRunForm
	}
	return run(form)
}
