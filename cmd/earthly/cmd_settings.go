package main

import (
	"earthly/internal/config"
	"earthly/internal/logging"
	"earthly/internal/ui"
	"fmt"
	"strconv"
)

type SettingsCmd struct {
	SetLogLevel string `name:"set-log-level" help:"Save log level (debug, info, warn, error)"`
	SetCurrency string `name:"set-currency" help:"Save currency symbol"`
	SetWidth    *int   `name:"set-width" help:"Save output width (0 detects the terminal)"`
	SetDataDir  string `name:"set-data" help:"Save catalog data override directory"`
}

func (cmd *SettingsCmd) changed() bool {
	return cmd.SetLogLevel != "" || cmd.SetCurrency != "" || cmd.SetWidth != nil || cmd.SetDataDir != ""
}

func (cmd *SettingsCmd) Run(g *Globals) error {
	if !cmd.changed() {
		fmt.Fprint(g.Out, ui.RenderPanel("Settings", settingsFields(g.Settings, g.SettingsPath)))
		return nil
	}

	// Environment overrides stay out of the saved file.
	s, err := config.LoadSettings(g.SettingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	if cmd.SetLogLevel != "" {
		if _, err := logging.ParseLevel(cmd.SetLogLevel); err != nil {
			return err
		}
		s.LogLevel = cmd.SetLogLevel
	}
	if cmd.SetCurrency != "" {
		s.Currency = cmd.SetCurrency
	}
	if cmd.SetWidth != nil {
		s.Width = *cmd.SetWidth
	}
	if cmd.SetDataDir != "" {
		dir, err := config.ExpandPath(cmd.SetDataDir)
		if err != nil {
			return fmt.Errorf("invalid data directory: %w", err)
		}
		s.DataDir = dir
	}
	if err := s.Validate(); err != nil {
		return err
	}

	if err := s.Save(g.SettingsPath); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	g.Log.Debug("settings saved", "path", g.SettingsPath)

	fmt.Fprintf(g.Out, "Saved: %s\n", g.SettingsPath)
	return nil
}

func settingsFields(s config.Settings, path string) []ui.Field {
	defaults := config.DefaultSettings()
	width := "auto"
	if s.Width > 0 {
		width = strconv.Itoa(s.Width)
	}
	dataDir := "built-in"
	if s.DataDir != "" {
		dataDir = s.DataDir
	}
	return []ui.Field{
		{Label: "Log level", Value: s.LogLevel, Changed: s.LogLevel != defaults.LogLevel},
		{Label: "Currency", Value: s.Currency, Changed: s.Currency != defaults.Currency},
		{Label: "Width", Value: width, Changed: s.Width != defaults.Width},
		{Label: "Data", Value: dataDir, Changed: s.DataDir != defaults.DataDir},
		{Label: "File", Value: path},
	}
}
