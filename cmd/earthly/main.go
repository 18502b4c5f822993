package main

import (
	"earthly/cmd/earthly/render"
	"earthly/internal/config"
	"earthly/internal/logging"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/x/term"
)

var version = "dev"

type CLI struct {
	Home         HomeCmd         `cmd:"" help:"Show the home page"`
	About        AboutCmd        `cmd:"" help:"Show the about page"`
	Destinations DestinationsCmd `cmd:"" aliases:"dest,d" help:"List destinations"`
	Lodges       LodgesCmd       `cmd:"" aliases:"l" help:"List lodges"`
	Show         ShowCmd         `cmd:"" help:"Show destination or lodge details"`
	Browse       BrowseCmd       `cmd:"" aliases:"b" help:"Browse a catalog page interactively"`
	Settings     SettingsCmd     `cmd:"" help:"Show or change settings"`
	Version      VersionCmd      `cmd:"" help:"Print the version"`

	SettingsPath string `name:"settings" short:"s" help:"Path to settings file"`
	DataDir      string `name:"data" help:"Directory with destinations.yaml and lodges.yaml overrides"`
	EnvFile      string `name:"env-file" default:".env" help:"Optional .env file with EARTHLY_* variables"`
	Verbose      bool   `short:"v" help:"Log debug output to stderr"`
}

func (c *CLI) AfterApply(ctx *kong.Context) error {
	if err := config.LoadDotEnv(c.EnvFile); err != nil {
		return err
	}

	settingsPath := c.SettingsPath
	if settingsPath == "" {
		settingsPath = config.DefaultSettingsPath()
	}

	settings, err := config.LoadSettings(settingsPath)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}
	settings, err = settings.WithEnv(os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if c.DataDir != "" {
		settings.DataDir = c.DataDir
	}
	if settings.DataDir != "" {
		dir, err := config.ExpandPath(settings.DataDir)
		if err != nil {
			return fmt.Errorf("invalid data directory: %w", err)
		}
		settings.DataDir = dir
	}

	level, err := logging.ParseLevel(settings.LogLevel)
	if err != nil {
		return err
	}
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := logging.New(logging.Config{
		Writer: os.Stderr,
		Level:  level,
		Color:  term.IsTerminal(os.Stderr.Fd()),
	})

	var renderer *render.LipglossRenderer
	if settings.Width > 0 {
		renderer = render.NewLipglossRenderer(os.Stdout, settings.Width)
	} else {
		renderer = render.NewLipglossRendererAuto(os.Stdout)
	}

	globals := &Globals{
		Settings:     settings,
		SettingsPath: settingsPath,
		Out:          os.Stdout,
		In:           os.Stdin,
		InTTY:        term.IsTerminal(os.Stdin.Fd()),
		Render:       renderer.WithCurrency(settings.Currency),
		Log:          logger,
	}
	ctx.Bind(globals)
	return nil
}

func main() {
	cli := CLI{}
	ctx := kong.Parse(&cli,
		kong.Name("earthly"),
		kong.Description("Sustainable travel catalog: destinations and lodges"),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
