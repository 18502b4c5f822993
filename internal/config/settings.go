package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	EnvLogLevel = "EARTHLY_LOG_LEVEL"
	EnvDataDir  = "EARTHLY_DATA_DIR"
	EnvCurrency = "EARTHLY_CURRENCY"
	EnvWidth    = "EARTHLY_WIDTH"
)

var ErrInvalidWidth = errors.New("width must be zero (auto) or at least 40")

const minWidth = 40

type Settings struct {
	LogLevel string `yaml:"log_level,omitempty"`
	Currency string `yaml:"currency,omitempty"`
	// Width of rendered output; zero means detect from the terminal.
	Width   int    `yaml:"width,omitempty"`
	DataDir string `yaml:"data_dir,omitempty"`
}

func DefaultSettings() Settings {
	return Settings{
		LogLevel: "warn",
		Currency: "$",
	}
}

func (s Settings) Validate() error {
	if s.Width != 0 && s.Width < minWidth {
		return fmt.Errorf("%w: got %d", ErrInvalidWidth, s.Width)
	}
	return nil
}

// LoadSettings reads path on top of the defaults. A missing file is not an error.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse settings file %q: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("invalid settings file %q: %w", path, err)
	}
	return s, nil
}

func (s Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// LoadDotEnv loads variables from a .env file without overriding the real
// environment. A missing file is ignored.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// WithEnv overlays EARTHLY_* variables returned by getenv.
func (s Settings) WithEnv(getenv func(string) string) (Settings, error) {
	newS := s
	if v := getenv(EnvLogLevel); v != "" {
		newS.LogLevel = v
	}
	if v := getenv(EnvDataDir); v != "" {
		newS.DataDir = v
	}
	if v := getenv(EnvCurrency); v != "" {
		newS.Currency = v
	}
	if v := getenv(EnvWidth); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil {
			return s, fmt.Errorf("%s: %w", EnvWidth, err)
		}
		newS.Width = w
	}
	if err := newS.Validate(); err != nil {
		return s, err
	}
	return newS, nil
}
