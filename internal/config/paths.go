package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const appName = "earthly"

func DefaultSettingsPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, appName, "settings.yaml")
}

// CatalogPath returns the override file for a catalog kind inside dataDir.
// An empty dataDir means the built-in catalog and yields "".
func CatalogPath(dataDir, kind string) string {
	if dataDir == "" {
		return ""
	}
	return filepath.Join(dataDir, kind+".yaml")
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = filepath.Join(home, path[2:])
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot expand ~: %w", err)
		}
		path = home
	}

	return filepath.Abs(path)
}
