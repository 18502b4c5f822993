package catalog

import (
	"embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

const catalogVersion = 1

//go:embed data/*.yaml
var embedded embed.FS

type destinationsFile struct {
	Version      int           `yaml:"version"`
	Destinations []Destination `yaml:"destinations"`
}

type lodgesFile struct {
	Version int     `yaml:"version"`
	Lodges  []Lodge `yaml:"lodges"`
}

// LoadDestinations reads the destination catalog from path, or the built-in
// catalog when path is empty.
func LoadDestinations(path string) (*Store[Destination], error) {
	var file destinationsFile
	if err := loadFile(path, "data/destinations.yaml", &file); err != nil {
		return nil, err
	}
	if file.Version != catalogVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}
	if err := validateRecords(file.Destinations); err != nil {
		return nil, err
	}
	return NewStore(file.Destinations)
}

// LoadLodges is LoadDestinations for the lodge catalog.
func LoadLodges(path string) (*Store[Lodge], error) {
	var file lodgesFile
	if err := loadFile(path, "data/lodges.yaml", &file); err != nil {
		return nil, err
	}
	if file.Version != catalogVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}
	if err := validateRecords(file.Lodges); err != nil {
		return nil, err
	}
	return NewStore(file.Lodges)
}

func loadFile(path, builtin string, out any) error {
	var (
		data []byte
		err  error
		name = path
	)
	if path == "" {
		name = builtin
		data, err = embedded.ReadFile(builtin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse catalog file %q: %w", name, err)
	}
	return nil
}

func validateRecords[R Record](records []R) error {
	for _, r := range records {
		if !r.RecordCategory().IsRecordCategory() {
			return fmt.Errorf("record %d: %w: %q", r.RecordID(), ErrUnknownCategory, r.RecordCategory())
		}
		if math.IsNaN(r.RecordPrice()) || r.RecordPrice() < 0 {
			return fmt.Errorf("record %d: price must not be negative", r.RecordID())
		}
		if math.IsNaN(r.RecordRating()) || r.RecordRating() < 0 || r.RecordRating() > MaxRating {
			return fmt.Errorf("record %d: rating %v outside [0, %v]", r.RecordID(), r.RecordRating(), MaxRating)
		}
	}
	return nil
}
