package pages

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

type Link struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
}

// External reports whether the link leaves the platform.
func (l Link) External() bool {
	return strings.HasPrefix(l.Href, "http")
}

type Card struct {
	ID    int    `yaml:"id"`
	Image string `yaml:"image"`
	Text  string `yaml:"text"`
	Price string `yaml:"price"`
}

type Home struct {
	Brand    string `yaml:"brand"`
	Nav      []Link `yaml:"nav"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Sections []Link `yaml:"sections"`
	Popular  []Card `yaml:"popular"`
}

type Pillar struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type About struct {
	Brand      string   `yaml:"brand"`
	Nav        []Link   `yaml:"nav"`
	Title      string   `yaml:"title"`
	Intro      string   `yaml:"intro"`
	Globe      string   `yaml:"globe"`
	Pillars    []Pillar `yaml:"pillars"`
	Philosophy string   `yaml:"philosophy"`
	Quote      string   `yaml:"quote"`
	Footer     string   `yaml:"footer"`
}

func LoadHome() (Home, error) {
	var h Home
	if err := load("data/home.yaml", &h); err != nil {
		return Home{}, err
	}
	return h, nil
}

func LoadAbout() (About, error) {
	var a About
	if err := load("data/about.yaml", &a); err != nil {
		return About{}, err
	}
	return a, nil
}

func load(name string, out any) error {
	data, err := embedded.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read page %q: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse page %q: %w", name, err)
	}
	return nil
}
