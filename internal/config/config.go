// Package config handles configuration loading and shared data structures.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the root configuration file structure.
type Config struct {
	Attribution string    `yaml:"attribution,omitempty" json:"attribution,omitempty"`
	MapLinks    []MapLink `yaml:"map_links,omitempty" json:"map_links,omitempty"`
}

// MapLink is a URL template for an external map service. The template may
// contain {lon} and {lat} placeholders, replaced with the decimal-degree
// values of a resolved coordinate.
type MapLink struct {
	Name string `yaml:"name" json:"name"`
	URL  string `yaml:"url" json:"url"`
}

// Render substitutes the coordinate into the URL template.
func (m MapLink) Render(lon, lat float64) string {
	r := strings.NewReplacer(
		"{lon}", strconv.FormatFloat(lon, 'f', 7, 64),
		"{lat}", strconv.FormatFloat(lat, 'f', 7, 64),
	)
	return r.Replace(m.URL)
}

// Default returns the configuration used when no file is given: a single
// OpenStreetMap link.
func Default() *Config {
	return &Config{
		MapLinks: []MapLink{{
			Name: "OpenStreetMap",
			URL:  "https://www.openstreetmap.org/?mlat={lat}&mlon={lon}",
		}},
	}
}

// Load reads and parses the YAML configuration file from the specified path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}
