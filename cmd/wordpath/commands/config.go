package commands

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultDictionary is the word file used when neither --dict nor the config
// file names one.
const DefaultDictionary = "words.txt"

// Config holds optional defaults read from a YAML file:
//
//	dictionary: words.txt
//	source: 0
//
// Flags given on the command line take precedence over these values.
type Config struct {
	// Dictionary is the word file for the ladder and verify commands.
	Dictionary string `yaml:"dictionary,omitempty"`

	// Source is the start vertex for the dijkstra command. Nil means unset.
	Source *int `yaml:"source,omitempty"`
}

// LoadConfig reads and parses the YAML config file at path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

// dictionaryPath resolves the dictionary file: flag, then config, then default.
func (c *Config) dictionaryPath(flagValue string, flagSet bool) string {
	switch {
	case flagSet:
		return flagValue
	case c != nil && c.Dictionary != "":
		return c.Dictionary
	default:
		return DefaultDictionary
	}
}

// sourceVertex resolves the dijkstra source: flag, then config, then 0.
func (c *Config) sourceVertex(flagValue int, flagSet bool) int {
	switch {
	case flagSet:
		return flagValue
	case c != nil && c.Source != nil:
		return *c.Source
	default:
		return 0
	}
}
