// Package config holds the newslens YAML configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all newslens configuration.
type Config struct {
	DBPath    string          `yaml:"db_path"`
	Listen    string          `yaml:"listen"`
	Generator GeneratorConfig `yaml:"generator"`
	Ingest    IngestConfig    `yaml:"ingest"`
}

// GeneratorConfig controls artifact generation.
type GeneratorConfig struct {
	Model            string   `yaml:"model"`
	KeywordWindow    Duration `yaml:"keyword_window"`
	VerifyHighlights bool     `yaml:"verify_highlights"`
}

// Duration decodes Go duration strings ("24h") from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// IngestConfig points at pre-scraped dumps. Both empty means live crawl.
type IngestConfig struct {
	ArticleDump string `yaml:"article_dump"`
	PressDump   string `yaml:"press_dump"`
}

func (c *Config) defaults() {
	if c.DBPath == "" {
		c.DBPath = "newslens.db"
	}
	if c.Listen == "" {
		c.Listen = ":8000"
	}
	if c.Generator.Model == "" {
		c.Generator.Model = "gpt-4o-mini"
	}
}

// Default returns the configuration with every field at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.defaults()
	return cfg
}

// LoadFile reads a YAML config file and fills in defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.defaults()
	return cfg, nil
}
