package config

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/slideprops/internal/logging"
	"gopkg.in/yaml.v3"
)

var slideNamePattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

type Config struct {
	BasePath  string        `yaml:"base_path"`
	Extension string        `yaml:"extension"`
	Slides    []string      `yaml:"slides"`
	Logging   LoggingConfig `yaml:"logging,omitempty"`
}

type LoggingConfig struct {
	Level string `yaml:"level,omitempty"`
}

// Load reads the config at path. Keys absent from the file keep their
// default values.
func Load(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	config, err := LoadFromYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return config, nil
}

// LoadOrDefault behaves like Load but falls back to DefaultConfig when no
// file exists at path.
func LoadOrDefault(fsys afero.Fs, path string) (*Config, error) {
	config, err := Load(fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return config, nil
}

// Validate performs comprehensive config validation
func (c *Config) Validate() error {
	if strings.TrimSpace(c.BasePath) == "" {
		return errors.New("base_path is required and cannot be empty")
	}

	if !strings.HasPrefix(c.Extension, ".") || len(c.Extension) < 2 {
		return fmt.Errorf("invalid extension '%s': must start with a dot", c.Extension)
	}

	if len(c.Slides) == 0 {
		return errors.New("config must contain at least one slide")
	}

	for i, slide := range c.Slides {
		if !slideNamePattern.MatchString(slide) {
			return fmt.Errorf("slide %d: invalid name '%s': must be lowercase words separated by hyphens", i+1, slide)
		}
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	return nil
}

// Save validates c and writes it to path as YAML, replacing any existing file.
func (c *Config) Save(fsys afero.Fs, path string) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := afero.WriteFile(fsys, path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
