// Package config loads and validates dynmat CLI settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/katalvlaran/dynmat/matrix"
	"gopkg.in/yaml.v3"
)

// Element types selectable from the command line or config file.
const (
	TypeInt   = "int"
	TypeFloat = "float"
)

const (
	DefaultType = TypeFloat
	DefaultSize = 3
)

var (
	// ErrUnknownType is returned for an element type other than int or float.
	ErrUnknownType = errors.New("config: unknown element type")

	// ErrBadSize is returned for a size outside [1, matrix.MaxMatrixSize].
	ErrBadSize = errors.New("config: size out of range")
)

type Config struct {
	Type    string `yaml:"type"`
	Size    int    `yaml:"size"`
	Plain   bool   `yaml:"plain"`
	Verbose bool   `yaml:"verbose"`
}

func Default() *Config {
	return &Config{
		Type: DefaultType,
		Size: DefaultSize,
	}
}

// Load reads path and overlays it on Default. The result is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the element type and size.
func (c *Config) Validate() error {
	switch c.Type {
	case TypeInt, TypeFloat:
	default:
		return fmt.Errorf("%q: %w", c.Type, ErrUnknownType)
	}
	if c.Size <= 0 || c.Size > matrix.MaxMatrixSize {
		return fmt.Errorf("%d: %w", c.Size, ErrBadSize)
	}

	return nil
}
