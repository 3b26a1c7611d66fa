// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type (
	// Config defines file-based configuration for a Lexer.
	Config struct {
		Breakers string   `toml:"breakers" yaml:"breakers"`
		Keywords []string `toml:"keywords" yaml:"keywords"`
		Debug    bool     `toml:"debug" yaml:"debug"`
		Workers  int      `toml:"workers" yaml:"workers"`
	}
)

// Configuration errors.
var (
	ErrUnknownConfigFormat = errors.New("unknown config format")
	ErrLoadConfig          = errors.New("failed to load config")
)

// DefaultConfig obtains the package's default Config.
func DefaultConfig() *Config {
	return &Config{
		Breakers: DefaultBreakers,
		Keywords: append([]string(nil), DefaultKeywords...),
		Workers:  defaultWorkers(),
	}
}

// LoadConfig reads a TOML (.toml) or YAML (.yaml, .yml) Config file.
//
// Missing entries are populated with defaults.
func LoadConfig(path string) (cfg *Config, err error) {
	defer func() {
		if err != nil {
			cfg = nil
			err = fmt.Errorf("%w (%s): %w", ErrLoadConfig, path, err)
		}
	}()

	content, err := os.ReadFile(path)
	if err != nil {
		return
	}

	cfg = &Config{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(content, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, cfg)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownConfigFormat, ext)
	}
	if err != nil {
		return
	}
	cfg.Validate()

	return
}

// Validate populates missing Config entries with defaults.
func (c *Config) Validate() {
	if c.Breakers == "" {
		c.Breakers = DefaultBreakers
	}
	if c.Keywords == nil {
		c.Keywords = append([]string(nil), DefaultKeywords...)
	}
	if c.Workers < 1 {
		c.Workers = defaultWorkers()
	}
}

// Options converts the Config to Lexer options.
func (c *Config) Options() []Option {
	return []Option{
		WithBreakers(c.Breakers),
		WithKeywords(c.Keywords...),
		WithDebug(c.Debug),
		WithWorkers(c.Workers),
	}
}
