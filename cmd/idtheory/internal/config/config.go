// Package config loads the idtheory CLI configuration from YAML.
//
// Example:
//
//	alphabet: base58
//	min_length: 22
//	uuid_version: 4
//	log:
//	  level: info
//	  format: console
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/theory-cloud/idtheory"
	"github.com/theory-cloud/idtheory/pkg/basex"
	"github.com/theory-cloud/idtheory/pkg/observability"
)

// Config holds CLI defaults. Flags override individual fields.
type Config struct {
	// Alphabet is a literal alphabet or a name from basex.Named ("default"
	// selects the legacy table).
	Alphabet    string                     `yaml:"alphabet"`
	MinLength   int                        `yaml:"min_length"`
	UUIDVersion int                        `yaml:"uuid_version"`
	Log         observability.LoggerConfig `yaml:"log"`
}

func Default() Config {
	return Config{
		Alphabet:    "default",
		UUIDVersion: int(idtheory.UUIDv4),
		Log: observability.LoggerConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// ResolveAlphabet expands alphabet names; anything else is taken literally.
func ResolveAlphabet(alphabet string) string {
	switch alphabet {
	case "", "default":
		return idtheory.DefaultAlphabet
	}
	if named, ok := basex.Named[alphabet]; ok {
		return named
	}
	return alphabet
}

func (c Config) Validate() error {
	if c.MinLength < 0 {
		return fmt.Errorf("config: min_length must be >= 0, got %d", c.MinLength)
	}
	switch c.UUIDVersion {
	case 0, int(idtheory.UUIDv1), int(idtheory.UUIDv4):
	default:
		return fmt.Errorf("config: uuid_version must be 1 or 4, got %d", c.UUIDVersion)
	}
	if _, err := basex.NewEncoding(ResolveAlphabet(c.Alphabet)); err != nil {
		return fmt.Errorf("config: alphabet: %w", err)
	}
	return nil
}

// Options converts the config into Identifier options.
func (c Config) Options() []idtheory.Option {
	return []idtheory.Option{
		idtheory.WithAlphabet(ResolveAlphabet(c.Alphabet)),
		idtheory.WithMinLength(c.MinLength),
	}
}
