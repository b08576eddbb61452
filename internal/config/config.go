// =============================================================================
// rene - Configuration Module
// =============================================================================
//
// This module is responsible for resolving the conversion settings. It starts
// from the built-in defaults and, when an override file is given, replaces
// only the fields that the file actually sets.
//
// CONFIGURATION FILE:
//   Two optional string fields:
//
//     delimiter = ";"
//     url       = "http://internal/"
//
//   The format is chosen by file extension:
//     .toml (or any other extension) : TOML
//     .yaml / .yml                   : YAML
//     .json                          : JSON
//
// FAILURE POLICY:
//   A config file that cannot be read or decoded aborts the run. There is no
//   fallback to defaults once a path has been supplied.
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultDelimiter separates the key from the value on each input line.
	DefaultDelimiter = ","

	// DefaultURL is stripped from both fields of every input line.
	DefaultURL = "https://example.org"
)

// ErrConfig is wrapped by every error returned from this package.
var ErrConfig = errors.New("config")

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the fully resolved conversion settings.
type Config struct {
	// Delimiter is the literal substring used to split each input line.
	// Default: ","
	Delimiter string

	// URL is the base URL removed (all occurrences) from keys and values.
	// Default: "https://example.org"
	URL string
}

// overrides mirrors Config with pointer fields so that a field missing from
// the file can be told apart from a field set to the empty string.
type overrides struct {
	Delimiter *string `toml:"delimiter" yaml:"delimiter" json:"delimiter"`
	URL       *string `toml:"url" yaml:"url" json:"url"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Delimiter: DefaultDelimiter,
		URL:       DefaultURL,
	}
}

// =============================================================================
// LOADING FUNCTIONS
// =============================================================================

// Resolve returns the configuration for a run.
//
// PARAMETERS:
//   - path: The override file, or "" to use the defaults.
//
// RETURNS:
//   - The resolved configuration.
//   - An error wrapping ErrConfig if the override file is unusable.
func Resolve(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Load reads an override file and applies it on top of the defaults.
//
// LOADING PROCESS:
//  1. Read the file
//  2. Decode it according to its extension
//  3. Apply default values to every field the file leaves out
//  4. Validate the result
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read config file: %w", ErrConfig, err)
	}

	var o overrides
	if err := decode(path, data, &o); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config file %s: %w", ErrConfig, path, err)
	}

	config := Default()
	applyOverrides(config, &o)

	if err := validate(config); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration: %w", ErrConfig, err)
	}

	return config, nil
}

// decode picks the decoder from the file extension.
func decode(path string, data []byte, o *overrides) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, o)
	case ".json":
		return json.Unmarshal(data, o)
	default:
		return toml.Unmarshal(data, o)
	}
}

// applyOverrides copies every field present in the file onto config.
func applyOverrides(config *Config, o *overrides) {
	if o.Delimiter != nil {
		config.Delimiter = *o.Delimiter
	}
	if o.URL != nil {
		config.URL = *o.URL
	}
}

// validate rejects settings the mapping builder cannot work with.
// An empty URL is allowed and strips nothing.
func validate(config *Config) error {
	if config.Delimiter == "" {
		return errors.New("delimiter must not be empty")
	}
	return nil
}
