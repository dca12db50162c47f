// Package config reads the optional .fluentgen.toml of a target package.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/mlwelles/fluentGen/fluent"
)

// FileName is the config file looked up in the package directory.
const FileName = ".fluentgen.toml"

// Surfaces accepted by the surface setting.
const (
	SurfaceFull    = "full"
	SurfaceIndexed = "indexed"
)

// ErrInvalidConfig wraps validation failures, as opposed to TOML syntax or
// filesystem errors.
var ErrInvalidConfig = errors.New("invalid fluentgen config")

// Config holds the generation settings of one package.
type Config struct {
	Surface       string   `toml:"surface"`
	Output        string   `toml:"output"`
	ElementPrefix string   `toml:"element_prefix"`
	AppendPrefix  string   `toml:"append_prefix"`
	Exclude       []string `toml:"exclude"`
}

// Default returns the settings used when no config file exists.
func Default() *Config {
	return &Config{
		Surface:       SurfaceFull,
		ElementPrefix: fluent.DefaultElementPrefix,
		AppendPrefix:  fluent.DefaultAppendPrefix,
	}
}

// Load reads dir/.fluentgen.toml over the defaults. A missing file is not an
// error.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes TOML data over the defaults and validates the result. source
// is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

// Validate rejects unknown surfaces, empty prefixes and output paths that
// leave the package directory.
func (c *Config) Validate() error {
	switch c.Surface {
	case SurfaceFull, SurfaceIndexed:
	default:
		return fmt.Errorf("%w: surface must be %q or %q, got %q", ErrInvalidConfig, SurfaceFull, SurfaceIndexed, c.Surface)
	}
	if c.ElementPrefix == "" || c.AppendPrefix == "" {
		return fmt.Errorf("%w: method prefixes must not be empty", ErrInvalidConfig)
	}
	if c.ElementPrefix == c.AppendPrefix {
		return fmt.Errorf("%w: element_prefix and append_prefix must differ", ErrInvalidConfig)
	}
	if c.Output != "" && (filepath.Base(c.Output) != c.Output || filepath.Ext(c.Output) != ".go") {
		return fmt.Errorf("%w: output must be a .go file name, got %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

// FluentOptions converts the settings into options for a fluent pass.
func (c *Config) FluentOptions() fluent.Options {
	surface := fluent.SurfaceFull
	if c.Surface == SurfaceIndexed {
		surface = fluent.SurfaceIndexed
	}
	return fluent.Options{
		Surface: surface,
		Namer: fluent.PrefixNamer{
			ElementPrefix: c.ElementPrefix,
			AppendPrefix:  c.AppendPrefix,
		},
		Exclude: c.Exclude,
	}
}
