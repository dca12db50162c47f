package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlwelles/fluentGen/fluent"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	data := `surface = "indexed"
output = "accessors_gen.go"
element_prefix = "Ensure"
append_prefix = "Add"
exclude = ["Legacy", "Envelope"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(data), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		Surface:       SurfaceIndexed,
		Output:        "accessors_gen.go",
		ElementPrefix: "Ensure",
		AppendPrefix:  "Add",
		Exclude:       []string{"Legacy", "Envelope"},
	}, cfg)
}

func TestParseKeepsDefaultsForUnsetKeys(t *testing.T) {
	cfg, err := Parse([]byte(`exclude = ["Legacy"]`), "test")
	require.NoError(t, err)
	assert.Equal(t, SurfaceFull, cfg.Surface)
	assert.Equal(t, fluent.DefaultElementPrefix, cfg.ElementPrefix)
	assert.Equal(t, fluent.DefaultAppendPrefix, cfg.AppendPrefix)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name       string
		data       string
		validation bool
	}{
		{"syntax", `surface = `, false},
		{"unknown key", `colour = "blue"`, false},
		{"unknown surface", `surface = "partial"`, true},
		{"empty prefix", `element_prefix = ""`, true},
		{"same prefixes", `append_prefix = "With"`, true},
		{"output with directory", `output = "../x.go"`, true},
		{"output not go", `output = "x.txt"`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "test")
			require.Error(t, err)
			assert.Equal(t, tt.validation, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestFluentOptions(t *testing.T) {
	cfg := Default()
	cfg.Surface = SurfaceIndexed
	cfg.AppendPrefix = "Add"
	cfg.Exclude = []string{"Legacy"}

	opts := cfg.FluentOptions()

	assert.Equal(t, fluent.SurfaceIndexed, opts.Surface)
	assert.Equal(t, []string{"Legacy"}, opts.Exclude)
	assert.Equal(t, fluent.PrefixNamer{ElementPrefix: "With", AppendPrefix: "Add"}, opts.Namer)
}
