package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/segfolia/folia"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	opts := cfg.FoliaOptions()
	assert.Equal(t, folia.DefaultOptions(), opts)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
generator = "MyTool"
language = "es"
include_text = true
indent = 4
encoding = "ISO-8859-1"

[batch]
output_dir = "out"
replace_extension = true
threads = 8
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "MyTool", cfg.Generator)
	assert.Equal(t, "es", cfg.Language)
	assert.Equal(t, folia.DefaultAnnotator, cfg.Annotator)
	assert.True(t, cfg.Pretty)
	assert.True(t, cfg.IncludeText)
	assert.Equal(t, 4, cfg.Indent)
	assert.Equal(t, "out", cfg.Batch.OutputDir)
	assert.Equal(t, ".xml", cfg.Batch.Extension)
	assert.Equal(t, 8, cfg.Batch.Threads)

	opts := cfg.FoliaOptions()
	assert.Equal(t, "MyTool", opts.Generator)
	assert.Equal(t, "es", opts.Metadata.Language)
	assert.Equal(t, "ISO-8859-1", opts.Encoding)
	assert.Equal(t, folia.DefaultLayers, opts.Metadata.Layers)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative indent", "indent = -1"},
		{"zero threads", "[batch]\nthreads = 0"},
		{"bad toml", "indent = "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestPath(t *testing.T) {
	t.Setenv(EnvPath, "/env/config.toml")
	assert.Equal(t, "/flag/config.toml", Path("/flag/config.toml"))
	assert.Equal(t, "/env/config.toml", Path(""))
}

func TestBatchOptionsReadsExcludeFile(t *testing.T) {
	dir := t.TempDir()
	exclude := filepath.Join(dir, "exclude.txt")
	require.NoError(t, os.WriteFile(exclude, []byte("a.json\n\nb.json\n"), 0644))

	cfg := Default()
	cfg.Batch.ExcludeFile = exclude
	cfg.Batch.NoClobber = true

	opts, err := cfg.BatchOptions("in")
	require.NoError(t, err)
	assert.Equal(t, "in", opts.InputDir)
	assert.True(t, opts.NoClobber)
	assert.Equal(t, []string{"a.json", "b.json"}, opts.Exclude)

	cfg.Batch.ExcludeFile = filepath.Join(dir, "missing.txt")
	_, err = cfg.BatchOptions("in")
	require.Error(t, err)
}
