package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revelaction/segfolia/folia"
)

const goodDoc = `{"sentences":[{"tokens":[{"text":"Bob","offset":0,"ner":"PERSON"}]}]}`

// A sentence without token list
const malformedDoc = `{"sentences":[{}]}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestOutputPath(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()

	tests := []struct {
		name  string
		opts  Options
		input string
		want  string
	}{
		{
			name:  "append extension",
			opts:  Options{OutputDir: out},
			input: filepath.Join(in, "a.json"),
			want:  filepath.Join(out, "a.json.xml"),
		},
		{
			name:  "replace extension",
			opts:  Options{OutputDir: out, ReplaceExtension: true},
			input: filepath.Join(in, "a.json"),
			want:  filepath.Join(out, "a.xml"),
		},
		{
			name:  "no doubled extension",
			opts:  Options{OutputDir: out},
			input: filepath.Join(in, "a.xml"),
			want:  filepath.Join(out, "a.xml"),
		},
		{
			name:  "mirror input subdirectory",
			opts:  Options{InputDir: in, OutputDir: out, ReplaceExtension: true},
			input: filepath.Join(in, "news", "2020", "a.json"),
			want:  filepath.Join(out, "news", "2020", "a.xml"),
		},
		{
			name:  "hidden file keeps its name",
			opts:  Options{OutputDir: out, ReplaceExtension: true, Extension: ".folia"},
			input: filepath.Join(in, ".hidden"),
			want:  filepath.Join(out, ".hidden.folia"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewConverter(tt.opts, folia.DefaultOptions()).OutputPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunConverts(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "a.json"), goodDoc)
	writeFile(t, filepath.Join(in, "sub", "b.json"), goodDoc)

	files, err := Files(in)
	require.NoError(t, err)
	require.Len(t, files, 2)

	c := NewConverter(Options{InputDir: in, OutputDir: out, ReplaceExtension: true, Threads: 2}, folia.DefaultOptions())

	var seen []Result
	c.OnProgress(func(r Result) { seen = append(seen, r) })

	sum, err := c.Run(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 2}, sum)
	assert.Len(t, seen, 2)

	data, err := os.ReadFile(filepath.Join(out, "sub", "b.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `<w xml:id="doc.p.1.s.1.w.1">`)
	assert.Contains(t, string(data), `<entity xml:id="doc.p.1.s.1.entities.1.entity.1" class="PERSON">`)
	assert.FileExists(t, filepath.Join(out, "a.xml"))
}

func TestRunSkips(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.json"), goodDoc)
	writeFile(t, filepath.Join(dir, "b.json"), goodDoc)
	writeFile(t, filepath.Join(dir, "c.json"), goodDoc)
	writeFile(t, filepath.Join(dir, "c.xml"), "existing")
	writeFile(t, filepath.Join(dir, "d.xml"), goodDoc)

	opts := Options{
		OutputDir:        dir,
		ReplaceExtension: true,
		NoClobber:        true,
		Exclude:          []string{"b.json"},
	}
	c := NewConverter(opts, folia.DefaultOptions())

	files := []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
		filepath.Join(dir, "c.json"),
		filepath.Join(dir, "d.xml"),
	}

	var reasons []error
	c.OnProgress(func(r Result) {
		if r.Status == Skipped {
			reasons = append(reasons, r.Err)
		}
	})

	sum, err := c.Run(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Skipped: 3}, sum)
	assert.Contains(t, reasons, ErrExists)
	assert.Contains(t, reasons, ErrSameFile)

	data, err := os.ReadFile(filepath.Join(dir, "c.xml"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
	assert.NoFileExists(t, filepath.Join(dir, "b.xml"))
}

func TestRunStopsOnError(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "bad.json"), malformedDoc)

	c := NewConverter(Options{OutputDir: out}, folia.DefaultOptions())
	sum, err := c.Run(context.Background(), []string{filepath.Join(in, "bad.json")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, folia.ErrMalformedGraph))
	assert.Equal(t, 1, sum.Failed)
	assert.NoFileExists(t, filepath.Join(out, "bad.json.xml"))
}

func TestRunContinueOnError(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeFile(t, filepath.Join(in, "bad.json"), malformedDoc)
	writeFile(t, filepath.Join(in, "broken.json"), "{")
	writeFile(t, filepath.Join(in, "good.json"), goodDoc)

	files, err := Files(in)
	require.NoError(t, err)

	c := NewConverter(Options{OutputDir: out, ContinueOnError: true, Threads: 3}, folia.DefaultOptions())
	sum, err := c.Run(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 1, Failed: 2}, sum)
	assert.FileExists(t, filepath.Join(out, "good.json.xml"))
}

func TestRunCancelled(t *testing.T) {
	in := t.TempDir()
	var files []string
	for i := 0; i < 10; i++ {
		path := filepath.Join(in, fmt.Sprintf("%d.json", i))
		writeFile(t, path, goodDoc)
		files = append(files, path)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewConverter(Options{OutputDir: t.TempDir()}, folia.DefaultOptions())
	sum, err := c.Run(ctx, files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, Summary{}, sum)
}

func TestRunCancelledAfterLastFile(t *testing.T) {
	in := t.TempDir()
	files := []string{
		writeDocFile(t, in, "a.json"),
		writeDocFile(t, in, "b.json"),
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c := NewConverter(Options{OutputDir: t.TempDir()}, folia.DefaultOptions())
	done := 0
	c.OnProgress(func(r Result) {
		done++
		if done == len(files) {
			cancel()
		}
	})

	sum, err := c.Run(ctx, files)
	require.NoError(t, err)
	assert.Equal(t, Summary{Processed: 2}, sum)
}

func writeDocFile(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	writeFile(t, path, goodDoc)
	return path
}

func TestReadExcludeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exclude.txt")
	writeFile(t, path, strings.Join([]string{" a.json ", "", "b.json", "   "}, "\n"))

	names, err := ReadExcludeFile(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.json"}, names)
}
