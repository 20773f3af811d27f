// Package config loads the segfolia settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/revelaction/segfolia/batch"
	"github.com/revelaction/segfolia/folia"
)

// EnvPath names the environment variable holding the config file path.
const EnvPath = "SEGFOLIA_CONFIG"

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Generator     string `toml:"generator"`
	Annotator     string `toml:"annotator"`
	AnnotatorType string `toml:"annotator_type"`
	Language      string `toml:"language"`

	IncludeText   bool   `toml:"include_text"`
	Pretty        bool   `toml:"pretty"`
	Indent        int    `toml:"indent"`
	Encoding      string `toml:"encoding"`
	DuplicateText bool   `toml:"duplicate_text"`

	Batch Batch `toml:"batch"`
}

type Batch struct {
	OutputDir        string `toml:"output_dir"`
	Extension        string `toml:"extension"`
	ReplaceExtension bool   `toml:"replace_extension"`
	NoClobber        bool   `toml:"no_clobber"`
	ContinueOnError  bool   `toml:"continue_on_error"`
	Threads          int    `toml:"threads"`

	// File with the names of the input files to skip, one per line
	ExcludeFile string `toml:"exclude_file"`
}

// Default returns the config used when no file is given.
func Default() Config {
	fopts := folia.DefaultOptions()
	bopts := batch.DefaultOptions()

	return Config{
		Generator:     fopts.Generator,
		Annotator:     fopts.Metadata.Annotator,
		AnnotatorType: fopts.Metadata.AnnotatorType,
		Language:      fopts.Metadata.Language,
		Pretty:        fopts.Pretty,
		Indent:        fopts.Indent,
		Encoding:      fopts.Encoding,
		Batch: Batch{
			OutputDir: bopts.OutputDir,
			Extension: bopts.Extension,
			Threads:   bopts.Threads,
		},
	}
}

// Path returns flagPath if not empty, otherwise the value of $SEGFOLIA_CONFIG.
func Path(flagPath string) string {
	if flagPath != "" {
		return flagPath
	}
	return os.Getenv(EnvPath)
}

// Load reads the TOML file at path over the defaults. Keys absent from the
// file keep their default value. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalid, path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Indent < 0 {
		return fmt.Errorf("%w: indent must not be negative, got %d", ErrInvalid, c.Indent)
	}
	if c.Batch.Threads < 1 {
		return fmt.Errorf("%w: threads must be at least 1, got %d", ErrInvalid, c.Batch.Threads)
	}
	return nil
}

func (c Config) FoliaOptions() folia.Options {
	opts := folia.DefaultOptions()
	opts.IncludeText = c.IncludeText
	opts.Pretty = c.Pretty
	opts.Indent = c.Indent
	opts.Encoding = c.Encoding
	opts.DuplicateText = c.DuplicateText
	opts.Generator = c.Generator
	opts.Metadata.Annotator = c.Annotator
	opts.Metadata.AnnotatorType = c.AnnotatorType
	opts.Metadata.Language = c.Language
	return opts
}

// BatchOptions returns the batch options for the files below inputDir,
// reading the exclude file if one is set.
func (c Config) BatchOptions(inputDir string) (batch.Options, error) {
	opts := batch.Options{
		InputDir:         inputDir,
		OutputDir:        c.Batch.OutputDir,
		Extension:        c.Batch.Extension,
		ReplaceExtension: c.Batch.ReplaceExtension,
		NoClobber:        c.Batch.NoClobber,
		ContinueOnError:  c.Batch.ContinueOnError,
		Threads:          c.Batch.Threads,
	}

	if c.Batch.ExcludeFile != "" {
		names, err := batch.ReadExcludeFile(c.Batch.ExcludeFile)
		if err != nil {
			return batch.Options{}, fmt.Errorf("failed to read exclude file: %w", err)
		}
		opts.Exclude = names
	}

	return opts, nil
}
