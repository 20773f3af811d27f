package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/config"
)

// foliaFlags override the document keys of the config file.
func foliaFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "include-text", Usage: "emit the whole document text in the paragraph"},
		&cli.BoolFlag{Name: "compact", Usage: "write the XML in a single line"},
		&cli.IntFlag{Name: "indent", Usage: "spaces per indentation level"},
		&cli.StringFlag{Name: "encoding", Usage: "output character encoding (IANA name)"},
		&cli.BoolFlag{Name: "duplicate-text", Usage: "emit a second bare <t> for tokens without offset"},
		&cli.StringFlag{Name: "generator", Usage: "generator attribute of the root element"},
		&cli.StringFlag{Name: "language", Usage: "language of the metadata block"},
	}
}

func batchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Usage: "directory of the FoLiA files"},
		&cli.StringFlag{Name: "extension", Usage: "extension of the FoLiA files"},
		&cli.BoolFlag{Name: "replace-extension", Usage: "strip the input extension"},
		&cli.BoolFlag{Name: "no-clobber", Usage: "skip inputs whose output file exists"},
		&cli.BoolFlag{Name: "continue-on-error", Usage: "count failures instead of stopping"},
		&cli.IntFlag{Name: "threads", Aliases: []string{"t"}, Usage: "number of conversion workers"},
		&cli.StringFlag{Name: "exclude-file", Usage: "file with names of inputs to skip, one per line"},
	}
}

// loadConfig reads the config file and applies the flags set on the command
// line over it.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg, err := config.Load(config.Path(c.String("config")))
	if err != nil {
		return config.Config{}, err
	}

	if c.IsSet("include-text") {
		cfg.IncludeText = c.Bool("include-text")
	}
	if c.IsSet("compact") {
		cfg.Pretty = !c.Bool("compact")
	}
	if c.IsSet("indent") {
		cfg.Indent = c.Int("indent")
	}
	if c.IsSet("encoding") {
		cfg.Encoding = c.String("encoding")
	}
	if c.IsSet("duplicate-text") {
		cfg.DuplicateText = c.Bool("duplicate-text")
	}
	if c.IsSet("generator") {
		cfg.Generator = c.String("generator")
	}
	if c.IsSet("language") {
		cfg.Language = c.String("language")
	}

	if c.IsSet("output-dir") {
		cfg.Batch.OutputDir = c.String("output-dir")
	}
	if c.IsSet("extension") {
		cfg.Batch.Extension = c.String("extension")
	}
	if c.IsSet("replace-extension") {
		cfg.Batch.ReplaceExtension = c.Bool("replace-extension")
	}
	if c.IsSet("no-clobber") {
		cfg.Batch.NoClobber = c.Bool("no-clobber")
	}
	if c.IsSet("continue-on-error") {
		cfg.Batch.ContinueOnError = c.Bool("continue-on-error")
	}
	if c.IsSet("threads") {
		cfg.Batch.Threads = c.Int("threads")
	}
	if c.IsSet("exclude-file") {
		cfg.Batch.ExcludeFile = c.String("exclude-file")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}
