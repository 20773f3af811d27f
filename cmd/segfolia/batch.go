package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gosuri/uiprogress"
	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/batch"
)

func batchCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "batch",
		Usage:     "convert every annotation doc below a directory",
		ArgsUsage: "<input-dir>",
		Flags: append(append(foliaFlags(), batchFlags()...), &cli.BoolFlag{
			Name:  "no-progress",
			Usage: "do not show the progress bar",
		}),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("batch requires an input directory")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			inputDir := c.Args().First()
			opts, err := cfg.BatchOptions(inputDir)
			if err != nil {
				return err
			}

			files, err := batch.Files(inputDir)
			if err != nil {
				return err
			}

			conv := batch.NewConverter(opts, cfg.FoliaOptions())

			var progress *uiprogress.Progress
			if !c.Bool("no-progress") && len(files) > 0 {
				p, step := newProgress(ui, len(files))
				conv.OnProgress(func(r batch.Result) {
					step(filepath.Base(r.Input))
				})
				progress = p
			}

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()

			sum, err := conv.Run(ctx, files)
			if progress != nil {
				progress.Stop()
			}
			fmt.Fprintf(ui.Out, "Batch %s: %s\n", inputDir, sum)
			return err
		},
	}
}
