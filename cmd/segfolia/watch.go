package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/batch"
	"github.com/revelaction/segfolia/logger"
	"github.com/revelaction/segfolia/watch"
)

func watchCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "convert annotation docs as they are written to a directory",
		ArgsUsage: "<dir>",
		Flags:     append(foliaFlags(), batchFlags()...),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("watch requires a directory")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			dir := c.Args().First()
			opts, err := cfg.BatchOptions(dir)
			if err != nil {
				return err
			}
			conv := batch.NewConverter(opts, cfg.FoliaOptions())

			w, err := watch.NewWatcher(nil)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()

			events, err := w.Watch(ctx, dir)
			if err != nil {
				return err
			}

			fmt.Fprintf(ui.Out, "👀 watching %s, Ctrl+C to stop\n", dir)

			for ev := range events {
				logger.Debug("%s %s", ev.Path, ev.Operation)

				res := conv.ConvertFile(ev.Path)
				switch res.Status {
				case batch.Converted:
					fmt.Fprintf(ui.Out, "✍  %s -> %s\n", ev.Path, res.Output)
				case batch.Failed:
					logger.WithField("file", ev.Path).Errorf("conversion failed: %v", res.Err)
				}
			}

			return nil
		},
	}
}
