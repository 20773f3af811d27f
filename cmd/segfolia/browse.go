package main

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/browse"
)

func browseCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "browse",
		Usage:     "interactive prompt to print the docs of a repository",
		ArgsUsage: "<repo>",
		Flags:     foliaFlags(),
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("browse requires a repository (directory or sqlite file)")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			var p Pool
			defer p.Close()

			repo, err := NewDocRepository(&p, c.Args().First())
			if err != nil {
				return err
			}

			return browse.NewHandler(repo, cfg.FoliaOptions(), ui.Out).Run()
		},
	}
}
