package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/config"
	"github.com/revelaction/segfolia/logger"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	if err := newApp(ui).Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "segfolia: %v\n", err)
}

func newApp(ui UI) *cli.App {
	app := &cli.App{
		Name:        "segfolia",
		Usage:       "convert NLP annotation docs to FoLiA XML",
		Writer:      ui.Out,
		ErrWriter:   ui.Err,
		HideVersion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "TOML config file (default $" + config.EnvPath + ")",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "print debug and info messages",
			},
		},
		Before: func(c *cli.Context) error {
			logger.SetVerbose(c.Bool("verbose"))
			return nil
		},
	}

	app.Commands = []*cli.Command{
		convertCommand(ui),
		batchCommand(ui),
		watchCommand(ui),
		docCommand(ui),
		statCommand(ui),
		importDocCommand(ui),
		exportDocCommand(ui),
		browseCommand(ui),
		versionCommand(ui),
		bashCommand(ui),
		completeCommand(app, ui),
	}

	return app
}
