package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

func exportDocCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "export the docs of a sqlite database to a directory of JSON docs",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source sqlite database file", Required: true},
			&cli.StringFlag{Name: "to", Usage: "target directory", Required: true},
		},
		Action: func(c *cli.Context) error {
			return exportDoc(c.String("from"), c.String("to"), ui)
		},
	}
}

func exportDoc(from, to string, ui UI) error {
	var p Pool
	defer p.Close()

	src, err := NewDocRepository(&p, from)
	if err != nil {
		return err
	}

	dst, err := createDocDir(to)
	if err != nil {
		return err
	}

	count, err := copyDocs(src, dst, ui)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d docs from %s to %s\n", count, from, to)
	return nil
}
