package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/stat"
	"github.com/revelaction/segfolia/storage/filesystem"
)

func statCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "print sentence, token and entity counts",
		ArgsUsage: "<file.json|repo> [id]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("stat requires a doc file or a repository")
			}

			path := c.Args().First()
			hdl := stat.NewHandler()

			info, err := os.Stat(path)
			if err != nil {
				return err
			}

			// A single JSON doc file
			if !info.IsDir() && c.NArg() == 1 && isJSONFile(path) {
				doc, err := filesystem.ReadDoc(path)
				if err != nil {
					return err
				}
				hdl.Aggregate(doc)
				return stat.Fprint(ui.Out, hdl.Get())
			}

			var p Pool
			defer p.Close()

			repo, err := NewDocRepository(&p, path)
			if err != nil {
				return err
			}

			if c.NArg() > 1 {
				id, err := strconv.Atoi(c.Args().Get(1))
				if err != nil {
					return fmt.Errorf("invalid doc id %q", c.Args().Get(1))
				}
				doc, err := repo.Read(id)
				if err != nil {
					return err
				}
				hdl.Aggregate(doc)
				return stat.Fprint(ui.Out, hdl.Get())
			}

			docs, err := repo.List()
			if err != nil {
				return err
			}
			for _, meta := range docs {
				doc, err := repo.Read(meta.Id)
				if err != nil {
					return err
				}
				hdl.Aggregate(doc)
			}

			fmt.Fprintf(ui.Out, "Num docs %d\n", len(docs))
			return stat.Fprint(ui.Out, hdl.Get())
		},
	}
}

func isJSONFile(path string) bool {
	return filepath.Ext(path) == ".json"
}
