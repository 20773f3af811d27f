package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/folia"
	"github.com/revelaction/segfolia/logger"
	"github.com/revelaction/segfolia/render"
	"github.com/revelaction/segfolia/storage/filesystem"
)

func convertCommand(ui UI) *cli.Command {
	flags := append(foliaFlags(), &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "write the XML to file instead of stdout",
	})

	return &cli.Command{
		Name:      "convert",
		Usage:     "convert one annotation doc to FoLiA XML",
		ArgsUsage: "<file.json>",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() != 1 {
				return errors.New("convert requires exactly one annotation doc file")
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			return convert(c.Args().First(), c.String("output"), cfg.FoliaOptions(), ui)
		},
	}
}

func convert(path, output string, opts folia.Options, ui UI) error {
	doc, err := filesystem.ReadDoc(path)
	if err != nil {
		absPath, _ := filepath.Abs(path)
		return fmt.Errorf("filesystem document %q: %w", absPath, err)
	}

	// Nothing is written unless the whole document serializes.
	var buf bytes.Buffer
	if err := render.NewXMLRenderer(&buf, opts).Convert(doc, opts); err != nil {
		return err
	}

	if output == "" {
		_, err := ui.Out.Write(buf.Bytes())
		return err
	}

	logger.Info("writing %s", output)
	return os.WriteFile(output, buf.Bytes(), 0644)
}
