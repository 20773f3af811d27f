package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/folia"
	"github.com/revelaction/segfolia/render"
	sent "github.com/revelaction/segfolia/sentence"
	"github.com/revelaction/segfolia/storage"
)

const (
	formatText = "text"
	formatXML  = "xml"
	formatJSON = "json"
)

func docCommand(ui UI) *cli.Command {
	flags := append(foliaFlags(),
		&cli.IntFlag{Name: "start", Aliases: []string{"s"}, Usage: "first sentence to print"},
		&cli.IntFlag{Name: "count", Aliases: []string{"c"}, Value: -1, Usage: "number of sentences to print"},
		&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: formatText, Usage: "text, xml or json"},
		&cli.BoolFlag{Name: "no-prefix", Usage: "do not prefix sentences with their index"},
	)

	return &cli.Command{
		Name:      "doc",
		Usage:     "list the docs of a repository, or print one",
		ArgsUsage: "<repo> [id]",
		Flags:     flags,
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return errors.New("doc requires a repository (directory or sqlite file)")
			}

			var p Pool
			defer p.Close()

			repo, err := NewDocRepository(&p, c.Args().First())
			if err != nil {
				return err
			}

			if c.NArg() == 1 {
				return listDocs(repo, ui)
			}

			id, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid doc id %q", c.Args().Get(1))
			}

			doc, err := repo.Read(id)
			if err != nil {
				return err
			}

			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}

			return renderDoc(doc, c.String("format"), c.Int("start"), c.Int("count"), !c.Bool("no-prefix"), cfg.FoliaOptions(), ui)
		},
	}
}

func listDocs(repo storage.DocReader, ui UI) error {
	docs, err := repo.List()
	if err != nil {
		return err
	}

	for _, d := range docs {
		fmt.Fprintf(ui.Out, "%d %s\n", d.Id, d.Title)
	}
	return nil
}

func renderDoc(doc sent.Doc, format string, start, count int, prefix bool, opts folia.Options, ui UI) error {
	switch format {
	case formatText:
		r := render.NewTextRenderer(ui.Out)
		r.HasPrefix = prefix
		return r.Render(doc, start, count)
	case formatXML:
		return render.NewXMLRenderer(ui.Out, opts).Convert(doc, opts)
	case formatJSON:
		return render.NewJSONRenderer(ui.Out).Render(doc)
	}

	return fmt.Errorf("unknown format: %s", format)
}
