package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segfolia/storage"
)

func importDocCommand(ui UI) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "import a directory of annotation docs into a sqlite database",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Usage: "source directory of JSON docs", Required: true},
			&cli.StringFlag{Name: "to", Usage: "target sqlite database file", Required: true},
		},
		Action: func(c *cli.Context) error {
			return importDoc(c.String("from"), c.String("to"), ui)
		},
	}
}

func importDoc(from, to string, ui UI) error {
	info, err := os.Stat(from)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("import source %s is not a directory", from)
	}

	var srcPool, dstPool Pool
	defer srcPool.Close()
	defer dstPool.Close()

	src, err := NewDocRepository(&srcPool, from)
	if err != nil {
		return err
	}

	dst, err := createDocDB(&dstPool, to)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", from)
	count, err := copyDocs(src, dst, ui)
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, from, to)
	return nil
}

// copyDocs copies every doc of src into dst showing a progress bar.
func copyDocs(src storage.DocReader, dst storage.DocWriter, ui UI) (int, error) {
	docs, err := src.List()
	if err != nil {
		return 0, err
	}
	if len(docs) == 0 {
		return 0, nil
	}

	p, step := newProgress(ui, len(docs))
	defer p.Stop()

	return storage.Copy(src, dst, func(current, total int, title string) {
		step(title)
	})
}
