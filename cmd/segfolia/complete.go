package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"
)

// completeCommand handles the autocompletion requests triggered by the bash
// completion script.
func completeCommand(app *cli.App, ui UI) *cli.Command {
	return &cli.Command{
		Name:            "complete",
		Hidden:          true,
		SkipFlagParsing: true,
		Action: func(c *cli.Context) error {
			args := c.Args().Slice()
			if len(args) > 0 && args[0] == "--" {
				args = args[1:]
			}

			for _, s := range getCompletions(commandNames(app), args) {
				_, _ = fmt.Fprintln(ui.Out, s)
			}
			return nil
		},
	}
}

func commandNames(app *cli.App) []string {
	var names []string
	for _, cmd := range app.Commands {
		if !cmd.Hidden {
			names = append(names, cmd.Name)
		}
	}
	return names
}

func getCompletions(commands, args []string) []string {
	if len(args) < 1 {
		return nil
	}

	// args[0] is "segfolia" (binary name from COMP_WORDS[0])
	commandIndex := 1
	cursorIndex := len(args) - 1

	if cursorIndex != commandIndex {
		return nil
	}

	// User is typing the command itself
	lastWord := args[cursorIndex]
	var completions []string
	for _, c := range commands {
		if strings.HasPrefix(c, lastWord) {
			completions = append(completions, c)
		}
	}
	return completions
}
