// Package browse is an interactive prompt over a doc repository.
package browse

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/revelaction/segfolia/folia"
	"github.com/revelaction/segfolia/render"
	sent "github.com/revelaction/segfolia/sentence"
	"github.com/revelaction/segfolia/stat"
	"github.com/revelaction/segfolia/storage"
)

const (
	cmdXML  = "xml"
	cmdText = "text"
	cmdStat = "stat"
	cmdQuit = "quit"
)

var commands = []prompt.Suggest{
	{Text: cmdXML, Description: "print the FoLiA XML of a doc"},
	{Text: cmdText, Description: "print the sentences of a doc"},
	{Text: cmdStat, Description: "print the stats of a doc"},
	{Text: cmdQuit, Description: "exit"},
}

type Handler struct {
	Repo    storage.DocReader
	Options folia.Options
	Out     io.Writer

	// title -> id
	titles map[string]int
}

func NewHandler(repo storage.DocReader, opts folia.Options, out io.Writer) *Handler {
	return &Handler{
		Repo:    repo,
		Options: opts,
		Out:     out,
	}
}

// Load reads the doc titles used for completion and lookup.
func (h *Handler) Load() error {
	docs, err := h.Repo.List()
	if err != nil {
		return err
	}

	h.titles = make(map[string]int, len(docs))
	for _, d := range docs {
		h.titles[d.Title] = d.Id
	}
	return nil
}

func (h *Handler) Run() error {
	if err := h.Load(); err != nil {
		return err
	}

	fmt.Fprintf(h.Out, "📚 %d docs. Commands: xml, text, stat <title>, 🔧 quit\n", len(h.titles))

	history := []string{}
	for {
		in := prompt.Input("      📄 ", h.Complete,
			prompt.OptionTitle("segfolia browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
		)

		in = strings.TrimSpace(in)
		if in == cmdQuit {
			return nil
		}
		if in == "" {
			continue
		}

		history = append(history, in)
		if err := h.Exec(in); err != nil {
			fmt.Fprintf(h.Out, "✍  %v\n", err)
		}
	}
}

// Exec runs one prompt line: a command followed by a doc title. A bare title,
// spaces included, prints the XML of the doc.
func (h *Handler) Exec(in string) error {
	line := strings.TrimSpace(in)

	cmd, title := cmdXML, line
	if _, ok := h.titles[line]; !ok {
		var found bool
		cmd, title, found = strings.Cut(line, " ")
		if !found {
			cmd, title = cmdXML, cmd
		}
		title = strings.TrimSpace(title)
	}

	switch cmd {
	case cmdXML, cmdText, cmdStat:
	default:
		return fmt.Errorf("unknown command: %s", cmd)
	}

	doc, err := h.doc(title)
	if err != nil {
		return err
	}

	switch cmd {
	case cmdText:
		return render.NewTextRenderer(h.Out).Render(doc, 0, -1)
	case cmdStat:
		hdl := stat.NewHandler()
		hdl.Aggregate(doc)
		return stat.Fprint(h.Out, hdl.Get())
	default:
		return render.NewXMLRenderer(h.Out, h.Options).Convert(doc, h.Options)
	}
}

func (h *Handler) doc(title string) (sent.Doc, error) {
	id, ok := h.titles[title]
	if !ok {
		return sent.Doc{}, fmt.Errorf("%w: %q", storage.ErrNotFound, title)
	}
	return h.Repo.Read(id)
}

// Complete suggests commands for the first word and doc titles after it.
func (h *Handler) Complete(in prompt.Document) []prompt.Suggest {
	before := in.TextBeforeCursor()
	if before == "" {
		return []prompt.Suggest{}
	}

	cmd, arg, found := strings.Cut(before, " ")
	if !found {
		return prompt.FilterHasPrefix(commands, cmd, true)
	}

	if cmd == cmdQuit {
		return []prompt.Suggest{}
	}

	return prompt.FilterHasPrefix(h.titleSuggestions(), strings.TrimLeft(arg, " "), true)
}

func (h *Handler) titleSuggestions() []prompt.Suggest {
	titles := make([]string, 0, len(h.titles))
	for title := range h.titles {
		titles = append(titles, title)
	}
	sort.Strings(titles)

	s := make([]prompt.Suggest, 0, len(titles))
	for _, title := range titles {
		s = append(s, prompt.Suggest{Text: title})
	}
	return s
}
