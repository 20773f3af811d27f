package render

import (
	"fmt"
	"io"
	"strings"

	sent "github.com/revelaction/segfolia/sentence"
)

// TextRenderer prints the sentences of a doc as plain text, one per line.
type TextRenderer struct {
	W io.Writer

	HasPrefix bool
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w, HasPrefix: true}
}

// Render prints the sentences of doc in the range [start, start+count). A
// negative count prints to the end.
func (r *TextRenderer) Render(doc sent.Doc, start, count int) error {
	if start < 0 {
		start = 0
	}
	if start >= len(doc.Sentences) {
		return nil
	}

	sentences := doc.Sentences[start:]
	if count >= 0 && count < len(sentences) {
		sentences = sentences[:count]
	}

	for i, s := range sentences {
		prefix := ""
		if r.HasPrefix {
			prefix = fmt.Sprintf("✍  %d ", start+i)
		}
		if _, err := fmt.Fprintf(r.W, "%s%s\n", prefix, strings.ReplaceAll(SentenceString(s.Tokens), "\n", " ")); err != nil {
			return err
		}
	}

	return nil
}

// SentenceString returns the text of the tokens, spaced as in the original
// doc when the tokens carry offsets.
func SentenceString(tokens []sent.Token) string {
	var str strings.Builder
	var lastIdx, lastLen int
	for i, token := range tokens {
		l := len([]rune(token.Text))
		if i == 0 || token.Offset == nil {
			if i > 0 {
				str.WriteString(" ")
			}
			str.WriteString(token.Text)
			if token.Offset != nil {
				lastIdx = *token.Offset
			}
			lastLen = l
			continue
		}

		// Parts of a multi token word share the text and the offset, the
		// text is written once.
		diff := *token.Offset - lastIdx
		if diff > 0 {
			if gap := diff - lastLen; gap > 0 {
				str.WriteString(strings.Repeat(" ", gap))
			}
			str.WriteString(token.Text)
		}

		lastIdx = *token.Offset
		lastLen = l
	}

	return str.String()
}
