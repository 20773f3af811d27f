package sentence

import "strings"

// EntitySentinel is the named-entity tag meaning "not part of any entity".
const EntitySentinel = "O"

// Doc is one analyzed document as produced by the upstream NLP pipeline.
//
// All document-level annotations are optional: a nil pointer means the
// pipeline did not set the field.
type Doc struct {
	// Id, Title and Labels identify the doc inside a storage, they are never
	// part of the converted output.
	Id     int      `json:"-"`
	Title  string   `json:"title,omitempty"`
	Labels []string `json:"labels,omitempty"`

	DocId         *string `json:"doc_id,omitempty"`
	DocDate       *string `json:"doc_date,omitempty"`
	DocSourceType *string `json:"doc_source_type,omitempty"`
	DocType       *string `json:"doc_type,omitempty"`
	Author        *string `json:"author,omitempty"`
	Location      *string `json:"location,omitempty"`

	// The whole text of the document
	Text *string `json:"text,omitempty"`

	Sentences []Sentence `json:"sentences"`
}

// Library is a collection of Doc
type Library []Doc

// Sentence is an ordered list of tokens.
type Sentence struct {
	// Line number of the sentence in the source text
	Line *int `json:"line,omitempty"`

	Tokens []Token `json:"tokens"`
}

// Token represents a word of the sentence, with POS and metadata.
type Token struct {
	// The unmodified word
	Text string `json:"text"`

	// the index of the start character of the token in the original doc
	Offset *int `json:"offset,omitempty"`

	// The lemma of the word
	Lemma *string `json:"lemma,omitempty"`

	// Part of speech tag
	Pos *string `json:"pos,omitempty"`

	// Named entity tag (PERSON, ORGANIZATION, ..., or O)
	Ner *string `json:"ner,omitempty"`
}

// IsEntity reports whether the token carries a named-entity tag other than
// the "O" sentinel (case-insensitive).
func (t Token) IsEntity() bool {
	if t.Ner == nil {
		return false
	}

	return !strings.EqualFold(*t.Ner, EntitySentinel)
}

// NumTokens returns the number of tokens of all sentences of the doc.
func (d Doc) NumTokens() int {
	n := 0
	for _, s := range d.Sentences {
		n += len(s.Tokens)
	}
	return n
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string {
	return &s
}

// Int returns a pointer to i, for filling optional fields.
func Int(i int) *int {
	return &i
}
