package folia

import (
	"fmt"
	"strconv"

	sent "github.com/revelaction/segfolia/sentence"
)

const (
	Namespace      = "http://ilk.uvt.nl/folia"
	XLinkNamespace = "http://www.w3.org/1999/xlink"

	Version          = "1.4.0"
	DefaultGenerator = "CoreNLP2FoLiA"

	// UntitledID is the xml:id of the root element
	UntitledID = "untitled"
)

// Options control the conversion. Pretty, Indent and Encoding are not used
// by Build, they are carried for the renderer.
type Options struct {
	// Emit the whole document text in the paragraph
	IncludeText bool

	Pretty   bool
	Indent   int
	Encoding string

	// Value of the generator attribute of the root element
	Generator string

	Metadata Metadata

	// DuplicateText emits a second, bare <t> element for tokens without
	// offset, as older FoLiA exports of the CoreNLP pipeline did.
	DuplicateText bool
}

// DefaultOptions returns the options of a pretty printed UTF-8 document.
func DefaultOptions() Options {
	return Options{
		Pretty:    true,
		Indent:    2,
		Encoding:  "UTF-8",
		Generator: DefaultGenerator,
		Metadata:  DefaultMetadata(),
	}
}

// Build converts the annotation graph doc into a FoLiA document.
//
// Optional fields absent from doc produce no element or attribute. The
// only error is ErrMalformedGraph, for a sentence without token list.
func Build(doc sent.Doc, opts Options) (*Document, error) {
	generator := opts.Generator
	if generator == "" {
		generator = DefaultGenerator
	}

	root := NewElement("FoLiA")
	root.SetAttr(AttrID, UntitledID)
	root.SetAttr("version", Version)
	root.SetAttr("generator", generator)
	root.SetAttr("xmlns", Namespace)
	root.SetAttr("xmlns:xlink", XLinkNamespace)

	root.Append(opts.Metadata.withDefaults().Element())

	text := root.Append(NewElement("text"))

	appendOptional(text, "docId", doc.DocId)
	appendOptional(text, "docDate", doc.DocDate)
	appendOptional(text, "docSourceType", doc.DocSourceType)
	appendOptional(text, "docType", doc.DocType)
	appendOptional(text, "author", doc.Author)
	appendOptional(text, "location", doc.Location)

	// All sentences go into one paragraph.
	p, err := buildParagraph(doc, ParagraphID, opts)
	if err != nil {
		return nil, err
	}
	text.Append(p)

	return &Document{Root: root}, nil
}

func buildParagraph(doc sent.Doc, paragraphID string, opts Options) (*Element, error) {
	p := NewElement("p").SetAttr(AttrID, paragraphID)

	if opts.IncludeText {
		appendOptional(p, "t", doc.Text)
	}

	for i, s := range doc.Sentences {
		se, err := buildSentence(s, SentenceID(paragraphID, i+1), opts)
		if err != nil {
			return nil, err
		}
		p.Append(se)
	}

	return p, nil
}

func buildSentence(s sent.Sentence, sentenceID string, opts Options) (*Element, error) {
	if s.Tokens == nil {
		return nil, fmt.Errorf("%w: sentence %s has no token list", ErrMalformedGraph, sentenceID)
	}

	se := NewElement("s").SetAttr(AttrID, sentenceID)
	if s.Line != nil {
		se.SetAttr("line", strconv.Itoa(*s.Line))
	}

	for j, tok := range s.Tokens {
		se.Append(buildWord(tok, WordID(sentenceID, j+1), opts))
	}

	se.Append(buildEntities(s.Tokens, sentenceID))
	return se, nil
}

func buildWord(tok sent.Token, wordID string, opts Options) *Element {
	w := NewElement("w").SetAttr(AttrID, wordID)

	t := NewTextElement("t", tok.Text)
	if tok.Offset != nil {
		t.SetAttr("offset", strconv.Itoa(*tok.Offset))
	} else if opts.DuplicateText {
		w.Append(NewTextElement("t", tok.Text))
	}
	w.Append(t)

	if tok.Lemma != nil {
		w.Append(NewElement("lemma").SetAttr("class", *tok.Lemma))
	}

	if tok.Pos != nil {
		w.Append(NewElement("pos").SetAttr("class", *tok.Pos).SetAttr("head", *tok.Pos))
	}

	return w
}

// buildEntities returns one entity per token with a named-entity tag. Word
// references are composed from sentenceID, not from the block id.
func buildEntities(tokens []sent.Token, sentenceID string) *Element {
	entitiesID := EntitiesID(sentenceID)
	entities := NewElement("entities").SetAttr(AttrID, entitiesID)

	counter := 1
	for j, tok := range tokens {
		if !tok.IsEntity() {
			continue
		}

		entity := NewElement("entity")
		entity.SetAttr(AttrID, EntityID(entitiesID, counter))
		entity.SetAttr("class", *tok.Ner)

		wref := NewElement("wref")
		wref.SetAttr("id", WordID(sentenceID, j+1))
		wref.SetAttr("t", tok.Text)
		entity.Append(wref)

		entities.Append(entity)
		counter++
	}

	return entities
}

// appendOptional appends <name>value</name> to parent when value is set.
func appendOptional(parent *Element, name string, value *string) {
	if value == nil {
		return
	}
	parent.Append(NewTextElement(name, *value))
}
