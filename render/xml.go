package render

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/revelaction/segfolia/folia"
	sent "github.com/revelaction/segfolia/sentence"
)

const (
	DefaultEncoding = "UTF-8"
	DefaultIndent   = 2
)

var (
	// ErrSerialize wraps any failure writing the document bytes.
	ErrSerialize = errors.New("serialization failed")

	ErrUnknownEncoding = errors.New("unknown encoding")
)

// XMLRenderer writes FoLiA documents to a writer.
type XMLRenderer struct {
	W io.Writer

	Pretty bool

	// Number of spaces per level when Pretty. Defaults to 2.
	Indent int

	// IANA name of the output character encoding. Defaults to UTF-8.
	// Characters the encoding cannot represent are written as character
	// references.
	Encoding string
}

// NewXMLRenderer creates a XMLRenderer writing to w with the rendering
// options carried by opts.
func NewXMLRenderer(w io.Writer, opts folia.Options) *XMLRenderer {
	return &XMLRenderer{
		W:        w,
		Pretty:   opts.Pretty,
		Indent:   opts.Indent,
		Encoding: opts.Encoding,
	}
}

// Convert builds the FoLiA document of doc and renders it.
func (r *XMLRenderer) Convert(doc sent.Doc, opts folia.Options) error {
	fd, err := folia.Build(doc, opts)
	if err != nil {
		return err
	}
	return r.Render(fd)
}

// Render writes the XML declaration and the document tree.
func (r *XMLRenderer) Render(doc *folia.Document) error {
	w, name, err := encodedWriter(r.W, r.Encoding)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "<?xml version=\"1.0\" encoding=\"%s\"?>\n", name); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	enc := xml.NewEncoder(w)
	if r.Pretty {
		indent := r.Indent
		if indent <= 0 {
			indent = DefaultIndent
		}
		enc.Indent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(doc.Root); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	return nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// encodedWriter returns a writer transcoding UTF-8 into the named encoding,
// and the canonical name of that encoding. Closing the writer flushes it, it
// never closes w.
func encodedWriter(w io.Writer, name string) (io.WriteCloser, string, error) {
	if name == "" || strings.EqualFold(name, "UTF-8") || strings.EqualFold(name, "UTF8") {
		return nopCloser{w}, DefaultEncoding, nil
	}

	e, err := ianaindex.IANA.Encoding(name)
	if err != nil || e == nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
	}

	canonical, err := ianaindex.MIME.Name(e)
	if err != nil || canonical == "" {
		if canonical, err = ianaindex.IANA.Name(e); err != nil || canonical == "" {
			canonical = name
		}
	}

	return transform.NewWriter(w, encoding.HTMLEscapeUnsupported(e.NewEncoder())), canonical, nil
}
