package filesystem

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	sent "github.com/revelaction/segfolia/sentence"
	"github.com/revelaction/segfolia/storage"
)

const docExt = ".json"

// ErrInvalidTitle is returned by Write for titles that are not a plain file
// name inside the store directory.
var ErrInvalidTitle = errors.New("invalid doc title")

// DocStore is a directory of JSON annotation docs. The doc id is the position
// of the file in the (sorted) directory listing.
type DocStore struct {
	docDir string

	docs []sent.Doc
}

var _ storage.DocRepository = (*DocStore)(nil)

// NewDocStore creates a filesystem document store.
func NewDocStore(docDir string) (*DocStore, error) {
	h := &DocStore{docDir: docDir}
	if err := h.load(); err != nil {
		return nil, err
	}
	return h, nil
}

func (h *DocStore) load() error {
	files, err := os.ReadDir(h.docDir)
	if err != nil {
		return err
	}

	h.docs = nil
	idx := 0
	for _, file := range files {
		if file.IsDir() || filepath.Ext(file.Name()) != docExt {
			continue
		}
		h.docs = append(h.docs, sent.Doc{
			Id:    idx,
			Title: file.Name(),
		})
		idx++
	}

	return nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	return h.docs, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("%w: %d", storage.ErrNotFound, id)
	}

	meta := h.docs[id]
	doc, err := ReadDoc(filepath.Join(h.docDir, meta.Title))
	if err != nil {
		return sent.Doc{}, err
	}

	doc.Id = meta.Id
	doc.Title = meta.Title
	return doc, nil
}

// Write stores doc as <Title>.json, replacing an existing file.
func (h *DocStore) Write(doc sent.Doc) error {
	name := doc.Title
	if name == "" {
		return fmt.Errorf("doc without title can not be written to %s", h.docDir)
	}
	if filepath.Base(name) != name || !filepath.IsLocal(name) {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, name)
	}
	if !strings.HasSuffix(name, docExt) {
		name += docExt
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	path := filepath.Join(h.docDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	return h.load()
}

// ReadDoc reads a Doc JSON from the given path and unmarshals it.
func ReadDoc(path string) (sent.Doc, error) {
	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	if doc.Title == "" {
		doc.Title = filepath.Base(path)
	}

	return doc, nil
}
