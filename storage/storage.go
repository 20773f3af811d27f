package storage

import (
	"errors"

	sent "github.com/revelaction/segfolia/sentence"
)

// ErrNotFound is returned when a doc id does not exist in the storage.
var ErrNotFound = errors.New("doc not found")

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of all documents, ordered
	// by title. Sentences are not loaded.
	List() ([]sent.Doc, error)

	// Read returns a complete document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences to storage
	Write(doc sent.Doc) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Copy writes every doc of src to dst. The callback, if not nil, is called
// after each doc with the number of docs copied so far and the total.
func Copy(src DocReader, dst DocWriter, cb func(current, total int, title string)) (int, error) {
	docs, err := src.List()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, meta := range docs {
		doc, err := src.Read(meta.Id)
		if err != nil {
			return count, err
		}
		doc.Title = meta.Title

		if err := dst.Write(doc); err != nil {
			return count, err
		}
		count++

		if cb != nil {
			cb(count, len(docs), meta.Title)
		}
	}

	return count, nil
}
