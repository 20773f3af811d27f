package storage

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/segfolia/sentence"
)

type memStore struct {
	docs    []sent.Doc
	failOn  string
	written []sent.Doc
}

func (m *memStore) List() ([]sent.Doc, error) {
	var out []sent.Doc
	for i, d := range m.docs {
		out = append(out, sent.Doc{Id: i, Title: d.Title})
	}
	return out, nil
}

func (m *memStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(m.docs) {
		return sent.Doc{}, ErrNotFound
	}
	doc := m.docs[id]
	doc.Title = ""
	return doc, nil
}

func (m *memStore) Write(doc sent.Doc) error {
	if doc.Title == m.failOn {
		return errors.New("write failed")
	}
	m.written = append(m.written, doc)
	return nil
}

func TestCopy(t *testing.T) {
	src := &memStore{docs: []sent.Doc{
		{Title: "a.json", Author: sent.String("A")},
		{Title: "b.json"},
	}}
	dst := &memStore{}

	var calls []int
	n, err := Copy(src, dst, func(current, total int, title string) {
		assert.Equal(t, 2, total)
		calls = append(calls, current)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []int{1, 2}, calls)

	require.Len(t, dst.written, 2)
	assert.Equal(t, "a.json", dst.written[0].Title)
	assert.Equal(t, "A", *dst.written[0].Author)
}

func TestCopyStopsOnWriteError(t *testing.T) {
	src := &memStore{docs: []sent.Doc{{Title: "a.json"}, {Title: "b.json"}, {Title: "c.json"}}}
	dst := &memStore{failOn: "b.json"}

	n, err := Copy(src, dst, nil)
	require.Error(t, err)
	assert.Equal(t, 1, n)
}
