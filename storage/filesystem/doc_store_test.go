package filesystem

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/segfolia/sentence"
	"github.com/revelaction/segfolia/storage"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestDocStoreListAndRead(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", `{"author":"B","sentences":[{"tokens":[{"text":"bee"}]}]}`)
	writeFile(t, dir, "a.json", `{"sentences":[{"tokens":[{"text":"ay"}]}]}`)
	writeFile(t, dir, "notes.txt", `ignored`)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0755))

	h, err := NewDocStore(dir)
	require.NoError(t, err)

	docs, err := h.List()
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a.json", docs[0].Title)
	assert.Equal(t, 0, docs[0].Id)
	assert.Equal(t, "b.json", docs[1].Title)
	assert.Nil(t, docs[1].Sentences)

	doc, err := h.Read(1)
	require.NoError(t, err)
	assert.Equal(t, "b.json", doc.Title)
	require.NotNil(t, doc.Author)
	assert.Equal(t, "B", *doc.Author)
	require.Len(t, doc.Sentences, 1)
	assert.Equal(t, "bee", doc.Sentences[0].Tokens[0].Text)
}

func TestDocStoreReadOutOfRange(t *testing.T) {
	h, err := NewDocStore(t.TempDir())
	require.NoError(t, err)

	_, err = h.Read(0)
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestDocStoreWrite(t *testing.T) {
	dir := t.TempDir()
	h, err := NewDocStore(dir)
	require.NoError(t, err)

	doc := sent.Doc{Title: "new", Sentences: []sent.Sentence{{Tokens: []sent.Token{{Text: "x"}}}}}
	require.NoError(t, h.Write(doc))
	assert.FileExists(t, filepath.Join(dir, "new.json"))

	docs, err := h.List()
	require.NoError(t, err)
	require.Len(t, docs, 1)

	got, err := h.Read(0)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Sentences[0].Tokens[0].Text)

	assert.Error(t, h.Write(sent.Doc{}))
}

func TestReadDocInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.json", `{`)

	_, err := ReadDoc(filepath.Join(dir, "bad.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON decoding error")
}

func TestReadDocDefaultTitle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.json", `{"sentences":[]}`)

	doc, err := ReadDoc(filepath.Join(dir, "doc.json"))
	require.NoError(t, err)
	assert.Equal(t, "doc.json", doc.Title)
}

func TestDocStoreWriteRejectsPathTitles(t *testing.T) {
	base := t.TempDir()
	dir := filepath.Join(base, "repo")
	require.NoError(t, os.Mkdir(dir, 0755))

	h, err := NewDocStore(dir)
	require.NoError(t, err)

	for _, title := range []string{"../escaped", "sub/doc.json", "/abs.json", ".."} {
		err := h.Write(sent.Doc{Title: title, Sentences: []sent.Sentence{{Tokens: []sent.Token{{Text: "x"}}}}})
		require.Error(t, err, title)
		assert.True(t, errors.Is(err, ErrInvalidTitle), title)
	}

	assert.NoFileExists(t, filepath.Join(base, "escaped.json"))
	assert.NoFileExists(t, "/abs.json")

	docs, err := h.List()
	require.NoError(t, err)
	assert.Empty(t, docs)
}
