package stat

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sent "github.com/revelaction/segfolia/sentence"
)

func TestAggregate(t *testing.T) {
	doc := sent.Doc{Sentences: []sent.Sentence{
		{Tokens: []sent.Token{
			{Text: "Bob", Ner: sent.String("PERSON")},
			{Text: "works", Ner: sent.String("O")},
			{Text: "at"},
			{Text: "Acme", Ner: sent.String("ORGANIZATION")},
		}},
		{Tokens: []sent.Token{
			{Text: "Alice", Ner: sent.String("PERSON")},
			{Text: "."},
		}},
	}}

	h := NewHandler()
	h.Aggregate(doc)
	s := h.Get()

	assert.Equal(t, 2, s.NumSentences)
	assert.Equal(t, 6, s.NumTokens)
	assert.Equal(t, 3, s.NumEntities)
	assert.Equal(t, 3, s.TokensPerSentenceMean)
	assert.Equal(t, map[int]int{4: 1, 2: 1}, s.TokensPerSentenceDis)
	assert.Equal(t, map[string]int{"PERSON": 2, "ORGANIZATION": 1}, s.EntityClasses)
}

func TestAggregateEmptyDoc(t *testing.T) {
	h := NewHandler()
	h.Aggregate(sent.Doc{})

	s := h.Get()
	assert.Zero(t, s.NumSentences)
	assert.Zero(t, s.TokensPerSentenceMean)
}

func TestFprint(t *testing.T) {
	s := Stats{
		NumSentences:          2,
		NumTokens:             6,
		NumEntities:           3,
		TokensPerSentenceMean: 3,
		EntityClasses:         map[string]int{"ORGANIZATION": 1, "PERSON": 2, "LOCATION": 1},
	}

	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, s))

	want := "Num sentences 2, num tokens 6, num tokens per sentence 3\n" +
		"Num entities 3\n" +
		"  PERSON         2\n" +
		"  LOCATION       1\n" +
		"  ORGANIZATION   1\n"
	assert.Equal(t, want, buf.String())
}
