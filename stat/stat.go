package stat

import (
	sent "github.com/revelaction/segfolia/sentence"
)

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences          int
	NumTokens             int
	NumEntities           int
	TokensPerSentenceMean int
	TokensPerSentenceDis  map[int]int

	// Number of entity mentions per named-entity class
	EntityClasses map[string]int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	stats := Stats{
		TokensPerSentenceDis: map[int]int{},
		EntityClasses:        map[string]int{},
	}
	return &Handler{
		stats: stats,
	}
}

// Aggregate adds the counts of doc to the handler stats. It can be called
// for several docs.
func (h *Handler) Aggregate(doc sent.Doc) {
	h.stats.NumSentences += len(doc.Sentences)

	for _, sentence := range doc.Sentences {
		h.stats.NumTokens += len(sentence.Tokens)
		h.stats.TokensPerSentenceDis[len(sentence.Tokens)]++

		for _, token := range sentence.Tokens {
			if token.IsEntity() {
				h.stats.NumEntities++
				h.stats.EntityClasses[*token.Ner]++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = h.stats.NumTokens / h.stats.NumSentences
	}
}
