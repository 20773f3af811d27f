package folia

import "strconv"

// ParagraphID is the id of the single paragraph of every document.
const ParagraphID = "doc.p.1"

// IDs are composed from the explicit parent id and a 1-based index.

func SentenceID(paragraphID string, n int) string {
	return paragraphID + ".s." + strconv.Itoa(n)
}

func WordID(sentenceID string, j int) string {
	return sentenceID + ".w." + strconv.Itoa(j)
}

// EntitiesID returns the id of the (only) entities block of a sentence.
func EntitiesID(sentenceID string) string {
	return sentenceID + ".entities.1"
}

func EntityID(entitiesID string, k int) string {
	return entitiesID + ".entity." + strconv.Itoa(k)
}
