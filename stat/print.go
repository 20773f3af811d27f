package stat

import (
	"fmt"
	"io"
	"sort"
)

// Fprint writes the stats in human readable form. Entity classes are
// printed by descending count, then by name.
func Fprint(w io.Writer, s Stats) error {
	if _, err := fmt.Fprintf(w, "Num sentences %d, num tokens %d, num tokens per sentence %d\n",
		s.NumSentences, s.NumTokens, s.TokensPerSentenceMean); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Num entities %d\n", s.NumEntities); err != nil {
		return err
	}

	classes := make([]string, 0, len(s.EntityClasses))
	for class := range s.EntityClasses {
		classes = append(classes, class)
	}
	sort.Slice(classes, func(i, j int) bool {
		ci, cj := s.EntityClasses[classes[i]], s.EntityClasses[classes[j]]
		if ci != cj {
			return ci > cj
		}
		return classes[i] < classes[j]
	})

	for _, class := range classes {
		if _, err := fmt.Fprintf(w, "  %-14s %d\n", class, s.EntityClasses[class]); err != nil {
			return err
		}
	}
	return nil
}
