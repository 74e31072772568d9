package domain

import "fmt"

// SubjectKind distinguishes the two WaniKani subject datasets held in the
// snapshot cache.
type SubjectKind string

const (
	SubjectKanji      SubjectKind = "kanji"
	SubjectVocabulary SubjectKind = "vocabulary"
)

// ProjectKnown maps each assignment's subject id through the subject
// catalog and returns the known characters or words. Assignments only hold
// ids of subjects studied to at least the configured SRS stage, so the
// projection is the user's known set.
//
// An id missing from the catalog returns ErrInconsistentSnapshot; a partial
// known set must never be silently produced.
func ProjectKnown(assignments map[int64]int, subjects map[int64]string) ([]string, error) {
	known := make([]string, 0, len(assignments))
	for id := range assignments {
		s, ok := subjects[id]
		if !ok {
			return nil, fmt.Errorf("subject %d not in catalog: %w", id, ErrInconsistentSnapshot)
		}
		known = append(known, s)
	}
	return known, nil
}
