// Package studylist curates study lists: it loads the user's known kanji
// and vocabulary from the WaniKani snapshot, takes the top of the current
// frequency list and applies the requested word filters.
package studylist

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hikarukin/waniwords/internal/domain"
)

// SubjectStore reads the cached WaniKani snapshot.
type SubjectStore interface {
	Subjects(ctx context.Context, kind domain.SubjectKind) (map[int64]string, error)
	Assignments(ctx context.Context, kind domain.SubjectKind) (map[int64]int, error)
}

// FrequencyStore reads the current frequency list.
type FrequencyStore interface {
	Take(ctx context.Context, n int) ([]string, error)
}

// Options selects which filters run and in which direction. Each filter
// can be disabled; Invert flips the kept and dropped halves.
type Options struct {
	Count int

	VocabularyFilter bool
	VocabularyInvert bool

	CharacterFilter bool
	CharacterInvert bool

	KanaFilter bool
	KanaInvert bool
}

// Service curates study lists over the snapshot and frequency stores.
type Service struct {
	log      *slog.Logger
	subjects SubjectStore
	freq     FrequencyStore
}

// New creates a new study-list service.
func New(log *slog.Logger, subjects SubjectStore, freq FrequencyStore) *Service {
	return &Service{
		log:      log.With(slog.String("service", "studylist")),
		subjects: subjects,
		freq:     freq,
	}
}

// KnownKanji returns the characters of every kanji subject the user has
// an assignment for.
func (s *Service) KnownKanji(ctx context.Context) ([]string, error) {
	return s.known(ctx, domain.SubjectKanji)
}

// KnownVocabulary returns the characters of every vocabulary subject the
// user has an assignment for.
func (s *Service) KnownVocabulary(ctx context.Context) ([]string, error) {
	return s.known(ctx, domain.SubjectVocabulary)
}

func (s *Service) known(ctx context.Context, kind domain.SubjectKind) ([]string, error) {
	assignments, err := s.subjects.Assignments(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s assignments: %w", kind, err)
	}
	catalog, err := s.subjects.Subjects(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("load %s subjects: %w", kind, err)
	}

	known, err := domain.ProjectKnown(assignments, catalog)
	if err != nil {
		return nil, fmt.Errorf("project known %s: %w", kind, err)
	}
	return known, nil
}

// Curate returns the first opts.Count frequency words with the selected
// filters applied, in frequency order.
func (s *Service) Curate(ctx context.Context, opts Options) ([]string, error) {
	words, err := s.freq.Take(ctx, opts.Count)
	if err != nil {
		return nil, fmt.Errorf("take frequency words: %w", err)
	}

	if opts.VocabularyFilter {
		knownVocab, err := s.KnownVocabulary(ctx)
		if err != nil {
			return nil, err
		}
		words = domain.FilterKnownVocabulary(words, domain.NewWordSet(knownVocab), opts.VocabularyInvert)
	}

	if opts.CharacterFilter {
		knownKanji, err := s.KnownKanji(ctx)
		if err != nil {
			return nil, err
		}
		words = domain.FilterKnownCharacters(words, domain.NewWordSet(knownKanji), opts.CharacterInvert)
	}

	if opts.KanaFilter {
		words = domain.FilterKanaOnly(words, opts.KanaInvert)
	}

	s.log.Debug("list curated",
		slog.Int("requested", opts.Count),
		slog.Int("returned", len(words)),
	)
	return words, nil
}
