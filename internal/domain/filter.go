// Package domain holds the core vocabulary-curation types and predicates:
// the kana classifier, the word-list filter engine, and the known-set
// projection. Everything here is pure and operates on in-memory values.
package domain

// WordSet is a membership set of words or single-character strings.
type WordSet map[string]struct{}

// NewWordSet builds a WordSet from a word list.
func NewWordSet(words []string) WordSet {
	set := make(WordSet, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// Contains reports membership of word in the set.
func (s WordSet) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// filterWords keeps the words for which keep(word) XOR invert is true.
// The input slice is never mutated; output preserves input order.
func filterWords(words []string, invert bool, keep func(string) bool) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if keep(w) != invert {
			out = append(out, w)
		}
	}
	return out
}

// FilterKnownVocabulary keeps words that are not in the known vocabulary
// set, producing the "still to learn" list. With invert it keeps only the
// words that are known.
func FilterKnownVocabulary(words []string, known WordSet, invert bool) []string {
	return filterWords(words, invert, func(w string) bool {
		return !known.Contains(w)
	})
}

// FilterKnownCharacters keeps words containing at least one character that
// is neither kana nor a known kanji. With invert it keeps only fully
// readable words. An empty kanji set makes this equivalent to
// FilterKanaOnly.
func FilterKnownCharacters(words []string, knownKanji WordSet, invert bool) []string {
	return filterWords(words, invert, func(w string) bool {
		return !readable(w, knownKanji)
	})
}

// FilterKanaOnly keeps words that contain at least one non-kana character.
// With invert it keeps only kana-only words.
func FilterKanaOnly(words []string, invert bool) []string {
	return filterWords(words, invert, func(w string) bool {
		return !KanaOnly(w)
	})
}

// readable reports whether every character of word is either kana or a
// known kanji. Scanning stops at the first unlearned character.
func readable(word string, knownKanji WordSet) bool {
	for _, r := range word {
		if IsKana(r) {
			continue
		}
		if !knownKanji.Contains(string(r)) {
			return false
		}
	}
	return true
}
