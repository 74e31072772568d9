// Package corpus reconciles frequency-ranked corpus extracts into a single
// deduplicated candidate word list. The primary corpus supplies words in
// frequency order; the secondary corpus only contributes an exclusion set.
package corpus

// Entry is one row of a frequency-ranked corpus extract, normalized to the
// lemma/reading/type layout shared by both sources. Ordering of an Entry
// slice is frequency rank, most frequent first.
type Entry struct {
	Lemma   string
	Reading string
	Type    string
}
