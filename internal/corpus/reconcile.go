package corpus

import "strings"

// suruSuffix is the verbalizing suffix stripped from "suru verb" lemmas so
// that the verb and its noun stem collapse into one list entry.
const suruSuffix = "する"

// Options control reconciliation.
type Options struct {
	// PrimaryTypeBlacklist drops primary entries whose type tag matches
	// exactly.
	PrimaryTypeBlacklist []string

	// SecondaryTypeBlacklist marks secondary entries whose type tag
	// contains any of these substrings as exclusions.
	SecondaryTypeBlacklist []string

	// SymbolBlacklist drops primary entries whose lemma contains any of
	// these substrings.
	SymbolBlacklist []string

	// PrimaryCap stops the primary scan once this many entries have
	// survived filtering. Zero means no cap.
	PrimaryCap int

	// SecondaryCap stops the secondary scan after this many entries have
	// been examined, survivors or not. Zero means no cap.
	SecondaryCap int
}

type lemmaReading struct {
	lemma   string
	reading string
}

// Reconcile merges the two corpus extracts into an ordered, deduplicated
// candidate word list. Primary entries are filtered by type, empty lemma,
// and blacklisted symbols; secondary entries whose type matches the
// secondary blacklist exclude the matching (lemma, reading) pair; surviving
// lemmas have a trailing する stripped and are deduplicated first-occurrence
// -wins, preserving primary frequency order throughout.
//
// Exclusion matches against the pre-strip lemma while deduplication uses
// the post-strip lemma. Inputs are never mutated.
func Reconcile(primary, secondary []Entry, opts Options) []string {
	survivors := scanPrimary(primary, opts)
	excluded := scanSecondary(secondary, opts)

	seen := make(map[string]struct{}, len(survivors))
	words := make([]string, 0, len(survivors))
	for _, e := range survivors {
		if _, skip := excluded[lemmaReading{e.Lemma, e.Reading}]; skip {
			continue
		}
		lemma := e.Lemma
		if lemma != suruSuffix && strings.HasSuffix(lemma, suruSuffix) {
			lemma = strings.TrimSuffix(lemma, suruSuffix)
		}
		if _, dup := seen[lemma]; dup {
			continue
		}
		seen[lemma] = struct{}{}
		words = append(words, lemma)
	}
	return words
}

// scanPrimary walks the primary extract in frequency order and keeps
// entries that pass the type, empty-lemma, and symbol filters, up to
// PrimaryCap survivors.
func scanPrimary(primary []Entry, opts Options) []Entry {
	badTypes := make(map[string]struct{}, len(opts.PrimaryTypeBlacklist))
	for _, t := range opts.PrimaryTypeBlacklist {
		badTypes[t] = struct{}{}
	}

	var survivors []Entry
	for _, e := range primary {
		if _, bad := badTypes[e.Type]; bad || e.Lemma == "" {
			continue
		}
		if containsAny(e.Lemma, opts.SymbolBlacklist) {
			continue
		}
		survivors = append(survivors, e)
		if opts.PrimaryCap > 0 && len(survivors) == opts.PrimaryCap {
			break
		}
	}
	return survivors
}

// scanSecondary examines at most SecondaryCap secondary entries and
// collects the (lemma, reading) pairs whose type tag contains a
// blacklisted substring.
func scanSecondary(secondary []Entry, opts Options) map[lemmaReading]struct{} {
	excluded := make(map[lemmaReading]struct{})
	for i, e := range secondary {
		if opts.SecondaryCap > 0 && i == opts.SecondaryCap {
			break
		}
		for _, t := range opts.SecondaryTypeBlacklist {
			if strings.Contains(e.Type, t) {
				excluded[lemmaReading{e.Lemma, e.Reading}] = struct{}{}
				break
			}
		}
	}
	return excluded
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
