package corpus

import (
	"slices"
	"testing"
)

func TestReconcile_FiltersAndOrder(t *testing.T) {
	primary := []Entry{
		{Lemma: "勉強する", Reading: "べんきょうする", Type: "動詞"},
		{Lemma: "犬", Reading: "いぬ", Type: "名詞"},
	}

	got := Reconcile(primary, nil, Options{
		PrimaryTypeBlacklist: []string{"助詞"},
	})

	want := []string{"勉強", "犬"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}
}

func TestReconcile_PrimaryTypeBlacklistIsExactMatch(t *testing.T) {
	primary := []Entry{
		{Lemma: "は", Reading: "は", Type: "助詞"},
		{Lemma: "食べる", Reading: "たべる", Type: "動詞"},
		// Exact matching only: a tag merely containing 助詞 survives.
		{Lemma: "らしい", Reading: "らしい", Type: "形状詞-助動詞語幹"},
	}

	got := Reconcile(primary, nil, Options{
		PrimaryTypeBlacklist: []string{"助詞", "助動詞"},
	})

	want := []string{"食べる", "らしい"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}
}

func TestReconcile_DropsEmptyAndSymbolLemmas(t *testing.T) {
	primary := []Entry{
		{Lemma: "", Reading: "", Type: "名詞"},
		{Lemma: "１０％", Reading: "じゅっぱーせんと", Type: "名詞"},
		{Lemma: "水", Reading: "みず", Type: "名詞"},
	}

	got := Reconcile(primary, nil, Options{
		SymbolBlacklist: []string{"*", "％"},
	})

	want := []string{"水"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}
}

func TestReconcile_SecondaryExclusionMatchesLemmaAndReading(t *testing.T) {
	primary := []Entry{
		{Lemma: "屋", Reading: "や", Type: "名詞"},
		{Lemma: "屋", Reading: "おく", Type: "名詞"},
	}
	secondary := []Entry{
		// Substring match on the type tag records the pair.
		{Lemma: "屋", Reading: "や", Type: "接尾辞-名詞的"},
		// Non-blacklisted type contributes nothing.
		{Lemma: "屋", Reading: "おく", Type: "名詞"},
	}

	got := Reconcile(primary, secondary, Options{
		SecondaryTypeBlacklist: []string{"接尾辞"},
	})

	// Only the (屋, や) pair is excluded; the (屋, おく) homograph stays.
	want := []string{"屋"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}
}

func TestReconcile_SuruSuffixStripping(t *testing.T) {
	tests := []struct {
		name  string
		lemma string
		want  string
	}{
		{"suru verb is stripped to its stem", "勉強する", "勉強"},
		{"bare suru is kept", "する", "する"},
		{"non-suru ending is untouched", "食べる", "食べる"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reconcile([]Entry{{Lemma: tt.lemma, Reading: "x", Type: "動詞"}}, nil, Options{})
			if len(got) != 1 || got[0] != tt.want {
				t.Errorf("Reconcile(%q) = %v, want [%q]", tt.lemma, got, tt.want)
			}
		})
	}
}

// A lemma that strips down to an already-retained lemma is a duplicate;
// the earlier (more frequent) occurrence wins.
func TestReconcile_PostStripDeduplication(t *testing.T) {
	primary := []Entry{
		{Lemma: "勉強", Reading: "べんきょう", Type: "名詞"},
		{Lemma: "勉強する", Reading: "べんきょうする", Type: "動詞"},
		{Lemma: "勉強", Reading: "べんきょう", Type: "名詞"},
	}

	got := Reconcile(primary, nil, Options{})

	want := []string{"勉強"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}
}

// Exclusion matching uses the pre-strip lemma: an exclusion for the full
// suru form does not spare its stripped stem from other entries, and an
// exclusion listing only the stem does not catch the suru form.
func TestReconcile_ExclusionUsesPreStripLemma(t *testing.T) {
	primary := []Entry{
		{Lemma: "勉強する", Reading: "べんきょうする", Type: "動詞"},
	}
	secondary := []Entry{
		{Lemma: "勉強", Reading: "べんきょう", Type: "接尾辞"},
	}

	got := Reconcile(primary, secondary, Options{
		SecondaryTypeBlacklist: []string{"接尾辞"},
	})

	want := []string{"勉強"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}

	secondary = []Entry{
		{Lemma: "勉強する", Reading: "べんきょうする", Type: "接尾辞"},
	}
	got = Reconcile(primary, secondary, Options{
		SecondaryTypeBlacklist: []string{"接尾辞"},
	})
	if len(got) != 0 {
		t.Errorf("expected full-form exclusion to drop the entry, got %v", got)
	}
}

func TestReconcile_PrimaryCapCountsSurvivors(t *testing.T) {
	primary := []Entry{
		{Lemma: "は", Reading: "は", Type: "助詞"},
		{Lemma: "一", Reading: "いち", Type: "名詞"},
		{Lemma: "が", Reading: "が", Type: "助詞"},
		{Lemma: "二", Reading: "に", Type: "名詞"},
		{Lemma: "三", Reading: "さん", Type: "名詞"},
	}

	got := Reconcile(primary, nil, Options{
		PrimaryTypeBlacklist: []string{"助詞"},
		PrimaryCap:           2,
	})

	// The cap bounds survivors, not lines examined: discarded particles do
	// not consume it.
	want := []string{"一", "二"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}
}

func TestReconcile_SecondaryCapCountsExamined(t *testing.T) {
	primary := []Entry{
		{Lemma: "一", Reading: "いち", Type: "名詞"},
		{Lemma: "二", Reading: "に", Type: "名詞"},
	}
	secondary := []Entry{
		{Lemma: "一", Reading: "いち", Type: "接尾辞"},
		// Beyond the cap: never examined, so 二 survives.
		{Lemma: "二", Reading: "に", Type: "接尾辞"},
	}

	got := Reconcile(primary, secondary, Options{
		SecondaryTypeBlacklist: []string{"接尾辞"},
		SecondaryCap:           1,
	})

	want := []string{"二"}
	if !slices.Equal(got, want) {
		t.Errorf("Reconcile() = %v, want %v", got, want)
	}
}

func TestReconcile_DeterministicAndNonMutating(t *testing.T) {
	primary := []Entry{
		{Lemma: "勉強する", Reading: "べんきょうする", Type: "動詞"},
		{Lemma: "犬", Reading: "いぬ", Type: "名詞"},
		{Lemma: "犬", Reading: "いぬ", Type: "名詞"},
	}
	secondary := []Entry{
		{Lemma: "猫", Reading: "ねこ", Type: "接尾辞"},
	}
	opts := Options{SecondaryTypeBlacklist: []string{"接尾辞"}}

	primaryCopy := slices.Clone(primary)

	first := Reconcile(primary, secondary, opts)
	second := Reconcile(primary, secondary, opts)

	if !slices.Equal(first, second) {
		t.Errorf("runs differ: %v vs %v", first, second)
	}
	if !slices.Equal(primary, primaryCopy) {
		t.Errorf("primary input mutated: %v", primary)
	}

	seen := make(map[string]bool)
	for _, w := range first {
		if seen[w] {
			t.Errorf("duplicate word %q in output %v", w, first)
		}
		seen[w] = true
	}
}
