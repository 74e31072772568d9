package domain

// kanaRunes enumerates every character treated as kana: the hiragana and
// katakana syllabaries including small forms and voiced variants, plus
// the katakana middle dot and the prolonged sound mark.
const kanaRunes = "ぁあぃいぅうゔぇえぉおゕかがきぎくぐゖけげ" +
	"こごさざしじすずせぜそぞただちぢっつづてで" +
	"とどなにぬねのはばぱひびぴふぶぷへべぺほぼ" +
	"ぽまみむめもゃやゅゆょよらりるれろゎわゐゑ" +
	"をんァアィイゥウヴェエォオヵカガキギクグヶ" +
	"ケゲコゴサザシジスズセゼソゾタダチヂッツヅ" +
	"テデトドナニヌネノハバパヒビピフブプヘベペ" +
	"ホボポマミムメモャヤュユョヨラリルレロヮワ" +
	"ヷヰヸヱヹヲヺン・ー"

var kanaSet = func() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, r := range kanaRunes {
		set[r] = struct{}{}
	}
	return set
}()

// IsKana reports whether r is a kana character.
func IsKana(r rune) bool {
	_, ok := kanaSet[r]
	return ok
}

// KanaOnly reports whether every character of word is kana. The empty
// word is vacuously kana-only.
func KanaOnly(word string) bool {
	for _, r := range word {
		if !IsKana(r) {
			return false
		}
	}
	return true
}
