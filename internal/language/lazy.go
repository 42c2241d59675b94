package language

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Letters that do not decompose into a base letter plus combining marks.
var foldReplacer = strings.NewReplacer(
	"ß", "ss",
	"æ", "ae", "Æ", "Ae",
	"œ", "oe", "Œ", "Oe",
	"ø", "o", "Ø", "O",
	"ł", "l", "Ł", "L",
	"đ", "d", "Đ", "D",
	"ı", "i",
	"ð", "d", "þ", "th",
)

// FoldAccents replaces diacritics with their base characters. additional
// holds language specific [from, to] pairs applied first.
func FoldAccents(word string, additional [][2]string) string {
	for _, pair := range additional {
		if pair[0] != "" {
			word = strings.ReplaceAll(word, pair[0], pair[1])
		}
	}
	word = foldReplacer.Replace(word)
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, word)
	if err != nil {
		return word
	}
	return folded
}

// LazyMode applies accent folding when enabled and the language allows it.
// Custom text always allows lazy mode.
func LazyMode(word string, lang *Language, enabled, customMode bool) string {
	if !enabled || lang == nil {
		return word
	}
	if lang.NoLazyMode && !customMode {
		return word
	}
	return FoldAccents(word, lang.AdditionalAccents)
}
