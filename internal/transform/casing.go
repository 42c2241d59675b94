package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	xlanguage "golang.org/x/text/language"

	"github.com/verte-zerg/typegen/internal/language"
)

var turkishUpper = cases.Upper(xlanguage.Turkish)

// Capitalize upper-cases the first letter of word. Turkish maps i to İ.
func Capitalize(word, lang string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	if language.Family(lang) == "turkish" {
		return turkishUpper.String(string(runes[0])) + string(runes[1:])
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Foldable reports whether words of lang may be lower-cased.
func Foldable(lang string) bool {
	switch language.Family(lang) {
	case "german", "swiss", "code", "klingon":
		return false
	}
	return true
}

// Fold lower-cases word.
func Fold(word string) string {
	return strings.ToLower(word)
}
