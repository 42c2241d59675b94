package wordlist

import (
	"strings"
	"unicode"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns a language-specific filter for word lists.
func FilterForLang(lang string) FilterFunc {
	lang = strings.ToLower(lang)
	switch {
	case lang == "english" || strings.HasPrefix(lang, "english_"):
		return filterEnglish
	case strings.HasPrefix(lang, "code"):
		return filterPrintable
	default:
		return filterLetters
	}
}

// Filter returns the words accepted by keep, preserving order.
func Filter(words []string, keep FilterFunc) []string {
	out := words[:0:0]
	for _, w := range words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return out
}

func filterEnglish(word string) bool {
	if word == "" {
		return false
	}
	for _, ch := range word {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch == '\'' || ch == '-' || ch == ' ':
		default:
			return false
		}
	}
	return true
}

func filterLetters(word string) bool {
	hasLetter := false
	for _, ch := range word {
		if unicode.IsControl(ch) {
			return false
		}
		if unicode.IsLetter(ch) || unicode.IsMark(ch) {
			hasLetter = true
		}
	}
	return hasLetter
}

func filterPrintable(word string) bool {
	if word == "" {
		return false
	}
	for _, ch := range word {
		if !unicode.IsPrint(ch) {
			return false
		}
	}
	return true
}
