package transform

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/golangci/misspell"
)

var (
	britishWords = buildBritish()
	wordParts    = regexp.MustCompile(`^([^\p{L}\p{N}]*)(.*?)([^\p{L}\p{N}]*)$`)
)

func buildBritish() map[string]string {
	out := make(map[string]string, len(misspell.DictBritish)/2)
	for i := 0; i+1 < len(misspell.DictBritish); i += 2 {
		out[strings.ToLower(misspell.DictBritish[i])] = misspell.DictBritish[i+1]
	}
	return out
}

// British converts an American spelling to the British one, keeping leading
// and trailing punctuation and the capitalisation of the original. Hyphenated
// words are converted segment by segment.
func British(word string) string {
	if strings.Contains(word, "-") {
		parts := strings.Split(word, "-")
		for i, part := range parts {
			parts[i] = British(part)
		}
		return strings.Join(parts, "-")
	}
	m := wordParts.FindStringSubmatch(word)
	if m == nil || m[2] == "" {
		return word
	}
	uk, ok := britishWords[strings.ToLower(m[2])]
	if !ok {
		return word
	}
	return m[1] + matchCase(m[2], uk) + m[3]
}

func matchCase(src, dst string) string {
	if src == strings.ToUpper(src) && len([]rune(src)) > 1 {
		return strings.ToUpper(dst)
	}
	first := []rune(src)[0]
	if unicode.IsUpper(first) {
		runes := []rune(dst)
		runes[0] = unicode.ToUpper(runes[0])
		return string(runes)
	}
	return dst
}

// SwissGerman replaces sharp s, which Swiss German does not use.
func SwissGerman(word string) string {
	return strings.ReplaceAll(word, "ß", "ss")
}
