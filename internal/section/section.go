// Package section pulls externally sourced word blocks such as poems and
// encyclopedia excerpts.
package section

import (
	"context"
	"errors"
	"regexp"
	"strings"
)

// MaxWords is the default cap applied to pulled sections.
const MaxWords = 100

// ErrUnavailable is returned when a section could not be pulled.
var ErrUnavailable = errors.New("section unavailable")

var (
	bannedChars   = []string{"—", "_", " ", "​"}
	parenthetical = regexp.MustCompile(`\s*\([^)]*\)`)
	markup        = regexp.MustCompile(`<[^>]*>`)
)

// Section is a contiguous chunk of test content.
type Section struct {
	Title  string
	Author string
	Words  []string
}

// Source pulls one section for a language.
type Source interface {
	Pull(ctx context.Context, lang string) (Section, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, lang string) (Section, error)

// Pull implements Source.
func (f SourceFunc) Pull(ctx context.Context, lang string) (Section, error) {
	return f(ctx, lang)
}

// New builds a section from raw text, scrubbing banned characters, markup and
// parentheticals, and truncating to maxWords (no cap when maxWords <= 0).
func New(title, author, text string, maxWords int) Section {
	text = markup.ReplaceAllString(text, " ")
	text = parenthetical.ReplaceAllString(text, "")
	for _, ch := range bannedChars {
		text = strings.ReplaceAll(text, ch, " ")
	}
	words := strings.Fields(text)
	if maxWords > 0 && len(words) > maxWords {
		words = words[:maxWords]
	}
	return Section{Title: title, Author: author, Words: words}
}

var wikiCodes = map[string]string{
	"english":    "en",
	"spanish":    "es",
	"german":     "de",
	"french":     "fr",
	"turkish":    "tr",
	"italian":    "it",
	"portuguese": "pt",
	"polish":     "pl",
	"dutch":      "nl",
	"russian":    "ru",
	"kurdish":    "ckb",
	"nepali":     "ne",
}

func wikiCode(lang string) string {
	family := strings.SplitN(lang, "_", 2)[0]
	if code, ok := wikiCodes[family]; ok {
		return code
	}
	return "en"
}
