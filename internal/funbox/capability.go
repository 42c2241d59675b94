package funbox

import (
	"github.com/verte-zerg/typegen/internal/random"
	"github.com/verte-zerg/typegen/internal/wordset"
)

// Hook identifies a kind of behavior a funbox may provide.
type Hook int

// Hook kinds.
const (
	HookGetWord Hook = iota
	HookPullSection
	HookWithWords
	HookAlterText
	HookPunctuateWord
	HookHandleChar
	HookIsCharCorrect
	HookGetWordHTML
	HookApplyGlobalCSS
	HookWordsFrequency
)

var hookNames = map[Hook]string{
	HookGetWord:        "getWord",
	HookPullSection:    "pullSection",
	HookWithWords:      "withWords",
	HookAlterText:      "alterText",
	HookPunctuateWord:  "punctuateWord",
	HookHandleChar:     "handleChar",
	HookIsCharCorrect:  "isCharCorrect",
	HookGetWordHTML:    "getWordHtml",
	HookApplyGlobalCSS: "applyGlobalCSS",
	HookWordsFrequency: "getWordsFrequencyMode",
}

func (h Hook) String() string {
	return hookNames[h]
}

// Capability is one behavior provided by a funbox.
type Capability interface {
	Hook() Hook
}

// WordContext is what a GetWord capability may draw from.
type WordContext struct {
	Rand      random.Rand
	Wordset   *wordset.Wordset
	Language  string
	Index     int
	WeakChars map[rune]struct{}
}

// GetWord replaces the drawn candidate with a word of its own.
type GetWord func(ctx WordContext) string

// PullSection names the section source a funbox draws whole blocks from.
type PullSection struct {
	Source string
}

// WithWords builds the wordset from the language words.
type WithWords func(words []string, r random.Rand) *wordset.Wordset

// AlterText rewrites a finished word.
type AlterText func(word string, r random.Rand) string

// PunctuateWord replaces the default punctuation stage.
type PunctuateWord func(word string, r random.Rand) string

// HandleChar remaps a typed character.
type HandleChar func(typed rune) rune

// IsCharCorrect decides whether typed matches expected.
type IsCharCorrect func(typed, expected rune) bool

// GetWordHTML renders one expected character for display.
type GetWordHTML func(ch rune) string

// ApplyGlobalCSS returns the name of a global display effect.
type ApplyGlobalCSS func() string

// WordsFrequency selects how words are drawn from the wordset.
type WordsFrequency func() wordset.Frequency

// Hook implements Capability.
func (GetWord) Hook() Hook { return HookGetWord }

// Hook implements Capability.
func (PullSection) Hook() Hook { return HookPullSection }

// Hook implements Capability.
func (WithWords) Hook() Hook { return HookWithWords }

// Hook implements Capability.
func (AlterText) Hook() Hook { return HookAlterText }

// Hook implements Capability.
func (PunctuateWord) Hook() Hook { return HookPunctuateWord }

// Hook implements Capability.
func (HandleChar) Hook() Hook { return HookHandleChar }

// Hook implements Capability.
func (IsCharCorrect) Hook() Hook { return HookIsCharCorrect }

// Hook implements Capability.
func (GetWordHTML) Hook() Hook { return HookGetWordHTML }

// Hook implements Capability.
func (ApplyGlobalCSS) Hook() Hook { return HookApplyGlobalCSS }

// Hook implements Capability.
func (WordsFrequency) Hook() Hook { return HookWordsFrequency }
