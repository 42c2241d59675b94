package transform

import (
	"strings"

	"github.com/verte-zerg/typegen/internal/language"
	"github.com/verte-zerg/typegen/internal/random"
)

var (
	codeSpecials  = []string{"{", "}", "[", "]", "(", ")", ";", "=", "+", "%", "/"}
	cCodeSpecials = []string{
		"{", "}", "[", "]", "(", ")", ";", "=", "+", "%", "/",
		"/*", "*/", "//", "!=", "==", "<=", ">=", "||", "&&", "<<", ">>",
		"%=", "&=", "*=", "++", "+=", "--", "-=", "/=", "^=", "|=",
	}
	codeBrackets = [][2]string{{"(", ")"}, {"{", "}"}, {"[", "]"}, {"<", ">"}}
)

// English words that become a contraction when punctuation is on.
var contractions = map[string]string{
	"its":   "it's",
	"were":  "we're",
	"well":  "we'll",
	"lets":  "let's",
	"cant":  "can't",
	"wont":  "won't",
	"dont":  "don't",
	"ill":   "I'll",
	"shell": "she'll",
	"hell":  "he'll",
	"id":    "I'd",
}

// Punctuator injects language aware punctuation into a stream of words. It
// remembers the opening mark of Spanish and Catalan sentences so that the
// matching closing mark is used. A Punctuator serves one generation.
type Punctuator struct {
	rnd     random.Rand
	lang    string
	family  string
	closing string
}

// NewPunctuator returns a Punctuator for lang.
func NewPunctuator(r random.Rand, lang string) *Punctuator {
	return &Punctuator{rnd: r, lang: lang, family: language.Family(lang)}
}

// Punctuate decorates word, given the previously emitted word, the index of
// word in the test and the index limit.
func (p *Punctuator) Punctuate(previous, word string, index, max int) string {
	last := lastRune(previous)
	fam := p.family
	switch {
	case index == 0 || p.endsSentence(last):
		return p.startSentence(word)
	case (p.rnd.Float64() < 0.1 && last != '.' && last != ',' && index != max-2) || index == max-1:
		return p.endSentence(word)
	case p.rnd.Float64() < 0.01 && last != ',' && last != '.' && fam != "russian":
		return `"` + word + `"`
	case p.rnd.Float64() < 0.011 && last != ',' && last != '.' && fam != "russian" && fam != "ukrainian" && fam != "slovak":
		return "'" + word + "'"
	case p.rnd.Float64() < 0.012 && last != ',' && last != '.':
		return p.bracket(word)
	case p.rnd.Float64() < 0.013 && !strings.ContainsRune(",.;؛:；：", last):
		switch fam {
		case "french":
			return ":"
		case "greek":
			return word + "·"
		}
		return word + ":"
	case p.rnd.Float64() < 0.014 && last != ',' && last != '.' && previous != "-":
		return "-"
	case p.rnd.Float64() < 0.015 && !strings.ContainsRune(",.;؛；:", last):
		switch fam {
		case "french":
			return ";"
		case "greek":
			return word + "·"
		case "arabic", "kurdish":
			return word + "؛"
		case "chinese":
			return word + "；"
		}
		return word + ";"
	case p.rnd.Float64() < 0.2 && last != ',':
		switch fam {
		case "arabic", "urdu", "persian", "kurdish":
			return word + "،"
		case "japanese":
			return word + "、"
		case "chinese":
			return word + "，"
		}
		return word + ","
	case p.rnd.Float64() < 0.25 && fam == "code":
		if strings.HasPrefix(p.lang, "code_c") && p.lang != "code_css" {
			return random.Pick(p.rnd, cCodeSpecials)
		}
		return random.Pick(p.rnd, codeSpecials)
	case p.rnd.Float64() < 0.5 && language.IsEnglish(p.lang):
		if c, ok := contractions[word]; ok {
			return c
		}
	}
	return word
}

func (p *Punctuator) endsSentence(last rune) bool {
	switch last {
	case '.', '?', '!', '؟', '।':
		return true
	case ';':
		return p.family == "greek"
	}
	return false
}

func (p *Punctuator) startSentence(word string) string {
	if p.family != "code" && p.family != "georgian" {
		word = Capitalize(word, p.lang)
	}
	if p.family == "spanish" || p.family == "catalan" {
		r := p.rnd.Float64()
		if r > 0.9 {
			p.closing = "?"
			return "¿" + word
		}
		if r > 0.8 {
			p.closing = "!"
			return "¡" + word
		}
	}
	return word
}

func (p *Punctuator) endSentence(word string) string {
	if (p.family == "spanish" || p.family == "catalan") && p.closing != "" {
		word += p.closing
		p.closing = ""
		return word
	}
	r := p.rnd.Float64()
	switch {
	case r <= 0.8:
		switch p.family {
		case "nepali", "bangla", "hindi":
			return word + "।"
		}
		return word + "."
	case r < 0.9:
		switch p.family {
		case "french":
			return "?"
		case "arabic", "persian", "urdu", "kurdish":
			return word + "؟"
		case "greek":
			return word + ";"
		}
		return word + "?"
	}
	if p.family == "french" {
		return "!"
	}
	return word + "!"
}

func (p *Punctuator) bracket(word string) string {
	switch p.family {
	case "code":
		brackets := codeBrackets
		if p.lang == "code_javascript" {
			brackets = append(brackets[:len(brackets):len(brackets)], [2]string{"`", "`"})
		}
		b := random.Pick(p.rnd, brackets)
		return b[0] + word + b[1]
	case "japanese":
		return "（" + word + "）"
	}
	return "(" + word + ")"
}

func lastRune(s string) rune {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0
	}
	return runes[len(runes)-1]
}
