package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typegen/internal/model"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
	isBreak bool
}

type wordRange struct {
	start int
	end   int
}

// renderOptions carries the funbox and highlight settings that change how
// target runes are drawn.
type renderOptions struct {
	highlight string
	glyph     func(rune) string
	correct   func(typed, expected rune) bool
}

func (o renderOptions) matches(typed, expected rune) bool {
	if o.correct != nil {
		return o.correct(typed, expected)
	}
	return typed == expected
}

// layoutWords joins words with sep and returns the rune ranges of every word.
func layoutWords(words []string, sep string) ([]rune, []wordRange) {
	var target []rune
	ranges := make([]wordRange, 0, len(words))
	for i, w := range words {
		if i > 0 {
			target = append(target, []rune(sep)...)
		}
		start := len(target)
		target = append(target, []rune(w)...)
		ranges = append(ranges, wordRange{start: start, end: len(target)})
	}
	return target, ranges
}

func buildStyledRunes(targetRunes, inputRunes []rune, words []wordRange, cursorIndex int, opts renderOptions) []styledRune {
	currentWord := wordForCursor(words, cursorIndex)
	wrongWords := map[int]bool{}
	if opts.highlight == model.HighlightWord {
		for wi, w := range words {
			for i := w.start; i < w.end && i < len(inputRunes); i++ {
				if !opts.matches(inputRunes[i], targetRunes[i]) {
					wrongWords[wi] = true
					break
				}
			}
		}
	}

	out := make([]styledRune, 0, len(targetRunes))
	for i, target := range targetRunes {
		displayed := displayRune(target, opts)
		style := pendingStyle
		typed := i < len(inputRunes)
		inCurrent := currentWord != nil && i >= currentWord.start && i < currentWord.end
		switch {
		case typed && opts.highlight == model.HighlightOff:
			style = correctStyle
		case typed && opts.highlight == model.HighlightWord:
			style = correctStyle
			if wi := wordIndex(words, i); wi >= 0 && wrongWords[wi] {
				style = incorrectStyle
			}
		case typed:
			switch {
			case target == ' ' && inputRunes[i] != ' ':
				displayed = "•"
				style = incorrectStyle
			case opts.matches(inputRunes[i], target):
				style = correctStyle
			default:
				style = incorrectStyle
			}
		case target != ' ' && inCurrent && opts.highlight != model.HighlightOff:
			style = currentWordStyle
		}
		if i == cursorIndex && i >= len(inputRunes) && opts.highlight == model.HighlightLetter {
			style = style.Underline(true)
		}
		out = append(out, styledRune{
			s:       style.Render(displayed),
			width:   runewidth.StringWidth(displayed),
			isSpace: target == ' ',
			isBreak: target == '\n',
		})
	}
	return out
}

func displayRune(target rune, opts renderOptions) string {
	switch target {
	case '\n':
		return "↵"
	case '\t':
		return "⇥"
	}
	if opts.glyph != nil {
		return opts.glyph(target)
	}
	return string(target)
}

func wordIndex(words []wordRange, pos int) int {
	for i, w := range words {
		if pos >= w.start && pos < w.end {
			return i
		}
	}
	return -1
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 {
		return nil
	}
	if cursorIndex < 0 {
		return &words[0]
	}
	wordIdx := -1
	for i, w := range words {
		if cursorIndex >= w.start && cursorIndex < w.end {
			wordIdx = i
			break
		}
		if cursorIndex < w.start {
			wordIdx = i
			break
		}
	}
	if wordIdx == -1 {
		return &words[len(words)-1]
	}
	return &words[wordIdx]
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits in width, or mid
// word when a word is wider than the line. Line break targets always end a
// line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		if item.isBreak {
			out.WriteString(renderStyledRunes(line))
			out.WriteRune('\n')
			line = line[:0]
			lineWidth = 0
			lastSpaceIdx = -1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
