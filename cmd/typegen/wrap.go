package main

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapWords joins words with sep and wraps the result to width display
// columns. Words never split unless wider than a line. Newlines inside words
// end the line.
func wrapWords(words []string, sep string, width int) string {
	if width <= 0 {
		return strings.Join(words, sep)
	}
	if sep == "" {
		return wrapRunes(strings.Join(words, ""), width)
	}
	sepWidth := runewidth.StringWidth(sep)
	var out strings.Builder
	lineWidth := 0
	for i, word := range words {
		parts := strings.Split(word, "\n")
		for pi, part := range parts {
			if pi > 0 {
				out.WriteByte('\n')
				lineWidth = 0
			}
			w := runewidth.StringWidth(part)
			if pi == 0 && i > 0 && lineWidth > 0 {
				if lineWidth+sepWidth+w > width {
					out.WriteByte('\n')
					lineWidth = 0
				} else {
					out.WriteString(sep)
					lineWidth += sepWidth
				}
			}
			if w > width {
				wrapped := wrapRunes(part, width)
				out.WriteString(wrapped)
				lineWidth = runewidth.StringWidth(wrapped[strings.LastIndexByte(wrapped, '\n')+1:])
				continue
			}
			out.WriteString(part)
			lineWidth += w
		}
	}
	return out.String()
}

func wrapRunes(s string, width int) string {
	var out strings.Builder
	lineWidth := 0
	for _, r := range s {
		if r == '\n' {
			out.WriteRune(r)
			lineWidth = 0
			continue
		}
		w := runewidth.RuneWidth(r)
		if lineWidth+w > width && lineWidth > 0 {
			out.WriteByte('\n')
			lineWidth = 0
		}
		out.WriteRune(r)
		lineWidth += w
	}
	return out.String()
}
