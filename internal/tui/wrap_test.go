package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typegen/internal/model"
)

var letterMode = renderOptions{highlight: model.HighlightLetter}

func styled(target, input string, opts renderOptions) []styledRune {
	targetRunes, ranges := layoutWords(strings.Fields(target), " ")
	inputRunes := []rune(input)
	cursorIndex := -1
	if len(inputRunes) < len(targetRunes) {
		cursorIndex = len(inputRunes)
	}
	return buildStyledRunes(targetRunes, inputRunes, ranges, cursorIndex, opts)
}

func TestBuildStyledRunesCursor(t *testing.T) {
	runes := styled("ab", "a", letterMode)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected cursor style for second rune")
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	runes := styled("a", "a", letterMode)
	if len(runes) != 1 {
		t.Fatalf("expected 1 rune, got %d", len(runes))
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := styled("ab", "ax", letterMode)
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first rune")
	}
	if runes[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style for second rune")
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	runes := styled("one two", "o", letterMode)
	if runes[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed rune")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style for untyped in current word")
	}
	if runes[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	runes := styled("a b", "ax", letterMode)
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestBuildStyledRunesWordMode(t *testing.T) {
	runes := styled("one two", "ox", renderOptions{highlight: model.HighlightWord})
	if runes[0].s != incorrectStyle.Render("o") {
		t.Fatalf("expected whole word marked wrong")
	}
	if runes[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style without cursor")
	}
}

func TestBuildStyledRunesHighlightOff(t *testing.T) {
	runes := styled("ab cd", "ax", renderOptions{highlight: model.HighlightOff})
	if runes[1].s != correctStyle.Render("b") {
		t.Fatalf("expected no error highlighting")
	}
	if runes[3].s != pendingStyle.Render("c") {
		t.Fatalf("expected pending style with highlight off")
	}
}

func TestBuildStyledRunesFunboxHooks(t *testing.T) {
	opts := renderOptions{
		highlight: model.HighlightLetter,
		glyph:     func(r rune) string { return strings.ToUpper(string(r)) },
		correct:   func(typed, expected rune) bool { return typed == 'w' && expected == 'u' },
	}
	runes := styled("uu", "w", opts)
	if runes[0].s != correctStyle.Render("U") {
		t.Fatalf("expected remapped glyph marked correct, got %q", runes[0].s)
	}
}

func TestLayoutWordsNoSpace(t *testing.T) {
	target, ranges := layoutWords([]string{"ab", "cd"}, "")
	if string(target) != "abcd" {
		t.Fatalf("expected joined target, got %q", string(target))
	}
	if len(ranges) != 2 || ranges[1].start != 2 || ranges[1].end != 4 {
		t.Fatalf("unexpected ranges %+v", ranges)
	}
}

func TestWrapStyledRunesBreaksAtSpace(t *testing.T) {
	target, ranges := layoutWords([]string{"aaa", "bbb"}, " ")
	runes := buildStyledRunes(target, nil, ranges, -1, renderOptions{highlight: model.HighlightOff})
	out := wrapStyledRunes(runes, 4)
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line break, got %q", out)
	}
}

func TestWrapStyledRunesBreaksAtNewline(t *testing.T) {
	target, ranges := layoutWords([]string{"a\n", "b"}, " ")
	runes := buildStyledRunes(target, nil, ranges, -1, renderOptions{highlight: model.HighlightOff})
	out := wrapStyledRunes(runes, 80)
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected a forced line break, got %q", out)
	}
}
