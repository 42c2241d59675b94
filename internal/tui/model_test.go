package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typegen/internal/generator"
	"github.com/verte-zerg/typegen/internal/language"
	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/quote"
)

func newTestModel(t *testing.T, cfg model.Config) *Model {
	t.Helper()
	gen := generator.New(language.NewStore(""), quote.NewEmbedded(), nil)
	return NewModel(Options{Config: cfg, Generator: gen})
}

func testConfig(funboxName string) model.Config {
	return model.Config{
		Mode:          model.ModeWords,
		Words:         3,
		Language:      "english",
		Funbox:        funboxName,
		HighlightMode: model.HighlightLetter,
		Seed:          11,
	}
}

func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func TestModelCompletesTestAndStartsNext(t *testing.T) {
	m := newTestModel(t, testConfig("none"))
	first := string(m.targetRunes)
	if first == "" {
		t.Fatalf("expected generated text, notice %q", m.notice)
	}
	if len(m.words) != 3 {
		t.Fatalf("expected 3 words, got %v", m.words)
	}
	typeText(m, first)
	if !m.hasLast || !m.hasRecord {
		t.Fatalf("expected finished session")
	}
	if len(m.inputRunes) != 0 || len(m.targetRunes) == 0 {
		t.Fatalf("expected a fresh test after completion")
	}
	if got := strings.Join(m.lastRecord.Words(), " "); got != first {
		t.Fatalf("expected record %q, got %q", first, got)
	}
}

func TestModelRepeatReplaysLastRecord(t *testing.T) {
	m := newTestModel(t, testConfig("none"))
	first := string(m.targetRunes)
	typeText(m, first)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	if got := string(m.targetRunes); got != first {
		t.Fatalf("expected replay %q, got %q", first, got)
	}
}

func TestModelNoSpaceJoinsWords(t *testing.T) {
	m := newTestModel(t, testConfig("nospace"))
	if got, want := string(m.targetRunes), strings.Join(m.words, ""); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestModelArrowsRemapKeys(t *testing.T) {
	m := newTestModel(t, testConfig("arrows"))
	if len(m.targetRunes) == 0 {
		t.Fatalf("expected arrows text, notice %q", m.notice)
	}
	keys := map[rune]rune{'←': 'a', '↓': 's', '↑': 'w', '→': 'd'}
	typeText(m, string(keys[m.targetRunes[0]]))
	if m.correctNonSpace != 1 || m.incorrectNonSpace != 0 {
		t.Fatalf("expected remapped key to count as correct")
	}
	if m.render.glyph == nil {
		t.Fatalf("expected arrow glyphs")
	}
}

func TestModelFallsBackOnIncompatibleFunbox(t *testing.T) {
	m := newTestModel(t, testConfig("arrows#nospace"))
	if m.base.Funbox != "none" {
		t.Fatalf("expected funbox reset, got %q", m.base.Funbox)
	}
	if m.notice == "" || len(m.targetRunes) == 0 {
		t.Fatalf("expected notice and fallback text")
	}
}

func TestModelTimeModeStartsTimer(t *testing.T) {
	cfg := testConfig("none")
	cfg.Mode = model.ModeTime
	cfg.Time = 15
	m := newTestModel(t, cfg)
	if !m.timed {
		t.Fatalf("expected timed test")
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{m.targetRunes[0]}})
	if cmd == nil {
		t.Fatalf("expected timer command on first key")
	}
	if len(m.words) < lookahead {
		t.Fatalf("expected at least %d words ahead, got %d", lookahead, len(m.words))
	}
}

func TestModelTabRestarts(t *testing.T) {
	m := newTestModel(t, testConfig("none"))
	typeText(m, "x")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if len(m.inputRunes) != 0 || m.started {
		t.Fatalf("expected restart on tab")
	}
}
