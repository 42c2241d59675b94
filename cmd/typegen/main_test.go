package main

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typegen/internal/config"
	"github.com/verte-zerg/typegen/internal/model"
)

func newFlagCmd(t *testing.T) (*cobra.Command, *testFlags) {
	t.Helper()
	f := &testFlags{}
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	return cmd, f
}

func TestApplyFilePrefersChangedFlags(t *testing.T) {
	cmd, f := newFlagCmd(t)
	if err := cmd.Flags().Set("words", "50"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := cmd.Flags().Set("quote-length", "2"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	words := 10
	mode := "time"
	seed := int64(42)
	top := 3
	f.applyFile(cmd, config.FileConfig{
		Test: config.TestConfig{Mode: &mode, Words: &words, Seed: &seed, QuoteLength: []int{0, 1}},
		Weak: config.WeakConfig{Top: &top},
	})
	if f.words != 50 {
		t.Fatalf("expected flag words 50, got %d", f.words)
	}
	if f.mode != "time" || f.seed != 42 || f.weakTop != 3 {
		t.Fatalf("expected file values applied, got mode=%s seed=%d top=%d", f.mode, f.seed, f.weakTop)
	}
	if diff := cmp.Diff([]int{2}, f.quoteLength); diff != "" {
		t.Fatalf("unexpected quote length (-want +got):\n%s", diff)
	}
	if f.language != defaultLanguage || f.weakWindow != defaultWeakWindow {
		t.Fatalf("expected defaults kept, got language=%s window=%d", f.language, f.weakWindow)
	}
}

func TestTestFlagsConfig(t *testing.T) {
	_, f := newFlagCmd(t)
	f.mode = "Quote"
	f.funbox = "mirror#mirror#58008"
	f.quoteLength = []int{model.QuoteLengthFavorite}
	cfg, err := f.config()
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	expected := model.Config{
		Mode:          model.ModeQuote,
		Words:         defaultWords,
		Time:          defaultTime,
		Funbox:        "mirror#58008",
		Language:      defaultLanguage,
		QuoteLength:   []int{model.QuoteLengthFavorite},
		HighlightMode: defaultHighlight,
	}
	if diff := cmp.Diff(expected, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestTestFlagsConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(f *testFlags)
	}{
		{"mode", func(f *testFlags) { f.mode = "zen" }},
		{"words", func(f *testFlags) { f.words = -1 }},
		{"time", func(f *testFlags) { f.time = -5 }},
		{"highlight", func(f *testFlags) { f.highlight = "char" }},
		{"quote length", func(f *testFlags) { f.quoteLength = []int{4} }},
		{"funbox", func(f *testFlags) { f.funbox = "nope" }},
		{"weak top", func(f *testFlags) { f.weakTop = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, f := newFlagCmd(t)
			tt.modify(f)
			if _, err := f.config(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestBuildCustomText(t *testing.T) {
	ct, err := buildCustomText([]string{" drills "}, strings.NewReader("one two |three"), "Shuffle", "section", 2, true)
	if err != nil {
		t.Fatalf("build custom text: %v", err)
	}
	expected := model.CustomText{
		Name:       "drills",
		Words:      []string{"one two", "three"},
		Mode:       model.CustomShuffle,
		LimitMode:  model.LimitSection,
		LimitValue: 2,
		Pipe:       true,
	}
	if diff := cmp.Diff(expected, ct); diff != "" {
		t.Fatalf("unexpected custom text (-want +got):\n%s", diff)
	}

	ct, err = buildCustomText([]string{"x", "a b  c"}, strings.NewReader("ignored"), "repeat", "word", 0, false)
	if err != nil {
		t.Fatalf("build custom text: %v", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ct.Words); diff != "" {
		t.Fatalf("unexpected words (-want +got):\n%s", diff)
	}

	if _, err := buildCustomText([]string{"x", "a"}, nil, "loop", "word", 0, false); err == nil {
		t.Fatalf("expected error for mode")
	}
	if _, err := buildCustomText([]string{"x", "a"}, nil, "repeat", "lines", 0, false); err == nil {
		t.Fatalf("expected error for limit mode")
	}
	if _, err := buildCustomText([]string{"x", " "}, nil, "repeat", "word", 0, false); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	if _, err := toml.Decode(defaultConfigTemplate(), &cfg); err != nil {
		t.Fatalf("decode template: %v", err)
	}
	if cfg.Test.Mode != nil || cfg.Paths.Database != nil {
		t.Fatalf("expected all template values commented out")
	}
}
