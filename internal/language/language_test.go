package language

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedEnglish(t *testing.T) {
	st := NewStore("")
	lang, err := st.Load(context.Background(), "english")
	if err != nil {
		t.Fatalf("load english: %v", err)
	}
	if len(lang.Words) < 100 {
		t.Fatalf("expected a populated word list, got %d words", len(lang.Words))
	}
	if !lang.OrderedByFrequency {
		t.Fatalf("expected english to be ordered by frequency")
	}
	again, err := st.Load(context.Background(), "english")
	if err != nil {
		t.Fatalf("reload english: %v", err)
	}
	if again != lang {
		t.Fatalf("expected cached language on second load")
	}
}

func TestLoadUnknownLanguage(t *testing.T) {
	_, err := NewStore(t.TempDir()).Load(context.Background(), "elvish")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserListOverridesEmbedded(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "english.txt"), []byte("alpha\nbeta\ngamma\ndelta\n"), 0o644); err != nil {
		t.Fatalf("write list: %v", err)
	}
	st := NewStore(dir)
	lang, err := st.Load(context.Background(), "english")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lang.Words) != 4 || lang.Words[0] != "alpha" {
		t.Fatalf("expected user word list, got %q", lang.Words)
	}
	names, err := st.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	found := false
	for _, n := range names {
		if n == "spanish" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected embedded languages in list: %v", names)
	}
}

func TestFoldAccents(t *testing.T) {
	cases := map[string]string{
		"café":    "cafe",
		"naïve":   "naive",
		"straße":  "strasse",
		"señor":   "senor",
		"çocuk":   "cocuk",
		"plain":   "plain",
		"Ærøskøb": "Aeroskob",
	}
	for in, want := range cases {
		if got := FoldAccents(in, nil); got != want {
			t.Fatalf("FoldAccents(%q) = %q, expected %q", in, got, want)
		}
	}
	if got := FoldAccents("ŋa", [][2]string{{"ŋ", "ng"}}); got != "nga" {
		t.Fatalf("expected additional accents to apply, got %q", got)
	}
}

func TestLazyModeRespectsLanguageFlag(t *testing.T) {
	lang := &Language{Name: "code_javascript", NoLazyMode: true}
	if got := LazyMode("café", lang, true, false); got != "café" {
		t.Fatalf("expected no folding for noLazyMode language, got %q", got)
	}
	if got := LazyMode("café", lang, true, true); got != "cafe" {
		t.Fatalf("expected custom mode to override noLazyMode, got %q", got)
	}
	if got := LazyMode("café", &Language{}, false, false); got != "café" {
		t.Fatalf("expected disabled lazy mode to keep accents, got %q", got)
	}
}

func TestFamily(t *testing.T) {
	if Family("code_javascript") != "code" || Family("english") != "english" {
		t.Fatalf("unexpected family names")
	}
	if !IsEnglish("english_10k") || IsEnglish("english_medical") {
		t.Fatalf("unexpected IsEnglish results")
	}
}
