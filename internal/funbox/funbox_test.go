package funbox

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/random"
	"github.com/verte-zerg/typegen/internal/wordset"
)

func mustLookup(t *testing.T, name string) *Descriptor {
	t.Helper()
	d, ok := Lookup(name)
	if !ok {
		t.Fatalf("expected funbox %s in catalog", name)
	}
	return d
}

func TestRegistryNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, d := range List() {
		if seen[d.Name] {
			t.Fatalf("duplicate funbox %s", d.Name)
		}
		seen[d.Name] = true
		if d.Has(ToPush) && d.PushCount <= 0 {
			t.Fatalf("expected push count for %s", d.Name)
		}
	}
}

func TestArrowsWithNospaceIsIncompatible(t *testing.T) {
	if IsCompatible([]string{"nospace"}, "arrows") {
		t.Fatalf("expected arrows and nospace to be incompatible")
	}
	cfg := model.Config{Funbox: "nospace"}
	out, err := Toggle(cfg, "arrows")
	if !errors.Is(err, ErrIncompatibleFunbox) {
		t.Fatalf("expected ErrIncompatibleFunbox, got %v", err)
	}
	var inc *IncompatibleError
	if !errors.As(err, &inc) || inc.Rule != RuleSpacing {
		t.Fatalf("expected spacing rule, got %v", err)
	}
	if out.Funbox != "nospace" {
		t.Fatalf("expected config unchanged, got %q", out.Funbox)
	}
}

func TestCompatibilitySymmetry(t *testing.T) {
	all := List()
	for _, a := range all {
		for _, b := range all {
			withCandidate := IsCompatible([]string{a.Name}, b.Name)
			joined := IsCompatible([]string{a.Name, b.Name}, "")
			if withCandidate != joined {
				t.Fatalf("expected symmetry for %s + %s: %v vs %v", a.Name, b.Name, withCandidate, joined)
			}
			reversed := IsCompatible([]string{b.Name}, a.Name)
			if withCandidate != reversed {
				t.Fatalf("expected order independence for %s + %s", a.Name, b.Name)
			}
		}
	}
}

func TestRuleReporting(t *testing.T) {
	cases := []struct {
		names []string
		rule  Rule
	}{
		{[]string{"58008", "gibberish"}, RuleWordSource},
		{[]string{"layoutfluid", "binary"}, RuleLayout},
		{[]string{"plus_one", "read_ahead"}, RuleVisibility},
		{[]string{"58008", "capitals"}, RuleLetterCase},
		{[]string{"arrows", "mirror"}, RuleSymmetricChars},
		{[]string{"tts", "gibberish"}, RuleSpeech},
		{[]string{"rAnDoMcAsE", "ALL_CAPS"}, RuleCapitalisation},
		{[]string{"zipf", "pseudolang"}, RuleFrequencyLanguage},
	}
	for _, tc := range cases {
		set, err := Resolve(tc.names)
		if err != nil {
			t.Fatalf("resolve %v: %v", tc.names, err)
		}
		err = Check(set, nil)
		var inc *IncompatibleError
		if !errors.As(err, &inc) {
			t.Fatalf("expected %v to be incompatible, got %v", tc.names, err)
		}
		if inc.Rule != tc.rule {
			t.Fatalf("expected rule %q for %v, got %q", tc.rule, tc.names, inc.Rule)
		}
	}
}

func TestForcedConfigIntersection(t *testing.T) {
	set, err := Resolve([]string{"read_ahead", "nospace"})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	var inc *IncompatibleError
	if err := Check(set, nil); !errors.As(err, &inc) || inc.Rule != RuleForcedConfig || inc.Key != model.KeyHighlightMode {
		t.Fatalf("expected forced highlight conflict, got %v", err)
	}
	if IsCompatible([]string{"zipf"}, "memory") {
		t.Fatalf("expected zipf and memory to conflict on mode")
	}
	if !IsCompatible([]string{"nospace"}, "58008") {
		t.Fatalf("expected nospace and 58008 to be compatible")
	}
}

func TestApplyForcedConfigAndRestore(t *testing.T) {
	set, err := Parse("arrows")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	cfg := model.Config{Mode: model.ModeWords, Punctuation: true, Numbers: true, HighlightMode: model.HighlightWord}
	forced, snap, err := ApplyForcedConfig(cfg, set)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if forced.Punctuation || forced.Numbers || forced.HighlightMode != model.HighlightLetter {
		t.Fatalf("expected forced values, got %+v", forced)
	}
	want := []model.ConfigKey{model.KeyHighlightMode, model.KeyNumbers, model.KeyPunctuation}
	if diff := cmp.Diff(want, snap.Keys()); diff != "" {
		t.Fatalf("unexpected snapshot keys (-want +got):\n%s", diff)
	}
	restored, err := snap.Restore(forced)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if diff := cmp.Diff(cfg, restored); diff != "" {
		t.Fatalf("unexpected restored config (-want +got):\n%s", diff)
	}

	already := model.Config{Mode: model.ModeWords, HighlightMode: model.HighlightOff}
	_, snap, err = ApplyForcedConfig(already, set)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !snap.Empty() {
		t.Fatalf("expected nothing overridden, got %v", snap.Keys())
	}
	if Allows(set, model.KeyPunctuation, "true") {
		t.Fatalf("expected punctuation=true to be disallowed")
	}
}

func TestToggle(t *testing.T) {
	cfg := model.Config{Funbox: "none"}
	cfg, err := Toggle(cfg, "58008")
	if err != nil || cfg.Funbox != "58008" {
		t.Fatalf("expected 58008 active, got %q %v", cfg.Funbox, err)
	}
	cfg, err = Toggle(cfg, "nospace")
	if err != nil || cfg.Funbox != "58008#nospace" {
		t.Fatalf("expected 58008#nospace, got %q %v", cfg.Funbox, err)
	}
	cfg, err = Toggle(cfg, "58008")
	if err != nil || cfg.Funbox != "nospace" {
		t.Fatalf("expected nospace, got %q %v", cfg.Funbox, err)
	}
	if _, err := Toggle(cfg, "nope"); !errors.Is(err, ErrUnknownFunbox) {
		t.Fatalf("expected ErrUnknownFunbox, got %v", err)
	}
	if IsCompatible([]string{"nope"}, "") {
		t.Fatalf("expected unknown names to be incompatible")
	}
}

func TestNumbersFunboxWords(t *testing.T) {
	set, err := Parse("58008")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	get, ok := Single[GetWord](set)
	if !ok {
		t.Fatalf("expected getWord capability")
	}
	punct, ok := Single[PunctuateWord](set)
	if !ok {
		t.Fatalf("expected punctuateWord capability")
	}
	re := regexp.MustCompile(`^[0-9.\-*/]+$`)
	rnd := random.New(11)
	for i := 0; i < 500; i++ {
		word := punct(get(WordContext{Rand: rnd, Language: "english"}), rnd)
		if !re.MatchString(word) {
			t.Fatalf("unexpected word %q", word)
		}
	}
}

func TestArrowsCapabilities(t *testing.T) {
	rnd := random.New(2)
	for i := 0; i < 100; i++ {
		word := []rune(arrowsWord(WordContext{Rand: rnd}))
		if len(word) != 5 {
			t.Fatalf("expected 5 arrows, got %q", string(word))
		}
		for j := 1; j < len(word); j++ {
			if word[j] == word[j-1] {
				t.Fatalf("expected no repeated arrows, got %q", string(word))
			}
		}
	}
	set, _ := Parse("arrows")
	handle, _ := Single[HandleChar](set)
	correct, _ := Single[IsCharCorrect](set)
	if handle('w') != '↑' || !correct('l', '→') || correct('a', '→') {
		t.Fatalf("unexpected arrow key handling")
	}
}

func TestAlterText(t *testing.T) {
	cases := []struct {
		fn   AlterText
		in   string
		want string
	}{
		{spongeCase, "hello", "hElLo"},
		{allCaps, "hello", "HELLO"},
		{capitals, "hello", "Hello"},
		{instantMessaging, "Hello.", "hello\n"},
		{morse, "sos", ".../---/..."},
		{doubled, "ab", "aabb"},
		{rot13, "Hello", "Uryyb"},
	}
	for _, tc := range cases {
		if got := tc.fn(tc.in, random.New(1)); got != tc.want {
			t.Fatalf("expected %q, got %q", tc.want, got)
		}
	}
}

func TestPseudolangWords(t *testing.T) {
	words := []string{"banana", "bandana", "cabana", "nab"}
	ws := pseudoWords(words, random.New(4))
	if ws.Len() != wordset.Unbounded {
		t.Fatalf("expected unbounded wordset")
	}
	for i := 0; i < 100; i++ {
		w := ws.Random(wordset.Normal)
		if w == "" {
			t.Fatalf("expected non-empty pseudo word")
		}
		if strings.Trim(w, "abcdn") != "" {
			t.Fatalf("unexpected letters in %q", w)
		}
	}
	if !pseudoWords(nil, random.New(1)).Empty() {
		t.Fatalf("expected empty wordset without source words")
	}
}

func TestWeakspotPrefersWeakChars(t *testing.T) {
	ws := wordset.New([]string{"zzzz", "abab", "cdcd", "efef"}, random.New(9))
	ctx := WordContext{Rand: random.New(9), Wordset: ws, WeakChars: map[rune]struct{}{'z': {}}}
	hits := 0
	for i := 0; i < 400; i++ {
		if weakspotWord(ctx) == "zzzz" {
			hits++
		}
	}
	if hits < 200 {
		t.Fatalf("expected weak word to dominate, got %d/400", hits)
	}
}

func TestSetHelpers(t *testing.T) {
	set, err := Parse("zipf#plus_two#zipf")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(set) != 2 || set.String() != "zipf#plus_two" {
		t.Fatalf("expected deduplicated set, got %q", set.String())
	}
	if set.Frequency() != wordset.Zipf || set.PushCount() != 3 || set.SoleWordSource() {
		t.Fatalf("unexpected set helpers result")
	}
	if !mustLookup(t, "crt").Defines(HookApplyGlobalCSS) || mustLookup(t, "nausea").Defines(HookApplyGlobalCSS) {
		t.Fatalf("expected only crt to apply a global style")
	}
}

func TestCheckDuration(t *testing.T) {
	set, err := Parse("plus_one")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var inc *IncompatibleError
	if err := CheckDuration(model.Config{Mode: model.ModeTime}, set); !errors.As(err, &inc) || inc.Rule != RuleInfiniteDuration {
		t.Fatalf("expected infinite duration error, got %v", err)
	}
	if err := CheckDuration(model.Config{Mode: model.ModeTime, Time: 30}, set); err != nil {
		t.Fatalf("expected timed test to pass, got %v", err)
	}
	if err := CheckDuration(model.Config{Mode: model.ModeWords}, nil); err != nil {
		t.Fatalf("expected empty set to pass, got %v", err)
	}
}
