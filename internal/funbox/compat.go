package funbox

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/typegen/internal/model"
)

// ErrIncompatibleFunbox is wrapped by every IncompatibleError.
var ErrIncompatibleFunbox = errors.New("incompatible funbox")

// Rule names a compatibility constraint.
type Rule string

// Compatibility rules.
const (
	RuleWordSource        Rule = "at most one funbox may provide words"
	RuleLayout            Rule = "layout changes conflict with layout usage"
	RuleSpacing           Rule = "at most one nospace or push funbox"
	RuleVisibility        Rule = "at most one funbox may change word visibility"
	RuleLetterCase        Rule = "capitalisation needs letters"
	RuleSymmetricChars    Rule = "symmetric characters conflict"
	RuleSpeech            Rule = "speech needs a single speaker and a speakable language"
	RuleSectionOrPush     Rule = "at most one section or push funbox"
	RuleGlobalCSS         Rule = "at most one global style"
	RulePunctuation       Rule = "at most one punctuation override"
	RuleCharCheck         Rule = "at most one character check"
	RuleCharRender        Rule = "at most one character renderer"
	RuleForcedConfig      Rule = "forced config values do not overlap"
	RuleWordOrder         Rule = "at most one word order"
	RuleWordsFrequency    Rule = "at most one frequency change"
	RuleFrequencyLanguage Rule = "frequency changes need a language"
	RuleCapitalisation    Rule = "at most one capitalisation change"
	RuleInfiniteDuration  Rule = "funbox needs a finite test"
)

// IncompatibleError reports the rule a funbox combination breaks.
type IncompatibleError struct {
	Rule     Rule
	Funboxes []string
	Key      model.ConfigKey
}

func (e *IncompatibleError) Error() string {
	msg := fmt.Sprintf("funboxes %s are incompatible: %s", strings.Join(e.Funboxes, ", "), e.Rule)
	if e.Key != "" {
		msg += " (" + string(e.Key) + ")"
	}
	return msg
}

// Unwrap returns ErrIncompatibleFunbox.
func (e *IncompatibleError) Unwrap() error {
	return ErrIncompatibleFunbox
}

type rule struct {
	name Rule
	ok   func(s Set) bool
}

var rules = []rule{
	{RuleWordSource, func(s Set) bool {
		return s.CountHook(HookGetWord, HookPullSection, HookWithWords) <= 1
	}},
	{RuleLayout, func(s Set) bool {
		return !s.Has(ChangesLayout) || !s.Has(IgnoresLayout|UsesLayout)
	}},
	{RuleSpacing, func(s Set) bool { return s.Count(NoSpace|ToPush) <= 1 }},
	{RuleVisibility, func(s Set) bool { return s.Count(ChangesWordsVisibility) <= 1 }},
	{RuleLetterCase, func(s Set) bool {
		return !s.Has(NoLetters) || !s.Has(ChangesCapitalisation)
	}},
	{RuleSymmetricChars, func(s Set) bool {
		return !s.Has(ConflictsWithSymmetricChars) || !s.Has(SymmetricChars)
	}},
	{RuleSpeech, func(s Set) bool {
		speakers := s.Count(Speaks)
		return speakers == 0 || (speakers == 1 && !s.Has(Unspeakable) && !s.Has(IgnoresLanguage))
	}},
	{RuleSectionOrPush, func(s Set) bool {
		n := 0
		for _, d := range s {
			if d.Defines(HookPullSection) || d.Has(ToPush) {
				n++
			}
		}
		return n <= 1
	}},
	{RuleGlobalCSS, func(s Set) bool { return s.CountHook(HookApplyGlobalCSS) <= 1 }},
	{RulePunctuation, func(s Set) bool { return s.CountHook(HookPunctuateWord) <= 1 }},
	{RuleCharCheck, func(s Set) bool { return s.CountHook(HookIsCharCorrect) <= 1 }},
	{RuleCharRender, func(s Set) bool { return s.CountHook(HookGetWordHTML) <= 1 }},
	{RuleWordOrder, func(s Set) bool { return s.Count(WordOrderReverse) <= 1 }},
	{RuleWordsFrequency, func(s Set) bool { return s.Count(ChangesWordsFrequency) <= 1 }},
	{RuleFrequencyLanguage, func(s Set) bool {
		return !s.Has(ChangesWordsFrequency) || !s.Has(IgnoresLanguage)
	}},
	{RuleCapitalisation, func(s Set) bool { return s.Count(ChangesCapitalisation) <= 1 }},
}

// Check validates active plus candidate, which may be nil. It returns an
// *IncompatibleError naming the first broken rule.
func Check(active Set, candidate *Descriptor) error {
	s := active.with(candidate)
	for _, r := range rules {
		if !r.ok(s) {
			return &IncompatibleError{Rule: r.name, Funboxes: s.Names()}
		}
	}
	if _, key, ok := intersectForced(s); !ok {
		return &IncompatibleError{Rule: RuleForcedConfig, Funboxes: s.Names(), Key: key}
	}
	return nil
}

// IsCompatible reports whether candidate may join the named funboxes.
// An empty candidate checks the active names alone. Unknown names are never
// compatible.
func IsCompatible(active []string, candidate string) bool {
	set, err := Resolve(active)
	if err != nil {
		return false
	}
	var d *Descriptor
	if candidate != "" && candidate != "none" {
		var ok bool
		if d, ok = Lookup(candidate); !ok {
			return false
		}
	}
	return Check(set, d) == nil
}

// Toggle adds name to the funbox setting of cfg, or removes it when already
// active. "none" clears the setting. Adding an incompatible funbox returns an
// *IncompatibleError and cfg unchanged.
func Toggle(cfg model.Config, name string) (model.Config, error) {
	if name == "none" {
		cfg.Funbox = "none"
		return cfg, nil
	}
	d, ok := Lookup(name)
	if !ok {
		return cfg, fmt.Errorf("%w: %s", ErrUnknownFunbox, name)
	}
	active, err := Parse(cfg.Funbox)
	if err != nil {
		return cfg, err
	}
	if active.Contains(name) {
		var kept []string
		for _, n := range active.Names() {
			if n != name {
				kept = append(kept, n)
			}
		}
		cfg.Funbox = model.JoinFunbox(kept)
		return cfg, nil
	}
	if err := Check(active, d); err != nil {
		return cfg, err
	}
	cfg.Funbox = active.with(d).String()
	return cfg, nil
}

// intersectForced computes the allowed values per forced key. On an empty
// intersection it returns the offending key and false.
func intersectForced(s Set) (map[model.ConfigKey][]string, model.ConfigKey, bool) {
	allowed := map[model.ConfigKey][]string{}
	for _, d := range s {
		keys := make([]string, 0, len(d.Forced))
		for k := range d.Forced {
			keys = append(keys, string(k))
		}
		sort.Strings(keys)
		for _, k := range keys {
			key := model.ConfigKey(k)
			values := d.Forced[key]
			prev, seen := allowed[key]
			if !seen {
				allowed[key] = append([]string(nil), values...)
				continue
			}
			var both []string
			for _, v := range prev {
				if hasName(values, v) {
					both = append(both, v)
				}
			}
			if len(both) == 0 {
				return nil, key, false
			}
			allowed[key] = both
		}
	}
	return allowed, "", true
}
