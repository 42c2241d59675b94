// Package funbox defines the catalog of test modifiers, the rules deciding
// which of them may be combined, and the config values they force.
package funbox

import "strings"

// Property is a set of declared funbox traits.
type Property uint32

// Funbox properties.
const (
	ChangesWordsVisibility Property = 1 << iota
	ChangesLayout
	IgnoresLayout
	UsesLayout
	NoSpace
	ToPush
	NoLetters
	ChangesCapitalisation
	ConflictsWithSymmetricChars
	SymmetricChars
	Speaks
	Unspeakable
	IgnoresLanguage
	NoLigatures
	NoInfiniteDuration
	ChangesWordsFrequency
	WordOrderReverse
)

var propertyNames = []struct {
	p    Property
	name string
}{
	{ChangesWordsVisibility, "changesWordsVisibility"},
	{ChangesLayout, "changesLayout"},
	{IgnoresLayout, "ignoresLayout"},
	{UsesLayout, "usesLayout"},
	{NoSpace, "nospace"},
	{ToPush, "toPush"},
	{NoLetters, "noLetters"},
	{ChangesCapitalisation, "changesCapitalisation"},
	{ConflictsWithSymmetricChars, "conflictsWithSymmetricChars"},
	{SymmetricChars, "symmetricChars"},
	{Speaks, "speaks"},
	{Unspeakable, "unspeakable"},
	{IgnoresLanguage, "ignoresLanguage"},
	{NoLigatures, "noLigatures"},
	{NoInfiniteDuration, "noInfiniteDuration"},
	{ChangesWordsFrequency, "changesWordsFrequency"},
	{WordOrderReverse, "wordOrder:reverse"},
}

// Has reports whether all bits of q are set.
func (p Property) Has(q Property) bool {
	return q != 0 && p&q == q
}

// Any reports whether any bit of q is set.
func (p Property) Any(q Property) bool {
	return p&q != 0
}

func (p Property) String() string {
	var names []string
	for _, pn := range propertyNames {
		if p.Has(pn.p) {
			names = append(names, pn.name)
		}
	}
	return strings.Join(names, ",")
}
