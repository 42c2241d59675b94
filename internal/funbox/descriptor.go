package funbox

import (
	"errors"
	"fmt"
	"strings"

	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/wordset"
)

// ErrUnknownFunbox is returned for names missing from the catalog.
var ErrUnknownFunbox = errors.New("unknown funbox")

// Descriptor is a catalog entry. Descriptors are shared and must not be
// modified.
type Descriptor struct {
	Name         string
	Alias        string
	Description  string
	Properties   Property
	PushCount    int
	Forced       map[model.ConfigKey][]string
	StyleSheet   string
	Capabilities []Capability
}

// Has reports whether the descriptor declares p.
func (d *Descriptor) Has(p Property) bool {
	return d.Properties.Has(p)
}

// Defines reports whether the descriptor provides a capability of kind h.
func (d *Descriptor) Defines(h Hook) bool {
	for _, c := range d.Capabilities {
		if c.Hook() == h {
			return true
		}
	}
	return false
}

// Lookup returns the catalog entry for name.
func Lookup(name string) (*Descriptor, bool) {
	d, ok := byName[name]
	return d, ok
}

// List returns the catalog in registration order.
func List() []*Descriptor {
	return append([]*Descriptor(nil), registry...)
}

// Set is an ordered list of active funboxes.
type Set []*Descriptor

// Parse resolves a #-joined funbox setting. Duplicates are dropped.
func Parse(s string) (Set, error) {
	return Resolve(model.SplitFunbox(s))
}

// Resolve looks up each name in the catalog.
func Resolve(names []string) (Set, error) {
	var set Set
	for _, name := range names {
		d, ok := Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownFunbox, name)
		}
		if !set.Contains(name) {
			set = append(set, d)
		}
	}
	return set, nil
}

// Names returns the funbox names in order.
func (s Set) Names() []string {
	names := make([]string, 0, len(s))
	for _, d := range s {
		names = append(names, d.Name)
	}
	return names
}

func (s Set) String() string {
	return model.JoinFunbox(s.Names())
}

// Contains reports whether a funbox named name is in the set.
func (s Set) Contains(name string) bool {
	for _, d := range s {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Has reports whether any member declares p.
func (s Set) Has(p Property) bool {
	return s.Count(p) > 0
}

// Count returns how many members declare any bit of p.
func (s Set) Count(p Property) int {
	n := 0
	for _, d := range s {
		if d.Properties.Any(p) {
			n++
		}
	}
	return n
}

// CountHook returns how many members provide a capability of kind h.
func (s Set) CountHook(hooks ...Hook) int {
	n := 0
	for _, d := range s {
		for _, h := range hooks {
			if d.Defines(h) {
				n++
				break
			}
		}
	}
	return n
}

// PushCount returns the words-to-push override, or 0 when none is active.
func (s Set) PushCount() int {
	for _, d := range s {
		if d.Has(ToPush) {
			return d.PushCount
		}
	}
	return 0
}

// SoleWordSource reports whether a member controls where words come from.
func (s Set) SoleWordSource() bool {
	return s.CountHook(HookGetWord, HookPullSection, HookWithWords) > 0
}

// Frequency returns the draw frequency requested by the set.
func (s Set) Frequency() wordset.Frequency {
	if f, ok := Single[WordsFrequency](s); ok {
		return f()
	}
	return wordset.Normal
}

// All returns every capability of type T in registration order.
func All[T Capability](s Set) []T {
	var out []T
	for _, d := range s {
		for _, c := range d.Capabilities {
			if v, ok := c.(T); ok {
				out = append(out, v)
			}
		}
	}
	return out
}

// Single returns the capability of type T when exactly one member has it.
func Single[T Capability](s Set) (T, bool) {
	all := All[T](s)
	if len(all) != 1 {
		var zero T
		return zero, false
	}
	return all[0], true
}

func (s Set) with(d *Descriptor) Set {
	if d == nil || s.Contains(d.Name) {
		return s
	}
	out := make(Set, 0, len(s)+1)
	out = append(out, s...)
	return append(out, d)
}

func hasName(names []string, name string) bool {
	for _, n := range names {
		if strings.EqualFold(n, name) {
			return true
		}
	}
	return false
}
