package funbox

import (
	"fmt"
	"sort"

	"github.com/verte-zerg/typegen/internal/model"
)

type savedValue struct {
	key   model.ConfigKey
	value string
}

// Snapshot holds the config values a funbox set overrode, so they can be put
// back when the set is deactivated.
type Snapshot struct {
	saved []savedValue
}

// Empty reports whether nothing was overridden.
func (s Snapshot) Empty() bool {
	return len(s.saved) == 0
}

// Keys returns the overridden keys.
func (s Snapshot) Keys() []model.ConfigKey {
	keys := make([]model.ConfigKey, 0, len(s.saved))
	for _, v := range s.saved {
		keys = append(keys, v.key)
	}
	return keys
}

// Restore returns cfg with the saved values written back.
func (s Snapshot) Restore(cfg model.Config) (model.Config, error) {
	for i := len(s.saved) - 1; i >= 0; i-- {
		v := s.saved[i]
		next, err := cfg.Set(v.key, v.value)
		if err != nil {
			return cfg, fmt.Errorf("failed to restore %s: %w", v.key, err)
		}
		cfg = next
	}
	return cfg, nil
}

// ApplyForcedConfig moves every config value forced by set into its allowed
// range, using the first allowed value. The returned Snapshot records what was
// replaced.
func ApplyForcedConfig(cfg model.Config, set Set) (model.Config, Snapshot, error) {
	var snap Snapshot
	allowed, key, ok := intersectForced(set)
	if !ok {
		return cfg, snap, &IncompatibleError{Rule: RuleForcedConfig, Funboxes: set.Names(), Key: key}
	}
	keys := make([]string, 0, len(allowed))
	for k := range allowed {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	for _, k := range keys {
		key := model.ConfigKey(k)
		values := allowed[key]
		current, err := cfg.Get(key)
		if err != nil {
			return cfg, snap, err
		}
		if hasName(values, current) {
			continue
		}
		next, err := cfg.Set(key, values[0])
		if err != nil {
			return cfg, snap, fmt.Errorf("failed to force %s: %w", key, err)
		}
		snap.saved = append(snap.saved, savedValue{key: key, value: current})
		cfg = next
	}
	return cfg, snap, nil
}

// Allows reports whether value is permitted for key under set.
func Allows(set Set, key model.ConfigKey, value string) bool {
	allowed, _, ok := intersectForced(set)
	if !ok {
		return false
	}
	values, forced := allowed[key]
	return !forced || hasName(values, value)
}

// CheckDuration rejects unbounded tests when a member needs a finite one.
func CheckDuration(cfg model.Config, set Set) error {
	if !set.Has(NoInfiniteDuration) {
		return nil
	}
	if (cfg.Mode == model.ModeTime && cfg.Time == 0) || (cfg.Mode == model.ModeWords && cfg.Words == 0) {
		return &IncompatibleError{Rule: RuleInfiniteDuration, Funboxes: set.Names()}
	}
	return nil
}
