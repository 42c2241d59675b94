package generator

import (
	"strings"

	"github.com/verte-zerg/typegen/internal/funbox"
	"github.com/verte-zerg/typegen/internal/model"
)

// DefaultLimit is the size of the initial batch of words.
const DefaultLimit = 100

// GetWordsLimit returns how many words the first batch holds. Quotes are
// streamed whole, capped only by a funbox push count. Other modes take the
// smallest of the default, the push count, the words setting and the custom
// word limit.
func GetWordsLimit(cfg model.Config, set funbox.Set, quoteLen int, custom *model.CustomText) int {
	push := set.PushCount()
	if cfg.Mode == model.ModeQuote {
		if push > 0 && push < quoteLen {
			return push
		}
		return quoteLen
	}
	limit := DefaultLimit
	if push > 0 {
		limit = push
	}
	switch cfg.Mode {
	case model.ModeWords:
		if cfg.Words > 0 && cfg.Words < limit {
			limit = cfg.Words
		}
	case model.ModeCustom:
		if n := customWordTarget(custom); n > 0 && n < limit {
			limit = n
		}
	}
	return limit
}

// customWordTarget is the total number of words a word-limited custom test
// holds, or 0 when the test is not word limited.
func customWordTarget(custom *model.CustomText) int {
	if custom == nil || custom.LimitMode != model.LimitWord {
		return 0
	}
	if custom.LimitValue > 0 {
		return custom.LimitValue
	}
	n := 0
	for _, entry := range custom.Words {
		n += len(strings.Fields(entry))
	}
	return n
}
