// Package model defines shared data structures.
package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Mode selects how the test content is produced.
type Mode string

// Test modes.
const (
	ModeTime   Mode = "time"
	ModeWords  Mode = "words"
	ModeQuote  Mode = "quote"
	ModeCustom Mode = "custom"
)

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeTime:
		return ModeTime, nil
	case ModeWords:
		return ModeWords, nil
	case ModeQuote:
		return ModeQuote, nil
	case ModeCustom:
		return ModeCustom, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Highlight modes.
const (
	HighlightLetter = "letter"
	HighlightWord   = "word"
	HighlightOff    = "off"
)

// Quote length buckets. QuoteLengthFavorite selects favorite quotes only.
const (
	QuoteLengthShort    = 0
	QuoteLengthMedium   = 1
	QuoteLengthLong     = 2
	QuoteLengthThicc    = 3
	QuoteLengthFavorite = -2
)

// Config is the read-only settings snapshot used at generation time.
type Config struct {
	Mode           Mode
	Words          int
	Time           int
	Punctuation    bool
	Numbers        bool
	LazyMode       bool
	BritishEnglish bool
	Funbox         string
	Language       string
	QuoteLength    []int
	QuoteID        int
	HighlightMode  string
	Seed           int64
}

// ConfigKey names a config value a funbox may force.
type ConfigKey string

// Forceable config keys.
const (
	KeyPunctuation   ConfigKey = "punctuation"
	KeyNumbers       ConfigKey = "numbers"
	KeyMode          ConfigKey = "mode"
	KeyHighlightMode ConfigKey = "highlightMode"
	KeyLazyMode      ConfigKey = "lazyMode"
)

// Get returns the string form of the value stored under key.
func (c Config) Get(key ConfigKey) (string, error) {
	switch key {
	case KeyPunctuation:
		return strconv.FormatBool(c.Punctuation), nil
	case KeyNumbers:
		return strconv.FormatBool(c.Numbers), nil
	case KeyMode:
		return string(c.Mode), nil
	case KeyHighlightMode:
		return c.HighlightMode, nil
	case KeyLazyMode:
		return strconv.FormatBool(c.LazyMode), nil
	}
	return "", fmt.Errorf("unknown config key %q", key)
}

// Set returns a copy of c with key set to value.
func (c Config) Set(key ConfigKey, value string) (Config, error) {
	switch key {
	case KeyPunctuation, KeyNumbers, KeyLazyMode:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return c, fmt.Errorf("invalid value %q for %s: %w", value, key, err)
		}
		switch key {
		case KeyPunctuation:
			c.Punctuation = b
		case KeyNumbers:
			c.Numbers = b
		default:
			c.LazyMode = b
		}
	case KeyMode:
		mode, err := ParseMode(value)
		if err != nil {
			return c, err
		}
		c.Mode = mode
	case KeyHighlightMode:
		c.HighlightMode = value
	default:
		return c, fmt.Errorf("unknown config key %q", key)
	}
	return c, nil
}

// FunboxNames splits the #-joined funbox setting. "none" and "" yield nil.
func (c Config) FunboxNames() []string {
	return SplitFunbox(c.Funbox)
}

// SplitFunbox splits a #-joined funbox string.
func SplitFunbox(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "none" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, "#") {
		part = strings.TrimSpace(part)
		if part == "" || part == "none" {
			continue
		}
		out = append(out, part)
	}
	return out
}

// JoinFunbox is the inverse of SplitFunbox.
func JoinFunbox(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "#")
}

// CustomTextMode selects how custom text entries are drawn.
type CustomTextMode string

// Custom text modes.
const (
	CustomRepeat  CustomTextMode = "repeat"
	CustomRandom  CustomTextMode = "random"
	CustomShuffle CustomTextMode = "shuffle"
)

// CustomLimitMode selects what the custom limit value counts.
type CustomLimitMode string

// Custom limit modes.
const (
	LimitWord    CustomLimitMode = "word"
	LimitTime    CustomLimitMode = "time"
	LimitSection CustomLimitMode = "section"
)

// CustomText is user supplied test content.
type CustomText struct {
	Name       string
	Words      []string
	Mode       CustomTextMode
	LimitMode  CustomLimitMode
	LimitValue int
	Pipe       bool
}

// ParseCustomText splits raw text into entries. With pipe set, entries are
// "|"-delimited sections; otherwise every whitespace separated token is one.
func ParseCustomText(raw string, pipe bool) []string {
	if pipe {
		var out []string
		for _, part := range strings.Split(raw, "|") {
			part = strings.Join(strings.Fields(part), " ")
			if part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	return strings.Fields(raw)
}

// SessionStats captures a completed typing session.
type SessionStats struct {
	StartedAt         time.Time
	EndedAt           time.Time
	Lang              string
	Mode              Mode
	Funbox            string
	Words             int
	Punctuation       bool
	Numbers           bool
	RecordID          string
	CorrectNonSpace   int
	IncorrectNonSpace int
	DurationMs        int64
}

// CharStats stores per-character stats for a session.
type CharStats struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// CharAggregate aggregates character stats across sessions.
type CharAggregate struct {
	Char         string
	Correct      int
	Incorrect    int
	LatencySumMs int64
	LatencyCount int64
}

// SessionAggregate summarizes a session for the footer.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Correct    int
	Incorrect  int
	DurationMs int64
}
