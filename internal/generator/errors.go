package generator

import (
	"errors"
	"fmt"

	"github.com/verte-zerg/typegen/internal/funbox"
	"github.com/verte-zerg/typegen/internal/model"
)

// Kind classifies a WordGenError.
type Kind int

// Error kinds.
const (
	KindEmptyWordset Kind = iota + 1
	KindRepeatIndexOutOfRange
	KindSectionUnavailable
	KindNoQuotesFound
	KindQuoteNotFound
	KindNoFavoriteQuotes
	KindMalformedCustomText
	KindInvalidWord
)

func (k Kind) String() string {
	switch k {
	case KindEmptyWordset:
		return "empty wordset"
	case KindRepeatIndexOutOfRange:
		return "repeat index out of range"
	case KindSectionUnavailable:
		return "section unavailable"
	case KindNoQuotesFound:
		return "no quotes found"
	case KindQuoteNotFound:
		return "quote not found"
	case KindNoFavoriteQuotes:
		return "no favorite quotes"
	case KindMalformedCustomText:
		return "malformed custom text"
	case KindInvalidWord:
		return "invalid word"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// WordGenError is returned for every generation failure.
type WordGenError struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *WordGenError) Error() string {
	msg := "word generation: " + e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *WordGenError) Unwrap() error {
	return e.Err
}

// Is matches any WordGenError of the same kind.
func (e *WordGenError) Is(target error) bool {
	t, ok := target.(*WordGenError)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrEmptyWordset          = &WordGenError{Kind: KindEmptyWordset}
	ErrRepeatIndexOutOfRange = &WordGenError{Kind: KindRepeatIndexOutOfRange}
	ErrSectionUnavailable    = &WordGenError{Kind: KindSectionUnavailable}
	ErrNoQuotesFound         = &WordGenError{Kind: KindNoQuotesFound}
	ErrQuoteNotFound         = &WordGenError{Kind: KindQuoteNotFound}
	ErrNoFavoriteQuotes      = &WordGenError{Kind: KindNoFavoriteQuotes}
	ErrMalformedCustomText   = &WordGenError{Kind: KindMalformedCustomText}
	ErrInvalidWord           = &WordGenError{Kind: KindInvalidWord}
)

// ErrNoMoreWords is returned by NextWord once a bounded test has produced
// every word it can.
var ErrNoMoreWords = errors.New("no more words")

func newError(kind Kind, msg string, err error) *WordGenError {
	return &WordGenError{Kind: kind, Msg: msg, Err: err}
}

// Fallback returns the config a caller should retry with after err, and
// whether a retry makes sense. Quote failures fall back to words mode;
// section failures and incompatible funboxes reset the funbox to none.
func Fallback(cfg model.Config, err error) (model.Config, bool) {
	switch {
	case errors.Is(err, ErrNoQuotesFound), errors.Is(err, ErrQuoteNotFound), errors.Is(err, ErrNoFavoriteQuotes):
		cfg.Mode = model.ModeWords
		return cfg, true
	case errors.Is(err, ErrSectionUnavailable), errors.Is(err, funbox.ErrIncompatibleFunbox):
		if cfg.Funbox == "none" {
			return cfg, false
		}
		cfg.Funbox = "none"
		return cfg, true
	}
	return cfg, false
}
