package generator

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/verte-zerg/typegen/internal/funbox"
	"github.com/verte-zerg/typegen/internal/language"
	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/quote"
	"github.com/verte-zerg/typegen/internal/random"
	"github.com/verte-zerg/typegen/internal/section"
	"github.com/verte-zerg/typegen/internal/transform"
	"github.com/verte-zerg/typegen/internal/wordset"
)

const maxRegenerations = 100

var (
	previousStrip  = regexp.MustCompile(`[.?!":\-,]`)
	previous2Strip = regexp.MustCompile(`[.?!":\-,']`)
	symbolClass    = regexp.MustCompile(`[-=_+\[\]{};'\\:"|,./<>?]`)
	digitClass     = regexp.MustCompile(`[0-9]`)
)

// Session is a single in-flight generation. It is not safe for concurrent use.
type Session struct {
	g      *Generator
	req    Request
	cfg    model.Config
	snap   funbox.Snapshot
	set    funbox.Set
	lang   *language.Language
	rnd    random.Rand
	words  *wordset.Wordset
	punct  *transform.Punctuator
	custom *model.CustomText
	limit  int

	quote      *quote.Quote
	quoteWords []string

	entries      []Entry
	plain        []string
	lastPlain    string
	pending      []string
	sectionIndex int
	sections     int
}

// NewSession validates the request and prepares the word source. Funbox
// incompatibilities surface as *funbox.IncompatibleError; every other
// content failure is a *WordGenError.
func (g *Generator) NewSession(ctx context.Context, req Request) (*Session, error) {
	set, err := funbox.Parse(req.Config.Funbox)
	if err != nil {
		return nil, err
	}
	if err := funbox.Check(set, nil); err != nil {
		return nil, err
	}
	cfg, snap, err := funbox.ApplyForcedConfig(req.Config, set)
	if err != nil {
		return nil, err
	}
	if err := funbox.CheckDuration(cfg, set); err != nil {
		return nil, err
	}
	rnd := g.rnd
	if rnd == nil {
		rnd = random.New(cfg.Seed)
	}
	lang, err := g.langs.Load(ctx, cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("failed to load language %s: %w", cfg.Language, err)
	}
	s := &Session{
		g:      g,
		req:    req,
		cfg:    cfg,
		snap:   snap,
		set:    set,
		lang:   lang,
		rnd:    rnd,
		custom: req.CustomText,
	}
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	g.logger.Debug("session started",
		"mode", cfg.Mode,
		"language", lang.Name,
		"funbox", set.String(),
		"limit", s.limit,
		"repeat", req.Repeat,
	)
	if req.Repeat {
		g.logger.Debug("replaying record", "words", req.Record.Len())
	}
	return s, nil
}

func (s *Session) init(ctx context.Context) error {
	if s.cfg.Mode == model.ModeQuote {
		if s.req.Repeat {
			s.limit = GetWordsLimit(s.cfg, s.set, s.req.Record.Len(), nil)
			return nil
		}
		return s.initQuote(ctx)
	}
	if s.req.Repeat {
		s.limit = GetWordsLimit(s.cfg, s.set, 0, s.custom)
		return nil
	}
	words := s.lang.Words
	if s.cfg.Mode == model.ModeCustom {
		if err := validateCustom(s.custom); err != nil {
			return err
		}
		words = s.custom.Words
	} else {
		s.custom = nil
	}
	if s.set.Has(funbox.WordOrderReverse) {
		words = reversed(words)
	}
	if with, ok := funbox.Single[funbox.WithWords](s.set); ok {
		s.words = with(words, s.rnd)
	} else {
		s.words = wordset.New(words, s.rnd)
	}
	if s.words.Empty() && s.pullSource() == "" {
		return newError(KindEmptyWordset, s.lang.Name, nil)
	}
	s.punct = transform.NewPunctuator(s.rnd, s.lang.Name)
	s.limit = GetWordsLimit(s.cfg, s.set, 0, s.custom)
	return nil
}

func (s *Session) initQuote(ctx context.Context) error {
	if s.g.quotes == nil {
		return newError(KindNoQuotesFound, "no quote provider", nil)
	}
	coll, err := s.g.quotes.Get(ctx, s.cfg.Language)
	if err != nil {
		if errors.Is(err, quote.ErrNoQuotes) {
			return newError(KindNoQuotesFound, s.cfg.Language, err)
		}
		return fmt.Errorf("failed to load quotes: %w", err)
	}
	var q quote.Quote
	switch {
	case s.cfg.QuoteID > 0:
		q, err = coll.PickByID(s.cfg.QuoteID)
	case containsInt(s.cfg.QuoteLength, model.QuoteLengthFavorite):
		q, err = coll.PickFavorite(s.rnd, s.req.Favorites)
	default:
		q, err = coll.PickRandom(s.rnd, s.cfg.QuoteLength)
	}
	if err != nil {
		return quoteError(err)
	}
	words := q.Words(s.cfg.BritishEnglish)
	if len(words) == 0 {
		return newError(KindNoQuotesFound, fmt.Sprintf("quote %d is empty", q.ID), nil)
	}
	if s.set.Has(funbox.WordOrderReverse) {
		words = reversed(words)
	}
	s.quote = &q
	s.quoteWords = words
	s.limit = GetWordsLimit(s.cfg, s.set, len(words), nil)
	return nil
}

// Generate produces the first batch of up to Limit words.
func (s *Session) Generate(ctx context.Context) (Result, error) {
	for len(s.entries) < s.limit {
		if _, err := s.NextWord(ctx); err != nil {
			if errors.Is(err, ErrNoMoreWords) {
				break
			}
			return Result{}, err
		}
	}
	return s.Result(), nil
}

// NextWord produces and records one more word. Bounded tests return
// ErrNoMoreWords once complete; a repeat past the end of its record returns
// ErrRepeatIndexOutOfRange.
func (s *Session) NextWord(ctx context.Context) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	idx := len(s.entries)
	if s.req.Repeat {
		e, ok := s.req.Record.At(idx)
		if !ok {
			return Entry{}, newError(KindRepeatIndexOutOfRange,
				fmt.Sprintf("word %d requested, record holds %d", idx+1, s.req.Record.Len()), nil)
		}
		s.entries = append(s.entries, e)
		return e, nil
	}
	if !s.HasMore() {
		return Entry{}, ErrNoMoreWords
	}
	var word string
	var err error
	if s.cfg.Mode == model.ModeQuote {
		word = s.quoteWord(idx)
	} else {
		word, err = s.nextWord(ctx, idx)
		if err != nil {
			return Entry{}, err
		}
	}
	if word == "" {
		return Entry{}, newError(KindInvalidWord, fmt.Sprintf("empty word at %d", idx), nil)
	}
	if strings.Contains(word, " ") {
		return Entry{}, newError(KindInvalidWord, fmt.Sprintf("word %q contains a space", word), nil)
	}
	e := Entry{Word: word, SectionIndex: s.sectionIndex}
	s.entries = append(s.entries, e)
	s.plain = append(s.plain, s.lastPlain)
	return e, nil
}

func (s *Session) quoteWord(idx int) string {
	word := language.LazyMode(s.quoteWords[idx], s.lang, s.cfg.LazyMode, false)
	if s.cfg.BritishEnglish && s.quote.BritishText == "" && language.IsEnglish(s.lang.Name) {
		word = transform.British(word)
	}
	s.lastPlain = word
	return s.alter(word)
}

func (s *Session) nextWord(ctx context.Context, idx int) (string, error) {
	previous := s.previous(1)
	var word string
	pulled := false
	switch {
	case len(s.pending) > 0:
		word = s.shift()
		pulled = s.pullSource() != ""
	case s.pullSource() != "":
		sec, err := s.pull(ctx)
		if err != nil {
			return "", err
		}
		s.startSection(sec.Words)
		word = s.shift()
		pulled = true
	default:
		if s.words.Empty() {
			return "", newError(KindEmptyWordset, s.lang.Name, nil)
		}
		parts := strings.Fields(s.draw(previous, s.previous(2)))
		if len(parts) == 0 {
			return "", newError(KindInvalidWord, fmt.Sprintf("empty word at %d", idx), nil)
		}
		if s.custom != nil || len(parts) > 1 {
			s.startSection(parts)
			word = s.shift()
		} else {
			word = parts[0]
		}
	}
	return s.pipeline(word, previous, idx, pulled), nil
}

// draw picks a candidate, redrawing a bounded number of times while it
// repeats one of the two previous words or breaks the active settings.
func (s *Session) draw(prev1, prev2 string) string {
	p1 := strings.ToLower(previousStrip.ReplaceAllString(prev1, ""))
	p2 := strings.ToLower(previous2Strip.ReplaceAllString(prev2, ""))
	word := s.lazy(s.pick())
	if s.custom != nil || s.set.SoleWordSource() {
		return word
	}
	for i := 0; i < maxRegenerations && s.rejects(word, p1, p2); i++ {
		word = s.lazy(s.pick())
	}
	if s.rejects(word, p1, p2) {
		s.g.logger.Debug("regeneration limit reached", "word", word, "index", len(s.entries))
	}
	return word
}

func (s *Session) pick() string {
	if s.custom != nil {
		switch s.custom.Mode {
		case model.CustomRepeat:
			return s.words.Next()
		case model.CustomShuffle:
			return s.words.Shuffled()
		}
	}
	return s.words.Random(s.set.Frequency())
}

func (s *Session) rejects(word, p1, p2 string) bool {
	lower := strings.ToLower(word)
	if lower == p1 || lower == p2 {
		return true
	}
	if !s.cfg.Punctuation {
		if word == "I" {
			return true
		}
		if s.lang.Family() != "code" && symbolClass.MatchString(word) {
			return true
		}
	}
	return !s.cfg.Numbers && digitClass.MatchString(word)
}

func (s *Session) pipeline(word, previous string, idx int, pulled bool) string {
	if get, ok := funbox.Single[funbox.GetWord](s.set); ok && !pulled {
		word = get(funbox.WordContext{
			Rand:      s.rnd,
			Wordset:   s.words,
			Language:  s.lang.Name,
			Index:     idx,
			WeakChars: s.req.WeakChars,
		})
	}
	word = s.lazy(word)
	if s.cfg.BritishEnglish && language.IsEnglish(s.lang.Name) {
		word = transform.British(word)
	}
	if strings.HasPrefix(s.lang.Name, "swiss_german") {
		word = transform.SwissGerman(word)
	}
	sectioned := s.pullSource() != ""
	if s.cfg.Punctuation && !s.lang.OriginalPunctuation && !sectioned {
		if p, ok := funbox.Single[funbox.PunctuateWord](s.set); ok {
			word = p(word, s.rnd)
		} else {
			word = s.punct.Punctuate(previous, word, idx, s.punctuationEnd())
		}
	}
	if s.cfg.Numbers && !sectioned {
		word = transform.InjectNumber(s.rnd, word, s.lang.Name)
	}
	if s.foldable() {
		word = transform.Fold(word)
	}
	s.lastPlain = word
	return s.alter(word)
}

// punctuationEnd is the index limit the punctuator closes the last sentence
// at: the whole test when it is word bounded, the first batch otherwise.
func (s *Session) punctuationEnd() int {
	if t := s.Target(); t > 0 {
		return t
	}
	return s.limit
}

func (s *Session) foldable() bool {
	if s.cfg.Punctuation || s.cfg.Mode == model.ModeCustom || s.cfg.Mode == model.ModeQuote {
		return false
	}
	return transform.Foldable(s.lang.Name) && !s.set.SoleWordSource()
}

func (s *Session) lazy(word string) string {
	return language.LazyMode(word, s.lang, s.cfg.LazyMode, s.cfg.Mode == model.ModeCustom)
}

func (s *Session) alter(word string) string {
	for _, alter := range funbox.All[funbox.AlterText](s.set) {
		word = alter(word, s.rnd)
	}
	return word
}

func (s *Session) pullSource() string {
	if p, ok := funbox.Single[funbox.PullSection](s.set); ok {
		return p.Source
	}
	return ""
}

func (s *Session) pull(ctx context.Context) (section.Section, error) {
	name := s.pullSource()
	src, ok := s.g.sections[name]
	if !ok || src == nil {
		return section.Section{}, newError(KindSectionUnavailable, name, section.ErrUnavailable)
	}
	sec, err := src.Pull(ctx, s.lang.Name)
	if err != nil {
		return section.Section{}, newError(KindSectionUnavailable, name, err)
	}
	if len(sec.Words) == 0 {
		return section.Section{}, newError(KindSectionUnavailable, name+" returned no words", section.ErrUnavailable)
	}
	s.g.logger.Debug("section pulled", "source", name, "title", sec.Title, "words", len(sec.Words))
	return sec, nil
}

// startSection queues words as a new section. The first section keeps index 0.
func (s *Session) startSection(words []string) {
	if s.sections > 0 {
		s.sectionIndex++
	}
	s.sections++
	s.pending = append([]string(nil), words...)
}

func (s *Session) shift() string {
	word := s.pending[0]
	s.pending = s.pending[1:]
	return word
}

// previous returns the n-th last word as it was before AlterText funboxes
// changed it.
func (s *Session) previous(n int) string {
	if len(s.plain) < n {
		return ""
	}
	return s.plain[len(s.plain)-n]
}

// HasMore reports whether NextWord can produce another word.
func (s *Session) HasMore() bool {
	n := len(s.entries)
	switch {
	case s.req.Repeat:
		return n < s.req.Record.Len()
	case s.cfg.Mode == model.ModeQuote:
		return n < len(s.quoteWords)
	case s.custom != nil && s.custom.LimitMode == model.LimitSection:
		return len(s.pending) > 0 || s.sections < s.custom.LimitValue
	}
	if t := s.Target(); t > 0 {
		return n < t
	}
	return true
}

// Target returns the total number of words the test needs, or 0 when the
// test is unbounded or bounded by time or sections.
func (s *Session) Target() int {
	switch s.cfg.Mode {
	case model.ModeWords:
		return s.cfg.Words
	case model.ModeQuote:
		if s.req.Repeat {
			return s.req.Record.Len()
		}
		return len(s.quoteWords)
	case model.ModeCustom:
		return customWordTarget(s.custom)
	}
	return 0
}

// Limit returns the size of the first batch.
func (s *Session) Limit() int {
	return s.limit
}

// Config returns the effective config, after forced funbox values.
func (s *Session) Config() model.Config {
	return s.cfg
}

// Snapshot returns the config values replaced by forced funbox values.
func (s *Session) Snapshot() funbox.Snapshot {
	return s.snap
}

// Funboxes returns the active funbox set.
func (s *Session) Funboxes() funbox.Set {
	return s.set
}

// Record returns everything generated so far.
func (s *Session) Record() Record {
	return NewRecord(s.entries)
}

// Result returns the session output so far.
func (s *Session) Result() Result {
	res := Result{
		Record:      NewRecord(s.entries),
		Config:      s.cfg,
		Limit:       s.limit,
		Quote:       s.quote,
		RightToLeft: s.lang.RightToLeft,
		Ligatures:   s.lang.Ligatures && !s.set.Has(funbox.NoLigatures),
	}
	for _, e := range s.entries {
		if strings.Contains(e.Word, "\t") {
			res.HasTab = true
		}
		if strings.Contains(e.Word, "\n") {
			res.HasNewline = true
		}
	}
	return res
}

func validateCustom(c *model.CustomText) error {
	if c == nil || len(c.Words) == 0 {
		return newError(KindMalformedCustomText, "no custom text", nil)
	}
	switch c.Mode {
	case model.CustomRepeat, model.CustomRandom, model.CustomShuffle:
	default:
		return newError(KindMalformedCustomText, fmt.Sprintf("unknown mode %q", c.Mode), nil)
	}
	switch c.LimitMode {
	case model.LimitWord, model.LimitTime:
	case model.LimitSection:
		if c.LimitValue <= 0 {
			return newError(KindMalformedCustomText, "section limit needs a positive value", nil)
		}
	default:
		return newError(KindMalformedCustomText, fmt.Sprintf("unknown limit mode %q", c.LimitMode), nil)
	}
	if c.LimitValue < 0 {
		return newError(KindMalformedCustomText, "negative limit", nil)
	}
	for _, w := range c.Words {
		if strings.TrimSpace(w) == "" {
			return newError(KindMalformedCustomText, "empty entry", nil)
		}
	}
	return nil
}

func quoteError(err error) error {
	switch {
	case errors.Is(err, quote.ErrNotFound):
		return newError(KindQuoteNotFound, "", err)
	case errors.Is(err, quote.ErrNoFavorites):
		return newError(KindNoFavoriteQuotes, "", err)
	case errors.Is(err, quote.ErrNoQuotes):
		return newError(KindNoQuotesFound, "", err)
	}
	return fmt.Errorf("failed to pick quote: %w", err)
}

func reversed(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[len(words)-1-i] = w
	}
	return out
}

func containsInt(values []int, v int) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}
