// Package generator builds the word sequence of a typing test.
package generator

import (
	"context"
	"log/slog"

	"github.com/verte-zerg/typegen/internal/language"
	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/quote"
	"github.com/verte-zerg/typegen/internal/random"
	"github.com/verte-zerg/typegen/internal/section"
)

// Generator resolves test content from its providers. It holds no per-test
// state and may start any number of sequential sessions.
type Generator struct {
	langs    language.Provider
	quotes   quote.Provider
	sections map[string]section.Source
	logger   *slog.Logger
	rnd      random.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithRand makes every session draw from r instead of a generator seeded from
// the config.
func WithRand(r random.Rand) Option {
	return func(g *Generator) {
		g.rnd = r
	}
}

// New returns a Generator. sections maps a funbox section source name such
// as "wikipedia" to its Source; quotes and sections may be nil.
func New(langs language.Provider, quotes quote.Provider, sections map[string]section.Source, opts ...Option) *Generator {
	g := &Generator{
		langs:    langs,
		quotes:   quotes,
		sections: sections,
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Request describes one test to generate.
type Request struct {
	Config     model.Config
	Repeat     bool
	Record     Record
	WeakChars  map[rune]struct{}
	CustomText *model.CustomText
	Favorites  []int
}

// Result is the outcome of a generation.
type Result struct {
	Record      Record
	Config      model.Config
	Limit       int
	Quote       *quote.Quote
	HasTab      bool
	HasNewline  bool
	RightToLeft bool
	Ligatures   bool
}

// Words returns the generated words.
func (r Result) Words() []string {
	return r.Record.Words()
}

// GenerateWords runs a whole generation and returns its first batch.
func (g *Generator) GenerateWords(ctx context.Context, req Request) (Result, error) {
	s, err := g.NewSession(ctx, req)
	if err != nil {
		return Result{}, err
	}
	return s.Generate(ctx)
}
