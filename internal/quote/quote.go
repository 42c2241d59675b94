// Package quote provides quote collections grouped by length.
package quote

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verte-zerg/typegen/internal/language"
	"github.com/verte-zerg/typegen/internal/random"
)

//go:embed data/*.json
var dataFS embed.FS

var (
	// ErrNoQuotes is returned when no quote matches the language and lengths.
	ErrNoQuotes = errors.New("no quotes found")
	// ErrNotFound is returned when an explicit quote id does not exist.
	ErrNotFound = errors.New("quote not found")
	// ErrNoFavorites is returned when none of the favorite ids exist.
	ErrNoFavorites = errors.New("no favorite quotes")
)

// Quote is a single quote. Group is the index of its length bucket.
type Quote struct {
	ID          int    `json:"id"`
	Text        string `json:"text"`
	BritishText string `json:"britishText"`
	Source      string `json:"source"`
	Length      int    `json:"length"`
	Group       int    `json:"-"`
}

// Words splits the quote text into its literal words. With british set and a
// British variant present, that variant is used.
func (q Quote) Words(british bool) []string {
	text := q.Text
	if british && q.BritishText != "" {
		text = q.BritishText
	}
	return strings.Fields(text)
}

// Collection holds the quotes of one language.
type Collection struct {
	Language string   `json:"language"`
	Groups   [][2]int `json:"groups"`
	Quotes   []Quote  `json:"quotes"`
}

// Provider resolves quote collections by language.
type Provider interface {
	Get(ctx context.Context, lang string) (*Collection, error)
}

// PickRandom returns a random quote whose group is in lengths. An empty
// lengths slice allows every group.
func (c *Collection) PickRandom(r random.Rand, lengths []int) (Quote, error) {
	allowed := map[int]bool{}
	for _, l := range lengths {
		allowed[l] = true
	}
	var pool []Quote
	for _, q := range c.Quotes {
		if len(allowed) == 0 || allowed[q.Group] {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrNoQuotes, c.Language)
	}
	return random.Pick(r, pool), nil
}

// PickByID returns the quote with the given id.
func (c *Collection) PickByID(id int) (Quote, error) {
	for _, q := range c.Quotes {
		if q.ID == id {
			return q, nil
		}
	}
	return Quote{}, fmt.Errorf("%w: %s #%d", ErrNotFound, c.Language, id)
}

// PickFavorite returns a random quote among favorites.
func (c *Collection) PickFavorite(r random.Rand, favorites []int) (Quote, error) {
	fav := map[int]bool{}
	for _, id := range favorites {
		fav[id] = true
	}
	var pool []Quote
	for _, q := range c.Quotes {
		if fav[q.ID] {
			pool = append(pool, q)
		}
	}
	if len(pool) == 0 {
		return Quote{}, fmt.Errorf("%w: %s", ErrNoFavorites, c.Language)
	}
	return random.Pick(r, pool), nil
}

func (c *Collection) assignGroups() {
	for i := range c.Quotes {
		q := &c.Quotes[i]
		q.Text = strings.Join(strings.Fields(q.Text), " ")
		if q.Length == 0 {
			q.Length = len([]rune(q.Text))
		}
		q.Group = len(c.Groups) - 1
		for g, bounds := range c.Groups {
			if q.Length >= bounds[0] && q.Length <= bounds[1] {
				q.Group = g
				break
			}
		}
	}
}

// Embedded serves the collections compiled into the binary.
type Embedded struct {
	cache *lru.Cache[string, *Collection]
}

// NewEmbedded returns an Embedded provider.
func NewEmbedded() *Embedded {
	cache, _ := lru.New[string, *Collection](8)
	return &Embedded{cache: cache}
}

// Get loads the collection for lang. Size variants share a collection, so
// "english_1k" resolves to "english".
func (e *Embedded) Get(ctx context.Context, lang string) (*Collection, error) {
	name := language.Family(lang)
	if c, ok := e.cache.Get(name); ok {
		return c, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoQuotes, lang)
		}
		return nil, fmt.Errorf("failed to read quotes for %s: %w", lang, err)
	}
	var c Collection
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to decode quotes for %s: %w", lang, err)
	}
	c.assignGroups()
	e.cache.Add(name, &c)
	return &c, nil
}
