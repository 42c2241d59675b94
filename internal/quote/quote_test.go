package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/verte-zerg/typegen/internal/random"
)

func TestEmbeddedGroups(t *testing.T) {
	c, err := NewEmbedded().Get(context.Background(), "english_1k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	groups := map[int]int{}
	for _, q := range c.Quotes {
		groups[q.Group]++
	}
	for g := 0; g < 4; g++ {
		if groups[g] == 0 {
			t.Fatalf("expected quotes in group %d, got %v", g, groups)
		}
	}
}

func TestPickRandomRespectsLengths(t *testing.T) {
	c, err := NewEmbedded().Get(context.Background(), "english")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	rnd := random.New(3)
	for i := 0; i < 20; i++ {
		q, err := c.PickRandom(rnd, []int{3})
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		if q.Group != 3 {
			t.Fatalf("expected group 3, got %d", q.Group)
		}
	}
}

func TestPickErrors(t *testing.T) {
	c := &Collection{Language: "x", Groups: [][2]int{{0, 100}}, Quotes: []Quote{{ID: 1, Text: "a b"}}}
	c.assignGroups()
	if _, err := c.PickRandom(random.New(1), []int{2}); !errors.Is(err, ErrNoQuotes) {
		t.Fatalf("expected ErrNoQuotes, got %v", err)
	}
	if _, err := c.PickByID(7); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := c.PickFavorite(random.New(1), []int{9}); !errors.Is(err, ErrNoFavorites) {
		t.Fatalf("expected ErrNoFavorites, got %v", err)
	}
	q, err := c.PickFavorite(random.New(1), []int{1})
	if err != nil || q.ID != 1 {
		t.Fatalf("expected favorite 1, got %v %v", q, err)
	}
}

func TestBritishWords(t *testing.T) {
	c, err := NewEmbedded().Get(context.Background(), "english")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	q, err := c.PickByID(9)
	if err != nil {
		t.Fatalf("pick: %v", err)
	}
	if got := q.Words(true)[1]; got != "colour" {
		t.Fatalf("expected colour, got %q", got)
	}
	if got := q.Words(false)[1]; got != "color" {
		t.Fatalf("expected color, got %q", got)
	}
}

func TestUnknownLanguage(t *testing.T) {
	if _, err := NewEmbedded().Get(context.Background(), "klingon"); !errors.Is(err, ErrNoQuotes) {
		t.Fatalf("expected ErrNoQuotes, got %v", err)
	}
}
