package wordset

import (
	"testing"

	"github.com/verte-zerg/typegen/internal/random"
)

func TestNextWrapsInOrder(t *testing.T) {
	ws := New([]string{"a", "b", "c"}, random.New(1))
	got := []string{ws.Next(), ws.Next(), ws.Next(), ws.Next()}
	expected := []string{"a", "b", "c", "a"}
	for i := range expected {
		if got[i] != expected[i] {
			t.Fatalf("expected %q at %d, got %q", expected[i], i, got[i])
		}
	}
}

func TestShuffledVisitsEveryWordOncePerRound(t *testing.T) {
	words := []string{"one", "two", "three", "four", "five"}
	ws := New(words, random.New(7))
	seen := map[string]int{}
	for range words {
		seen[ws.Shuffled()]++
	}
	for _, w := range words {
		if seen[w] != 1 {
			t.Fatalf("expected %q exactly once in a round, got %d", w, seen[w])
		}
	}
}

func TestZipfFavorsLowRanks(t *testing.T) {
	words := make([]string, 1000)
	for i := range words {
		words[i] = string(rune('a'+i%26)) + string(rune('a'+i/26%26))
	}
	ws := New(words, random.New(3))
	rnd := random.New(3)
	low := 0
	for i := 0; i < 2000; i++ {
		if zipfIndex(rnd, len(words)) < 100 {
			low++
		}
		_ = ws.Random(Zipf)
	}
	if low < 1000 {
		t.Fatalf("expected most zipf draws in the top 100 ranks, got %d/2000", low)
	}
}

func TestUnboundedReportsSentinel(t *testing.T) {
	ws := NewUnbounded(func(random.Rand) string { return "x" }, random.New(1))
	if ws.Len() != Unbounded {
		t.Fatalf("expected unbounded length, got %d", ws.Len())
	}
	if ws.Empty() {
		t.Fatalf("expected unbounded wordset to be non-empty")
	}
	if ws.Random(Normal) != "x" {
		t.Fatalf("expected generator word")
	}
}

func TestEmptyWordsetReturnsEmptyString(t *testing.T) {
	ws := New(nil, random.New(1))
	if !ws.Empty() {
		t.Fatalf("expected empty wordset")
	}
	if ws.Random(Normal) != "" || ws.Next() != "" || ws.Shuffled() != "" {
		t.Fatalf("expected empty draws from empty wordset")
	}
}
