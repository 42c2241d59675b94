// Package wordset provides indexable word pools with several draw strategies.
package wordset

import (
	"math"

	"github.com/verte-zerg/typegen/internal/random"
)

// Unbounded is the Len of a generator-backed wordset.
const Unbounded = -1

// Frequency selects how random draws are weighted.
type Frequency string

// Draw frequencies.
const (
	Normal Frequency = "normal"
	Zipf   Frequency = "zipf"
)

const eulerGamma = 0.5772156649

// Wordset is a pool of words owned by a single generation.
type Wordset struct {
	words    []string
	gen      func(random.Rand) string
	rnd      random.Rand
	ordered  int
	shuffled []int
}

// New builds a finite wordset. The slice is copied.
func New(words []string, rnd random.Rand) *Wordset {
	return &Wordset{words: append([]string(nil), words...), rnd: rnd}
}

// NewUnbounded builds a wordset whose words come from gen.
func NewUnbounded(gen func(random.Rand) string, rnd random.Rand) *Wordset {
	return &Wordset{gen: gen, rnd: rnd}
}

// Len returns the number of words, or Unbounded.
func (w *Wordset) Len() int {
	if w.gen != nil {
		return Unbounded
	}
	return len(w.words)
}

// Empty reports whether the wordset can produce no words.
func (w *Wordset) Empty() bool {
	return w.gen == nil && len(w.words) == 0
}

// Words returns a copy of the backing list. Unbounded wordsets return nil.
func (w *Wordset) Words() []string {
	return append([]string(nil), w.words...)
}

// Random draws a word using the given frequency.
func (w *Wordset) Random(freq Frequency) string {
	if w.gen != nil {
		return w.gen(w.rnd)
	}
	if len(w.words) == 0 {
		return ""
	}
	if freq == Zipf {
		return w.words[zipfIndex(w.rnd, len(w.words))]
	}
	return w.words[w.rnd.Intn(len(w.words))]
}

// Shuffled returns words in a random permutation, reshuffling once exhausted.
func (w *Wordset) Shuffled() string {
	if w.gen != nil {
		return w.gen(w.rnd)
	}
	if len(w.words) == 0 {
		return ""
	}
	if len(w.shuffled) == 0 {
		w.shuffled = make([]int, len(w.words))
		for i := range w.shuffled {
			w.shuffled[i] = i
		}
		w.rnd.Shuffle(len(w.shuffled), func(i, j int) {
			w.shuffled[i], w.shuffled[j] = w.shuffled[j], w.shuffled[i]
		})
	}
	last := len(w.shuffled) - 1
	idx := w.shuffled[last]
	w.shuffled = w.shuffled[:last]
	return w.words[idx]
}

// Next returns words in list order, wrapping around at the end.
func (w *Wordset) Next() string {
	if w.gen != nil {
		return w.gen(w.rnd)
	}
	if len(w.words) == 0 {
		return ""
	}
	if w.ordered >= len(w.words) {
		w.ordered = 0
	}
	word := w.words[w.ordered]
	w.ordered++
	return word
}

// zipfIndex samples a rank from a Zipf distribution over n ranks, using
// Euler's approximation of the harmonic number.
func zipfIndex(r random.Rand, n int) int {
	harmonic := math.Log(float64(n)) + eulerGamma
	x := r.Float64() * harmonic
	idx := int(math.Round(math.Exp(x-eulerGamma))) - 1
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
