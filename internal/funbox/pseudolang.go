package funbox

import (
	"strings"

	"github.com/verte-zerg/typegen/internal/random"
	"github.com/verte-zerg/typegen/internal/wordset"
)

const (
	pseudoPrefixLen = 2
	pseudoMaxLen    = 14
)

// charChain is a character level Markov chain. Suffix "" marks a word end.
type charChain struct {
	next map[string][]string
}

func chainKey(prefix []string) string {
	return strings.Join(prefix, " ")
}

func shift(prefix []string, s string) {
	copy(prefix, prefix[1:])
	prefix[len(prefix)-1] = s
}

func buildChain(words []string) *charChain {
	c := &charChain{next: map[string][]string{}}
	for _, entry := range words {
		for _, word := range strings.Fields(entry) {
			prefix := make([]string, pseudoPrefixLen)
			for _, r := range strings.ToLower(word) {
				key := chainKey(prefix)
				c.next[key] = append(c.next[key], string(r))
				shift(prefix, string(r))
			}
			key := chainKey(prefix)
			c.next[key] = append(c.next[key], "")
		}
	}
	return c
}

func (c *charChain) generate(r random.Rand) string {
	prefix := make([]string, pseudoPrefixLen)
	var b strings.Builder
	for i := 0; i < pseudoMaxLen; i++ {
		choices := c.next[chainKey(prefix)]
		if len(choices) == 0 {
			break
		}
		s := random.Pick(r, choices)
		if s == "" {
			break
		}
		b.WriteString(s)
		shift(prefix, s)
	}
	return b.String()
}

// pseudoWords returns an unbounded wordset of made up words that follow the
// letter patterns of words.
func pseudoWords(words []string, r random.Rand) *wordset.Wordset {
	c := buildChain(words)
	if len(c.next) == 0 {
		return wordset.New(nil, r)
	}
	return wordset.NewUnbounded(c.generate, r)
}
