package stats

import (
	"sort"
	"unicode"

	"github.com/verte-zerg/typegen/internal/model"
)

// SelectWeakChars returns the top lowest-accuracy letters from aggs. Spaces
// and characters that were never mistyped are not weak.
func SelectWeakChars(aggs []model.CharAggregate, top int) map[rune]struct{} {
	weakSet := map[rune]struct{}{}
	candidates := make([]model.CharAggregate, 0, len(aggs))
	for _, agg := range aggs {
		runes := []rune(agg.Char)
		if len(runes) == 0 || unicode.IsSpace(runes[0]) || agg.Incorrect == 0 {
			continue
		}
		candidates = append(candidates, agg)
	}
	sort.Slice(candidates, func(i, j int) bool {
		ai := accuracy(candidates[i])
		aj := accuracy(candidates[j])
		if ai == aj {
			return candidates[i].Char < candidates[j].Char
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for i := 0; i < top; i++ {
		runes := []rune(candidates[i].Char)
		weakSet[unicode.ToLower(runes[0])] = struct{}{}
	}
	return weakSet
}

func accuracy(agg model.CharAggregate) float64 {
	total := agg.Correct + agg.Incorrect
	if total == 0 {
		return 1.0
	}
	return float64(agg.Correct) / float64(total)
}
