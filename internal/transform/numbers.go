// Package transform holds the per-word transformations applied to drawn
// words: punctuation, numbers, British spelling and casing.
package transform

import (
	"strings"

	"github.com/verte-zerg/typegen/internal/language"
	"github.com/verte-zerg/typegen/internal/random"
)

// NumberChance is the probability that a word is replaced by a number.
const NumberChance = 0.1

var (
	arabicDigits     = strings.NewReplacer("0", "٠", "1", "١", "2", "٢", "3", "٣", "4", "٤", "5", "٥", "6", "٦", "7", "٧", "8", "٨", "9", "٩")
	devanagariDigits = strings.NewReplacer("0", "०", "1", "१", "2", "२", "3", "३", "4", "४", "5", "५", "6", "६", "7", "७", "8", "८", "9", "९")
)

// RandomNumber returns a number of 1 to maxLen digits without a leading zero.
func RandomNumber(r random.Rand, maxLen int) string {
	n := random.IntRange(r, 1, maxLen)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i == 0 {
			b.WriteByte(byte('1' + r.Intn(9)))
			continue
		}
		b.WriteByte(byte('0' + r.Intn(10)))
	}
	return b.String()
}

// ConvertDigits rewrites ASCII digits into the native script of lang.
func ConvertDigits(s, lang string) string {
	switch language.Family(lang) {
	case "kurdish":
		return arabicDigits.Replace(s)
	case "nepali":
		return devanagariDigits.Replace(s)
	}
	return s
}

// InjectNumber replaces word with a random number NumberChance of the time.
func InjectNumber(r random.Rand, word, lang string) string {
	if r.Float64() >= NumberChance {
		return word
	}
	return ConvertDigits(RandomNumber(r, 4), lang)
}
