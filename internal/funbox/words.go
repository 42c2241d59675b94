package funbox

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/verte-zerg/typegen/internal/random"
	"github.com/verte-zerg/typegen/internal/transform"
	"github.com/verte-zerg/typegen/internal/wordset"
)

const (
	specialChars   = "`~!@#$%^&*()-_=+[]{};:'\",.<>/?\\|"
	hexDigits      = "0123456789abcdef"
	weakspotSample = 20
	weakspotFactor = 3.0
)

var arrowGlyphs = []rune{'←', '↑', '→', '↓'}

func randomString(r random.Rand, alphabet []rune, minLen, maxLen int) string {
	n := random.IntRange(r, minLen, maxLen)
	out := make([]rune, n)
	for i := range out {
		out[i] = random.Pick(r, alphabet)
	}
	return string(out)
}

func gibberishWord(ctx WordContext) string {
	return randomString(ctx.Rand, []rune("abcdefghijklmnopqrstuvwxyz"), 1, 7)
}

func asciiWord(ctx WordContext) string {
	alphabet := make([]rune, 0, 94)
	for c := rune(33); c <= 126; c++ {
		alphabet = append(alphabet, c)
	}
	return randomString(ctx.Rand, alphabet, 1, 7)
}

func specialsWord(ctx WordContext) string {
	return randomString(ctx.Rand, []rune(specialChars), 1, 7)
}

func binaryWord(ctx WordContext) string {
	return randomString(ctx.Rand, []rune("01"), 8, 8)
}

func hexWord(ctx WordContext) string {
	return randomString(ctx.Rand, []rune(hexDigits), 1, 6)
}

func numbersWord(ctx WordContext) string {
	return transform.ConvertDigits(transform.RandomNumber(ctx.Rand, 7), ctx.Language)
}

func ipv4Word(ctx WordContext) string {
	r := ctx.Rand
	return fmt.Sprintf("%d.%d.%d.%d", r.Intn(256), r.Intn(256), r.Intn(256), r.Intn(256))
}

func ipv6Word(ctx WordContext) string {
	groups := make([]string, 8)
	for i := range groups {
		groups[i] = fmt.Sprintf("%x", ctx.Rand.Intn(0x10000))
	}
	return strings.Join(groups, ":")
}

// arrowsWord returns five arrows with no arrow repeated back to back.
func arrowsWord(ctx WordContext) string {
	out := make([]rune, 0, 5)
	var last rune
	for len(out) < 5 {
		a := random.Pick(ctx.Rand, arrowGlyphs)
		if a == last {
			continue
		}
		out = append(out, a)
		last = a
	}
	return string(out)
}

// weakspotWord samples candidates and picks one weighted toward words holding
// many weak characters.
func weakspotWord(ctx WordContext) string {
	if ctx.Wordset == nil {
		return ""
	}
	candidates := make([]string, weakspotSample)
	weights := make([]float64, weakspotSample)
	total := 0.0
	for i := range candidates {
		word := ctx.Wordset.Random(wordset.Normal)
		weakCount := 0
		for _, r := range word {
			if _, ok := ctx.WeakChars[r]; ok {
				weakCount++
			}
		}
		w := 1.0 + float64(weakCount)*weakspotFactor
		candidates[i] = word
		weights[i] = w
		total += w
	}
	x := ctx.Rand.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if x <= acc {
			return candidates[i]
		}
	}
	return candidates[len(candidates)-1]
}

func punctuateNumbers(word string, r random.Rand) string {
	runes := []rune(word)
	if len(runes) <= 3 {
		return word
	}
	if r.Float64() < 0.5 {
		runes[random.IntRange(r, 1, len(runes)-2)] = '.'
	}
	if r.Float64() < 0.75 {
		i := random.IntRange(r, 1, len(runes)-2)
		if runes[i-1] != '.' && runes[i+1] != '.' && runes[i+1] != '0' && !isZero(runes[i+1]) {
			runes[i] = random.Pick(r, []rune{'/', '*', '-'})
		}
	}
	return string(runes)
}

func isZero(r rune) bool {
	return r == '٠' || r == '०'
}

func punctuateHex(word string, _ random.Rand) string {
	return "0x" + word
}

func punctuateIPv4(word string, r random.Rand) string {
	if r.Float64() < 0.25 {
		return fmt.Sprintf("%s/%d", word, random.IntRange(r, 0, 32))
	}
	return word
}

func punctuateIPv6(word string, r random.Rand) string {
	if r.Float64() < 0.25 {
		return fmt.Sprintf("%s/%d", word, random.IntRange(r, 0, 128))
	}
	return word
}

func randomCase(word string, r random.Rand) string {
	runes := []rune(word)
	for i, c := range runes {
		if r.Float64() < 0.5 {
			runes[i] = unicode.ToUpper(c)
		} else {
			runes[i] = unicode.ToLower(c)
		}
	}
	return string(runes)
}

func spongeCase(word string, _ random.Rand) string {
	runes := []rune(word)
	for i, c := range runes {
		if i%2 == 1 {
			runes[i] = unicode.ToUpper(c)
		} else {
			runes[i] = unicode.ToLower(c)
		}
	}
	return string(runes)
}

func capitals(word string, _ random.Rand) string {
	return transform.Capitalize(word, "")
}

func allCaps(word string, _ random.Rand) string {
	return strings.ToUpper(word)
}

// instantMessaging lower-cases and turns a sentence end into a line break.
func instantMessaging(word string, _ random.Rand) string {
	word = strings.ToLower(word)
	if n := len(word); n > 0 && strings.ContainsRune(".?!", rune(word[n-1])) {
		return word[:n-1] + "\n"
	}
	return word
}

func doubled(word string, _ random.Rand) string {
	var b strings.Builder
	for _, c := range word {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

func rot13(word string, _ random.Rand) string {
	return strings.Map(func(c rune) rune {
		switch {
		case c >= 'a' && c <= 'z':
			return 'a' + (c-'a'+13)%26
		case c >= 'A' && c <= 'Z':
			return 'A' + (c-'A'+13)%26
		}
		return c
	}, word)
}

var morseCode = map[rune]string{
	'a': ".-", 'b': "-...", 'c': "-.-.", 'd': "-..", 'e': ".", 'f': "..-.",
	'g': "--.", 'h': "....", 'i': "..", 'j': ".---", 'k': "-.-", 'l': ".-..",
	'm': "--", 'n': "-.", 'o': "---", 'p': ".--.", 'q': "--.-", 'r': ".-.",
	's': "...", 't': "-", 'u': "..-", 'v': "...-", 'w': ".--", 'x': "-..-",
	'y': "-.--", 'z': "--..",
	'0': "-----", '1': ".----", '2': "..---", '3': "...--", '4': "....-",
	'5': ".....", '6': "-....", '7': "--...", '8': "---..", '9': "----.",
	'.': ".-.-.-", ',': "--..--", '?': "..--..", '!': "-.-.--", '\'': ".----.",
	'"': ".-..-.", '-': "-....-", '/': "-..-.", ':': "---...", ';': "-.-.-.",
	'(': "-.--.", ')': "-.--.-", '=': "-...-", '+': ".-.-.",
}

// morse encodes each character, separating letters with "/".
func morse(word string, _ random.Rand) string {
	var codes []string
	for _, c := range strings.ToLower(word) {
		if code, ok := morseCode[c]; ok {
			codes = append(codes, code)
		}
	}
	if len(codes) == 0 {
		return word
	}
	return strings.Join(codes, "/")
}

// arrowKey maps wasd, ijkl and the arrow glyphs to an arrow.
func arrowKey(typed rune) rune {
	switch typed {
	case 'a', 'j', '←':
		return '←'
	case 's', 'k', '↓':
		return '↓'
	case 'w', 'i', '↑':
		return '↑'
	case 'd', 'l', '→':
		return '→'
	}
	return typed
}

func arrowCorrect(typed, expected rune) bool {
	return arrowKey(typed) == expected
}

func arrowGlyph(ch rune) string {
	switch ch {
	case '←':
		return "◀"
	case '↑':
		return "▲"
	case '→':
		return "▶"
	case '↓':
		return "▼"
	}
	return string(ch)
}
