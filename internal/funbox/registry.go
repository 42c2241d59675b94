package funbox

import (
	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/wordset"
)

var (
	noPunctuation = []string{"false"}
	noNumbers     = []string{"false"}
	letterOrOff   = []string{model.HighlightLetter, model.HighlightOff}
)

var registry = []*Descriptor{
	{
		Name:        "58008",
		Alias:       "numbers",
		Description: "A special mode for accountants.",
		Properties:  IgnoresLanguage | IgnoresLayout | NoLetters,
		Forced:      map[model.ConfigKey][]string{model.KeyNumbers: noNumbers},
		Capabilities: []Capability{
			GetWord(numbersWord),
			PunctuateWord(punctuateNumbers),
		},
	},
	{
		Name:        "arrows",
		Description: "Play it on a pair of glasses.",
		Properties:  IgnoresLanguage | IgnoresLayout | NoSpace | NoLetters | SymmetricChars,
		Forced: map[model.ConfigKey][]string{
			model.KeyPunctuation:   noPunctuation,
			model.KeyNumbers:       noNumbers,
			model.KeyHighlightMode: letterOrOff,
		},
		Capabilities: []Capability{
			GetWord(arrowsWord),
			HandleChar(arrowKey),
			IsCharCorrect(arrowCorrect),
			GetWordHTML(arrowGlyph),
		},
	},
	{
		Name:         "gibberish",
		Description:  "Anvbuefl dizzs eoos alsb?",
		Properties:   IgnoresLanguage | Unspeakable,
		Capabilities: []Capability{GetWord(gibberishWord)},
	},
	{
		Name:         "ascii",
		Description:  "Where was the ascii gone?",
		Properties:   IgnoresLanguage | NoLetters | Unspeakable,
		Forced:       map[model.ConfigKey][]string{model.KeyPunctuation: noPunctuation, model.KeyNumbers: noNumbers},
		Capabilities: []Capability{GetWord(asciiWord)},
	},
	{
		Name:         "specials",
		Description:  "!@#$%^&*. Only special characters.",
		Properties:   IgnoresLanguage | NoLetters | Unspeakable,
		Forced:       map[model.ConfigKey][]string{model.KeyPunctuation: noPunctuation, model.KeyNumbers: noNumbers},
		Capabilities: []Capability{GetWord(specialsWord)},
	},
	{
		Name:         "binary",
		Description:  "01000010 01100101 01100101 01110000.",
		Properties:   IgnoresLanguage | IgnoresLayout | NoLetters | SymmetricChars,
		Forced:       map[model.ConfigKey][]string{model.KeyPunctuation: noPunctuation, model.KeyNumbers: noNumbers},
		Capabilities: []Capability{GetWord(binaryWord)},
	},
	{
		Name:        "hexadecimal",
		Description: "0x38 0x20 0x74 0x69 0x6D 0x65 0x73 0x20 0x38.",
		Properties:  IgnoresLanguage | IgnoresLayout,
		Forced:      map[model.ConfigKey][]string{model.KeyNumbers: noNumbers},
		Capabilities: []Capability{
			GetWord(hexWord),
			PunctuateWord(punctuateHex),
		},
	},
	{
		Name:        "IPv4",
		Alias:       "network",
		Description: "For sysadmins.",
		Properties:  IgnoresLanguage | IgnoresLayout | NoLetters,
		Forced:      map[model.ConfigKey][]string{model.KeyNumbers: noNumbers},
		Capabilities: []Capability{
			GetWord(ipv4Word),
			PunctuateWord(punctuateIPv4),
		},
	},
	{
		Name:        "IPv6",
		Alias:       "network",
		Description: "For future sysadmins.",
		Properties:  IgnoresLanguage | IgnoresLayout,
		Forced:      map[model.ConfigKey][]string{model.KeyNumbers: noNumbers},
		Capabilities: []Capability{
			GetWord(ipv6Word),
			PunctuateWord(punctuateIPv6),
		},
	},
	{
		Name:         "weakspot",
		Description:  "Focus on slow and mistyped letters.",
		Properties:   ChangesWordsFrequency,
		Capabilities: []Capability{GetWord(weakspotWord)},
	},
	{
		Name:        "zipf",
		Description: "Words are generated according to Zipf's law.",
		Properties:  ChangesWordsFrequency,
		Forced:      map[model.ConfigKey][]string{model.KeyMode: {string(model.ModeTime)}},
		Capabilities: []Capability{
			WordsFrequency(func() wordset.Frequency { return wordset.Zipf }),
		},
	},
	{
		Name:         "pseudolang",
		Description:  "Nonsense words that look like the current language.",
		Properties:   Unspeakable | IgnoresLanguage,
		Capabilities: []Capability{WithWords(pseudoWords)},
	},
	{
		Name:         "poetry",
		Description:  "Practice typing some beautiful prose.",
		Properties:   NoInfiniteDuration | IgnoresLanguage,
		Capabilities: []Capability{PullSection{Source: "poetry"}},
	},
	{
		Name:         "wikipedia",
		Description:  "Practice typing wikipedia sections.",
		Properties:   NoInfiniteDuration,
		Capabilities: []Capability{PullSection{Source: "wikipedia"}},
	},
	{
		Name:         "rAnDoMcAsE",
		Description:  "I kInDa LiKe HoW iNeFfIcIeNt QwErTy Is.",
		Properties:   ChangesCapitalisation,
		Capabilities: []Capability{AlterText(randomCase)},
	},
	{
		Name:         "sPoNgEcAsE",
		Description:  "I kInDa LiKe HoW iNeFfIcIeNt QwErTy Is.",
		Properties:   ChangesCapitalisation,
		Capabilities: []Capability{AlterText(spongeCase)},
	},
	{
		Name:         "capitals",
		Description:  "Capitalize Every Word.",
		Properties:   ChangesCapitalisation,
		Capabilities: []Capability{AlterText(capitals)},
	},
	{
		Name:         "ALL_CAPS",
		Description:  "WHY ARE WE SHOUTING?",
		Properties:   ChangesCapitalisation,
		Capabilities: []Capability{AlterText(allCaps)},
	},
	{
		Name:         "instant_messaging",
		Description:  "Who needs shift anyway?",
		Properties:   ChangesCapitalisation,
		Capabilities: []Capability{AlterText(instantMessaging)},
	},
	{
		Name:         "morse",
		Description:  "-.../././.--./-.../---/---/.--./-.-.--/.----.",
		Properties:   IgnoresLanguage | IgnoresLayout | NoLetters | NoSpace,
		Capabilities: []Capability{AlterText(morse)},
	},
	{
		Name:         "ddoouubblleedd",
		Description:  "TTyyppee eevveerryytthhiinngg ttwwiiccee.",
		Properties:   NoLigatures,
		Capabilities: []Capability{AlterText(doubled)},
	},
	{
		Name:         "rot13",
		Description:  "Vg jnf n oevtug pbyq qnl va Ncevy.",
		Properties:   NoLigatures,
		Capabilities: []Capability{AlterText(rot13)},
	},
	{
		Name:        "backwards",
		Description: "...sdrawkcab epyt ot yrt woN",
		Properties:  NoLigatures | ConflictsWithSymmetricChars | WordOrderReverse,
		StyleSheet:  "backwards",
	},
	{
		Name:        "nospace",
		Description: "Whoneedsspacesanyway?",
		Properties:  NoSpace,
		Forced:      map[model.ConfigKey][]string{model.KeyHighlightMode: letterOrOff},
	},
	{
		Name:        "plus_zero",
		Description: "React quickly! Only the current word is visible.",
		Properties:  ChangesWordsVisibility | ToPush | NoInfiniteDuration,
		PushCount:   1,
	},
	{
		Name:        "plus_one",
		Description: "Only one future word is visible.",
		Properties:  ChangesWordsVisibility | ToPush | NoInfiniteDuration,
		PushCount:   2,
	},
	{
		Name:        "plus_two",
		Description: "Only two future words are visible.",
		Properties:  ChangesWordsVisibility | ToPush | NoInfiniteDuration,
		PushCount:   3,
	},
	{
		Name:        "plus_three",
		Description: "Only three future words are visible.",
		Properties:  ChangesWordsVisibility | ToPush | NoInfiniteDuration,
		PushCount:   4,
	},
	{
		Name:        "read_ahead_easy",
		Alias:       "read_ahead",
		Description: "Only the current word is invisible.",
		Properties:  ChangesWordsVisibility,
		Forced:      map[model.ConfigKey][]string{model.KeyHighlightMode: {model.HighlightWord}},
		StyleSheet:  "read_ahead_easy",
	},
	{
		Name:        "read_ahead",
		Alias:       "read_ahead",
		Description: "Current and the next word are invisible!",
		Properties:  ChangesWordsVisibility,
		Forced:      map[model.ConfigKey][]string{model.KeyHighlightMode: {model.HighlightWord}},
		StyleSheet:  "read_ahead",
	},
	{
		Name:        "read_ahead_hard",
		Alias:       "read_ahead",
		Description: "Current and the next two words are invisible!",
		Properties:  ChangesWordsVisibility,
		Forced:      map[model.ConfigKey][]string{model.KeyHighlightMode: {model.HighlightWord}},
		StyleSheet:  "read_ahead_hard",
	},
	{
		Name:        "memory",
		Description: "Test your memory. Remember the words and type them blind.",
		Properties:  ChangesWordsVisibility | NoInfiniteDuration,
		Forced: map[model.ConfigKey][]string{
			model.KeyMode: {string(model.ModeWords), string(model.ModeQuote), string(model.ModeCustom)},
		},
	},
	{
		Name:        "simon_says",
		Description: "Type what simon says.",
		Properties:  ChangesWordsVisibility | UsesLayout,
		StyleSheet:  "simon_says",
	},
	{
		Name:        "tts",
		Description: "Listen closely.",
		Properties:  ChangesWordsVisibility | Speaks,
		StyleSheet:  "tts",
	},
	{
		Name:        "layoutfluid",
		Description: "Switch between layouts specified below proportionately to the length of the test.",
		Properties:  ChangesLayout | NoInfiniteDuration,
	},
	{
		Name:        "layout_mirror",
		Description: "Mirror the keyboard layout.",
		Properties:  ChangesLayout,
	},
	{
		Name:        "mirror",
		Alias:       "mirrored",
		Description: "Everything is mirrored!",
		Properties:  ConflictsWithSymmetricChars | Unspeakable,
		StyleSheet:  "mirror",
	},
	{
		Name:        "upside_down",
		Description: "Everything is upside down!",
		Properties:  ConflictsWithSymmetricChars | Unspeakable,
		StyleSheet:  "upside_down",
	},
	{
		Name:        "nausea",
		Description: "I think I'm gonna be sick.",
		StyleSheet:  "nausea",
	},
	{
		Name:        "round_round_baby",
		Description: "...right round, like a record baby. Right, round round round.",
		StyleSheet:  "round_round_baby",
	},
	{
		Name:        "choo_choo",
		Description: "All the letters are spinning!",
		Properties:  NoLigatures | ConflictsWithSymmetricChars,
		StyleSheet:  "choo_choo",
	},
	{
		Name:        "earthquake",
		Description: "Everybody get down! The words are shaking!",
		Properties:  NoLigatures,
		StyleSheet:  "earthquake",
	},
	{
		Name:        "space_balls",
		Description: "In a galaxy far far away.",
		StyleSheet:  "space_balls",
	},
	{
		Name:         "crt",
		Description:  "Go back to the 1980s.",
		Properties:   NoLigatures,
		Capabilities: []Capability{ApplyGlobalCSS(func() string { return "crt" })},
	},
}

var byName = func() map[string]*Descriptor {
	m := make(map[string]*Descriptor, len(registry))
	for _, d := range registry {
		m[d.Name] = d
	}
	return m
}()
