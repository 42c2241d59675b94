// Package language loads word lists and per-language metadata.
package language

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verte-zerg/typegen/internal/wordlist"
)

//go:embed data/*.json
var dataFS embed.FS

// ErrNotFound is returned when a language id is unknown.
var ErrNotFound = errors.New("language not found")

const cacheSize = 16

var sizeSuffix = regexp.MustCompile(`_\d+k$`)

// Language is an immutable word list plus metadata.
type Language struct {
	Name                string      `json:"name"`
	NoLazyMode          bool        `json:"noLazyMode"`
	Ligatures           bool        `json:"ligatures"`
	RightToLeft         bool        `json:"rightToLeft"`
	OrderedByFrequency  bool        `json:"orderedByFrequency"`
	OriginalPunctuation bool        `json:"originalPunctuation"`
	BCP47               string      `json:"bcp47"`
	AdditionalAccents   [][2]string `json:"additionalAccents"`
	Words               []string    `json:"words"`
}

// Family returns the language name without variant suffixes,
// e.g. "code" for "code_javascript" and "english" for "english_1k".
func (l *Language) Family() string {
	return Family(l.Name)
}

// Family returns the first underscore separated segment of name.
func Family(name string) string {
	return strings.SplitN(name, "_", 2)[0]
}

// IsEnglish reports whether name is an English list of any size.
func IsEnglish(name string) bool {
	return sizeSuffix.ReplaceAllString(name, "") == "english"
}

// Provider resolves languages by name.
type Provider interface {
	Load(ctx context.Context, name string) (*Language, error)
}

// Store loads embedded languages and plain-text lists from a user directory.
type Store struct {
	dir   string
	cache *lru.Cache[string, *Language]
}

// NewStore returns a Store. dir may be empty to disable user word lists.
func NewStore(dir string) *Store {
	cache, _ := lru.New[string, *Language](cacheSize)
	return &Store{dir: dir, cache: cache}
}

// Load resolves a language, preferring a user list over the embedded one.
func (s *Store) Load(ctx context.Context, name string) (*Language, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrNotFound)
	}
	if lang, ok := s.cache.Get(name); ok {
		return lang, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	lang, err := s.load(name)
	if err != nil {
		return nil, err
	}
	s.cache.Add(name, lang)
	return lang, nil
}

func (s *Store) load(name string) (*Language, error) {
	if s.dir != "" {
		path := filepath.Join(s.dir, name+".txt")
		words, err := wordlist.LoadWords(path)
		if err == nil {
			return &Language{Name: name, Words: words}, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
		}
	}
	data, err := dataFS.ReadFile("data/" + name + ".json")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to read language %s: %w", name, err)
	}
	var lang Language
	if err := json.Unmarshal(data, &lang); err != nil {
		return nil, fmt.Errorf("failed to decode language %s: %w", name, err)
	}
	if lang.Name == "" {
		lang.Name = name
	}
	return &lang, nil
}

// List returns the sorted names of embedded and user languages.
func (s *Store) List() ([]string, error) {
	seen := map[string]struct{}{}
	entries, err := dataFS.ReadDir("data")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if name, ok := strings.CutSuffix(entry.Name(), ".json"); ok {
			seen[name] = struct{}{}
		}
	}
	if s.dir != "" {
		userEntries, err := os.ReadDir(s.dir)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read word list directory: %w", err)
		}
		for _, entry := range userEntries {
			if entry.IsDir() {
				continue
			}
			if name, ok := strings.CutSuffix(entry.Name(), ".txt"); ok {
				seen[name] = struct{}{}
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
