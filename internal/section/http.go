package section

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultPoetryURL    = "https://poetrydb.org/random"
	defaultWikipediaURL = "https://%s.wikipedia.org/api/rest_v1/page/random/summary"
	requestTimeout      = 10 * time.Second
)

// Poetry pulls a random poem from a PoetryDB compatible endpoint.
type Poetry struct {
	URL      string
	Client   *http.Client
	MaxWords int
}

type poem struct {
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Lines  []string `json:"lines"`
}

// Pull implements Source. The language is ignored; poems are English.
func (p *Poetry) Pull(ctx context.Context, _ string) (Section, error) {
	url := p.URL
	if url == "" {
		url = defaultPoetryURL
	}
	var poems []poem
	if err := getJSON(ctx, p.Client, url, &poems); err != nil {
		return Section{}, err
	}
	if len(poems) == 0 || len(poems[0].Lines) == 0 {
		return Section{}, fmt.Errorf("%w: empty poem", ErrUnavailable)
	}
	sec := New(poems[0].Title, poems[0].Author, strings.Join(poems[0].Lines, " "), maxWords(p.MaxWords))
	if len(sec.Words) == 0 {
		return Section{}, fmt.Errorf("%w: poem has no words", ErrUnavailable)
	}
	return sec, nil
}

// Wikipedia pulls the summary of a random article.
type Wikipedia struct {
	// URL is a format string receiving the wiki language code.
	URL      string
	Client   *http.Client
	MaxWords int
}

type summary struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

// Pull implements Source.
func (w *Wikipedia) Pull(ctx context.Context, lang string) (Section, error) {
	format := w.URL
	if format == "" {
		format = defaultWikipediaURL
	}
	var s summary
	if err := getJSON(ctx, w.Client, fmt.Sprintf(format, wikiCode(lang)), &s); err != nil {
		return Section{}, err
	}
	sec := New(s.Title, "wikipedia", s.Extract, maxWords(w.MaxWords))
	if len(sec.Words) == 0 {
		return Section{}, fmt.Errorf("%w: article %q has no text", ErrUnavailable, s.Title)
	}
	return sec, nil
}

func maxWords(n int) int {
	if n <= 0 {
		return MaxWords
	}
	return n
}

func getJSON(ctx context.Context, client *http.Client, url string, out any) error {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %v", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status: %s", ErrUnavailable, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrUnavailable, err)
	}
	return nil
}
