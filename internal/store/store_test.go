package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/verte-zerg/typegen/internal/generator"
	"github.com/verte-zerg/typegen/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "typegen.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("close store: %v", err)
		}
	})
	return s
}

func TestInsertSessionAndWeakChars(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	sessions := []struct {
		lang  string
		chars []model.CharStats
	}{
		{"english", []model.CharStats{{Char: "a", Correct: 9, Incorrect: 1}, {Char: "q", Correct: 1, Incorrect: 3}}},
		{"english", []model.CharStats{{Char: "a", Correct: 5}, {Char: "q", Correct: 2, Incorrect: 2}}},
		{"german", []model.CharStats{{Char: "ß", Correct: 1, Incorrect: 1}}},
	}
	for i, sess := range sessions {
		stats := model.SessionStats{
			StartedAt:       start.Add(time.Duration(i) * time.Minute),
			EndedAt:         start.Add(time.Duration(i)*time.Minute + 30*time.Second),
			Lang:            sess.lang,
			Mode:            model.ModeWords,
			Funbox:          "none",
			Words:           25,
			RecordID:        "r",
			CorrectNonSpace: 100,
			DurationMs:      30000,
		}
		if _, err := s.InsertSession(ctx, stats, sess.chars); err != nil {
			t.Fatalf("insert session: %v", err)
		}
	}

	aggs, err := s.GetWeakChars(ctx, 10, "english")
	if err != nil {
		t.Fatalf("weak chars: %v", err)
	}
	expected := []model.CharAggregate{
		{Char: "a", Correct: 14, Incorrect: 1},
		{Char: "q", Correct: 3, Incorrect: 5},
	}
	if diff := cmp.Diff(expected, aggs); diff != "" {
		t.Fatalf("unexpected aggregates (-want +got):\n%s", diff)
	}

	aggs, err = s.GetWeakChars(ctx, 1, "")
	if err != nil {
		t.Fatalf("weak chars: %v", err)
	}
	if len(aggs) != 1 || aggs[0].Char != "ß" {
		t.Fatalf("expected only the latest session, got %+v", aggs)
	}

	list, err := s.ListSessions(ctx, "english", 0)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(list) != 2 || !list[0].EndedAt.Before(list[1].EndedAt) {
		t.Fatalf("expected two sessions oldest first, got %+v", list)
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	cfg := model.Config{Mode: model.ModeWords, Words: 3, Language: "english", Funbox: "none", Punctuation: true, Seed: 7}
	rec := generator.NewRecord([]generator.Entry{{Word: "Hello"}, {Word: "there"}, {Word: "world.", SectionIndex: 1}})

	id, err := s.SaveRecord(ctx, cfg, rec)
	if err != nil {
		t.Fatalf("save record: %v", err)
	}
	if id == "" {
		t.Fatalf("expected record id")
	}

	saved, err := s.LoadRecord(ctx, id)
	if err != nil {
		t.Fatalf("load record: %v", err)
	}
	if diff := cmp.Diff(cfg, saved.Config); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(rec.Entries(), saved.Record.Entries()); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}

	latest, err := s.LatestRecord(ctx)
	if err != nil {
		t.Fatalf("latest record: %v", err)
	}
	if latest.ID != id {
		t.Fatalf("expected latest record %s, got %s", id, latest.ID)
	}

	if _, err := s.LoadRecord(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLatestRecordEmpty(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LatestRecord(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomTexts(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	ct := model.CustomText{
		Name:       "drills",
		Words:      model.ParseCustomText("one two | three four|five", true),
		Mode:       model.CustomRepeat,
		LimitMode:  model.LimitSection,
		LimitValue: 2,
		Pipe:       true,
	}
	if err := s.SaveCustomText(ctx, ct); err != nil {
		t.Fatalf("save custom text: %v", err)
	}
	got, err := s.GetCustomText(ctx, "drills")
	if err != nil {
		t.Fatalf("get custom text: %v", err)
	}
	if diff := cmp.Diff(ct, got); diff != "" {
		t.Fatalf("unexpected custom text (-want +got):\n%s", diff)
	}

	ct.Words = []string{"a", "b"}
	ct.Pipe = false
	ct.Mode = model.CustomShuffle
	ct.LimitMode = model.LimitWord
	ct.LimitValue = 0
	if err := s.SaveCustomText(ctx, ct); err != nil {
		t.Fatalf("replace custom text: %v", err)
	}
	got, err = s.GetCustomText(ctx, "drills")
	if err != nil {
		t.Fatalf("get custom text: %v", err)
	}
	if diff := cmp.Diff(ct, got); diff != "" {
		t.Fatalf("unexpected replaced text (-want +got):\n%s", diff)
	}

	if err := s.SaveCustomText(ctx, model.CustomText{Name: "other", Words: []string{"x"}, Mode: model.CustomRandom, LimitMode: model.LimitTime}); err != nil {
		t.Fatalf("save custom text: %v", err)
	}
	names, err := s.ListCustomTexts(ctx)
	if err != nil {
		t.Fatalf("list custom texts: %v", err)
	}
	if diff := cmp.Diff([]string{"drills", "other"}, names); diff != "" {
		t.Fatalf("unexpected names (-want +got):\n%s", diff)
	}

	if err := s.DeleteCustomText(ctx, "other"); err != nil {
		t.Fatalf("delete custom text: %v", err)
	}
	if err := s.DeleteCustomText(ctx, "other"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
	if _, err := s.GetCustomText(ctx, "other"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.SaveCustomText(ctx, model.CustomText{Name: " "}); err == nil {
		t.Fatalf("expected error for empty name")
	}
}

func TestFavorites(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	for _, id := range []int{7, 2, 7} {
		if err := s.AddFavorite(ctx, "english", id); err != nil {
			t.Fatalf("add favorite: %v", err)
		}
	}
	if err := s.AddFavorite(ctx, "spanish", 1); err != nil {
		t.Fatalf("add favorite: %v", err)
	}
	ids, err := s.ListFavorites(ctx, "english")
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if diff := cmp.Diff([]int{2, 7}, ids); diff != "" {
		t.Fatalf("unexpected favorites (-want +got):\n%s", diff)
	}
	if err := s.RemoveFavorite(ctx, "english", 2); err != nil {
		t.Fatalf("remove favorite: %v", err)
	}
	ids, err = s.ListFavorites(ctx, "english")
	if err != nil {
		t.Fatalf("list favorites: %v", err)
	}
	if diff := cmp.Diff([]int{7}, ids); diff != "" {
		t.Fatalf("unexpected favorites (-want +got):\n%s", diff)
	}
}
