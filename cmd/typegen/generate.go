package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typegen/internal/funbox"
	"github.com/verte-zerg/typegen/internal/generator"
	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/store"
)

const (
	defaultWidth = 80
	maxFallbacks = 3
	latestRecord = "latest"
)

var (
	genFlags  testFlags
	genRepeat string
	genSave   bool
	genWidth  int
	genCount  int
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated test without starting the TUI",
		Args:  cobra.NoArgs,
		RunE:  runGenerateCmd,
	}
	genFlags.register(cmd)
	cmd.Flags().StringVar(&genRepeat, "repeat", "", "replay a saved record: latest or a record id")
	cmd.Flags().BoolVar(&genSave, "save", false, "save the generated record for --repeat")
	cmd.Flags().IntVar(&genWidth, "width", 0, "wrap width (defaults to the terminal width)")
	cmd.Flags().IntVar(&genCount, "count", 0, "minimum number of words printed for unbounded tests")
	return cmd
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	if genCount < 0 {
		return fmt.Errorf("--count must be >= 0")
	}
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	genFlags.applyFile(cmd, e.file)
	cfg, err := genFlags.config()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	req := generator.Request{Config: cfg}
	if genRepeat != "" {
		saved, err := loadSaved(ctx, e.store, genRepeat)
		if err != nil {
			return err
		}
		req = generator.Request{Config: saved.Config, Repeat: true, Record: saved.Record}
	} else {
		req.CustomText, err = e.customText(ctx, cfg, genFlags.custom)
		if err != nil {
			return err
		}
		req.WeakChars = e.weakChars(ctx, cfg, &genFlags)
	}

	session, res, err := generateWithFallback(ctx, e, req)
	if err != nil {
		return err
	}
	words, err := drain(ctx, session, res, req)
	if err != nil {
		return err
	}

	if genSave && !req.Repeat {
		id, err := e.store.SaveRecord(ctx, res.Config, session.Record())
		if err != nil {
			return fmt.Errorf("failed to save record: %w", err)
		}
		logErrf("saved record %s\n", id)
	}

	sep := " "
	if session.Funboxes().Has(funbox.NoSpace) {
		sep = ""
	}
	if res.Quote != nil {
		logErrf("quote #%d: %s\n", res.Quote.ID, res.Quote.Source)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), wrapWords(words, sep, outputWidth()))
	return err
}

func loadSaved(ctx context.Context, st *store.Store, ref string) (store.SavedRecord, error) {
	var (
		saved store.SavedRecord
		err   error
	)
	if ref == latestRecord {
		saved, err = st.LatestRecord(ctx)
	} else {
		saved, err = st.LoadRecord(ctx, ref)
	}
	if errors.Is(err, store.ErrNotFound) {
		return saved, fmt.Errorf("no saved record %q (generate one with --save)", ref)
	}
	if err != nil {
		return saved, fmt.Errorf("failed to load record: %w", err)
	}
	return saved, nil
}

// generateWithFallback retries recoverable failures with the config
// generator.Fallback suggests.
func generateWithFallback(ctx context.Context, e *env, req generator.Request) (*generator.Session, generator.Result, error) {
	for attempt := 0; ; attempt++ {
		if req.Config.Mode == model.ModeQuote && !req.Repeat {
			favs, err := e.store.ListFavorites(ctx, req.Config.Language)
			if err != nil {
				return nil, generator.Result{}, fmt.Errorf("failed to load favorites: %w", err)
			}
			req.Favorites = favs
		}
		session, err := e.gen.NewSession(ctx, req)
		var res generator.Result
		if err == nil {
			res, err = session.Generate(ctx)
		}
		if err == nil {
			return session, res, nil
		}
		next, retry := generator.Fallback(req.Config, err)
		if !retry || req.Repeat || attempt >= maxFallbacks {
			return nil, generator.Result{}, err
		}
		logErrf("%v; retrying with mode %s and funbox %s\n", err, next.Mode, next.Funbox)
		req.Config = next
	}
}

// drain completes bounded tests and extends unbounded ones to --count words.
func drain(ctx context.Context, session *generator.Session, res generator.Result, req generator.Request) ([]string, error) {
	custom := req.CustomText
	bounded := req.Repeat || session.Target() > 0 || (custom != nil && custom.LimitMode == model.LimitSection)
	n := res.Record.Len()
	for session.HasMore() && (bounded || n < genCount) {
		if _, err := session.NextWord(ctx); err != nil {
			if errors.Is(err, generator.ErrNoMoreWords) {
				break
			}
			return nil, err
		}
		n++
	}
	return session.Record().Words(), nil
}

func outputWidth() int {
	if genWidth > 0 {
		return genWidth
	}
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}
