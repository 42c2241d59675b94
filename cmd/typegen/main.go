// Package main provides the CLI entrypoint for typegen.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typegen/internal/config"
	"github.com/verte-zerg/typegen/internal/funbox"
	"github.com/verte-zerg/typegen/internal/generator"
	"github.com/verte-zerg/typegen/internal/language"
	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/quote"
	"github.com/verte-zerg/typegen/internal/section"
	"github.com/verte-zerg/typegen/internal/stats"
	"github.com/verte-zerg/typegen/internal/store"
	"github.com/verte-zerg/typegen/internal/tui"
)

const (
	defaultMode       = "words"
	defaultWords      = 25
	defaultTime       = 30
	defaultLanguage   = "english"
	defaultFunbox     = "none"
	defaultHighlight  = model.HighlightLetter
	defaultWeakTop    = 8
	defaultWeakWindow = 20
)

var verbose bool

// testFlags holds the settings shared by every command that starts a test.
type testFlags struct {
	mode        string
	words       int
	time        int
	punctuation bool
	numbers     bool
	lazy        bool
	british     bool
	funbox      string
	language    string
	quoteLength []int
	quoteID     int
	highlight   string
	seed        int64
	custom      string
	weakTop     int
	weakWindow  int
}

var rootFlags testFlags

var rootRepeat bool

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typegen",
		Short:         "Typing test generator and trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTypeCmd,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generator debug output to stderr")
	rootFlags.register(rootCmd)
	rootCmd.Flags().BoolVar(&rootRepeat, "repeat", false, "replay the most recent test")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newFunboxCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newCustomCmd())
	rootCmd.AddCommand(newQuoteCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func (f *testFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.mode, "mode", defaultMode, "test mode: time, words, quote or custom")
	fl.IntVar(&f.words, "words", defaultWords, "words per test in words mode (0 for infinite)")
	fl.IntVar(&f.time, "time", defaultTime, "seconds per test in time mode (0 for infinite)")
	fl.BoolVar(&f.punctuation, "punctuation", false, "add punctuation")
	fl.BoolVar(&f.numbers, "numbers", false, "add numbers")
	fl.BoolVar(&f.lazy, "lazy", false, "replace accented letters with their base letters")
	fl.BoolVar(&f.british, "british", false, "use British English spelling")
	fl.StringVar(&f.funbox, "funbox", defaultFunbox, "#-separated funbox modifiers")
	fl.StringVar(&f.language, "language", defaultLanguage, "language name")
	fl.IntSliceVar(&f.quoteLength, "quote-length", nil, "quote length groups 0-3, or -2 for favorites")
	fl.IntVar(&f.quoteID, "quote-id", 0, "use the quote with this id")
	fl.StringVar(&f.highlight, "highlight", defaultHighlight, "highlight mode: letter, word or off")
	fl.Int64Var(&f.seed, "seed", 0, "random seed (0 seeds from the clock)")
	fl.StringVar(&f.custom, "custom", "", "stored custom text used in custom mode")
	fl.IntVar(&f.weakTop, "weak-top", defaultWeakTop, "number of weak characters weakspot focuses on")
	fl.IntVar(&f.weakWindow, "weak-window", defaultWeakWindow, "number of recent sessions used to find weak characters")
}

func (f *testFlags) applyFile(cmd *cobra.Command, fileCfg config.FileConfig) {
	t := fileCfg.Test
	applyStringConfig(cmd, "mode", &f.mode, t.Mode)
	applyIntConfig(cmd, "words", &f.words, t.Words)
	applyIntConfig(cmd, "time", &f.time, t.Time)
	applyBoolConfig(cmd, "punctuation", &f.punctuation, t.Punctuation)
	applyBoolConfig(cmd, "numbers", &f.numbers, t.Numbers)
	applyBoolConfig(cmd, "lazy", &f.lazy, t.LazyMode)
	applyBoolConfig(cmd, "british", &f.british, t.BritishEnglish)
	applyStringConfig(cmd, "funbox", &f.funbox, t.Funbox)
	applyStringConfig(cmd, "language", &f.language, t.Language)
	applyStringConfig(cmd, "highlight", &f.highlight, t.Highlight)
	applyInt64Config(cmd, "seed", &f.seed, t.Seed)
	if t.QuoteLength != nil && !cmd.Flags().Changed("quote-length") {
		f.quoteLength = t.QuoteLength
	}
	applyIntConfig(cmd, "weak-top", &f.weakTop, fileCfg.Weak.Top)
	applyIntConfig(cmd, "weak-window", &f.weakWindow, fileCfg.Weak.Window)
}

func (f *testFlags) config() (model.Config, error) {
	mode, err := model.ParseMode(f.mode)
	if err != nil {
		return model.Config{}, err
	}
	if f.words < 0 {
		return model.Config{}, fmt.Errorf("--words must be >= 0")
	}
	if f.time < 0 {
		return model.Config{}, fmt.Errorf("--time must be >= 0")
	}
	if f.weakTop < 0 {
		return model.Config{}, fmt.Errorf("--weak-top must be >= 0")
	}
	if f.weakWindow < 0 {
		return model.Config{}, fmt.Errorf("--weak-window must be >= 0")
	}
	switch f.highlight {
	case model.HighlightLetter, model.HighlightWord, model.HighlightOff:
	default:
		return model.Config{}, fmt.Errorf("--highlight must be letter, word or off")
	}
	for _, l := range f.quoteLength {
		if (l < model.QuoteLengthShort || l > model.QuoteLengthThicc) && l != model.QuoteLengthFavorite {
			return model.Config{}, fmt.Errorf("invalid --quote-length %d", l)
		}
	}
	set, err := funbox.Parse(f.funbox)
	if err != nil {
		return model.Config{}, err
	}
	return model.Config{
		Mode:           mode,
		Words:          f.words,
		Time:           f.time,
		Punctuation:    f.punctuation,
		Numbers:        f.numbers,
		LazyMode:       f.lazy,
		BritishEnglish: f.british,
		Funbox:         model.JoinFunbox(set.Names()),
		Language:       strings.TrimSpace(f.language),
		QuoteLength:    f.quoteLength,
		QuoteID:        f.quoteID,
		HighlightMode:  f.highlight,
		Seed:           f.seed,
	}, nil
}

// env bundles the resources every command works with.
type env struct {
	file  config.FileConfig
	store *store.Store
	langs *language.Store
	gen   *generator.Generator
}

func openEnv() (*env, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	dbPath := config.DefaultDBPath()
	if fileCfg.Paths.Database != nil && *fileCfg.Paths.Database != "" {
		dbPath = *fileCfg.Paths.Database
	}
	wordListDir := config.DefaultWordListDir()
	if fileCfg.Paths.WordListDir != nil && *fileCfg.Paths.WordListDir != "" {
		wordListDir = *fileCfg.Paths.WordListDir
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	langs := language.NewStore(wordListDir)
	return &env{
		file:  fileCfg,
		store: st,
		langs: langs,
		gen:   newGenerator(langs, newLogger()),
	}, nil
}

func (e *env) close() {
	if cerr := e.store.Close(); cerr != nil {
		logErrf("failed to close db: %v\n", cerr)
	}
}

func newGenerator(langs language.Provider, logger *slog.Logger) *generator.Generator {
	sources := map[string]section.Source{
		"poetry":    &section.Poetry{},
		"wikipedia": &section.Wikipedia{},
	}
	return generator.New(langs, quote.NewEmbedded(), sources, generator.WithLogger(logger))
}

func newLogger() *slog.Logger {
	if !verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// customText loads the stored custom text a custom mode test needs.
func (e *env) customText(ctx context.Context, cfg model.Config, name string) (*model.CustomText, error) {
	if cfg.Mode != model.ModeCustom {
		return nil, nil
	}
	if name == "" {
		return nil, fmt.Errorf("custom mode needs --custom <name> (see: typegen custom list)")
	}
	ct, err := e.store.GetCustomText(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to load custom text: %w", err)
	}
	return &ct, nil
}

func (e *env) weakChars(ctx context.Context, cfg model.Config, f *testFlags) map[rune]struct{} {
	set, err := funbox.Parse(cfg.Funbox)
	if err != nil || !set.Contains("weakspot") {
		return nil
	}
	aggs, err := e.store.GetWeakChars(ctx, f.weakWindow, cfg.Language)
	if err != nil {
		logErrf("failed to load weak chars: %v\n", err)
		return nil
	}
	weak := stats.SelectWeakChars(aggs, f.weakTop)
	if len(weak) == 0 {
		logErrln("no stats available for weakspot yet; using normal word frequency")
	}
	return weak
}

func runTypeCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	rootFlags.applyFile(cmd, e.file)
	cfg, err := rootFlags.config()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	custom, err := e.customText(ctx, cfg, rootFlags.custom)
	if err != nil {
		return err
	}
	opts := tui.Options{
		Config:     cfg,
		Store:      e.store,
		Generator:  e.gen,
		CustomText: custom,
		WeakWindow: rootFlags.weakWindow,
		WeakTop:    rootFlags.weakTop,
	}
	if rootRepeat {
		saved, err := e.store.LatestRecord(ctx)
		if err != nil {
			return fmt.Errorf("failed to load last test: %w", err)
		}
		opts.Replay = &saved
	}
	program := tea.NewProgram(tui.NewModel(opts), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
