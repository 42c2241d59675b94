package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/typegen/internal/config"
	"github.com/verte-zerg/typegen/internal/model"
	"github.com/verte-zerg/typegen/internal/quote"
)

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	e, err := openEnv()
	if err != nil {
		return err
	}
	defer e.close()
	names, err := e.langs.List()
	if err != nil {
		return fmt.Errorf("failed to list languages: %w", err)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
			return err
		}
	}
	return nil
}

func newCustomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "custom",
		Short: "Manage stored custom texts",
	}

	var (
		mode       string
		limitMode  string
		limitValue int
		pipe       bool
	)
	setCmd := &cobra.Command{
		Use:   "set <name> [text]",
		Short: "Store a custom text (read from stdin when text is omitted)",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := buildCustomText(args, cmd.InOrStdin(), mode, limitMode, limitValue, pipe)
			if err != nil {
				return err
			}
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()
			if err := e.store.SaveCustomText(cmd.Context(), ct); err != nil {
				return fmt.Errorf("failed to save custom text: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%d entries)\n", ct.Name, len(ct.Words))
			return err
		},
	}
	setCmd.Flags().StringVar(&mode, "mode", string(model.CustomRepeat), "entry order: repeat, random or shuffle")
	setCmd.Flags().StringVar(&limitMode, "limit-mode", string(model.LimitWord), "limit kind: word, time or section")
	setCmd.Flags().IntVar(&limitValue, "limit-value", 0, "limit amount (0 uses the whole text, or infinite for random)")
	setCmd.Flags().BoolVar(&pipe, "pipe", false, "split sections on | instead of whitespace")
	cmd.AddCommand(setCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored custom text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()
			ct, err := e.store.GetCustomText(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			sep := " "
			if ct.Pipe {
				sep = " | "
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "mode=%s limit=%s:%d pipe=%t\n%s\n",
				ct.Mode, ct.LimitMode, ct.LimitValue, ct.Pipe, strings.Join(ct.Words, sep))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List stored custom texts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()
			names, err := e.store.ListCustomTexts(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list custom texts: %w", err)
			}
			for _, name := range names {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), name); err != nil {
					return err
				}
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a stored custom text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()
			return e.store.DeleteCustomText(cmd.Context(), args[0])
		},
	})
	return cmd
}

func buildCustomText(args []string, stdin io.Reader, mode, limitMode string, limitValue int, pipe bool) (model.CustomText, error) {
	ct := model.CustomText{
		Name:       strings.TrimSpace(args[0]),
		Mode:       model.CustomTextMode(strings.ToLower(mode)),
		LimitMode:  model.CustomLimitMode(strings.ToLower(limitMode)),
		LimitValue: limitValue,
		Pipe:       pipe,
	}
	switch ct.Mode {
	case model.CustomRepeat, model.CustomRandom, model.CustomShuffle:
	default:
		return ct, fmt.Errorf("--mode must be repeat, random or shuffle")
	}
	switch ct.LimitMode {
	case model.LimitWord, model.LimitTime, model.LimitSection:
	default:
		return ct, fmt.Errorf("--limit-mode must be word, time or section")
	}
	if limitValue < 0 {
		return ct, fmt.Errorf("--limit-value must be >= 0")
	}
	var raw string
	if len(args) > 1 {
		raw = args[1]
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return ct, fmt.Errorf("failed to read text: %w", err)
		}
		raw = string(data)
	}
	ct.Words = model.ParseCustomText(raw, pipe)
	if len(ct.Words) == 0 {
		return ct, fmt.Errorf("custom text is empty")
	}
	return ct, nil
}

func newQuoteCmd() *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Show quotes and manage favorites",
	}
	cmd.PersistentFlags().StringVar(&lang, "language", defaultLanguage, "quote language")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Print a quote by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := lookupQuote(cmd, lang, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "#%d %s\n%s\n", q.ID, q.Source, q.Text)
			return err
		},
	})

	fav := &cobra.Command{
		Use:   "fav",
		Short: "Manage favorite quotes",
	}
	fav.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Mark a quote as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := lookupQuote(cmd, lang, args[0])
			if err != nil {
				return err
			}
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()
			return e.store.AddFavorite(cmd.Context(), lang, q.ID)
		},
	})
	fav.AddCommand(&cobra.Command{
		Use:   "remove <id>",
		Short: "Unmark a favorite quote",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid quote id %q", args[0])
			}
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()
			return e.store.RemoveFavorite(cmd.Context(), lang, id)
		},
	})
	fav.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List favorite quote ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.close()
			ids, err := e.store.ListFavorites(cmd.Context(), lang)
			if err != nil {
				return fmt.Errorf("failed to list favorites: %w", err)
			}
			for _, id := range ids {
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), id); err != nil {
					return err
				}
			}
			return nil
		},
	})
	cmd.AddCommand(fav)
	return cmd
}

func lookupQuote(cmd *cobra.Command, lang, rawID string) (quote.Quote, error) {
	id, err := strconv.Atoi(rawID)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("invalid quote id %q", rawID)
	}
	coll, err := quote.NewEmbedded().Get(cmd.Context(), lang)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("failed to load quotes: %w", err)
	}
	return coll.PickByID(id)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typegen configuration
# Uncomment a value to enable it. CLI flags override config values.

[test]
# mode = %q            # time, words, quote or custom
# words = %d               # Words per test in words mode
# time = %d                # Seconds per test in time mode
# punctuation = false
# numbers = false
# lazy-mode = false
# british-english = false
# funbox = %q            # #-separated funbox modifiers
# language = %q       # Language name
# quote-length = [0, 1]    # Quote length groups, or [-2] for favorites
# highlight = %q        # letter, word or off
# seed = 0                 # Fixed random seed (0 seeds from the clock)

[paths]
# wordlist-dir = %q
# database = %q

[weak]
# top = %d                  # Number of weak characters weakspot focuses on
# window = %d              # Number of recent sessions used to find weak characters
`,
		defaultMode,
		defaultWords,
		defaultTime,
		defaultFunbox,
		defaultLanguage,
		defaultHighlight,
		config.DefaultWordListDir(),
		config.DefaultDBPath(),
		defaultWeakTop,
		defaultWeakWindow,
	)
}
