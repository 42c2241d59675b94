package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typegen/internal/funbox"
	"github.com/verte-zerg/typegen/internal/model"
)

var funboxNameStyle = lipgloss.NewStyle().Bold(true)

func newFunboxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "funbox",
		Short: "Inspect and combine funbox modifiers",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available funboxes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printFunboxes(cmd.OutOrStdout(), funbox.List())
		},
	})

	var with string
	compatCmd := &cobra.Command{
		Use:   "compatible",
		Short: "List funboxes that can join the given combination",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			active := model.SplitFunbox(with)
			if !funbox.IsCompatible(active, "") {
				return fmt.Errorf("funboxes %q are not a valid combination", with)
			}
			var out []*funbox.Descriptor
			for _, d := range funbox.List() {
				if hasName(active, d.Name) {
					continue
				}
				if funbox.IsCompatible(active, d.Name) {
					out = append(out, d)
				}
			}
			return printFunboxes(cmd.OutOrStdout(), out)
		},
	}
	compatCmd.Flags().StringVar(&with, "with", "none", "#-separated active funboxes")
	cmd.AddCommand(compatCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "check <funbox>",
		Short: "Check that a #-separated funbox combination is valid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := funbox.Parse(args[0])
			if err != nil {
				return err
			}
			if err := funbox.Check(set, nil); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", set.String())
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle <current> <name>",
		Short: "Add a funbox to a combination, or remove it when already present",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := funbox.Toggle(model.Config{Funbox: args[0]}, args[1])
			if err != nil {
				var incompatible *funbox.IncompatibleError
				if errors.As(err, &incompatible) {
					return fmt.Errorf("cannot add %s: %w", args[1], err)
				}
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), cfg.Funbox)
			return err
		},
	})
	return cmd
}

func printFunboxes(w io.Writer, list []*funbox.Descriptor) error {
	width := 0
	for _, d := range list {
		if n := lipgloss.Width(d.Name); n > width {
			width = n
		}
	}
	for _, d := range list {
		line := funboxNameStyle.Width(width+2).Render(d.Name) + d.Description
		if d.Alias != "" {
			line += " (alias " + d.Alias + ")"
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

func hasName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
