package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/darkforge/internal/cli"
	"github.com/Veraticus/darkforge/internal/common"
	"github.com/Veraticus/darkforge/internal/config"
	"github.com/Veraticus/darkforge/internal/forge"
	"github.com/spf13/cobra"
)

func tiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Show the rarity tiers and the length that reaches each",
		Long: `Show every rarity tier with its entropy threshold and the shortest
password length that reaches it using the current materials.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return common.NewUserError("Your forge settings need attention", err)
			}
			return writeTiers(cmd.OutOrStdout(), settings.Selection.Normalize(), settings.Length)
		},
	}
}

// writeTiers prints the tier table for sel, marking the tier that length lands in.
func writeTiers(out io.Writer, sel forge.Selection, length int) error {
	current := forge.RarityFor(forge.Entropy(sel, length))

	if _, err := fmt.Fprintln(out, cli.FormatTitle(cli.ForgeIcon+"  Rarity Tiers")); err != nil {
		return fmt.Errorf("failed to write title: %w", err)
	}
	if _, err := fmt.Fprintf(out, "Materials: %s (pool of %d)\n\n", sel, forge.NominalPoolSize(sel)); err != nil {
		return fmt.Errorf("failed to write materials: %w", err)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	defer func() {
		if flushErr := w.Flush(); flushErr != nil {
			slog.Error("failed to flush table writer", "error", flushErr)
		}
	}()

	header := cli.TableHeaderStyle
	if _, err := fmt.Fprintf(w, "  \t%s\t%s\t%s\t%s\n",
		header.Render("Tier"),
		header.Render("Min bits"),
		header.Render("Item"),
		header.Render("Length")); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if _, err := fmt.Fprintf(w, "  \t%s\t%s\t%s\t%s\n",
		strings.Repeat("─", 10),
		strings.Repeat("─", 8),
		strings.Repeat("─", 22),
		strings.Repeat("─", 6)); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}

	for _, r := range forge.Rarities() {
		marker := " "
		if r.ID == current.ID {
			marker = "▶"
		}

		reach := "-"
		if n := forge.CrossoverLength(sel, r); n <= config.MaxLength {
			reach = fmt.Sprintf("%d+", max(n, config.MinLength))
		}

		if _, err := fmt.Fprintf(w, "%s\t%s\t%.0f\t%s\t%s\n",
			marker,
			cli.RarityStyle(r.ID).Render(r.Label),
			r.Min,
			r.Name,
			reach); err != nil {
			return fmt.Errorf("failed to write tier %s: %w", r.ID, err)
		}
	}

	return nil
}
