package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/Veraticus/darkforge/internal/cli"
	"github.com/Veraticus/darkforge/internal/common"
	"github.com/Veraticus/darkforge/internal/config"
	"github.com/Veraticus/darkforge/internal/forge"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

// progressThreshold is the batch size from which a progress bar is drawn.
const progressThreshold = 25

func generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Forge passwords without the TUI",
		Long: `Forge one or more passwords and print them as loot cards.

With --quiet only the passwords are printed, one per line, which makes the
output suitable for scripts.`,
		Example: `  forge generate
  forge generate --length 24 --symbols=false
  forge generate -n 100 -q > passwords.txt`,
		RunE: runGenerate,
	}

	cmd.Flags().IntP("count", "n", 1, "number of passwords to forge")
	cmd.Flags().BoolP("quiet", "q", false, "print bare passwords only")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return common.NewUserError("Your forge settings need attention", err)
	}

	count, _ := cmd.Flags().GetInt("count")
	quiet, _ := cmd.Flags().GetBool("quiet")
	if count < 1 {
		return common.NewUserError(
			fmt.Sprintf("Cannot forge %d passwords", count),
			fmt.Errorf("%w: count must be at least 1", common.ErrInvalidConfig),
		)
	}

	b := &batch{
		out:        cmd.OutOrStdout(),
		errOut:     cmd.ErrOrStderr(),
		generator:  forge.NewGenerator(),
		classifier: forge.NewClassifier(),
		selection:  settings.Selection.Normalize(),
		length:     settings.Length,
		count:      count,
		quiet:      quiet,
	}

	handler := cli.NewInterruptHandler(b.errOut)
	ctx := handler.HandleInterrupts(cmd.Context(), b.progress)

	if err := b.run(ctx); err != nil {
		if handler.WasInterrupted() || errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return nil
}

// batch forges count passwords and writes them out.
type batch struct {
	out        io.Writer
	errOut     io.Writer
	generator  *forge.Generator
	classifier *forge.Classifier
	selection  forge.Selection
	length     int
	count      int
	quiet      bool
	forged     atomic.Int64
}

func (b *batch) run(ctx context.Context) error {
	var bar *progressbar.ProgressBar
	if b.count >= progressThreshold {
		bar = b.newProgressBar()
	}

	for i := 0; i < b.count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		password, err := b.generator.Generate(b.selection, b.length)
		if err != nil {
			return common.NewUserError("The forge refused to light", err)
		}

		if b.quiet {
			_, err = fmt.Fprintln(b.out, password)
		} else {
			appraisal := b.classifier.Classify(b.selection, len(password))
			_, err = fmt.Fprintln(b.out, cli.RenderCard(password, appraisal))
		}
		if err != nil {
			return fmt.Errorf("failed to write password: %w", err)
		}

		b.forged.Add(1)
		if bar != nil {
			if err := bar.Add(1); err != nil {
				slog.Warn("Failed to update progress bar", "error", err)
			}
		}
	}

	slog.Debug("batch forged",
		"count", b.count,
		"length", b.length,
		"selection", b.selection.String())

	return nil
}

func (b *batch) newProgressBar() *progressbar.ProgressBar {
	return progressbar.NewOptions(b.count,
		progressbar.OptionSetWriter(b.errOut),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[red][bold]Forging...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[yellow]=[reset]",
			SaucerHead:    "[yellow]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(b.errOut); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}

// progress reports how many passwords made it out before an interrupt.
func (b *batch) progress() string {
	return fmt.Sprintf("%d of %d passwords forged", b.forged.Load(), b.count)
}
