package main

import (
	"github.com/Veraticus/darkforge/internal/common"
	"github.com/Veraticus/darkforge/internal/config"
	"github.com/Veraticus/darkforge/internal/tui"
	"github.com/Veraticus/darkforge/internal/tui/themes"
	"github.com/spf13/cobra"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the forge",
		Long: `Open the interactive forge. Press space to forge, c to copy and ? for
the full list of keys.`,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load()
	if err != nil {
		return common.NewUserError("Your forge settings need attention", err)
	}

	common.LogDebug("opening forge", common.Fields{
		"theme":     settings.Theme,
		"length":    settings.Length,
		"selection": settings.Selection.String(),
	})

	return tui.Run(cmd.Context(),
		tui.WithTheme(themes.GetTheme(settings.Theme)),
		tui.WithSelection(settings.Selection),
		tui.WithLength(settings.Length),
		tui.WithBlind(settings.Blind),
		tui.WithAnimations(settings.Animations),
	)
}
