package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Veraticus/darkforge/internal/cli"
	"github.com/Veraticus/darkforge/internal/common"
	"github.com/Veraticus/darkforge/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "forge",
		Short: "⚒️  Forge passwords and appraise them as loot",
		Long: `darkforge: a password generator that treats every password as a loot drop.

Passwords are drawn from a cryptographically secure source. Their strength is
shown as a rarity tier with some entirely unscientific flavor text.

Run without a subcommand to open the forge.`,
		PersistentPreRunE: initConfig,
		RunE:              runTUI,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
)

func init() {
	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/forge/config.yaml)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-format", "console", "log format (console, json)")

	// Materials
	flags.IntP("length", "l", config.DefaultLength, fmt.Sprintf("password length (%d-%d)", config.MinLength, config.MaxLength))
	flags.Bool("upper", true, "include uppercase letters")
	flags.Bool("lower", true, "include lowercase letters")
	flags.Bool("digits", true, "include digits")
	flags.Bool("symbols", true, "include symbols")
	flags.BoolP("exclude-ambiguous", "x", false, "leave out 0, O, 1, l and I")
	flags.Bool("blind", false, "hide the password until peeked")
	flags.String("theme", "default", "TUI theme (default, catppuccin-mocha)")
	flags.Bool("animations", true, "play the forge animation")

	// Bind flags to viper
	bindings := map[string]string{
		"logging.level":           "log-level",
		"logging.format":          "log-format",
		"forge.length":            "length",
		"forge.upper":             "upper",
		"forge.lower":             "lower",
		"forge.digits":            "digits",
		"forge.symbols":           "symbols",
		"forge.exclude_ambiguous": "exclude-ambiguous",
		"ui.blind":                "blind",
		"ui.theme":                "theme",
		"ui.animations":           "animations",
	}
	for key, flag := range bindings {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	// Add commands
	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(tiersCmd())
	rootCmd.AddCommand(tuiCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Debug("Received interrupt signal, shutting down")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatError(err.Error())) //nolint:forbidigo // User-facing output
		slog.Debug("command failed", "error", err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		dir, err := config.DefaultDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		viper.AddConfigPath(dir)
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables, e.g. FORGE_FORGE_LENGTH=24 or FORGE_UI_BLIND=true
	viper.SetEnvPrefix("FORGE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString("logging.level"))
	if err != nil {
		return err
	}
	return common.SetupLogger(level, viper.GetString("logging.format"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "forge %s\n", version)
		},
	}
}
