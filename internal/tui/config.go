package tui

import (
	"io"
	"os"

	"github.com/Veraticus/darkforge/internal/forge"
	"github.com/Veraticus/darkforge/internal/tui/themes"
	"github.com/atotto/clipboard"
)

// Length bounds for the length control.
const (
	MinLength = 4
	MaxLength = 64
)

// ClipboardFunc writes text to the system clipboard.
type ClipboardFunc func(text string) error

// Config holds TUI configuration.
type Config struct {
	Theme      themes.Theme
	Generator  *forge.Generator
	Classifier *forge.Classifier
	Clipboard  ClipboardFunc
	// Fallback receives an OSC52 sequence when Clipboard fails.
	Fallback   io.Writer
	Selection  forge.Selection
	Length     int
	Width      int
	Height     int
	Blind      bool
	Animations bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:      themes.Default,
		Generator:  forge.NewGenerator(),
		Classifier: forge.NewClassifier(),
		Clipboard:  clipboard.WriteAll,
		Fallback:   os.Stderr,
		Selection:  forge.AllClasses(),
		Length:     16,
		Width:      80,
		Height:     24,
		Animations: true,
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSelection sets the initial character classes.
func WithSelection(sel forge.Selection) Option {
	return func(c *Config) {
		c.Selection = sel
	}
}

// WithLength sets the initial password length, clamped to the slider range.
func WithLength(length int) Option {
	return func(c *Config) {
		c.Length = clampLength(length)
	}
}

// WithBlind starts the TUI in blind mode.
func WithBlind(enabled bool) Option {
	return func(c *Config) {
		c.Blind = enabled
	}
}

// WithAnimations enables or disables the forge animation.
func WithAnimations(enabled bool) Option {
	return func(c *Config) {
		c.Animations = enabled
	}
}

// WithGenerator replaces the password generator.
func WithGenerator(g *forge.Generator) Option {
	return func(c *Config) {
		c.Generator = g
	}
}

// WithClassifier replaces the appraiser.
func WithClassifier(cl *forge.Classifier) Option {
	return func(c *Config) {
		c.Classifier = cl
	}
}

// WithClipboard replaces the clipboard writer and its OSC52 fallback destination.
func WithClipboard(fn ClipboardFunc, fallback io.Writer) Option {
	return func(c *Config) {
		c.Clipboard = fn
		c.Fallback = fallback
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

func clampLength(n int) int {
	return min(max(n, MinLength), MaxLength)
}
