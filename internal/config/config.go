package config

import (
	"fmt"

	"github.com/Veraticus/darkforge/internal/common"
	"github.com/Veraticus/darkforge/internal/forge"
	"github.com/spf13/viper"
)

// Length bounds accepted by the forge.
const (
	MinLength     = 4
	MaxLength     = 64
	DefaultLength = 16
)

// Known theme names.
var themeNames = map[string]bool{
	"default":          true,
	"catppuccin-mocha": true,
}

// Settings is the resolved forge configuration.
type Settings struct {
	Theme      string
	Selection  forge.Selection
	Length     int
	Blind      bool
	Animations bool
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("forge.length", DefaultLength)
	v.SetDefault("forge.upper", true)
	v.SetDefault("forge.lower", true)
	v.SetDefault("forge.digits", true)
	v.SetDefault("forge.symbols", true)
	v.SetDefault("forge.exclude_ambiguous", false)
	v.SetDefault("ui.blind", false)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.animations", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// Load reads settings from the global viper instance.
func Load() (Settings, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads and validates settings from v.
func LoadFrom(v *viper.Viper) (Settings, error) {
	SetDefaults(v)

	s := Settings{
		Length: v.GetInt("forge.length"),
		Selection: forge.Selection{
			Upper:            v.GetBool("forge.upper"),
			Lower:            v.GetBool("forge.lower"),
			Digits:           v.GetBool("forge.digits"),
			Symbols:          v.GetBool("forge.symbols"),
			ExcludeAmbiguous: v.GetBool("forge.exclude_ambiguous"),
		},
		Blind:      v.GetBool("ui.blind"),
		Theme:      v.GetString("ui.theme"),
		Animations: v.GetBool("ui.animations"),
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks the settings for values the forge cannot use.
// An empty class selection is not an error; the forge falls back to lowercase.
func (s Settings) Validate() error {
	if s.Length < MinLength || s.Length > MaxLength {
		return fmt.Errorf("%w: length %d outside %d-%d", common.ErrInvalidConfig, s.Length, MinLength, MaxLength)
	}
	if !themeNames[s.Theme] {
		return fmt.Errorf("%w: unknown theme %q", common.ErrInvalidConfig, s.Theme)
	}
	return nil
}
