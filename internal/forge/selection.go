// Package forge generates passwords and appraises them as loot.
//
// Generation draws every character from a cryptographically secure source.
// Appraisal maps a toy entropy estimate onto rarity tiers and flavor text;
// it is decoration, not a strength meter.
package forge

import "strings"

// Character classes.
const (
	UpperChars  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowerChars  = "abcdefghijklmnopqrstuvwxyz"
	DigitChars  = "0123456789"
	SymbolChars = "!@#$%^&*()_+-=[]{}|;:,.<>?"

	// AmbiguousChars are dropped from the pool when ExcludeAmbiguous is set.
	AmbiguousChars = "0O1lI"
)

// Selection chooses which character classes make up the pool.
type Selection struct {
	Upper            bool
	Lower            bool
	Digits           bool
	Symbols          bool
	ExcludeAmbiguous bool
}

// AllClasses selects every class with ambiguous characters kept.
func AllClasses() Selection {
	return Selection{Upper: true, Lower: true, Digits: true, Symbols: true}
}

// Empty reports whether no character class is selected.
func (s Selection) Empty() bool {
	return !s.Upper && !s.Lower && !s.Digits && !s.Symbols
}

// Normalize forces lowercase on when no class is selected.
func (s Selection) Normalize() Selection {
	if s.Empty() {
		s.Lower = true
	}
	return s
}

// Pool returns the characters a password is drawn from. It is never empty.
func (s Selection) Pool() string {
	s = s.Normalize()

	var b strings.Builder
	if s.Upper {
		b.WriteString(UpperChars)
	}
	if s.Lower {
		b.WriteString(LowerChars)
	}
	if s.Digits {
		b.WriteString(DigitChars)
	}
	if s.Symbols {
		b.WriteString(SymbolChars)
	}

	pool := b.String()
	if s.ExcludeAmbiguous {
		pool = strings.Map(func(r rune) rune {
			if strings.ContainsRune(AmbiguousChars, r) {
				return -1
			}
			return r
		}, pool)
	}
	return pool
}

// String renders the selection as a compact flag list, e.g. "upper+lower-ambiguous".
func (s Selection) String() string {
	var parts []string
	if s.Upper {
		parts = append(parts, "upper")
	}
	if s.Lower {
		parts = append(parts, "lower")
	}
	if s.Digits {
		parts = append(parts, "digits")
	}
	if s.Symbols {
		parts = append(parts, "symbols")
	}
	if len(parts) == 0 {
		parts = append(parts, "none")
	}
	out := strings.Join(parts, "+")
	if s.ExcludeAmbiguous {
		out += "-ambiguous"
	}
	return out
}
