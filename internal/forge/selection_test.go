package forge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelection_Pool(t *testing.T) {
	tests := []struct {
		name     string
		sel      Selection
		expected string
	}{
		{
			name:     "no class falls back to lowercase",
			sel:      Selection{},
			expected: LowerChars,
		},
		{
			name:     "no class with ambiguous exclusion",
			sel:      Selection{ExcludeAmbiguous: true},
			expected: strings.ReplaceAll(LowerChars, "l", ""),
		},
		{
			name:     "classes concatenate in fixed order",
			sel:      Selection{Symbols: true, Digits: true, Upper: true},
			expected: UpperChars + DigitChars + SymbolChars,
		},
		{
			name:     "lower and digits",
			sel:      Selection{Lower: true, Digits: true},
			expected: LowerChars + DigitChars,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sel.Pool())
		})
	}
}

func TestSelection_PoolExcludesAmbiguous(t *testing.T) {
	sel := AllClasses()
	sel.ExcludeAmbiguous = true

	pool := sel.Pool()
	assert.False(t, strings.ContainsAny(pool, AmbiguousChars))

	// The literal pool is smaller than the nominal size: O and I both leave the upper class.
	assert.Len(t, pool, 24+25+8+len(SymbolChars))
}

func TestSelection_PoolHasNoDuplicates(t *testing.T) {
	pool := AllClasses().Pool()
	seen := make(map[rune]bool, len(pool))
	for _, r := range pool {
		assert.False(t, seen[r], "duplicate %q", r)
		seen[r] = true
	}
	assert.Len(t, pool, 26+26+10+26)
}

func TestSelection_Normalize(t *testing.T) {
	assert.Equal(t, Selection{Lower: true}, Selection{}.Normalize())
	assert.Equal(t, Selection{Lower: true, ExcludeAmbiguous: true}, Selection{ExcludeAmbiguous: true}.Normalize())

	sel := Selection{Digits: true}
	assert.Equal(t, sel, sel.Normalize())
}

func TestSelection_String(t *testing.T) {
	assert.Equal(t, "none", Selection{}.String())
	assert.Equal(t, "upper+lower+digits+symbols", AllClasses().String())
	assert.Equal(t, "lower+digits-ambiguous", Selection{Lower: true, Digits: true, ExcludeAmbiguous: true}.String())
}
