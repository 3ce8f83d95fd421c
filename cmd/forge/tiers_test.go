package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Veraticus/darkforge/internal/forge"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTiers(t *testing.T) {
	tests := []struct {
		name     string
		sel      forge.Selection
		length   int
		current  string
		contains []string
	}{
		{
			name:     "lowercase",
			sel:      forge.Selection{Lower: true},
			length:   16,
			current:  "Epic",
			contains: []string{"pool of 26", "lower", "6+", "24+"},
		},
		{
			name:     "everything without ambiguous",
			sel:      forge.Selection{Upper: true, Lower: true, Digits: true, Symbols: true, ExcludeAmbiguous: true},
			length:   20,
			current:  "Ancient",
			contains: []string{"pool of 84", "18+"},
		},
		{
			name:     "digits",
			sel:      forge.Selection{Digits: true},
			length:   4,
			current:  "Common",
			contains: []string{"pool of 10", "34+"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, writeTiers(&out, tt.sel, tt.length))

			text := out.String()
			for _, want := range tt.contains {
				assert.Contains(t, text, want)
			}
			for _, r := range forge.Rarities() {
				assert.Contains(t, text, r.Name)
			}

			var marked []string
			for _, line := range strings.Split(text, "\n") {
				if strings.HasPrefix(line, "▶") {
					marked = append(marked, line)
				}
			}
			require.Len(t, marked, 1)
			assert.Contains(t, marked[0], tt.current)
		})
	}
}
