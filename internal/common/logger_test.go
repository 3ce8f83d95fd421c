package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"chatty", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetupLoggerTo(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, SetupLoggerTo(&buf, slog.LevelDebug, "json"))

	LogDebug("password forged", Fields{"length": 16})
	assert.Contains(t, buf.String(), `"msg":"password forged"`)
	assert.Contains(t, buf.String(), `"length":16`)

	buf.Reset()
	require.NoError(t, SetupLoggerTo(&buf, slog.LevelInfo, "console"))
	LogDebug("hidden", nil)
	assert.Empty(t, buf.String())

	slog.Info("batch forged", "count", 3)
	assert.Contains(t, buf.String(), "count=3")

	assert.ErrorIs(t, SetupLoggerTo(&buf, slog.LevelInfo, "xml"), ErrInvalidConfig)
}

func TestUserMessage(t *testing.T) {
	inner := errors.New("no entropy")
	err := NewUserError("The forge refused to light", inner)

	assert.Equal(t, "The forge refused to light", UserMessage(err))
	assert.Equal(t, "The forge refused to light: no entropy", err.Error())
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}
