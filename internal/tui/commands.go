package tui

import (
	"math/rand"
	"strings"
	"time"

	"github.com/Veraticus/darkforge/internal/common"
	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
)

// Forge animation timing.
const (
	scrambleInterval = 50 * time.Millisecond
	shakeDuration    = 600 * time.Millisecond
	revealDelay      = 800 * time.Millisecond
	flashDuration    = 500 * time.Millisecond
	peekDuration     = 1500 * time.Millisecond
	toastDuration    = 2 * time.Second
)

// scrambleChars feed the rolling placeholder shown while forging.
const scrambleChars = "!@#$%^&*()[]{}|;:,.<>?/~`ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// scrambleText returns length decorative characters. It is not a password
// and uses the ordinary random source.
func scrambleText(length int) string {
	var b strings.Builder
	b.Grow(length)
	for i := 0; i < length; i++ {
		b.WriteByte(scrambleChars[rand.Intn(len(scrambleChars))])
	}
	return b.String()
}

func scrambleTick(seq int) tea.Cmd {
	return tea.Tick(scrambleInterval, func(time.Time) tea.Msg {
		return scrambleTickMsg{seq: seq}
	})
}

// forgeSequence schedules the shake, scramble and reveal phases.
func forgeSequence(seq int) tea.Cmd {
	return tea.Batch(
		scrambleTick(seq),
		tea.Tick(shakeDuration, func(time.Time) tea.Msg {
			return shakeDoneMsg{seq: seq}
		}),
		tea.Tick(revealDelay, func(time.Time) tea.Msg {
			return revealMsg{seq: seq}
		}),
	)
}

func flashTimer(seq int) tea.Cmd {
	return tea.Tick(flashDuration, func(time.Time) tea.Msg {
		return flashDoneMsg{seq: seq}
	})
}

func peekTimer(seq int) tea.Cmd {
	return tea.Tick(peekDuration, func(time.Time) tea.Msg {
		return peekEndMsg{seq: seq}
	})
}

func toastTimer(seq int) tea.Cmd {
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastClearMsg{seq: seq}
	})
}

// copyPassword writes the password to the clipboard, falling back to an
// OSC52 escape sequence that asks the terminal to do it.
func (m Model) copyPassword() tea.Cmd {
	password := m.password
	write := m.config.Clipboard
	fallback := m.config.Fallback

	return func() tea.Msg {
		if password == "" {
			return copiedMsg{err: common.ErrNothingToCopy}
		}

		err := common.ErrClipboardUnavailable
		if write != nil {
			err = write(password)
		}
		if err == nil {
			return copiedMsg{}
		}

		common.LogDebug("clipboard write failed, trying OSC52", common.Fields{"error": err.Error()})
		if fallback == nil {
			return copiedMsg{err: err}
		}
		if _, oscErr := osc52.New(password).WriteTo(fallback); oscErr != nil {
			return copiedMsg{err: oscErr}
		}
		return copiedMsg{fallback: true}
	}
}
