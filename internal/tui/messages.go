package tui

// Forge requests.
type forgeRequestMsg struct {
	animate bool
}

// Forge animation phases. seq ties a tick to the forge that scheduled it so
// ticks from an earlier forge are ignored.
type scrambleTickMsg struct {
	seq int
}

type shakeDoneMsg struct {
	seq int
}

type revealMsg struct {
	seq int
}

type flashDoneMsg struct {
	seq int
}

// Peek and toast expiry.
type peekEndMsg struct {
	seq int
}

type toastClearMsg struct {
	seq int
}

// Clipboard result.
type copiedMsg struct {
	err      error
	fallback bool
}
