package tui

import (
	"strings"

	"github.com/Veraticus/darkforge/internal/common"
	"github.com/Veraticus/darkforge/internal/forge"
	"github.com/Veraticus/darkforge/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Toast texts.
const (
	toastCopied         = "Loot stashed in your inventory!"
	toastCopiedFallback = "Loot sent to your terminal's clipboard!"
)

// Model holds the forge screen state. Every field is owned by the update
// cycle; nothing is shared with the forge core.
type Model struct {
	theme     themes.Theme
	lastError error
	spinner   spinner.Model
	help      help.Model
	config    Config
	keymap    KeyMap
	appraisal forge.Appraisal
	selection forge.Selection
	password  string
	scramble  string
	toast     string
	length    int
	width     int
	height    int
	forgeSeq  int
	peekSeq   int
	toastSeq  int
	shakeTick int
	blind     bool
	peeking   bool
	forging   bool
	shaking   bool
	flashing  bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	sp := spinner.New(spinner.WithSpinner(spinner.Points))
	sp.Style = sp.Style.Foreground(cfg.Theme.Primary)

	return Model{
		theme:     cfg.Theme,
		config:    cfg,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		selection: cfg.Selection.Normalize(),
		length:    clampLength(cfg.Length),
		blind:     cfg.Blind,
		width:     cfg.Width,
		height:    cfg.Height,
	}
}

// New builds a forge model ready to hand to tea.NewProgram.
func New(opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return newModel(cfg)
}

// Init forges the first password without animation.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return forgeRequestMsg{animate: false}
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case forgeRequestMsg:
		return m.forge(msg.animate)

	case scrambleTickMsg:
		if msg.seq != m.forgeSeq || !m.forging {
			return m, nil
		}
		m.scramble = m.scrambleFrame()
		m.shakeTick++
		return m, scrambleTick(msg.seq)

	case shakeDoneMsg:
		if msg.seq == m.forgeSeq {
			m.shaking = false
		}
		return m, nil

	case revealMsg:
		if msg.seq != m.forgeSeq {
			return m, nil
		}
		m.forging = false
		m.shaking = false
		m.scramble = ""
		m.flashing = true
		return m, flashTimer(msg.seq)

	case flashDoneMsg:
		if msg.seq == m.forgeSeq {
			m.flashing = false
		}
		return m, nil

	case peekEndMsg:
		if msg.seq == m.peekSeq {
			m.peeking = false
		}
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.lastError = common.NewUserError("The loot slipped from your grasp", msg.err)
			return m, nil
		}
		m.toast = toastCopied
		if msg.fallback {
			m.toast = toastCopiedFallback
		}
		m.toastSeq++
		return m, toastTimer(m.toastSeq)

	case toastClearMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case spinner.TickMsg:
		if !m.forging {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey maps key presses to forge actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit), key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Forge):
		if m.forging {
			return m, nil
		}
		return m.forge(true)

	case key.Matches(msg, m.keymap.Copy):
		if m.password == "" {
			return m, nil
		}
		return m, m.copyPassword()

	case key.Matches(msg, m.keymap.Peek):
		m.peeking = true
		m.peekSeq++
		m.appraisal = m.config.Classifier.Classify(m.selection, len(m.password))
		return m, peekTimer(m.peekSeq)

	case key.Matches(msg, m.keymap.ToggleBlind):
		m.blind = !m.blind
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keymap.Longer):
		return m.setLength(m.length + 1)

	case key.Matches(msg, m.keymap.Shorter):
		return m.setLength(m.length - 1)

	case key.Matches(msg, m.keymap.ToggleUpper):
		m.selection.Upper = !m.selection.Upper
		return m.selectionChanged()

	case key.Matches(msg, m.keymap.ToggleLower):
		m.selection.Lower = !m.selection.Lower
		return m.selectionChanged()

	case key.Matches(msg, m.keymap.ToggleDigits):
		m.selection.Digits = !m.selection.Digits
		return m.selectionChanged()

	case key.Matches(msg, m.keymap.ToggleSymbols):
		m.selection.Symbols = !m.selection.Symbols
		return m.selectionChanged()

	case key.Matches(msg, m.keymap.ToggleAmbiguous):
		m.selection.ExcludeAmbiguous = !m.selection.ExcludeAmbiguous
		return m.selectionChanged()
	}

	return m, nil
}

// selectionChanged re-forges instantly. Clearing the last class turns
// lowercase back on, as the generator would.
func (m Model) selectionChanged() (tea.Model, tea.Cmd) {
	m.selection = m.selection.Normalize()
	return m.forge(false)
}

func (m Model) setLength(n int) (tea.Model, tea.Cmd) {
	n = clampLength(n)
	if n == m.length {
		return m, nil
	}
	m.length = n
	return m.forge(false)
}

// forge draws a new password and appraises it. An animated forge hides the
// result until the reveal tick; an instant one shows it right away. A forge
// during an animation replaces the password that will be revealed.
func (m Model) forge(animate bool) (Model, tea.Cmd) {
	password, err := m.config.Generator.Generate(m.selection, m.length)
	if err != nil {
		m.password = ""
		m.appraisal = forge.Appraisal{}
		m.lastError = common.NewUserError("The forge refused to light", err)
		return m, nil
	}

	m.password = password
	m.lastError = nil
	m.appraisal = m.config.Classifier.Classify(m.selection, len(password))

	common.LogDebug("password forged", common.Fields{
		"length":    len(password),
		"pool_size": m.appraisal.PoolSize,
		"entropy":   m.appraisal.Entropy,
		"rarity":    m.appraisal.Rarity.ID,
	})

	if !animate || !m.config.Animations {
		return m, nil
	}

	m.forgeSeq++
	m.forging = true
	m.shaking = true
	m.flashing = false
	m.shakeTick = 0
	m.scramble = m.scrambleFrame()

	return m, tea.Batch(forgeSequence(m.forgeSeq), m.spinner.Tick)
}

// scrambleFrame is the placeholder shown while forging.
func (m Model) scrambleFrame() string {
	if m.blind {
		return strings.Repeat("?", m.length)
	}
	return scrambleText(m.length)
}

// masked reports whether the password and item name are hidden.
func (m Model) masked() bool {
	return m.blind && !m.peeking
}

// Password returns the current password. It exists for callers that need the
// result after the program exits.
func (m Model) Password() string {
	return m.password
}
