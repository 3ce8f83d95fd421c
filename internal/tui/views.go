package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Placeholder texts.
const (
	unidentifiedName = "Unidentified Password"
	forgingLabel     = "Forging..."
	forgingName      = "Sparks fly everywhere"
	unknownStat      = "???"
)

// shakeOffsets nudge the card sideways while it shakes.
var shakeOffsets = []int{0, 2, 1, 3, 1}

const lengthBarWidth = 30

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("⚒️  Dark Forge"),
		m.renderCard(),
		"",
		m.renderMaterials(),
		m.renderLength(),
		"",
		m.renderStatus(),
		m.help.View(m.keymap),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderCard renders the loot card.
func (m Model) renderCard() string {
	rarity := m.appraisal.Rarity
	border := m.theme.RarityColor(rarity.ID)

	label := rarity.Label
	name := rarity.Name
	defense := m.appraisal.DefenseLabel
	crack := m.appraisal.CrackTimeLabel

	switch {
	case m.forging:
		border = m.theme.Primary
		label = m.spinner.View() + " " + forgingLabel
		name = forgingName
		defense = unknownStat
		crack = unknownStat
	case m.flashing:
		border = m.theme.Flash
	}

	if !m.forging && m.masked() {
		name = unidentifiedName
	}

	var body string
	if m.password == "" && m.lastError != nil {
		body = m.theme.StatusError.Render("The anvil is cold. No password was forged.")
	} else {
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().Bold(true).Foreground(m.theme.RarityColor(rarity.ID)).Render(label),
			m.theme.Subtitle.Render(name),
			"",
			m.theme.Code.Render(m.displayPassword()),
			"",
			fmt.Sprintf("🛡️  Defense     %s", defense),
			fmt.Sprintf("⏳ Crack time  %s", crack),
		)
	}

	style := m.theme.Card.BorderForeground(border)
	if m.shaking {
		style = style.MarginLeft(shakeOffsets[m.shakeTick%len(shakeOffsets)])
	}
	return style.Render(body)
}

// displayPassword is what the password line shows: the rolling scramble while
// forging, question marks in blind mode, the password otherwise.
func (m Model) displayPassword() string {
	switch {
	case m.forging:
		return m.scramble
	case m.masked():
		return strings.Repeat("?", len(m.password))
	default:
		return m.password
	}
}

// renderMaterials renders the character class toggles.
func (m Model) renderMaterials() string {
	sel := m.selection
	return strings.Join([]string{
		m.checkbox("Upper", "u", sel.Upper),
		m.checkbox("Lower", "l", sel.Lower),
		m.checkbox("Digits", "d", sel.Digits),
		m.checkbox("Symbols", "s", sel.Symbols),
		m.checkbox("No 0O1lI", "x", sel.ExcludeAmbiguous),
		m.checkbox("Blind", "b", m.blind),
	}, "  ")
}

func (m Model) checkbox(label, shortcut string, on bool) string {
	if on {
		return m.theme.Checked.Render(fmt.Sprintf("[x] %s (%s)", label, shortcut))
	}
	return m.theme.Unchecked.Render(fmt.Sprintf("[ ] %s (%s)", label, shortcut))
}

// renderLength renders the length slider.
func (m Model) renderLength() string {
	filled := (m.length - MinLength) * lengthBarWidth / (MaxLength - MinLength)
	bar := m.theme.ProgressFull.Render(strings.Repeat("━", filled)) +
		m.theme.ProgressEmpty.Render(strings.Repeat("─", lengthBarWidth-filled))
	return fmt.Sprintf("Length %2d  %s", m.length, bar)
}

// renderStatus renders the toast, the last error, or the blind-mode hint.
func (m Model) renderStatus() string {
	switch {
	case m.toast != "":
		return m.theme.StatusSuccess.Render("✓ " + m.toast)
	case m.lastError != nil:
		return m.theme.StatusError.Render("✗ " + m.lastError.Error())
	case m.blind:
		return m.theme.StatusPending.Render("Blind mode: press p to peek")
	default:
		return ""
	}
}
