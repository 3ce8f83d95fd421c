package cli

import (
	"fmt"

	"github.com/Veraticus/darkforge/internal/forge"
	"github.com/charmbracelet/lipgloss"
)

// RenderCard renders a forged password as a loot card.
func RenderCard(password string, a forge.Appraisal) string {
	rarity := RarityStyle(a.Rarity.ID)

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		rarity.Render(fmt.Sprintf("[%s] %s", a.Rarity.Label, a.Rarity.Name)),
		"",
		BoldStyle.Render(password),
		"",
		fmt.Sprintf("%s  Defense     %s", ShieldIcon, a.DefenseLabel),
		fmt.Sprintf("%s  Crack time  %s", ClockIcon, a.CrackTimeLabel),
		SubtleStyle.Render(fmt.Sprintf("%.1f bits from a pool of %d", a.Entropy, a.PoolSize)),
	)

	return CardStyle.
		BorderForeground(RarityColors[a.Rarity.ID]).
		Render(body)
}
