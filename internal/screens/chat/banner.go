package chat

import (
	"charm.land/lipgloss/v2"

	"quizchat/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗███████╗ ██████╗██╗  ██╗ █████╗ ████████╗
 ██╔═══██╗██║   ██║██║╚══███╔╝██╔════╝██║  ██║██╔══██╗╚══██╔══╝
 ██║   ██║██║   ██║██║  ███╔╝ ██║     ███████║███████║   ██║
 ██║▄▄ ██║██║   ██║██║ ███╔╝  ██║     ██╔══██║██╔══██║   ██║
 ╚██████╔╝╚██████╔╝██║███████╗╚██████╗██║  ██║██║  ██║   ██║
  ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝ ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝`

const bannerCompact = "Q U I Z C H A T"

// renderBanner returns the QUIZCHAT banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 66 columns.
func renderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 66 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
