package landing

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/ui/theme"
)

const gavelArt = `    ▄▄▄▄▄▄▄
   ███████████
   ███████████▄▄▄▄▄▄▄▄▄▄▄▄
   ███████████▀▀▀▀▀▀▀▀▀▀▀▀
    ▀▀▀▀▀▀▀
 ▄▄▄▄▄▄▄▄▄▄▄▄▄
 ▀▀▀▀▀▀▀▀▀▀▀▀▀`

const bannerArt = `
  ___   _   _  _  ___ ___ ___ ___   ___ _    _    ___ ___   _   _    _
 / __| /_\ | \| |/ __| __| _ \__ \ |_ _| |  | |  | __/ __| /_\ | |  | |
| (__ / _ \| .' | (__| _||   / /_/  | || |__| |__| _| (_ |/ _ \| |__|_|
 \___/_/ \_\_|\_|\___|___|_|_\(_)  |___|____|____|___\___/_/ \_\____(_)`

const bannerCompact = "C A N C E R ?   I L L E G A L !"

// RenderBanner returns the title banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 76 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 76 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// RenderGavel returns the gavel art; struck lowers it onto the block.
func RenderGavel(struck bool) string {
	style := lipgloss.NewStyle().Foreground(theme.Secondary)
	if struck {
		return style.Render("\n" + gavelArt)
	}
	return style.Render(gavelArt + "\n")
}
