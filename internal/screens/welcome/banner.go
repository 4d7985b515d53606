package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/echoz/internal/ui/theme"
)

const bannerArt = `
 ███████╗ ██████╗██╗  ██╗ ██████╗ ███████╗
 ██╔════╝██╔════╝██║  ██║██╔═══██╗╚══███╔╝
 █████╗  ██║     ███████║██║   ██║  ███╔╝
 ██╔══╝  ██║     ██╔══██║██║   ██║ ███╔╝
 ███████╗╚██████╗██║  ██║╚██████╔╝███████╗
 ╚══════╝ ╚═════╝╚═╝  ╚═╝ ╚═════╝ ╚══════╝`

const bannerCompact = "E C H O Z"

// RenderBanner returns the banner in the primary color, falling back to a
// compact form below 46 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 46 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// levels are bar heights of the waveform, one row per frame offset.
var levels = []int{1, 3, 5, 7, 5, 3, 2, 4, 6, 4, 2, 1}

const waveHeight = 7

// renderWave draws a mirrored bar waveform shifted by frame.
func renderWave(frame int) string {
	rows := make([][]rune, waveHeight)
	for r := range rows {
		rows[r] = []rune(strings.Repeat(" ", 2*len(levels)))
	}
	for i := range levels {
		h := levels[(i+frame)%len(levels)]
		top := (waveHeight - h) / 2
		for r := top; r < top+h; r++ {
			rows[r][2*i] = '█'
		}
	}
	lines := make([]string, waveHeight)
	for i, row := range rows {
		lines[i] = string(row)
	}
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(lines, "\n"))
}
