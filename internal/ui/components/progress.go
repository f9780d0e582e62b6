package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/verdict/internal/ui/theme"
)

// DocketProgress shows how far through the docket the juror is: a
// "Case i of N" label followed by a filled bar.
type DocketProgress struct {
	Current int // 1-based
	Total   int
	Width   int
}

// NewDocketProgress creates a progress bar for the case at index (0-based).
func NewDocketProgress(index, total, width int) DocketProgress {
	return DocketProgress{Current: index + 1, Total: total, Width: width}
}

// Label returns the "Case i of N" caption.
func (p DocketProgress) Label() string {
	return fmt.Sprintf("Case %d of %d", p.Current, p.Total)
}

// Percent returns the filled fraction in [0, 1].
func (p DocketProgress) Percent() float64 {
	if p.Total <= 0 {
		return 0
	}
	return min(max(float64(p.Current)/float64(p.Total), 0), 1)
}

// View renders the progress bar.
func (p DocketProgress) View() string {
	label := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Label()) + "  "

	barWidth := max(p.Width-lipgloss.Width(label), 4)
	filled := int(float64(barWidth) * p.Percent())

	return label +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", barWidth-filled))
}
