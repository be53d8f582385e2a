package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatracker/pkg/app/styles"
	"github.com/kerbaras/mangatracker/pkg/services"
)

// DistributionChart draws one labelled bar per status share.
type DistributionChart struct {
	shares []services.StatusShare
	width  int
}

func NewDistributionChart(width int) *DistributionChart {
	return &DistributionChart{width: width}
}

func (p *DistributionChart) Update(stats services.Stats) {
	p.shares = services.Distribution(stats)
}

func (p *DistributionChart) HasData() bool {
	for _, s := range p.shares {
		if s.Count > 0 {
			return true
		}
	}
	return false
}

func (p *DistributionChart) View() string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render("Reading Status Distribution"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render("Breakdown of your manga collection"))
	b.WriteString("\n\n")

	barWidth := p.width - 4
	for _, share := range p.shares {
		label := styles.StatusStyle(share.Status).Render(
			fmt.Sprintf("%s (%d)", share.Status.Label(), share.Count),
		)
		percent := styles.MutedStyle.Render(fmt.Sprintf("%.1f%%", share.Percent))

		gap := barWidth - lipgloss.Width(label) - lipgloss.Width(percent)
		if gap < 1 {
			gap = 1
		}

		b.WriteString(label + strings.Repeat(" ", gap) + percent)
		b.WriteString("\n")
		b.WriteString(percentBar(share.Percent, barWidth))
		b.WriteString("\n\n")
	}

	return b.String()
}

func percentBar(percent float64, width int) string {
	return renderProgressBar(int(percent*10), 1000, width)
}

func renderProgressBar(current, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	filled := int(float64(current) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	return styles.ProgressBarStyle.Render(strings.Repeat("█", filled)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("░", width-filled))
}

// SimpleProgress renders a simple progress bar
func SimpleProgress(current, total, width int) string {
	return renderProgressBar(current, total, width)
}
