package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatracker/pkg/app/styles"
	"github.com/kerbaras/mangatracker/pkg/data"
)

// cardHeight is the rendered height of one entry card including borders and margin.
const cardHeight = 10

type EntryList struct {
	Items         []data.Entry
	SelectedIndex int
	Width         int
	Height        int
}

func NewEntryList() *EntryList {
	return &EntryList{
		Items:         []data.Entry{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
	}
}

func (m *EntryList) SetItems(items []data.Entry) {
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *EntryList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *EntryList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *EntryList) Selected() *data.Entry {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return &m.Items[m.SelectedIndex]
}

// visibleRange returns the window of cards that fits Height, keeping the selection in view.
func (m *EntryList) visibleRange() (int, int) {
	visible := m.Height / cardHeight
	if visible < 1 {
		visible = 1
	}
	if visible >= len(m.Items) {
		return 0, len(m.Items)
	}

	start := m.SelectedIndex - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.Items) {
		end = len(m.Items)
		start = end - visible
	}
	return start, end
}

func (m *EntryList) View() string {
	if len(m.Items) == 0 {
		emptyMsg := lipgloss.JoinVertical(
			lipgloss.Center,
			styles.TitleStyle.Render("No manga found"),
			styles.MutedStyle.Render("Try adjusting your search or filters"),
		)
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	start, end := m.visibleRange()
	for i := start; i < end; i++ {
		cardStyle := styles.CardStyle
		if i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		card := cardStyle.Width(m.Width - 4).Render(renderEntry(m.Items[i], m.Width-12))
		b.WriteString(card)
		b.WriteString("\n")
	}

	if start > 0 || end < len(m.Items) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d titles", start+1, end, len(m.Items)),
		))
	}

	return b.String()
}

func renderEntry(e data.Entry, barWidth int) string {
	title := lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Swatch(e.CoverColor), " ",
		styles.TitleStyle.UnsetMarginBottom().Render(e.Title),
	)

	meta := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Badge(e.Status), " ",
		styles.MutedStyle.Render(e.Genre),
	)

	progress := styles.MutedStyle.Render(
		fmt.Sprintf("Progress %d/%d", e.ChaptersRead, e.TotalChapters),
	)

	lines := []string{title, meta, "", progress, SimpleProgress(e.ChaptersRead, e.TotalChapters, barWidth)}
	if e.IsRated() {
		lines = append(lines, RatingStars(e.Rating))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// RatingStars renders a five star scale with rating stars filled.
func RatingStars(rating int) string {
	if rating <= 0 {
		return ""
	}
	if rating > 5 {
		rating = 5
	}
	return styles.StarStyle.Render(strings.Repeat("★", rating)) +
		styles.ProgressEmptyStyle.Render(strings.Repeat("☆", 5-rating))
}
