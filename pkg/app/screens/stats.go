package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatracker/pkg/app/components"
	"github.com/kerbaras/mangatracker/pkg/app/styles"
	"github.com/kerbaras/mangatracker/pkg/services"
)

type StatsScreen struct {
	controller *services.LibraryController
	stats      services.Stats
	chart      *components.DistributionChart
	loaded     bool
	width      int
	height     int
	err        error
}

type statsLoadedMsg struct {
	stats services.Stats
	err   error
}

type statCard struct {
	title string
	value string
	note  string
}

func NewStatsScreen(controller *services.LibraryController) *StatsScreen {
	return &StatsScreen{
		controller: controller,
		chart:      components.NewDistributionChart(60),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return s.loadStats
}

func (s *StatsScreen) loadStats() tea.Msg {
	stats, err := s.controller.Stats()
	return statsLoadedMsg{stats: stats, err: err}
}

func (s *StatsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		width := msg.Width - 4
		if width > 80 {
			width = 80
		}
		s.chart = components.NewDistributionChart(width)
		s.chart.Update(s.stats)

	case statsLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.stats = msg.stats
			s.loaded = true
			s.chart.Update(msg.stats)
		}

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.loadStats
		}
	}

	return s, nil
}

func (s *StatsScreen) cards() []statCard {
	rating := "N/A"
	if s.stats.HasRating() {
		rating = s.stats.AverageRatingLabel() + " ★"
	}

	return []statCard{
		{"Total Manga", strconv.Itoa(s.stats.TotalManga), "In your library"},
		{"Currently Reading", strconv.Itoa(s.stats.Reading), "Active series"},
		{"Completed", strconv.Itoa(s.stats.Completed), "Finished reading"},
		{"Plan to Read", strconv.Itoa(s.stats.PlanToRead), "In your backlog"},
		{"Total Chapters Read", formatThousands(s.stats.TotalChaptersRead), "Across all series"},
		{"Average Rating", rating, "Your average score"},
	}
}

func (s *StatsScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📊 Reading Statistics"))
	b.WriteString("\n")

	if s.err != nil {
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %v", s.err)))
		b.WriteString("\n")
		b.WriteString(styles.HelpStyle.Render("r: retry • tab: switch view • q: quit"))
		return b.String()
	}

	if !s.loaded {
		b.WriteString(styles.MutedStyle.Render("Loading statistics..."))
		return b.String()
	}

	cards := s.cards()
	perRow := 3
	if s.width > 0 && s.width < 90 {
		perRow = 2
	}

	for start := 0; start < len(cards); start += perRow {
		end := start + perRow
		if end > len(cards) {
			end = len(cards)
		}

		row := make([]string, 0, perRow)
		for _, c := range cards[start:end] {
			row = append(row, renderStatCard(c))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, row...))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if s.chart.HasData() {
		b.WriteString(s.chart.View())
	} else {
		b.WriteString(styles.MutedStyle.Render("No manga in your library yet. The status distribution appears once titles are added."))
		b.WriteString("\n")
	}
	b.WriteString(styles.HelpStyle.Render("r: refresh • tab: switch view • q: quit"))

	return b.String()
}

func renderStatCard(c statCard) string {
	return styles.StatCardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.MutedStyle.Render(c.title),
		styles.StatValueStyle.Render(c.value),
		styles.MutedStyle.Render(c.note),
	))
}

// formatThousands groups digits in threes: 1881 -> "1,881".
func formatThousands(n int) string {
	s := strconv.Itoa(n)
	sign := ""
	if n < 0 {
		sign, s = "-", s[1:]
	}

	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
