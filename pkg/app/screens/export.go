package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatracker/pkg/app/styles"
	"github.com/kerbaras/mangatracker/pkg/services"
)

var formatDescriptions = map[string]string{
	"json": "Complete data with all fields and metadata",
	"csv":  "Spreadsheet-compatible format for Excel and Sheets",
	"epub": "Reading list book for e-readers",
}

type ExportScreen struct {
	controller *services.LibraryController
	formats    []string
	selected   int
	stats      services.Stats
	exporting  bool
	result     *services.DownloadResult
	width      int
	height     int
	err        error
}

type exportInfoMsg struct {
	stats services.Stats
	err   error
}

type exportDoneMsg struct {
	result services.DownloadResult
	err    error
}

func NewExportScreen(controller *services.LibraryController) *ExportScreen {
	return &ExportScreen{
		controller: controller,
		formats:    controller.Formats(),
	}
}

func (s *ExportScreen) Init() tea.Cmd {
	return s.loadInfo
}

func (s *ExportScreen) loadInfo() tea.Msg {
	stats, err := s.controller.Stats()
	return exportInfoMsg{stats: stats, err: err}
}

func (s *ExportScreen) export(format string) tea.Cmd {
	return func() tea.Msg {
		result, err := s.controller.Export(format)
		return exportDoneMsg{result: result, err: err}
	}
}

func (s *ExportScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case exportInfoMsg:
		s.err = msg.err
		if msg.err == nil {
			s.stats = msg.stats
		}

	case exportDoneMsg:
		s.exporting = false
		s.err = msg.err
		if msg.err == nil {
			result := msg.result
			s.result = &result
		}

	case tea.KeyMsg:
		if s.exporting {
			return s, nil
		}

		switch msg.String() {
		case "up", "k":
			s.selected--
			if s.selected < 0 {
				s.selected = len(s.formats) - 1
			}
		case "down", "j":
			s.selected++
			if s.selected >= len(s.formats) {
				s.selected = 0
			}
		case "enter":
			if len(s.formats) == 0 {
				return s, nil
			}
			s.exporting = true
			s.result = nil
			s.err = nil
			return s, s.export(s.formats[s.selected])
		}
	}

	return s, nil
}

func (s *ExportScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("💾 Export Your Library"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render("Download your manga collection in different formats"))
	b.WriteString("\n\n")

	for i, format := range s.formats {
		cardStyle := styles.CardStyle
		if i == s.selected {
			cardStyle = styles.ActiveCardStyle
		}

		card := lipgloss.JoinVertical(lipgloss.Left,
			styles.TextStyle.Bold(true).Render("Export as "+strings.ToUpper(format)),
			styles.MutedStyle.Render(formatDescriptions[format]),
		)
		b.WriteString(cardStyle.Width(60).Render(card))
		b.WriteString("\n")
	}

	switch {
	case s.exporting:
		b.WriteString(styles.StatusPlanned.Render("Exporting..."))
		b.WriteString("\n")
	case s.err != nil:
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Export failed: %v", s.err)))
		b.WriteString("\n")
	case s.result != nil:
		b.WriteString(styles.StatusCompleted.Render(
			fmt.Sprintf("✓ Saved %s (%d bytes)", s.result.Path, s.result.Size),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render("Export Information"))
	b.WriteString("\n")
	info := []string{
		fmt.Sprintf("• Includes all manga in your library (%d titles)", s.stats.TotalManga),
		"• Contains reading progress and ratings",
		fmt.Sprintf("• Total chapters tracked: %s", formatThousands(s.stats.TotalChaptersRead)),
		fmt.Sprintf("• Files are saved to %s", s.controller.DownloadDir()),
	}
	b.WriteString(styles.MutedStyle.Render(strings.Join(info, "\n")))
	b.WriteString("\n")

	b.WriteString(styles.HelpStyle.Render("↑/↓: select format • enter: export • tab: switch view • q: quit"))

	return b.String()
}
