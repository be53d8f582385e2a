package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangatracker/pkg/app/components"
	"github.com/kerbaras/mangatracker/pkg/app/styles"
	"github.com/kerbaras/mangatracker/pkg/data"
	"github.com/kerbaras/mangatracker/pkg/services"
)

type LibraryScreen struct {
	controller *services.LibraryController
	input      textinput.Model
	filter     services.StatusFilter
	entries    []data.Entry
	list       *components.EntryList
	width      int
	height     int
	err        error
}

type libraryLoadedMsg struct {
	entries []data.Entry
	err     error
}

func NewLibraryScreen(controller *services.LibraryController) *LibraryScreen {
	ti := textinput.New()
	ti.Placeholder = "Search manga..."
	ti.CharLimit = 100
	ti.Width = 50

	return &LibraryScreen{
		controller: controller,
		input:      ti,
		filter:     services.FilterAll,
		entries:    []data.Entry{},
		list:       components.NewEntryList(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadLibrary
}

func (s *LibraryScreen) loadLibrary() tea.Msg {
	entries, err := s.controller.Entries()
	return libraryLoadedMsg{entries: entries, err: err}
}

// CapturingInput reports whether key presses belong to the search box.
func (s *LibraryScreen) CapturingInput() bool {
	return s.input.Focused()
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width
		// header, search box, filter line and help
		s.list.Height = msg.Height - 12

	case libraryLoadedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.entries = msg.entries
		}
		s.applyFilter()

	case tea.KeyMsg:
		if s.input.Focused() {
			switch msg.String() {
			case "esc", "enter":
				s.input.Blur()
				return s, nil
			}

			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			s.applyFilter()
			return s, cmd
		}

		switch msg.String() {
		case "/":
			s.input.Focus()
			return s, textinput.Blink
		case "f":
			s.filter = s.filter.Next()
			s.applyFilter()
		case "c":
			s.input.SetValue("")
			s.filter = services.FilterAll
			s.applyFilter()
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "r":
			return s, s.loadLibrary
		case "x":
			return s, func() tea.Msg {
				return SwitchScreenMsg{Screen: "export"}
			}
		}
	}

	return s, nil
}

func (s *LibraryScreen) applyFilter() {
	s.list.SetItems(services.Filter(s.entries, s.input.Value(), s.filter))
}

// Visible returns the entries currently shown after search and filter.
func (s *LibraryScreen) Visible() []data.Entry {
	return s.list.Items
}

func (s *LibraryScreen) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("📚 Manga Library"))
	b.WriteString("\n")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	b.WriteString(inputStyle.Render(s.input.View()))
	b.WriteString("\n")

	b.WriteString(styles.SubtitleStyle.Render("Filter: " + s.filter.Label()))
	b.WriteString("  ")
	b.WriteString(styles.MutedStyle.Render(
		fmt.Sprintf("%d of %d titles", len(s.list.Items), len(s.entries)),
	))
	b.WriteString("\n\n")

	if s.err != nil {
		b.WriteString(styles.StatusError.Render(fmt.Sprintf("Error: %v", s.err)))
		b.WriteString("\n\n")
	}

	if e := s.list.Selected(); e != nil {
		b.WriteString(styles.TextStyle.Render(fmt.Sprintf("▸ %s · %s · %s · %d/%d chapters (%.1f%%)",
			e.Title, e.Status.Label(), e.Genre, e.ChaptersRead, e.TotalChapters, e.ProgressPercent())))
		b.WriteString("\n\n")
	}

	b.WriteString(s.list.View())

	help := "/: search • f: filter • c: clear • ↑/↓: navigate • x: export • tab: switch view • q: quit"
	if s.input.Focused() {
		help = "type to search • enter/esc: done"
	}
	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render(help))

	return b.String()
}
