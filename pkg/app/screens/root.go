package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/mangatracker/pkg/app/styles"
	"github.com/kerbaras/mangatracker/pkg/services"
)

type screenType int

const (
	libraryView screenType = iota
	statsView
	exportView
)

var tabNames = []string{"Library", "Stats", "Export"}

// SwitchScreenMsg asks the root screen to change tab.
type SwitchScreenMsg struct {
	Screen string
}

// inputCapturer is implemented by screens that own a focused text input.
type inputCapturer interface {
	CapturingInput() bool
}

type RootScreen struct {
	controller *services.LibraryController

	currentView screenType
	library     *LibraryScreen
	stats       *StatsScreen
	export      *ExportScreen

	width  int
	height int
}

func NewRootScreen(controller *services.LibraryController) *RootScreen {
	return &RootScreen{
		controller:  controller,
		currentView: libraryView,
		library:     NewLibraryScreen(controller),
		stats:       NewStatsScreen(controller),
		export:      NewExportScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.library.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// every tab keeps its own layout
		return r, tea.Batch(r.forwardAll(msg)...)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}
		if !r.capturingInput() {
			switch msg.String() {
			case "q":
				return r, tea.Quit
			case "tab":
				return r, r.switchTo((r.currentView + 1) % screenType(len(tabNames)))
			case "shift+tab":
				return r, r.switchTo((r.currentView + screenType(len(tabNames)) - 1) % screenType(len(tabNames)))
			case "1":
				return r, r.switchTo(libraryView)
			case "2":
				return r, r.switchTo(statsView)
			case "3":
				return r, r.switchTo(exportView)
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "library":
			return r, r.switchTo(libraryView)
		case "stats":
			return r, r.switchTo(statsView)
		case "export":
			return r, r.switchTo(exportView)
		}
		return r, nil
	}

	return r, r.forward(r.currentView, msg)
}

func (r *RootScreen) switchTo(view screenType) tea.Cmd {
	r.currentView = view
	switch view {
	case statsView:
		return r.stats.Init()
	case exportView:
		return r.export.Init()
	default:
		return r.library.Init()
	}
}

func (r *RootScreen) forward(view screenType, msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch view {
	case libraryView:
		var m tea.Model
		m, cmd = r.library.Update(msg)
		r.library = m.(*LibraryScreen)
	case statsView:
		var m tea.Model
		m, cmd = r.stats.Update(msg)
		r.stats = m.(*StatsScreen)
	case exportView:
		var m tea.Model
		m, cmd = r.export.Update(msg)
		r.export = m.(*ExportScreen)
	}
	return cmd
}

func (r *RootScreen) forwardAll(msg tea.Msg) []tea.Cmd {
	return []tea.Cmd{
		r.forward(libraryView, msg),
		r.forward(statsView, msg),
		r.forward(exportView, msg),
	}
}

func (r *RootScreen) capturingInput() bool {
	var active tea.Model
	switch r.currentView {
	case libraryView:
		active = r.library
	case statsView:
		active = r.stats
	case exportView:
		active = r.export
	}
	c, ok := active.(inputCapturer)
	return ok && c.CapturingInput()
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case libraryView:
		content = r.library.View()
	case statsView:
		content = r.stats.View()
	case exportView:
		content = r.export.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	brand := styles.TitleStyle.UnsetMarginBottom().Render("📖 Manga Tracker")

	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if screenType(i) == r.currentView {
			rendered[i] = styles.ActiveTabStyle.Render(name)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(name)
		}
	}

	tabs := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	return lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", tabs)
}
