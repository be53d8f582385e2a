package screens

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/mangatracker/pkg/data"
	"github.com/kerbaras/mangatracker/pkg/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	entries []data.Entry
	err     error
}

func (f *fakeRepository) ListEntries() ([]data.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]data.Entry{}, f.entries...), nil
}

func (f *fakeRepository) GetEntry(id int) (*data.Entry, error) {
	for _, e := range f.entries {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

func newTestController(t *testing.T, repo services.Repository) *services.LibraryController {
	t.Helper()
	return services.NewLibraryControllerWithConfig(services.ControllerConfig{
		Repository:  repo,
		DownloadDir: t.TempDir(),
	})
}

func defaultController(t *testing.T) *services.LibraryController {
	return newTestController(t, &fakeRepository{entries: data.DefaultEntries()})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, text string) tea.Model {
	for _, r := range text {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

func entryIDs(entries []data.Entry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func loadedLibrary(t *testing.T, controller *services.LibraryController) *LibraryScreen {
	t.Helper()
	s := NewLibraryScreen(controller)
	m, _ := s.Update(s.Init()())
	return m.(*LibraryScreen)
}

func TestLibraryScreenLoadsEntries(t *testing.T) {
	s := loadedLibrary(t, defaultController(t))

	assert.Len(t, s.Visible(), 8)
	assert.Contains(t, s.View(), "8 of 8 titles")
	assert.Contains(t, s.View(), "Filter: All Status")
}

func TestLibraryScreenSearch(t *testing.T) {
	s := loadedLibrary(t, defaultController(t))

	m, cmd := s.Update(keyRunes("/"))
	assert.NotNil(t, cmd)
	s = m.(*LibraryScreen)
	require.True(t, s.CapturingInput())

	s = typeText(s, "attack").(*LibraryScreen)
	assert.Equal(t, []int{2}, entryIDs(s.Visible()))

	m, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = m.(*LibraryScreen)
	assert.False(t, s.CapturingInput())
	assert.Equal(t, []int{2}, entryIDs(s.Visible()))
}

func TestLibraryScreenSelectedDetail(t *testing.T) {
	s := loadedLibrary(t, defaultController(t))
	assert.Contains(t, s.View(), "▸ One Piece · Reading · Shonen · 875/1100 chapters (79.5%)")

	m, _ := s.Update(keyRunes("j"))
	s = m.(*LibraryScreen)
	assert.Contains(t, s.View(), "▸ Attack on Titan · Completed")

	m, _ = s.Update(keyRunes("/"))
	s = typeText(m, "zzz").(*LibraryScreen)
	assert.NotContains(t, s.View(), "▸")
}

func TestLibraryScreenFilterCycle(t *testing.T) {
	s := loadedLibrary(t, defaultController(t))

	m, _ := s.Update(keyRunes("f"))
	s = m.(*LibraryScreen)
	assert.Equal(t, []int{1, 3, 4}, entryIDs(s.Visible()))
	assert.Contains(t, s.View(), "Filter: Reading")

	m, _ = s.Update(keyRunes("f"))
	s = m.(*LibraryScreen)
	assert.Equal(t, []int{2, 5, 6}, entryIDs(s.Visible()))
}

func TestLibraryScreenNoMatches(t *testing.T) {
	s := loadedLibrary(t, defaultController(t))

	m, _ := s.Update(keyRunes("/"))
	s = typeText(m, "zzz").(*LibraryScreen)

	assert.Empty(t, s.Visible())
	assert.Contains(t, s.View(), "No manga found")

	m, _ = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(keyRunes("c"))
	s = m.(*LibraryScreen)
	assert.Len(t, s.Visible(), 8)
}

func TestLibraryScreenLoadError(t *testing.T) {
	controller := newTestController(t, &fakeRepository{err: errors.New("disk gone")})
	s := loadedLibrary(t, controller)

	assert.Empty(t, s.Visible())
	assert.Contains(t, s.View(), "disk gone")
}

func TestLibraryScreenExportShortcut(t *testing.T) {
	s := loadedLibrary(t, defaultController(t))

	_, cmd := s.Update(keyRunes("x"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchScreenMsg{Screen: "export"}, cmd())
}

func TestStatsScreen(t *testing.T) {
	s := NewStatsScreen(defaultController(t))
	m, _ := s.Update(s.Init()())
	view := m.View()

	assert.Contains(t, view, "Total Manga")
	assert.Contains(t, view, "Currently Reading")
	assert.Contains(t, view, "1,881")
	assert.Contains(t, view, "4.7 ★")
	assert.Contains(t, view, "Reading (3)")
	assert.Contains(t, view, "37.5%")
}

func TestStatsScreenEmptyLibrary(t *testing.T) {
	s := NewStatsScreen(newTestController(t, &fakeRepository{}))
	m, _ := s.Update(s.Init()())
	view := m.View()

	assert.Contains(t, view, "N/A")
	assert.Contains(t, view, "No manga in your library yet")
	assert.NotContains(t, view, "Reading Status Distribution")
	assert.NotContains(t, view, "NaN")
}

func TestExportScreen(t *testing.T) {
	controller := defaultController(t)
	s := NewExportScreen(controller)
	m, _ := s.Update(s.Init()())
	s = m.(*ExportScreen)

	assert.Equal(t, []string{"json", "csv", "epub"}, s.formats)
	assert.Contains(t, s.View(), "Includes all manga in your library (8 titles)")
	assert.Contains(t, s.View(), "Total chapters tracked: 1,881")

	m, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	s = m.(*ExportScreen)
	assert.True(t, s.exporting)

	m, _ = s.Update(cmd())
	s = m.(*ExportScreen)
	require.NoError(t, s.err)
	require.NotNil(t, s.result)
	assert.Equal(t, filepath.Join(controller.DownloadDir(), "manga-library.csv"), s.result.Path)
	assert.FileExists(t, s.result.Path)
	assert.Contains(t, s.View(), "Saved")
}

func TestRootScreenTabs(t *testing.T) {
	r := NewRootScreen(defaultController(t))
	assert.Equal(t, libraryView, r.currentView)

	m, cmd := r.Update(tea.KeyMsg{Type: tea.KeyTab})
	r = m.(*RootScreen)
	assert.Equal(t, statsView, r.currentView)
	require.NotNil(t, cmd)
	assert.IsType(t, statsLoadedMsg{}, cmd())

	m, _ = r.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	r = m.(*RootScreen)
	assert.Equal(t, exportView, r.currentView)

	m, _ = r.Update(keyRunes("1"))
	r = m.(*RootScreen)
	assert.Equal(t, libraryView, r.currentView)
	assert.Contains(t, r.View(), "Library")
}

func TestRootScreenSwitchMessage(t *testing.T) {
	r := NewRootScreen(defaultController(t))

	m, _ := r.Update(SwitchScreenMsg{Screen: "export"})
	assert.Equal(t, exportView, m.(*RootScreen).currentView)
}

func TestRootScreenQuit(t *testing.T) {
	r := NewRootScreen(defaultController(t))

	_, cmd := r.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())

	_, cmd = r.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestRootScreenTypingDoesNotQuitOrSwitch(t *testing.T) {
	r := NewRootScreen(defaultController(t))
	m, _ := r.Update(r.Init()())
	m, _ = m.Update(keyRunes("/"))
	m = typeText(m, "q2")
	r = m.(*RootScreen)

	assert.Equal(t, libraryView, r.currentView)
	assert.Equal(t, "q2", r.library.input.Value())
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,881", formatThousands(1881))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
	assert.Equal(t, "-1,000", formatThousands(-1000))
}
