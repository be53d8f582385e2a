package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/mangatracker/pkg/data"
)

func testItems(n int) []data.Entry {
	return data.DefaultEntries()[:n]
}

func TestNewEntryList(t *testing.T) {
	list := NewEntryList()

	if list == nil {
		t.Fatal("Expected entry list to be created")
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}

	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestSetItems(t *testing.T) {
	list := NewEntryList()

	list.SetItems(testItems(2))

	if len(list.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(list.Items))
	}

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
}

func TestSetItemsResetsSelection(t *testing.T) {
	list := NewEntryList()

	list.SetItems(testItems(3))
	list.SelectedIndex = 2

	// Set fewer items
	list.SetItems(testItems(1))

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be reset to 0, got %d", list.SelectedIndex)
	}

	list.SetItems(nil)
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0 for empty list, got %d", list.SelectedIndex)
	}
}

func TestNext(t *testing.T) {
	list := NewEntryList()
	list.SetItems(testItems(3))

	list.Next()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	// Should wrap around
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}
}

func TestPrev(t *testing.T) {
	list := NewEntryList()
	list.SetItems(testItems(3))

	// Should wrap around when at start
	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 1 {
		t.Errorf("Expected SelectedIndex 1, got %d", list.SelectedIndex)
	}
}

func TestNextPrevEmptyList(t *testing.T) {
	list := NewEntryList()

	// Should not panic with empty list
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
}

func TestSelected(t *testing.T) {
	list := NewEntryList()

	if list.Selected() != nil {
		t.Error("Expected nil for empty list")
	}

	list.SetItems(testItems(2))

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected selected item")
	}
	if selected.ID != 1 {
		t.Errorf("Expected selected entry ID 1, got %d", selected.ID)
	}

	list.Next()
	if list.Selected().ID != 2 {
		t.Errorf("Expected selected entry ID 2, got %d", list.Selected().ID)
	}
}

func TestViewEmptyList(t *testing.T) {
	list := NewEntryList()

	view := list.View()

	if !strings.Contains(view, "No manga found") {
		t.Error("Expected 'No manga found' message")
	}
	if !strings.Contains(view, "Try adjusting your search or filters") {
		t.Error("Expected hint in empty state")
	}
}

func TestViewWithItems(t *testing.T) {
	list := NewEntryList()
	list.Width = 80
	list.Height = 40

	list.SetItems(testItems(2))

	view := list.View()

	if !strings.Contains(view, "One Piece") {
		t.Error("Expected title in view")
	}
	if !strings.Contains(view, "875/1100") {
		t.Error("Expected chapter progress in view")
	}
	if !strings.Contains(view, "Reading") || !strings.Contains(view, "Shonen") {
		t.Error("Expected status badge and genre in view")
	}
	if !strings.Contains(view, "★★★★★") {
		t.Error("Expected rating stars in view")
	}
}

func TestViewScrollsToSelection(t *testing.T) {
	list := NewEntryList()
	list.Width = 80
	list.Height = cardHeight * 2

	list.SetItems(data.DefaultEntries())
	list.SelectedIndex = 7

	view := list.View()

	if !strings.Contains(view, "Vagabond") {
		t.Error("Expected selected entry to be visible")
	}
	if strings.Contains(view, "One Piece") {
		t.Error("Expected first entry to be scrolled out of view")
	}
	if !strings.Contains(view, "Showing 7-8 of 8 titles") {
		t.Error("Expected scroll indicator")
	}
}

func TestRatingStars(t *testing.T) {
	if RatingStars(0) != "" {
		t.Error("Expected no stars for an unrated entry")
	}

	stars := RatingStars(4)
	if strings.Count(stars, "★") != 4 || strings.Count(stars, "☆") != 1 {
		t.Errorf("Expected 4 filled and 1 empty star, got %s", stars)
	}
}
