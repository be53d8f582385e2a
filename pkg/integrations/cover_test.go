package integrations

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/kerbaras/mangatracker/pkg/data"
)

func TestRenderCover(t *testing.T) {
	entries := []data.Entry{
		{ID: 1, Title: "Red", CoverColor: "#FF0000"},
		{ID: 2, Title: "Blue", CoverColor: "#0000FF"},
	}

	out, err := RenderCover("Library", entries, 200, 100)
	if err != nil {
		t.Fatalf("RenderCover() error = %v", err)
	}

	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("cover is not a PNG: %v", err)
	}

	if img.Bounds() != image.Rect(0, 0, 200, 100) {
		t.Errorf("Expected 200x100 cover, got %v", img.Bounds())
	}

	// top rows are outside the banner, so they show the spines
	assertColor(t, img, 10, 2, color.RGBA{R: 0xff, A: 0xff})
	assertColor(t, img, 190, 2, color.RGBA{B: 0xff, A: 0xff})
}

func TestRenderCoverEmptyLibrary(t *testing.T) {
	out, err := RenderCover("Empty", nil, 60, 80)
	if err != nil {
		t.Fatalf("RenderCover() error = %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("cover is not a PNG: %v", err)
	}
	assertColor(t, img, 0, 0, coverBackground)
}

func TestRenderCoverInvalidSize(t *testing.T) {
	if _, err := RenderCover("x", nil, 0, 10); err == nil {
		t.Error("RenderCover() should fail with zero width")
	}
}

func TestSpineColor(t *testing.T) {
	got := SpineColor("#8B5CF6")
	want := color.RGBA{R: 0x8b, G: 0x5c, B: 0xf6, A: 0xff}
	if got != want {
		t.Errorf("SpineColor() = %v, want %v", got, want)
	}

	if SpineColor("not-a-colour") != fallbackSpine {
		t.Error("Expected fallback colour for invalid hex")
	}
}

func assertColor(t *testing.T, img image.Image, x, y int, want color.RGBA) {
	t.Helper()
	r, g, b, a := img.At(x, y).RGBA()
	got := color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
	if got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}
