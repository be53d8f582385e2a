package integrations

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/kerbaras/mangatracker/pkg/data"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	coverBackground = color.RGBA{R: 0x26, G: 0x32, B: 0x38, A: 0xff}
	coverForeground = color.RGBA{R: 0xee, G: 0xff, B: 0xff, A: 0xff}
	fallbackSpine   = color.RGBA{R: 0x54, G: 0x6e, B: 0x7a, A: 0xff}
)

// RenderCover draws one vertical spine per entry in its cover colour with the
// title on a banner across the middle, and returns it PNG encoded.
func RenderCover(title string, entries []data.Entry, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid cover size %dx%d", width, height)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(coverBackground), image.Point{}, draw.Src)

	if n := len(entries); n > 0 {
		for i, e := range entries {
			x0 := i * width / n
			x1 := (i + 1) * width / n
			spine := image.Rect(x0, 0, x1, height)
			draw.Draw(img, spine, image.NewUniform(SpineColor(e.CoverColor)), image.Point{}, draw.Src)
		}
	}

	bannerHeight := height / 5
	banner := image.Rect(0, (height-bannerHeight)/2, width, (height+bannerHeight)/2)
	draw.Draw(img, banner, image.NewUniform(coverBackground), image.Point{}, draw.Src)
	drawBannerText(img, banner, title)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode cover: %w", err)
	}
	return buf.Bytes(), nil
}

// SpineColor parses a #RRGGBB cover colour, falling back to a neutral grey.
func SpineColor(hex string) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return fallbackSpine
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// drawBannerText renders text with the 7x13 bitmap face and scales it up to fill the banner.
func drawBannerText(dst *image.RGBA, banner image.Rectangle, text string) {
	face := basicfont.Face7x13
	measure := font.Drawer{Face: face}
	textWidth := measure.MeasureString(text).Ceil()
	if textWidth == 0 {
		return
	}

	lineHeight := face.Height
	small := image.NewRGBA(image.Rect(0, 0, textWidth, lineHeight))
	draw.Draw(small, small.Bounds(), image.NewUniform(coverBackground), image.Point{}, draw.Src)
	d := font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(coverForeground),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(text)

	// integer scale keeps the bitmap glyphs crisp
	scale := min((banner.Dx()*9/10)/textWidth, (banner.Dy()*8/10)/lineHeight)
	if scale < 1 {
		scale = 1
	}
	w, h := textWidth*scale, lineHeight*scale
	x := banner.Min.X + (banner.Dx()-w)/2
	y := banner.Min.Y + (banner.Dy()-h)/2
	draw.NearestNeighbor.Scale(dst, image.Rect(x, y, x+w, y+h), small, small.Bounds(), draw.Src, nil)
}
