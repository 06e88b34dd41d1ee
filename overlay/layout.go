package overlay

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Anchor is the screen corner a label is attached to.
type Anchor int

const (
	TopLeft Anchor = iota
	TopRight
)

// Margin is the distance in pixels between a label and its corner.
const Margin = 16

// Label is one line of HUD text.
type Label struct {
	Text   string
	Anchor Anchor
}

// Place returns the top-left pixel of a w x h label attached to anchor on a
// screen of screenW x screenH, origin at the top-left.
func Place(anchor Anchor, w, h, screenW, screenH int) (x, y int) {
	switch anchor {
	case TopRight:
		return screenW - Margin - w, Margin
	default:
		return Margin, Margin
	}
}

// Rasterize draws text in white onto a fresh alpha mask sized to fit it.
// Empty text yields a 1x1 transparent mask.
func Rasterize(face font.Face, text string) *image.Alpha {
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	height := ascent + metrics.Descent.Ceil()
	width := font.MeasureString(face, text).Ceil()
	if width <= 0 || height <= 0 {
		return image.NewAlpha(image.Rect(0, 0, 1, 1))
	}

	img := image.NewAlpha(image.Rect(0, 0, width, height))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(ascent)},
	}
	d.DrawString(text)
	return img
}
