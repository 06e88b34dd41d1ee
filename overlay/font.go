package overlay

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/richinsley/shadersandbox/assets"
)

const fontDPI = 72

// LoadFace opens the TrueType font at path at the given point size. An empty
// path selects the built-in Go Mono face. An unreadable path is an
// *assets.IOError.
func LoadFace(path string, size float64) (font.Face, error) {
	data := gomono.TTF
	if path != "" {
		b, err := assets.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}

	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse ttf: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     fontDPI,
		Hinting: font.HintingFull,
	}), nil
}
