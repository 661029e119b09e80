package icon

import (
	"fmt"
	"image/color"
)

const (
	// FaviconSize is the edge length of the image written as favicon.ico.
	FaviconSize = 32

	// Glyph is drawn centered on every icon.
	Glyph = "📝"

	backgroundHex = "#0077b5"
	borderHex     = "#005582"

	// Fraction of the icon edge used as the glyph's font size.
	glyphScale = 0.4
	// One border pixel per this many pixels of edge, never less than one.
	borderDivisor = 64
)

var requiredSizes = [...]int{72, 96, 128, 144, 152, 192, 384, 512}

// RequiredSizes returns the PWA icon sizes in ascending order.
// The returned slice is a copy and may be modified by the caller.
func RequiredSizes() []int {
	sizes := requiredSizes
	return sizes[:]
}

var (
	background = mustParseHexColor(backgroundHex)
	border     = mustParseHexColor(borderHex)
	glyphColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Spec describes how a single icon of a given size is drawn.
type Spec struct {
	Size        int
	Background  color.RGBA
	Border      color.RGBA
	BorderWidth int
	Glyph       string
	GlyphColor  color.RGBA
	FontSize    int
}

// NewSpec derives the drawing parameters for an icon of the given edge length.
func NewSpec(size int) (Spec, error) {
	if size <= 0 {
		return Spec{}, fmt.Errorf("invalid icon size %d: must be positive", size)
	}
	return Spec{
		Size:        size,
		Background:  background,
		Border:      border,
		BorderWidth: BorderWidth(size),
		Glyph:       Glyph,
		GlyphColor:  glyphColor,
		FontSize:    int(float64(size) * glyphScale),
	}, nil
}

// BorderWidth returns the outline thickness for an icon of the given size.
func BorderWidth(size int) int {
	return max(1, size/borderDivisor)
}
