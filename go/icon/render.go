package icon

import (
	"image"
	"image/draw"
	"log/slog"

	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Renderer draws icons.
type Renderer struct {
	log   *slog.Logger
	fonts *FontChain
}

// NewRenderer returns a renderer that picks its glyph font from fonts.
func NewRenderer(fonts *FontChain) *Renderer {
	return &Renderer{
		log:   slog.Default(),
		fonts: fonts,
	}
}

// WithLogger sets this renderer's logger.
func (r *Renderer) WithLogger(logger *slog.Logger) *Renderer {
	r.log = logger
	return r
}

// Render returns a freshly allocated size x size icon: a solid background,
// the glyph centered on its measured bounding box, and an outline border
// drawn last.
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	spec, err := NewSpec(size)
	if err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(spec.Background), image.Point{}, draw.Src)

	face, source := r.fonts.Face(float64(spec.FontSize))
	defer face.Close()
	drawGlyph(img, face, spec)
	drawBorder(img, spec)

	r.log.Debug("rendered icon", "size", size, "font", source, "font_size", spec.FontSize, "border_width", spec.BorderWidth)
	return img, nil
}

func drawGlyph(img *image.RGBA, face font.Face, spec Spec) {
	bounds, _ := font.BoundString(face, spec.Glyph)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(spec.GlyphColor),
		Face: face,
		Dot:  glyphOrigin(spec.Size, bounds),
	}
	d.DrawString(spec.Glyph)
}

// glyphOrigin returns the baseline origin that centers a glyph with the given
// bounds (relative to a baseline origin at 0,0) in a size x size square.
func glyphOrigin(size int, bounds fixed.Rectangle26_6) fixed.Point26_6 {
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	x := floorDiv(size-width, 2)
	y := floorDiv(size-height, 2) - bounds.Min.Y.Floor()
	return freetype.Pt(x, y)
}

// drawBorder paints every pixel closer than spec.BorderWidth to an edge.
func drawBorder(img *image.RGBA, spec Spec) {
	src := image.NewUniform(spec.Border)
	s, w := spec.Size, spec.BorderWidth
	for _, r := range []image.Rectangle{
		image.Rect(0, 0, s, w),
		image.Rect(0, s-w, s, s),
		image.Rect(0, 0, w, s),
		image.Rect(s-w, 0, s, s),
	} {
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
