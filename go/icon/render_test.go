package icon

import (
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"testing"

	"github.com/golang/freetype/truetype"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// bundledChain skips system fonts so renders are identical on every machine.
func bundledChain() *FontChain {
	return NewFontChain()
}

func TestRender(t *testing.T) {
	t.Parallel()
	renderer := NewRenderer(bundledChain())

	t.Run("square images at every required size", func(t *testing.T) {
		t.Parallel()
		for _, size := range append(RequiredSizes(), FaviconSize) {
			img, err := renderer.Render(size)
			require.NoError(t, err)
			require.Equal(t, image.Rect(0, 0, size, size), img.Bounds())
		}
	})

	t.Run("rejects non-positive sizes", func(t *testing.T) {
		t.Parallel()
		_, err := renderer.Render(0)
		require.Error(t, err)
	})

	t.Run("fully opaque", func(t *testing.T) {
		t.Parallel()
		img, err := renderer.Render(96)
		require.NoError(t, err)
		require.True(t, img.Opaque())
	})

	t.Run("deterministic", func(t *testing.T) {
		t.Parallel()
		first, err := renderer.Render(192)
		require.NoError(t, err)
		second, err := NewRenderer(bundledChain()).Render(192)
		require.NoError(t, err)
		require.Equal(t, first.Pix, second.Pix)
	})
}

func TestRenderBorder(t *testing.T) {
	t.Parallel()
	renderer := NewRenderer(bundledChain())

	tests := []struct {
		size      int
		thickness int
	}{
		{72, 1},
		{128, 2},
		{512, 8},
	}

	for _, tt := range tests {
		img, err := renderer.Render(tt.size)
		require.NoError(t, err)
		spec, err := NewSpec(tt.size)
		require.NoError(t, err)

		// Sample the outer ring close to each corner, away from the centered glyph.
		last := tt.size - 1
		for depth := 0; depth < tt.thickness; depth++ {
			require.Equal(t, spec.Border, img.RGBAAt(tt.thickness+2, depth), "size %d top depth %d", tt.size, depth)
			require.Equal(t, spec.Border, img.RGBAAt(tt.thickness+2, last-depth), "size %d bottom depth %d", tt.size, depth)
			require.Equal(t, spec.Border, img.RGBAAt(depth, tt.thickness+2), "size %d left depth %d", tt.size, depth)
			require.Equal(t, spec.Border, img.RGBAAt(last-depth, tt.thickness+2), "size %d right depth %d", tt.size, depth)
		}
		require.Equal(t, spec.Background, img.RGBAAt(tt.thickness+2, tt.thickness), "size %d", tt.size)
		require.Equal(t, spec.Background, img.RGBAAt(tt.thickness, tt.thickness+2), "size %d", tt.size)
		require.Equal(t, spec.Background, img.RGBAAt(last-tt.thickness, last-tt.thickness-2), "size %d", tt.size)
	}
}

func TestRenderFontFallback(t *testing.T) {
	t.Parallel()
	chain := NewFontChain(
		FontFile(filepath.Join(t.TempDir(), "missing.ttf")),
		SystemFont("pwa-icons-no-such-font.ttf"),
	)

	img, err := NewRenderer(chain).Render(144)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 144, 144), img.Bounds())
}

func TestDrawGlyphCentered(t *testing.T) {
	t.Parallel()
	f, err := truetype.Parse(goregular.TTF)
	require.NoError(t, err)

	spec, err := NewSpec(128)
	require.NoError(t, err)
	spec.Glyph = "H"
	img := image.NewRGBA(image.Rect(0, 0, spec.Size, spec.Size))
	draw.Draw(img, img.Bounds(), image.NewUniform(spec.Background), image.Point{}, draw.Src)

	face := newFace(f, float64(spec.FontSize))
	defer face.Close()
	drawGlyph(img, face, spec)

	ink := inkBounds(img, spec.Background)
	require.False(t, ink.Empty())
	top, bottom := ink.Min.Y, spec.Size-ink.Max.Y
	require.InDelta(t, top, bottom, 2)

	// Horizontally the pen, not the ink, is centered: the ink is shifted by the side bearing.
	bounds, _ := font.BoundString(face, spec.Glyph)
	bearing := bounds.Min.X.Floor()
	left, right := ink.Min.X, spec.Size-ink.Max.X
	require.InDelta(t, left-bearing, right+bearing, 3)
}

func TestGlyphOrigin(t *testing.T) {
	tests := []struct {
		name   string
		size   int
		bounds fixed.Rectangle26_6
		want   fixed.Point26_6
	}{
		{
			name:   "glyph above baseline",
			size:   30,
			bounds: fixed.Rectangle26_6{Min: fixed.P(0, -10), Max: fixed.P(10, 0)},
			want:   fixed.P(10, 20),
		},
		{
			name:   "glyph with descender and side bearing",
			size:   40,
			bounds: fixed.Rectangle26_6{Min: fixed.P(2, -16), Max: fixed.P(12, 4)},
			want:   fixed.P(15, 26),
		},
		{
			name:   "glyph wider than the icon",
			size:   30,
			bounds: fixed.Rectangle26_6{Min: fixed.P(0, -10), Max: fixed.P(41, 0)},
			want:   fixed.P(-6, 20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, glyphOrigin(tt.size, tt.bounds))
		})
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{7, 2, 3},
		{6, 2, 3},
		{-7, 2, -4},
		{-6, 2, -3},
		{0, 2, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, floorDiv(tt.a, tt.b), "%d / %d", tt.a, tt.b)
	}
}

// inkBounds returns the smallest rectangle holding every pixel that differs from bg.
func inkBounds(img *image.RGBA, bg color.RGBA) image.Rectangle {
	var ink image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y) != bg {
				ink = ink.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return ink
}
