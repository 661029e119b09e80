package icon

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	// The primary font is looked up by file name in the platform font directories.
	primaryFontName = "arial.ttf"
	// The secondary font is the macOS system location of the same face.
	secondaryFontPath = "/System/Library/Fonts/Arial.ttf"

	// Font sizes are expressed in pixels.
	dpi = 72
)

// ErrFontNotFound is returned by a FontSource that cannot locate its font file.
var ErrFontNotFound = errors.New("font not found")

// FontSource produces a font face at a given pixel size.
type FontSource interface {
	Name() string
	Face(size float64) (font.Face, error)
}

// DefaultFontChain returns the font chain used for icons: the named system
// font, then its macOS path, then the bundled default font.
func DefaultFontChain() *FontChain {
	return NewFontChain(SystemFont(primaryFontName), FontFile(secondaryFontPath))
}

// FontChain tries each of its sources in order and falls back to the bundled
// default font, so acquiring a face never fails.
type FontChain struct {
	log      *slog.Logger
	sources  []FontSource
	fallback FontSource
}

// NewFontChain returns a chain over the given sources, terminated by DefaultFont.
func NewFontChain(sources ...FontSource) *FontChain {
	return &FontChain{
		log:      slog.Default(),
		sources:  sources,
		fallback: DefaultFont(),
	}
}

// WithLogger sets this chain's logger.
func (c *FontChain) WithLogger(logger *slog.Logger) *FontChain {
	c.log = logger
	return c
}

// Face returns a face from the first source that can provide one, along with
// the name of that source.
func (c *FontChain) Face(size float64) (font.Face, string) {
	for _, source := range c.sources {
		face, err := source.Face(size)
		if err == nil {
			return face, source.Name()
		}
		c.log.Debug("font source unavailable", "source", source.Name(), "error", err)
	}
	face, _ := c.fallback.Face(size)
	return face, c.fallback.Name()
}

// fileFont parses a TrueType file once and hands out faces at any size.
type fileFont struct {
	name    string
	resolve func() (string, error)

	once sync.Once
	font *truetype.Font
	err  error
}

// FontFile returns a source reading the TrueType font at path.
func FontFile(path string) FontSource {
	return &fileFont{
		name:    path,
		resolve: func() (string, error) { return path, nil },
	}
}

// SystemFont returns a source that looks name up as a path, then searches the
// user and system font directories for a file with that base name.
func SystemFont(name string) FontSource {
	return &fileFont{
		name: name,
		resolve: func() (string, error) {
			path, err := findfont.Find(name)
			if err != nil {
				return "", fmt.Errorf("%w: %v", ErrFontNotFound, err)
			}
			return path, nil
		},
	}
}

func (f *fileFont) Name() string { return f.name }

func (f *fileFont) Face(size float64) (font.Face, error) {
	f.once.Do(func() {
		f.font, f.err = f.load()
	})
	if f.err != nil {
		return nil, f.err
	}
	return newFace(f.font, size), nil
}

func (f *fileFont) load() (*truetype.Font, error) {
	path, err := f.resolve()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFontNotFound, path)
		}
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	parsed, err := freetype.ParseFont(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return parsed, nil
}

type defaultFont struct {
	once sync.Once
	font *truetype.Font
}

// DefaultFont returns the bundled Go Regular font. Its Face method never
// returns an error: if the bundled font cannot be parsed it serves the fixed
// 7x13 bitmap face instead.
func DefaultFont() FontSource {
	return &defaultFont{}
}

func (d *defaultFont) Name() string { return "goregular" }

func (d *defaultFont) Face(size float64) (font.Face, error) {
	d.once.Do(func() {
		d.font, _ = truetype.Parse(goregular.TTF)
	})
	if d.font == nil {
		return basicfont.Face7x13, nil
	}
	return newFace(d.font, size), nil
}

func newFace(f *truetype.Font, size float64) font.Face {
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
