package iconset

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/malonaz/pwa-icons/go/icon"
)

const (
	// IconDir holds the sized PWA icons, relative to the output root.
	IconDir = "icons"
	// FaviconPath is the favicon location, relative to the output root.
	FaviconPath = "favicon.ico"
)

// IconPath returns the relative path of the PWA icon of the given size.
func IconPath(size int) string {
	return fmt.Sprintf("%s/icon-%dx%d.png", IconDir, size, size)
}

// OutputPaths returns every file a successful run produces, in generation order.
func OutputPaths() []string {
	var paths []string
	for _, size := range icon.RequiredSizes() {
		paths = append(paths, IconPath(size))
	}
	return append(paths, FaviconPath)
}

// Result describes a successful run.
type Result struct {
	// Files are the relative paths written, in order.
	Files []string
}

// Generator renders the PWA icon set and favicon under a root directory.
type Generator struct {
	log      *slog.Logger
	root     string
	out      io.Writer
	renderer *icon.Renderer
	probe    func() error
}

// NewGenerator returns a generator writing under root and reporting progress to out.
func NewGenerator(root string, out io.Writer, renderer *icon.Renderer) *Generator {
	return &Generator{
		log:      slog.Default(),
		root:     root,
		out:      out,
		renderer: renderer,
		probe:    ProbeImaging,
	}
}

// WithLogger sets this generator's logger.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	g.log = logger
	return g
}

// WithProbe replaces the imaging availability check run before anything is written.
func (g *Generator) WithProbe(probe func() error) *Generator {
	g.probe = probe
	return g
}

// EnsureOutputDirectory creates the icon directory if it does not exist.
func (g *Generator) EnsureOutputDirectory() error {
	dir := filepath.Join(g.root, IconDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &GenerationError{Op: "creating directory", Path: IconDir, Err: err}
	}
	return nil
}

// Run generates every icon then the favicon. The first failure aborts the batch.
func (g *Generator) Run(ctx context.Context) (*Result, error) {
	if err := g.probe(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingImagingLibrary, err)
	}
	if err := g.EnsureOutputDirectory(); err != nil {
		return nil, err
	}

	g.printf("🎨 Generating LinkedInify icons...\n")
	result := &Result{}
	for _, size := range icon.RequiredSizes() {
		if err := ctx.Err(); err != nil {
			return nil, &GenerationError{Op: "generating icons", Err: err}
		}
		path := IconPath(size)
		if err := g.generate(size, path); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, path)
	}

	if err := ctx.Err(); err != nil {
		return nil, &GenerationError{Op: "generating favicon", Err: err}
	}
	if err := g.generate(icon.FaviconSize, FaviconPath); err != nil {
		return nil, err
	}
	result.Files = append(result.Files, FaviconPath)

	g.printf("\n🎉 All icons generated successfully!\n")
	g.printf("\nGenerated files:\n")
	for _, path := range OutputPaths() {
		g.printf("  - %s\n", path)
	}
	return result, nil
}

func (g *Generator) generate(size int, path string) error {
	img, err := g.renderer.Render(size)
	if err != nil {
		return &GenerationError{Op: "rendering", Path: path, Err: err}
	}
	if err := icon.Save(img, filepath.Join(g.root, filepath.FromSlash(path))); err != nil {
		return &GenerationError{Op: "saving", Path: path, Err: err}
	}
	g.log.Debug("saved icon", "path", path, "size", size)
	g.printf("✅ Created %s\n", path)
	return nil
}

func (g *Generator) printf(format string, args ...any) {
	fmt.Fprintf(g.out, format, args...)
}

// ProbeImaging checks that the imaging backend can draw text and encode every
// output format, without touching the filesystem.
func ProbeImaging() error {
	img, err := icon.NewRenderer(icon.NewFontChain()).Render(1)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	for _, path := range []string{IconPath(1), FaviconPath} {
		if err := encode(io.Discard, img, path); err != nil {
			return err
		}
	}
	return nil
}

func encode(w io.Writer, img image.Image, path string) error {
	encoder, err := icon.EncoderFor(path)
	if err != nil {
		return err
	}
	if err := encoder(w, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filepath.Ext(path), err)
	}
	return nil
}
