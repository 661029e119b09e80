package icon

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
)

// Encoder writes an image in a specific file format.
type Encoder func(w io.Writer, img image.Image) error

var extensionToEncoder = map[string]Encoder{
	".png": png.Encode,
	".ico": ico.Encode,
}

// EncoderFor returns the encoder implied by path's extension.
func EncoderFor(path string) (Encoder, error) {
	ext := strings.ToLower(filepath.Ext(path))
	encoder, ok := extensionToEncoder[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q", ext)
	}
	return encoder, nil
}

// Save writes img to path in the format implied by its extension, replacing
// any existing file. A failed write leaves the previous file untouched.
func Save(img image.Image, path string) error {
	encoder, err := EncoderFor(path)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	file, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := encoder(file, img); err != nil {
		file.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming file: %w", err)
	}
	return nil
}
