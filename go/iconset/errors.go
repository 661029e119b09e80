package iconset

import (
	"errors"
	"fmt"
)

// ErrMissingImagingLibrary is returned when the imaging backend cannot render or encode.
// Nothing has been written when it is returned.
var ErrMissingImagingLibrary = errors.New("imaging library not available")

// GenerationError reports the step that aborted a batch.
type GenerationError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error { return e.Err }
