package acquire

import (
	"fmt"

	"cargoscan/internal/domain"
)

// DecodeError indicates the uploaded bytes could not be decoded as the
// declared media kind.
type DecodeError struct {
	Kind domain.FileType
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s input: %v", e.Kind, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// EngineError indicates an external engine (tesseract, pdftoppm) failed.
// Page is 1-based and 0 when the failure is not tied to a single page.
type EngineError struct {
	Engine string
	Page   int
	Stderr string
	Err    error
}

func (e *EngineError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("%s failed on page %d: %v", e.Engine, e.Page, e.Err)
	}
	return fmt.Sprintf("%s failed: %v", e.Engine, e.Err)
}

func (e *EngineError) Unwrap() error {
	return e.Err
}

// UnsupportedMediaError indicates a media kind outside the supported set.
type UnsupportedMediaError struct {
	Kind string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("unsupported media kind %q", e.Kind)
}
