package render

import (
	"context"

	"github.com/matzehuels/dfscope/pkg/errors"
)

// Format is an image output format.
type Format string

// Supported image formats.
const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

// ValidFormats is the set of supported image formats.
var ValidFormats = map[Format]bool{
	FormatPNG: true,
	FormatSVG: true,
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(f Format) error {
	if !ValidFormats[f] {
		return errors.New(errors.ErrCodeInvalidInput, "invalid format: %q (must be one of: png, svg)", f)
	}
	return nil
}

// Engine renders DOT text into image bytes.
//
// Available is the capability probe: a non-nil result means image
// generation should be skipped (RENDERER_UNAVAILABLE) while the textual
// classification output stands. Render errors carry RENDER_FAILED with
// whatever diagnostics the engine produced.
type Engine interface {
	// Name identifies the engine in logs and messages.
	Name() string

	// Available reports whether the engine can render at all.
	Available(ctx context.Context) error

	// Render converts DOT text to image bytes in the given format.
	Render(ctx context.Context, dot string, format Format) ([]byte, error)
}
