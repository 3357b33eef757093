package msdfatlas

import (
	"errors"
	"fmt"
)

// Sentinel errors for the msdfatlas package.
var (
	// ErrAtlasOverflow is returned when the glyph set cannot fit the
	// maximum atlas dimensions.
	ErrAtlasOverflow = errors.New("msdfatlas: glyph set exceeds maximum atlas size")
)

// ShapeError reports that a glyph's outline could not be read from the
// font's glyph description tables.
type ShapeError struct {
	GID GlyphID
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("msdfatlas: glyph shape reading error for glyph %d: %v", e.GID, e.Err)
}

func (e *ShapeError) Unwrap() error { return e.Err }

// GlyphError records a per-glyph generation failure. Glyph failures do
// not abort the batch: the glyph is excluded from the atlas and the
// error is collected alongside the successful results.
type GlyphError struct {
	// GID is the glyph that failed.
	GID GlyphID

	// Err is the underlying cause: a *ShapeError or a
	// *field.FrameError.
	Err error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("msdfatlas: glyph %d: %v", e.GID, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }
