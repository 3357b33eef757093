package msdfatlas

import (
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/msdfatlas/field"
)

// PixelRect is a pixel rectangle within the atlas texture.
type PixelRect struct {
	X, Y, Width, Height int
}

// UVRect is a normalized texture rectangle for sampling.
type UVRect struct {
	U0, V0, U1, V1 float32
}

// GlyphMetrics holds the per-glyph geometry a renderer needs to place
// a glyph quad, in pixels at the glyph's frame scale.
type GlyphMetrics struct {
	// Advance is the horizontal cursor advance.
	Advance float64

	// BearingX is the distance from the origin to the left edge of the
	// glyph box.
	BearingX float64

	// BearingY is the distance from the baseline up to the top edge of
	// the glyph box.
	BearingY float64

	// Scale converts font units to pixels for this glyph.
	Scale float64
}

// Glyph is one packed atlas entry.
type Glyph struct {
	// ID is the glyph identifier within the source face.
	ID GlyphID

	// Rune is a character mapping to this glyph, or 0 for glyphs
	// reached only through the .notdef slot.
	Rune rune

	// Metrics is the pixel-space glyph geometry.
	Metrics GlyphMetrics

	// Bounds is the outline bounding box in font units. Zero for
	// empty glyphs.
	Bounds field.Rect

	// Rect is the glyph's pixel rectangle in the atlas. Zero for
	// empty glyphs, which contribute no texels.
	Rect PixelRect

	// UV is the normalized texture rectangle. Zero for empty glyphs.
	UV UVRect

	// Empty marks an advance-only glyph with no outline (whitespace).
	Empty bool
}

// Atlas is the finished, immutable artifact of a generation run: the
// packed distance-field texture plus per-glyph lookup. It is safe for
// concurrent use by any number of readers; regeneration produces an
// entirely new Atlas.
type Atlas struct {
	data     []byte
	width    int
	height   int
	channels int
	rng      float64
	cellSize int

	glyphs map[GlyphID]Glyph
	order  []GlyphID

	faceName    string
	faceMetrics FaceMetrics
	upem        int
}

// Data returns the raw texture buffer, Channels() bytes per pixel,
// row-major, row 0 at the top. The buffer must not be modified.
func (a *Atlas) Data() []byte { return a.data }

// Width returns the atlas texture width in pixels.
func (a *Atlas) Width() int { return a.width }

// Height returns the atlas texture height in pixels.
func (a *Atlas) Height() int { return a.height }

// Channels returns the per-pixel channel count (3 or 4).
func (a *Atlas) Channels() int { return a.channels }

// Range returns the distance-field range in pixels.
func (a *Atlas) Range() float64 { return a.rng }

// CellSize returns the per-glyph cell size in pixels.
func (a *Atlas) CellSize() int { return a.cellSize }

// FaceName returns the source font's family name.
func (a *Atlas) FaceName() string { return a.faceName }

// FaceMetrics returns the source face's vertical metrics in font units.
func (a *Atlas) FaceMetrics() FaceMetrics { return a.faceMetrics }

// UnitsPerEm returns the source face's design units per em.
func (a *Atlas) UnitsPerEm() int { return a.upem }

// GlyphCount returns the number of glyphs in the atlas, including
// empty advance-only glyphs.
func (a *Atlas) GlyphCount() int { return len(a.order) }

// Glyph returns the packed entry for a glyph.
func (a *Atlas) Glyph(gid GlyphID) (Glyph, bool) {
	g, ok := a.glyphs[gid]
	return g, ok
}

// Metrics returns the glyph's metrics.
func (a *Atlas) Metrics(gid GlyphID) (GlyphMetrics, bool) {
	g, ok := a.glyphs[gid]
	return g.Metrics, ok
}

// UVRect returns the glyph's normalized texture rectangle.
func (a *Atlas) UVRect(gid GlyphID) (UVRect, bool) {
	g, ok := a.glyphs[gid]
	return g.UV, ok
}

// Glyphs returns all packed glyphs in ascending GlyphID order.
// The returned slice is freshly allocated.
func (a *Atlas) Glyphs() []Glyph {
	out := make([]Glyph, 0, len(a.order))
	for _, gid := range a.order {
		out = append(out, a.glyphs[gid])
	}
	return out
}

// Format returns the GPU texture format of the RGBA() upload buffer.
func (a *Atlas) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// RGBA returns a freshly allocated 4-bytes-per-pixel view of the
// texture for upload. Three-channel data gets an opaque alpha.
func (a *Atlas) RGBA() []byte {
	if a.channels == 4 {
		out := make([]byte, len(a.data))
		copy(out, a.data)
		return out
	}

	out := make([]byte, a.width*a.height*4)
	for i := 0; i < a.width*a.height; i++ {
		src := i * 3
		dst := i * 4
		out[dst] = a.data[src]
		out[dst+1] = a.data[src+1]
		out[dst+2] = a.data[src+2]
		out[dst+3] = 0xff
	}
	return out
}

// Image returns the texture as an NRGBA image for debugging or
// preview export.
func (a *Atlas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, a.width, a.height))
	rgba := a.RGBA()
	copy(img.Pix, rgba)
	return img
}
