package msdfatlas

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/msdfatlas/field"
)

// GlyphID identifies a glyph within a face. Stable for the lifetime of
// the face.
type GlyphID uint16

// Face is a read-only accessor over a parsed font binary. It is safe
// for concurrent use; every operation allocates its own scratch buffer.
//
// Only face index 0 of a font collection is parsed; multi-face
// containers are a known limitation.
type Face struct {
	font *opentype.Font
	upem int
}

// ParseFace parses raw TTF/OTF font bytes. An unparseable font is a
// fatal error for the whole generation call.
func ParseFace(data []byte) (*Face, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("msdfatlas: invalid font: %w", err)
	}
	return &Face{
		font: f,
		upem: int(f.UnitsPerEm()),
	}, nil
}

// NumGlyphs returns the number of glyphs in the face.
func (f *Face) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// UnitsPerEm returns the font's design units per em.
func (f *Face) UnitsPerEm() int {
	return f.upem
}

// Name returns the font family name, or "" if not available.
func (f *Face) Name() string {
	var buf sfnt.Buffer
	if name, err := f.font.Name(&buf, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// GlyphIndex looks up the glyph for a rune through the font's cmap.
// Returns false when the face has no glyph for the rune.
func (f *Face) GlyphIndex(r rune) (GlyphID, bool) {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// fontUnitsPPEM returns the ppem at which sfnt coordinates come back in
// raw font units.
func (f *Face) fontUnitsPPEM() fixed.Int26_6 {
	return fixed.Int26_6(f.upem * 64)
}

// Outline extracts the vector outline of a glyph in font units (y-up).
// An empty segment list is a valid empty glyph, not an error; the
// advance is reported either way. A malformed glyph description or an
// out-of-range index returns a shape-reading error.
func (f *Face) Outline(gid GlyphID) (*Outline, error) {
	var buf sfnt.Buffer
	ppem := f.fontUnitsPPEM()

	segments, err := f.font.LoadGlyph(&buf, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("glyph %d shape: %w", gid, err)
	}

	outline := &Outline{
		GID:      gid,
		Advance:  f.advance(&buf, gid),
		Segments: make([]Segment, 0, len(segments)),
	}

	minX, minY := 1e30, 1e30
	maxX, maxY := -1e30, -1e30
	track := func(p field.Point) {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}

	for _, seg := range segments {
		var out Segment
		var argc int

		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			out.Op = OpMoveTo
			argc = 1
		case sfnt.SegmentOpLineTo:
			out.Op = OpLineTo
			argc = 1
		case sfnt.SegmentOpQuadTo:
			out.Op = OpQuadTo
			argc = 2
		case sfnt.SegmentOpCubeTo:
			out.Op = OpCubeTo
			argc = 3
		default:
			continue
		}

		for i := 0; i < argc; i++ {
			p := fixedToPoint(seg.Args[i])
			out.Args[i] = p
			track(p)
		}
		outline.Segments = append(outline.Segments, out)
	}

	if len(outline.Segments) > 0 {
		outline.Bounds = field.Rect{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
		outline.LSB = minX
	}

	return outline, nil
}

// Advance returns the horizontal advance of a glyph in font units,
// or 0 when the glyph does not exist.
func (f *Face) Advance(gid GlyphID) float64 {
	var buf sfnt.Buffer
	return f.advance(&buf, gid)
}

// advance returns the horizontal advance of a glyph in font units.
func (f *Face) advance(buf *sfnt.Buffer, gid GlyphID) float64 {
	adv, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(gid), f.fontUnitsPPEM(), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixedToFloat(adv)
}

// FaceMetrics holds face-level vertical metrics in font units.
type FaceMetrics struct {
	// Ascent is the distance from the baseline to the top of a line
	// (positive, upward).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of a
	// line (positive, downward).
	Descent float64

	// LineGap is the recommended extra gap between lines.
	LineGap float64

	// XHeight is the height of lowercase letters.
	XHeight float64

	// CapHeight is the height of uppercase letters.
	CapHeight float64
}

// LineHeight returns the default baseline-to-baseline distance.
func (m FaceMetrics) LineHeight() float64 {
	return m.Ascent + m.Descent + m.LineGap
}

// Metrics returns the face-level metrics in font units.
func (f *Face) Metrics() FaceMetrics {
	var buf sfnt.Buffer
	metrics, err := f.font.Metrics(&buf, f.fontUnitsPPEM(), font.HintingNone)
	if err != nil {
		return FaceMetrics{}
	}

	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)
	return FaceMetrics{
		Ascent:    ascent,
		Descent:   descent,
		LineGap:   fixedToFloat(metrics.Height) - ascent - descent,
		XHeight:   fixedToFloat(metrics.XHeight),
		CapHeight: fixedToFloat(metrics.CapHeight),
	}
}

// fixedToPoint converts an sfnt point to font units, flipping to y-up.
// sfnt reports glyph coordinates with y growing downward.
func fixedToPoint(p fixed.Point26_6) field.Point {
	return field.Point{
		X: float64(p.X) / 64,
		Y: -float64(p.Y) / 64,
	}
}

// fixedToFloat converts a 26.6 fixed-point value to float64.
func fixedToFloat(x fixed.Int26_6) float64 {
	return float64(x) / 64
}
