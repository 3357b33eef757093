package msdfatlas

import "encoding/json"

// Manifest is a JSON-friendly description of an atlas in the layout
// engines commonly load alongside the texture: atlas dimensions, font
// metrics in em units, and per-glyph plane/atlas bounds.
type Manifest struct {
	Atlas   ManifestAtlas   `json:"atlas"`
	Metrics ManifestMetrics `json:"metrics"`
	Glyphs  []ManifestGlyph `json:"glyphs"`
}

// ManifestAtlas describes the texture.
type ManifestAtlas struct {
	// Type is "msdf" for 3-channel atlases, "mtsdf" for 4-channel.
	Type string `json:"type"`

	// DistanceRange is the field range in pixels.
	DistanceRange float64 `json:"distanceRange"`

	// Size is the glyph cell size in pixels.
	Size int `json:"size"`

	Width  int `json:"width"`
	Height int `json:"height"`
}

// ManifestMetrics holds face metrics normalized to em units.
type ManifestMetrics struct {
	EmSize     float64 `json:"emSize"`
	LineHeight float64 `json:"lineHeight"`
	Ascender   float64 `json:"ascender"`
	Descender  float64 `json:"descender"`
}

// ManifestRect is an axis-aligned rectangle.
type ManifestRect struct {
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
	Top    float64 `json:"top"`
}

// ManifestGlyph is one glyph entry. PlaneBounds positions the glyph
// quad relative to the baseline origin in em units; AtlasBounds is the
// glyph's pixel rectangle in the texture. Both are omitted for empty
// glyphs.
type ManifestGlyph struct {
	GlyphID uint16 `json:"glyphId"`

	// Unicode is a code point mapping to this glyph, 0 if none.
	Unicode int32 `json:"unicode,omitempty"`

	// Advance is the horizontal advance in em units.
	Advance float64 `json:"advance"`

	PlaneBounds *ManifestRect `json:"planeBounds,omitempty"`
	AtlasBounds *ManifestRect `json:"atlasBounds,omitempty"`
}

// Manifest builds the atlas description. Glyphs appear in ascending
// GlyphID order.
func (a *Atlas) Manifest() *Manifest {
	upem := float64(a.upem)
	fm := a.faceMetrics

	m := &Manifest{
		Atlas: ManifestAtlas{
			Type:          atlasType(a.channels),
			DistanceRange: a.rng,
			Size:          a.cellSize,
			Width:         a.width,
			Height:        a.height,
		},
		Metrics: ManifestMetrics{
			EmSize:     1,
			LineHeight: fm.LineHeight() / upem,
			Ascender:   fm.Ascent / upem,
			Descender:  -fm.Descent / upem,
		},
		Glyphs: make([]ManifestGlyph, 0, len(a.order)),
	}

	for _, gid := range a.order {
		g := a.glyphs[gid]

		entry := ManifestGlyph{
			GlyphID: uint16(g.ID),
			Unicode: int32(g.Rune),
			Advance: g.Metrics.Advance / g.Metrics.Scale / upem,
		}

		if !g.Empty {
			// Plane bounds cover the framed cell so the quad samples
			// the full distance range around the outline.
			pad := a.rng / g.Metrics.Scale
			entry.PlaneBounds = &ManifestRect{
				Left:   (g.Bounds.MinX - pad) / upem,
				Bottom: (g.Bounds.MinY - pad) / upem,
				Right:  (g.Bounds.MaxX + pad) / upem,
				Top:    (g.Bounds.MaxY + pad) / upem,
			}
			entry.AtlasBounds = &ManifestRect{
				Left:   float64(g.Rect.X),
				Bottom: float64(g.Rect.Y + g.Rect.Height),
				Right:  float64(g.Rect.X + g.Rect.Width),
				Top:    float64(g.Rect.Y),
			}
		}

		m.Glyphs = append(m.Glyphs, entry)
	}

	return m
}

// MarshalManifest returns the manifest as indented JSON.
func (a *Atlas) MarshalManifest() ([]byte, error) {
	return json.MarshalIndent(a.Manifest(), "", "  ")
}

// atlasType maps the channel count to the conventional manifest name.
func atlasType(channels int) string {
	if channels == 4 {
		return "mtsdf"
	}
	return "msdf"
}
