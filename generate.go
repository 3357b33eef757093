package msdfatlas

import (
	"context"
	"runtime"
	"sort"
	"sync"

	"github.com/gogpu/msdfatlas/field"
)

// Generate parses font bytes and builds a distance-field atlas for the
// configured charset. Glyph 0 (.notdef) is always included.
//
// Per-glyph failures do not abort the run: the failed glyphs are
// excluded from the atlas and returned as GlyphErrors, in ascending
// GlyphID order. The error return is non-nil only for fatal problems
// (invalid config, unparseable font, atlas overflow, cancellation), in
// which case the atlas and the error list are nil.
func Generate(ctx context.Context, data []byte, cfg Config) (*Atlas, []GlyphError, error) {
	face, err := ParseFace(data)
	if err != nil {
		return nil, nil, err
	}
	return GenerateFromFace(ctx, face, cfg)
}

// GenerateFromFace is Generate for an already parsed face.
func GenerateFromFace(ctx context.Context, face *Face, cfg Config) (*Atlas, []GlyphError, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	gids, runes := collectGlyphs(face, &cfg)

	log := Logger()
	log.Debug("msdfatlas: generating glyphs",
		"count", len(gids),
		"cell", cfg.CellSize,
		"range", cfg.Range,
		"channels", cfg.Channels)

	results, err := generateGlyphs(ctx, face, &cfg, gids, runes)
	if err != nil {
		return nil, nil, err
	}

	return assembleAtlas(face, &cfg, results)
}

// collectGlyphs resolves the configured charset to a deduplicated,
// ascending list of glyph IDs. Glyph 0 is always first. When several
// runes map to one glyph, the lowest rune is recorded for it.
func collectGlyphs(face *Face, cfg *Config) ([]GlyphID, map[GlyphID]rune) {
	runes := map[GlyphID]rune{0: 0}

	visitCharset(cfg.charset(), func(r rune) {
		gid, ok := face.GlyphIndex(r)
		if !ok {
			return
		}
		if _, seen := runes[gid]; !seen {
			runes[gid] = r
		}
	})

	gids := make([]GlyphID, 0, len(runes))
	for gid := range runes {
		gids = append(gids, gid)
	}
	sort.Slice(gids, func(i, j int) bool { return gids[i] < gids[j] })

	return gids, runes
}

// glyphResult is the outcome of generating one glyph.
type glyphResult struct {
	gid    GlyphID
	r      rune
	bounds field.Rect

	metrics GlyphMetrics
	bitmap  *field.Bitmap
	empty   bool

	err *GlyphError
}

// generateGlyphs renders every glyph concurrently and returns the
// results sorted by GlyphID. On cancellation it returns ctx.Err() and
// no partial results.
func generateGlyphs(ctx context.Context, face *Face, cfg *Config, gids []GlyphID, runes map[GlyphID]rune) ([]glyphResult, error) {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(gids) {
		workers = len(gids)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan GlyphID)
	out := make(chan glyphResult, len(gids))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for gid := range jobs {
				if ctx.Err() != nil {
					return
				}
				out <- generateGlyph(face, cfg, gid, runes[gid])
			}
		}()
	}

feed:
	for _, gid := range gids {
		select {
		case jobs <- gid:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	close(out)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]glyphResult, 0, len(gids))
	for res := range out {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].gid < results[j].gid })

	return results, nil
}

// generateGlyph runs the per-glyph pipeline: outline extraction, edge
// coloring, framing, rasterization.
func generateGlyph(face *Face, cfg *Config, gid GlyphID, r rune) glyphResult {
	res := glyphResult{gid: gid, r: r}

	outline, err := face.Outline(gid)
	if err != nil {
		res.err = &GlyphError{GID: gid, Err: &ShapeError{GID: gid, Err: err}}
		return res
	}

	if outline.IsEmpty() {
		return emptyGlyphResult(face, cfg, gid, r, outline)
	}

	shape := outline.Shape()
	if shape.IsEmpty() {
		// Every edge was degenerate. Treat like whitespace.
		return emptyGlyphResult(face, cfg, gid, r, outline)
	}

	field.AssignMasks(shape, cfg.AngleThreshold)

	frame, err := field.FrameShape(shape.Bounds, cfg.CellSize, cfg.CellSize, cfg.Range)
	if err != nil {
		res.err = &GlyphError{GID: gid, Err: err}
		return res
	}

	res.bounds = outline.Bounds
	res.bitmap = field.Rasterize(shape, frame, cfg.Channels)
	res.metrics = GlyphMetrics{
		Advance:  outline.Advance * frame.Scale,
		BearingX: outline.Bounds.MinX * frame.Scale,
		BearingY: outline.Bounds.MaxY * frame.Scale,
		Scale:    frame.Scale,
	}
	return res
}

// emptyGlyphResult builds an advance-only entry. Empty glyphs have no
// frame of their own, so the advance uses the nominal scale a full-em
// outline would get in this cell.
func emptyGlyphResult(face *Face, cfg *Config, gid GlyphID, r rune, outline *Outline) glyphResult {
	scale := (float64(cfg.CellSize) - 2*cfg.Range) / float64(face.UnitsPerEm())
	return glyphResult{
		gid:   gid,
		r:     r,
		empty: true,
		metrics: GlyphMetrics{
			Advance: outline.Advance * scale,
			Scale:   scale,
		},
	}
}

// assembleAtlas packs the rendered bitmaps into one texture and
// builds the final container.
func assembleAtlas(face *Face, cfg *Config, results []glyphResult) (*Atlas, []GlyphError, error) {
	var glyphErrs []GlyphError
	packable := 0
	for i := range results {
		switch {
		case results[i].err != nil:
			glyphErrs = append(glyphErrs, *results[i].err)
		case !results[i].empty:
			packable++
		}
	}

	log := Logger()
	for _, ge := range glyphErrs {
		log.Warn("msdfatlas: glyph failed", "glyph", uint16(ge.GID), "err", ge.Err)
	}

	width, height, err := planAtlasSize(packable, cfg.CellSize, cfg.Padding)
	if err != nil {
		return nil, nil, err
	}

	channels := cfg.Channels
	atlas := &Atlas{
		data:        make([]byte, width*height*channels),
		width:       width,
		height:      height,
		channels:    channels,
		rng:         cfg.Range,
		cellSize:    cfg.CellSize,
		glyphs:      make(map[GlyphID]Glyph, len(results)),
		faceName:    face.Name(),
		faceMetrics: face.Metrics(),
		upem:        face.UnitsPerEm(),
	}

	packer := newShelfPacker(width, height, cfg.Padding)

	for i := range results {
		res := &results[i]
		if res.err != nil {
			continue
		}

		g := Glyph{
			ID:      res.gid,
			Rune:    res.r,
			Metrics: res.metrics,
			Bounds:  res.bounds,
			Empty:   res.empty,
		}

		if !res.empty {
			bmp := res.bitmap
			x, y, ok := packer.allocate(bmp.Width, bmp.Height)
			if !ok {
				// planAtlasSize sized the texture for every packable
				// cell, so allocation cannot fail here.
				return nil, nil, ErrAtlasOverflow
			}

			blit(atlas.data, width, channels, x, y, bmp)

			g.Rect = PixelRect{X: x, Y: y, Width: bmp.Width, Height: bmp.Height}
			g.UV = UVRect{
				U0: float32(x) / float32(width),
				V0: float32(y) / float32(height),
				U1: float32(x+bmp.Width) / float32(width),
				V1: float32(y+bmp.Height) / float32(height),
			}
		}

		atlas.glyphs[res.gid] = g
		atlas.order = append(atlas.order, res.gid)
	}

	log.Info("msdfatlas: atlas generated",
		"glyphs", len(atlas.order),
		"failed", len(glyphErrs),
		"width", width,
		"height", height,
		"utilization", packer.utilization())

	return atlas, glyphErrs, nil
}

// blit copies a glyph bitmap into the atlas buffer at x, y. Bitmap
// channel count always matches the atlas.
func blit(dst []byte, dstWidth, channels, x, y int, bmp *field.Bitmap) {
	for row := 0; row < bmp.Height; row++ {
		srcOff := row * bmp.Width * bmp.Channels
		dstOff := ((y+row)*dstWidth + x) * channels
		copy(dst[dstOff:dstOff+bmp.Width*channels], bmp.Data[srcOff:srcOff+bmp.Width*bmp.Channels])
	}
}
