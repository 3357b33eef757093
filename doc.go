// Package msdfatlas generates Multi-channel Signed Distance Field
// glyph atlases on the CPU for high-quality, scalable text rendering
// on GPU.
//
// MSDF (Multi-channel Signed Distance Field) encodes glyph shape
// information into RGB texture channels. Unlike traditional SDF which
// uses a single distance value, MSDF preserves sharp corners by
// encoding directional distance information in separate channels.
//
// # Pipeline
//
// A generation run is one-shot and produces an immutable Atlas:
//
//  1. Parse the font binary (TTF/OTF)
//  2. Extract each glyph outline into closed contours
//  3. Classify edge segments (line, quadratic, cubic)
//  4. Assign channel masks to edges based on corner angles
//  5. Fit each outline into a fixed pixel cell
//  6. For each pixel, encode per-channel signed pseudo-distances
//  7. Shelf-pack the glyph cells into one texture
//
// Glyphs are generated concurrently; failures on individual glyphs
// (malformed outline data, unframeable shapes) are collected and
// returned alongside the atlas rather than aborting the run. Only an
// unparseable font, an invalid configuration, or an oversized glyph
// set is fatal.
//
// # Usage
//
//	data, _ := os.ReadFile("font.ttf")
//
//	cfg := msdfatlas.DefaultConfig()
//	cfg.Charset = msdfatlas.CharsetLatin1()
//
//	atlas, glyphErrs, err := msdfatlas.Generate(context.Background(), data, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, ge := range glyphErrs {
//	    log.Printf("skipped: %v", &ge)
//	}
//
//	// atlas.RGBA() is the upload buffer, atlas.Format() its format.
//	// atlas.Glyph(gid) / atlas.UVRect(gid) drive quad placement.
//
// # WGSL Shader Example
//
// The median of the RGB channels recovers the signed distance; 0.5 is
// the glyph edge, values above 0.5 are inside.
//
//	fn median3(v: vec3<f32>) -> f32 {
//	    return max(min(v.r, v.g), min(max(v.r, v.g), v.b));
//	}
//
//	@fragment
//	fn fs_main(@location(0) uv: vec2<f32>) -> @location(0) vec4<f32> {
//	    let msdf = textureSample(atlas_tex, samp, uv).rgb;
//	    let sd = median3(msdf) - 0.5;
//	    let alpha = clamp(sd * px_range / length(fwidth(uv)) + 0.5, 0.0, 1.0);
//	    return vec4<f32>(color.rgb, color.a * alpha);
//	}
//
// # References
//
// - msdf-atlas-gen: https://github.com/Chlumsky/msdf-atlas-gen
// - MSDF paper: "Shape Decomposition for Multi-channel Distance Fields"
package msdfatlas
