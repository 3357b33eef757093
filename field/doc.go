// Package field implements the geometry kernel for multi-channel
// signed distance field (MSDF) generation: edge segments with analytic
// nearest-point solvers, contour assembly from path commands, corner
// detection and channel coloring, auto-framing of a shape into a fixed
// pixel cell, and the per-pixel distance-field rasterizer.
//
// The pipeline for one glyph is:
//
//  1. Build a Shape from the outline's path commands (ShapeBuilder).
//  2. AssignMasks to color edges so corners survive median sampling.
//  3. FrameShape to fit the outline, padded by the distance range,
//     into the target cell.
//  4. Rasterize to produce the channel bytes.
//
// Distances are pseudo-distances: near edge endpoints the supporting
// line or tangent is extended, which removes seam artifacts where
// edges of different channels meet at a corner. The sign of every
// sample is decided by the shape's nonzero winding number, so the
// field's inside/outside classification matches the fill rule exactly.
//
// All operations are deterministic pure functions of their inputs;
// rendering the same shape twice yields byte-identical bitmaps.
package field
