package field

import "sort"

// palette is the fixed channel-mask rotation used for edge coloring.
// Each entry shares exactly one channel with its neighbors, so adjacent
// arcs never carry the same full mask.
var palette = [3]ChannelMask{MaskCyan, MaskMagenta, MaskYellow}

// AssignMasks colors every edge of the shape so that the two edges
// meeting at each corner carry different channel masks. Corners are
// vertices where the tangent turns by more than angleThreshold radians.
//
// The assignment is a pure function of the shape: no randomness, so
// identical outlines always produce identical masks.
func AssignMasks(shape *Shape, angleThreshold float64) {
	for _, contour := range shape.Contours {
		assignContourMasks(contour, angleThreshold)
	}
}

// cornerIndices returns the sorted edge indices whose start vertex is a
// corner of the contour.
func cornerIndices(c *Contour, angleThreshold float64) []int {
	n := len(c.Edges)
	corners := make([]int, 0, 4)
	for i := 0; i < n; i++ {
		dirOut := c.Edges[i].DirectionAt(1).Normalized()
		dirIn := c.Edges[(i+1)%n].DirectionAt(0).Normalized()
		if AngleBetween(dirOut, dirIn) > angleThreshold {
			corners = append(corners, (i+1)%n)
		}
	}
	sort.Ints(corners)
	return corners
}

// assignContourMasks colors the edges of a single contour.
func assignContourMasks(c *Contour, angleThreshold float64) {
	n := len(c.Edges)
	if n == 0 {
		return
	}
	if n == 1 {
		// A single closed edge cannot be split; give it all channels.
		c.Edges[0].Mask = MaskWhite
		return
	}

	corners := cornerIndices(c, angleThreshold)

	if len(corners) < 2 {
		// Smooth or teardrop contour. A single mask would erase the
		// contour from two of the three channel medians, so split the
		// edge list into thirds. For a teardrop the split starts at
		// the lone corner, keeping its two sides on different masks.
		start := 0
		if len(corners) == 1 {
			start = corners[0]
		}
		for offset := 0; offset < n; offset++ {
			idx := (start + offset) % n
			c.Edges[idx].Mask = palette[3*offset/n]
		}
		return
	}

	// One arc per corner pair, colored round-robin. The rotation only
	// conflicts across the wrap-around when the arc count is 1 mod 3;
	// the final arc then takes the mask unused by both its neighbors.
	m := len(corners)
	for k := 0; k < m; k++ {
		mask := palette[k%3]
		if k == m-1 && mask == palette[0] {
			mask = spareMask(palette[(k-1)%3], palette[0])
		}

		start := corners[k]
		end := corners[(k+1)%m]
		for j := start; j != end; j = (j + 1) % n {
			c.Edges[j].Mask = mask
		}
	}
}

// spareMask returns the palette entry equal to neither a nor b.
func spareMask(a, b ChannelMask) ChannelMask {
	for _, m := range palette {
		if m != a && m != b {
			return m
		}
	}
	return palette[0]
}
