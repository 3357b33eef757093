package field

import "math"

// Bitmap is a rendered multi-channel signed distance field cell.
// Rows are stored top-down: row 0 is the top of the cell.
type Bitmap struct {
	// Data is the pixel data, Channels bytes per pixel, row-major.
	Data []byte

	// Width and Height in pixels.
	Width, Height int

	// Channels per pixel: 3 (MSDF) or 4 (MSDF + true-distance alpha).
	Channels int
}

// PixelOffset returns the byte offset for pixel (x, y).
func (b *Bitmap) PixelOffset(x, y int) int {
	return (y*b.Width + x) * b.Channels
}

// Pixel returns the channel bytes at (x, y). The returned slice aliases
// the bitmap's data.
func (b *Bitmap) Pixel(x, y int) []byte {
	off := b.PixelOffset(x, y)
	return b.Data[off : off+b.Channels]
}

// EncodeDistance maps a signed pixel-space distance (positive outside,
// negative inside) to a byte. The edge itself encodes as 128; inside
// values are above, so GPU median sampling keeps the usual
// "median > 0.5 means inside" contract.
func EncodeDistance(dist, rng float64) byte {
	normalized := 0.5 - dist/(2*rng)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}
	return byte(math.Round(normalized * 255))
}

// DecodeDistance recovers the clamped signed pixel-space distance from
// an encoded byte.
func DecodeDistance(v byte, rng float64) float64 {
	return (0.5 - float64(v)/255) * 2 * rng
}

// Rasterize renders the shape into a distance-field bitmap using the
// given frame. channels selects 3 (MSDF) or 4 (MSDF plus a plain
// signed-distance alpha channel); any other value falls back to 3.
//
// Each pixel center is unprojected to font units; per color channel the
// minimum pseudo-distance among edges carrying that channel is taken,
// and the sign comes from the shape's nonzero winding number (positive
// outside the filled region, negative inside).
func Rasterize(shape *Shape, frame Frame, channels int) *Bitmap {
	if channels != 4 {
		channels = 3
	}

	bmp := &Bitmap{
		Data:     make([]byte, frame.Width*frame.Height*channels),
		Width:    frame.Width,
		Height:   frame.Height,
		Channels: channels,
	}

	for y := 0; y < frame.Height; y++ {
		// Row 0 is the top of the cell; font units grow upward.
		py := float64(frame.Height) - (float64(y) + 0.5)

		for x := 0; x < frame.Width; x++ {
			px := float64(x) + 0.5
			p := frame.Unproject(Point{X: px, Y: py})

			sign := 1.0
			if shape.WindingAt(p) != 0 {
				sign = -1
			}

			r := channelDistance(shape, p, ChannelMask.HasRed)
			g := channelDistance(shape, p, ChannelMask.HasGreen)
			b := channelDistance(shape, p, ChannelMask.HasBlue)

			px0 := bmp.Pixel(x, y)
			px0[0] = EncodeDistance(sign*r*frame.Scale, frame.Range)
			px0[1] = EncodeDistance(sign*g*frame.Scale, frame.Range)
			px0[2] = EncodeDistance(sign*b*frame.Scale, frame.Range)

			if channels == 4 {
				t := trueDistance(shape, p)
				px0[3] = EncodeDistance(sign*t*frame.Scale, frame.Range)
			}
		}
	}

	return bmp
}

// channelDistance returns the minimum pseudo-distance magnitude from p
// to any edge whose mask satisfies the selector. Falls back to all
// edges when the channel is empty (cannot happen with AssignMasks, but
// keeps the field defined for hand-built shapes).
func channelDistance(shape *Shape, p Point, sel func(ChannelMask) bool) float64 {
	best := Infinite()

	for _, contour := range shape.Contours {
		for i := range contour.Edges {
			e := &contour.Edges[i]
			if !sel(e.Mask) {
				continue
			}
			best = best.Combine(e.PseudoDistance(p))
		}
	}

	if best.Distance == math.MaxFloat64 {
		return trueDistance(shape, p)
	}
	return best.Distance
}

// trueDistance returns the minimum true-distance magnitude from p to
// any edge of the shape.
func trueDistance(shape *Shape, p Point) float64 {
	best := Infinite()

	for _, contour := range shape.Contours {
		for i := range contour.Edges {
			d, _ := contour.Edges[i].Distance(p)
			best = best.Combine(d)
		}
	}

	if best.Distance == math.MaxFloat64 {
		return 0
	}
	return best.Distance
}
