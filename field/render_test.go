package field

import (
	"bytes"
	"math"
	"testing"
)

func TestEncodeDistance(t *testing.T) {
	// On the edge.
	if got := EncodeDistance(0, 4); got != 128 {
		t.Errorf("EncodeDistance(0) = %d, want 128", got)
	}
	// Deep inside clamps high, deep outside clamps low.
	if got := EncodeDistance(-100, 4); got != 255 {
		t.Errorf("EncodeDistance(inside) = %d, want 255", got)
	}
	if got := EncodeDistance(100, 4); got != 0 {
		t.Errorf("EncodeDistance(outside) = %d, want 0", got)
	}
	// One pixel outside at range 4 sits an eighth below the midpoint.
	if got := EncodeDistance(1, 4); got != 96 {
		t.Errorf("EncodeDistance(1) = %d, want 96", got)
	}
}

func TestDecodeDistance(t *testing.T) {
	for _, dist := range []float64{-3, -1, 0, 1, 3} {
		b := EncodeDistance(dist, 4)
		back := DecodeDistance(b, 4)
		if math.Abs(back-dist) > 8.0/255+1e-9 {
			t.Errorf("decode(encode(%v)) = %v", dist, back)
		}
	}
}

// median3 recovers the signed distance the way an MSDF shader does.
func median3(r, g, b byte) byte {
	return max(min(r, g), min(max(r, g), b))
}

func rasterizeSquare(t *testing.T, channels int) (*Bitmap, Frame) {
	t.Helper()
	shape := buildSquare(t)
	AssignMasks(shape, math.Pi/3)

	frame, err := FrameShape(shape.Bounds, 32, 32, 4)
	if err != nil {
		t.Fatalf("FrameShape error: %v", err)
	}
	return Rasterize(shape, frame, channels), frame
}

func TestRasterizeSquare(t *testing.T) {
	bmp, _ := rasterizeSquare(t, 3)

	if bmp.Width != 32 || bmp.Height != 32 {
		t.Fatalf("bitmap size = %dx%d, want 32x32", bmp.Width, bmp.Height)
	}
	if bmp.Channels != 3 {
		t.Fatalf("Channels = %d, want 3", bmp.Channels)
	}
	if len(bmp.Data) != 32*32*3 {
		t.Fatalf("len(Data) = %d, want %d", len(bmp.Data), 32*32*3)
	}

	// Center of the cell is deep inside the square.
	px := bmp.Pixel(16, 16)
	if m := median3(px[0], px[1], px[2]); m <= 128 {
		t.Errorf("center median = %d, want > 128", m)
	}

	// Cell corners are outside.
	for _, xy := range [][2]int{{0, 0}, {31, 0}, {0, 31}, {31, 31}} {
		px := bmp.Pixel(xy[0], xy[1])
		if m := median3(px[0], px[1], px[2]); m >= 128 {
			t.Errorf("corner (%d,%d) median = %d, want < 128", xy[0], xy[1], m)
		}
	}
}

func TestRasterizeFourChannels(t *testing.T) {
	bmp, _ := rasterizeSquare(t, 4)

	if bmp.Channels != 4 {
		t.Fatalf("Channels = %d, want 4", bmp.Channels)
	}
	if len(bmp.Data) != 32*32*4 {
		t.Fatalf("len(Data) = %d, want %d", len(bmp.Data), 32*32*4)
	}

	// The alpha channel carries the plain signed distance: inside high,
	// outside low.
	if a := bmp.Pixel(16, 16)[3]; a <= 128 {
		t.Errorf("center alpha = %d, want > 128", a)
	}
	if a := bmp.Pixel(0, 0)[3]; a >= 128 {
		t.Errorf("corner alpha = %d, want < 128", a)
	}

	// Any other channel count falls back to 3.
	bmp, _ = rasterizeSquare(t, 7)
	if bmp.Channels != 3 {
		t.Errorf("Channels = %d, want fallback to 3", bmp.Channels)
	}
}

func TestRasterizeSignMatchesWinding(t *testing.T) {
	shape := buildSquare(t)
	AssignMasks(shape, math.Pi/3)

	frame, err := FrameShape(shape.Bounds, 32, 32, 4)
	if err != nil {
		t.Fatalf("FrameShape error: %v", err)
	}
	bmp := Rasterize(shape, frame, 3)

	for y := 0; y < bmp.Height; y += 3 {
		py := float64(bmp.Height) - (float64(y) + 0.5)
		for x := 0; x < bmp.Width; x += 3 {
			p := frame.Unproject(Point{X: float64(x) + 0.5, Y: py})

			// Skip pixels hugging the outline where the median sits
			// at the midpoint.
			near := false
			for _, c := range shape.Contours {
				for i := range c.Edges {
					d, _ := c.Edges[i].Distance(p)
					if d.Distance*frame.Scale < 1 {
						near = true
					}
				}
			}
			if near {
				continue
			}

			px := bmp.Pixel(x, y)
			m := median3(px[0], px[1], px[2])
			inside := shape.WindingAt(p) != 0
			if inside && m <= 128 {
				t.Errorf("pixel (%d,%d): median %d but winding says inside", x, y, m)
			}
			if !inside && m >= 128 {
				t.Errorf("pixel (%d,%d): median %d but winding says outside", x, y, m)
			}
		}
	}
}

func TestRasterizeDeterministic(t *testing.T) {
	a, _ := rasterizeSquare(t, 3)
	b, _ := rasterizeSquare(t, 3)

	if !bytes.Equal(a.Data, b.Data) {
		t.Error("two rasterizations of the same shape differ")
	}
}

func TestRasterizeWithHole(t *testing.T) {
	b := NewShapeBuilder()
	b.MoveTo(Point{X: 0, Y: 0})
	b.LineTo(Point{X: 20, Y: 0})
	b.LineTo(Point{X: 20, Y: 20})
	b.LineTo(Point{X: 0, Y: 20})
	b.Close()
	b.MoveTo(Point{X: 6, Y: 6})
	b.LineTo(Point{X: 6, Y: 14})
	b.LineTo(Point{X: 14, Y: 14})
	b.LineTo(Point{X: 14, Y: 6})
	b.Close()
	shape := b.Shape()
	AssignMasks(shape, math.Pi/3)

	frame, err := FrameShape(shape.Bounds, 32, 32, 4)
	if err != nil {
		t.Fatalf("FrameShape error: %v", err)
	}
	bmp := Rasterize(shape, frame, 3)

	// Project returns y-up pixel coordinates; rows count from the top.
	pixelAt := func(p Point) []byte {
		px := frame.Project(p)
		return bmp.Pixel(int(px.X), bmp.Height-1-int(px.Y))
	}

	// The hole center reads as outside.
	px := pixelAt(Point{X: 10, Y: 10})
	if m := median3(px[0], px[1], px[2]); m >= 128 {
		t.Errorf("hole median = %d, want < 128", m)
	}

	// A point on the ring reads as inside.
	px = pixelAt(Point{X: 3, Y: 10})
	if m := median3(px[0], px[1], px[2]); m <= 128 {
		t.Errorf("ring median = %d, want > 128", m)
	}
}
