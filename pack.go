package msdfatlas

// maxAtlasSize bounds the atlas texture dimensions. 4096 is a safe
// upload size on every backend the texture targets.
const maxAtlasSize = 4096

// shelfPacker implements shelf-based rectangle packing.
//
// Rectangles are organized in horizontal shelves. Each shelf has a
// fixed height (the tallest item placed so far); items go left to
// right until a shelf runs out of width, then a new shelf opens below.
// With uniform cells this degenerates to a grid, but the packer admits
// per-glyph cell sizes without changes.
type shelfPacker struct {
	width   int
	height  int
	padding int
	shelves []shelf

	usedArea int
}

// shelf is one horizontal strip of the atlas.
type shelf struct {
	y      int // top of the shelf
	height int // tallest item so far
	x      int // next free slot
}

// newShelfPacker creates a packer for the given atlas dimensions.
func newShelfPacker(width, height, padding int) *shelfPacker {
	return &shelfPacker{
		width:   width,
		height:  height,
		padding: padding,
		shelves: make([]shelf, 0, 16),
	}
}

// allocate finds space for a w x h rectangle. Returns the position and
// true, or -1, -1, false when the atlas is full.
func (p *shelfPacker) allocate(w, h int) (x, y int, ok bool) {
	paddedW := w + p.padding
	paddedH := h + p.padding

	for i := range p.shelves {
		s := &p.shelves[i]

		if s.x+paddedW > p.width {
			continue
		}

		if h > s.height {
			// Taller than the shelf. The last shelf may still grow
			// downward if there is room below it.
			if i == len(p.shelves)-1 && s.y+paddedH <= p.height {
				s.height = h
				x, y = s.x, s.y
				s.x += paddedW
				p.usedArea += w * h
				return x, y, true
			}
			continue
		}

		x, y = s.x, s.y
		s.x += paddedW
		p.usedArea += w * h
		return x, y, true
	}

	// Open a new shelf below the last one.
	newY := 0
	if len(p.shelves) > 0 {
		last := p.shelves[len(p.shelves)-1]
		newY = last.y + last.height + p.padding
	}
	if newY+paddedH > p.height {
		return -1, -1, false
	}

	p.shelves = append(p.shelves, shelf{y: newY, height: h, x: paddedW})
	p.usedArea += w * h
	return 0, newY, true
}

// utilization returns the fraction of atlas area covered by cells.
func (p *shelfPacker) utilization() float64 {
	if p.width <= 0 || p.height <= 0 {
		return 0
	}
	return float64(p.usedArea) / float64(p.width*p.height)
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// planAtlasSize chooses power-of-two atlas dimensions holding count
// uniform cells of the given size, keeping the layout roughly square.
func planAtlasSize(count, cellSize, padding int) (width, height int, err error) {
	step := cellSize + padding
	if count <= 0 {
		side := nextPowerOfTwo(step)
		return side, side, nil
	}

	cols := 1
	for cols*cols < count {
		cols++
	}

	width = nextPowerOfTwo(cols * step)
	if width > maxAtlasSize {
		width = maxAtlasSize
	}

	colsFit := width / step
	if colsFit <= 0 {
		return 0, 0, ErrAtlasOverflow
	}

	rows := (count + colsFit - 1) / colsFit
	height = nextPowerOfTwo(rows * step)
	if height > maxAtlasSize {
		return 0, 0, ErrAtlasOverflow
	}

	return width, height, nil
}
