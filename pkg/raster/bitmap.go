package raster

// Bitmap is a mutable W x H grid of small integers. Only bit 0 is
// semantically meaningful outside of an in-progress thinning pass: 1 means
// foreground, 0 means background. Bit 1 is reserved by the Thinner as a
// transient per-subiteration "marked for deletion" flag and is always clear
// once thin returns.
//
// The one-pixel border is assumed background and is read but never written
// by the Thinner.
type Bitmap struct {
	W, H int
	cell []byte
}

// NewBitmap wraps a flat row-major buffer of length w*h as a Bitmap: any
// nonzero byte becomes foreground (bit 0 set, bit 1 clear). The buffer is
// normalized and later thinned in place — exactly the mutate-in-place
// contract Trace exposes — so callers wanting to preserve the original bytes
// must copy buf themselves before calling NewBitmap or Trace.
func NewBitmap(buf []byte, w, h int) (*Bitmap, error) {
	if w < 3 || h < 3 {
		return nil, ErrInvalidDimensions
	}
	if buf == nil || len(buf) < w*h {
		return nil, ErrInvalidBuffer
	}
	cell := buf[:w*h]
	for i, b := range cell {
		if b != 0 {
			cell[i] = 1
		}
	}
	return &Bitmap{W: w, H: h, cell: cell}, nil
}

func (b *Bitmap) idx(x, y int) int { return y*b.W + x }

func (b *Bitmap) inBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Fg reports whether (x, y) is foreground (bit 0 set). Out-of-bounds reads
// are treated as background, matching the assumed-background border policy.
func (b *Bitmap) Fg(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.cell[b.idx(x, y)]&1 != 0
}

func (b *Bitmap) setFg(x, y int, v bool) {
	i := b.idx(x, y)
	if v {
		b.cell[i] |= 1
	} else {
		b.cell[i] &^= 1
	}
}

func (b *Bitmap) marked(x, y int) bool {
	return b.cell[b.idx(x, y)]&2 != 0
}

func (b *Bitmap) mark(x, y int) {
	b.cell[b.idx(x, y)] |= 2
}

func (b *Bitmap) clearMark(x, y int) {
	b.cell[b.idx(x, y)] &^= 2
}

// ForegroundCount returns the total number of foreground cells.
func (b *Bitmap) ForegroundCount() int {
	n := 0
	for _, c := range b.cell {
		if c&1 != 0 {
			n++
		}
	}
	return n
}

// RectForegroundCount counts foreground pixels inside [x, x+w) x [y, y+h).
func (b *Bitmap) RectForegroundCount(x, y, w, h int) int {
	n := 0
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			if b.Fg(i, j) {
				n++
			}
		}
	}
	return n
}

// neighbors8 returns p2..p9 of (x,y) in clockwise order starting from north,
// as foreground/background booleans, per spec.md 4.1.
func (b *Bitmap) neighbors8(x, y int) [8]bool {
	return [8]bool{
		b.Fg(x, y-1),   // p2 N
		b.Fg(x+1, y-1), // p3 NE
		b.Fg(x+1, y),   // p4 E
		b.Fg(x+1, y+1), // p5 SE
		b.Fg(x, y+1),   // p6 S
		b.Fg(x-1, y+1), // p7 SW
		b.Fg(x-1, y),   // p8 W
		b.Fg(x-1, y-1), // p9 NW
	}
}
