package raster

// trace returns polylines for the thinned bitmap restricted to tile t,
// recursing via seam selection until a tile is small enough to hand to
// fragment, or no admissible seam exists. It also drives the rectangle log
// when enabled.
func (tr *Tracer) trace(t Tile, depth int) *PolylineSet {
	if tr.cfg.SaveRects {
		tr.rects = append(tr.rects, Rectangle{X: t.X, Y: t.Y, W: t.W, H: t.H})
	}

	if depth >= tr.cfg.MaxIter {
		return NewPolylineSet()
	}
	if t.W <= tr.cfg.ChunkSize && t.H <= tr.cfg.ChunkSize {
		return fragment(tr.bitmap, t)
	}

	seam, ok := selectSeam(tr.bitmap, t, tr.cfg.ChunkSize)
	if !ok {
		return fragment(tr.bitmap, t)
	}

	left, right := splitTile(t, seam)
	leftSet := tr.traceOrEmpty(left, depth)
	rightSet := tr.traceOrEmpty(right, depth)
	return stitch(leftSet, rightSet, seam)
}

func (tr *Tracer) traceOrEmpty(t Tile, parentDepth int) *PolylineSet {
	if tr.bitmap.RectForegroundCount(t.X, t.Y, t.W, t.H) == 0 {
		return NewPolylineSet()
	}
	return tr.trace(t, parentDepth+1)
}

// selectSeam picks the single best horizontal or vertical seam across t, or
// reports false if neither axis offers an admissible candidate.
func selectSeam(b *Bitmap, t Tile, chunkSize int) (Seam, bool) {
	hCoord, hCost, hFound := bestHorizontalSeam(b, t, chunkSize)
	vCoord, vCost, vFound := bestVerticalSeam(b, t, chunkSize)

	switch {
	case !hFound && !vFound:
		return Seam{}, false
	case hFound && !vFound:
		return Seam{Coord: hCoord, Dir: axisHorizontal}, true
	case !hFound && vFound:
		return Seam{Coord: vCoord, Dir: axisVertical}, true
	case hCost < vCost:
		return Seam{Coord: hCoord, Dir: axisHorizontal}, true
	default:
		return Seam{Coord: vCoord, Dir: axisVertical}, true
	}
}

func bestHorizontalSeam(b *Bitmap, t Tile, chunkSize int) (coord, cost int, found bool) {
	if t.H <= chunkSize {
		return 0, 0, false
	}
	centerY := t.Y + t.H/2
	bestDist := 0
	for s := t.Y + 3; s < t.Y+t.H-3; s++ {
		left, right := t.X, t.X+t.W-1
		if !(bgAt(b, left, s-1) && bgAt(b, left, s) && bgAt(b, right, s-1) && bgAt(b, right, s)) {
			continue
		}
		c := rowCount(b, t, s-1) + rowCount(b, t, s)
		d := absInt(s - centerY)
		if !found || c < cost || (c == cost && d < bestDist) {
			found, coord, cost, bestDist = true, s, c, d
		}
	}
	return coord, cost, found
}

func bestVerticalSeam(b *Bitmap, t Tile, chunkSize int) (coord, cost int, found bool) {
	if t.W <= chunkSize {
		return 0, 0, false
	}
	centerX := t.X + t.W/2
	bestDist := 0
	for s := t.X + 3; s < t.X+t.W-3; s++ {
		top, bottom := t.Y, t.Y+t.H-1
		if !(bgAt(b, s-1, top) && bgAt(b, s, top) && bgAt(b, s-1, bottom) && bgAt(b, s, bottom)) {
			continue
		}
		c := colCount(b, t, s-1) + colCount(b, t, s)
		d := absInt(s - centerX)
		if !found || c < cost || (c == cost && d < bestDist) {
			found, coord, cost, bestDist = true, s, c, d
		}
	}
	return coord, cost, found
}

func bgAt(b *Bitmap, x, y int) bool { return !b.Fg(x, y) }

func rowCount(b *Bitmap, t Tile, row int) int {
	n := 0
	for x := t.X; x < t.X+t.W; x++ {
		if b.Fg(x, row) {
			n++
		}
	}
	return n
}

func colCount(b *Bitmap, t Tile, col int) int {
	n := 0
	for y := t.Y; y < t.Y+t.H; y++ {
		if b.Fg(col, y) {
			n++
		}
	}
	return n
}

// splitTile divides t into two child tiles meeting at seam.
func splitTile(t Tile, seam Seam) (Tile, Tile) {
	if seam.Dir == axisHorizontal {
		top := Tile{X: t.X, Y: t.Y, W: t.W, H: seam.Coord - t.Y}
		bottom := Tile{X: t.X, Y: seam.Coord, W: t.W, H: t.Y + t.H - seam.Coord}
		return top, bottom
	}
	leftT := Tile{X: t.X, Y: t.Y, W: seam.Coord - t.X, H: t.H}
	rightT := Tile{X: seam.Coord, Y: t.Y, W: t.X + t.W - seam.Coord, H: t.H}
	return leftT, rightT
}
