package raster

// fragment treats tile as small enough that no further partitioning is
// worthwhile and emits polylines approximating the skeleton inside it. It
// reads the thinned bitmap and never mutates it.
func fragment(b *Bitmap, t Tile) *PolylineSet {
	border := borderWalk(t)
	center := Point{X: t.X + t.W/2, Y: t.Y + t.H/2}

	var frags []*Polyline
	on := false
	var lastFg Point

	for _, p := range border {
		fg := b.Fg(p.X, p.Y)
		switch {
		case !on && fg:
			frags = append(frags, NewPolyline(p, center))
			on = true
		case on && !fg:
			last := frags[len(frags)-1]
			last.SetHead(midpoint(last.Head(), lastFg))
			on = false
		}
		if fg {
			lastFg = p
		}
	}

	switch len(frags) {
	case 0:
		return NewPolylineSet()
	case 1:
		return NewPolylineSet(frags[0])
	case 2:
		return NewPolylineSet(NewPolyline(frags[0].Head(), frags[1].Head()))
	default:
		if junction, ok := findJunction(b, t, center); ok {
			for _, f := range frags {
				pts := f.Points()
				pts[len(pts)-1] = junction
			}
		}
		return NewPolylineSet(frags...)
	}
}

// borderWalk visits the tile's 2w+2h-4 border cells exactly once, clockwise
// starting at the top-left corner: top edge L->R, right edge T->B, bottom
// edge R->L, left edge B->T.
func borderWalk(t Tile) []Point {
	pts := make([]Point, 0, 2*t.W+2*t.H-4)
	top, bottom := t.Y, t.Y+t.H-1
	left, right := t.X, t.X+t.W-1

	for x := left; x <= right; x++ {
		pts = append(pts, Point{X: x, Y: top})
	}
	for y := top + 1; y <= bottom; y++ {
		pts = append(pts, Point{X: right, Y: y})
	}
	for x := right - 1; x >= left; x-- {
		pts = append(pts, Point{X: x, Y: bottom})
	}
	for y := bottom - 1; y >= top+1; y-- {
		pts = append(pts, Point{X: left, Y: y})
	}
	return pts
}

// findJunction locates the interior pixel (strictly inside the tile,
// avoiding the 1-pixel inner border) whose 3x3 neighborhood sum is maximal,
// breaking ties by Manhattan distance to center (smaller wins). Reports
// false if no interior pixel has a positive sum.
func findJunction(b *Bitmap, t Tile, center Point) (Point, bool) {
	best := Point{}
	bestSum := 0
	bestDist := 0
	found := false

	for y := t.Y + 1; y <= t.Y+t.H-2; y++ {
		for x := t.X + 1; x <= t.X+t.W-2; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if b.Fg(x+dx, y+dy) {
						sum++
					}
				}
			}
			if sum <= 0 {
				continue
			}
			dist := manhattan(Point{X: x, Y: y}, center)
			if !found || sum > bestSum || (sum == bestSum && dist < bestDist) {
				found = true
				bestSum = sum
				bestDist = dist
				best = Point{X: x, Y: y}
			}
		}
	}
	return best, found
}
