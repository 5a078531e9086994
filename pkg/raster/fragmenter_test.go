package raster

import "testing"

func TestFragmentEmptyTileReturnsEmptySet(t *testing.T) {
	buf := make([]byte, 100)
	b, _ := NewBitmap(buf, 10, 10)
	set := fragment(b, Tile{X: 0, Y: 0, W: 10, H: 10})
	if set.Len() != 0 {
		t.Fatalf("expected empty set, got %d polylines", set.Len())
	}
}

func TestFragmentStraightCrossingMergesTwoStubs(t *testing.T) {
	// A single foreground column crossing a 10x10 tile top to bottom enters
	// and exits the border exactly twice, producing one stitched polyline
	// connecting the two border crossings.
	const n = 10
	buf := make([]byte, n*n)
	for y := 0; y < n; y++ {
		buf[y*n+5] = 1
	}
	b, _ := NewBitmap(buf, n, n)
	set := fragment(b, Tile{X: 0, Y: 0, W: n, H: n})
	if set.Len() != 1 {
		t.Fatalf("expected 1 polyline, got %d", set.Len())
	}
	p := set.All()[0]
	if p.Len() != 2 {
		t.Fatalf("expected a 2-point polyline, got %d points", p.Len())
	}
}

func TestFragmentJunctionReanchorsToInteriorPixel(t *testing.T) {
	// A plus shape centered in the tile crosses the border on all four sides,
	// producing 4 fragments that should all be re-anchored to the same
	// interior junction pixel instead of the tile's geometric center.
	const n = 11
	buf := make([]byte, n*n)
	cx, cy := 5, 5
	for x := 0; x < n; x++ {
		buf[cy*n+x] = 1
	}
	for y := 0; y < n; y++ {
		buf[y*n+cx] = 1
	}
	b, _ := NewBitmap(buf, n, n)
	set := fragment(b, Tile{X: 0, Y: 0, W: n, H: n})
	if set.Len() != 4 {
		t.Fatalf("expected 4 fragments for a plus shape, got %d", set.Len())
	}
	junction := set.All()[0].Tail()
	for _, p := range set.All()[1:] {
		if p.Tail() != junction {
			t.Fatalf("expected every fragment to share the junction endpoint %v, got %v", junction, p.Tail())
		}
	}
	if junction.X < 1 || junction.X > n-2 || junction.Y < 1 || junction.Y > n-2 {
		t.Fatalf("junction %v is not strictly interior", junction)
	}
}

func TestBorderWalkVisitCount(t *testing.T) {
	tile := Tile{X: 2, Y: 3, W: 6, H: 5}
	pts := borderWalk(tile)
	want := 2*tile.W + 2*tile.H - 4
	if len(pts) != want {
		t.Fatalf("expected %d border cells, got %d", want, len(pts))
	}
	seen := make(map[Point]bool, len(pts))
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("border cell %v visited more than once", p)
		}
		seen[p] = true
	}
}
