package raster

import "testing"

func assertLocalityAndDensity(t *testing.T, set *PolylineSet, thinnedBuf []byte, w, h int) {
	t.Helper()
	for _, p := range set.All() {
		for _, pt := range p.Points() {
			if pt.X < 0 || pt.X >= w || pt.Y < 0 || pt.Y >= h {
				t.Fatalf("point %v outside [0,%d)x[0,%d)", pt, w, h)
			}
			if thinnedBuf[pt.Y*w+pt.X] == 0 {
				t.Fatalf("point %v is not foreground in the thinned bitmap", pt)
			}
		}
	}
}

func TestTraceInvalidDimensions(t *testing.T) {
	buf := make([]byte, 4)
	if _, err := Trace(buf, 2, 2, DefaultConfig()); err != ErrInvalidDimensions {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}
}

func TestTraceInvalidConfig(t *testing.T) {
	buf := make([]byte, 100)
	if _, err := Trace(buf, 10, 10, Config{ChunkSize: 5, MaxIter: 10}); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for small chunk_size, got %v", err)
	}
	if _, err := Trace(buf, 10, 10, Config{ChunkSize: 6, MaxIter: 0}); err != ErrInvalidConfig {
		t.Fatalf("expected ErrInvalidConfig for max_iter<1, got %v", err)
	}
}

func TestTraceAllBackgroundIsEmpty(t *testing.T) {
	buf := make([]byte, 64*64)
	set, err := Trace(buf, 64, 64, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() != 0 {
		t.Fatalf("expected no polylines, got %d", set.Len())
	}
}

func TestTraceHorizontalLine(t *testing.T) {
	const n = 64
	buf := make([]byte, n*n)
	for x := 1; x < n-1; x++ {
		buf[32*n+x] = 1
	}
	tr := NewTracer(DefaultConfig())
	set, err := tr.Trace(buf, n, n)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() == 0 {
		t.Fatal("expected at least one polyline for a horizontal stroke")
	}
	assertLocalityAndDensity(t, set, buf, n, n)
	for _, p := range set.All() {
		for _, pt := range p.Points() {
			if pt.Y < 31 || pt.Y > 33 {
				t.Fatalf("point %v has y outside [31,33]", pt)
			}
		}
	}
}

func TestTraceVerticalStripes(t *testing.T) {
	const n = 64
	buf := make([]byte, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x/10)%2 == 0 {
				buf[y*n+x] = 1
			}
		}
	}
	tr := NewTracer(DefaultConfig())
	set, err := tr.Trace(buf, n, n)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() == 0 {
		t.Fatal("expected polylines for vertical stripe pattern")
	}
}

func TestTracePlusSign(t *testing.T) {
	const n = 21
	buf := make([]byte, n*n)
	for x := 0; x < n; x++ {
		buf[10*n+x] = 1
	}
	for y := 0; y < n; y++ {
		buf[y*n+10] = 1
	}
	tr := NewTracer(DefaultConfig())
	set, err := tr.Trace(buf, n, n)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() == 0 || set.Len() > 2 {
		t.Fatalf("expected one or two polylines for a plus sign, got %d", set.Len())
	}
}

func TestTraceDiagonal(t *testing.T) {
	const n = 32
	buf := make([]byte, n*n)
	for i := 0; i < n; i++ {
		buf[i*n+i] = 1
	}
	tr := NewTracer(DefaultConfig())
	set, err := tr.Trace(buf, n, n)
	if err != nil {
		t.Fatal(err)
	}
	if set.Len() == 0 {
		t.Fatal("expected at least one polyline for a diagonal stroke")
	}
	assertLocalityAndDensity(t, set, buf, n, n)
	for _, p := range set.All() {
		for _, pt := range p.Points() {
			if absInt(pt.X-pt.Y) > 1 {
				t.Fatalf("point %v deviates from the diagonal by more than 1", pt)
			}
		}
	}
}

func TestTraceDegenerateTinyInput(t *testing.T) {
	buf := make([]byte, 25)
	for i := range buf {
		buf[i] = 1
	}
	set, err := Trace(buf, 5, 5, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	_ = set // base-case fragmenting may or may not yield fragments; must not error
}

func TestTraceDeterministic(t *testing.T) {
	const n = 48
	base := make([]byte, n*n)
	for x := 1; x < n-1; x++ {
		base[20*n+x] = 1
	}
	for y := 1; y < n-1; y++ {
		base[y*n+20] = 1
	}

	buf1 := append([]byte(nil), base...)
	buf2 := append([]byte(nil), base...)

	set1, err := Trace(buf1, n, n, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	set2, err := Trace(buf2, n, n, DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if set1.Len() != set2.Len() {
		t.Fatalf("nondeterministic polyline count: %d vs %d", set1.Len(), set2.Len())
	}
	for i, p1 := range set1.All() {
		p2 := set2.All()[i]
		if p1.Len() != p2.Len() {
			t.Fatalf("polyline %d length differs: %d vs %d", i, p1.Len(), p2.Len())
		}
		for j, pt1 := range p1.Points() {
			if pt1 != p2.Points()[j] {
				t.Fatalf("polyline %d point %d differs: %v vs %v", i, j, pt1, p2.Points()[j])
			}
		}
	}
}

func TestTraceRectangleLogCoversForeground(t *testing.T) {
	const n = 40
	buf := make([]byte, n*n)
	for x := 1; x < n-1; x++ {
		buf[20*n+x] = 1
	}
	cfg := DefaultConfig()
	cfg.SaveRects = true
	tr := NewTracer(cfg)
	if _, err := tr.Trace(buf, n, n); err != nil {
		t.Fatal(err)
	}
	rects := tr.Rectangles()
	if len(rects) == 0 {
		t.Fatal("expected a non-empty rectangle log")
	}
	for y := 1; y < n-1; y++ {
		for x := 1; x < n-1; x++ {
			if buf[y*n+x] == 0 {
				continue
			}
			covered := false
			for _, r := range rects {
				if x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H {
					covered = true
					break
				}
			}
			if !covered {
				t.Fatalf("foreground pixel (%d,%d) not covered by any logged rectangle", x, y)
			}
		}
	}
}
