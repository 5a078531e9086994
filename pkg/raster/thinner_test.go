package raster

import "testing"

func solidSquare(w, h int) []byte {
	buf := make([]byte, w*h)
	for i := range buf {
		buf[i] = 1
	}
	return buf
}

func TestThinIdempotent(t *testing.T) {
	buf := solidSquare(12, 12)
	b, err := NewBitmap(buf, 12, 12)
	if err != nil {
		t.Fatal(err)
	}
	Thin(b)
	once := append([]byte(nil), b.cell...)
	Thin(b)
	for i, c := range b.cell {
		if c != once[i] {
			t.Fatalf("thin is not idempotent at cell %d: %d != %d", i, c, once[i])
		}
	}
}

func TestThinForegroundNeverIncreases(t *testing.T) {
	buf := solidSquare(16, 16)
	b, _ := NewBitmap(buf, 16, 16)
	prev := b.ForegroundCount()
	for i := 0; i < 40; i++ {
		phase := i % 2
		subiteration(b, phase)
		cur := b.ForegroundCount()
		if cur > prev {
			t.Fatalf("foreground count increased from %d to %d", prev, cur)
		}
		prev = cur
	}
}

func TestThinPreservesSingleComponentConnectivity(t *testing.T) {
	// A filled disk-like blob is one 8-connected component; after thinning it
	// should remain nonempty, shrink, and still be one 8-connected component.
	const n = 20
	buf := make([]byte, n*n)
	cx, cy, r := 10, 10, 7
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dx, dy := x-cx, y-cy
			if dx*dx+dy*dy <= r*r {
				buf[y*n+x] = 1
			}
		}
	}
	b, err := NewBitmap(buf, n, n)
	if err != nil {
		t.Fatal(err)
	}
	before := b.ForegroundCount()
	Thin(b)
	after := b.ForegroundCount()
	if after == 0 {
		t.Fatal("thinning erased the entire blob")
	}
	if after >= before {
		t.Fatalf("expected thinning to reduce foreground count: before=%d after=%d", before, after)
	}
	// Every remaining foreground pixel must be reachable from the first one
	// through 8-connected foreground steps.
	start := -1
	for i := 0; i < n*n && start < 0; i++ {
		if b.Fg(i%n, i/n) {
			start = i
		}
	}
	seen := make([]bool, n*n)
	seen[start] = true
	stack := []int{start}
	reached := 0
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached++
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				x, y := i%n+dx, i/n+dy
				if b.Fg(x, y) && !seen[y*n+x] {
					seen[y*n+x] = true
					stack = append(stack, y*n+x)
				}
			}
		}
	}
	if reached != after {
		t.Fatalf("thinned blob is not one 8-connected component: reached %d of %d pixels", reached, after)
	}
}

func TestThinLeavesBorderUntouched(t *testing.T) {
	const n = 10
	buf := solidSquare(n, n)
	// Border pixels are background per spec's border-is-background policy
	// (the bitmap still owns those bytes; Thin must not write them).
	for x := 0; x < n; x++ {
		buf[0*n+x] = 0
		buf[(n-1)*n+x] = 0
	}
	for y := 0; y < n; y++ {
		buf[y*n+0] = 0
		buf[y*n+(n-1)] = 0
	}
	b, _ := NewBitmap(buf, n, n)
	Thin(b)
	for x := 0; x < n; x++ {
		if b.Fg(x, 0) || b.Fg(x, n-1) {
			t.Fatal("border row became foreground")
		}
	}
	for y := 0; y < n; y++ {
		if b.Fg(0, y) || b.Fg(n-1, y) {
			t.Fatal("border column became foreground")
		}
	}
}
