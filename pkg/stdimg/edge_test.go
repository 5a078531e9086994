package stdimg

import (
	"image"
	"testing"
)

func verticalLineNRGBA(n int) *image.NRGBA {
	pat := image.NewNRGBA(image.Rect(0, 0, n, n))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			i := pat.PixOffset(x, y)
			pat.Pix[i+0] = 255
			pat.Pix[i+1] = 255
			pat.Pix[i+2] = 255
			pat.Pix[i+3] = 255
		}
	}
	mid := n / 2
	for y := 0; y < n; y++ {
		i := pat.PixOffset(mid, y)
		pat.Pix[i+0] = 0
		pat.Pix[i+1] = 0
		pat.Pix[i+2] = 0
	}
	return pat
}

func TestEdgeDetectsVerticalLine(t *testing.T) {
	pat := verticalLineNRGBA(5)
	out := Edge(pat, 1.0)
	if out == nil {
		t.Fatal("output is nil")
	}
	// columns adjacent to the line should register some edge magnitude
	leftIdx := out.PixOffset(1, 2)
	rightIdx := out.PixOffset(3, 2)
	if out.Pix[leftIdx+0] == 0 && out.Pix[rightIdx+0] == 0 {
		t.Fatal("edge did not detect expected line (both adjacent columns are zero)")
	}
}

func TestEdgeExBinaryOutputIsTwoValued(t *testing.T) {
	pat := verticalLineNRGBA(9)
	out := EdgeEx(pat, 0, 1.0, 40, true)
	for _, v := range out.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("expected binary output, got byte %d", v)
		}
	}
}

func TestEdgeExNilInput(t *testing.T) {
	if EdgeEx(nil, 0, 1, 0, false) != nil {
		t.Fatal("expected nil output for nil input")
	}
}
