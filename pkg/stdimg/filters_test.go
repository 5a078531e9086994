package stdimg

import (
	"image"
	"image/color"
	"testing"
)

func TestUnsharpMaskPreservesBounds(t *testing.T) {
	src := makeSolidNRGBA(6, 6, color.NRGBA{R: 120, G: 120, B: 120, A: 255})
	out := UnsharpMask(src, 0, 1.0, 1.0, 0.0)
	if out == nil {
		t.Fatal("output is nil")
	}
	if out.Bounds() != src.Bounds() {
		t.Fatal("unsharp mask should preserve bounds")
	}
}

func TestUnsharpMaskBelowThresholdCopiesOriginal(t *testing.T) {
	src := makeSolidNRGBA(4, 4, color.NRGBA{R: 100, G: 100, B: 100, A: 255})
	out := UnsharpMask(src, 0, 1.0, 2.0, 255.0)
	for i := 0; i < len(out.Pix); i += 4 {
		if out.Pix[i+0] != 100 || out.Pix[i+1] != 100 || out.Pix[i+2] != 100 {
			t.Fatalf("expected flat image below threshold to pass through unchanged, got %v", out.Pix[i:i+4])
		}
	}
}

func TestSharpenWrapsUnsharpMask(t *testing.T) {
	pat := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			i := pat.PixOffset(x, y)
			pat.Pix[i+0] = 255
			pat.Pix[i+1] = 255
			pat.Pix[i+2] = 255
			pat.Pix[i+3] = 255
		}
	}
	for y := 0; y < 5; y++ {
		i := pat.PixOffset(2, y)
		pat.Pix[i+0] = 0
		pat.Pix[i+1] = 0
		pat.Pix[i+2] = 0
	}
	out := Sharpen(pat, 0, 1.0)
	if out == nil {
		t.Fatal("output is nil")
	}
	if out.Bounds() != pat.Bounds() {
		t.Fatal("sharpen should preserve bounds")
	}
}
