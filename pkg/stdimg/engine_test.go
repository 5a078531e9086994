package stdimg

import (
	"image"
	"image/color"
	"testing"
)

func checkerboardNRGBA(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if (x+y)%2 == 0 {
				c = color.NRGBA{A: 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestApplyCommandStdlibNilImage(t *testing.T) {
	if _, err := ApplyCommandStdlib(nil, "trim", nil); err == nil {
		t.Fatal("expected an error for a nil image")
	}
}

func TestApplyCommandStdlibUnknownCommand(t *testing.T) {
	img := checkerboardNRGBA(4, 4)
	if _, err := ApplyCommandStdlib(img, "bogus", nil); err == nil {
		t.Fatal("expected an error for an unknown command")
	}
}

func TestApplyCommandStdlibThreshold(t *testing.T) {
	img := checkerboardNRGBA(8, 8)
	out, err := ApplyCommandStdlib(img, "threshold", []string{"3", "3", "0"})
	if err != nil {
		t.Fatal(err)
	}
	nrgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", out)
	}
	if nrgba.Bounds() != img.Bounds() {
		t.Fatal("threshold should preserve image bounds")
	}
}

func TestApplyCommandStdlibPassthroughCommands(t *testing.T) {
	img := checkerboardNRGBA(4, 4)
	for _, name := range []string{"autoorient", "identify", "strip", "trace"} {
		out, err := ApplyCommandStdlib(img, name, nil)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if out != image.Image(img) {
			t.Fatalf("%s: expected passthrough of the same image", name)
		}
	}
}

func TestToBitmapBufferDarkPixelsAreForeground(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{A: 255})                     // black -> foreground
	img.Set(1, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}) // white -> background
	img.Set(0, 1, color.NRGBA{A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	buf, w, h := ToBitmapBuffer(img)
	if w != 2 || h != 2 {
		t.Fatalf("expected 2x2, got %dx%d", w, h)
	}
	if buf[0] == 0 || buf[1] != 0 || buf[2] == 0 || buf[3] != 0 {
		t.Fatalf("unexpected buffer %v", buf)
	}
}

func TestApplyCommandStdlibSharpen(t *testing.T) {
	img := checkerboardNRGBA(8, 8)
	out, err := ApplyCommandStdlib(img, "sharpen", []string{"1", "1.5"})
	if err != nil {
		t.Fatal(err)
	}
	nrgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", out)
	}
	if nrgba.Bounds() != img.Bounds() {
		t.Fatal("sharpen should preserve image bounds")
	}
}

func TestApplyCommandStdlibEdgeDetect(t *testing.T) {
	img := checkerboardNRGBA(8, 8)
	out, err := ApplyCommandStdlib(img, "edgedetect", []string{"0", "1", "40"})
	if err != nil {
		t.Fatal(err)
	}
	nrgba, ok := out.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", out)
	}
	if nrgba.Bounds() != img.Bounds() {
		t.Fatal("edgedetect should preserve image bounds")
	}
	// binary output: every channel must be 0 or 255
	for _, v := range nrgba.Pix {
		if v != 0 && v != 255 {
			t.Fatalf("expected binary edge output, got byte %d", v)
		}
	}
}

func TestToBitmapBufferFromEdgesBrightPixelsAreForeground(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 255}) // bright edge -> foreground
	img.Set(1, 0, color.NRGBA{A: 255})                         // dark, not an edge -> background
	img.Set(0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{A: 255})

	buf, w, h := ToBitmapBufferFromEdges(img)
	if w != 2 || h != 2 {
		t.Fatalf("expected 2x2, got %dx%d", w, h)
	}
	if buf[0] == 0 || buf[1] != 0 || buf[2] == 0 || buf[3] != 0 {
		t.Fatalf("unexpected buffer %v", buf)
	}
}

func TestPadBorderAddsBackgroundFrame(t *testing.T) {
	buf := []byte{1, 1, 1, 1}
	out, nw, nh := PadBorder(buf, 2, 2, 1)
	if nw != 4 || nh != 4 {
		t.Fatalf("expected 4x4, got %dx%d", nw, nh)
	}
	for x := 0; x < nw; x++ {
		if out[x] != 0 || out[(nh-1)*nw+x] != 0 {
			t.Fatal("expected top/bottom border rows to stay background")
		}
	}
	if out[1*nw+1] != 1 || out[1*nw+2] != 1 || out[2*nw+1] != 1 || out[2*nw+2] != 1 {
		t.Fatal("expected the original 2x2 block to survive padding")
	}
}
