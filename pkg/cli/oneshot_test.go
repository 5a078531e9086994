package cli

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func writeTestPNG(t *testing.T, path string, w, h int, fg func(x, y int) bool) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			if fg(x, y) {
				c = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create temp png: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
}

func TestRunOneShotTracesAStraightLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "line.png")
	writeTestPNG(t, path, 20, 20, func(x, y int) bool {
		return y == 10
	})

	if err := RunOneShot(path, OneShotOptions{}); err != nil {
		t.Fatalf("RunOneShot: %v", err)
	}
}

func TestRunOneShotMissingFile(t *testing.T) {
	if err := RunOneShot("/no/such/file.png", OneShotOptions{}); err == nil {
		t.Fatal("expected an error for a missing input file")
	}
}
