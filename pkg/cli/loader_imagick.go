//go:build imagick

package cli

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	imagick "gopkg.in/gographics/imagick.v3/imagick"
)

// LoadImageExtended loads formats outside the standard library's PNG/JPEG/GIF
// decoders (BMP and TIFF included) via ImageMagick, for deployments built with the
// imagick tag. It rasterizes through MagickWand into an image.NRGBA so the
// rest of the pipeline never touches cgo types directly.
func LoadImageExtended(path string) (image.Image, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif":
		return LoadImage(path)
	}

	if _, err := os.Stat(path); err != nil {
		return nil, "", err
	}

	imagick.Initialize()
	defer imagick.Terminate()

	mw := imagick.NewMagickWand()
	defer mw.Destroy()

	if err := mw.ReadImage(path); err != nil {
		return nil, "", fmt.Errorf("imagick read %s: %w", path, err)
	}

	w := int(mw.GetImageWidth())
	h := int(mw.GetImageHeight())
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	pixels, err := mw.ExportImagePixels(0, 0, uint(w), uint(h), "RGBA", imagick.PIXEL_CHAR)
	if err != nil {
		return nil, "", fmt.Errorf("imagick export pixels: %w", err)
	}
	raw, ok := pixels.([]uint8)
	if !ok || len(raw) < w*h*4 {
		return nil, "", fmt.Errorf("imagick returned unexpected pixel buffer")
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := (y*w + x) * 4
			img.SetNRGBA(x, y, color.NRGBA{R: raw[i], G: raw[i+1], B: raw[i+2], A: raw[i+3]})
		}
	}

	format := strings.ToLower(mw.GetImageFormat())
	return img, format, nil
}
