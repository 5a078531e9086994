//go:build !imagick

package cli

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// LoadImageExtended extends LoadImage with BMP/TIFF decoding via
// golang.org/x/image, for inputs the standard library's image.Decode
// (PNG/JPEG/GIF only) cannot read. It preserves the EXIF auto-orient
// behavior LoadImage applies to JPEGs.
func LoadImageExtended(path string) (image.Image, string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".bmp":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		img, err := bmp.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, "", fmt.Errorf("decode bmp: %w", err)
		}
		return img, "bmp", nil
	case ".tif", ".tiff":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, "", err
		}
		img, err := tiff.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, "", fmt.Errorf("decode tiff: %w", err)
		}
		return img, "tiff", nil
	default:
		return LoadImage(path)
	}
}
