package stdimg

import "image"

// ToBitmapBuffer converts a bilevel NRGBA image, as produced by
// AdaptiveThreshold, into the flat row-major byte buffer pkg/raster expects:
// a byte is foreground (1) when the pixel's luminance is below the
// midpoint, i.e. a dark stroke on a light background.
func ToBitmapBuffer(src *image.NRGBA) (buf []byte, w, h int) {
	if src == nil {
		return nil, 0, 0
	}
	b := src.Bounds()
	w, h = b.Dx(), b.Dy()
	buf = make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x+b.Min.X, y+b.Min.Y)
			lum := 0.2126*float64(src.Pix[i+0]) + 0.7152*float64(src.Pix[i+1]) + 0.0722*float64(src.Pix[i+2])
			if lum < 128 {
				buf[y*w+x] = 1
			}
		}
	}
	return buf, w, h
}

// ToBitmapBufferFromEdges converts a bilevel NRGBA image produced by
// EdgeEx(..., binary=true) into the flat row-major byte buffer pkg/raster
// expects. It uses the opposite polarity from ToBitmapBuffer: EdgeEx marks
// a detected stroke edge as bright (255), not dark ink on a light
// background, so a byte is foreground here when luminance is at or above
// the midpoint.
func ToBitmapBufferFromEdges(src *image.NRGBA) (buf []byte, w, h int) {
	if src == nil {
		return nil, 0, 0
	}
	b := src.Bounds()
	w, h = b.Dx(), b.Dy()
	buf = make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := src.PixOffset(x+b.Min.X, y+b.Min.Y)
			lum := 0.2126*float64(src.Pix[i+0]) + 0.7152*float64(src.Pix[i+1]) + 0.0722*float64(src.Pix[i+2])
			if lum >= 128 {
				buf[y*w+x] = 1
			}
		}
	}
	return buf, w, h
}

// PadBorder surrounds buf (a w x h row-major bitmap) with a pad-pixel
// background frame, returning the enlarged buffer and its new dimensions.
// pkg/raster's Thinner assumes its 1-pixel border is background and leaves
// it undefined if a stroke touches it; a threshold pass run on a full-bleed
// scan can easily produce foreground at x=0 or y=0, so callers pad before
// tracing rather than rely on the source image having margin.
func PadBorder(buf []byte, w, h, pad int) (out []byte, nw, nh int) {
	if pad < 1 {
		pad = 1
	}
	nw, nh = w+2*pad, h+2*pad
	out = make([]byte, nw*nh)
	for y := 0; y < h; y++ {
		srcRow := buf[y*w : (y+1)*w]
		dstOff := (y+pad)*nw + pad
		copy(out[dstOff:dstOff+w], srcRow)
	}
	return out, nw, nh
}
