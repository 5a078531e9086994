package stdimg

import (
	"fmt"
	"image"
	"strconv"
)

// ApplyCommandStdlib dispatches a named command from Commands against cur
// using only the stdlib-oriented helpers in this package, returning the
// transformed image. "trace", "identify" and "strip" do not transform the
// pixel data themselves — pkg/cli drives their side effects (tracing,
// printing metadata, clearing cached metadata) around this call — so they
// pass cur through unchanged here. "autoorient" also passes cur through
// unchanged: EXIF orientation is applied when a JPEG file is loaded.
func ApplyCommandStdlib(cur image.Image, name string, args []string) (image.Image, error) {
	if cur == nil {
		return nil, fmt.Errorf("no image loaded")
	}
	switch name {
	case "trim":
		fuzz := argFloat(args, 0, 8)
		return Trim(ToNRGBA(cur), fuzz), nil
	case "resize":
		width := argInt(args, 0, 0)
		height := argInt(args, 1, 0)
		return AdaptiveResize(ToNRGBA(cur), width, height, 3.0), nil
	case "threshold":
		ww := argInt(args, 0, 15)
		wh := argInt(args, 1, 15)
		offset := argFloat(args, 2, 8)
		return AdaptiveThreshold(ToNRGBA(cur), ww, wh, offset), nil
	case "sharpen":
		sigma := argFloat(args, 0, 0)
		amount := argFloat(args, 1, 1)
		return AdaptiveSharpen(ToNRGBA(cur), 0, sigma, amount), nil
	case "edgedetect":
		blurSigma := argFloat(args, 0, 0)
		scale := argFloat(args, 1, 1)
		threshold := argFloat(args, 2, 40)
		return EdgeEx(ToNRGBA(cur), blurSigma, scale, threshold, true), nil
	case "autoorient", "identify", "strip", "trace":
		return cur, nil
	default:
		return nil, fmt.Errorf("unknown command: %s", name)
	}
}

// argInt and argFloat read a normalized argument, falling back to def when
// the slot is missing, empty, or malformed. NormalizeArgsFromStd already
// validated well-formed input before ApplyCommandStdlib is reached; these
// only guard against optional args the user left blank.
func argInt(args []string, i, def int) int {
	if i >= len(args) || args[i] == "" {
		return def
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return def
	}
	return v
}

func argFloat(args []string, i int, def float64) float64 {
	if i >= len(args) || args[i] == "" {
		return def
	}
	v, err := strconv.ParseFloat(args[i], 64)
	if err != nil {
		return def
	}
	return v
}
