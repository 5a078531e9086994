// Command skeletrace is an interactive raster-to-vector line tracer.
//
// Run with no flags to get the interactive terminal front-end
// (load/transform/trace/save a single image at a time). Pass -trace with an
// image path to run a one-shot, non-interactive pipeline suitable for
// scripting: load, optionally trim/resize, threshold, trace, print.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/quillpath/skeletrace/pkg/cli"
)

func main() {
	// Defaults fall back to a loaded .env file (SKELETRACE_CHUNK_SIZE,
	// SKELETRACE_MAX_ITER, SKELETRACE_THRESHOLD_WINDOW_W/H,
	// SKELETRACE_THRESHOLD_OFFSET) when set, per SPEC_FULL.md's ambient
	// config section; explicit flags on the command line still win.
	trace := flag.Bool("trace", false, "run a one-shot trace instead of the interactive shell")
	trim := flag.Float64("trim", cli.EnvFloatDefault("SKELETRACE_TRIM_FUZZ", 0), "trim fuzz percentage before tracing (0 disables)")
	resizeW := flag.Int("resize-width", 0, "resize width before tracing (0 disables)")
	resizeH := flag.Int("resize-height", 0, "resize height before tracing (0 disables)")
	thWW := flag.Int("threshold-window-w", cli.EnvIntDefault("SKELETRACE_THRESHOLD_WINDOW_W", 15), "adaptive threshold window width")
	thWH := flag.Int("threshold-window-h", cli.EnvIntDefault("SKELETRACE_THRESHOLD_WINDOW_H", 15), "adaptive threshold window height")
	thK := flag.Float64("threshold-offset", cli.EnvFloatDefault("SKELETRACE_THRESHOLD_OFFSET", 8), "adaptive threshold offset")
	autoOrient := flag.Bool("autoorient", false, "no effect: EXIF orientation is already applied when a JPEG is loaded")
	sharpen := flag.Bool("sharpen", false, "unsharp-mask the image before binarizing, for faint scans")
	sharpenSigma := flag.Float64("sharpen-sigma", 0, "sharpen blur sigma, 0 to auto-estimate")
	sharpenAmount := flag.Float64("sharpen-amount", 1, "sharpen strength multiplier")
	useEdge := flag.Bool("edge-detect", false, "binarize by Sobel edge magnitude instead of adaptive threshold")
	edgeSigma := flag.Float64("edge-blur-sigma", 0, "edge detector pre-blur sigma, 0 disables")
	edgeScale := flag.Float64("edge-scale", 1, "edge detector gradient magnitude multiplier")
	edgeThreshold := flag.Float64("edge-threshold", 40, "edge detector gradient magnitude floor, 0-255")
	chunkSize := flag.Int("chunk-size", cli.EnvIntDefault("SKELETRACE_CHUNK_SIZE", 10), "partitioner leaf tile size")
	maxIter := flag.Int("max-iter", cli.EnvIntDefault("SKELETRACE_MAX_ITER", 1<<20), "partitioner recursion depth cap")
	saveRects := flag.Bool("save-rects", false, "record visited tile rectangles")
	out := flag.String("out", "", "write the thresholded bitmap used for tracing to this path")
	flag.Parse()

	if !*trace {
		cli.RunCLI()
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: skeletrace -trace <image-path>")
		os.Exit(2)
	}

	opts := cli.OneShotOptions{
		Trim:        *trim,
		ResizeW:     *resizeW,
		ResizeH:     *resizeH,
		Sharpen:     *sharpen,
		SharpenSig:  *sharpenSigma,
		SharpenAmt:  *sharpenAmount,
		UseEdge:     *useEdge,
		EdgeSigma:   *edgeSigma,
		EdgeScale:   *edgeScale,
		EdgeThresh:  *edgeThreshold,
		ThresholdWW: *thWW,
		ThresholdWH: *thWH,
		ThresholdK:  *thK,
		AutoOrient:  *autoOrient,
		ChunkSize:   *chunkSize,
		MaxIter:     *maxIter,
		SaveRects:   *saveRects,
		Out:         *out,
	}
	if err := cli.RunOneShot(flag.Arg(0), opts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
