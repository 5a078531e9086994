package cli

import (
	"fmt"
	"image"
	"strings"

	"github.com/quillpath/skeletrace/pkg/raster"
	"github.com/quillpath/skeletrace/pkg/stdimg"
)

// OneShotOptions configures a non-interactive trace run, mirroring the
// arguments a user would otherwise type at the "/" prompt one command at a
// time.
type OneShotOptions struct {
	Trim        float64
	ResizeW     int
	ResizeH     int
	Sharpen     bool
	SharpenSig  float64
	SharpenAmt  float64
	UseEdge     bool
	EdgeSigma   float64
	EdgeScale   float64
	EdgeThresh  float64
	ThresholdWW int
	ThresholdWH int
	ThresholdK  float64
	AutoOrient  bool
	ChunkSize   int
	MaxIter     int
	SaveRects   bool
	Out         string
}

// RunOneShot loads path, applies the requested preparation steps, traces the
// result, and prints the polylines. It is the non-interactive counterpart to
// RunCLI's "/" command loop, for scripted or CI use.
func RunOneShot(path string, opts OneShotOptions) error {
	if err := CheckMinVersion(); err != nil {
		return err
	}

	img, _, err := LoadImageExtended(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	if opts.AutoOrient {
		if img, err = stdimg.ApplyCommandStdlib(img, "autoorient", nil); err != nil {
			return fmt.Errorf("autoorient: %w", err)
		}
	}
	if opts.Trim > 0 {
		if img, err = stdimg.ApplyCommandStdlib(img, "trim", []string{fmtFloat(opts.Trim)}); err != nil {
			return fmt.Errorf("trim: %w", err)
		}
	}
	if opts.ResizeW > 0 && opts.ResizeH > 0 {
		args := []string{fmt.Sprintf("%d", opts.ResizeW), fmt.Sprintf("%d", opts.ResizeH)}
		if img, err = stdimg.ApplyCommandStdlib(img, "resize", args); err != nil {
			return fmt.Errorf("resize: %w", err)
		}
	}
	if opts.Sharpen {
		args := []string{fmtFloat(opts.SharpenSig), fmtFloat(opts.SharpenAmt)}
		if img, err = stdimg.ApplyCommandStdlib(img, "sharpen", args); err != nil {
			return fmt.Errorf("sharpen: %w", err)
		}
	}

	var bilevel image.Image
	if opts.UseEdge {
		edgeArgs := []string{fmtFloat(opts.EdgeSigma), fmtFloat(opts.EdgeScale), fmtFloat(opts.EdgeThresh)}
		bilevel, err = stdimg.ApplyCommandStdlib(img, "edgedetect", edgeArgs)
		if err != nil {
			return fmt.Errorf("edgedetect: %w", err)
		}
	} else {
		ww, wh := opts.ThresholdWW, opts.ThresholdWH
		if ww <= 0 {
			ww = EnvIntDefault("SKELETRACE_THRESHOLD_WINDOW_W", 15)
		}
		if wh <= 0 {
			wh = EnvIntDefault("SKELETRACE_THRESHOLD_WINDOW_H", 15)
		}
		k := opts.ThresholdK
		if k == 0 {
			k = EnvFloatDefault("SKELETRACE_THRESHOLD_OFFSET", 8)
		}
		thresholdArgs := []string{fmt.Sprintf("%d", ww), fmt.Sprintf("%d", wh), fmtFloat(k)}
		bilevel, err = stdimg.ApplyCommandStdlib(img, "threshold", thresholdArgs)
		if err != nil {
			return fmt.Errorf("threshold: %w", err)
		}
	}

	var buf []byte
	var w, h int
	if opts.UseEdge {
		buf, w, h = stdimg.ToBitmapBufferFromEdges(stdimg.ToNRGBA(bilevel))
	} else {
		buf, w, h = stdimg.ToBitmapBuffer(stdimg.ToNRGBA(bilevel))
	}
	buf, w, h = stdimg.PadBorder(buf, w, h, 1)

	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = EnvIntDefault("SKELETRACE_CHUNK_SIZE", 10)
	}
	maxIter := opts.MaxIter
	if maxIter <= 0 {
		maxIter = EnvIntDefault("SKELETRACE_MAX_ITER", 1<<20)
	}
	cfg := raster.Config{ChunkSize: chunkSize, MaxIter: maxIter, SaveRects: opts.SaveRects}
	tr := raster.NewTracer(cfg)
	set, err := tr.Trace(buf, w, h)
	if err != nil {
		return fmt.Errorf("trace: %w", err)
	}

	fmt.Printf("%d polylines\n", set.Len())
	for _, p := range set.All() {
		var sb strings.Builder
		for i, pt := range p.Points() {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d,%d", pt.X, pt.Y)
		}
		fmt.Println(sb.String())
	}
	if opts.SaveRects {
		fmt.Printf("%d tiles visited\n", len(tr.Rectangles()))
	}

	if opts.Out != "" {
		if err := SaveImage(opts.Out, bilevel); err != nil {
			return fmt.Errorf("save %s: %w", opts.Out, err)
		}
	}
	return nil
}

func fmtFloat(f float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", f), "0"), ".")
}
