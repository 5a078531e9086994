package raster

import "errors"

// Sentinel errors returned by Trace. Wrap with fmt.Errorf("...: %w", ...) at
// call sites that need extra context; callers should compare with errors.Is.
var (
	// ErrInvalidDimensions is returned when width or height is smaller than 3,
	// leaving no 1-pixel interior for thinning or seam search to operate on.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")

	// ErrInvalidBuffer is returned when the bitmap buffer is nil or shorter
	// than width*height.
	ErrInvalidBuffer = errors.New("raster: invalid bitmap buffer")

	// ErrInvalidConfig is returned when chunk_size < 6 or max_iter < 1.
	ErrInvalidConfig = errors.New("raster: invalid config")

	// ErrAllocationFailure is returned when Trace recovers a panic, of any
	// cause, raised while thinning or building polylines. The caller's bitmap
	// may already be thinned and the trace is abandoned.
	ErrAllocationFailure = errors.New("raster: allocation failure")
)
