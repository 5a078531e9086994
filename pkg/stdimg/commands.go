package stdimg

// ArgSpec describes one positional argument a command accepts: its name,
// a coarse type tag consumed by pkg/cli's metadata layer ("int", "float",
// "bool", "string"), a human-readable hint, whether it is required, and its
// default value as a string.
type ArgSpec struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Default     string
}

// CommandSpec is the canonical description of one command the interactive
// CLI can dispatch through ApplyCommandStdlib, driving prompting, fzf
// selection and argument validation without duplicating this metadata in
// pkg/cli.
type CommandSpec struct {
	Name        string
	Description string
	Args        []ArgSpec
}

// Commands is the registry of image-preparation and tracing commands
// exposed by the interactive CLI.
var Commands = []CommandSpec{
	{
		Name:        "trim",
		Description: "Crop a uniform-color border (e.g. a scanner margin) from the loaded image.",
		Args: []ArgSpec{
			{Name: "fuzz", Type: "float", Description: "color distance tolerance, 0-441", Default: "8"},
		},
	},
	{
		Name:        "resize",
		Description: "Lanczos-resample the loaded image to a new size, preserving aspect ratio when one dimension is 0.",
		Args: []ArgSpec{
			{Name: "width", Type: "int", Description: "target width in pixels, 0 to preserve aspect", Default: "0"},
			{Name: "height", Type: "int", Description: "target height in pixels, 0 to preserve aspect", Default: "0"},
		},
	},
	{
		Name:        "threshold",
		Description: "Binarize the loaded image with a local-mean adaptive threshold, producing the bitmap tracing expects.",
		Args: []ArgSpec{
			{Name: "window_w", Type: "int", Description: "local-mean window width", Default: "15"},
			{Name: "window_h", Type: "int", Description: "local-mean window height", Default: "15"},
			{Name: "offset", Type: "float", Description: "bias subtracted from the local mean before comparison", Default: "8"},
		},
	},
	{
		Name:        "sharpen",
		Description: "Unsharp-mask the loaded image to boost stroke-edge contrast before thresholding a faint scan.",
		Args: []ArgSpec{
			{Name: "sigma", Type: "float", Description: "blur sigma behind the unsharp mask, 0 to auto-estimate from image gradients", Default: "0"},
			{Name: "amount", Type: "float", Description: "sharpening strength multiplier", Default: "1"},
		},
	},
	{
		Name:        "edgedetect",
		Description: "Binarize the loaded image by Sobel edge magnitude instead of luminance; an alternate boundary adapter for scans with uneven lighting that defeats threshold.",
		Args: []ArgSpec{
			{Name: "blur_sigma", Type: "float", Description: "pre-blur sigma to suppress sensor noise before gradients, 0 disables", Default: "0"},
			{Name: "scale", Type: "float", Description: "gradient magnitude multiplier", Default: "1"},
			{Name: "threshold", Type: "float", Description: "gradient magnitude floor, in the normalized 0-255 range, for a pixel to count as an edge", Default: "40"},
		},
	},
	{
		Name:        "autoorient",
		Description: "Leave the loaded image unchanged; EXIF orientation is already applied when a JPEG file is loaded.",
		Args:        nil,
	},
	{
		Name:        "trace",
		Description: "Thin the current bitmap and trace it into polylines.",
		Args: []ArgSpec{
			{Name: "chunk_size", Type: "int", Description: "recursion leaf size, minimum 6", Default: "10"},
			{Name: "max_iter", Type: "int", Description: "recursion depth cap", Default: "1048576"},
			{Name: "save_rects", Type: "bool", Description: "log every tile the partitioner visits", Default: "false"},
		},
	},
	{
		Name:        "identify",
		Description: "Print image dimensions and EXIF metadata for the loaded file.",
		Args:        nil,
	},
	{
		Name:        "strip",
		Description: "Discard cached EXIF/orientation metadata for the loaded image.",
		Args:        nil,
	},
}
