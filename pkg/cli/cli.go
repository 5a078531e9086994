package cli

import (
	"bufio"
	"fmt"
	"image"
	"os"
	"strconv"
	"strings"

	"github.com/quillpath/skeletrace/pkg/raster"
	"github.com/quillpath/skeletrace/pkg/stdimg"
)

func usage() {
	fmt.Println("Commands available:")
	fmt.Println("  /  - select and apply a preparation command, or trace the current image")
	fmt.Println("  o  - open another image at runtime")
	fmt.Println("  s  - save the current (prepared) image")
	fmt.Println("  u  - check for updates")
	fmt.Println("  h  - show this help message")
	fmt.Println("  q  - quit")
}

func RunCLI() {
	if err := CheckMinVersion(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	var inputImagePath string
	if len(os.Args) >= 2 {
		inputImagePath = os.Args[1]
	}

	store := NewMetaStoreFromStdimg(stdimg.Commands)

	var cur image.Image
	var currentImagePath string
	var currentFormat string
	var lastBinarization string
	if inputImagePath != "" {
		img, format, err := LoadImageExtended(inputImagePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", inputImagePath, err)
			os.Exit(1)
		}
		cur = img
		currentImagePath = inputImagePath
		currentFormat = format
		_ = PreviewImage(cur, currentFormat)
		if info, ierr := GetImageInfoImage(cur); ierr == nil {
			fmt.Println(info)
		}
	}

	fmt.Println("skeletrace")
	usage()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		r, _, err := reader.ReadRune()
		if err != nil {
			fmt.Fprintf(os.Stderr, "read input error: %v\n", err)
			continue
		}

		switch r {
		case '/':
			if cur == nil {
				fmt.Println("No image loaded. Press 'o' to open an image first, or provide an image path as the first argument.")
				continue
			}
			commandName, ok := selectCommand(store)
			if !ok {
				continue
			}

			c, ok := store.byName[commandName]
			if !ok {
				fmt.Printf("unknown command: %s\n", commandName)
				continue
			}

			rawArgs, ok := promptArgs(c)
			if !ok {
				continue
			}

			normArgs, err := NormalizeArgsFromStd(store, commandName, rawArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "input validation error: %v\n", err)
				fmt.Println("aborting command due to input errors")
				continue
			}

			if commandName == "trace" {
				runTrace(cur, normArgs, lastBinarization)
				continue
			}

			newImg, err := stdimg.ApplyCommandStdlib(cur, commandName, normArgs)
			if err != nil {
				fmt.Fprintf(os.Stderr, "apply command error: %v\n", err)
				continue
			}
			if newImg != nil {
				cur = newImg
			}
			if commandName == "threshold" || commandName == "edgedetect" {
				lastBinarization = commandName
			}
			fmt.Printf("Applied %s\n", commandName)
			_ = PreviewImage(cur, currentFormat)

			switch commandName {
			case "identify":
				printIdentify(currentImagePath)
			case "strip":
				currentImagePath = ""
				fmt.Println("metadata cleared")
			}
			if info, ierr := GetImageInfoImage(cur); ierr == nil {
				fmt.Println(info)
			}

		case 's':
			out, _ := PromptLine("Enter output filename: ")
			if out == "" {
				fmt.Println("no filename provided")
				continue
			}
			if err := SaveImage(out, cur); err != nil {
				fmt.Fprintf(os.Stderr, "failed to write image: %v\n", err)
				continue
			}
			fmt.Printf("Saved to %s\n", out)

		case 'o':
			selected, selErr := SelectFileWithFzf(".")
			var newPath string
			if selErr != nil || selected == "" {
				newPath, _ = PromptLine("Enter path to image to open (leave empty to cancel): ")
				if newPath == "" {
					fmt.Println("open cancelled")
					continue
				}
			} else {
				newPath = selected
			}

			img, format, err := LoadImageExtended(newPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "failed to read image %s: %v\n", newPath, err)
				continue
			}
			cur = img
			currentImagePath = newPath
			currentFormat = format
			lastBinarization = ""
			fmt.Printf("Opened %s\n", newPath)
			_ = PreviewImage(cur, currentFormat)
			if info, ierr := GetImageInfoImage(cur); ierr == nil {
				fmt.Println(info)
			}

		case 'u':
			if err := CheckForUpdates(); err != nil {
				fmt.Fprintf(os.Stderr, "update check error: %v\n", err)
			}

		case 'h':
			usage()

		case 'q':
			fmt.Println("Exiting...")
			return

		default:
			// ignore other keys
		}
	}
}

// selectCommand resolves a command name via fzf, falling back to a
// numbered textual menu when fzf is unavailable.
func selectCommand(store *StdMetaStore) (string, bool) {
	name, err := SelectCommandWithFzfStd(stdimg.Commands)
	if err == nil && name != "" {
		return name, true
	}

	fmt.Println("Command selection (fallback):")
	for i, c := range stdimg.Commands {
		fmt.Printf("  %d) %s - %s\n", i+1, c.Name, c.Description)
	}
	selection, _ := PromptLine("Enter number or command name (leave empty to cancel): ")
	if selection == "" {
		fmt.Println("selection cancelled")
		return "", false
	}
	if idx, perr := strconv.Atoi(selection); perr == nil {
		if idx < 1 || idx > len(stdimg.Commands) {
			fmt.Println("invalid selection")
			return "", false
		}
		return stdimg.Commands[idx-1].Name, true
	}
	selLower := strings.ToLower(selection)
	for _, c := range stdimg.Commands {
		if strings.ToLower(c.Name) == selLower {
			return c.Name, true
		}
	}
	var matches []string
	for _, c := range stdimg.Commands {
		if strings.HasPrefix(strings.ToLower(c.Name), selLower) {
			matches = append(matches, c.Name)
		}
	}
	if len(matches) == 1 {
		return matches[0], true
	}
	if len(matches) > 1 {
		fmt.Println("ambiguous selection, candidates:")
		for _, m := range matches {
			fmt.Println("  " + m)
		}
		return "", false
	}
	fmt.Printf("unknown command: %s\n", selection)
	return "", false
}

func promptArgs(c stdimg.CommandSpec) ([]string, bool) {
	tooltip := GenerateTooltipFromStdSpec(c)
	fmt.Println("\n" + tooltip + "\n")
	rawArgs := make([]string, len(c.Args))
	for i, p := range c.Args {
		typeLabel := p.Type
		prompt := fmt.Sprintf("%s (%s): ", p.Name, typeLabel)
		val, perr := PromptLine(prompt)
		if perr != nil {
			fmt.Fprintf(os.Stderr, "input error: %v\n", perr)
			val = ""
		}
		rawArgs[i] = val
	}
	return rawArgs, true
}

// runTrace binarizes the current image, thins it, traces it into polylines,
// and prints the result as whitespace-separated x,y pairs, one polyline per
// line, per the core library's example-executable contract. lastBinarization
// is the name of the most recent "threshold"/"edgedetect" command applied
// to cur (empty if neither has run yet); it decides which image->bitmap
// boundary adapter turns cur into the buffer raster.Trace expects. A
// user who never manually binarizes gets the same adaptive-threshold
// default runTrace always used.
func runTrace(cur image.Image, normArgs []string, lastBinarization string) {
	chunkSize := EnvIntDefault("SKELETRACE_CHUNK_SIZE", 10)
	maxIter := EnvIntDefault("SKELETRACE_MAX_ITER", 1<<20)
	saveRects := false
	if len(normArgs) > 0 && normArgs[0] != "" {
		if v, err := strconv.Atoi(normArgs[0]); err == nil {
			chunkSize = v
		}
	}
	if len(normArgs) > 1 && normArgs[1] != "" {
		if v, err := strconv.Atoi(normArgs[1]); err == nil {
			maxIter = v
		}
	}
	if len(normArgs) > 2 && normArgs[2] != "" {
		saveRects = normArgs[2] == "true"
	}

	nrgba := stdimg.ToNRGBA(cur)
	var buf []byte
	var w, h int
	if lastBinarization == "edgedetect" {
		buf, w, h = stdimg.ToBitmapBufferFromEdges(nrgba)
	} else {
		bilevel := stdimg.AdaptiveThreshold(nrgba,
			EnvIntDefault("SKELETRACE_THRESHOLD_WINDOW_W", 15),
			EnvIntDefault("SKELETRACE_THRESHOLD_WINDOW_H", 15),
			EnvFloatDefault("SKELETRACE_THRESHOLD_OFFSET", 8))
		buf, w, h = stdimg.ToBitmapBuffer(bilevel)
	}
	buf, w, h = stdimg.PadBorder(buf, w, h, 1)

	cfg := raster.Config{ChunkSize: chunkSize, MaxIter: maxIter, SaveRects: saveRects}
	tr := raster.NewTracer(cfg)
	set, err := tr.Trace(buf, w, h)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace error: %v\n", err)
		return
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

	if saveRects {
		rects := tr.Rectangles()
		fmt.Printf("%d tiles visited\n", len(rects))
	}
}

func printIdentify(currentImagePath string) {
	if currentImagePath == "" {
		fmt.Println("identify: no image path available to extract EXIF")
		return
	}
	ex, err := ExtractEXIFStruct(currentImagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to extract EXIF: %v\n", err)
		return
	}
	if ex.Make != "" || ex.Model != "" {
		fmt.Printf("Make: %s\nModel: %s\n", ex.Make, ex.Model)
	}
	if ex.Software != "" {
		fmt.Printf("Software: %s\n", ex.Software)
	}
	if ex.Orientation != 0 {
		fmt.Printf("Orientation: %d\n", ex.Orientation)
	}
	if ex.DateTimeOriginal != "" {
		fmt.Printf("DateTimeOriginal: %s\n", ex.DateTimeOriginal)
	}
	if ex.GPS != nil {
		fmt.Println("GPS:")
		fmt.Printf("  Latitude:  %.8f %s\n", ex.GPS.Latitude, ex.GPS.LatRef)
		fmt.Printf("  Longitude: %.8f %s\n", ex.GPS.Longitude, ex.GPS.LonRef)
	}
}
