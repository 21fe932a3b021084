// Command radialgraph renders a configured radial graph
// to a PNG image, an animated GIF or a PDF page.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benoitkugler/radialgraph/config"
	"github.com/benoitkugler/radialgraph/graph"
	"github.com/benoitkugler/radialgraph/graphpath"
	"github.com/benoitkugler/radialgraph/graphpdf"
	"github.com/benoitkugler/radialgraph/graphraster"
	"golang.org/x/term"
)

func main() {
	var (
		configPath = flag.String("config", "", "chart description (.toml, .yaml, .json or .xml)")
		output     = flag.String("out", "radialgraph.png", "output file (.png, .gif or .pdf)")
		width      = flag.Int("width", 0, "image width, overriding the configuration")
		height     = flag.Int("height", 0, "image height, overriding the configuration")
		frames     = flag.Int("frames", 0, "number of GIF frames, overriding the configuration")
		progress   = flag.Float64("progress", -1, "animation progress in [0, 1] for still images")
		verbose    = flag.Bool("v", false, "log debug messages")
	)
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, opts)
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	graph.SetLogger(slog.New(handler))

	file, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if *width > 0 {
		file.Render.Width = *width
	}
	if *height > 0 {
		file.Render.Height = *height
	}
	if *frames > 0 {
		file.Render.Frames = *frames
	}
	if *progress >= 0 {
		file.Render.Progress = *progress
	}

	if err := render(file, *output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	graph.Logger().Info("chart saved", "file", *output, "width", file.Render.Width, "height", file.Render.Height)
}

func loadConfig(path string) (config.File, error) {
	if strings.EqualFold(filepath.Ext(path), ".xml") {
		return config.ReadXMLFile(path, config.WarnErrorMode)
	}
	return config.Load(path)
}

func render(file config.File, output string) error {
	c, err := file.NewChart()
	if err != nil {
		return fmt.Errorf("invalid chart: %w", err)
	}
	anim, err := file.Animator()
	if err != nil {
		return err
	}
	background, err := file.Background()
	if err != nil {
		return err
	}
	w, h := file.Render.Width, file.Render.Height
	if w <= 0 || h <= 0 {
		return fmt.Errorf("invalid size %dx%d", w, h)
	}
	bounds := graphpath.Rect{Right: float64(w), Bottom: float64(h)}

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		c.Measure(bounds)
		anim.Seek(c, file.Render.Progress)
		img := graphraster.RenderToImage(c, w, h, background)
		return writeFile(output, func(f *os.File) error { return graphraster.EncodePNG(f, img) })
	case ".gif":
		n := file.FrameCount()
		images := graphraster.RenderFrames(c, anim, w, h, n, background)
		delay := anim.Duration / time.Duration(n)
		return writeFile(output, func(f *os.File) error { return graphraster.EncodeGIF(f, images, delay) })
	case ".pdf":
		c.Measure(bounds)
		anim.Seek(c, file.Render.Progress)
		if err := graphpdf.RenderToPDF(c, bounds.Width(), bounds.Height(), output); err != nil {
			return fmt.Errorf("writing pdf: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}
}

// writeFile creates `name` and closes it after `write`
func writeFile(name string, write func(f *os.File) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
