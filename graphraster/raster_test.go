package graphraster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/benoitkugler/radialgraph/chart"
	"github.com/benoitkugler/radialgraph/graph"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.NRGBA{A: 0xff}
)

func saveToPngFile(t *testing.T, name string, m image.Image) {
	if err := os.MkdirAll("testdata_out", os.ModePerm); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(fmt.Sprintf("testdata_out/%s.png", name))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err = EncodePNG(f, m); err != nil {
		t.Fatalf("can't save rasterized image: %s", err)
	}
}

func rgb(img *image.RGBA, x, y int) (r, g, b uint8) {
	c := img.RGBAAt(x, y)
	return c.R, c.G, c.B
}

func isWhite(img *image.RGBA, x, y int) bool {
	r, g, b := rgb(img, x, y)
	return r > 0xf0 && g > 0xf0 && b > 0xf0
}

func isRed(img *image.RGBA, x, y int) bool {
	r, g, b := rgb(img, x, y)
	return r > 0xc0 && g < 0x40 && b < 0x40
}

func isBlue(img *image.RGBA, x, y int) bool {
	r, g, b := rgb(img, x, y)
	return b > 0xc0 && g < 0x40 && r < 0x40
}

func twoSections(cfg graph.GraphConfig, opts chart.Options) *chart.Chart {
	return chart.New(cfg, []chart.Section{
		{Value: 0.25, Colors: []color.NRGBA{red}},
		{Value: 0.5, Colors: []color.NRGBA{blue}},
	}, opts)
}

// sample points on the ring of a 200x200 image with a stroke of 10
const (
	topRightX, topRightY = 167, 33 // offset 0.125
	bottomX, bottomY     = 100, 195
	rightX, rightY       = 195, 100
	topLeftX, topLeftY   = 33, 33 // offset 0.875
	leftX, leftY         = 5, 100
	centerX, centerY     = 100, 100
	size                 = 200
	strokeWidth          = 10
)

func TestRenderSections(t *testing.T) {
	c := twoSections(graph.GraphConfig{StrokeWidth: strokeWidth, CapStyle: graph.CapButt}, chart.Options{})
	c.Measure(imageBounds(size, size))

	img := RenderToImage(c, size, size, white)
	for _, p := range [][2]int{{topRightX, topRightY}, {bottomX, bottomY}, {topLeftX, topLeftY}} {
		if !isWhite(img, p[0], p[1]) {
			t.Errorf("hidden sections should not be drawn at %v", p)
		}
	}

	chart.Animator{}.Seek(c, 1)
	img = RenderToImage(c, size, size, white)
	saveToPngFile(t, "sections", img)
	if !isRed(img, topRightX, topRightY) {
		t.Errorf("expected the first section, got %v", img.At(topRightX, topRightY))
	}
	if !isBlue(img, bottomX, bottomY) {
		t.Errorf("expected the second section, got %v", img.At(bottomX, bottomY))
	}
	if !isWhite(img, topLeftX, topLeftY) || !isWhite(img, centerX, centerY) {
		t.Error("expected an empty last quarter and center")
	}
}

func TestRenderHalfProgress(t *testing.T) {
	c := chart.New(graph.GraphConfig{StrokeWidth: strokeWidth},
		[]chart.Section{{Value: 1, Colors: []color.NRGBA{red}}}, chart.Options{})
	c.Measure(imageBounds(size, size))
	chart.Animator{Easing: chart.Linear}.Seek(c, 0.5)
	img := RenderToImage(c, size, size, white)
	saveToPngFile(t, "half", img)
	if !isRed(img, rightX, rightY) {
		t.Errorf("expected the right half to be drawn, got %v", img.At(rightX, rightY))
	}
	if !isWhite(img, leftX+1, leftY) {
		t.Errorf("expected the left half to be empty, got %v", img.At(leftX+1, leftY))
	}
}

func TestRenderCounterClockwise(t *testing.T) {
	c := chart.New(graph.GraphConfig{StrokeWidth: strokeWidth, AnimationDirection: graph.CounterClockwise},
		[]chart.Section{{Value: 0.5, Colors: []color.NRGBA{blue}}}, chart.Options{})
	chart.Animator{}.Seek(measured(c), 1)
	img := RenderToImage(c, size, size, white)
	if !isBlue(img, leftX+1, leftY) || !isWhite(img, rightX-1, rightY) {
		t.Error("counter clockwise sections should grow on the left")
	}
}

func measured(c *chart.Chart) *chart.Chart {
	c.Measure(imageBounds(size, size))
	return c
}

func TestRenderSweepGradient(t *testing.T) {
	c := chart.New(graph.GraphConfig{StrokeWidth: strokeWidth, CapStyle: graph.CapRound, GradientType: graph.GradientSweep},
		[]chart.Section{{Value: 1, Colors: []color.NRGBA{red, blue}}}, chart.Options{})
	chart.Animator{}.Seek(measured(c), 1)
	img := RenderToImage(c, size, size, white)
	saveToPngFile(t, "sweep", img)

	r, _, b := rgb(img, bottomX, bottomY-1)
	if r < 0x60 || r > 0xa0 || b < 0x60 || b > 0xa0 {
		t.Errorf("expected a mix at the middle of the gradient, got %v", img.At(bottomX, bottomY-1))
	}
	if !isRed(img, topRightX, topRightY) {
		t.Errorf("expected mostly red near the start, got %v", img.At(topRightX, topRightY))
	}
}

func TestRenderDecorations(t *testing.T) {
	c := twoSections(graph.GraphConfig{StrokeWidth: strokeWidth, CapStyle: graph.CapRound}, chart.Options{
		TrackColor: color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff},
		NodeColor:  black,
		Labels:     chart.LabelOptions{Kind: chart.LabelPercent, Color: white, Size: 8, Locale: language.English},
	})
	chart.Animator{}.Seek(measured(c), 1)
	img := RenderToImage(c, size, size, white)
	saveToPngFile(t, "decorations", img)
	if isWhite(img, topLeftX, topLeftY) {
		t.Error("the track should be drawn behind the sections")
	}
}

func TestAnimationEncoding(t *testing.T) {
	c := twoSections(graph.GraphConfig{StrokeWidth: strokeWidth}, chart.Options{})
	frames := RenderFrames(c, chart.Animator{Duration: time.Second}, 64, 64, 5, white)
	if len(frames) != 5 {
		t.Fatalf("expected 5 frames, got %d", len(frames))
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames, 40*time.Millisecond); err != nil {
		t.Fatal(err)
	}
	decoded, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{4, 4, 4, 4, 100}, decoded.Delay); diff != "" {
		t.Errorf("delays (-want +got)\n%s", diff)
	}

	buf.Reset()
	if err := EncodePNG(&buf, frames[4]); err != nil {
		t.Fatal(err)
	}
	if _, err := png.Decode(&buf); err != nil {
		t.Fatal(err)
	}
}
