package graphraster

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"image/png"
	"io"
	"time"

	"github.com/benoitkugler/radialgraph/chart"
	"github.com/benoitkugler/radialgraph/graph"
	"github.com/benoitkugler/radialgraph/graphpath"
)

func imageBounds(width, height int) graphpath.Rect {
	return graphpath.Rect{Right: float64(width), Bottom: float64(height)}
}

// RenderToImage draws the chart, in its current animation state,
// into a new image. A nil background leaves the image transparent.
func RenderToImage(c *chart.Chart, width, height int, background color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	renderer := NewRenderer(img, nil)
	if background != nil {
		renderer.Clear(background)
	}
	c.Draw(renderer, imageBounds(width, height))
	return img
}

// RenderFrames renders `n` frames of the animation of `c`.
// The chart states are left at the end of the animation.
func RenderFrames(c *chart.Chart, anim chart.Animator, width, height, n int, background color.Color) []*image.RGBA {
	c.Measure(imageBounds(width, height))
	frames := make([]*image.RGBA, 0, n)
	for i, fraction := range anim.Frames(n) {
		anim.Seek(c, fraction)
		frames = append(frames, RenderToImage(c, width, height, background))
		graph.Logger().Debug("frame rendered", "index", i, "fraction", fraction)
	}
	return frames
}

// EncodePNG writes `img` as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}

// EncodeGIF writes the frames as an animated GIF, each frame
// being shown for `delay`. The last frame is held for one second.
func EncodeGIF(w io.Writer, frames []*image.RGBA, delay time.Duration) error {
	anim := gif.GIF{}
	hundredths := int(delay / (10 * time.Millisecond))
	for i, frame := range frames {
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, frame.Bounds(), frame, image.Point{})
		anim.Image = append(anim.Image, paletted)
		if i == len(frames)-1 {
			anim.Delay = append(anim.Delay, 100)
		} else {
			anim.Delay = append(anim.Delay, hundredths)
		}
	}
	if err := gif.EncodeAll(w, &anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}
