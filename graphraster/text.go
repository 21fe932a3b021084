package graphraster

import (
	"image"
	"sync"

	"github.com/benoitkugler/radialgraph/graph"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var (
	labelFont     *opentype.Font
	labelFontErr  error
	labelFontOnce sync.Once
)

func loadLabelFont() (*opentype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

// faces are cached by size
type faceCache map[float64]font.Face

func (fc *faceCache) face(size float64) (font.Face, error) {
	if face, ok := (*fc)[size]; ok {
		return face, nil
	}
	f, err := loadLabelFont()
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingNone})
	if err != nil {
		return nil, err
	}
	if *fc == nil {
		*fc = make(faceCache)
	}
	(*fc)[size] = face
	return face, nil
}

// DrawText implements graph.Driver, using the Go regular font.
func (rd *Renderer) DrawText(text string, x, y float64, paint *graph.TextPaint) {
	face, err := rd.faces.face(paint.Size)
	if err != nil {
		graph.Logger().Warn("label font unavailable", "err", err)
		return
	}
	metrics := face.Metrics()
	width := font.MeasureString(face, text)
	// center the text box on (x, y)
	height := metrics.Ascent + metrics.Descent
	dot := fixed.Point26_6{
		X: fixed.Int26_6(x*64) - width/2,
		Y: fixed.Int26_6(y*64) - height/2 + metrics.Ascent,
	}
	d := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(paint.Color),
		Face: face,
		Dot:  dot,
	}
	d.DrawString(text)
}
