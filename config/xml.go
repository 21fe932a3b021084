package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/benoitkugler/radialgraph/graph"
	"golang.org/x/net/html/charset"
)

// ErrorMode sets how the reader
// handles unknown elements and attributes
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unknown elements
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs a warning for each unknown element
	WarnErrorMode
	// StrictErrorMode returns an error on the first unknown element
	StrictErrorMode
)

// ReadXML reads a chart description such as
//
//	<radialgraph>
//	  <graph stroke-width="10" cap-style="round" gradient="sweep"/>
//	  <chart track-color="#eee" labels="percent"/>
//	  <section value="0.25" colors="red blue"/>
//	  <render width="256" height="256" duration="1s"/>
//	</radialgraph>
//
// Missing attributes keep their default value.
func ReadXML(stream io.Reader, errMode ErrorMode) (File, error) {
	cursor := xmlCursor{file: Default(), errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenRoot := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenRoot {
					return File{}, errors.New("invalid radialgraph xml document")
				}
				break
			}
			return File{}, fmt.Errorf("read xml: %w", err)
		}
		se, ok := t.(xml.StartElement)
		if !ok {
			continue
		}
		if !seenRoot {
			if se.Name.Local != "radialgraph" {
				return File{}, fmt.Errorf("unexpected root element %s", se.Name.Local)
			}
			seenRoot = true
			continue
		}
		if err = cursor.readStartElement(se); err != nil {
			return File{}, err
		}
	}
	return cursor.file, nil
}

// ReadXMLFile reads the chart description from the named file
func ReadXMLFile(filename string, errMode ErrorMode) (File, error) {
	fin, err := os.Open(filename)
	if err != nil {
		return File{}, err
	}
	defer fin.Close()
	return ReadXML(fin, errMode)
}

type xmlCursor struct {
	file      File
	errorMode ErrorMode
}

// report handles an unsupported construct, according to the error mode
func (c *xmlCursor) report(msg string) error {
	switch c.errorMode {
	case StrictErrorMode:
		return errors.New(msg)
	case WarnErrorMode:
		graph.Logger().Warn(msg)
	}
	return nil
}

// attrFunc stores one attribute value
type attrFunc func(f *File, value string) error

type elementFunc func(c *xmlCursor) map[string]attrFunc

var elementFuncs = map[string]elementFunc{
	"graph":   func(c *xmlCursor) map[string]attrFunc { return graphAttrs },
	"chart":   func(c *xmlCursor) map[string]attrFunc { return chartAttrs },
	"render":  func(c *xmlCursor) map[string]attrFunc { return renderAttrs },
	"section": (*xmlCursor).newSection,
}

func (c *xmlCursor) readStartElement(se xml.StartElement) error {
	ef, ok := elementFuncs[se.Name.Local]
	if !ok {
		return c.report("cannot process radialgraph element " + se.Name.Local)
	}
	attrs := ef(c)
	for _, attr := range se.Attr {
		af, ok := attrs[attr.Name.Local]
		if !ok {
			if err := c.report(fmt.Sprintf("cannot process attribute %s of element %s", attr.Name.Local, se.Name.Local)); err != nil {
				return err
			}
			continue
		}
		if err := af(&c.file, attr.Value); err != nil {
			return fmt.Errorf("element %s, attribute %s: %w", se.Name.Local, attr.Name.Local, err)
		}
	}
	return nil
}

// newSection appends a section, whose attributes
// are then stored in the last entry
func (c *xmlCursor) newSection() map[string]attrFunc {
	c.file.Sections = append(c.file.Sections, SectionEntry{})
	return sectionAttrs
}

func lastSection(f *File) *SectionEntry { return &f.Sections[len(f.Sections)-1] }

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

func parseInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

var graphAttrs = map[string]attrFunc{
	"stroke-width": func(f *File, value string) (err error) {
		f.Graph.StrokeWidth, err = parseFloat(value)
		return err
	},
	"cap-style":     func(f *File, value string) error { f.Graph.CapStyle = value; return nil },
	"direction":     func(f *File, value string) error { f.Graph.Direction = value; return nil },
	"gradient":      func(f *File, value string) error { f.Graph.Gradient = value; return nil },
	"gradient-fill": func(f *File, value string) error { f.Graph.GradientFill = value; return nil },
}

var chartAttrs = map[string]attrFunc{
	"track-color": func(f *File, value string) error { f.Chart.TrackColor = value; return nil },
	"node-color":  func(f *File, value string) error { f.Chart.NodeColor = value; return nil },
	"labels":      func(f *File, value string) error { f.Chart.Labels = value; return nil },
	"label-color": func(f *File, value string) error { f.Chart.LabelColor = value; return nil },
	"label-size": func(f *File, value string) (err error) {
		f.Chart.LabelSize, err = parseFloat(value)
		return err
	},
	"locale": func(f *File, value string) error { f.Chart.Locale = value; return nil },
}

var sectionAttrs = map[string]attrFunc{
	"value": func(f *File, value string) (err error) {
		lastSection(f).Value, err = parseFloat(value)
		return err
	},
	"colors": func(f *File, value string) error {
		// colors are separated by spaces or commas
		lastSection(f).Colors = strings.FieldsFunc(value, func(r rune) bool { return r == ',' || r == ' ' })
		return nil
	},
}

var renderAttrs = map[string]attrFunc{
	"width": func(f *File, value string) (err error) {
		f.Render.Width, err = parseInt(value)
		return err
	},
	"height": func(f *File, value string) (err error) {
		f.Render.Height, err = parseInt(value)
		return err
	},
	"background": func(f *File, value string) error { f.Render.Background = value; return nil },
	"frames": func(f *File, value string) (err error) {
		f.Render.Frames, err = parseInt(value)
		return err
	},
	"fps": func(f *File, value string) (err error) {
		f.Render.FPS, err = parseInt(value)
		return err
	},
	"duration": func(f *File, value string) (err error) {
		f.Render.Duration, err = time.ParseDuration(strings.TrimSpace(value))
		return err
	},
	"easing": func(f *File, value string) error { f.Render.Easing = value; return nil },
	"sequential": func(f *File, value string) (err error) {
		f.Render.Sequential, err = strconv.ParseBool(strings.TrimSpace(value))
		return err
	},
	"progress": func(f *File, value string) (err error) {
		f.Render.Progress, err = parseFloat(value)
		return err
	},
}
