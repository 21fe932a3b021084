// Package config loads chart descriptions from configuration files
// (TOML, YAML or JSON through viper, or XML documents)
// and converts them into charts ready to be drawn.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/benoitkugler/radialgraph/chart"
	"github.com/benoitkugler/radialgraph/graph"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// File is the content of a configuration file.
type File struct {
	Graph    GraphSection
	Chart    ChartSection
	Sections []SectionEntry
	Render   RenderSection
}

// GraphSection holds the renderer settings.
type GraphSection struct {
	StrokeWidth  float64 `mapstructure:"stroke_width"`
	CapStyle     string  `mapstructure:"cap_style"`     // butt, round or square
	Direction    string  `mapstructure:"direction"`     // clockwise or counter_clockwise
	Gradient     string  `mapstructure:"gradient"`      // none or sweep
	GradientFill string  `mapstructure:"gradient_fill"` // whole or section
}

// ChartSection holds the decorations.
// Colors are empty to disable an element.
type ChartSection struct {
	TrackColor string  `mapstructure:"track_color"`
	NodeColor  string  `mapstructure:"node_color"`
	Labels     string  `mapstructure:"labels"` // none or percent
	LabelColor string  `mapstructure:"label_color"`
	LabelSize  float64 `mapstructure:"label_size"`
	Locale     string  `mapstructure:"locale"`
}

// SectionEntry is one value of the chart.
type SectionEntry struct {
	Value  float64  `mapstructure:"value"`
	Colors []string `mapstructure:"colors"`
}

// RenderSection holds the output settings.
type RenderSection struct {
	Width      int           `mapstructure:"width"`
	Height     int           `mapstructure:"height"`
	Background string        `mapstructure:"background"`
	Frames     int           `mapstructure:"frames"` // 0 to derive it from the duration
	FPS        int           `mapstructure:"fps"`
	Duration   time.Duration `mapstructure:"duration"`
	Easing     string        `mapstructure:"easing"` // linear or decelerate
	Sequential bool          `mapstructure:"sequential"`
	Progress   float64       `mapstructure:"progress"` // for still images
}

// Default returns the settings used for missing keys.
func Default() File {
	return File{
		Graph: GraphSection{
			StrokeWidth:  10,
			CapStyle:     "butt",
			Direction:    "clockwise",
			Gradient:     "none",
			GradientFill: "whole",
		},
		Chart: ChartSection{
			Labels: "none",
			Locale: "en",
		},
		Render: RenderSection{
			Width:      256,
			Height:     256,
			Background: "white",
			FPS:        25,
			Duration:   time.Second,
			Easing:     "decelerate",
			Progress:   1,
		},
	}
}

// Load reads the configuration at `path`, falling back to defaults
// for the missing keys. Env var overrides use prefix RADIALGRAPH_.
// If path is empty, RADIALGRAPH_CONFIG is used, then a radialgraph.toml
// file in the working directory, if any.
func Load(path string) (File, error) {
	v := viper.New()

	// default values
	def := Default()
	v.SetDefault("graph.stroke_width", def.Graph.StrokeWidth)
	v.SetDefault("graph.cap_style", def.Graph.CapStyle)
	v.SetDefault("graph.direction", def.Graph.Direction)
	v.SetDefault("graph.gradient", def.Graph.Gradient)
	v.SetDefault("graph.gradient_fill", def.Graph.GradientFill)
	v.SetDefault("chart.track_color", def.Chart.TrackColor)
	v.SetDefault("chart.node_color", def.Chart.NodeColor)
	v.SetDefault("chart.labels", def.Chart.Labels)
	v.SetDefault("chart.label_color", def.Chart.LabelColor)
	v.SetDefault("chart.label_size", def.Chart.LabelSize)
	v.SetDefault("chart.locale", def.Chart.Locale)
	v.SetDefault("render.width", def.Render.Width)
	v.SetDefault("render.height", def.Render.Height)
	v.SetDefault("render.background", def.Render.Background)
	v.SetDefault("render.frames", def.Render.Frames)
	v.SetDefault("render.fps", def.Render.FPS)
	v.SetDefault("render.duration", def.Render.Duration)
	v.SetDefault("render.easing", def.Render.Easing)
	v.SetDefault("render.sequential", def.Render.Sequential)
	v.SetDefault("render.progress", def.Render.Progress)

	if path == "" {
		path = os.Getenv("RADIALGRAPH_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
		if filepath.Ext(path) == "" {
			v.SetConfigType("toml")
		}
	} else {
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		v.SetConfigName("radialgraph")
	}

	v.SetEnvPrefix("RADIALGRAPH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return File{}, fmt.Errorf("read config: %w", err)
		}
	}

	var f File
	if err := v.Unmarshal(&f); err != nil {
		return File{}, fmt.Errorf("unmarshal config: %w", err)
	}
	graph.Logger().Debug("config loaded", "file", v.ConfigFileUsed(), "sections", len(f.Sections))
	return f, nil
}

// GraphConfig returns the renderer settings.
func (f File) GraphConfig() (graph.GraphConfig, error) {
	var (
		out graph.GraphConfig
		err error
	)
	if f.Graph.StrokeWidth <= 0 {
		return out, fmt.Errorf("invalid stroke width %g", f.Graph.StrokeWidth)
	}
	out.StrokeWidth = f.Graph.StrokeWidth
	if out.CapStyle, err = parseCapStyle(f.Graph.CapStyle); err != nil {
		return out, err
	}
	if out.AnimationDirection, err = parseDirection(f.Graph.Direction); err != nil {
		return out, err
	}
	if out.GradientType, err = parseGradientType(f.Graph.Gradient); err != nil {
		return out, err
	}
	if out.GradientFill, err = parseGradientFill(f.Graph.GradientFill); err != nil {
		return out, err
	}
	return out, nil
}

// Options returns the chart decorations.
func (f File) Options() (chart.Options, error) {
	var (
		opts chart.Options
		err  error
	)
	if opts.TrackColor, err = ParseColor(f.Chart.TrackColor); err != nil {
		return opts, fmt.Errorf("track color: %w", err)
	}
	if opts.NodeColor, err = ParseColor(f.Chart.NodeColor); err != nil {
		return opts, fmt.Errorf("node color: %w", err)
	}
	if opts.Labels.Kind, err = parseLabelKind(f.Chart.Labels); err != nil {
		return opts, err
	}
	if opts.Labels.Color, err = ParseColor(f.Chart.LabelColor); err != nil {
		return opts, fmt.Errorf("label color: %w", err)
	}
	opts.Labels.Size = f.Chart.LabelSize
	opts.Labels.Locale = language.English
	if f.Chart.Locale != "" {
		if opts.Labels.Locale, err = language.Parse(f.Chart.Locale); err != nil {
			return opts, fmt.Errorf("locale: %w", err)
		}
	}
	return opts, nil
}

// NewChart validates the file and returns the chart it describes.
func (f File) NewChart() (*chart.Chart, error) {
	cfg, err := f.GraphConfig()
	if err != nil {
		return nil, err
	}
	opts, err := f.Options()
	if err != nil {
		return nil, err
	}
	if len(f.Sections) == 0 {
		return nil, errors.New("no sections")
	}
	sections := make([]chart.Section, len(f.Sections))
	for i, entry := range f.Sections {
		if len(entry.Colors) == 0 {
			return nil, fmt.Errorf("section %d: missing colors", i)
		}
		sections[i].Value = entry.Value
		for _, s := range entry.Colors {
			c, err := ParseColor(s)
			if err != nil {
				return nil, fmt.Errorf("section %d: %w", i, err)
			}
			sections[i].Colors = append(sections[i].Colors, c)
		}
	}
	return chart.New(cfg, sections, opts), nil
}

// Animator returns the animation settings.
func (f File) Animator() (chart.Animator, error) {
	anim := chart.Animator{Duration: f.Render.Duration, Sequential: f.Render.Sequential}
	switch strings.ToLower(f.Render.Easing) {
	case "", "decelerate":
		anim.Easing = chart.Decelerate
	case "linear":
		anim.Easing = chart.Linear
	default:
		return anim, fmt.Errorf("unknown easing %q", f.Render.Easing)
	}
	return anim, nil
}

// FrameCount returns the number of frames of an animation.
func (f File) FrameCount() int {
	if f.Render.Frames > 0 {
		return f.Render.Frames
	}
	return chart.Animator{Duration: f.Render.Duration}.FrameCount(f.Render.FPS)
}

// Background returns the color used to clear images.
func (f File) Background() (color.NRGBA, error) {
	c, err := ParseColor(f.Render.Background)
	if err != nil {
		return c, fmt.Errorf("background: %w", err)
	}
	return c, nil
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
}

func parseCapStyle(s string) (graph.CapStyle, error) {
	switch normalize(s) {
	case "", "butt":
		return graph.CapButt, nil
	case "round":
		return graph.CapRound, nil
	case "square":
		return graph.CapSquare, nil
	}
	return 0, fmt.Errorf("unknown cap style %q", s)
}

func parseDirection(s string) (graph.AnimationDirection, error) {
	switch normalize(s) {
	case "", "clockwise":
		return graph.Clockwise, nil
	case "counter_clockwise", "counterclockwise":
		return graph.CounterClockwise, nil
	}
	return 0, fmt.Errorf("unknown animation direction %q", s)
}

func parseGradientType(s string) (graph.GradientType, error) {
	switch normalize(s) {
	case "", "none":
		return graph.GradientNone, nil
	case "sweep":
		return graph.GradientSweep, nil
	}
	return 0, fmt.Errorf("unknown gradient type %q", s)
}

func parseGradientFill(s string) (graph.GradientFill, error) {
	switch normalize(s) {
	case "", "whole":
		return graph.FillWhole, nil
	case "section":
		return graph.FillSection, nil
	}
	return 0, fmt.Errorf("unknown gradient fill %q", s)
}

func parseLabelKind(s string) (chart.LabelKind, error) {
	switch normalize(s) {
	case "", "none":
		return chart.LabelNone, nil
	case "percent":
		return chart.LabelPercent, nil
	}
	return 0, fmt.Errorf("unknown label kind %q", s)
}
