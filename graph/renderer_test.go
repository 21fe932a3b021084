package graph

import (
	"image/color"
	"math"
	"testing"

	"github.com/benoitkugler/radialgraph/graphpath"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"golang.org/x/image/math/fixed"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}

	square = graphpath.Rect{Left: 0, Top: 0, Right: 100, Bottom: 100}

	approx = cmpopts.EquateApprox(0, 1e-9)
)

func newState(colors []color.NRGBA, start, sweep, length float64) *SectionState {
	s := &SectionState{Color: colors, StartPosition: start, SweepSize: sweep}
	s.SetLength(length)
	return s
}

func stopOffsets(stops []ColorStop) []float64 {
	out := make([]float64, len(stops))
	for i, s := range stops {
		out[i] = s.Offset
	}
	return out
}

func stopColors(stops []ColorStop) []color.NRGBA {
	out := make([]color.NRGBA, len(stops))
	for i, s := range stops {
		out[i] = s.Color
	}
	return out
}

func TestInsetBounds(t *testing.T) {
	r := NewRenderer(GraphConfig{StrokeWidth: 10})
	got := r.InsetBounds(square)
	if want := (graphpath.Rect{Left: 5, Top: 5, Right: 95, Bottom: 95}); got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGeneratePositions(t *testing.T) {
	for _, tc := range []struct {
		n            int
		start, sweep float64
		fill         GradientFill
		want         []float64
	}{
		{1, 0.3, 0.2, FillWhole, []float64{0.3}},
		{2, 0, 0.5, FillWhole, []float64{0, 1}},
		{3, 0.1, 0.5, FillWhole, []float64{0.1, 0.6, 1.1}},
		{5, 0, 1, FillWhole, []float64{0, 0.25, 0.5, 0.75, 1}},
		{3, 0.1, 0.5, FillSection, []float64{0.1, 0.35, 0.6}},
		{2, 0.25, 0.5, FillSection, []float64{0.25, 0.75}},
		{1, 0.4, 0.5, FillSection, []float64{0.4}},
	} {
		state := &SectionState{StartPosition: tc.start, SweepSize: tc.sweep}
		got := generatePositions(state, tc.n, tc.fill)
		if diff := cmp.Diff(tc.want, got, approx); diff != "" {
			t.Errorf("n=%d start=%g fill=%s: (-want +got)\n%s", tc.n, tc.start, tc.fill, diff)
		}
	}
}

func TestSectionGapScalesWithSweep(t *testing.T) {
	state := &SectionState{StartPosition: 0.2, SweepSize: 0.3}
	whole := generatePositions(state, 4, FillWhole)
	section := generatePositions(state, 4, FillSection)
	for i := 1; i < 4; i++ {
		gw, gs := whole[i]-whole[i-1], section[i]-section[i-1]
		if math.Abs(gs-gw*state.SweepSize) > 1e-9 {
			t.Errorf("gap %d: expected %g, got %g", i, gw*state.SweepSize, gs)
		}
	}
}

func TestBuildStrokePaint(t *testing.T) {
	r := NewRenderer(GraphConfig{StrokeWidth: 8, CapStyle: CapRound})
	state := newState([]color.NRGBA{green, blue}, 0.1, 0.4, 120)
	state.CurrentProgress = -30

	paint := r.BuildStrokePaint(state, square)
	if state.Paint != paint {
		t.Fatal("paint should be stored in the state")
	}
	if paint.Style != Stroke || paint.StrokeWidth != 8 || paint.Cap != CapRound || !paint.AntiAlias {
		t.Errorf("unexpected stroke settings %+v", paint)
	}
	want := &DashEffect{Intervals: []float64{120, 120}, Phase: 90}
	if diff := cmp.Diff(want, paint.Dash); diff != "" {
		t.Errorf("dash (-want +got)\n%s", diff)
	}
	if paint.Shader != nil || paint.Color != green {
		t.Errorf("expected plain first color, got %v %v", paint.Color, paint.Shader)
	}
}

func TestSweepGradientSection(t *testing.T) {
	r := NewRenderer(GraphConfig{StrokeWidth: 10, CapStyle: CapRound, GradientType: GradientSweep, GradientFill: FillSection})
	state := newState([]color.NRGBA{red, blue}, 0.25, 0.5, 100)
	paint := r.BuildStrokePaint(state, square)
	if paint.Shader == nil {
		t.Fatal("expected a sweep shader")
	}
	if diff := cmp.Diff([]float64{0.25, 0.75}, stopOffsets(paint.Shader.Stops), approx); diff != "" {
		t.Errorf("stops (-want +got)\n%s", diff)
	}
	if diff := cmp.Diff([]color.NRGBA{red, blue}, stopColors(paint.Shader.Stops)); diff != "" {
		t.Errorf("colors (-want +got)\n%s", diff)
	}
	if c := paint.Shader.Center; c.X != 50 || c.Y != 50 {
		t.Errorf("unexpected center %v", c)
	}
	if paint.Shader.Rotation != StartingRotation {
		t.Errorf("unexpected rotation %g", paint.Shader.Rotation)
	}
}

func TestSingleColorIsSolid(t *testing.T) {
	for _, cfg := range []GraphConfig{
		{StrokeWidth: 4},
		{StrokeWidth: 4, GradientType: GradientSweep},
		{StrokeWidth: 4, GradientType: GradientSweep, GradientFill: FillSection, CapStyle: CapSquare},
	} {
		state := newState([]color.NRGBA{red}, 0, 0.3, 10)
		paint := NewRenderer(cfg).BuildStrokePaint(state, square)
		if paint.Shader != nil {
			t.Errorf("%+v: unexpected shader", cfg)
		}
		if paint.Color != red {
			t.Errorf("%+v: expected red, got %v", cfg, paint.Color)
		}
	}
}

func TestCapCorrection(t *testing.T) {
	for _, tc := range []struct {
		cap          CapStyle
		fill         GradientFill
		start, sweep float64
		colors       []color.NRGBA
		wantOffsets  []float64
		wantColors   []color.NRGBA
	}{
		{ // triggered, last stop clamped
			CapRound, FillWhole, 0, 0.5, []color.NRGBA{red, blue},
			[]float64{0, 0.98, 0.98}, []color.NRGBA{red, blue, red},
		},
		{ // triggered, last stop below the limit
			CapSquare, FillSection, 0, 0.5, []color.NRGBA{red, green, blue},
			[]float64{0, 0.25, 0.5, 0.98}, []color.NRGBA{red, green, blue, red},
		},
		{ // butt caps don't overflow
			CapButt, FillWhole, 0, 0.5, []color.NRGBA{red, blue},
			[]float64{0, 1}, []color.NRGBA{red, blue},
		},
		{ // not at the start of the circle
			CapRound, FillSection, 0.1, 0.5, []color.NRGBA{red, blue},
			[]float64{0.1, 0.6}, []color.NRGBA{red, blue},
		},
	} {
		r := NewRenderer(GraphConfig{StrokeWidth: 2, CapStyle: tc.cap, GradientType: GradientSweep, GradientFill: tc.fill})
		paint := r.BuildStrokePaint(newState(tc.colors, tc.start, tc.sweep, 50), square)
		if diff := cmp.Diff(tc.wantOffsets, stopOffsets(paint.Shader.Stops), approx); diff != "" {
			t.Errorf("cap %s start %g: offsets (-want +got)\n%s", tc.cap, tc.start, diff)
		}
		if diff := cmp.Diff(tc.wantColors, stopColors(paint.Shader.Stops)); diff != "" {
			t.Errorf("cap %s start %g: colors (-want +got)\n%s", tc.cap, tc.start, diff)
		}
	}
}

func TestUpdatePhasePaint(t *testing.T) {
	r := NewRenderer(GraphConfig{StrokeWidth: 6, CapStyle: CapRound, GradientType: GradientSweep})
	state := newState([]color.NRGBA{red, blue}, 0, 0.5, 80)

	r.UpdatePhasePaint(state) // unbuilt: nothing to patch
	if state.Paint != nil {
		t.Fatal("update should not build the paint")
	}

	paint := r.BuildStrokePaint(state, square)
	shader := paint.Shader
	for _, progress := range []float64{0, -10, -80, 35.5, -1000} {
		state.CurrentProgress = progress
		r.UpdatePhasePaint(state)
		if state.Paint != paint {
			t.Fatal("paint should be patched in place")
		}
		if got, want := paint.Dash.Phase, 80+progress; got != want {
			t.Errorf("expected phase %g, got %g", want, got)
		}
		if diff := cmp.Diff([]float64{80, 80}, paint.Dash.Intervals); diff != "" {
			t.Errorf("intervals (-want +got)\n%s", diff)
		}
		if paint.Shader != shader || paint.Cap != CapRound || paint.StrokeWidth != 6 {
			t.Error("only the dash should change")
		}
	}
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected a panic", name)
		}
	}()
	f()
}

func TestContractViolations(t *testing.T) {
	r := NewRenderer(GraphConfig{StrokeWidth: 2})
	expectPanic(t, "missing length", func() {
		r.BuildStrokePaint(&SectionState{Color: []color.NRGBA{red}}, square)
	})
	expectPanic(t, "missing length on update", func() {
		r.UpdatePhasePaint(&SectionState{Color: []color.NRGBA{red}})
	})
	expectPanic(t, "empty colors", func() {
		r.BuildStrokePaint(newState(nil, 0, 1, 10), square)
	})
	expectPanic(t, "empty colors with gradient", func() {
		NewRenderer(GraphConfig{GradientType: GradientSweep}).BuildStrokePaint(newState(nil, 0, 1, 10), square)
	})
}

func endPoint(op graphpath.Operation) fixed.Point26_6 {
	switch op := op.(type) {
	case graphpath.CubicTo:
		return op[2]
	case graphpath.LineTo:
		return fixed.Point26_6(op)
	}
	return fixed.Point26_6{}
}

func TestBuildArcPath(t *testing.T) {
	const tol = 0.1
	for _, dir := range []AnimationDirection{Clockwise, CounterClockwise} {
		r := NewRenderer(GraphConfig{StrokeWidth: 10, AnimationDirection: dir})
		path := r.BuildArcPath(square)

		x, y, ok := path.FirstPoint()
		if !ok {
			t.Fatal("empty path")
		}
		if math.Abs(x-50) > tol || math.Abs(y-5) > tol {
			t.Errorf("%s: expected to start at the top (50, 5), got (%g, %g)", dir, x, y)
		}

		b := path.Bounds()
		if math.Abs(b.Left-5) > tol || math.Abs(b.Top-5) > tol || math.Abs(b.Right-95) > tol || math.Abs(b.Bottom-95) > tol {
			t.Errorf("%s: path should be inset by half the stroke width, got %v", dir, b)
		}

		second := endPoint(path[1])
		sx := float64(second.X) / 64
		if dir == Clockwise && sx <= 50 {
			t.Errorf("clockwise path should turn right from the top, got x=%g", sx)
		}
		if dir == CounterClockwise && sx >= 50 {
			t.Errorf("counter clockwise path should turn left from the top, got x=%g", sx)
		}

		if l, want := path.Length(), 2*math.Pi*45; math.Abs(l-want) > 0.5 {
			t.Errorf("%s: expected length %g, got %g", dir, want, l)
		}
	}
}

func TestBuildSectionPath(t *testing.T) {
	r := NewRenderer(GraphConfig{StrokeWidth: 10})
	state := &SectionState{StartPosition: 0.25, SweepSize: 0.5}
	path := r.BuildSectionPath(square, state)
	x, y, _ := path.FirstPoint()
	if math.Abs(x-95) > 0.1 || math.Abs(y-50) > 0.1 {
		t.Errorf("section should start at 3 o'clock, got (%g, %g)", x, y)
	}
	end := endPoint(path[len(path)-1])
	if ex, ey := float64(end.X)/64, float64(end.Y)/64; math.Abs(ex-5) > 0.1 || math.Abs(ey-50) > 0.1 {
		t.Errorf("section should end at 9 o'clock, got (%g, %g)", ex, ey)
	}
	if l, want := r.SectionLength(square, state), math.Pi*45; math.Abs(l-want) > 0.5 {
		t.Errorf("expected length %g, got %g", want, l)
	}
}

func TestSimplePaints(t *testing.T) {
	r := NewRenderer(GraphConfig{StrokeWidth: 3})
	fill := r.BuildFillPaint(blue)
	if fill.Style != Fill || fill.Color != blue || !fill.AntiAlias || fill.Shader != nil || fill.Dash != nil {
		t.Errorf("unexpected fill paint %+v", fill)
	}
	label := r.BuildLabelPaint(red, 14)
	if *label != (TextPaint{Color: red, Size: 14, AntiAlias: true}) {
		t.Errorf("unexpected label paint %+v", label)
	}
	if r.Opacity() != Opaque {
		t.Errorf("expected opaque, got %s", r.Opacity())
	}
}
