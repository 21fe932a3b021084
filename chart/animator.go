package chart

import (
	"math"
	"time"
)

// Easing maps the elapsed fraction of an animation
// to its progress, both in [0, 1].
type Easing func(t float64) float64

// Linear progresses at constant speed.
func Linear(t float64) float64 { return t }

// Decelerate starts fast and slows down at the end.
func Decelerate(t float64) float64 { return 1 - (1-t)*(1-t) }

// Animator drives the sections of a chart, from hidden to fully drawn.
// It only updates the progress of the states: drawing the chart
// afterwards only patches the dash phases.
type Animator struct {
	Duration time.Duration
	Easing   Easing // default to Decelerate
	// Sequential draws the sections one after the other,
	// instead of all at once.
	Sequential bool
}

// Seek sets the progress of every section of `c` for the
// given elapsed `fraction` of the animation.
// The chart must have been measured.
func (a Animator) Seek(c *Chart, fraction float64) {
	ease := a.Easing
	if ease == nil {
		ease = Decelerate
	}
	f := ease(math.Min(math.Max(fraction, 0), 1))

	var total float64
	for _, state := range c.states {
		total += state.SweepSize
	}
	for _, state := range c.states {
		length := *state.Length
		visible := f
		if a.Sequential {
			visible = 0
			if state.SweepSize > 0 {
				visible = math.Min(math.Max((f*total-state.StartPosition)/state.SweepSize, 0), 1)
			}
		}
		// a zero progress hides the section, -length shows all of it
		state.CurrentProgress = -visible * length
	}
}

// FrameCount returns the number of frames needed at the given rate,
// at least one.
func (a Animator) FrameCount(fps int) int {
	n := int(math.Round(a.Duration.Seconds() * float64(fps)))
	return max(n, 1)
}

// Frames returns `n` elapsed fractions evenly spaced in (0, 1].
// The empty first frame is skipped.
func (a Animator) Frames(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i+1) / float64(n)
	}
	return out
}
