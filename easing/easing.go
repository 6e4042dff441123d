// Package easing holds the curves shared by every effect machine. All curves
// map a progress value in [0,1] to an output in [0,1].
package easing

import (
	"time"

	"github.com/tanema/gween/ease"
)

// Func maps progress in [0,1] to an eased value.
type Func func(p float64) float64

// OutCubic is 1-(1-p)^3: fast start, decelerating toward the end.
// Computed in float64 so knockback math stays exact at the sample points
// clients compare against.
func OutCubic(p float64) float64 {
	inv := 1 - p
	return 1 - inv*inv*inv
}

func Linear(p float64) float64 { return p }

// Triangle ramps 0 -> 1 over the first half and back to 0 over the second.
func Triangle(p float64) float64 {
	if p < 0.5 {
		return p * 2
	}
	return 2 - p*2
}

// FromTween adapts a gween curve (float32, begin/change/duration form) to a
// unit-range Func.
func FromTween(fn ease.TweenFunc) Func {
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}

// Progress returns elapsed/duration clamped to [0,1]. A non-positive
// duration counts as already complete.
func Progress(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	return Clamp01(float64(elapsed) / float64(duration))
}

func Clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
