package gamemath

import "math"

// Vec is a 2D point or direction in world pixels.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec { return Vec{v.X + o.X, v.Y + o.Y} }

func (v Vec) Sub(o Vec) Vec { return Vec{v.X - o.X, v.Y - o.Y} }

func (v Vec) Scale(s float64) Vec { return Vec{v.X * s, v.Y * s} }

func (v Vec) Len() float64 { return math.Hypot(v.X, v.Y) }

// Lerp returns v + (to-v)*t.
func (v Vec) Lerp(to Vec, t float64) Vec {
	return Vec{v.X + (to.X-v.X)*t, v.Y + (to.Y-v.Y)*t}
}

// Normalize returns the unit vector along v, or fallback when v has no length.
func (v Vec) Normalize(fallback Vec) Vec {
	l := v.Len()
	if l == 0 {
		return fallback
	}
	return Vec{v.X / l, v.Y / l}
}

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// CenteredRect builds a W x H box centered on c.
func CenteredRect(c Vec, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// IntersectsCircle reports whether the circle (c, r) overlaps the box.
func (r Rect) IntersectsCircle(c Vec, radius float64) bool {
	nx := math.Max(r.X, math.Min(c.X, r.X+r.W))
	ny := math.Max(r.Y, math.Min(c.Y, r.Y+r.H))
	dx, dy := c.X-nx, c.Y-ny
	return dx*dx+dy*dy <= radius*radius
}

// Segment is the line from A to B.
type Segment struct {
	A, B Vec
}

// Dashes splits the line from a to b into dashes of length dash separated by
// gap, starting with a dash at a. The last dash is cut short at b.
func Dashes(a, b Vec, dash, gap float64) []Segment {
	length := b.Sub(a).Len()
	if length == 0 || dash <= 0 {
		return nil
	}
	gap = math.Max(gap, 0)
	dir := b.Sub(a).Scale(1 / length)

	var segs []Segment
	for d := 0.0; d < length; d += dash + gap {
		end := math.Min(d+dash, length)
		segs = append(segs, Segment{A: a.Add(dir.Scale(d)), B: a.Add(dir.Scale(end))})
	}
	return segs
}
