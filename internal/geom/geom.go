// Package geom holds the 2D vector and axis-aligned box math shared by the
// simulation and the renderers. Screen coordinates: x grows right, y grows
// down, boxes are anchored at their top-left corner.
package geom

import "math"

// Vector is a position, displacement or direction.
type Vector struct {
	X, Y float64
}

func (v Vector) Add(o Vector) Vector {
	return Vector{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector) Sub(o Vector) Vector {
	return Vector{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// Len is the euclidean length.
func (v Vector) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns the unit vector with the same direction. It returns
// false for the zero vector, which has no direction.
func (v Vector) Normalize() (Vector, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vector{}, false
	}
	return Vector{X: v.X / l, Y: v.Y / l}, true
}

// Angle is atan2(y, x) in radians.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// FromAngle returns the unit vector pointing at angle.
func FromAngle(angle float64) Vector {
	return Vector{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Box is an axis-aligned rectangle.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox returns a w×h box whose centre is at c.
func NewBox(c Vector, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Middle is the centre point.
func (b Box) Middle() Vector {
	return Vector{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Origin is the top-left corner.
func (b Box) Origin() Vector {
	return Vector{X: b.X, Y: b.Y}
}

func (b Box) Size() Vector {
	return Vector{X: b.W, Y: b.H}
}

// Translate moves the box by d.
func (b Box) Translate(d Vector) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// CenterOn moves the box so its centre is at c.
func (b Box) CenterOn(c Vector) Box {
	b.X = c.X - b.W/2
	b.Y = c.Y - b.H/2
	return b
}

// Intersects reports whether b and other overlap once both are shrunk by
// threshold on every side. A larger threshold demands deeper overlap; with
// a threshold of zero, boxes that only share an edge do not intersect.
func (b Box) Intersects(other Box, threshold float64) bool {
	return b.X+b.W-threshold > other.X &&
		b.X+threshold < other.X+other.W &&
		b.Y+b.H-threshold > other.Y &&
		b.Y+threshold < other.Y+other.H
}

// ClampTo keeps the box inside [0, bounds.X] × [0, bounds.Y]. A box larger
// than the bounds on an axis is pinned to 0 on that axis.
func (b Box) ClampTo(bounds Vector) Box {
	b.X = Clamp(b.X, 0, math.Max(0, bounds.X-b.W))
	b.Y = Clamp(b.Y, 0, math.Max(0, bounds.Y-b.H))
	return b
}

// OriginWithin reports whether the top-left corner lies in
// [0, bounds.X] × [0, bounds.Y].
func (b Box) OriginWithin(bounds Vector) bool {
	return b.X >= 0 && b.X <= bounds.X && b.Y >= 0 && b.Y <= bounds.Y
}

// Clamp limits value to the range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
