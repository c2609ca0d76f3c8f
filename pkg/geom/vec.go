package geom

import "math"

// Vec represents a 2D point or vector.
type Vec struct {
	X float64
	Y float64
}

// Pt is shorthand for Vec{X: x, Y: y}.
func Pt(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (v Vec) Add(o Vec) Vec { return Vec{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec { return Vec{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec) Mul(s float64) Vec {
	return Vec{X: v.X * s, Y: v.Y * s}
}
func (v Vec) Div(s float64) Vec {
	return Vec{X: v.X / s, Y: v.Y / s}
}

// Angle returns the direction of v in radians.
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Size is a width/height pair.
type Size struct {
	W float64
	H float64
}

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	Min  Vec
	Size Size
}

// RectXYWH builds a Rect from corner and extent.
func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec{X: x, Y: y}, Size: Size{W: w, H: h}}
}

// Max returns the bottom-right corner.
func (r Rect) Max() Vec {
	return Vec{X: r.Min.X + r.Size.W, Y: r.Min.Y + r.Size.H}
}

// Center returns the centre of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.Min.X + r.Size.W/2, Y: r.Min.Y + r.Size.H/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	max := r.Max()
	return p.X >= r.Min.X && p.X <= max.X && p.Y >= r.Min.Y && p.Y <= max.Y
}

// ContainsRect reports whether o lies entirely inside r, with tolerance eps.
func (r Rect) ContainsRect(o Rect, eps float64) bool {
	rmax, omax := r.Max(), o.Max()
	return o.Min.X >= r.Min.X-eps && o.Min.Y >= r.Min.Y-eps &&
		omax.X <= rmax.X+eps && omax.Y <= rmax.Y+eps
}
