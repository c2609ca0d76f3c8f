package geom

import "math"

// ellipseSegments is the number of edges used to approximate an ellipse.
const ellipseSegments = 48

// Subpath is one polygon or polyline of an outline.
type Subpath struct {
	Points []Vec
	Closed bool
}

// Outline is a planar shape defined on the unit square [0,1]x[0,1].
// Outlines are immutable once built and may be shared between items.
type Outline struct {
	Subpaths []Subpath
}

// Shape is an outline placed in world space.
type Shape struct {
	Subpaths []Subpath
}

func rectPath(x0, y0, x1, y1 float64) Subpath {
	return Subpath{
		Points: []Vec{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}},
		Closed: true,
	}
}

func linePath(x0, y0, x1, y1 float64) Subpath {
	return Subpath{Points: []Vec{{x0, y0}, {x1, y1}}}
}

// BoxOutline is the full unit square, used when no category outline applies.
func BoxOutline() Outline {
	return Outline{Subpaths: []Subpath{rectPath(0, 0, 1, 1)}}
}

// ChairOutline is a back rectangle over a seat rectangle.
func ChairOutline() Outline {
	return Outline{Subpaths: []Subpath{
		rectPath(0.2, 0, 0.8, 0.3), // back
		rectPath(0, 0.3, 1, 1),     // seat
	}}
}

// TableOutline is a top with two legs.
func TableOutline() Outline {
	const leg = 0.1
	return Outline{Subpaths: []Subpath{
		rectPath(0, 0, 1, 0.8),
		rectPath(0, 0.8, leg, 1),
		rectPath(1-leg, 0.8, 1, 1),
	}}
}

// RoundTableOutline is an ellipse inscribed in the unit square.
func RoundTableOutline() Outline {
	pts := make([]Vec, ellipseSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts[i] = Vec{X: 0.5 + 0.5*math.Cos(a), Y: 0.5 + 0.5*math.Sin(a)}
	}
	return Outline{Subpaths: []Subpath{{Points: pts, Closed: true}}}
}

// SofaOutline is a back, a seat and two arms.
func SofaOutline() Outline {
	return Outline{Subpaths: []Subpath{
		rectPath(0, 0, 1, 0.4),
		rectPath(0.1, 0.4, 0.9, 1),
		rectPath(0, 0, 0.1, 1),
		rectPath(0.9, 0, 1, 1),
	}}
}

// BedOutline is a frame, a headboard and three mattress lines.
func BedOutline() Outline {
	return Outline{Subpaths: []Subpath{
		rectPath(0, 0, 1, 1),
		rectPath(0, 0, 1, 0.2),
		linePath(0.1, 0.3, 0.9, 0.3),
		linePath(0.1, 0.6, 0.9, 0.6),
		linePath(0.1, 0.9, 0.9, 0.9),
	}}
}

// WorldShape scales the outline from the unit square to bounds, translates it to
// the bounds origin and rotates it by rotation degrees about the bounds centre.
// Rendering and hit queries must both go through this function.
func WorldShape(o Outline, bounds Rect, rotation float64) Shape {
	t := Transform{
		TranslateX: bounds.Min.X,
		TranslateY: bounds.Min.Y,
		ScaleX:     bounds.Size.W,
		ScaleY:     bounds.Size.H,
	}
	center := bounds.Center()

	out := Shape{Subpaths: make([]Subpath, len(o.Subpaths))}
	for i, sp := range o.Subpaths {
		pts := make([]Vec, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = RotateAbout(t.Apply(p), center, rotation)
		}
		out.Subpaths[i] = Subpath{Points: pts, Closed: sp.Closed}
	}
	return out
}

// Bounds returns the axis-aligned bounding box of the shape.
func (s Shape) Bounds() Rect {
	first := true
	var min, max Vec
	for _, sp := range s.Subpaths {
		for _, p := range sp.Points {
			if first {
				min, max = p, p
				first = false
				continue
			}
			min.X = math.Min(min.X, p.X)
			min.Y = math.Min(min.Y, p.Y)
			max.X = math.Max(max.X, p.X)
			max.Y = math.Max(max.Y, p.Y)
		}
	}
	return Rect{Min: min, Size: Size{W: max.X - min.X, H: max.Y - min.Y}}
}

// Map applies f to every point of the shape, returning a new shape.
func (s Shape) Map(f func(Vec) Vec) Shape {
	out := Shape{Subpaths: make([]Subpath, len(s.Subpaths))}
	for i, sp := range s.Subpaths {
		pts := make([]Vec, len(sp.Points))
		for j, p := range sp.Points {
			pts[j] = f(p)
		}
		out.Subpaths[i] = Subpath{Points: pts, Closed: sp.Closed}
	}
	return out
}
