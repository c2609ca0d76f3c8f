package geom

import "math"

// Transform represents a 2D transformation (scale, then translate).
type Transform struct {
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
}

// Apply applies the transformation to a point.
func (t Transform) Apply(p Vec) Vec {
	return Vec{X: p.X*t.ScaleX + t.TranslateX, Y: p.Y*t.ScaleY + t.TranslateY}
}

// RotateAbout rotates p by deg degrees around c.
func RotateAbout(p, c Vec, deg float64) Vec {
	if deg == 0 {
		return p
	}
	x, y := rotate(p.X-c.X, p.Y-c.Y, deg)
	return Vec{X: x + c.X, Y: y + c.Y}
}

func rotate(x, y, deg float64) (float64, float64) {
	rad := deg * math.Pi / 180.0
	cos, sin := math.Cos(rad), math.Sin(rad)
	return x*cos - y*sin, x*sin + y*cos
}

// NormalizeDegrees maps any angle into [0, 360).
func NormalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -0.0000001 + 360 rounds to 360 in float64
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// SnapDegrees rounds deg to the nearest multiple of step and normalizes it.
func SnapDegrees(deg, step float64) float64 {
	if step <= 0 {
		return NormalizeDegrees(deg)
	}
	return NormalizeDegrees(math.Round(deg/step) * step)
}

// SweepDegrees returns the signed angle in degrees swept from a to b, in (-180, 180].
func SweepDegrees(a, b Vec) float64 {
	d := (b.Angle() - a.Angle()) * 180.0 / math.Pi
	for d > 180 {
		d -= 360
	}
	for d <= -180 {
		d += 360
	}
	return d
}
