package scene

import (
	"image/color"
	"math"
)

// Room dimension limits in metres.
const (
	MinWidth  = 2.0
	MaxWidth  = 15.0
	MinLength = 2.0
	MaxLength = 20.0
	MinHeight = 2.0
	MaxHeight = 4.0
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Room is the rectangular space furniture is placed into.
type Room struct {
	Width  float64
	Length float64
	Height float64
	Unit   Unit

	Walls   color.NRGBA
	Floor   color.NRGBA
	Ceiling color.NRGBA
}

// DefaultRoom returns a 4 x 5 x 2.8 m room with a light floor.
func DefaultRoom() Room {
	return Room{
		Width:   4.0,
		Length:  5.0,
		Height:  2.8,
		Unit:    Meters,
		Walls:   white,
		Floor:   mustHex("#F5F5F5"),
		Ceiling: white,
	}
}

// Limits is a closed interval per dimension.
type Limits struct {
	MinWidth, MaxWidth   float64
	MinLength, MaxLength float64
	MinHeight, MaxHeight float64
}

// LimitsFor returns the dimension limits expressed in unit u.
func LimitsFor(u Unit) Limits {
	f := factor(Meters, u)
	return Limits{
		MinWidth: MinWidth * f, MaxWidth: MaxWidth * f,
		MinLength: MinLength * f, MaxLength: MaxLength * f,
		MinHeight: MinHeight * f, MaxHeight: MaxHeight * f,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// SetDimensions assigns width, length and height clamped to the limits of
// the room's current unit.
func (r *Room) SetDimensions(w, l, h float64) {
	lim := LimitsFor(r.Unit)
	r.Width = clamp(w, lim.MinWidth, lim.MaxWidth)
	r.Length = clamp(l, lim.MinLength, lim.MaxLength)
	r.Height = clamp(h, lim.MinHeight, lim.MaxHeight)
}

// ConvertTo rescales the dimensions into unit u. Converting to the current
// unit leaves the room unchanged.
func (r *Room) ConvertTo(u Unit) {
	if r.Unit == u {
		return
	}
	f := factor(r.Unit, u)
	r.Width *= f
	r.Length *= f
	r.Height *= f
	r.Unit = u
}

// Meters returns width and length in metres regardless of the unit.
func (r Room) Meters() (w, l, h float64) {
	f := factor(r.Unit, Meters)
	return r.Width * f, r.Length * f, r.Height * f
}

// ApplyPreset copies the preset surface colors.
func (r *Room) ApplyPreset(p Preset) {
	r.Walls = p.Walls
	r.Floor = p.Floor
	r.Ceiling = p.Ceiling
}
