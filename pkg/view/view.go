// Package view maps between screen pixels and world units.
//
// World units are unzoomed pixels: the room is laid out once at a fixed
// scale (pixels per metre) and then panned and zoomed as a whole.
package view

import (
	"math"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

const (
	MinZoom = 0.1
	MaxZoom = 5.0

	// DefaultScale is used until the canvas size is known.
	DefaultScale = 30.0
	// DefaultGrid is the snap cell in world units.
	DefaultGrid = 20.0
	// Padding is kept around the room when fitting it to the canvas.
	Padding = 50.0
)

// View is the pan/zoom state of the canvas plus the room placement.
type View struct {
	Zoom float64
	Pan  geom.Vec

	// Scale is pixels per metre at zoom 1.
	Scale float64
	// Origin is the room's top-left corner in world units.
	Origin geom.Vec
	Canvas geom.Size

	Snap bool
	Grid float64
}

// New returns a view with snapping on and the default scale.
func New() *View {
	return &View{
		Zoom:   1,
		Scale:  DefaultScale,
		Origin: geom.Pt(Padding, Padding),
		Snap:   true,
		Grid:   DefaultGrid,
	}
}

// ToWorld converts a screen point to world units.
func (v *View) ToWorld(p geom.Vec) geom.Vec {
	return p.Sub(v.Pan).Div(v.Zoom)
}

// ToScreen converts a world point to screen pixels.
func (v *View) ToScreen(w geom.Vec) geom.Vec {
	return w.Mul(v.Zoom).Add(v.Pan)
}

// RectToScreen maps an axis-aligned world rectangle to screen space.
func (v *View) RectToScreen(r geom.Rect) geom.Rect {
	return geom.Rect{
		Min:  v.ToScreen(r.Min),
		Size: geom.Size{W: r.Size.W * v.Zoom, H: r.Size.H * v.Zoom},
	}
}

// ZoomAt multiplies the zoom by factor while keeping the world point under
// cursor at the same screen position.
func (v *View) ZoomAt(cursor geom.Vec, factor float64) {
	z := math.Max(MinZoom, math.Min(MaxZoom, v.Zoom*factor))
	if z == v.Zoom {
		return
	}
	ratio := z / v.Zoom
	v.Pan = cursor.Sub(cursor.Sub(v.Pan).Mul(ratio))
	v.Zoom = z
}

// PanBy moves the view by a screen-space delta.
func (v *View) PanBy(d geom.Vec) {
	v.Pan = v.Pan.Add(d)
}

// Reset restores zoom 1 and no pan.
func (v *View) Reset() {
	v.Zoom = 1
	v.Pan = geom.Vec{}
}

// Fit picks the scale so the room fills the canvas minus padding, and
// centres the room. An empty canvas keeps the default scale.
func (v *View) Fit(room scene.Room, canvas geom.Size) {
	v.Canvas = canvas
	w, l, _ := room.Meters()
	if canvas.W <= 2*Padding || canvas.H <= 2*Padding || w <= 0 || l <= 0 {
		v.Scale = DefaultScale
		v.Origin = geom.Pt(Padding, Padding)
		return
	}
	v.Scale = math.Min((canvas.W-2*Padding)/w, (canvas.H-2*Padding)/l)
	v.Origin = geom.Pt((canvas.W-w*v.Scale)/2, (canvas.H-l*v.Scale)/2)
}

// RoomRect is the room floor in world units.
func (v *View) RoomRect(room scene.Room) geom.Rect {
	w, l, _ := room.Meters()
	return geom.Rect{Min: v.Origin, Size: geom.Size{W: w * v.Scale, H: l * v.Scale}}
}

// Extent converts an item size in centimetres to world units.
func (v *View) Extent(s geom.Size) geom.Size {
	return geom.Size{W: s.W * v.Scale / 100, H: s.H * v.Scale / 100}
}

// ItemBounds is the unrotated world rectangle of an item.
func (v *View) ItemBounds(it scene.Item) geom.Rect {
	return geom.Rect{Min: it.Pos, Size: v.Extent(it.Size)}
}

// SnapValue rounds x to the nearest grid multiple when snapping is on.
func (v *View) SnapValue(x float64) float64 {
	if !v.Snap || v.Grid <= 0 {
		return x
	}
	return math.Round(x/v.Grid) * v.Grid
}

// SnapPoint snaps both axes.
func (v *View) SnapPoint(p geom.Vec) geom.Vec {
	return geom.Pt(v.SnapValue(p.X), v.SnapValue(p.Y))
}

// WorldToSize converts a world-unit pointer delta into a centimetre size
// delta: d * 100 / (scale * zoom).
func (v *View) WorldToSize(d geom.Vec) geom.Vec {
	return d.Mul(100 / (v.Scale * v.Zoom))
}
