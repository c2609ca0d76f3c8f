package editor

import (
	"fmt"
	"math"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/hittest"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/view"
)

// FrameItem is one item prepared for drawing.
type FrameItem struct {
	Item scene.Item

	// Shape is the rotated outline in world units; ScreenShape is the same
	// shape after the view transform.
	Shape       geom.Shape
	ScreenShape geom.Shape

	Bounds       geom.Rect
	ScreenBounds geom.Rect
	Selected     bool
}

// Frame is everything a renderer needs to draw the canvas once.
type Frame struct {
	Room       scene.Room
	RoomRect   geom.Rect
	RoomScreen geom.Rect
	View       view.View
	Mode       Mode

	// Items are in z-order, bottom first.
	Items    []FrameItem
	Selected string
	// Handles is set when an item is selected.
	Handles *hittest.HandleRects
	Info    string
}

// Frame builds the render export for the current state.
func (c *Controller) Frame() Frame {
	v := c.view
	f := Frame{
		Room:     c.scene.Room,
		RoomRect: v.RoomRect(c.scene.Room),
		View:     *v,
		Mode:     c.sess.mode,
		Selected: c.scene.SelectedID(),
		Info:     c.InfoText(),
	}
	f.RoomScreen = v.RectToScreen(f.RoomRect)

	items := c.scene.Items()
	f.Items = make([]FrameItem, len(items))
	for i, it := range items {
		b := v.ItemBounds(it)
		outline := it.Outline
		if outline == nil {
			o := geom.BoxOutline()
			outline = &o
		}
		shape := geom.WorldShape(*outline, b, it.Rotation)
		fi := FrameItem{
			Item:         it,
			Shape:        shape,
			ScreenShape:  shape.Map(v.ToScreen),
			Bounds:       b,
			ScreenBounds: v.RectToScreen(b),
			Selected:     it.ID == f.Selected,
		}
		if fi.Selected {
			h := hittest.Handles(fi.ScreenBounds)
			f.Handles = &h
		}
		f.Items[i] = fi
	}
	return f
}

// InfoText describes the selected item, or returns "" when none is selected.
func (c *Controller) InfoText() string {
	it := c.scene.Selected()
	if it == nil {
		return ""
	}
	return fmt.Sprintf("Position: (%d, %d) | Rotation: %.1f° | Size: %dx%d",
		int(math.Round(it.Pos.X)), int(math.Round(it.Pos.Y)),
		it.Rotation,
		int(math.Round(it.Size.W)), int(math.Round(it.Size.H)))
}

// Preview copies the room and items for the 3D preview renderer.
func (c *Controller) Preview() scene.Preview {
	p := c.scene.Preview()
	p.Origin = c.view.Origin
	p.Scale = c.view.Scale
	return p
}
