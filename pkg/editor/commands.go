package editor

import (
	"image/color"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

// Drop places a new instance of the named template at screen point p and
// selects it. It returns false for an unknown template or while a gesture
// is in progress.
func (c *Controller) Drop(name string, p geom.Vec) bool {
	if c.sess.mode != Idle || c.catalog == nil {
		return false
	}
	tpl, ok := c.catalog.Lookup(name)
	if !ok {
		c.log.Debug("drop rejected", zap.String("template", name))
		return false
	}
	before := c.scene.Items()
	it := scene.NewItem(tpl, c.view.SnapPoint(c.view.ToWorld(p)))
	c.scene.Add(it)
	c.scene.Select(it.ID)
	c.commit(before, "drop")
	c.log.Debug("dropped", zap.String("template", name), zap.Float64("x", it.Pos.X), zap.Float64("y", it.Pos.Y))
	return true
}

// ApplyColor recolors the selected item.
func (c *Controller) ApplyColor(col color.NRGBA) bool {
	return c.edit("color", func(it *scene.Item) bool {
		if it.Color == col {
			return false
		}
		it.Color = col
		return true
	})
}

// Rotate90 turns the selected item a quarter turn clockwise.
func (c *Controller) Rotate90() bool {
	return c.edit("rotate", func(it *scene.Item) bool {
		it.Rotate(90)
		return true
	})
}

// DeleteSelected removes the selected item. It is ignored during a gesture.
func (c *Controller) DeleteSelected() bool {
	id := c.scene.SelectedID()
	if id == "" || c.sess.mode != Idle {
		return false
	}
	before := c.scene.Items()
	c.scene.Remove(id)
	c.commit(before, "delete")
	return true
}

// ApplyAction runs a context-menu action. col is used by ActionChangeColor.
func (c *Controller) ApplyAction(a Action, col color.NRGBA) bool {
	if c.sess.mode != Idle {
		return false
	}
	switch a {
	case ActionDelete:
		return c.DeleteSelected()
	case ActionRotate90:
		return c.Rotate90()
	case ActionChangeColor:
		return c.ApplyColor(col)
	}
	return false
}

// Nudge moves the selected item by d world units, clamped to the room.
func (c *Controller) Nudge(d geom.Vec) bool {
	return c.edit("nudge", func(it *scene.Item) bool {
		p := c.clampToRoom(it.Pos.Add(d), it.Size)
		if p == it.Pos {
			return false
		}
		it.Pos = p
		return true
	})
}

// Undo restores the previous state. It is ignored during a gesture.
func (c *Controller) Undo() bool {
	if c.sess.mode != Idle {
		return false
	}
	prev, ok := c.history.Undo(c.scene.Items())
	if !ok {
		return false
	}
	c.scene.Replace(prev)
	c.log.Debug("undo", zap.Int("items", len(prev)))
	return true
}

// Redo re-applies the last undone state.
func (c *Controller) Redo() bool {
	if c.sess.mode != Idle {
		return false
	}
	next, ok := c.history.Redo(c.scene.Items())
	if !ok {
		return false
	}
	c.scene.Replace(next)
	c.log.Debug("redo", zap.Int("items", len(next)))
	return true
}

// ToggleGrid flips grid snapping and returns the new state.
func (c *Controller) ToggleGrid() bool {
	c.view.Snap = !c.view.Snap
	return c.view.Snap
}

// SetSnap enables or disables grid snapping.
func (c *Controller) SetSnap(on bool) { c.view.Snap = on }

// ResetView restores zoom 1 and no pan.
func (c *Controller) ResetView() { c.view.Reset() }

// ZoomCentered zooms about the centre of the canvas.
func (c *Controller) ZoomCentered(factor float64) {
	cv := c.view.Canvas
	c.view.ZoomAt(geom.Pt(cv.W/2, cv.H/2), factor)
}

// Key handles a key press. It reports whether the key was consumed.
func (c *Controller) Key(k Key, mods Modifiers) bool {
	if mods.Contain(ModCtrl) {
		switch k {
		case KeyZ:
			if mods.Contain(ModShift) {
				return c.Redo()
			}
			return c.Undo()
		case KeyY:
			return c.Redo()
		case KeyG:
			c.ToggleGrid()
			return true
		case Key0:
			c.ResetView()
			return true
		case KeyPlus:
			c.ZoomCentered(1.1)
			return true
		case KeyMinus:
			c.ZoomCentered(0.9)
			return true
		}
		return false
	}

	if c.sess.mode != Idle || c.scene.Selected() == nil {
		return false
	}
	step := 1.0
	if mods.Contain(ModShift) {
		step = c.view.Grid
	}
	switch k {
	case KeyLeft:
		return c.Nudge(geom.Pt(-step, 0))
	case KeyRight:
		return c.Nudge(geom.Pt(step, 0))
	case KeyUp:
		return c.Nudge(geom.Pt(0, -step))
	case KeyDown:
		return c.Nudge(geom.Pt(0, step))
	case KeyR:
		return c.Rotate90()
	case KeyDelete, KeyBackspace:
		return c.DeleteSelected()
	}
	return false
}

// SetCanvas records the canvas size and fits the room to it.
func (c *Controller) SetCanvas(size geom.Size) {
	if size == c.view.Canvas {
		return
	}
	c.view.Canvas = size
	c.refit()
}

// SetRoomDimensions assigns new room dimensions in the room's unit,
// clamped to the allowed range, and fits the room to the canvas again.
func (c *Controller) SetRoomDimensions(w, l, h float64) {
	c.scene.Room.SetDimensions(w, l, h)
	c.refit()
}

// SetUnit converts the room to unit u.
func (c *Controller) SetUnit(u scene.Unit) {
	c.scene.Room.ConvertTo(u)
	c.refit()
}

// refit fits the room to the canvas. Items and history snapshots are moved
// with the room origin and scale so each item keeps its place on the floor.
// During a gesture the fit waits for Release.
func (c *Controller) refit() {
	if c.sess.mode != Idle {
		c.refitPending = true
		return
	}
	c.refitPending = false

	origin, scale := c.view.Origin, c.view.Scale
	c.view.Fit(c.scene.Room, c.view.Canvas)
	if c.view.Origin == origin && c.view.Scale == scale {
		return
	}
	k := c.view.Scale / scale
	place := func(it *scene.Item) {
		it.Pos = c.view.Origin.Add(it.Pos.Sub(origin).Mul(k))
	}
	items := c.scene.Items()
	for i := range items {
		place(&items[i])
	}
	c.scene.Replace(items)
	c.history.Rewrite(place)
	c.log.Debug("room refitted", zap.Float64("scale", c.view.Scale), zap.Int("items", len(items)))
}

// ApplyPreset sets the room surface colors from a named preset.
func (c *Controller) ApplyPreset(name string) bool {
	p, ok := scene.LookupPreset(name)
	if !ok {
		return false
	}
	c.scene.Room.ApplyPreset(p)
	return true
}
