package editor

import (
	"math"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/hittest"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

// Press starts a gesture at screen point p. It returns true when the press
// asks for the context menu of the item now selected.
func (c *Controller) Press(p geom.Vec, b Button, mods Modifiers) (menu bool) {
	if c.sess.mode != Idle {
		return false
	}
	items := c.scene.Items()

	switch b {
	case ButtonMiddle:
		c.beginPan(p)
		return false
	case ButtonSecondary:
		if hit := hittest.ResolveBody(items, c.view, p); hit.Kind == hittest.Body {
			c.scene.Select(hit.ID)
			return true
		}
		c.beginPan(p)
		return false
	}

	hit := hittest.Resolve(items, c.view, p)
	var mode Mode
	switch hit.Kind {
	case hittest.RotateHandle:
		mode = Rotating
	case hittest.ResizeHandle:
		mode = Resizing
	case hittest.Body:
		mode = Dragging
	default:
		c.scene.ClearSelection()
		return false
	}

	c.scene.Select(hit.ID)
	it := items[hit.Index]
	c.sess = session{
		mode:   mode,
		target: hit.ID,
		anchor: c.view.ToWorld(p),
		screen: p,
		before: items,
		pos:    it.Pos,
		size:   it.Size,
		rot:    it.Rotation,
	}
	c.log.Debug("gesture start", zap.Stringer("mode", mode), zap.String("item", it.Name))
	return false
}

func (c *Controller) beginPan(p geom.Vec) {
	c.sess = session{mode: Panning, screen: p}
}

// Move continues the gesture in progress. It reports whether anything changed.
func (c *Controller) Move(p geom.Vec, mods Modifiers) bool {
	switch c.sess.mode {
	case Idle:
		return false
	case Panning:
		c.view.PanBy(p.Sub(c.sess.screen))
		c.sess.screen = p
		return true
	}

	it := c.scene.Item(c.sess.target)
	if it == nil {
		c.sess = session{}
		return false
	}
	cur := c.view.ToWorld(p)
	delta := cur.Sub(c.sess.anchor)
	old := *it

	switch c.sess.mode {
	case Dragging:
		c.moveBy(it, delta)
	case Resizing:
		c.resizeBy(it, c.view.WorldToSize(delta))
	case Rotating:
		c.rotateBy(it, cur, mods)
	}

	c.sess.anchor = cur
	c.sess.screen = p
	changed := *it != old
	if changed {
		c.sess.modified = true
	}
	return changed
}

func (c *Controller) moveBy(it *scene.Item, d geom.Vec) {
	acc := c.clampToRoom(c.sess.pos.Add(d), it.Size)
	c.sess.pos = acc
	it.Pos = c.clampToRoom(c.view.SnapPoint(acc), it.Size)
}

func (c *Controller) resizeBy(it *scene.Item, d geom.Vec) {
	s := geom.Size{
		W: math.Max(scene.MinItemSize, c.sess.size.W+d.X),
		H: math.Max(scene.MinItemSize, c.sess.size.H+d.Y),
	}
	c.sess.size = s
	it.Size = geom.Size{
		W: math.Max(scene.MinItemSize, c.view.SnapValue(s.W)),
		H: math.Max(scene.MinItemSize, c.view.SnapValue(s.H)),
	}
}

func (c *Controller) rotateBy(it *scene.Item, cur geom.Vec, mods Modifiers) {
	center := c.view.ItemBounds(*it).Center()
	sweep := geom.SweepDegrees(c.sess.anchor.Sub(center), cur.Sub(center))
	c.sess.rot = geom.NormalizeDegrees(c.sess.rot + sweep)
	if mods.Contain(ModShift) {
		it.Rotation = geom.SnapDegrees(c.sess.rot, RotateSnap)
	} else {
		it.Rotation = c.sess.rot
	}
}

// Release ends the gesture at p. A modified item is committed to history
// with the state from before the gesture began.
func (c *Controller) Release(p geom.Vec, mods Modifiers) {
	if c.sess.mode == Idle {
		return
	}
	if p != c.sess.screen {
		c.Move(p, mods)
	}
	if c.sess.mode != Panning && c.sess.modified {
		c.commit(c.sess.before, c.sess.mode.String())
	}
	c.sess = session{}
	if c.refitPending {
		c.refit()
	}
}

// Scroll zooms around p when Ctrl is held. dy > 0 scrolls down and zooms out.
func (c *Controller) Scroll(p geom.Vec, dy float64, mods Modifiers) bool {
	if !mods.Contain(ModCtrl) || dy == 0 {
		return false
	}
	factor := 1.1
	if dy > 0 {
		factor = 0.9
	}
	c.view.ZoomAt(p, factor)
	return true
}

// SelectAt selects the topmost item body under p, or clears the selection.
func (c *Controller) SelectAt(p geom.Vec) bool {
	hit := hittest.ResolveBody(c.scene.Items(), c.view, p)
	if hit.Kind != hittest.Body {
		c.scene.ClearSelection()
		return false
	}
	return c.scene.Select(hit.ID)
}
