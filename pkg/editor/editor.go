// Package editor turns pointer and keyboard input into edits of a scene.
//
// A Controller owns the scene, the view and the undo history. It is not
// safe for concurrent use; call it from the goroutine that delivers input.
package editor

import (
	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/history"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/view"
)

// RotateSnap is the angle step used while the snap modifier is held.
const RotateSnap = 45.0

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for gesture and history events.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithHistoryLimit caps the undo depth. 0 keeps everything.
func WithHistoryLimit(n int) Option {
	return func(c *Controller) { c.history = history.New(n) }
}

// WithGrid sets the snap cell and whether snapping starts enabled.
func WithGrid(size float64, snap bool) Option {
	return func(c *Controller) {
		if size > 0 {
			c.view.Grid = size
		}
		c.view.Snap = snap
	}
}

// session is the state of the gesture in progress.
type session struct {
	mode   Mode
	target string

	anchor geom.Vec // world point of the previous event
	screen geom.Vec // screen point of the previous event

	before   []scene.Item
	modified bool

	// Unsnapped values so that sub-cell steps still add up.
	pos  geom.Vec
	size geom.Size
	rot  float64
}

// Controller is the interaction state machine.
type Controller struct {
	scene   *scene.Scene
	view    *view.View
	catalog *catalog.Catalog
	history *history.Manager
	log     *zap.Logger

	sess         session
	refitPending bool
}

// New creates a controller for an empty room. A nil catalog selects the
// built-in one.
func New(cat *catalog.Catalog, room scene.Room, opts ...Option) *Controller {
	if cat == nil {
		cat = catalog.Default()
	}
	c := &Controller{
		scene:   scene.New(room),
		view:    view.New(),
		catalog: cat,
		history: history.New(0),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Scene() *scene.Scene       { return c.scene }
func (c *Controller) View() *view.View          { return c.view }
func (c *Controller) Catalog() *catalog.Catalog { return c.catalog }
func (c *Controller) History() *history.Manager { return c.history }
func (c *Controller) Mode() Mode                { return c.sess.mode }

// Selected returns a copy of the selected item.
func (c *Controller) Selected() (scene.Item, bool) {
	if it := c.scene.Selected(); it != nil {
		return *it, true
	}
	return scene.Item{}, false
}

// commit records before as the state preceding the latest edit.
func (c *Controller) commit(before []scene.Item, what string) {
	c.history.Commit(before)
	undo, _ := c.history.Depth()
	c.log.Debug("history commit", zap.String("edit", what), zap.Int("depth", undo))
}

// edit runs f against the selected item and commits when f reports a change.
// It returns false when nothing is selected or a gesture is in progress.
func (c *Controller) edit(what string, f func(it *scene.Item) bool) bool {
	if c.sess.mode != Idle {
		return false
	}
	it := c.scene.Selected()
	if it == nil {
		return false
	}
	before := c.scene.Items()
	if f(it) {
		c.commit(before, what)
	}
	return true
}

// clampToRoom keeps an item of size s at p inside the room, per axis.
func (c *Controller) clampToRoom(p geom.Vec, s geom.Size) geom.Vec {
	room := c.view.RoomRect(c.scene.Room)
	ext := c.view.Extent(s)
	max := room.Max()
	return geom.Pt(
		clamp(p.X, room.Min.X, max.X-ext.W),
		clamp(p.Y, room.Min.Y, max.Y-ext.H),
	)
}

// clamp pins v to [lo, hi]; lo wins when the range is empty.
func clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
