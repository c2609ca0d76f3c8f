// Package hittest resolves a screen point to the handle or item under it.
package hittest

import (
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/view"
)

const (
	// HandleSize is the side of a handle square in screen pixels.
	HandleSize = 8.0
	// RotateMargin is the gap between the item top and the rotate handle.
	RotateMargin = 5.0
)

// Kind classifies a hit.
type Kind int

const (
	Empty Kind = iota
	RotateHandle
	ResizeHandle
	Body
)

func (k Kind) String() string {
	switch k {
	case RotateHandle:
		return "rotate-handle"
	case ResizeHandle:
		return "resize-handle"
	case Body:
		return "body"
	default:
		return "empty"
	}
}

// Hit is the result of a query. ID is empty for Empty hits.
type Hit struct {
	Kind  Kind
	ID    string
	Index int
}

// HandleRects holds the screen rectangles of an item's handles.
type HandleRects struct {
	Rotate geom.Rect
	Resize geom.Rect
}

// Handles places the handles around screen bounds b. The rotate handle sits
// centred above the top edge; the resize handle fills the bottom-right corner.
func Handles(b geom.Rect) HandleRects {
	max := b.Max()
	return HandleRects{
		Rotate: geom.RectXYWH(
			b.Min.X+b.Size.W/2-HandleSize/2,
			b.Min.Y-HandleSize-RotateMargin,
			HandleSize, HandleSize),
		Resize: geom.RectXYWH(max.X-HandleSize, max.Y-HandleSize, HandleSize, HandleSize),
	}
}

// ScreenBounds is the unrotated item rectangle in screen space.
func ScreenBounds(v *view.View, it scene.Item) geom.Rect {
	return v.RectToScreen(v.ItemBounds(it))
}

// Resolve finds what lies under p, topmost item first. For each item the
// rotate handle is tested before the resize handle and the body. Rotation
// is ignored: all regions derive from the unrotated bounds.
func Resolve(items []scene.Item, v *view.View, p geom.Vec) Hit {
	for i := len(items) - 1; i >= 0; i-- {
		b := ScreenBounds(v, items[i])
		h := Handles(b)
		switch {
		case h.Rotate.Contains(p):
			return Hit{Kind: RotateHandle, ID: items[i].ID, Index: i}
		case h.Resize.Contains(p):
			return Hit{Kind: ResizeHandle, ID: items[i].ID, Index: i}
		case b.Contains(p):
			return Hit{Kind: Body, ID: items[i].ID, Index: i}
		}
	}
	return Hit{Kind: Empty, Index: -1}
}

// ResolveBody only tests item bodies. It serves context-menu clicks.
func ResolveBody(items []scene.Item, v *view.View, p geom.Vec) Hit {
	for i := len(items) - 1; i >= 0; i-- {
		if ScreenBounds(v, items[i]).Contains(p) {
			return Hit{Kind: Body, ID: items[i].ID, Index: i}
		}
	}
	return Hit{Kind: Empty, Index: -1}
}
