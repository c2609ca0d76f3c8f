package scene

import (
	"image/color"

	"github.com/google/uuid"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
)

// MinItemSize is the smallest width or depth an item may be resized to, in cm.
const MinItemSize = 30.0

// Item is a piece of furniture placed in the room. Position is the top-left
// corner in world units; Size is in centimetres.
//
// Items are plain values: copying one copies its mutable fields while the
// outline stays shared with the template.
type Item struct {
	ID       string
	Name     string
	Category catalog.Category
	Tooltip  string
	Outline  *geom.Outline

	Pos      geom.Vec
	Size     geom.Size
	Rotation float64
	Color    color.NRGBA
}

// NewItem instantiates t at pos with a fresh identifier.
func NewItem(t catalog.Template, pos geom.Vec) Item {
	return Item{
		ID:       uuid.NewString(),
		Name:     t.Name,
		Category: t.Category,
		Tooltip:  t.Tooltip,
		Outline:  t.Outline(),
		Pos:      pos,
		Size:     t.DefaultSize,
		Color:    DefaultItemColor,
	}
}

// Rotate adds deg to the rotation, keeping it in [0, 360).
func (it *Item) Rotate(deg float64) {
	it.Rotation = geom.NormalizeDegrees(it.Rotation + deg)
}
