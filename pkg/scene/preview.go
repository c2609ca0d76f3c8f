package scene

import (
	"image/color"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
)

// Preview is the read-only snapshot handed to the 3D preview renderer.
type Preview struct {
	Width, Length, Height float64
	Unit                  Unit
	Walls, Floor, Ceiling color.NRGBA
	Items                 []PreviewItem

	// Origin and Scale locate the room in world units: the room's top-left
	// corner and pixels per metre. They are filled in by the editor.
	Origin geom.Vec
	Scale  float64
}

// PreviewItem carries only what a box renderer needs.
type PreviewItem struct {
	Name     string
	Pos      geom.Vec
	Size     geom.Size
	Rotation float64
	Color    color.NRGBA
}

// Preview copies the room and the items. The result shares nothing with s.
func (s *Scene) Preview() Preview {
	p := Preview{
		Width:   s.Room.Width,
		Length:  s.Room.Length,
		Height:  s.Room.Height,
		Unit:    s.Room.Unit,
		Walls:   s.Room.Walls,
		Floor:   s.Room.Floor,
		Ceiling: s.Room.Ceiling,
		Items:   make([]PreviewItem, len(s.items)),
	}
	for i, it := range s.items {
		p.Items[i] = PreviewItem{
			Name:     it.Name,
			Pos:      it.Pos,
			Size:     it.Size,
			Rotation: it.Rotation,
			Color:    it.Color,
		}
	}
	return p
}
