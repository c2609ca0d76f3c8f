package preview

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
)

// planTransform fits the room rectangle of f into a width x height image.
func planTransform(f editor.Frame, width, height int) geom.Transform {
	r := f.RoomRect
	s := 1.0
	if r.Size.W > 0 && r.Size.H > 0 {
		s = math.Min((float64(width)-2*padding)/r.Size.W, (float64(height)-2*padding)/r.Size.H)
	}
	if s <= 0 {
		s = 1
	}
	return geom.Transform{
		TranslateX: (float64(width)-r.Size.W*s)/2 - r.Min.X*s,
		TranslateY: (float64(height)-r.Size.H*s)/2 - r.Min.Y*s,
		ScaleX:     s,
		ScaleY:     s,
	}
}

// RenderPlan draws the top-down layout of f as a PNG. The room is fitted
// to the image regardless of the editor's pan and zoom.
func RenderPlan(w io.Writer, f editor.Frame, width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(white))

	t := planTransform(f, width, height)
	if err := drawRoom(dc, f, t); err != nil {
		return fmt.Errorf("draw room: %w", err)
	}
	for _, it := range f.Items {
		if err := drawItem(dc, it, t); err != nil {
			return fmt.Errorf("draw %s: %w", it.Item.Name, err)
		}
	}
	if f.Info != "" {
		if fc := face(12); fc != nil {
			dc.SetFont(fc)
			dc.SetColor(black)
			dc.DrawString(f.Info, 10, 20)
		}
	}
	return dc.EncodePNG(w)
}

func drawRoom(dc *gg.Context, f editor.Frame, t geom.Transform) error {
	r := f.RoomRect
	min, max := t.Apply(r.Min), t.Apply(r.Max())
	corners := []geom.Vec{min, geom.Pt(max.X, min.Y), max, geom.Pt(min.X, max.Y)}
	if err := fillStroke(dc, corners, f.Room.Floor, black, 2); err != nil {
		return err
	}

	// one grid line per metre
	dc.SetColor(gridColor)
	dc.SetLineWidth(1)
	step := f.View.Scale * t.ScaleX
	if step > 0 {
		for x := min.X + step; x < max.X; x += step {
			if err := line(dc, geom.Pt(x, min.Y), geom.Pt(x, max.Y)); err != nil {
				return err
			}
		}
		for y := min.Y + step; y < max.Y; y += step {
			if err := line(dc, geom.Pt(min.X, y), geom.Pt(max.X, y)); err != nil {
				return err
			}
		}
	}

	if fc := face(12); fc != nil {
		u := f.Room.Unit.Abbrev()
		dc.SetFont(fc)
		dc.SetColor(black)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f %s", f.Room.Width, u), (min.X+max.X)/2, min.Y-8, 0.5, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f %s", f.Room.Length, u), min.X-8, (min.Y+max.Y)/2, 1, 0.5)
	}
	return nil
}

func drawItem(dc *gg.Context, it editor.FrameItem, t geom.Transform) error {
	shape := it.Shape.Map(t.Apply)
	stroke, width := black, 1.0
	if it.Selected {
		stroke, width = selColor, 2
	}

	for _, sp := range shape.Subpaths {
		if !sp.Closed {
			continue
		}
		if err := fillStroke(dc, sp.Points, it.Item.Color, stroke, width); err != nil {
			return err
		}
	}
	dc.SetColor(stroke)
	dc.SetLineWidth(width)
	for _, sp := range shape.Subpaths {
		if sp.Closed {
			continue
		}
		polygon(dc, sp.Points, false)
		if err := dc.Stroke(); err != nil {
			return err
		}
	}

	if fc := face(10); fc != nil {
		b := it.Bounds
		p := t.Apply(b.Min)
		dc.SetFont(fc)
		dc.SetColor(black)
		dc.DrawString(it.Item.Name, p.X, p.Y-2)
	}
	return nil
}
