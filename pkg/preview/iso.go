package preview

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"sort"

	"github.com/gogpu/gg"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

// ItemHeight is the height in metres given to every preview box.
const ItemHeight = 0.5

// depthFactor shortens the depth axis of the oblique projection.
const depthFactor = 0.5

// iso projects room coordinates in metres to image pixels. x runs along the
// width, y from the back wall towards the viewer, z upwards.
type iso struct {
	s      float64
	ox, oy float64
	length float64
	dx, dy float64
}

func newIso(p scene.Preview, width, height int) iso {
	w, l, h := roomMeters(p)
	dx := depthFactor * math.Cos(math.Pi/4)
	dy := depthFactor * math.Sin(math.Pi/4)
	s := math.Min(
		(float64(width)-2*padding)/(w+l*dx),
		(float64(height)-2*padding)/(h+l*dy),
	)
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		s = 1
	}
	totalW := (w + l*dx) * s
	totalH := (h + l*dy) * s
	return iso{
		s:      s,
		ox:     (float64(width) - totalW) / 2,
		oy:     (float64(height) + totalH) / 2,
		length: l,
		dx:     dx,
		dy:     dy,
	}
}

func (p iso) project(x, y, z float64) geom.Vec {
	d := p.length - y // distance from the front edge
	return geom.Pt(
		p.ox+(x+d*p.dx)*p.s,
		p.oy-(z+d*p.dy)*p.s,
	)
}

func roomMeters(p scene.Preview) (w, l, h float64) {
	r := scene.Room{Width: p.Width, Length: p.Length, Height: p.Height, Unit: p.Unit}
	return r.Meters()
}

// footprint returns an item's rotated floor rectangle in room metres.
func footprint(p scene.Preview, it scene.PreviewItem) []geom.Vec {
	scale := p.Scale
	if scale <= 0 {
		scale = 1
	}
	x := (it.Pos.X - p.Origin.X) / scale
	y := (it.Pos.Y - p.Origin.Y) / scale
	b := geom.RectXYWH(x, y, it.Size.W/100, it.Size.H/100)
	return geom.WorldShape(geom.BoxOutline(), b, it.Rotation).Subpaths[0].Points
}

// RenderIsometric draws the room floor, the left and back walls and one box
// per item as a PNG.
func RenderIsometric(w io.Writer, p scene.Preview, width, height int) error {
	if err := checkSize(width, height); err != nil {
		return err
	}
	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.ClearWithColor(gg.FromColor(white))

	pr := newIso(p, width, height)
	rw, rl, rh := roomMeters(p)

	floor := []geom.Vec{pr.project(0, 0, 0), pr.project(rw, 0, 0), pr.project(rw, rl, 0), pr.project(0, rl, 0)}
	left := []geom.Vec{pr.project(0, 0, 0), pr.project(0, rl, 0), pr.project(0, rl, rh), pr.project(0, 0, rh)}
	back := []geom.Vec{pr.project(0, 0, 0), pr.project(rw, 0, 0), pr.project(rw, 0, rh), pr.project(0, 0, rh)}

	for _, wall := range []struct {
		pts []geom.Vec
		c   color.NRGBA
	}{
		{back, shade(p.Walls, 1.1)},
		{left, p.Walls},
		{floor, p.Floor},
	} {
		if err := fillStroke(dc, wall.pts, wall.c, black, 2); err != nil {
			return fmt.Errorf("draw room: %w", err)
		}
	}

	// Far items first.
	order := make([]int, len(p.Items))
	fps := make([][]geom.Vec, len(p.Items))
	for i, it := range p.Items {
		order[i] = i
		fps[i] = footprint(p, it)
	}
	sort.SliceStable(order, func(a, b int) bool {
		return maxY(fps[order[a]]) < maxY(fps[order[b]])
	})
	for _, i := range order {
		if err := drawBox(dc, pr, fps[i], p.Items[i].Color); err != nil {
			return fmt.Errorf("draw %s: %w", p.Items[i].Name, err)
		}
	}

	if fc := face(12); fc != nil {
		u := p.Unit.Abbrev()
		dc.SetFont(fc)
		dc.SetColor(black)
		base := pr.project(rw/2, rl, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f %s", p.Width, u), base.X, base.Y+16, 0.5, 0)
		side := pr.project(0, rl/2, 0)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f %s", p.Length, u), side.X-8, side.Y, 1, 0.5)
		top := pr.project(0, rl, rh/2)
		dc.DrawStringAnchored(fmt.Sprintf("%.1f %s", p.Height, u), top.X-8, top.Y, 1, 0.5)
	}
	return dc.EncodePNG(w)
}

func maxY(pts []geom.Vec) float64 {
	m := math.Inf(-1)
	for _, p := range pts {
		m = math.Max(m, p.Y)
	}
	return m
}

// drawBox extrudes a floor footprint to ItemHeight. Side faces are drawn
// back to front, then the lid.
func drawBox(dc *gg.Context, pr iso, fp []geom.Vec, c color.NRGBA) error {
	n := len(fp)
	type side struct {
		pts   []geom.Vec
		depth float64
	}
	sides := make([]side, 0, n)
	for i := 0; i < n; i++ {
		a, b := fp[i], fp[(i+1)%n]
		sides = append(sides, side{
			pts: []geom.Vec{
				pr.project(a.X, a.Y, 0), pr.project(b.X, b.Y, 0),
				pr.project(b.X, b.Y, ItemHeight), pr.project(a.X, a.Y, ItemHeight),
			},
			depth: (a.Y + b.Y) / 2,
		})
	}
	sort.SliceStable(sides, func(i, j int) bool { return sides[i].depth < sides[j].depth })
	for _, s := range sides {
		if err := fillStroke(dc, s.pts, shade(c, 0.75), black, 1); err != nil {
			return err
		}
	}

	lid := make([]geom.Vec, n)
	for i, p := range fp {
		lid[i] = pr.project(p.X, p.Y, ItemHeight)
	}
	return fillStroke(dc, lid, c, black, 1)
}
