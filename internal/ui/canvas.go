package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/widget/material"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

var (
	canvasBg      = color.NRGBA{R: 250, G: 250, B: 254, A: 255}
	gridColor     = color.NRGBA{R: 0, G: 0, B: 0, A: 24}
	wallColor     = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
	outlineColor  = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	selectedColor = color.NRGBA{R: 0, G: 110, B: 255, A: 255}
	handleColor   = color.NRGBA{R: 0, G: 110, B: 255, A: 255}
	infoBg        = color.NRGBA{R: 255, G: 255, B: 255, A: 220}
)

// minGridStep hides grid lines once they would be closer than this on screen.
const minGridStep = 6

// cursors maps a gesture mode to the pointer shown while it runs.
var cursors = map[editor.Mode]pointer.Cursor{
	editor.Idle:     pointer.CursorDefault,
	editor.Panning:  pointer.CursorGrabbing,
	editor.Dragging: pointer.CursorGrabbing,
	editor.Resizing: pointer.CursorNorthWestResize,
	editor.Rotating: pointer.CursorCrosshair,
}

func (a *App) layoutCanvas(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	if size != a.canvasSize {
		a.canvasSize = size
		a.ed.SetCanvas(geom.Size{W: float64(size.X), H: float64(size.Y)})
	}

	a.handleCanvasKeys(gtx)
	a.handleCanvasPointer(gtx)

	area := clip.Rect{Max: size}.Push(gtx.Ops)
	defer area.Pop()
	event.Op(gtx.Ops, &a.canvasTag)
	cursors[a.ed.Mode()].Add(gtx.Ops)
	paint.Fill(gtx.Ops, canvasBg)

	f := a.ed.Frame()
	a.drawRoom(gtx, f)
	for _, it := range f.Items {
		a.drawItem(gtx, it)
	}
	a.drawHandles(gtx, f)
	a.drawInfo(gtx, f)

	if a.menuVisible {
		a.layoutContextMenu(gtx)
	}
	return layout.Dimensions{Size: size}
}

func (a *App) handleCanvasKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(
			key.Filter{Focus: &a.canvasTag, Optional: key.ModShift | key.ModShortcut | key.ModAlt},
			key.Filter{Name: "Z", Required: key.ModShortcut, Optional: key.ModShift},
			key.Filter{Name: "Y", Required: key.ModShortcut},
		)
		if !ok {
			break
		}
		ke, ok := ev.(key.Event)
		if !ok || ke.State != key.Press {
			continue
		}
		if ke.Name == key.NameEscape {
			a.menuVisible = false
			a.state.Arm("")
			continue
		}
		k, ok := toEditorKey(ke.Name)
		if !ok {
			continue
		}
		if a.ed.Key(k, toModifiers(ke.Modifiers)) {
			a.log.Debugf("key %s consumed", k)
			a.invalidate()
		}
	}
}

func (a *App) handleCanvasPointer(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  &a.canvasTag,
			Kinds:   pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -1 << 16, Max: 1 << 16},
		})
		if !ok {
			break
		}
		pe, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		mods := toModifiers(pe.Modifiers)
		p := toVec(pe.Position)

		switch pe.Kind {
		case pointer.Press:
			gtx.Execute(key.FocusCmd{Tag: &a.canvasTag})
			a.lastPointer = pe.Position
			a.menuVisible = false
			b, ok := toButton(pe.Buttons)
			if !ok {
				continue
			}
			if b == editor.ButtonPrimary {
				if name := a.state.TakeArmed(); name != "" {
					a.drop(name, p)
					continue
				}
			}
			if a.ed.Press(p, b, mods) {
				a.menuVisible = true
				a.menuPos = image.Pt(int(pe.Position.X), int(pe.Position.Y))
			}
		case pointer.Drag:
			a.lastPointer = pe.Position
			a.ed.Move(p, mods)
		case pointer.Release, pointer.Cancel:
			if pe.Kind == pointer.Cancel {
				p = toVec(a.lastPointer)
			}
			mode := a.ed.Mode()
			before, _ := a.ed.History().Depth()
			a.ed.Release(p, mods)
			if after, _ := a.ed.History().Depth(); after != before {
				a.Logf("[EDIT] %s committed", mode)
			}
		case pointer.Scroll:
			a.ed.Scroll(p, float64(pe.Scroll.Y), mods)
		}
		a.invalidate()
	}
}

func (a *App) drop(name string, p geom.Vec) {
	if !a.ed.Drop(name, p) {
		a.Logf("[WARN] Could not place %s", name)
		return
	}
	if it, ok := a.ed.Selected(); ok {
		a.Logf("[EDIT] Placed %s at (%.0f, %.0f)", name, it.Pos.X, it.Pos.Y)
	}
}

func (a *App) drawRoom(gtx layout.Context, f editor.Frame) {
	r := f.RoomScreen
	rect := toRect(r)
	paint.FillShape(gtx.Ops, f.Room.Floor, clip.Rect(rect).Op())

	if f.View.Snap {
		a.drawGrid(gtx, f)
	}

	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(toPoint(r.Min))
	p.LineTo(f32.Pt(float32(r.Max().X), float32(r.Min.Y)))
	p.LineTo(toPoint(r.Max()))
	p.LineTo(f32.Pt(float32(r.Min.X), float32(r.Max().Y)))
	p.Close()
	walls := f.Room.Walls
	if walls == (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		walls = wallColor
	}
	paint.FillShape(gtx.Ops, walls, clip.Stroke{Path: p.End(), Width: 3}.Op())

	room := f.Room
	abbr := room.Unit.Abbrev()
	a.canvasLabel(gtx, image.Pt(int(r.Center().X)-20, int(r.Max().Y)+6),
		fmt.Sprintf("%.1f %s", room.Width, abbr), wallColor)
	a.canvasLabel(gtx, image.Pt(int(r.Max().X)+6, int(r.Center().Y)-8),
		fmt.Sprintf("%.1f %s", room.Length, abbr), wallColor)
}

func (a *App) drawGrid(gtx layout.Context, f editor.Frame) {
	g := f.View.Grid
	if g <= 0 || g*f.View.Zoom < minGridStep {
		return
	}
	world := f.RoomRect
	screen := f.RoomScreen
	for x := math.Ceil(world.Min.X/g) * g; x <= world.Max().X; x += g {
		sx := f.View.ToScreen(geom.Pt(x, 0)).X
		drawLine(gtx, geom.Pt(sx, screen.Min.Y), geom.Pt(sx, screen.Max().Y), 1, gridColor)
	}
	for y := math.Ceil(world.Min.Y/g) * g; y <= world.Max().Y; y += g {
		sy := f.View.ToScreen(geom.Pt(0, y)).Y
		drawLine(gtx, geom.Pt(screen.Min.X, sy), geom.Pt(screen.Max().X, sy), 1, gridColor)
	}
}

func (a *App) drawItem(gtx layout.Context, it editor.FrameItem) {
	fillShape(gtx, it.ScreenShape, itemColor(it.Item))
	stroke, width := outlineColor, float32(1)
	if it.Selected {
		stroke, width = selectedColor, 2
	}
	strokeShape(gtx, it.ScreenShape, stroke, width)

	b := it.ScreenBounds
	a.canvasLabel(gtx, image.Pt(int(b.Min.X), int(b.Min.Y)-18), it.Item.Name, outlineColor)
}

func (a *App) drawHandles(gtx layout.Context, f editor.Frame) {
	if f.Handles == nil {
		return
	}
	rot := toRect(f.Handles.Rotate)
	paint.FillShape(gtx.Ops, handleColor, clip.Ellipse(rot).Op(gtx.Ops))
	paint.FillShape(gtx.Ops, handleColor, clip.Rect(toRect(f.Handles.Resize)).Op())
}

func (a *App) drawInfo(gtx layout.Context, f editor.Frame) {
	if f.Info == "" {
		return
	}
	defer op.Offset(image.Pt(8, a.canvasSize.Y-30)).Push(gtx.Ops).Pop()
	gtx.Constraints.Min = image.Point{}
	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(4).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		lbl := material.Caption(a.gvTheme.Theme, f.Info)
		lbl.Color = outlineColor
		return lbl.Layout(gtx)
	})
	call := macro.Stop()
	paint.FillShape(gtx.Ops, infoBg, clip.UniformRRect(image.Rectangle{Max: dims.Size}, 4).Op(gtx.Ops))
	call.Add(gtx.Ops)
}

func (a *App) canvasLabel(gtx layout.Context, pos image.Point, txt string, col color.NRGBA) {
	defer op.Offset(pos).Push(gtx.Ops).Pop()
	gtx.Constraints.Min = image.Point{}
	lbl := material.Caption(a.gvTheme.Theme, txt)
	lbl.Color = col
	lbl.Layout(gtx)
}

func toRect(r geom.Rect) image.Rectangle {
	hi := r.Max()
	return image.Rect(
		int(math.Round(r.Min.X)), int(math.Round(r.Min.Y)),
		int(math.Round(hi.X)), int(math.Round(hi.Y)),
	)
}

func subpathPath(gtx layout.Context, sp geom.Subpath) clip.PathSpec {
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(toPoint(sp.Points[0]))
	for _, pt := range sp.Points[1:] {
		p.LineTo(toPoint(pt))
	}
	if sp.Closed {
		p.Close()
	}
	return p.End()
}

func fillShape(gtx layout.Context, s geom.Shape, col color.NRGBA) {
	for _, sp := range s.Subpaths {
		if !sp.Closed || len(sp.Points) < 3 {
			continue
		}
		paint.FillShape(gtx.Ops, col, clip.Outline{Path: subpathPath(gtx, sp)}.Op())
	}
}

func strokeShape(gtx layout.Context, s geom.Shape, col color.NRGBA, width float32) {
	for _, sp := range s.Subpaths {
		if len(sp.Points) < 2 {
			continue
		}
		paint.FillShape(gtx.Ops, col, clip.Stroke{Path: subpathPath(gtx, sp), Width: width}.Op())
	}
}

func drawLine(gtx layout.Context, from, to geom.Vec, width float32, col color.NRGBA) {
	strokeShape(gtx, geom.Shape{Subpaths: []geom.Subpath{{Points: []geom.Vec{from, to}}}}, col, width)
}

// itemColor falls back to the default gray for items with no color set.
func itemColor(it scene.Item) color.NRGBA {
	if it.Color.A == 0 {
		return scene.DefaultItemColor
	}
	return it.Color
}
