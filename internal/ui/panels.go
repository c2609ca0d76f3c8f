package ui

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

var menuActions = [3]editor.Action{editor.ActionDelete, editor.ActionRotate90, editor.ActionChangeColor}

// layoutCatalog lists templates grouped by category. Clicking one arms it
// for the next canvas click.
func (a *App) layoutCatalog(gtx layout.Context) layout.Dimensions {
	templates := a.ed.Catalog().Templates()
	for i := range templates {
		if i < len(a.templateClicks) && a.templateClicks[i].Clicked(gtx) {
			a.state.Arm(templates[i].Name)
			a.Logf("[CATALOG] %s selected (%gx%g cm)", templates[i].Name,
				templates[i].DefaultSize.W, templates[i].DefaultSize.H)
		}
	}
	armed := a.state.Snapshot().Armed

	type row struct {
		header string
		index  int
	}
	var rows []row
	var last catalog.Category = -1
	for i, t := range templates {
		if t.Category != last {
			rows = append(rows, row{header: t.Category.String(), index: -1})
			last = t.Category
		}
		rows = append(rows, row{index: i})
	}

	return material.List(a.gvTheme.Theme, &a.catalogList).Layout(gtx, len(rows), func(gtx layout.Context, i int) layout.Dimensions {
		r := rows[i]
		if r.index < 0 {
			return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(4)}.Layout(gtx,
				material.H6(a.gvTheme.Theme, r.header).Layout)
		}
		t := templates[r.index]
		return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(a.gvTheme.Theme, &a.templateClicks[r.index], t.Name)
			btn.Background = a.gvTheme.Palette.Bg
			btn.Color = a.gvTheme.Palette.Fg
			if t.Name == armed {
				btn.Background = a.gvTheme.Palette.ContrastBg
				btn.Color = a.gvTheme.Palette.ContrastFg
			}
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return btn.Layout(gtx)
		})
	})
}

func (a *App) syncRoomEditors() {
	r := a.ed.Scene().Room
	for _, e := range []*widget.Editor{&a.widthEditor, &a.lengthEditor, &a.heightEditor} {
		e.SingleLine = true
		e.Submit = true
	}
	a.widthEditor.SetText(strconv.FormatFloat(r.Width, 'f', 2, 64))
	a.lengthEditor.SetText(strconv.FormatFloat(r.Length, 'f', 2, 64))
	a.heightEditor.SetText(strconv.FormatFloat(r.Height, 'f', 2, 64))
	a.feetSwitch.Value = r.Unit == scene.Feet
}

// applyRoomEditors parses the dimension fields. Unparseable fields keep
// their current value.
func (a *App) applyRoomEditors() {
	r := a.ed.Scene().Room
	w := parseDimension(a.widthEditor.Text(), r.Width)
	l := parseDimension(a.lengthEditor.Text(), r.Length)
	h := parseDimension(a.heightEditor.Text(), r.Height)
	a.ed.SetRoomDimensions(w, l, h)
	r = a.ed.Scene().Room
	a.Logf("[ROOM] %.2f x %.2f x %.2f %s", r.Width, r.Length, r.Height, r.Unit)
	a.syncRoomEditors()
}

func parseDimension(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func (a *App) submitted(gtx layout.Context, e *widget.Editor) bool {
	hit := false
	for {
		ev, ok := e.Update(gtx)
		if !ok {
			break
		}
		if _, ok := ev.(widget.SubmitEvent); ok {
			hit = true
		}
	}
	return hit
}

func (a *App) layoutRoomPanel(gtx layout.Context) layout.Dimensions {
	submit := false
	for _, e := range []*widget.Editor{&a.widthEditor, &a.lengthEditor, &a.heightEditor} {
		if a.submitted(gtx, e) {
			submit = true
		}
	}
	if a.applyRoomBtn.Clicked(gtx) || submit {
		a.applyRoomEditors()
	}
	if a.feetSwitch.Update(gtx) {
		u := scene.Meters
		if a.feetSwitch.Value {
			u = scene.Feet
		}
		a.ed.SetUnit(u)
		a.Logf("[ROOM] Unit set to %s", u)
		a.syncRoomEditors()
	}
	for i := range a.swatchClicks {
		if a.swatchClicks[i].Clicked(gtx) {
			c := scene.Palette[i]
			a.state.SetColor(c.Color)
			a.Logf("[COLOR] %s %s", c.Name, scene.Hex(c.Color))
		}
	}

	room := a.ed.Scene().Room
	abbr := room.Unit.Abbrev()
	children := []layout.Widget{
		material.H6(a.gvTheme.Theme, "Room").Layout,
		a.numericField(fmt.Sprintf("Width (%s)", abbr), &a.widthEditor),
		a.numericField(fmt.Sprintf("Length (%s)", abbr), &a.lengthEditor),
		a.numericField(fmt.Sprintf("Height (%s)", abbr), &a.heightEditor),
		func(gtx layout.Context) layout.Dimensions {
			return material.Button(a.gvTheme.Theme, &a.applyRoomBtn, "Apply").Layout(gtx)
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Rigid(material.Body2(a.gvTheme.Theme, "Feet").Layout),
				layout.Rigid(layout.Spacer{Width: panelGap}.Layout),
				layout.Rigid(material.Switch(a.gvTheme.Theme, &a.feetSwitch, "Use feet").Layout),
			)
		},
		a.layoutPresetPicker,
		material.H6(a.gvTheme.Theme, "Item color").Layout,
		a.layoutSwatches,
	}
	return material.List(a.gvTheme.Theme, &a.roomList).Layout(gtx, len(children), func(gtx layout.Context, i int) layout.Dimensions {
		return layout.Inset{Bottom: panelGap}.Layout(gtx, children[i])
	})
}

const panelGap = unit.Dp(8)

func (a *App) numericField(label string, e *widget.Editor) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
			layout.Rigid(material.Body2(a.gvTheme.Theme, label).Layout),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				ed := material.Editor(a.gvTheme.Theme, e, "")
				ed.TextSize = unit.Sp(14)
				return layout.Inset{Top: unit.Dp(2)}.Layout(gtx, ed.Layout)
			}),
		)
	}
}

func (a *App) buildPresetMenu() *menu.DropdownMenu {
	opts := make([]menu.MenuOption, 0, len(scene.Presets))
	for _, p := range scene.Presets {
		name := p.Name
		opts = append(opts, menu.MenuOption{
			OnClicked: func() error {
				if a.ed.ApplyPreset(name) {
					a.Logf("[ROOM] Preset %s applied", name)
				}
				return nil
			},
			Layout: func(gtx menu.C, th *theme.Theme) menu.D {
				lbl := material.Body1(th.Theme, name)
				return layout.Inset{Left: unit.Dp(4), Right: unit.Dp(4)}.Layout(gtx, lbl.Layout)
			},
		})
	}
	drop := menu.NewDropdownMenu([][]menu.MenuOption{opts})
	drop.MaxWidth = unit.Dp(200)
	return drop
}

func (a *App) layoutPresetPicker(gtx layout.Context) layout.Dimensions {
	if a.presetMenuBtn.Clicked(gtx) {
		a.presetMenu.ToggleVisibility(gtx)
	}
	dims := material.Button(a.gvTheme.Theme, &a.presetMenuBtn, "Color preset").Layout(gtx)
	a.presetMenu.Layout(gtx, a.gvTheme)
	return dims
}

func (a *App) layoutSwatches(gtx layout.Context) layout.Dimensions {
	current := a.state.Color()
	size := gtx.Dp(unit.Dp(28))
	gap := gtx.Dp(unit.Dp(6))
	perRow := max(1, (gtx.Constraints.Max.X+gap)/(size+gap))

	for i := range a.swatchClicks {
		x := (i % perRow) * (size + gap)
		y := (i / perRow) * (size + gap)
		c := scene.Palette[i].Color
		stack := op.Offset(image.Pt(x, y)).Push(gtx.Ops)
		sw := gtx
		sw.Constraints = layout.Exact(image.Pt(size, size))
		a.swatchClicks[i].Layout(sw, func(gtx layout.Context) layout.Dimensions {
			r := image.Rectangle{Max: image.Pt(size, size)}
			paint.FillShape(gtx.Ops, c, clip.UniformRRect(r, 4).Op(gtx.Ops))
			if c == current {
				paint.FillShape(gtx.Ops, a.gvTheme.Palette.ContrastBg,
					clip.Stroke{Path: clip.UniformRRect(r, 4).Path(gtx.Ops), Width: 3}.Op())
			}
			return layout.Dimensions{Size: r.Max}
		})
		stack.Pop()
	}
	rows := (len(a.swatchClicks) + perRow - 1) / perRow
	return layout.Dimensions{Size: image.Pt(gtx.Constraints.Max.X, rows*(size+gap))}
}

// layoutContextMenu shows the item actions at the press position.
func (a *App) layoutContextMenu(gtx layout.Context) {
	for i := range a.menuOptions {
		if a.menuOptions[i].Clicked(gtx) {
			act := menuActions[i]
			if a.ed.ApplyAction(act, a.state.Color()) {
				a.Logf("[EDIT] %s", act)
			}
			a.menuVisible = false
		}
	}
	if !a.menuVisible {
		return
	}

	defer op.Offset(a.menuPos).Push(gtx.Ops).Pop()
	gtx.Constraints.Min = image.Point{}
	width := gtx.Dp(unit.Dp(150))

	macro := op.Record(gtx.Ops)
	dims := layout.UniformInset(unit.Dp(6)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		children := make([]layout.FlexChild, 0, len(a.menuOptions)*2)
		for i := range a.menuOptions {
			children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				gtx.Constraints.Min.X = width
				btn := material.Button(a.gvTheme.Theme, &a.menuOptions[i], menuActions[i].String())
				if menuActions[i] == editor.ActionDelete {
					btn.Background = color.NRGBA{R: 220, G: 68, B: 68, A: 255}
				}
				if menuActions[i] == editor.ActionChangeColor {
					btn.Background = a.state.Color()
					btn.Color = contrastText(btn.Background)
				}
				return btn.Layout(gtx)
			}))
			children = append(children, layout.Rigid(layout.Spacer{Height: unit.Dp(4)}.Layout))
		}
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
	})
	call := macro.Stop()

	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg,
		clip.UniformRRect(image.Rectangle{Max: dims.Size}, 4).Op(gtx.Ops))
	call.Add(gtx.Ops)
}

// contrastText picks black or white text for a button background.
func contrastText(bg color.NRGBA) color.NRGBA {
	lum := 0.299*float64(bg.R) + 0.587*float64(bg.G) + 0.114*float64(bg.B)
	if lum > 150 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}
