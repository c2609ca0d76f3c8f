package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/f32"
	gfont "gioui.org/font"
	"gioui.org/font/gofont"
	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/explorer"
	"github.com/oligo/gioview/menu"
	"github.com/oligo/gioview/theme"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/OpenTraceLab/OpenTraceRoom/internal/logger"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

// App is the editor window.
type App struct {
	window *app.Window
	ops    op.Ops

	gvTheme  *theme.Theme
	darkMode bool

	ed    *editor.Controller
	state *AppState
	log   *logger.Logger

	previewSize image.Point
	explorer    *explorer.Explorer

	// Toolbar.
	undoBtn, redoBtn, gridBtn, resetBtn widget.Clickable
	exportPlanBtn, exportPreviewBtn     widget.Clickable
	undoIcon, redoIcon, gridIcon        *widget.Icon
	resetIcon, planIcon, previewIcon    *widget.Icon
	leftHandleClick, rightHandleClick   gesture.Click
	darkModeSwitch                      widget.Bool

	// Canvas.
	canvasTag   int
	canvasSize  image.Point
	lastPointer f32.Point
	menuVisible bool
	menuPos     image.Point
	menuOptions [3]widget.Clickable

	// Catalog panel.
	templateClicks []widget.Clickable
	catalogList    widget.List

	// Room panel.
	widthEditor, lengthEditor, heightEditor widget.Editor
	applyRoomBtn                            widget.Clickable
	feetSwitch                              widget.Bool
	presetMenu                              *menu.DropdownMenu
	presetMenuBtn                           widget.Clickable
	swatchClicks                            []widget.Clickable
	roomList                                widget.List

	// Log pane.
	logText       string
	logSelectable widget.Selectable
	logPaneHeight float32
	logSplitter   gesture.Drag
	logSplitDrag  bool
	logSplitLastY float32
	logList       widget.List

	monoShaper *text.Shaper
}

// New creates the editor window around an existing controller.
func New(w *app.Window, opts Options) *App {
	if w == nil {
		w = new(app.Window)
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 1280, 800
	}
	w.Option(app.Title("OpenTraceRoom"), app.Size(unit.Dp(width), unit.Dp(height)))

	log := opts.Log
	if log == nil {
		log = logger.Get(logger.InfoLevel)
	}
	ed := opts.Editor
	if ed == nil {
		ed = editor.New(catalog.Default(), scene.DefaultRoom(), editor.WithLogger(log.Zap()))
	}

	a := &App{
		window:      w,
		gvTheme:     theme.NewTheme("", nil, true),
		ed:          ed,
		state:       NewState(),
		log:         log,
		previewSize: image.Pt(opts.PreviewWidth, opts.PreviewHeight),
		explorer:    explorer.NewExplorer(w),
	}
	if a.previewSize.X <= 0 || a.previewSize.Y <= 0 {
		a.previewSize = image.Pt(800, 600)
	}

	monoFaces := filterMonoFaces()
	if len(monoFaces) > 0 {
		a.monoShaper = text.NewShaper(text.WithCollection(monoFaces), text.NoSystemFonts())
	}
	a.undoIcon = mustIcon(icons.ContentUndo)
	a.redoIcon = mustIcon(icons.ContentRedo)
	a.gridIcon = mustIcon(icons.ImageGridOn)
	a.resetIcon = mustIcon(icons.ActionAutorenew)
	a.planIcon = mustIcon(icons.FileFileDownload)
	a.previewIcon = mustIcon(icons.ImagePhoto)

	a.templateClicks = make([]widget.Clickable, ed.Catalog().Len())
	a.swatchClicks = make([]widget.Clickable, len(scene.Palette))
	a.presetMenu = a.buildPresetMenu()
	a.syncRoomEditors()

	a.logSelectable.WrapPolicy = text.WrapGraphemes
	a.logList.Axis = layout.Vertical
	a.logList.ScrollToEnd = true
	a.catalogList.Axis = layout.Vertical
	a.roomList.Axis = layout.Vertical

	a.applyPalette()
	a.Logf("[BOOT] Editor initialized with %d templates", ed.Catalog().Len())
	a.Logf("[INFO] Pick a template on the left, then click the canvas to place it")
	return a
}

func mustIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		return nil
	}
	return icon
}

// Run blocks processing window events until the window closes.
func (a *App) Run() error {
	for {
		e := a.window.Event()
		a.explorer.ListenEvents(e)
		switch ev := e.(type) {
		case app.DestroyEvent:
			return ev.Err
		case app.FrameEvent:
			gtx := app.NewContext(&a.ops, ev)
			a.layout(gtx)
			ev.Frame(gtx.Ops)
		}
	}
}

func (a *App) layout(gtx layout.Context) layout.Dimensions {
	paint.FillShape(gtx.Ops, a.gvTheme.Palette.Bg, clip.Rect{Max: gtx.Constraints.Max}.Op())

	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(a.layoutToolbar),
		layout.Flexed(1, a.layoutWorkspace),
		layout.Rigid(a.layoutLogSplitter),
		layout.Rigid(a.layoutLogPane),
		layout.Rigid(a.layoutStatusBar),
	)
}

func (a *App) layoutToolbar(gtx layout.Context) layout.Dimensions {
	if a.undoBtn.Clicked(gtx) && a.ed.Undo() {
		a.Logf("[EDIT] Undo")
	}
	if a.redoBtn.Clicked(gtx) && a.ed.Redo() {
		a.Logf("[EDIT] Redo")
	}
	if a.gridBtn.Clicked(gtx) {
		on := a.ed.ToggleGrid()
		a.Logf("[VIEW] Snap to grid: %v", on)
	}
	if a.resetBtn.Clicked(gtx) {
		a.ed.ResetView()
		a.Logf("[VIEW] Reset view")
	}
	if a.exportPlanBtn.Clicked(gtx) {
		a.exportPNG(exportPlan)
	}
	if a.exportPreviewBtn.Clicked(gtx) {
		a.exportPNG(exportIsometric)
	}
	if a.darkModeSwitch.Update(gtx) {
		a.darkMode = a.darkModeSwitch.Value
		a.applyPalette()
	}

	h := a.ed.History()
	return layout.Inset{Left: unit.Dp(12), Right: unit.Dp(12), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(a.toolButton(&a.undoBtn, a.undoIcon, "Undo", h.CanUndo())),
			layout.Rigid(a.toolButton(&a.redoBtn, a.redoIcon, "Redo", h.CanRedo())),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(a.toolButton(&a.gridBtn, a.gridIcon, "Snap to grid", true)),
			layout.Rigid(a.toolButton(&a.resetBtn, a.resetIcon, "Reset view", true)),
			layout.Rigid(layout.Spacer{Width: unit.Dp(12)}.Layout),
			layout.Rigid(a.toolButton(&a.exportPlanBtn, a.planIcon, "Export plan", !a.state.Busy())),
			layout.Rigid(a.toolButton(&a.exportPreviewBtn, a.previewIcon, "Export 3D preview", !a.state.Busy())),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(material.Body2(a.gvTheme.Theme, "Dark").Layout),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
			layout.Rigid(material.Switch(a.gvTheme.Theme, &a.darkModeSwitch, "Dark mode").Layout),
		)
	})
}

func (a *App) toolButton(btn *widget.Clickable, icon *widget.Icon, desc string, enabled bool) layout.Widget {
	return func(gtx layout.Context) layout.Dimensions {
		if icon == nil {
			return material.Button(a.gvTheme.Theme, btn, desc).Layout(gtx)
		}
		b := material.IconButton(a.gvTheme.Theme, btn, icon, desc)
		b.Size = unit.Dp(20)
		b.Inset = layout.UniformInset(unit.Dp(6))
		if !enabled {
			b.Background = a.gvTheme.Bg2
			b.Color = a.gvTheme.Palette.Fg
			b.Color.A = 96
			gtx = gtx.Disabled()
		}
		return layout.Inset{Right: unit.Dp(4)}.Layout(gtx, b.Layout)
	}
}

func (a *App) layoutWorkspace(gtx layout.Context) layout.Dimensions {
	bg := a.gvTheme.Bg2
	snap := a.state.Snapshot()
	return layout.Flex{Axis: layout.Horizontal}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !snap.LeftPanelVisible {
				return layout.Dimensions{}
			}
			width := gtx.Dp(unit.Dp(220))
			gtx.Constraints.Min.X = width
			gtx.Constraints.Max.X = width
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, a.layoutCatalog)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := "<"
			if !snap.LeftPanelVisible {
				label = ">"
			}
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(16))
			gtx.Constraints.Max.X = gtx.Constraints.Min.X
			return a.layoutPanelHandle(gtx, &a.leftHandleClick, label, func() {
				a.state.SetLeftPanelVisible(!a.state.LeftPanelVisible())
			})
		}),
		layout.Flexed(1, a.layoutCanvas),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			label := ">"
			if !snap.RightPanelVisible {
				label = "<"
			}
			gtx.Constraints.Min.X = gtx.Dp(unit.Dp(16))
			gtx.Constraints.Max.X = gtx.Constraints.Min.X
			return a.layoutPanelHandle(gtx, &a.rightHandleClick, label, func() {
				a.state.SetRightPanelVisible(!a.state.RightPanelVisible())
			})
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			if !snap.RightPanelVisible {
				return layout.Dimensions{}
			}
			width := gtx.Dp(unit.Dp(260))
			gtx.Constraints.Min.X = width
			gtx.Constraints.Max.X = width
			paint.FillShape(gtx.Ops, bg, clip.Rect{Max: gtx.Constraints.Max}.Op())
			return layout.UniformInset(unit.Dp(12)).Layout(gtx, a.layoutRoomPanel)
		}),
	)
}

func (a *App) layoutPanelHandle(gtx layout.Context, clk *gesture.Click, label string, toggle func()) layout.Dimensions {
	size := image.Pt(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	for {
		ev, ok := clk.Update(gtx.Source)
		if !ok {
			break
		}
		if ev.Kind == gesture.KindClick {
			toggle()
			a.invalidate()
		}
	}
	return layout.Stack{}.Layout(gtx,
		layout.Expanded(func(gtx layout.Context) layout.Dimensions {
			area := clip.Rect{Max: size}.Push(gtx.Ops)
			pointer.CursorPointer.Add(gtx.Ops)
			clk.Add(gtx.Ops)
			paint.FillShape(gtx.Ops, color.NRGBA{R: 176, G: 182, B: 206, A: 255}, clip.Rect{Max: size}.Op())
			area.Pop()
			return layout.Dimensions{Size: size}
		}),
		layout.Stacked(func(gtx layout.Context) layout.Dimensions {
			gtx.Constraints.Min = size
			return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				lbl := material.Body2(a.gvTheme.Theme, label)
				lbl.Color = a.gvTheme.Palette.Fg
				return lbl.Layout(gtx)
			})
		}),
	)
}

func (a *App) layoutLogSplitter(gtx layout.Context) layout.Dimensions {
	height := gtx.Dp(unit.Dp(6))
	size := image.Pt(gtx.Constraints.Max.X, height)
	paint.FillShape(gtx.Ops, color.NRGBA{R: 210, G: 214, B: 228, A: 255}, clip.Rect{Max: size}.Op())

	stack := clip.Rect{Max: size}.Push(gtx.Ops)
	pointer.CursorRowResize.Add(gtx.Ops)
	a.logSplitter.Add(gtx.Ops)
	stack.Pop()

	for {
		ev, ok := a.logSplitter.Update(gtx.Metric, gtx.Source, gesture.Vertical)
		if !ok {
			break
		}
		switch ev.Kind {
		case pointer.Press:
			a.logSplitDrag = true
			a.logSplitLastY = ev.Position.Y
		case pointer.Drag:
			if a.logSplitDrag {
				dy := ev.Position.Y - a.logSplitLastY
				a.logSplitLastY = ev.Position.Y
				a.logPaneHeight -= dy
				a.clampLogPaneHeight(gtx)
				a.invalidate()
			}
		case pointer.Release, pointer.Cancel:
			a.logSplitDrag = false
		}
	}
	return layout.Dimensions{Size: size}
}

func (a *App) layoutLogPane(gtx layout.Context) layout.Dimensions {
	a.ensureLogPaneHeight(gtx)
	h := int(a.logPaneHeight)
	gtx.Constraints.Min.Y = h
	gtx.Constraints.Max.Y = h

	size := image.Pt(max(gtx.Constraints.Max.X, 1), max(h, 1))
	paint.FillShape(gtx.Ops, a.gvTheme.Bg2, clip.Rect{Max: size}.Op())

	if txt := strings.Join(a.state.Snapshot().Logs, "\n"); txt != a.logText {
		a.logText = txt
		a.logSelectable.SetText(txt)
	}

	return layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(6), Bottom: unit.Dp(6)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		gtx.Constraints.Min = gtx.Constraints.Max
		return a.logList.Layout(gtx, 1, func(gtx layout.Context, _ int) layout.Dimensions {
			label := material.Body2(a.gvTheme.Theme, a.logText)
			label.State = &a.logSelectable
			label.WrapPolicy = text.WrapGraphemes
			label.Alignment = text.Start
			label.Font.Typeface = gfont.Typeface("Go Mono")
			if a.monoShaper != nil {
				label.Shaper = a.monoShaper
			}
			label.Color = a.opaqueFg()
			label.SelectionColor = a.selectionColor()
			return label.Layout(gtx)
		})
	})
}

func (a *App) layoutStatusBar(gtx layout.Context) layout.Dimensions {
	snap := a.state.Snapshot()
	inset := layout.Inset{Left: unit.Dp(16), Right: unit.Dp(16), Top: unit.Dp(8), Bottom: unit.Dp(8)}
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				msg := snap.Status
				if snap.Busy {
					dots := int(time.Now().UnixMilli()/500) % 4
					msg += strings.Repeat(".", dots)
					gtx.Execute(op.InvalidateCmd{At: gtx.Now.Add(500 * time.Millisecond)})
				}
				if snap.Armed != "" {
					msg = fmt.Sprintf("Click the canvas to place %s", snap.Armed)
				}
				return material.Body2(a.gvTheme.Theme, msg).Layout(gtx)
			}),
			layout.Flexed(1, func(gtx layout.Context) layout.Dimensions { return layout.Dimensions{} }),
			layout.Rigid(func(gtx layout.Context) layout.Dimensions {
				v := a.ed.View()
				undo, redo := a.ed.History().Depth()
				status := fmt.Sprintf("%s | zoom %.0f%% | snap %v | undo %d redo %d",
					a.ed.Mode(), v.Zoom*100, v.Snap, undo, redo)
				return material.Body2(a.gvTheme.Theme, status).Layout(gtx)
			}),
		)
	})
}

func (a *App) applyPalette() {
	if a.gvTheme == nil {
		return
	}
	if a.darkMode {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 18, G: 20, B: 26, A: 255},
			Fg:         color.NRGBA{R: 233, G: 236, B: 245, A: 255},
			ContrastBg: color.NRGBA{R: 120, G: 150, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 12, G: 16, B: 24, A: 255},
			Bg2:        color.NRGBA{R: 34, G: 40, B: 50, A: 255},
		})
	} else {
		a.gvTheme.WithPalette(theme.Palette{
			Bg:         color.NRGBA{R: 245, G: 247, B: 253, A: 255},
			Fg:         color.NRGBA{R: 34, G: 37, B: 49, A: 255},
			ContrastBg: color.NRGBA{R: 80, G: 120, B: 255, A: 255},
			ContrastFg: color.NRGBA{R: 255, G: 255, B: 255, A: 255},
			Bg2:        color.NRGBA{R: 225, G: 230, B: 244, A: 255},
		})
	}
	a.invalidate()
}

func (a *App) ensureLogPaneHeight(gtx layout.Context) {
	if a.logPaneHeight > 0 {
		return
	}
	a.logPaneHeight = float32(gtx.Dp(unit.Dp(120)))
	a.clampLogPaneHeight(gtx)
}

func (a *App) clampLogPaneHeight(gtx layout.Context) {
	lo := float32(gtx.Dp(unit.Dp(60)))
	hi := float32(gtx.Dp(unit.Dp(360)))
	if a.logPaneHeight < lo {
		a.logPaneHeight = lo
	}
	if a.logPaneHeight > hi {
		a.logPaneHeight = hi
	}
}

func (a *App) invalidate() {
	if a.window != nil {
		a.window.Invalidate()
	}
}

// Logf appends a line to the on-screen log pane and mirrors it to zap.
// It is safe to call from any goroutine.
func (a *App) Logf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	a.log.Info(msg)
	prefix := time.Now().Format(time.Stamp)
	a.state.AppendLog(fmt.Sprintf("[%s] %s", prefix, msg))
	a.invalidate()
}

func (a *App) opaqueFg() color.NRGBA {
	fg := a.gvTheme.Palette.Fg
	fg.A = 0xFF
	return fg
}

func (a *App) selectionColor() color.NRGBA {
	bg := a.gvTheme.Palette.ContrastBg
	return color.NRGBA{R: bg.R, G: bg.G, B: bg.B, A: 0x88}
}

func filterMonoFaces() []gfont.FontFace {
	var mono []gfont.FontFace
	for _, face := range gofont.Collection() {
		if face.Font.Typeface == gfont.Typeface("Go Mono") {
			mono = append(mono, face)
		}
	}
	return mono
}
