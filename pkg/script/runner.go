package script

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

// ErrExpectation is returned when an expect statement does not hold.
var ErrExpectation = errors.New("expectation failed")

// tolerance for numeric expectations
const epsilon = 1e-6

var keyNames = map[string]editor.Key{
	"left":      editor.KeyLeft,
	"right":     editor.KeyRight,
	"up":        editor.KeyUp,
	"down":      editor.KeyDown,
	"delete":    editor.KeyDelete,
	"del":       editor.KeyDelete,
	"backspace": editor.KeyBackspace,
	"r":         editor.KeyR,
	"z":         editor.KeyZ,
	"y":         editor.KeyY,
	"g":         editor.KeyG,
	"0":         editor.Key0,
	"+":         editor.KeyPlus,
	"=":         editor.KeyPlus,
	"plus":      editor.KeyPlus,
	"-":         editor.KeyMinus,
	"minus":     editor.KeyMinus,
}

var buttons = map[string]editor.Button{
	"left":   editor.ButtonPrimary,
	"middle": editor.ButtonMiddle,
	"right":  editor.ButtonSecondary,
}

// Runner replays scripts against an editor.
type Runner struct {
	ed  *editor.Controller
	log *zap.Logger

	// MenuRequests counts presses that asked for a context menu.
	MenuRequests int
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(ed *editor.Controller, log *zap.Logger) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{ed: ed, log: log}
}

// Run executes every statement in order and stops at the first error.
func (r *Runner) Run(s *Script) error {
	for _, st := range s.Statements {
		if err := r.exec(st); err != nil {
			return fmt.Errorf("%s: %w", st.Pos, err)
		}
	}
	return nil
}

func mods(names []string) editor.Modifiers {
	var m editor.Modifiers
	for _, n := range names {
		switch n {
		case "shift":
			m |= editor.ModShift
		case "ctrl":
			m |= editor.ModCtrl
		case "alt":
			m |= editor.ModAlt
		}
	}
	return m
}

func pt(p Pair) geom.Vec { return geom.Pt(p.A, p.B) }

func (r *Runner) exec(st *Statement) error {
	ed := r.ed
	switch {
	case st.Canvas != nil:
		ed.SetCanvas(geom.Size{W: st.Canvas.A, H: st.Canvas.B})
	case st.Room != nil:
		if st.Room.Unit != "" {
			u, err := scene.ParseUnit(st.Room.Unit)
			if err != nil {
				return err
			}
			ed.SetUnit(u)
		}
		ed.SetRoomDimensions(st.Room.Width, st.Room.Length, st.Room.Height)
	case st.Unit != nil:
		u, err := scene.ParseUnit(*st.Unit)
		if err != nil {
			return err
		}
		ed.SetUnit(u)
	case st.Preset != nil:
		if !ed.ApplyPreset(*st.Preset) {
			return fmt.Errorf("unknown preset %q", *st.Preset)
		}
	case st.Grid != nil:
		ed.SetSnap(*st.Grid == "on")
	case st.Drop != nil:
		if !ed.Drop(st.Drop.Name, pt(st.Drop.At)) {
			r.log.Warn("drop rejected", zap.String("template", st.Drop.Name))
		}
	case st.Press != nil:
		if ed.Press(pt(st.Press.At), buttons[st.Press.Button], mods(st.Press.Mods)) {
			r.MenuRequests++
		}
	case st.Move != nil:
		ed.Move(pt(st.Move.At), mods(st.Move.Mods))
	case st.Release != nil:
		ed.Release(pt(st.Release.At), mods(st.Release.Mods))
	case st.Scroll != nil:
		ed.Scroll(pt(st.Scroll.At), st.Scroll.Amount, mods(st.Scroll.Mods))
	case st.Key != nil:
		k, ok := keyNames[strings.ToLower(st.Key.Name)]
		if !ok {
			return fmt.Errorf("unknown key %q", st.Key.Name)
		}
		ed.Key(k, mods(st.Key.Mods))
	case st.Undo:
		ed.Undo()
	case st.Redo:
		ed.Redo()
	case st.Select != nil:
		ed.SelectAt(pt(*st.Select))
	case st.Color != nil:
		c, err := scene.LookupColor(*st.Color)
		if err != nil {
			return err
		}
		ed.ApplyColor(c)
	case st.Action != nil:
		return r.action(st.Action)
	case st.Expect != nil:
		return r.expect(st.Expect)
	}
	return nil
}

func (r *Runner) action(a *Action) error {
	switch a.Name {
	case "delete":
		r.ed.ApplyAction(editor.ActionDelete, color.NRGBA{})
	case "rotate":
		r.ed.ApplyAction(editor.ActionRotate90, color.NRGBA{})
	case "color":
		if a.Color == nil {
			return fmt.Errorf("action color needs a color")
		}
		c, err := scene.LookupColor(*a.Color)
		if err != nil {
			return err
		}
		r.ed.ApplyAction(editor.ActionChangeColor, c)
	}
	return nil
}

func (r *Runner) expect(e *Expect) error {
	ed := r.ed
	sel, hasSel := ed.Selected()
	needSel := func() error {
		if !hasSel {
			return fmt.Errorf("%w: nothing selected", ErrExpectation)
		}
		return nil
	}

	switch {
	case e.Count != nil:
		if n := ed.Scene().Len(); n != *e.Count {
			return fmt.Errorf("%w: count is %d, want %d", ErrExpectation, n, *e.Count)
		}
	case e.Selected != nil:
		if err := needSel(); err != nil {
			return err
		}
		if sel.Name != *e.Selected {
			return fmt.Errorf("%w: selected %q, want %q", ErrExpectation, sel.Name, *e.Selected)
		}
	case e.None:
		if hasSel {
			return fmt.Errorf("%w: %q is selected", ErrExpectation, sel.Name)
		}
	case e.Pos != nil:
		if err := needSel(); err != nil {
			return err
		}
		if !near(sel.Pos.X, e.Pos.A) || !near(sel.Pos.Y, e.Pos.B) {
			return fmt.Errorf("%w: position (%g, %g), want (%g, %g)", ErrExpectation, sel.Pos.X, sel.Pos.Y, e.Pos.A, e.Pos.B)
		}
	case e.Size != nil:
		if err := needSel(); err != nil {
			return err
		}
		if !near(sel.Size.W, e.Size.A) || !near(sel.Size.H, e.Size.B) {
			return fmt.Errorf("%w: size %gx%g, want %gx%g", ErrExpectation, sel.Size.W, sel.Size.H, e.Size.A, e.Size.B)
		}
	case e.Rotation != nil:
		if err := needSel(); err != nil {
			return err
		}
		if !near(sel.Rotation, *e.Rotation) {
			return fmt.Errorf("%w: rotation %g, want %g", ErrExpectation, sel.Rotation, *e.Rotation)
		}
	case e.Mode != nil:
		want, err := editor.ParseMode(*e.Mode)
		if err != nil {
			return err
		}
		if ed.Mode() != want {
			return fmt.Errorf("%w: mode %s, want %s", ErrExpectation, ed.Mode(), want)
		}
	case e.Zoom != nil:
		if z := ed.View().Zoom; !near(z, *e.Zoom) {
			return fmt.Errorf("%w: zoom %g, want %g", ErrExpectation, z, *e.Zoom)
		}
	}
	return nil
}

func near(a, b float64) bool { return math.Abs(a-b) < epsilon }
