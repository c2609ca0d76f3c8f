package ui

import (
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
)

// editorKeys maps Gio key names onto the keys the editor understands.
var editorKeys = map[key.Name]editor.Key{
	key.NameLeftArrow:      editor.KeyLeft,
	key.NameRightArrow:     editor.KeyRight,
	key.NameUpArrow:        editor.KeyUp,
	key.NameDownArrow:      editor.KeyDown,
	key.NameDeleteForward:  editor.KeyDelete,
	key.NameDeleteBackward: editor.KeyBackspace,
	"R":                    editor.KeyR,
	"Z":                    editor.KeyZ,
	"Y":                    editor.KeyY,
	"G":                    editor.KeyG,
	"0":                    editor.Key0,
	"+":                    editor.KeyPlus,
	"=":                    editor.KeyPlus,
	"-":                    editor.KeyMinus,
}

func toEditorKey(n key.Name) (editor.Key, bool) {
	k, ok := editorKeys[n]
	return k, ok
}

// toModifiers folds the platform shortcut key into ModCtrl so Cmd+Z works
// on macOS.
func toModifiers(m key.Modifiers) editor.Modifiers {
	var out editor.Modifiers
	if m.Contain(key.ModShift) {
		out |= editor.ModShift
	}
	if m.Contain(key.ModCtrl) || m.Contain(key.ModCommand) {
		out |= editor.ModCtrl
	}
	if m.Contain(key.ModAlt) {
		out |= editor.ModAlt
	}
	return out
}

// toButton picks the editor button for a press. Primary wins when several
// buttons are held.
func toButton(b pointer.Buttons) (editor.Button, bool) {
	switch {
	case b.Contain(pointer.ButtonPrimary):
		return editor.ButtonPrimary, true
	case b.Contain(pointer.ButtonSecondary):
		return editor.ButtonSecondary, true
	case b.Contain(pointer.ButtonTertiary):
		return editor.ButtonMiddle, true
	}
	return 0, false
}

func toVec(p f32.Point) geom.Vec {
	return geom.Pt(float64(p.X), float64(p.Y))
}

func toPoint(v geom.Vec) f32.Point {
	return f32.Pt(float32(v.X), float32(v.Y))
}
