package ui

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
)

func TestToEditorKey(t *testing.T) {
	tests := []struct {
		name key.Name
		want editor.Key
		ok   bool
	}{
		{key.NameLeftArrow, editor.KeyLeft, true},
		{key.NameDownArrow, editor.KeyDown, true},
		{key.NameDeleteForward, editor.KeyDelete, true},
		{key.NameDeleteBackward, editor.KeyBackspace, true},
		{"=", editor.KeyPlus, true},
		{"-", editor.KeyMinus, true},
		{"Z", editor.KeyZ, true},
		{"Q", "", false},
	}
	for _, tt := range tests {
		got, ok := toEditorKey(tt.name)
		if ok != tt.ok || got != tt.want {
			t.Errorf("toEditorKey(%q) = %q, %v; want %q, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestToModifiers(t *testing.T) {
	tests := []struct {
		in   key.Modifiers
		want editor.Modifiers
	}{
		{0, 0},
		{key.ModShift, editor.ModShift},
		{key.ModCtrl, editor.ModCtrl},
		{key.ModCommand, editor.ModCtrl},
		{key.ModCtrl | key.ModShift, editor.ModCtrl | editor.ModShift},
		{key.ModAlt, editor.ModAlt},
	}
	for _, tt := range tests {
		if got := toModifiers(tt.in); got != tt.want {
			t.Errorf("toModifiers(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestToButton(t *testing.T) {
	tests := []struct {
		in   pointer.Buttons
		want editor.Button
		ok   bool
	}{
		{pointer.ButtonPrimary, editor.ButtonPrimary, true},
		{pointer.ButtonSecondary, editor.ButtonSecondary, true},
		{pointer.ButtonTertiary, editor.ButtonMiddle, true},
		{pointer.ButtonPrimary | pointer.ButtonSecondary, editor.ButtonPrimary, true},
		{0, 0, false},
	}
	for _, tt := range tests {
		got, ok := toButton(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("toButton(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPointConversion(t *testing.T) {
	p := f32.Pt(12.5, -3)
	v := toVec(p)
	if v.X != 12.5 || v.Y != -3 {
		t.Fatalf("toVec = %+v", v)
	}
	if back := toPoint(v); back != p {
		t.Fatalf("toPoint = %v, want %v", back, p)
	}
}
