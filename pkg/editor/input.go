package editor

import (
	"fmt"
	"strings"
)

// Mode is the state of the pointer gesture machine.
type Mode int

const (
	Idle Mode = iota
	Panning
	Dragging
	Resizing
	Rotating
)

var modeNames = []string{"idle", "panning", "dragging", "resizing", "rotating"}

func (m Mode) String() string {
	if int(m) >= 0 && int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode is the inverse of Mode.String.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for i, n := range modeNames {
		if n == key {
			return Mode(i), nil
		}
	}
	return Idle, fmt.Errorf("editor: unknown mode %q", s)
}

// Button identifies the pointer button of a press.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonMiddle
	ButtonSecondary
)

// Modifiers is a set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// Contain reports whether all modifiers in m2 are held.
func (m Modifiers) Contain(m2 Modifiers) bool {
	return m&m2 == m2
}

// Key names the keys the controller reacts to.
type Key string

const (
	KeyLeft      Key = "Left"
	KeyRight     Key = "Right"
	KeyUp        Key = "Up"
	KeyDown      Key = "Down"
	KeyDelete    Key = "Delete"
	KeyBackspace Key = "Backspace"
	KeyR         Key = "R"
	KeyZ         Key = "Z"
	KeyY         Key = "Y"
	KeyG         Key = "G"
	Key0         Key = "0"
	KeyPlus      Key = "+"
	KeyMinus     Key = "-"
)

// Action is a context-menu command on the selected item.
type Action int

const (
	ActionDelete Action = iota
	ActionRotate90
	ActionChangeColor
)

func (a Action) String() string {
	switch a {
	case ActionDelete:
		return "Delete"
	case ActionRotate90:
		return "Rotate 90°"
	case ActionChangeColor:
		return "Change Color"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}
