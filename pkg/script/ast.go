package script

import "github.com/alecthomas/participle/v2/lexer"

// Script is a parsed gesture script.
type Script struct {
	Statements []*Statement `( @@ | Newline )*`
}

// Statement is one line of a script.
type Statement struct {
	Pos lexer.Position

	Canvas  *Pair     `  "canvas" @@`
	Room    *RoomStmt `| @@`
	Unit    *string   `| "unit" @Ident`
	Preset  *string   `| "preset" @( String | Ident )`
	Grid    *string   `| "grid" @( "on" | "off" )`
	Drop    *Drop     `| @@`
	Press   *Press    `| @@`
	Move    *Pointer  `| "move" @@`
	Release *Pointer  `| "release" @@`
	Scroll  *Scroll   `| @@`
	Key     *KeyStmt  `| @@`
	Undo    bool      `| @"undo"`
	Redo    bool      `| @"redo"`
	Select  *Pair     `| "select" @@`
	Color   *string   `| "color" @String`
	Action  *Action   `| @@`
	Expect  *Expect   `| "expect" @@`
}

// Pair is two numbers: a point or a size.
type Pair struct {
	A float64 `@Number`
	B float64 `@Number`
}

// RoomStmt sets the room dimensions: room 4 5 2.8 meters
type RoomStmt struct {
	Width  float64 `"room" @Number`
	Length float64 `@Number`
	Height float64 `@Number`
	Unit   string  `@( "meters" | "feet" | "m" | "ft" )?`
}

// Drop places a template: drop "Dining Table" at 100 100
type Drop struct {
	Name string `"drop" @String "at"`
	At   Pair   `@@`
}

// Press starts a gesture: press left 100 100 shift
type Press struct {
	Button string   `"press" @( "left" | "middle" | "right" )`
	At     Pair     `@@`
	Mods   []string `@( "shift" | "ctrl" | "alt" )*`
}

// Pointer is a move or release position with modifiers.
type Pointer struct {
	At   Pair     `@@`
	Mods []string `@( "shift" | "ctrl" | "alt" )*`
}

// Scroll is a wheel step: scroll -1 at 200 200 ctrl
type Scroll struct {
	Amount float64  `"scroll" @Number "at"`
	At     Pair     `@@`
	Mods   []string `@( "shift" | "ctrl" | "alt" )*`
}

// KeyStmt is a key press: key Z ctrl
type KeyStmt struct {
	Name string   `"key" @( Ident | Number | Punct | String )`
	Mods []string `@( "shift" | "ctrl" | "alt" )*`
}

// Action is a context-menu command: action color "#FF6F61"
type Action struct {
	Name  string  `"action" @( "delete" | "rotate" | "color" )`
	Color *string `@String?`
}

// Expect asserts on the editor state.
type Expect struct {
	Count    *int     `  "count" @Number`
	Selected *string  `| "selected" @String`
	None     bool     `| @"none"`
	Pos      *Pair    `| "pos" @@`
	Size     *Pair    `| "size" @@`
	Rotation *float64 `| "rotation" @Number`
	Mode     *string  `| "mode" @Ident`
	Zoom     *float64 `| "zoom" @Number`
}
