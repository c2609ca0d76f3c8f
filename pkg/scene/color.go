package scene

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// DefaultItemColor is the neutral gray given to newly placed items.
var DefaultItemColor = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}

// ParseHex parses "#RRGGBB" or "RRGGBB".
func ParseHex(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return color.NRGBA{}, fmt.Errorf("scene: invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("scene: invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

// Hex formats c as "#RRGGBB".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// NamedColor is a palette entry.
type NamedColor struct {
	Group string
	Name  string
	Color color.NRGBA
}

// Palette lists the furniture colors offered by the color picker, grouped
// the same way as the room presets.
var Palette = []NamedColor{
	{"Warm Tones", "Coral", mustHex("#FF6F61")},
	{"Warm Tones", "Orange", mustHex("#FFB347")},
	{"Warm Tones", "Rust", mustHex("#D75C37")},
	{"Cool Tones", "Ocean Blue", mustHex("#4B9CD3")},
	{"Cool Tones", "Turquoise", mustHex("#00CED1")},
	{"Cool Tones", "Sea Green", mustHex("#2E8B57")},
	{"Neutral", "Light Gray", mustHex("#F5F5F5")},
	{"Neutral", "Gray", mustHex("#A9A9A9")},
	{"Neutral", "White", mustHex("#FFFFFF")},
	{"Pastels", "Pink", mustHex("#FFD1DC")},
	{"Pastels", "Blue", mustHex("#AEC6CF")},
	{"Pastels", "Purple", mustHex("#CBAACC")},
}

// LookupColor resolves a palette name or a hex string.
func LookupColor(s string) (color.NRGBA, error) {
	for _, nc := range Palette {
		if strings.EqualFold(nc.Name, s) {
			return nc.Color, nil
		}
	}
	return ParseHex(s)
}

// Preset is a named set of room surface colors.
type Preset struct {
	Name    string
	Walls   color.NRGBA
	Floor   color.NRGBA
	Ceiling color.NRGBA
}

// Presets are built from the palette groups: walls, floor and ceiling take
// the first, second and third color of a group.
var Presets = []Preset{
	{"Warm Tones", mustHex("#FF6F61"), mustHex("#FFB347"), mustHex("#D75C37")},
	{"Cool Tones", mustHex("#4B9CD3"), mustHex("#00CED1"), mustHex("#2E8B57")},
	{"Neutral", mustHex("#F5F5F5"), mustHex("#A9A9A9"), mustHex("#FFFFFF")},
	{"Pastels", mustHex("#FFD1DC"), mustHex("#AEC6CF"), mustHex("#CBAACC")},
}

// LookupPreset finds a preset by name. "warm" matches "Warm Tones".
func LookupPreset(name string) (Preset, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, p := range Presets {
		n := strings.ToLower(p.Name)
		if n == key || strings.TrimSuffix(n, " tones") == key {
			return p, true
		}
	}
	return Preset{}, false
}
