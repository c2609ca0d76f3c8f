// Package catalog holds the immutable furniture templates a designer can
// place into a room, plus loaders for catalog files and SQLite catalogs.
package catalog

import (
	"fmt"
	"strings"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
)

// Category groups templates and selects their outline.
type Category int

const (
	Chairs Category = iota
	Tables
	Sofas
	Beds
)

// Categories lists every category in display order.
var Categories = []Category{Chairs, Tables, Sofas, Beds}

var categoryNames = map[Category]string{
	Chairs: "Chairs",
	Tables: "Tables",
	Sofas:  "Sofas",
	Beds:   "Beds",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return fmt.Sprintf("Category(%d)", int(c))
}

// ParseCategory accepts a category name in any case, singular or plural.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for c, n := range categoryNames {
		name := strings.ToLower(n)
		if key == name || key == strings.TrimSuffix(name, "s") {
			return c, nil
		}
	}
	return 0, fmt.Errorf("catalog: unknown category %q", s)
}

// outlineBuilders maps a category to its outline constructor. The bool
// argument selects the round variant where one exists.
var outlineBuilders = map[Category]func(round bool) geom.Outline{
	Chairs: func(bool) geom.Outline { return geom.ChairOutline() },
	Tables: func(round bool) geom.Outline {
		if round {
			return geom.RoundTableOutline()
		}
		return geom.TableOutline()
	},
	Sofas: func(bool) geom.Outline { return geom.SofaOutline() },
	Beds:  func(bool) geom.Outline { return geom.BedOutline() },
}

// OutlineFor returns the normalized outline for a category.
func OutlineFor(c Category, round bool) geom.Outline {
	if build, ok := outlineBuilders[c]; ok {
		return build(round)
	}
	return geom.BoxOutline()
}

// Template is an immutable catalog entry. Sizes are in centimetres.
type Template struct {
	Name        string
	Category    Category
	DefaultSize geom.Size
	Tooltip     string

	outline *geom.Outline
}

// NewTemplate builds a template and resolves its outline once. A template
// whose name contains "round" gets the round variant of its category.
func NewTemplate(name string, c Category, size geom.Size, tooltip string) (Template, error) {
	if strings.TrimSpace(name) == "" {
		return Template{}, fmt.Errorf("catalog: template name is empty")
	}
	if size.W <= 0 || size.H <= 0 {
		return Template{}, fmt.Errorf("catalog: template %q has non-positive size %vx%v", name, size.W, size.H)
	}
	o := OutlineFor(c, strings.Contains(strings.ToLower(name), "round"))
	return Template{
		Name:        name,
		Category:    c,
		DefaultSize: size,
		Tooltip:     tooltip,
		outline:     &o,
	}, nil
}

// Outline returns the cached normalized outline.
func (t Template) Outline() *geom.Outline {
	if t.outline == nil {
		o := OutlineFor(t.Category, strings.Contains(strings.ToLower(t.Name), "round"))
		return &o
	}
	return t.outline
}

func mustTemplate(name string, c Category, w, h float64, tooltip string) Template {
	t, err := NewTemplate(name, c, geom.Size{W: w, H: h}, tooltip)
	if err != nil {
		panic(err)
	}
	return t
}
