package catalog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/sexpr"
)

// Load reads a catalog file:
//
//	(catalog
//	  (template "Dining Table"
//	    (category tables)
//	    (size 150 90)
//	    (tooltip "Standard dining table for 6 people")))
func Load(r io.Reader) (*Catalog, error) {
	nodes, err := sexpr.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	var root *sexpr.List
	for _, n := range nodes {
		if l, ok := n.(*sexpr.List); ok && l.Head() == "catalog" {
			root = l
			break
		}
	}
	if root == nil {
		return nil, fmt.Errorf("catalog: missing (catalog ...) form")
	}

	c := New()
	for _, tl := range root.FindAll("template") {
		t, err := parseTemplate(tl)
		if err != nil {
			return nil, err
		}
		if err := c.Add(t); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// LoadFile opens and parses a catalog file.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

func parseTemplate(l *sexpr.List) (Template, error) {
	name, err := l.AtomAt(0)
	if err != nil {
		return Template{}, fmt.Errorf("catalog: %w", err)
	}

	catList := l.Find("category")
	if catList == nil {
		return Template{}, fmt.Errorf("catalog: line %d: template %q has no category", l.Line, name.Value)
	}
	catAtom, err := catList.AtomAt(0)
	if err != nil {
		return Template{}, fmt.Errorf("catalog: %w", err)
	}
	cat, err := ParseCategory(catAtom.Value)
	if err != nil {
		return Template{}, err
	}

	sizeList := l.Find("size")
	if sizeList == nil {
		return Template{}, fmt.Errorf("catalog: line %d: template %q has no size", l.Line, name.Value)
	}
	w, err := sizeList.FloatAt(0)
	if err != nil {
		return Template{}, fmt.Errorf("catalog: %w", err)
	}
	h, err := sizeList.FloatAt(1)
	if err != nil {
		return Template{}, fmt.Errorf("catalog: %w", err)
	}

	var tooltip string
	if tip := l.Find("tooltip"); tip != nil {
		a, err := tip.AtomAt(0)
		if err != nil {
			return Template{}, fmt.Errorf("catalog: %w", err)
		}
		tooltip = a.Value
	}

	return NewTemplate(name.Value, cat, geom.Size{W: w, H: h}, tooltip)
}

// Write serializes c in the format read by Load.
func Write(w io.Writer, c *Catalog) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "(catalog")
	for i, t := range c.Templates() {
		fmt.Fprintf(bw, "  (template %s\n", sexpr.Quote(t.Name))
		fmt.Fprintf(bw, "    (category %s)\n", strings.ToLower(t.Category.String()))
		fmt.Fprintf(bw, "    (size %g %g)\n", t.DefaultSize.W, t.DefaultSize.H)
		fmt.Fprintf(bw, "    (tooltip %s))", sexpr.Quote(t.Tooltip))
		if i == c.Len()-1 {
			fmt.Fprint(bw, ")")
		}
		fmt.Fprintln(bw)
	}
	if c.Len() == 0 {
		fmt.Fprintln(bw, ")")
	}
	return bw.Flush()
}
