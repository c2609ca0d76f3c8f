package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a template name is not in the catalog.
	ErrNotFound = errors.New("catalog: template not found")
	// ErrDuplicate is returned when a template name is added twice.
	ErrDuplicate = errors.New("catalog: duplicate template")
)

// Catalog is an ordered set of templates with unique names.
type Catalog struct {
	templates []Template
	byName    map[string]int
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{byName: make(map[string]int)}
}

// Add appends a template. Names must be unique.
func (c *Catalog) Add(t Template) error {
	if _, ok := c.byName[t.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, t.Name)
	}
	c.byName[t.Name] = len(c.templates)
	c.templates = append(c.templates, t)
	return nil
}

// Len returns the number of templates.
func (c *Catalog) Len() int {
	return len(c.templates)
}

// Templates returns the templates in insertion order.
func (c *Catalog) Templates() []Template {
	return append([]Template(nil), c.templates...)
}

// ByCategory returns the templates of one category in insertion order.
func (c *Catalog) ByCategory(cat Category) []Template {
	var out []Template
	for _, t := range c.templates {
		if t.Category == cat {
			out = append(out, t)
		}
	}
	return out
}

// Lookup finds a template by exact name.
func (c *Catalog) Lookup(name string) (Template, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Template{}, false
	}
	return c.templates[i], true
}

// Get is Lookup with an error result.
func (c *Catalog) Get(name string) (Template, error) {
	t, ok := c.Lookup(name)
	if !ok {
		return Template{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c := New()
	for _, t := range []Template{
		mustTemplate("Standard Chair", Chairs, 50, 50, "Basic chair suitable for dining or desk"),
		mustTemplate("Office Chair", Chairs, 60, 60, "Ergonomic office chair with adjustable height"),

		mustTemplate("Dining Table", Tables, 150, 90, "Standard dining table for 6 people"),
		mustTemplate("Side Table", Tables, 45, 45, "Small side table for living room"),
		mustTemplate("Round Table", Tables, 120, 120, "Circular dining or conference table"),
		mustTemplate("Square Table", Tables, 90, 90, "Square multi-purpose table"),
		mustTemplate("Office Table", Tables, 120, 60, "Work desk with computer space"),
		mustTemplate("Corner Table", Tables, 60, 60, "Corner table for living room"),

		mustTemplate("Single Sofa", Sofas, 90, 85, "Individual armchair"),
		mustTemplate("2-Seater Sofa", Sofas, 150, 85, "Love seat for two people"),
		mustTemplate("3-Seater Sofa", Sofas, 200, 85, "Full-size sofa for three people"),

		mustTemplate("Single Bed", Beds, 90, 190, "Standard single bed"),
		mustTemplate("Double Bed", Beds, 135, 190, "Double bed for two people"),
		mustTemplate("Queen Bed", Beds, 150, 200, "Queen size bed"),
		mustTemplate("King Bed", Beds, 180, 200, "King size bed"),
	} {
		if err := c.Add(t); err != nil {
			panic(err)
		}
	}
	return c
}
