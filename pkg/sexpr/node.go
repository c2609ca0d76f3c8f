// Package sexpr is a small streaming S-expression reader and writer used for
// catalog files.
package sexpr

import (
	"fmt"
	"strconv"
	"strings"
)

// Node is either an Atom or a *List.
type Node interface {
	String() string
}

// Atom is a symbol, number or quoted string.
type Atom struct {
	Value  string
	Quoted bool
}

func (a Atom) String() string {
	if a.Quoted {
		return Quote(a.Value)
	}
	return a.Value
}

// Float parses the atom as a number.
func (a Atom) Float() (float64, error) {
	return strconv.ParseFloat(a.Value, 64)
}

// List is a parenthesised sequence of nodes.
type List struct {
	Items []Node
	Line  int
}

func (l *List) String() string {
	parts := make([]string, len(l.Items))
	for i, it := range l.Items {
		parts[i] = it.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// Head returns the leading symbol of the list, or "".
func (l *List) Head() string {
	if len(l.Items) == 0 {
		return ""
	}
	if a, ok := l.Items[0].(Atom); ok && !a.Quoted {
		return a.Value
	}
	return ""
}

// Args returns the items after the head.
func (l *List) Args() []Node {
	if len(l.Items) <= 1 {
		return nil
	}
	return l.Items[1:]
}

// Find returns the first child list whose head is name.
func (l *List) Find(name string) *List {
	for _, it := range l.Items {
		if sub, ok := it.(*List); ok && sub.Head() == name {
			return sub
		}
	}
	return nil
}

// FindAll returns every child list whose head is name.
func (l *List) FindAll(name string) []*List {
	var out []*List
	for _, it := range l.Items {
		if sub, ok := it.(*List); ok && sub.Head() == name {
			out = append(out, sub)
		}
	}
	return out
}

// AtomAt returns argument i (after the head) as an atom.
func (l *List) AtomAt(i int) (Atom, error) {
	args := l.Args()
	if i < 0 || i >= len(args) {
		return Atom{}, fmt.Errorf("line %d: (%s) missing argument %d", l.Line, l.Head(), i+1)
	}
	a, ok := args[i].(Atom)
	if !ok {
		return Atom{}, fmt.Errorf("line %d: (%s) argument %d is a list", l.Line, l.Head(), i+1)
	}
	return a, nil
}

// FloatAt returns argument i (after the head) as a number.
func (l *List) FloatAt(i int) (float64, error) {
	a, err := l.AtomAt(i)
	if err != nil {
		return 0, err
	}
	v, err := a.Float()
	if err != nil {
		return 0, fmt.Errorf("line %d: (%s) argument %d: %w", l.Line, l.Head(), i+1, err)
	}
	return v, nil
}

// Quote renders s as a quoted string atom.
func Quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + r.Replace(s) + `"`
}
