package script

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

func newParser(t *testing.T) *Parser {
	t.Helper()
	p, err := NewParser()
	if err != nil {
		t.Fatalf("parser init failed: %v", err)
	}
	return p
}

func newEditor() *editor.Controller {
	return editor.New(catalog.Default(), scene.DefaultRoom())
}

func run(t *testing.T, src string) (*editor.Controller, error) {
	t.Helper()
	s, err := newParser(t).ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ed := newEditor()
	return ed, NewRunner(ed, nil).Run(s)
}

func TestParseAllStatements(t *testing.T) {
	src := `
canvas 800 600
room 4.5 6 2.7 meters
unit feet
preset "Cool Tones"
grid off
drop "Round Table" at 100 100   # trailing comment
press right 10 10 shift ctrl
move 20 -5
release 20 -5 alt
scroll -1 at 200 200 ctrl
key Z ctrl shift
key + ctrl
undo
redo
select 10 10
color "#FF6F61"
action rotate
action color "Sea Green"
expect count 1
expect selected "Round Table"
expect none
expect pos 1 2
expect size 3 4
expect rotation 90
expect mode idle
expect zoom 1.1
`
	s, err := newParser(t).ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(s.Statements) != 26 {
		t.Fatalf("expected 26 statements, got %d", len(s.Statements))
	}

	press := s.Statements[6].Press
	if press == nil || press.Button != "right" || press.At.B != 10 || len(press.Mods) != 2 {
		t.Fatalf("press = %+v", press)
	}
	if d := s.Statements[5].Drop; d == nil || d.Name != "Round Table" || d.At.A != 100 {
		t.Fatalf("drop = %+v", d)
	}
	if m := s.Statements[7].Move; m == nil || m.At.B != -5 {
		t.Fatalf("move = %+v", m)
	}
	if k := s.Statements[11].Key; k == nil || k.Name != "+" {
		t.Fatalf("key = %+v", k)
	}
	if a := s.Statements[17].Action; a == nil || a.Color == nil || *a.Color != "Sea Green" {
		t.Fatalf("action = %+v", a)
	}
	if e := s.Statements[18].Expect; e == nil || e.Count == nil || *e.Count != 1 {
		t.Fatalf("expect = %+v", e)
	}
	if s.Statements[1].Pos.Line != 3 {
		t.Fatalf("room statement line = %d, want 3", s.Statements[1].Pos.Line)
	}
}

func TestParseErrors(t *testing.T) {
	p := newParser(t)
	for _, src := range []string{
		"jump 10 10",
		"press left 10",
		"drop Chair at 1 2",
		"move 1 2 hyper",
	} {
		if _, err := p.ParseString(src); err == nil {
			t.Errorf("expected parse error for %q", src)
		}
	}
}

func TestRunScenarioFile(t *testing.T) {
	s, err := newParser(t).ParseFile(filepath.Join("testdata", "scenarios.otr"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ed := newEditor()
	if err := NewRunner(ed, nil).Run(s); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}

func TestExpectationFailure(t *testing.T) {
	_, err := run(t, "drop \"Side Table\" at 100 100\nexpect count 2\n")
	if !errors.Is(err, ErrExpectation) {
		t.Fatalf("expected ErrExpectation, got %v", err)
	}
	if !strings.Contains(err.Error(), "2:") {
		t.Fatalf("error should carry the line number: %v", err)
	}

	if _, err := run(t, "expect pos 1 1\n"); !errors.Is(err, ErrExpectation) {
		t.Fatalf("expected ErrExpectation without selection, got %v", err)
	}
}

func TestRunnerErrors(t *testing.T) {
	for _, src := range []string{
		"preset Neon",
		"key F13",
		"unit cubits",
		"color \"#XYZ\"",
		"action color",
		"expect mode flying",
	} {
		if _, err := run(t, src); err == nil || errors.Is(err, ErrExpectation) {
			t.Errorf("%q: expected a non-expectation error, got %v", src, err)
		}
	}
}

func TestRejectedDropIsNotFatal(t *testing.T) {
	ed, err := run(t, "drop \"Hammock\" at 100 100\nexpect count 0\n")
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if ed.Scene().Len() != 0 {
		t.Fatal("unexpected item")
	}
}

func TestContextMenuAndRoom(t *testing.T) {
	src := `
room 20 3 9 feet
drop "Side Table" at 100 100
press right 105 105
release 105 105
scroll -1 at 100 100 ctrl
expect zoom 1.1
`
	s, err := newParser(t).ParseString(src)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	ed := newEditor()
	r := NewRunner(ed, nil)
	if err := r.Run(s); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if r.MenuRequests != 1 {
		t.Fatalf("menu requests = %d", r.MenuRequests)
	}
	room := ed.Scene().Room
	if room.Unit != scene.Feet || room.Width != 20 || room.Height != 9 {
		t.Fatalf("room = %+v", room)
	}
	if lim := scene.LimitsFor(scene.Feet); room.Length != lim.MinLength {
		t.Fatalf("length = %v, want %v", room.Length, lim.MinLength)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := newParser(t).ParseFile(filepath.Join(t.TempDir(), "nope.otr"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}
