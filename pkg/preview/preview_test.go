package preview

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/editor"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

func decode(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(buf)
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return img
}

func pixel(img image.Image, p geom.Vec) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(int(p.X), int(p.Y))).(color.NRGBA)
}

func similar(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 3 && d(a.G, b.G) <= 3 && d(a.B, b.B) <= 3
}

func newEditor(t *testing.T) *editor.Controller {
	t.Helper()
	ed := editor.New(catalog.Default(), scene.DefaultRoom())
	if !ed.Drop("Side Table", geom.Pt(80, 80)) {
		t.Fatal("drop failed")
	}
	return ed
}

func TestRenderPlan(t *testing.T) {
	ed := newEditor(t)
	coral, _ := scene.LookupColor("Coral")
	ed.ApplyColor(coral)
	f := ed.Frame()

	var buf bytes.Buffer
	if err := RenderPlan(&buf, f, 400, 300); err != nil {
		t.Fatalf("RenderPlan: %v", err)
	}
	img := decode(t, &buf)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("image size = %v", b)
	}

	tr := planTransform(f, 400, 300)
	// A floor point half a metre in from the far corner, away from the grid
	// and from the item.
	far := f.RoomRect.Max().Sub(geom.Pt(15, 15))
	if got := pixel(img, tr.Apply(far)); !similar(got, f.Room.Floor) {
		t.Errorf("floor pixel = %v, want %v", got, f.Room.Floor)
	}
	centre := f.Items[0].Bounds.Center()
	if got := pixel(img, tr.Apply(centre)); !similar(got, coral) {
		t.Errorf("item pixel = %v, want %v", got, coral)
	}
}

func TestRenderIsometric(t *testing.T) {
	ed := newEditor(t)
	teal, _ := scene.LookupColor("Turquoise")
	ed.ApplyColor(teal)
	p := ed.Preview()

	var buf bytes.Buffer
	if err := RenderIsometric(&buf, p, 400, 300); err != nil {
		t.Fatalf("RenderIsometric: %v", err)
	}
	img := decode(t, &buf)
	if b := img.Bounds(); b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("image size = %v", b)
	}

	pr := newIso(p, 400, 300)
	if got := pixel(img, pr.project(3, 4, 0)); !similar(got, p.Floor) {
		t.Errorf("floor pixel = %v, want %v", got, p.Floor)
	}
	// The Side Table sits 1 m from the back-left corner and is 0.45 m wide.
	if got := pixel(img, pr.project(1.225, 1.225, ItemHeight)); !similar(got, teal) {
		t.Errorf("lid pixel = %v, want %v", got, teal)
	}
}

func TestFootprintFollowsRotation(t *testing.T) {
	p := scene.Preview{Scale: 30, Origin: geom.Pt(50, 50)}
	it := scene.PreviewItem{Pos: geom.Pt(80, 80), Size: geom.Size{W: 100, H: 50}, Rotation: 90}
	fp := footprint(p, it)
	b := geom.Shape{Subpaths: []geom.Subpath{{Points: fp, Closed: true}}}.Bounds()
	if d := b.Size.W - 0.5; d > 1e-9 || d < -1e-9 {
		t.Fatalf("rotated width = %v, want 0.5", b.Size.W)
	}
	if c := b.Center(); c.X-1.5 > 1e-9 || 1.5-c.X > 1e-9 {
		t.Fatalf("centre moved: %+v", c)
	}
}

func TestBadSize(t *testing.T) {
	ed := newEditor(t)
	var buf bytes.Buffer
	if err := RenderPlan(&buf, ed.Frame(), 0, 100); !errors.Is(err, ErrBadSize) {
		t.Fatalf("expected ErrBadSize, got %v", err)
	}
	if err := RenderIsometric(&buf, ed.Preview(), 100, -1); !errors.Is(err, ErrBadSize) {
		t.Fatalf("expected ErrBadSize, got %v", err)
	}
}
