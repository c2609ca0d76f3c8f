package hittest

import (
	"testing"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/view"
)

// With the default scale of 30 px/m a 100x100 cm item spans 30x30 px.
func item(id string, x, y float64) scene.Item {
	return scene.Item{ID: id, Pos: geom.Pt(x, y), Size: geom.Size{W: 100, H: 100}}
}

func TestResolvePriority(t *testing.T) {
	v := view.New()
	items := []scene.Item{item("a", 100, 100)}

	tests := []struct {
		name string
		p    geom.Vec
		want Kind
	}{
		{"rotate handle", geom.Pt(115, 90), RotateHandle},
		{"resize handle", geom.Pt(128, 128), ResizeHandle},
		{"body", geom.Pt(110, 110), Body},
		{"body edge", geom.Pt(100, 100), Body},
		{"gap above", geom.Pt(115, 97), Empty},
		{"outside", geom.Pt(200, 200), Empty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(items, v, tt.p)
			if got.Kind != tt.want {
				t.Fatalf("Resolve(%+v) = %v, want %v", tt.p, got.Kind, tt.want)
			}
			if got.Kind != Empty && got.ID != "a" {
				t.Fatalf("ID = %q", got.ID)
			}
		})
	}
}

func TestResolveTopmostFirst(t *testing.T) {
	v := view.New()
	items := []scene.Item{item("bottom", 100, 100), item("top", 110, 110)}
	if got := Resolve(items, v, geom.Pt(120, 120)); got.ID != "top" || got.Index != 1 {
		t.Fatalf("got %+v, want top", got)
	}
	if got := Resolve(items, v, geom.Pt(105, 105)); got.ID != "bottom" {
		t.Fatalf("got %+v, want bottom", got)
	}
}

func TestUpperBodyCoversLowerHandle(t *testing.T) {
	v := view.New()
	// The upper item's body covers the lower item's resize handle.
	items := []scene.Item{item("lower", 100, 100), item("upper", 125, 125)}
	if got := Resolve(items, v, geom.Pt(127, 127)); got.ID != "upper" || got.Kind != Body {
		t.Fatalf("got %+v", got)
	}
}

func TestResolveIgnoresRotation(t *testing.T) {
	v := view.New()
	it := item("a", 100, 100)
	it.Rotation = 45
	if got := Resolve([]scene.Item{it}, v, geom.Pt(101, 101)); got.Kind != Body {
		t.Fatalf("corner of unrotated bounds should hit, got %v", got.Kind)
	}
}

func TestResolveFollowsView(t *testing.T) {
	v := view.New()
	v.Zoom = 2
	v.Pan = geom.Pt(-50, 10)
	items := []scene.Item{item("a", 100, 100)}
	// World (110,110) -> screen (170, 230).
	if got := Resolve(items, v, geom.Pt(170, 230)); got.Kind != Body {
		t.Fatalf("got %v", got.Kind)
	}
	if got := Resolve(items, v, geom.Pt(110, 110)); got.Kind != Empty {
		t.Fatalf("world coordinates must not hit, got %v", got.Kind)
	}
}

func TestResolveBodySkipsHandles(t *testing.T) {
	v := view.New()
	items := []scene.Item{item("a", 100, 100)}
	if got := ResolveBody(items, v, geom.Pt(115, 90)); got.Kind != Empty {
		t.Fatalf("rotate handle region should not count, got %v", got.Kind)
	}
	if got := ResolveBody(items, v, geom.Pt(128, 128)); got.Kind != Body {
		t.Fatalf("got %v", got.Kind)
	}
}
