package view

import (
	"math"
	"testing"

	"github.com/OpenTraceLab/OpenTraceRoom/pkg/geom"
	"github.com/OpenTraceLab/OpenTraceRoom/pkg/scene"
)

func near(a, b geom.Vec) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestToWorldToScreenRoundTrip(t *testing.T) {
	v := New()
	v.Zoom = 2.5
	v.Pan = geom.Pt(-40, 17)
	p := geom.Pt(123, 456)
	if got := v.ToScreen(v.ToWorld(p)); !near(got, p) {
		t.Fatalf("round trip: got %+v", got)
	}
}

func TestZoomKeepsCursorAnchored(t *testing.T) {
	tests := []struct {
		name    string
		zoom    float64
		pan     geom.Vec
		cursor  geom.Vec
		factors []float64
	}{
		{"in", 1, geom.Pt(0, 0), geom.Pt(300, 200), []float64{1.1, 1.1, 1.1}},
		{"out", 2, geom.Pt(-120, 40), geom.Pt(10, 500), []float64{0.9, 0.9}},
		{"clamped", 4.9, geom.Pt(5, 5), geom.Pt(250, 250), []float64{1.1, 1.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New()
			v.Zoom, v.Pan = tt.zoom, tt.pan
			for _, f := range tt.factors {
				before := v.ToWorld(tt.cursor)
				v.ZoomAt(tt.cursor, f)
				if got := v.ToScreen(before); !near(got, tt.cursor) {
					t.Fatalf("cursor moved to %+v after factor %v", got, f)
				}
				if v.Zoom < MinZoom || v.Zoom > MaxZoom {
					t.Fatalf("zoom %v out of range", v.Zoom)
				}
			}
		})
	}
}

func TestZoomClampsToLimits(t *testing.T) {
	v := New()
	for i := 0; i < 100; i++ {
		v.ZoomAt(geom.Pt(0, 0), 0.9)
	}
	if v.Zoom != MinZoom {
		t.Fatalf("zoom = %v, want %v", v.Zoom, MinZoom)
	}
	for i := 0; i < 100; i++ {
		v.ZoomAt(geom.Pt(0, 0), 1.1)
	}
	if v.Zoom != MaxZoom {
		t.Fatalf("zoom = %v, want %v", v.Zoom, MaxZoom)
	}
}

func TestFitCentresRoom(t *testing.T) {
	v := New()
	room := scene.DefaultRoom()
	v.Fit(room, geom.Size{W: 800, H: 600})
	// min((800-100)/4, (600-100)/5) = 100
	if v.Scale != 100 {
		t.Fatalf("scale = %v, want 100", v.Scale)
	}
	r := v.RoomRect(room)
	if c := r.Center(); !near(c, geom.Pt(400, 300)) {
		t.Fatalf("room centre = %+v", c)
	}

	v.Fit(room, geom.Size{})
	if v.Scale != DefaultScale {
		t.Fatalf("fallback scale = %v", v.Scale)
	}
}

func TestRoomRectIgnoresUnit(t *testing.T) {
	v := New()
	room := scene.DefaultRoom()
	before := v.RoomRect(room)
	room.ConvertTo(scene.Feet)
	after := v.RoomRect(room)
	if math.Abs(before.Size.W-after.Size.W) > 1e-6 || math.Abs(before.Size.H-after.Size.H) > 1e-6 {
		t.Fatalf("room rect changed with unit: %+v vs %+v", before, after)
	}
}

func TestSnapValue(t *testing.T) {
	v := New()
	for in, want := range map[float64]float64{0: 0, 9.9: 0, 10: 20, 29: 20, 31: 40, -11: -20} {
		if got := v.SnapValue(in); got != want {
			t.Errorf("SnapValue(%v) = %v, want %v", in, got, want)
		}
	}
	v.Snap = false
	if got := v.SnapValue(9.9); got != 9.9 {
		t.Errorf("snap off: got %v", got)
	}
}

func TestItemBounds(t *testing.T) {
	v := New()
	it := scene.Item{Pos: geom.Pt(100, 100), Size: geom.Size{W: 150, H: 90}}
	b := v.ItemBounds(it)
	if b.Size.W != 45 || b.Size.H != 27 {
		t.Fatalf("bounds = %+v", b)
	}
}
