package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestTransformScalesThenTranslates(t *testing.T) {
	tr := Transform{TranslateX: 12, TranslateY: -4, ScaleX: 2, ScaleY: 0.5}
	tests := []struct {
		in, want Vec
	}{
		{Vec{0, 0}, Vec{12, -4}},
		{Vec{1, 1}, Vec{14, -3.5}},
		{Vec{-3.5, 8}, Vec{5, 0}},
	}
	for _, tt := range tests {
		if got := tr.Apply(tt.in); !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeDegrees(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{370, 10},
		{-10, 350},
		{-720, 0},
		{719.5, 359.5},
	}
	for _, tt := range tests {
		if got := NormalizeDegrees(tt.in); !near(got, tt.want) {
			t.Errorf("NormalizeDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for d := -1000.0; d < 1000; d += 7.3 {
		got := NormalizeDegrees(d)
		if got < 0 || got >= 360 {
			t.Fatalf("NormalizeDegrees(%v) = %v out of range", d, got)
		}
	}
}

func TestFourQuarterTurnsIsIdentity(t *testing.T) {
	for _, start := range []float64{0, 12.5, 90, 359} {
		r := start
		for i := 0; i < 4; i++ {
			r = NormalizeDegrees(r + 90)
		}
		if !near(r, start) {
			t.Errorf("start %v ended at %v", start, r)
		}
	}
}

func TestSnapDegrees(t *testing.T) {
	if got := SnapDegrees(47, 45); got != 45 {
		t.Errorf("SnapDegrees(47) = %v", got)
	}
	if got := SnapDegrees(-20, 45); got != 0 {
		t.Errorf("SnapDegrees(-20) = %v", got)
	}
	if got := SnapDegrees(-30, 45); got != 315 {
		t.Errorf("SnapDegrees(-30) = %v", got)
	}
}

func TestSweepDegrees(t *testing.T) {
	if got := SweepDegrees(Pt(1, 0), Pt(0, 1)); !near(got, 90) {
		t.Errorf("sweep = %v, want 90", got)
	}
	if got := SweepDegrees(Pt(0, 1), Pt(1, 0)); !near(got, -90) {
		t.Errorf("sweep = %v, want -90", got)
	}
	if got := SweepDegrees(Pt(-1, 0.01), Pt(-1, -0.01)); math.Abs(got) > 2 {
		t.Errorf("sweep across the branch cut = %v", got)
	}
}

func TestWorldShapeScalesAndTranslates(t *testing.T) {
	s := WorldShape(BoxOutline(), RectXYWH(10, 20, 30, 40), 0)
	b := s.Bounds()
	if !near(b.Min.X, 10) || !near(b.Min.Y, 20) || !near(b.Size.W, 30) || !near(b.Size.H, 40) {
		t.Fatalf("bounds = %+v", b)
	}
}

func TestWorldShapeRotatesAboutBoxCenter(t *testing.T) {
	bounds := RectXYWH(0, 0, 40, 20)
	// An asymmetric outline still turns around the bounding-box centre.
	s := WorldShape(ChairOutline(), bounds, 90)
	c := bounds.Center()
	b := s.Bounds()
	if !near(b.Center().X, c.X) || !near(b.Center().Y, c.Y) {
		t.Fatalf("rotated centre %v, want %v", b.Center(), c)
	}
	if !near(b.Size.W, 20) || !near(b.Size.H, 40) {
		t.Fatalf("rotated extent %+v", b.Size)
	}
}

func TestOutlinesStayInUnitSquare(t *testing.T) {
	for name, o := range map[string]Outline{
		"box":   BoxOutline(),
		"chair": ChairOutline(),
		"table": TableOutline(),
		"round": RoundTableOutline(),
		"sofa":  SofaOutline(),
		"bed":   BedOutline(),
	} {
		for _, sp := range o.Subpaths {
			for _, p := range sp.Points {
				if p.X < -eps || p.X > 1+eps || p.Y < -eps || p.Y > 1+eps {
					t.Errorf("%s: point %v outside unit square", name, p)
				}
			}
		}
	}
	if n := len(BedOutline().Subpaths); n != 5 {
		t.Errorf("bed subpaths = %d", n)
	}
}

func TestRectContains(t *testing.T) {
	r := RectXYWH(0, 0, 10, 10)
	if !r.Contains(Pt(10, 10)) || r.Contains(Pt(10.01, 5)) {
		t.Fatal("edge handling wrong")
	}
	if !r.ContainsRect(RectXYWH(1, 1, 9, 9), 0) || r.ContainsRect(RectXYWH(1, 1, 10, 9), 0) {
		t.Fatal("ContainsRect wrong")
	}
}
