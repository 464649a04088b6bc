package geometry

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool { return math.Abs(a-b) < eps }

func TestAspectFillScale_CoversBounds(t *testing.T) {
	cases := []struct {
		name   string
		s      Size
		bounds Size
	}{
		{"landscape into portrait", Size{1920, 1080}, Size{400, 600}},
		{"portrait into portrait", Size{1080, 1920}, Size{400, 600}},
		{"square into wide", Size{500, 500}, Size{800, 200}},
		{"exact fit", Size{400, 600}, Size{400, 600}},
		{"tiny into huge", Size{2, 3}, Size{1000, 700}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := AspectFillScale(tc.s, tc.bounds)
			scaled := tc.s.Applying(m)
			if scaled.Width < tc.bounds.Width-eps || scaled.Height < tc.bounds.Height-eps {
				t.Fatalf("scaled %v does not cover bounds %v", scaled, tc.bounds)
			}
			wEq := almostEqual(scaled.Width, tc.bounds.Width)
			hEq := almostEqual(scaled.Height, tc.bounds.Height)
			if !wEq && !hEq {
				t.Fatalf("expected equality on at least one axis; scaled %v bounds %v", scaled, tc.bounds)
			}
		})
	}
}

func TestAspectFillScale_ZeroDimensionIsIdentity(t *testing.T) {
	for _, s := range []Size{{0, 100}, {100, 0}, {0, 0}} {
		if m := AspectFillScale(s, Size{400, 600}); !m.IsIdentity() {
			t.Fatalf("expected identity for zero-dimension size %v, got %+v", s, m)
		}
	}
}

func TestMatrix_MultiplyMatchesSequentialApply(t *testing.T) {
	a := Scale(2, 3)
	b := Rotate(math.Pi / 4)
	c := Translate(-7, 11)

	composed := Identity().Then(a).Then(b).Then(c)

	x, y := 1.5, -2.5
	sx, sy := a.TransformPoint(x, y)
	sx, sy = b.TransformPoint(sx, sy)
	sx, sy = c.TransformPoint(sx, sy)

	cx, cy := composed.TransformPoint(x, y)
	if !almostEqual(sx, cx) || !almostEqual(sy, cy) {
		t.Fatalf("sequential (%v,%v) != composed (%v,%v)", sx, sy, cx, cy)
	}
}

func TestTranslateCenters(t *testing.T) {
	from := Rect{Origin: Point{-10, 0}, Size: Size{20, 40}}
	to := Rect{Origin: Point{100, 100}, Size: Size{50, 60}}
	m := TranslateCenters(from, to)
	got := from.Applying(m)
	if gc, tc := got.Center(), to.Center(); !almostEqual(gc.X, tc.X) || !almostEqual(gc.Y, tc.Y) {
		t.Fatalf("center %v != target center %v", gc, tc)
	}
}

func TestRect_ApplyingRotationSwapsExtent(t *testing.T) {
	r := Rect{Size: Size{Width: 600, Height: 1000}}
	got := r.Applying(Rotate(math.Pi / 2))
	if !almostEqual(got.Size.Width, 1000) || !almostEqual(got.Size.Height, 600) {
		t.Fatalf("expected 1000x600 bounding box, got %v", got.Size)
	}
}
