package orientation

import "testing"

type mockWindows struct{ current Orientation }

func (w *mockWindows) InterfaceOrientation() Orientation { return w.current }

type mockConnection struct {
	supports bool
	set      []Rotation
}

func (c *mockConnection) SupportsRotation() bool { return c.supports }
func (c *mockConnection) SetRotation(r Rotation) { c.set = append(c.set, r) }

func TestRotationFor_CardinalTable(t *testing.T) {
	cases := []struct {
		o    Orientation
		want Rotation
	}{
		{Portrait, Rotate90},
		{PortraitUpsideDown, Rotate270},
		{LandscapeLeft, Rotate180},
		{LandscapeRight, Rotate0},
	}
	for _, tc := range cases {
		got, ok := RotationFor(tc.o)
		if !ok || got != tc.want {
			t.Fatalf("RotationFor(%v) = %v ok=%v, want %v", tc.o, got, ok, tc.want)
		}
	}
	if _, ok := RotationFor(Unknown); ok {
		t.Fatalf("unknown orientation should not map to a rotation")
	}
}

func TestTracker_UpdatesOnCardinalChange(t *testing.T) {
	w := &mockWindows{current: LandscapeLeft}
	c := &mockConnection{supports: true}
	tr := NewTracker(w, c, nil)

	var gotO Orientation
	var gotR Rotation
	tr.AddListener(func(o Orientation, r Rotation) { gotO, gotR = o, r })

	tr.OnOrientationChanged()

	r, portrait := tr.Current()
	if r != Rotate180 || portrait {
		t.Fatalf("expected rotation 180 landscape, got %v portrait=%v", r, portrait)
	}
	if len(c.set) != 1 || c.set[0] != Rotate180 {
		t.Fatalf("connection not programmed: %v", c.set)
	}
	if gotO != LandscapeLeft || gotR != Rotate180 {
		t.Fatalf("listener got %v/%v", gotO, gotR)
	}
}

func TestTracker_UnmappedOrientationRetainsState(t *testing.T) {
	w := &mockWindows{current: LandscapeRight}
	c := &mockConnection{supports: true}
	tr := NewTracker(w, c, nil)
	tr.OnOrientationChanged()

	w.current = Unknown // device put flat on the desk
	tr.OnOrientationChanged()

	r, portrait := tr.Current()
	if r != Rotate0 || portrait {
		t.Fatalf("expected landscape-right state retained, got %v portrait=%v", r, portrait)
	}
	if len(c.set) != 1 {
		t.Fatalf("connection must not be re-programmed on unmapped orientation: %v", c.set)
	}
}

func TestTracker_UnsupportedConnectionIsNoop(t *testing.T) {
	w := &mockWindows{current: LandscapeLeft}
	c := &mockConnection{supports: false}
	tr := NewTracker(w, c, nil)

	tr.OnOrientationChanged()

	r, portrait := tr.Current()
	if r != Rotate90 || !portrait {
		t.Fatalf("expected initial portrait state retained, got %v portrait=%v", r, portrait)
	}
	if len(c.set) != 0 {
		t.Fatalf("rotation must not be pushed to an unsupported connection")
	}
}
