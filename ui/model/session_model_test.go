package model

import (
	"testing"
	"time"

	"github.com/soocke/docscan-go/domain/geometry"
)

func TestSessionModel_BasicLifecycle(t *testing.T) {
	m := NewSessionModel()
	base := time.Unix(0, 0)

	// Go live at t0 and scan for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	live, total := m.Values()
	if live < 5*time.Second || total < 5*time.Second {
		t.Fatalf("expected ~5s live & total; got live=%v total=%v", live, total)
	}

	// Screen hidden at 5s.
	m.OnTick(false, base.Add(5*time.Second))
	live, total = m.Values()
	if live < 5*time.Second || total < 5*time.Second {
		t.Fatalf("after stop expected persisted 5s; got live=%v total=%v", live, total)
	}

	// Idle 2s (no change expected).
	m.OnTick(false, base.Add(7*time.Second))
	live2, total2 := m.Values()
	if live2 != live || total2 != total {
		t.Fatalf("idle tick should not change durations: before live=%v total=%v after live=%v total=%v", live, total, live2, total2)
	}

	// Second live stretch at 10s lasting 3s.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	l3, t3 := m.Values()
	if l3 < 3*time.Second {
		t.Fatalf("second stretch expected >=3s, got %v", l3)
	}
	if t3 < 8*time.Second { // 5 + 3 ongoing
		t.Fatalf("total should include previous 5s + current >=3s (>=8s); got %v", t3)
	}

	// Stop the second stretch, finalizing totals.
	m.OnTick(false, base.Add(13*time.Second))
	lFinal, tFinal := m.Values()
	if lFinal < 3*time.Second || tFinal < 8*time.Second {
		t.Fatalf("final expected live >=3s total >=8s got live=%v total=%v", lFinal, tFinal)
	}
}

func TestOverlayModel_SetClearIdempotent(t *testing.T) {
	m := NewOverlayModel()
	if m.Current() != nil {
		t.Fatalf("zero value should be clear")
	}
	m.Clear() // clearing an already-clear model is a no-op
	if m.Current() != nil {
		t.Fatalf("clear on empty model must stay clear")
	}
	m.Set(geometry.QuadForSize(geometry.Size{Width: 10, Height: 10}))
	if m.Current() == nil {
		t.Fatalf("expected a stored quad")
	}
	m.Clear()
	if m.Current() != nil {
		t.Fatalf("expected clear after Clear")
	}
}
