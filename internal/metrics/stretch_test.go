package metrics

import (
	"math"
	"testing"

	"tether/internal/verlet"
)

func TestMaxStretch(t *testing.T) {
	b := verlet.NewBody(1)
	a := b.AddPoint(0, 0, 1)
	c := b.AddPoint(15, 0, 1)
	b.AddStick(a, c, 10, verlet.NoTear)

	m := NewMaxStretch()
	m.Observe(b, 0)
	if math.Abs(m.Value()-1.5) > 1e-9 {
		t.Errorf("expected max stretch 1.5, got %f", m.Value())
	}

	// A later, shorter observation must not lower the maximum.
	c.Pos.X = 10
	m.Observe(b, 1)
	if math.Abs(m.Value()-1.5) > 1e-9 {
		t.Errorf("maximum regressed to %f", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestKinetic(t *testing.T) {
	dt := 0.1
	b := verlet.NewBody(1)
	p := b.AddPoint(0, 0, 2)
	p.PrevPos = verlet.V(-0.3, 0) // v = 3 units/s

	k := NewKinetic(dt)
	k.Observe(b, 0)

	want := 0.5 * 2 * 9.0
	if math.Abs(k.Value()-want) > 1e-9 {
		t.Errorf("expected kinetic energy %f, got %f", want, k.Value())
	}

	k.Reset()
	if k.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestKineticSkipsLockedAndDeleted(t *testing.T) {
	b := verlet.NewBody(1)
	locked := b.AddPoint(0, 0, 0)
	locked.PrevPos = verlet.V(-5, 0)
	moving := b.AddPoint(0, 0, 1)
	moving.PrevPos = verlet.V(-1, 0)
	b.DeletePoint(1)

	k := NewKinetic(1)
	k.Observe(b, 0)
	if k.Value() != 0 {
		t.Errorf("locked/deleted points contributed energy: %f", k.Value())
	}
}
