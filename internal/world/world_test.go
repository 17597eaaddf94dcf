package world

import (
	"errors"
	"math"
	"testing"

	"tether/internal/collide"
	"tether/internal/field"
	"tether/internal/metrics"
	"tether/internal/verlet"
)

// hangingRope builds a vertical rope with a pinned top point.
func hangingRope(segments int, spacing float64, stiffness int) *verlet.Body {
	b := verlet.NewBody(stiffness)
	prev := b.AddPoint(0, 0, 0)
	for i := 1; i <= segments; i++ {
		p := b.AddPoint(0, float64(i)*spacing, 1)
		b.AddStick(prev, p, spacing, verlet.NoTear)
		prev = p
	}
	return b
}

func TestRopeSagsUnderGravity(t *testing.T) {
	rope := hangingRope(4, 25, 4)
	w := New(Env{Gravity: 0.5, Friction: 0.05})
	w.AddBody(rope)

	steps := w.Run(1.0/60.0, 1.0)
	if steps != 60 {
		t.Fatalf("expected 60 steps, got %d", steps)
	}

	if rope.First().Pos != (verlet.Vec2{}) {
		t.Errorf("pinned point moved: %+v", rope.First().Pos)
	}
	last := rope.Last()
	if math.Abs(last.Pos.X) > 1e-9 {
		t.Errorf("unexpected horizontal drift: %f", last.Pos.X)
	}
	if last.Pos.Y <= 100 || last.Pos.Y > 110 {
		t.Errorf("expected sag slightly past 100, got %f", last.Pos.Y)
	}
}

func TestColliderRunsAfterBodies(t *testing.T) {
	// Drop a single-segment body onto a circle; after every step no
	// unlocked point may remain inside the collider.
	b := verlet.NewBody(2)
	p1 := b.AddPoint(-5, -30, 1)
	p2 := b.AddPoint(5, -30, 1)
	b.AddStick(p1, p2, 10, verlet.NoTear)

	w := New(Env{Gravity: 30, Friction: 0})
	w.AddBody(b)
	c := collide.New(collide.NewCircle(0, 0, 12))
	w.AddCollider(c)

	for i := 0; i < 240; i++ {
		w.Step(1.0 / 60.0)
		for _, p := range b.Points() {
			if c.Collide(p.Pos.X, p.Pos.Y) {
				t.Fatalf("step %d: point inside collider at %+v", i, p.Pos)
			}
		}
	}
	if w.Overflows != 0 {
		t.Errorf("unexpected resolve overflows: %d", w.Overflows)
	}
}

func TestDeleteFieldExhaustsBody(t *testing.T) {
	b := verlet.NewBody(1)
	a := b.AddPoint(0, 0, 0)
	c := b.AddPoint(5, 0, 1)
	b.AddStick(a, c, 5, verlet.NoTear)

	w := New(Env{})
	w.AddBody(b)
	w.AddField(field.NewDelete(0, 0, 50))

	w.Step(1.0 / 60.0)

	if !b.Exhausted() {
		t.Fatal("expected body exhausted after delete field")
	}
	// The end-of-step sweep removes exhausted bodies from the container.
	if len(w.Bodies()) != 0 {
		t.Errorf("exhausted body not swept, %d remain", len(w.Bodies()))
	}
}

func TestMetricsObserved(t *testing.T) {
	b := verlet.NewBody(1)
	p0 := b.AddPoint(0, 0, 1)
	p1 := b.AddPoint(0, 12, 1)
	b.AddStick(p0, p1, 10, verlet.NoTear)

	w := New(Env{Gravity: 1})
	w.AddBody(b)
	w.AddMetric(metrics.NewMaxStretch())

	w.Step(1.0 / 60.0)

	vals := w.MetricValues()
	if _, ok := vals["max_stretch"]; !ok {
		t.Fatal("max_stretch metric not observed")
	}
	if vals["max_stretch"] <= 0 {
		t.Errorf("expected positive stretch, got %f", vals["max_stretch"])
	}
}

func TestWindBendsRope(t *testing.T) {
	rope := hangingRope(4, 25, 4)
	rope.StabilizeTimer = 0

	w := New(Env{Gravity: 0.5, Friction: 0.05})
	w.AddBody(rope)
	w.AddField(field.NewWind(0, 50, 200, verlet.V(1, 0), 6, 1))

	w.Run(1.0/60.0, 2.0)

	if rope.Last().Pos.X <= 0 {
		t.Errorf("expected rope blown along +x, last x = %f", rope.Last().Pos.X)
	}
	if !rope.Valid() {
		t.Error("non-finite state under wind")
	}
}

func TestCheckReportsDomainErrors(t *testing.T) {
	// A healthy world checks clean.
	w := New(Env{Gravity: 0.5})
	w.AddBody(hangingRope(4, 25, 4))
	w.Step(1.0 / 60.0)
	if err := w.Check(); err != nil {
		t.Fatalf("healthy world reported %v", err)
	}

	// A point driven non-finite surfaces ErrInvalidState.
	w.Bodies()[0].Last().Pos.Y = math.NaN()
	if !errors.Is(w.Check(), verlet.ErrInvalidState) {
		t.Errorf("expected ErrInvalidState, got %v", w.Check())
	}
}

func TestCheckReportsResolveOverflow(t *testing.T) {
	b := verlet.NewBody(1)
	p0 := b.AddPoint(3, 0, 1)
	p1 := b.AddPoint(13, 0, 1)
	b.AddStick(p0, p1, 10, verlet.NoTear)

	// A predicate with no outside can never resolve; both points hit the
	// iteration cap.
	w := New(Env{})
	w.AddBody(b)
	w.AddCollider(collide.New(collide.NewMask(0, 0, func(x, y float64) bool { return true })))

	w.Step(1.0 / 60.0)

	if w.Overflows != 2 {
		t.Fatalf("expected 2 overflows, got %d", w.Overflows)
	}
	if !errors.Is(w.Check(), verlet.ErrResolveOverflow) {
		t.Errorf("expected ErrResolveOverflow, got %v", w.Check())
	}
}

func TestCheckReportsExhaustedWorld(t *testing.T) {
	b := verlet.NewBody(1)
	a := b.AddPoint(0, 0, 0)
	c := b.AddPoint(5, 0, 1)
	b.AddStick(a, c, 5, verlet.NoTear)

	w := New(Env{})
	w.AddBody(b)
	w.AddField(field.NewDelete(0, 0, 50))

	w.Step(1.0 / 60.0)

	if !errors.Is(w.Check(), verlet.ErrExhausted) {
		t.Errorf("expected ErrExhausted after sweep, got %v", w.Check())
	}

	// An empty world that never held a body is not exhausted.
	if err := New(Env{}).Check(); err != nil {
		t.Errorf("fresh empty world reported %v", err)
	}
}
