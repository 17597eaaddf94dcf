package verlet

import (
	"math"
	"testing"
)

// square builds a 4-point body at the corners of a square centered on
// (cx, cy) with the matcher initialized on that layout.
func square(cx, cy, half float64) *Body {
	b := NewBody(1)
	b.AddPoint(cx-half, cy-half, 1)
	b.AddPoint(cx+half, cy-half, 1)
	b.AddPoint(cx+half, cy+half, 1)
	b.AddPoint(cx-half, cy+half, 1)
	b.EnableShapeMatching()
	return b
}

func TestMaintainShapeIdempotentAtRest(t *testing.T) {
	b := square(10, 20, 5)
	before := make([]Vec2, 0, 4)
	for _, p := range b.Points() {
		before = append(before, p.Pos)
	}

	for i := 0; i < 5; i++ {
		for j, p := range b.Points() {
			if p.Pos.Dist(before[j]) > 1e-9 {
				t.Fatalf("iteration %d moved point %d from %+v to %+v", i, j, before[j], p.Pos)
			}
		}
		NewShapeMatcher(b).Maintain()
	}
}

func TestMaintainShapePullsHalfway(t *testing.T) {
	b := square(0, 0, 1)

	// Deform one corner; the correction must move it halfway toward the
	// matched target, never snap it.
	p := b.Point(0)
	p.Pos = Vec2{X: -3, Y: -3}
	before := p.Pos

	m := NewShapeMatcher(b)
	m.Maintain()

	if p.Pos.Dist(before) == 0 {
		t.Fatal("deformed corner not corrected")
	}
	rest := Vec2{X: -1, Y: -1}
	if p.Pos.Dist(rest) >= before.Dist(rest) {
		t.Errorf("correction moved corner away from rest: %+v", p.Pos)
	}
}

func TestMaintainShapeRecoversRotation(t *testing.T) {
	b := square(0, 0, 1)

	// Rotate the whole body rigidly; the matched target equals the
	// current layout, so Maintain must not move anything.
	angle := 0.7
	s, c := math.Sin(angle), math.Cos(angle)
	for _, p := range b.Points() {
		x, y := p.Pos.X, p.Pos.Y
		p.Pos = Vec2{X: c*x - s*y, Y: s*x + c*y}
	}
	before := make([]Vec2, 0, 4)
	for _, p := range b.Points() {
		before = append(before, p.Pos)
	}

	NewShapeMatcher(b).Maintain()

	for i, p := range b.Points() {
		if p.Pos.Dist(before[i]) > 1e-9 {
			t.Errorf("rigidly rotated point %d moved: %+v -> %+v", i, before[i], p.Pos)
		}
	}
}

func TestMaintainShapeDegenerateSkipped(t *testing.T) {
	// All points collapsed onto the center: accumulation matrix is zero,
	// correction must be skipped rather than dividing by zero.
	b := NewBody(1)
	b.AddPoint(0, 0, 1)
	b.AddPoint(0, 0, 1)
	b.EnableShapeMatching()

	NewShapeMatcher(b).Maintain()

	for _, p := range b.Points() {
		if p.Pos != (Vec2{}) {
			t.Errorf("degenerate configuration moved point to %+v", p.Pos)
		}
		if !p.Pos.IsValid() {
			t.Error("degenerate configuration produced non-finite position")
		}
	}
}

func TestInitCapturesOffsets(t *testing.T) {
	b := NewBody(1)
	b.AddPoint(0, 0, 1)
	b.AddPoint(4, 0, 1)
	b.EnableShapeMatching()

	if b.Point(0).Offset != (Vec2{X: -2}) || b.Point(1).Offset != (Vec2{X: 2}) {
		t.Errorf("unexpected offsets: %+v %+v", b.Point(0).Offset, b.Point(1).Offset)
	}
}
