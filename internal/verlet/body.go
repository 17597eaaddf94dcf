package verlet

import (
	"fmt"
	"math"
)

// StabilizeSeconds is the grace period after body creation during which
// tearing is suppressed, so initial-condition transients cannot snap
// freshly placed sticks.
const StabilizeSeconds = 4.0

// Body owns an ordered collection of points and the sticks constraining
// them. Step runs one simulation tick: Verlet integration, Stiffness
// relaxation passes with tearing, optional shape matching, stabilization
// countdown.
type Body struct {
	points []*Point
	sticks []*Stick

	// Stiffness is the number of constraint-relaxation passes per step.
	Stiffness int

	// StabilizeTimer counts down in wall-clock seconds; tearing is
	// suppressed while it is positive.
	StabilizeTimer float64

	matcher *ShapeMatcher
}

func NewBody(stiffness int) *Body {
	if stiffness < 1 {
		stiffness = 1
	}
	return &Body{
		Stiffness:      stiffness,
		StabilizeTimer: StabilizeSeconds,
	}
}

// AddPoint appends a point at (x, y) at rest and returns it. A mass of
// zero locks the point. The new point's ChainPrev references the
// previously added point, matching chain assembly order.
func (b *Body) AddPoint(x, y, mass float64) *Point {
	p := &Point{
		Pos:       Vec2{X: x, Y: y},
		PrevPos:   Vec2{X: x, Y: y},
		Mass:      mass,
		ChainPrev: len(b.points) - 1,
	}
	b.points = append(b.points, p)
	return p
}

// AddStick constrains a and b to restLength apart. tearThreshold is a
// stretch ratio beyond which the stick breaks, or NoTear.
func (b *Body) AddStick(p1, p2 *Point, restLength, tearThreshold float64) *Stick {
	s := &Stick{A: p1, B: p2, RestLength: restLength, TearThreshold: tearThreshold}
	b.sticks = append(b.sticks, s)
	return s
}

// Points exposes the point slots for read-only iteration. Deleted points
// keep their slot; callers cull on State.
func (b *Body) Points() []*Point { return b.points }

func (b *Body) Sticks() []*Stick { return b.sticks }

// Point returns the point at index i. Out-of-range indices are a caller
// contract violation and panic.
func (b *Body) Point(i int) *Point { return b.points[i] }

func (b *Body) First() *Point { return b.points[0] }

func (b *Body) Center() *Point { return b.points[len(b.points)/2] }

func (b *Body) Last() *Point { return b.points[len(b.points)-1] }

func (b *Body) PointCount() int { return len(b.points) }

func (b *Body) StickCount() int { return len(b.sticks) }

// Exhausted reports whether the body has no sticks left. Exhausted bodies
// are eligible for removal by their container; the body never removes
// itself.
func (b *Body) Exhausted() bool { return len(b.sticks) == 0 }

// DeletePoint marks the point at index i as deleted and removes every
// stick referencing it. The slot persists. Deleting an already-deleted
// point is a no-op.
func (b *Body) DeletePoint(i int) {
	p := b.points[i]
	if p.State == PointDeleted {
		return
	}
	p.State = PointDeleted
	for j := len(b.sticks) - 1; j >= 0; j-- {
		s := b.sticks[j]
		if s.A == p || s.B == p {
			b.removeStick(j)
		}
	}
}

// EnableShapeMatching attaches a shape matcher and captures the current
// layout as the rest shape. Call once, after all points are placed.
func (b *Body) EnableShapeMatching() *ShapeMatcher {
	b.matcher = NewShapeMatcher(b)
	b.matcher.Init()
	return b.matcher
}

// Step advances the body by dt seconds under the given gravity and
// friction. Gravity acts as a downward (+y) acceleration independent of
// mass; friction in [0, 1) damps the integration.
func (b *Body) Step(dt, gravity, friction float64) {
	b.integrate(dt, gravity, friction)
	for pass := 0; pass < b.Stiffness; pass++ {
		b.relax()
	}
	if b.matcher != nil {
		b.matcher.Maintain()
	}
	b.StabilizeTimer = math.Max(0, b.StabilizeTimer-dt)
}

// integrate moves every unlocked, alive point by discrete Verlet:
// new = 2*cur - prev + a*damping, with damping = (1-friction)*min(1,dt)^2.
func (b *Body) integrate(dt, gravity, friction float64) {
	step := math.Min(1, dt)
	damping := (1 - friction) * step * step
	for _, p := range b.points {
		if p.Mass == 0 || p.State == PointDeleted {
			continue
		}
		cur := p.Pos
		p.Pos.X = 2*cur.X - p.PrevPos.X
		p.Pos.Y = 2*cur.Y - p.PrevPos.Y + gravity*damping
		p.PrevPos = cur
	}
}

// relax runs a single constraint pass over all sticks in reverse index
// order, so tearing can remove the current stick without skipping any.
// A zero-mass endpoint absorbs no correction; the other endpoint still
// receives only its half share.
func (b *Body) relax() {
	for i := len(b.sticks) - 1; i >= 0; i-- {
		s := b.sticks[i]
		dx := s.B.Pos.X - s.A.Pos.X
		dy := s.B.Pos.Y - s.A.Pos.Y
		length := math.Hypot(dx, dy)
		if length > 0 {
			f := 0.5 * (s.RestLength - length) / length
			ox, oy := dx*f, dy*f
			if s.A.Mass > 0 {
				s.A.Pos.X -= ox
				s.A.Pos.Y -= oy
			}
			if s.B.Mass > 0 {
				s.B.Pos.X += ox
				s.B.Pos.Y += oy
			}
		}
		if s.Tearable() && b.StabilizeTimer == 0 && length > s.RestLength*s.TearThreshold {
			b.removeStick(i)
		}
	}
}

func (b *Body) removeStick(i int) {
	b.sticks = append(b.sticks[:i], b.sticks[i+1:]...)
}

// IndexOf returns the slot index of p, or -1 when p does not belong to
// this body.
func (b *Body) IndexOf(p *Point) int {
	for i, q := range b.points {
		if q == p {
			return i
		}
	}
	return -1
}

// Validate returns ErrInvalidState, wrapped with the offending slot index,
// when any point position is non-finite.
func (b *Body) Validate() error {
	for i, p := range b.points {
		if !p.Pos.IsValid() || !p.PrevPos.IsValid() {
			return fmt.Errorf("point %d: %w", i, ErrInvalidState)
		}
	}
	return nil
}

// Valid reports whether every point position is finite.
func (b *Body) Valid() bool { return b.Validate() == nil }
