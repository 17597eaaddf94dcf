// Package collide provides solid shapes that push simulated points out of
// their interior. Shapes are pure point-in-shape predicates; the resolver
// walks overlapping points outward along the radial direction from the
// shape center.
package collide

import (
	"math"

	"tether/internal/verlet"
)

const (
	// outStep and inStep bound the push-out walk: advance outward in
	// whole units, then re-approach the surface in tenths.
	outStep = 1.0
	inStep  = 0.1

	// maxResolveSteps caps the combined outward/inward walk per point.
	// Overflow leaves the point at its last computed position.
	maxResolveSteps = 256

	// snapDistance is the settled-point shortcut: a point that moved less
	// than this since last frame, from a clean previous position, snaps
	// straight back.
	snapDistance = 1.0
)

// Shape is the point-in-shape contract. Contains must be pure and callable
// at arbitrary rates; Center is re-read every step so moving shapes work.
type Shape interface {
	Contains(x, y float64) bool
	Center() verlet.Vec2
}

// Collider pairs a shape with an invert flag. When Invert is set, inside
// and outside swap: points are kept within the shape instead of out of it.
type Collider struct {
	shape  Shape
	Invert bool
}

func New(shape Shape) *Collider {
	return &Collider{shape: shape}
}

func NewInverted(shape Shape) *Collider {
	return &Collider{shape: shape, Invert: true}
}

func (c *Collider) Shape() Shape { return c.shape }

// Collide reports whether (x, y) is solid for this collider.
func (c *Collider) Collide(x, y float64) bool {
	return c.shape.Contains(x, y) != c.Invert
}

// Step pushes every overlapping unlocked point of the given bodies out of
// the solid region, then zeroes its implicit velocity so the correction
// injects no energy. Returns the number of points whose resolution hit the
// iteration cap.
func (c *Collider) Step(dt float64, bodies []*verlet.Body) int {
	center := c.shape.Center()
	overflowed := 0
	for _, b := range bodies {
		for _, p := range b.Points() {
			if p.Mass == 0 || !p.Alive() {
				continue
			}
			if !c.Collide(p.Pos.X, p.Pos.Y) {
				continue
			}
			if p.Pos.Dist(p.PrevPos) < snapDistance && !c.Collide(p.PrevPos.X, p.PrevPos.Y) {
				p.Pos = p.PrevPos
				continue
			}
			if !c.resolve(p, center) {
				overflowed++
			}
			p.PrevPos = p.Pos
		}
	}
	return overflowed
}

// resolve walks p outward from the shape center in outStep increments
// until it leaves the solid region, then retreats in inStep increments
// while the next retreat would stay outside. Reports false when the cap
// was hit and the point may still be inside.
func (c *Collider) resolve(p *verlet.Point, center verlet.Vec2) bool {
	angle := math.Atan2(p.Pos.Y-center.Y, p.Pos.X-center.X)
	if c.Invert {
		angle += math.Pi
	}
	sin, cos := verlet.FastSinCos(angle)

	steps := 0
	for c.Collide(p.Pos.X, p.Pos.Y) {
		if steps >= maxResolveSteps {
			return false
		}
		p.Pos.X += cos * outStep
		p.Pos.Y += sin * outStep
		steps++
	}
	for steps < maxResolveSteps {
		x := p.Pos.X - cos*inStep
		y := p.Pos.Y - sin*inStep
		if c.Collide(x, y) {
			break
		}
		p.Pos.X = x
		p.Pos.Y = y
		steps++
	}
	return true
}
