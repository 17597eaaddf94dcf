package verlet

import "math"

// ShapeMatcher pulls a body's points toward a rotated copy of their rest
// layout around the current center of mass, approximating rigid-body
// behavior on top of the constraint solver.
//
// The rotation estimate is a cheap polar-decomposition proxy: only the
// first column of the accumulation matrix is normalized, and orthogonality
// is never enforced. Under large deformation the correction can shear;
// this matches the reference behavior and is not an exact rigid solve.
type ShapeMatcher struct {
	body *Body
}

func NewShapeMatcher(b *Body) *ShapeMatcher {
	return &ShapeMatcher{body: b}
}

// Init captures each point's offset from the current center of mass as its
// rest offset. Call once, after the body's points are placed.
func (m *ShapeMatcher) Init() {
	center := m.centerOfMass()
	for _, p := range m.body.points {
		p.Offset = p.Pos.Sub(center)
	}
}

// Maintain nudges every point halfway toward center + R*offset, where R is
// the approximate rotation of the current layout against the rest shape.
// Degenerate configurations (zero determinant or zero column norm) skip
// the correction for this step.
func (m *ShapeMatcher) Maintain() {
	if len(m.body.points) == 0 {
		return
	}
	center := m.centerOfMass()

	// Accumulate sum of (pos - center) outer offset.
	var axx, axy, ayx, ayy float64
	for _, p := range m.body.points {
		dx := p.Pos.X - center.X
		dy := p.Pos.Y - center.Y
		axx += dx * p.Offset.X
		axy += dx * p.Offset.Y
		ayx += dy * p.Offset.X
		ayy += dy * p.Offset.Y
	}

	det := axx*ayy - axy*ayx
	scale := math.Hypot(axx, ayx)
	if det == 0 || scale == 0 {
		return
	}

	// First column of A, normalized, read as (cos, sin).
	cos := axx / scale
	sin := ayx / scale

	for _, p := range m.body.points {
		tx := center.X + cos*p.Offset.X - sin*p.Offset.Y
		ty := center.Y + sin*p.Offset.X + cos*p.Offset.Y
		p.Pos.X += (tx - p.Pos.X) / 2
		p.Pos.Y += (ty - p.Pos.Y) / 2
	}
}

// centerOfMass is the arithmetic mean of all point positions, deleted
// slots included, so offsets stay aligned with storage order.
func (m *ShapeMatcher) centerOfMass() Vec2 {
	var c Vec2
	n := len(m.body.points)
	if n == 0 {
		return c
	}
	for _, p := range m.body.points {
		c.X += p.Pos.X
		c.Y += p.Pos.Y
	}
	c.X /= float64(n)
	c.Y /= float64(n)
	return c
}
