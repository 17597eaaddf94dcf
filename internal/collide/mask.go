package collide

import "tether/internal/verlet"

// Mask adapts an arbitrary point-in-shape predicate, e.g. a bitmap or
// sprite alpha test owned by a renderer. The predicate must answer
// consistently near the boundary or the resolver falls back to its
// iteration cap.
type Mask struct {
	Pos  verlet.Vec2
	Test func(x, y float64) bool
}

func NewMask(x, y float64, test func(x, y float64) bool) *Mask {
	return &Mask{Pos: verlet.Vec2{X: x, Y: y}, Test: test}
}

func (m *Mask) Contains(x, y float64) bool {
	return m.Test(x, y)
}

func (m *Mask) Center() verlet.Vec2 { return m.Pos }
