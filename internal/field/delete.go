package field

import "tether/internal/verlet"

// Delete marks every point within its radius as deleted through the
// owning body, which also strips the sticks attached to each point.
type Delete struct {
	Pos    verlet.Vec2
	Radius float64
}

func NewDelete(x, y, radius float64) *Delete {
	return &Delete{Pos: verlet.Vec2{X: x, Y: y}, Radius: radius}
}

func (d *Delete) Apply(dt float64, bodies []*verlet.Body) {
	for _, b := range bodies {
		pts := b.Points()
		// Reverse order: deletion mutates the stick collection.
		for i := len(pts) - 1; i >= 0; i-- {
			p := pts[i]
			if !p.Alive() {
				continue
			}
			if p.Pos.Dist(d.Pos) > d.Radius {
				continue
			}
			b.DeletePoint(i)
		}
	}
}
