package field

import "tether/internal/verlet"

// Attract pulls the previous position of every affected point toward the
// field center by Strength * dt, independent of mass.
type Attract struct {
	Pos      verlet.Vec2
	Radius   float64
	Strength float64
}

func NewAttract(x, y, radius, strength float64) *Attract {
	return &Attract{Pos: verlet.Vec2{X: x, Y: y}, Radius: radius, Strength: strength}
}

func (a *Attract) Apply(dt float64, bodies []*verlet.Body) {
	for _, b := range bodies {
		for _, p := range b.Points() {
			if p.Mass == 0 || !p.Alive() {
				continue
			}
			if p.Pos.Dist(a.Pos) > a.Radius {
				continue
			}
			pull := a.Pos.Sub(p.PrevPos).Unit().Scale(a.Strength * dt)
			p.PrevPos.X += pull.X
			p.PrevPos.Y += pull.Y
		}
	}
}
