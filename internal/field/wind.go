package field

import "tether/internal/verlet"

// Wind blows points within its radius along Direction. Strength oscillates
// between zero and Peak with period Period, starting at zero, so gusts
// build and die down instead of applying a constant push.
type Wind struct {
	Pos       verlet.Vec2
	Radius    float64
	Direction verlet.Vec2
	Peak      float64
	Period    float64

	clock float64
}

func NewWind(x, y, radius float64, direction verlet.Vec2, peak, period float64) *Wind {
	return &Wind{
		Pos:       verlet.Vec2{X: x, Y: y},
		Radius:    radius,
		Direction: direction,
		Peak:      peak,
		Period:    period,
	}
}

// Strength is the current gust strength.
func (w *Wind) Strength() float64 {
	return Oscillate(w.clock, w.Period, 0, w.Peak)
}

// Apply displaces each affected point's previous position opposite the
// wind direction by strength/mass * dt, which reads as velocity along the
// wind on the next integration.
func (w *Wind) Apply(dt float64, bodies []*verlet.Body) {
	w.clock += dt
	strength := w.Strength()
	dir := w.Direction.Unit()
	for _, b := range bodies {
		for _, p := range b.Points() {
			if p.Mass == 0 || !p.Alive() {
				continue
			}
			if p.Pos.Dist(w.Pos) > w.Radius {
				continue
			}
			f := strength / p.Mass * dt
			p.PrevPos.X -= dir.X * f
			p.PrevPos.Y -= dir.Y * f
		}
	}
}
