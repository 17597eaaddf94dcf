package verlet

// PointState tracks whether a point still participates in simulation.
// Deleted points keep their storage slot so that index-based topology
// (adjacency chains, connectors) stays stable.
type PointState uint8

const (
	PointAlive PointState = iota
	PointDeleted
)

// Point is a simulated mass. Pos and PrevPos carry the full Verlet state;
// a Mass of zero locks the point in place.
type Point struct {
	Pos     Vec2
	PrevPos Vec2
	Mass    float64
	Radius  float64
	State   PointState

	// Offset is the point's rest offset from the body's center of mass,
	// captured once by ShapeMatcher.Init and immutable afterward.
	Offset Vec2

	// ChainPrev is the index of the preceding point in a chain, for
	// orientation queries by external consumers. -1 when the point has no
	// predecessor. Never mutated by the solver.
	ChainPrev int
}

func (p *Point) Alive() bool {
	return p.State == PointAlive
}

// Locked reports whether the point is immovable.
func (p *Point) Locked() bool {
	return p.Mass == 0
}

// Velocity returns the implicit Verlet velocity in units per step.
func (p *Point) Velocity() Vec2 {
	return p.Pos.Sub(p.PrevPos)
}
