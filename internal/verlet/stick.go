package verlet

// NoTear disables tearing for a stick.
const NoTear = -1

// Stick is a distance constraint between two points. It does not own its
// endpoints; the body does.
type Stick struct {
	A, B       *Point
	RestLength float64

	// TearThreshold is the stretch ratio (length / rest length) beyond
	// which the stick breaks, or NoTear.
	TearThreshold float64
}

func (s *Stick) Length() float64 {
	return s.A.Pos.Dist(s.B.Pos)
}

// Stretch returns the current stretch ratio. A rest length of zero is a
// builder contract violation and reports 0.
func (s *Stick) Stretch() float64 {
	if s.RestLength == 0 {
		return 0
	}
	return s.Length() / s.RestLength
}

func (s *Stick) Tearable() bool {
	return s.TearThreshold != NoTear
}
