package collide

import "tether/internal/verlet"

// Circle is a solid disc.
type Circle struct {
	Pos    verlet.Vec2
	Radius float64
}

func NewCircle(x, y, radius float64) *Circle {
	return &Circle{Pos: verlet.Vec2{X: x, Y: y}, Radius: radius}
}

func (c *Circle) Contains(x, y float64) bool {
	dx := x - c.Pos.X
	dy := y - c.Pos.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (c *Circle) Center() verlet.Vec2 { return c.Pos }
