package collide

import "tether/internal/verlet"

// Box is a solid axis-aligned rectangle.
type Box struct {
	Min, Max verlet.Vec2
}

func NewBox(minX, minY, maxX, maxY float64) *Box {
	return &Box{
		Min: verlet.Vec2{X: minX, Y: minY},
		Max: verlet.Vec2{X: maxX, Y: maxY},
	}
}

func (b *Box) Contains(x, y float64) bool {
	return x >= b.Min.X && x <= b.Max.X && y >= b.Min.Y && y <= b.Max.Y
}

func (b *Box) Center() verlet.Vec2 {
	return verlet.Vec2{
		X: (b.Min.X + b.Max.X) / 2,
		Y: (b.Min.Y + b.Max.Y) / 2,
	}
}
