package main

import (
	"fmt"
	"math"

	"tether/internal/config"
	"tether/internal/field"
	"tether/internal/verlet"
	"tether/internal/world"
)

// Scene topology lives here, outside the core: bodies are assembled
// through AddPoint/AddStick only.

// buildRope hangs a rope of cfg.Rope.Segments sticks from a pinned top
// point at the origin.
func buildRope(cfg *config.Config) *verlet.Body {
	segments := cfg.Rope.Segments
	if segments < 1 {
		segments = 1
	}
	spacing := cfg.Rope.Length / float64(segments)

	b := verlet.NewBody(cfg.Stiffness)
	prev := b.AddPoint(0, 0, 0)
	for i := 1; i <= segments; i++ {
		p := b.AddPoint(0, float64(i)*spacing, 1)
		b.AddStick(prev, p, spacing, cfg.Tear)
		prev = p
	}
	return b
}

// buildCloth builds a rows x cols grid pinned along its top row, with
// structural sticks between horizontal and vertical neighbors.
func buildCloth(cfg *config.Config) *verlet.Body {
	cols, rows := cfg.Cloth.Cols, cfg.Cloth.Rows
	spacing := cfg.Cloth.Spacing

	b := verlet.NewBody(cfg.Stiffness)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			mass := 1.0
			if r == 0 {
				mass = 0 // pin the top row
			}
			b.AddPoint(float64(c)*spacing, float64(r)*spacing, mass)
		}
	}
	at := func(r, c int) *verlet.Point { return b.Point(r*cols + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				b.AddStick(at(r, c), at(r, c+1), spacing, cfg.Tear)
			}
			if r+1 < rows {
				b.AddStick(at(r, c), at(r+1, c), spacing, cfg.Tear)
			}
		}
	}
	return b
}

// buildBox builds a shape-matched soft square: four corners, edge and
// diagonal sticks, with rigidity maintained by the shape matcher.
func buildBox(cfg *config.Config) *verlet.Body {
	half := cfg.Box.Size / 2

	b := verlet.NewBody(cfg.Stiffness)
	tl := b.AddPoint(-half, -half, 1)
	tr := b.AddPoint(half, -half, 1)
	br := b.AddPoint(half, half, 1)
	bl := b.AddPoint(-half, half, 1)

	edge := cfg.Box.Size
	diag := edge * math.Sqrt2
	b.AddStick(tl, tr, edge, cfg.Tear)
	b.AddStick(tr, br, edge, cfg.Tear)
	b.AddStick(br, bl, edge, cfg.Tear)
	b.AddStick(bl, tl, edge, cfg.Tear)
	b.AddStick(tl, br, diag, cfg.Tear)
	b.AddStick(tr, bl, diag, cfg.Tear)

	b.EnableShapeMatching()
	return b
}

// buildWorld assembles a world from a scenario config: the body, plus any
// enabled fields.
func buildWorld(cfg *config.Config) (*world.World, *verlet.Body, error) {
	var b *verlet.Body
	switch cfg.Scenario {
	case "rope":
		b = buildRope(cfg)
	case "cloth":
		b = buildCloth(cfg)
	case "box":
		b = buildBox(cfg)
	default:
		return nil, nil, fmt.Errorf("unknown scenario: %s", cfg.Scenario)
	}

	w := world.New(world.Env{Gravity: cfg.Gravity, Friction: cfg.Friction})
	w.AddBody(b)

	if cfg.Wind.Enabled {
		w.AddField(field.NewWind(
			cfg.Wind.X, cfg.Wind.Y, cfg.Wind.Radius,
			verlet.V(cfg.Wind.DirX, cfg.Wind.DirY),
			cfg.Wind.Peak, cfg.Wind.Period))
	}
	if cfg.Attract.Enabled {
		w.AddField(field.NewAttract(
			cfg.Attract.X, cfg.Attract.Y, cfg.Attract.Radius, cfg.Attract.Strength))
	}
	return w, b, nil
}
