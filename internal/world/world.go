// Package world provides the reference orchestrator for the physics core:
// an ordered container of bodies, colliders and fields stepped once per
// frame. Bodies integrate and relax first, then colliders correct, then
// fields perturb, so position-dependent components always see current
// positions within the same frame.
package world

import (
	"fmt"

	"tether/internal/collide"
	"tether/internal/field"
	"tether/internal/metrics"
	"tether/internal/verlet"
)

// Env holds the scalars shared by every body in a world.
type Env struct {
	Gravity  float64
	Friction float64
}

// World owns its objects and is NOT thread-safe; one caller steps it per
// frame.
type World struct {
	Env Env

	bodies    []*verlet.Body
	colliders []*collide.Collider
	fields    []field.Field
	metrics   []metrics.Metric

	t     float64
	swept int

	// Overflows counts collider resolutions that hit the iteration cap.
	Overflows int
}

func New(env Env) *World {
	return &World{Env: env}
}

func (w *World) AddBody(b *verlet.Body) { w.bodies = append(w.bodies, b) }

func (w *World) AddCollider(c *collide.Collider) { w.colliders = append(w.colliders, c) }

func (w *World) AddField(f field.Field) { w.fields = append(w.fields, f) }

func (w *World) AddMetric(m metrics.Metric) { w.metrics = append(w.metrics, m) }

// Bodies is the sibling query handed to colliders and fields.
func (w *World) Bodies() []*verlet.Body { return w.bodies }

func (w *World) Time() float64 { return w.t }

// Step advances the world by dt seconds in the fixed frame order, then
// sweeps exhausted bodies out of the container.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.Step(dt, w.Env.Gravity, w.Env.Friction)
	}
	for _, c := range w.colliders {
		w.Overflows += c.Step(dt, w.bodies)
	}
	for _, f := range w.fields {
		f.Apply(dt, w.bodies)
	}
	w.t += dt

	for _, m := range w.metrics {
		for _, b := range w.bodies {
			m.Observe(b, w.t)
		}
	}

	for i := len(w.bodies) - 1; i >= 0; i-- {
		if w.bodies[i].Exhausted() {
			w.bodies = append(w.bodies[:i], w.bodies[i+1:]...)
			w.swept++
		}
	}
}

// Check reports accumulated simulation health: a body with a non-finite
// position, resolutions that hit the iteration cap, or a world emptied by
// the exhausted-body sweep.
func (w *World) Check() error {
	for i, b := range w.bodies {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("body %d: %w", i, err)
		}
	}
	if w.Overflows > 0 {
		return fmt.Errorf("%d points unresolved: %w", w.Overflows, verlet.ErrResolveOverflow)
	}
	if len(w.bodies) == 0 && w.swept > 0 {
		return fmt.Errorf("all bodies swept: %w", verlet.ErrExhausted)
	}
	return nil
}

// Run steps the world for the given duration at a fixed dt and returns the
// number of steps taken.
func (w *World) Run(dt, duration float64) int {
	steps := int(duration / dt)
	for i := 0; i < steps; i++ {
		w.Step(dt)
	}
	return steps
}

// MetricValues snapshots the registered metrics by name.
func (w *World) MetricValues() map[string]float64 {
	out := make(map[string]float64, len(w.metrics))
	for _, m := range w.metrics {
		out[m.Name()] = m.Value()
	}
	return out
}
