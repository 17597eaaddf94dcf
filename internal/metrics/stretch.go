// Package metrics provides per-step observations over simulated bodies.
package metrics

import (
	"math"

	"tether/internal/verlet"
)

type Metric interface {
	Name() string
	Observe(b *verlet.Body, t float64)
	Value() float64
	Reset()
}

// MaxStretch tracks the worst stick stretch ratio seen across all
// observations. Useful for judging how close a topology runs to its tear
// thresholds.
type MaxStretch struct {
	max float64
}

func NewMaxStretch() *MaxStretch { return &MaxStretch{} }

func (m *MaxStretch) Name() string { return "max_stretch" }

func (m *MaxStretch) Observe(b *verlet.Body, t float64) {
	for _, s := range b.Sticks() {
		m.max = math.Max(m.max, s.Stretch())
	}
}

func (m *MaxStretch) Value() float64 { return m.max }

func (m *MaxStretch) Reset() { m.max = 0 }

// Kinetic averages the kinetic energy implied by the Verlet state,
// 0.5*m*|v|^2 with v = (pos - prev) / dt, over all observations.
type Kinetic struct {
	dt      float64
	total   float64
	samples int
}

func NewKinetic(dt float64) *Kinetic {
	return &Kinetic{dt: dt}
}

func (k *Kinetic) Name() string { return "kinetic_energy" }

func (k *Kinetic) Observe(b *verlet.Body, t float64) {
	if k.dt == 0 {
		return
	}
	e := 0.0
	for _, p := range b.Points() {
		if p.Mass == 0 || !p.Alive() {
			continue
		}
		v := p.Velocity().Scale(1 / k.dt)
		e += 0.5 * p.Mass * v.Dot(v)
	}
	k.total += e
	k.samples++
}

func (k *Kinetic) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *Kinetic) Reset() {
	k.total = 0
	k.samples = 0
}
