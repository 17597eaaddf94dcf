// Package field provides localized perturbations applied to the points of
// sibling bodies each step: oscillating wind, attraction toward a center,
// and point deletion. Fields act through the Verlet idiom: displacing a
// point's previous position injects implicit velocity without touching the
// integrator.
//
// All fields affect only alive, unlocked points within their radius.
package field

import (
	"math"

	"tether/internal/verlet"
)

// Field is the capability interface shared by the closed set of variants.
type Field interface {
	// Apply perturbs the points of the given sibling bodies for one step
	// of dt seconds.
	Apply(dt float64, bodies []*verlet.Body)
}

// Oscillate maps t onto a periodic wave between lo and hi with the given
// period and zero phase, so the wave starts at lo.
func Oscillate(t, period, lo, hi float64) float64 {
	if period <= 0 {
		return hi
	}
	return lo + (hi-lo)*0.5*(1-verlet.FastCos(2*math.Pi*t/period))
}
