package verlet

import "math"

// TrigTable provides precomputed sin/cos with linear interpolation, for
// the per-point angle work in field and collision scans.
type TrigTable struct {
	sin []float64
	cos []float64
	n   int
}

// Default table: 4096 entries, ~0.0015 rad resolution.
var defaultTrig = NewTrigTable(4096)

func NewTrigTable(n int) *TrigTable {
	t := &TrigTable{
		sin: make([]float64, n),
		cos: make([]float64, n),
		n:   n,
	}
	for i := 0; i < n; i++ {
		a := float64(i) * 2 * math.Pi / float64(n)
		t.sin[i] = math.Sin(a)
		t.cos[i] = math.Cos(a)
	}
	return t
}

func (t *TrigTable) index(x float64) (i0, i1 int, frac float64) {
	x = math.Mod(x, 2*math.Pi)
	if x < 0 {
		x += 2 * math.Pi
	}
	idx := x * float64(t.n) / (2 * math.Pi)
	i := int(idx)
	return i % t.n, (i + 1) % t.n, idx - float64(i)
}

func (t *TrigTable) Sin(x float64) float64 {
	i0, i1, frac := t.index(x)
	return t.sin[i0]*(1-frac) + t.sin[i1]*frac
}

func (t *TrigTable) Cos(x float64) float64 {
	i0, i1, frac := t.index(x)
	return t.cos[i0]*(1-frac) + t.cos[i1]*frac
}

func (t *TrigTable) SinCos(x float64) (sin, cos float64) {
	i0, i1, frac := t.index(x)
	sin = t.sin[i0]*(1-frac) + t.sin[i1]*frac
	cos = t.cos[i0]*(1-frac) + t.cos[i1]*frac
	return
}

func FastSin(x float64) float64 { return defaultTrig.Sin(x) }

func FastCos(x float64) float64 { return defaultTrig.Cos(x) }

func FastSinCos(x float64) (float64, float64) { return defaultTrig.SinCos(x) }
