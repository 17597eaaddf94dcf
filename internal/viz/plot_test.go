package viz

import (
	"testing"

	"tether/internal/storage"
	"tether/internal/verlet"
)

func TestHeightPlotIndexBounds(t *testing.T) {
	frames := []storage.Frame{
		{T: 0, Points: []verlet.Vec2{{X: 0, Y: 0}}},
		{T: 1, Points: []verlet.Vec2{{X: 0, Y: 5}}},
	}

	if got := HeightPlot(frames, -1, 40, 8); got != "" {
		t.Errorf("expected empty plot for negative index, got %q", got)
	}
	if got := HeightPlot(frames, 3, 40, 8); got != "" {
		t.Errorf("expected empty plot for out-of-range index, got %q", got)
	}
	if got := HeightPlot(frames, 0, 40, 8); got == "" {
		t.Error("expected plot for in-range index")
	}
}

func TestHeightPlotEmptyFrames(t *testing.T) {
	// A run recorded with zero points per frame yields no series at any
	// index, including the -1 a caller derives from len(points)-1.
	frames := []storage.Frame{{T: 0}, {T: 1}}

	if got := HeightPlot(frames, -1, 40, 8); got != "" {
		t.Errorf("expected empty plot, got %q", got)
	}
}

func TestProfilePlotEmpty(t *testing.T) {
	if got := ProfilePlot(nil, 40, 8); got != "" {
		t.Errorf("expected empty plot for no frames, got %q", got)
	}
	if got := ProfilePlot([]storage.Frame{{T: 0}}, 40, 8); got != "" {
		t.Errorf("expected empty plot for pointless frame, got %q", got)
	}
}
