package viz

import (
	"github.com/guptarohit/asciigraph"

	"tether/internal/storage"
)

// HeightPlot graphs the y coordinate of one tracked point across recorded
// frames, inverted so that sagging reads downward in the terminal.
func HeightPlot(frames []storage.Frame, pointIndex, width, height int) string {
	if pointIndex < 0 {
		return ""
	}
	series := make([]float64, 0, len(frames))
	for _, f := range frames {
		if pointIndex >= len(f.Points) {
			continue
		}
		series = append(series, -f.Points[pointIndex].Y)
	}
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("point height over time"))
}

// ProfilePlot graphs the y profile of the final frame across point index,
// showing the resting shape of a rope or cloth row.
func ProfilePlot(frames []storage.Frame, width, height int) string {
	if len(frames) == 0 {
		return ""
	}
	last := frames[len(frames)-1]
	series := make([]float64, 0, len(last.Points))
	for _, p := range last.Points {
		series = append(series, -p.Y)
	}
	if len(series) == 0 {
		return ""
	}
	return asciigraph.Plot(series,
		asciigraph.Width(width),
		asciigraph.Height(height),
		asciigraph.Caption("final profile"))
}
