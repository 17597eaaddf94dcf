package storage

import (
	"math"
	"testing"

	"tether/internal/verlet"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	frames := []Frame{
		{T: 0, Points: []verlet.Vec2{{X: 0, Y: 0}, {X: 0, Y: 25}}},
		{T: 1.0 / 60.0, Points: []verlet.Vec2{{X: 0, Y: 0}, {X: 0.5, Y: 25.25}}},
	}
	meta := RunMetadata{
		Scenario: "rope",
		Dt:       1.0 / 60.0,
		Duration: 1.0,
		Gravity:  0.5,
		Friction: 0.05,
		Metrics:  map[string]float64{"max_stretch": 1.02},
	}

	runID, err := s.Save(meta, frames)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got, err := s.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Scenario != "rope" || got.Gravity != 0.5 {
		t.Errorf("metadata mismatch: %+v", got)
	}
	if got.Metrics["max_stretch"] != 1.02 {
		t.Errorf("metrics not persisted: %+v", got.Metrics)
	}

	loaded, err := s.LoadFrames(runID)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(loaded))
	}
	if len(loaded[1].Points) != 2 {
		t.Fatalf("expected 2 points per frame, got %d", len(loaded[1].Points))
	}
	if math.Abs(loaded[1].Points[1].Y-25.25) > 1e-6 {
		t.Errorf("frame data mismatch: %+v", loaded[1].Points[1])
	}
}

func TestListEmptyDir(t *testing.T) {
	s := New(t.TempDir() + "/nonexistent")
	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	s := New(t.TempDir())
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Save(RunMetadata{Scenario: "cloth"}, nil); err != nil {
		t.Fatal(err)
	}

	runs, err := s.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Scenario != "cloth" {
		t.Errorf("unexpected runs: %+v", runs)
	}
}
