package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tether/internal/config"
	"tether/internal/metrics"
	"tether/internal/storage"
	"tether/internal/verlet"
	"tether/internal/viz"
)

var (
	dataDir    string
	dt         float64
	duration   float64
	gravity    float64
	friction   float64
	stiffness  int
	tear       float64
	segments   int
	length     float64
	cols       int
	rows       int
	spacing    float64
	boxSize    float64
	configFile string
	preset     string
	frameRate  int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tether",
		Short: "2D verlet constraint physics lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".tether", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "run a scenario and store the result",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}
	addScenarioFlags(runCmd)

	liveCmd := &cobra.Command{
		Use:   "live [scenario]",
		Short: "run a scenario with live visualization",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list presets for a scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for scenario: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range names {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, listCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (seconds)")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (seconds)")
	cmd.Flags().Float64Var(&gravity, "gravity", config.DefaultGravity, "gravity")
	cmd.Flags().Float64Var(&friction, "friction", config.DefaultFriction, "friction")
	cmd.Flags().IntVar(&stiffness, "stiffness", config.DefaultStiffness, "relaxation passes per step")
	cmd.Flags().Float64Var(&tear, "tear", -1, "tear threshold ratio (-1 disables)")
	cmd.Flags().IntVar(&segments, "segments", config.DefaultSegments, "rope segments")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "rope length")
	cmd.Flags().IntVar(&cols, "cols", 12, "cloth columns")
	cmd.Flags().IntVar(&rows, "rows", 8, "cloth rows")
	cmd.Flags().Float64Var(&spacing, "spacing", config.DefaultSpacing, "cloth spacing")
	cmd.Flags().Float64Var(&boxSize, "size", 60, "box size")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// resolveConfig merges preset, config file and flags, flags last.
func resolveConfig(cmd *cobra.Command, scenario string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(scenario, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(scenario))
		}
		*cfg = *p
	}
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.Scenario = scenario
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("gravity") {
		cfg.Gravity = gravity
	}
	if cmd.Flags().Changed("friction") {
		cfg.Friction = friction
	}
	if cmd.Flags().Changed("stiffness") {
		cfg.Stiffness = stiffness
	}
	if cmd.Flags().Changed("tear") {
		cfg.Tear = tear
	}
	if cmd.Flags().Changed("segments") {
		cfg.Rope.Segments = segments
	}
	if cmd.Flags().Changed("length") {
		cfg.Rope.Length = length
	}
	if cmd.Flags().Changed("cols") {
		cfg.Cloth.Cols = cols
	}
	if cmd.Flags().Changed("rows") {
		cfg.Cloth.Rows = rows
	}
	if cmd.Flags().Changed("spacing") {
		cfg.Cloth.Spacing = spacing
	}
	if cmd.Flags().Changed("size") {
		cfg.Box.Size = boxSize
	}
	return cfg, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	w, body, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	maxStretch := metrics.NewMaxStretch()
	kinetic := metrics.NewKinetic(cfg.Dt)
	w.AddMetric(maxStretch)
	w.AddMetric(kinetic)

	fmt.Printf("running %s scenario...\n", cfg.Scenario)
	start := time.Now()

	steps := int(cfg.Duration / cfg.Dt)
	frames := make([]storage.Frame, 0, steps+1)
	frames = append(frames, snapshot(w.Time(), body))
	for i := 0; i < steps; i++ {
		w.Step(cfg.Dt)
		frames = append(frames, snapshot(w.Time(), body))
	}
	elapsed := time.Since(start)

	// A diverged simulation is not worth storing; overflows and torn-apart
	// bodies are still valid outcomes.
	if err := w.Check(); err != nil {
		if errors.Is(err, verlet.ErrInvalidState) {
			return fmt.Errorf("simulation diverged: %w", err)
		}
		fmt.Printf("note: %v\n", err)
	}

	meta := storage.RunMetadata{
		Scenario: cfg.Scenario,
		Dt:       cfg.Dt,
		Duration: cfg.Duration,
		Gravity:  cfg.Gravity,
		Friction: cfg.Friction,
		Metrics:  w.MetricValues(),
	}
	runID, err := st.Save(meta, frames)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", steps)
	fmt.Printf("sticks remaining: %d\n", body.StickCount())
	if w.Overflows > 0 {
		fmt.Printf("collision resolve overflows: %d\n", w.Overflows)
	}
	fmt.Println("\nmetrics:")
	for name, val := range w.MetricValues() {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if plot := viz.ProfilePlot(frames, 70, 12); plot != "" {
		fmt.Println("\n" + plot)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args[0])
	if err != nil {
		return err
	}
	w, _, err := buildWorld(cfg)
	if err != nil {
		return err
	}
	return viz.RunLive(w, cfg.Scenario, cfg.Dt, frameRate)
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs stored")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSCENARIO\tDT\tDURATION\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%.4f\t%.1f\t%s\n",
			r.ID, r.Scenario, r.Dt, r.Duration, r.Timestamp.Format(time.RFC3339))
	}
	return tw.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	frames, err := st.LoadFrames(args[0])
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		fmt.Println("no frames recorded")
		return nil
	}

	last := len(frames[0].Points) - 1
	if plot := viz.HeightPlot(frames, last, 70, 12); plot != "" {
		fmt.Println(plot)
	}
	if plot := viz.ProfilePlot(frames, 70, 12); plot != "" {
		fmt.Println("\n" + plot)
	}
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

// snapshot records the current position of every point slot, deleted ones
// included, so frame columns stay aligned over time.
func snapshot(t float64, b *verlet.Body) storage.Frame {
	f := storage.Frame{T: t, Points: make([]verlet.Vec2, 0, b.PointCount())}
	for _, p := range b.Points() {
		f.Points = append(f.Points, p.Pos)
	}
	return f
}
