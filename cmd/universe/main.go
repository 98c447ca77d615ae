package main

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/oranellis/universe-simulation/internal/analysis"
	"github.com/oranellis/universe-simulation/internal/config"
	"github.com/oranellis/universe-simulation/internal/export"
	"github.com/oranellis/universe-simulation/internal/genesis"
	"github.com/oranellis/universe-simulation/internal/gravity"
	"github.com/oranellis/universe-simulation/internal/gui"
	"github.com/oranellis/universe-simulation/internal/integrators"
	"github.com/oranellis/universe-simulation/internal/metrics"
	"github.com/oranellis/universe-simulation/internal/opengl"
	"github.com/oranellis/universe-simulation/internal/optim"
	"github.com/oranellis/universe-simulation/internal/sim"
	"github.com/oranellis/universe-simulation/internal/stars"
	"github.com/oranellis/universe-simulation/internal/viz"
)

var (
	configFile string
	preset     string
	integrator string
	numStars   int
	dt         float64
	gravityG   float64
	seed       int64
	stepRate   float64
	frameRate  float64
	workers    int

	runSteps     int
	svgOut       string
	jsonOut      string
	compareSteps int
	benchSteps   int
	samples      int
	starIndex    int
	perturbation float64
	sweepFrom    float64
	sweepTo      float64
	sweepPoints  int
	sweepSteps   int
	initOut      string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "universe",
		Short:        "2D gravitational star cloud simulator",
		SilenceUsage: true,
		RunE:         runGUI,
	}
	addSimFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "step headless and report drift metrics",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&runSteps, "steps", 10000, "steps to advance")
	runCmd.Flags().StringVar(&svgOut, "svg", "", "write final state to an SVG file")
	runCmd.Flags().StringVar(&jsonOut, "json", "", "write a JSON run report (- for stdout)")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the star field in the terminal",
		RunE:  runLive,
	}
	addSimFlags(liveCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "watch the star field in a window",
		RunE:  runGUI,
	}
	addSimFlags(guiCmd)

	glCmd := &cobra.Command{
		Use:   "gl",
		Short: "watch the star field through the raw OpenGL renderer",
		RunE:  runGL,
	}
	addSimFlags(glCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [scheme]...",
		Short: "advance one initial state under several integrators",
		RunE:  runCompare,
	}
	addSimFlags(compareCmd)
	compareCmd.Flags().IntVar(&compareSteps, "steps", 2000, "steps per scheme")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "orbital period and chaos estimates",
		RunE:  runAnalyze,
	}
	addSimFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&samples, "samples", 4096, "recorded samples")
	analyzeCmd.Flags().IntVar(&starIndex, "star", 1, "star index to record")
	analyzeCmd.Flags().Float64Var(&perturbation, "perturbation", 1e-8, "initial separation for the divergence estimate")
	analyzeCmd.Flags().StringVar(&svgOut, "svg", "", "write the recorded path to an SVG file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "steps/second across body counts and schemes",
		RunE:  runBench,
	}
	addSimFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchSteps, "steps", 300, "steps per measurement")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "find the largest usable timestep for a configuration",
		RunE:  runSweep,
	}
	addSimFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 1e12, "smallest dt to try")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 1e14, "largest dt to try")
	sweepCmd.Flags().IntVar(&sweepPoints, "points", 8, "timesteps to sample")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 1000, "steps per sample")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset configurations",
		RunE:  listPresets,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "write the default config file for editing",
		RunE:  writeConfig,
	}
	initCmd.Flags().StringVar(&initOut, "out", "universe.yaml", "output path")

	rootCmd.AddCommand(runCmd, liveCmd, guiCmd, glCmd, compareCmd, analyzeCmd, benchCmd, sweepCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&configFile, "config", "", "config file (yaml)")
	f.StringVar(&preset, "preset", "", "preset configuration")
	f.StringVar(&integrator, "integrator", "verlet", "integration scheme")
	f.IntVar(&numStars, "stars", config.DefaultStars, "number of stars")
	f.Float64Var(&dt, "dt", config.DefaultDt, "timestep in seconds")
	f.Float64Var(&gravityG, "g", config.DefaultG, "gravitational constant")
	f.Int64Var(&seed, "seed", 0, "random seed (0 = time)")
	f.Float64Var(&stepRate, "step-rate", config.DefaultStepRate, "simulation steps per second")
	f.Float64Var(&frameRate, "fps", config.DefaultFrameRate, "render frames per second")
	f.IntVar(&workers, "workers", 0, "parallel force workers (0 = serial)")
}

// buildConfig resolves preset, config file and explicit flags, in
// rising precedence.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %s)",
				preset, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("integrator") {
		cfg.Integrator = integrator
	}
	if flags.Changed("stars") {
		cfg.Stars = numStars
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("g") {
		cfg.G = gravityG
	}
	if flags.Changed("seed") {
		cfg.Genesis.Seed = seed
	}
	if flags.Changed("step-rate") {
		cfg.StepRate = stepRate
	}
	if flags.Changed("fps") {
		cfg.FrameRate = frameRate
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func initialStars(cfg *config.Config) ([]stars.Star, error) {
	switch cfg.Scenario {
	case "threebody":
		return genesis.ThreeBody(), nil
	case "binary":
		return genesis.Binary(cfg.Domain.Width/4, cfg.Genesis.MassMean), nil
	default:
		s := cfg.Genesis.Seed
		if s == 0 {
			s = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(s))
		return genesis.Cloud(genesis.CloudSpec{
			N:           cfg.Stars,
			Width:       cfg.Domain.Width,
			Height:      cfg.Domain.Height,
			AnchorMass:  cfg.Genesis.AnchorMass,
			MassMean:    cfg.Genesis.MassMean,
			MassSigma:   cfg.Genesis.MassSigma,
			Luminosity:  cfg.Genesis.Luminosity,
			Temperature: cfg.Genesis.Temperature,
			Mode:        genesis.VelocityMode(cfg.Velocity.Mode),
			VelRange:    cfg.Velocity.Range,
			G:           cfg.G,
		}, rng)
	}
}

func buildUniverse(cfg *config.Config) (*sim.Simulation, *gravity.Field, stars.Domain, error) {
	field := gravity.NewField(cfg.G, cfg.MinSeparation)
	field.Workers = cfg.Workers

	domain := stars.Domain{
		Width:   cfg.Domain.Width,
		Height:  cfg.Domain.Height,
		TargetW: cfg.Domain.TargetW,
		TargetH: cfg.Domain.TargetH,
	}

	initial, err := initialStars(cfg)
	if err != nil {
		return nil, nil, stars.Domain{}, err
	}

	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return nil, nil, stars.Domain{}, err
	}

	s, err := sim.New(initial, sim.Params{
		System:     field,
		Integrator: integ,
		Dt:         cfg.Dt,
		Domain:     domain,
	})
	if err != nil {
		return nil, nil, stars.Domain{}, err
	}
	return s, field, domain, nil
}

// startRunner launches the stepping goroutine behind a shared cell.
// The returned cancel stops it; front-ends call it on quit.
func startRunner(s *sim.Simulation, rate float64) (*sim.Shared, context.CancelFunc, error) {
	shared := &sim.Shared{}
	runner, err := sim.NewRunner(s, shared, rate)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	go runner.Run(ctx)
	return shared, cancel, nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, field, domain, err := buildUniverse(cfg)
	if err != nil {
		return err
	}

	s.AddMetric(metrics.NewEnergyDrift(field))
	s.AddMetric(metrics.NewMomentumDrift())
	s.AddMetric(metrics.NewContainment(domain))

	fmt.Printf("%s: %d stars, %s, dt %.3e s\n", cfg.Scenario, s.N(), cfg.Integrator, cfg.Dt)

	start := time.Now()
	for i := 0; i < runSteps; i++ {
		s.Step()
	}
	elapsed := time.Since(start)

	if !s.Valid() {
		return fmt.Errorf("state is no longer finite after %d steps; reduce dt", runSteps)
	}

	fmt.Printf("stepped %d steps in %v (%.0f steps/s)\n\n", runSteps, elapsed.Round(time.Millisecond), float64(runSteps)/elapsed.Seconds())

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "METRIC\tVALUE")
	vals := s.Metrics()
	names := make([]string, 0, len(vals))
	for name := range vals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%.6e\n", name, vals[name])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if svgOut != "" {
		svg := export.StarsToSVG(s.Snapshot(nil), domain, domain.TargetW, domain.TargetH)
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgOut)
	}

	if jsonOut != "" {
		report := export.Report{
			Scenario:   cfg.Scenario,
			Integrator: cfg.Integrator,
			Seed:       cfg.Genesis.Seed,
			Dt:         cfg.Dt,
			Steps:      s.Steps(),
			SimTime:    s.Time(),
			Stars:      s.N(),
			Timestamp:  time.Now().UTC(),
			Metrics:    vals,
		}
		if err := export.SaveReport(jsonOut, report); err != nil {
			return err
		}
		if jsonOut != "-" {
			fmt.Printf("wrote %s\n", jsonOut)
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	// With nothing chosen, offer the preset list first.
	if preset == "" && configFile == "" {
		picker := viz.NewPicker(config.ListPresets())
		final, err := tea.NewProgram(picker).Run()
		if err != nil {
			return err
		}
		choice := final.(viz.Picker).Choice
		if choice == "" {
			return nil
		}
		preset = choice
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, field, domain, err := buildUniverse(cfg)
	if err != nil {
		return err
	}

	shared, cancel, err := startRunner(s, cfg.StepRate)
	if err != nil {
		return err
	}

	model := viz.NewLive(shared, field, domain, cfg.FrameRate, cancel)
	_, err = tea.NewProgram(model).Run()
	return err
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, field, domain, err := buildUniverse(cfg)
	if err != nil {
		return err
	}

	shared, cancel, err := startRunner(s, cfg.StepRate)
	if err != nil {
		return err
	}

	gui.Run(shared, field, domain, cfg.Scenario, cfg.FrameRate, cancel)
	return nil
}

func runGL(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	s, _, domain, err := buildUniverse(cfg)
	if err != nil {
		return err
	}

	shared, cancel, err := startRunner(s, cfg.StepRate)
	if err != nil {
		return err
	}

	return opengl.Run(shared, domain, cfg.FrameRate, cancel)
}

func runCompare(cmd *cobra.Command, args []string) error {
	schemes := args
	if len(schemes) == 0 {
		schemes = integrators.Names()
	}

	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	// All schemes must start from the same state, so pin the seed.
	if cfg.Genesis.Seed == 0 {
		cfg.Genesis.Seed = 42
	}
	initial, err := initialStars(cfg)
	if err != nil {
		return err
	}

	field := gravity.NewField(cfg.G, cfg.MinSeparation)
	field.Workers = cfg.Workers
	domain := stars.Domain{
		Width: cfg.Domain.Width, Height: cfg.Domain.Height,
		TargetW: cfg.Domain.TargetW, TargetH: cfg.Domain.TargetH,
	}

	fmt.Printf("%s: %d stars, dt %.3e s, %d steps per scheme\n\n", cfg.Scenario, len(initial), cfg.Dt, compareSteps)

	const plotWidth = 70
	interval := compareSteps / plotWidth
	if interval < 1 {
		interval = 1
	}

	series := make([][]float64, 0, len(schemes))
	legends := make([]string, 0, len(schemes))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCHEME\tENERGY DRIFT\tMOMENTUM DRIFT\tTIME\tSTEPS/S")

	for _, scheme := range schemes {
		integ, err := integrators.New(scheme)
		if err != nil {
			return err
		}
		s, err := sim.New(initial, sim.Params{
			System: field, Integrator: integ, Dt: cfg.Dt, Domain: domain,
		})
		if err != nil {
			return err
		}

		energy := metrics.NewEnergyDrift(field)
		momentum := metrics.NewMomentumDrift()
		s.AddMetric(energy)
		s.AddMetric(momentum)

		drift := make([]float64, 0, compareSteps/interval+1)

		start := time.Now()
		for i := 0; i < compareSteps; i++ {
			s.Step()
			if i%interval == 0 {
				drift = append(drift, energy.Value())
			}
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%s\t%.3e\t%.3e\t%v\t%.0f\n",
			scheme, energy.Value(), momentum.Value(),
			elapsed.Round(time.Millisecond), float64(compareSteps)/elapsed.Seconds())

		series = append(series, drift)
		legends = append(legends, scheme)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if compareSteps > 0 {
		fmt.Println()
		fmt.Println(asciigraph.PlotMany(series,
			asciigraph.Height(10),
			asciigraph.Width(plotWidth),
			asciigraph.Caption("relative energy drift"),
			asciigraph.SeriesLegends(legends...),
		))
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Genesis.Seed == 0 {
		cfg.Genesis.Seed = 42
	}

	s, field, _, err := buildUniverse(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("%s: recording star %d for %d steps\n\n", cfg.Scenario, starIndex, samples)

	path, err := analysis.Path(s, starIndex, samples)
	if err != nil {
		return err
	}
	series := make([]float64, len(path))
	for i, p := range path {
		series[i] = p.X
	}

	fmt.Println(analysis.PathToASCII(path, 70, 20))

	spectrum := analysis.PowerSpectrum(series)
	if plot := spectrum[:len(spectrum)/4]; len(plot) > 1 {
		fmt.Println(asciigraph.Plot(plot,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption("power spectrum of x(t)"),
		))
		fmt.Println()
	}

	if period := analysis.DominantPeriod(series, cfg.Dt); period > 0 {
		fmt.Printf("dominant period: %.6e s\n", period)
	} else {
		fmt.Println("no dominant period found")
	}

	// The divergence estimate needs its own copy of the start state.
	initial, err := initialStars(cfg)
	if err != nil {
		return err
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return err
	}
	div, err := analysis.Divergence(initial, field, integ, cfg.Dt, samples, perturbation)
	if err != nil {
		return err
	}
	fmt.Printf("divergence index: %.6e (positive means nearby starts separate)\n", div)

	if svgOut != "" {
		svg := export.TrajectoryToSVG(path, 800, 800, "#66aaff")
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	// Body counts vary per row, so always measure on the galaxy cloud.
	cfg.Scenario = "galaxy"
	if cfg.Genesis.Seed == 0 {
		cfg.Genesis.Seed = 42
	}

	counts := []int{50, 100, 300, 600}

	fmt.Printf("galaxy cloud, dt %.3e s, %d steps per row\n\n", cfg.Dt, benchSteps)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STARS\tSCHEME\tSTEPS\tTIME\tSTEPS/S")

	for _, n := range counts {
		cfg.Stars = n
		initial, err := initialStars(cfg)
		if err != nil {
			return err
		}

		for _, scheme := range integrators.Names() {
			integ, err := integrators.New(scheme)
			if err != nil {
				return err
			}
			field := gravity.NewField(cfg.G, cfg.MinSeparation)
			field.Workers = cfg.Workers

			s, err := sim.New(initial, sim.Params{
				System: field, Integrator: integ, Dt: cfg.Dt,
			})
			if err != nil {
				return err
			}

			start := time.Now()
			for i := 0; i < benchSteps; i++ {
				s.Step()
			}
			elapsed := time.Since(start)

			fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\n",
				n, scheme, benchSteps, elapsed.Round(time.Millisecond),
				float64(benchSteps)/elapsed.Seconds())
		}
	}

	return w.Flush()
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Genesis.Seed == 0 {
		cfg.Genesis.Seed = 42
	}

	initial, err := initialStars(cfg)
	if err != nil {
		return err
	}
	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return err
	}
	field := gravity.NewField(cfg.G, cfg.MinSeparation)
	field.Workers = cfg.Workers

	fmt.Printf("%s: %d stars, %s, %d steps per sample\n\n", cfg.Scenario, len(initial), cfg.Integrator, sweepSteps)

	eval := func(dt float64) (float64, error) {
		s, err := sim.New(initial, sim.Params{System: field, Integrator: integ, Dt: dt})
		if err != nil {
			return 0, err
		}
		energy := metrics.NewEnergyDrift(field)
		s.AddMetric(energy)
		for i := 0; i < sweepSteps; i++ {
			s.Step()
		}
		if !s.Valid() {
			return math.NaN(), nil
		}
		return math.Abs(energy.Value()), nil
	}

	points, best, err := optim.SweepDt(cmd.Context(), sweepFrom, sweepTo, sweepPoints, eval)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "DT\tENERGY DRIFT")
	for _, p := range points {
		if math.IsNaN(p.Score) {
			fmt.Fprintf(w, "%.3e\tdiverged\n", p.Dt)
			continue
		}
		fmt.Fprintf(w, "%.3e\t%.3e\n", p.Dt, p.Score)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nbest dt: %.3e (drift %.3e)\n", best.Dt, best.Score)
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSCENARIO\tSTARS\tSCHEME\tDT\tVELOCITY")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%.3e\t%s\n",
			name, p.Scenario, p.Stars, p.Integrator, p.Dt, p.Velocity.Mode)
	}
	return w.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOut); err == nil {
		return fmt.Errorf("%s already exists, not overwriting", initOut)
	}
	if err := config.Save(initOut, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", initOut)
	return nil
}
