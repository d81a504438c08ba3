package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/num/dual"

	"github.com/san-kum/dualdist/internal/check"
	"github.com/san-kum/dualdist/internal/config"
	"github.com/san-kum/dualdist/internal/dist"
	"github.com/san-kum/dualdist/internal/grad"
	"github.com/san-kum/dualdist/internal/point"
	"github.com/san-kum/dualdist/internal/tui"
)

var (
	pParam     float64
	muParam    float64
	sigmaParam float64
	nuParam    float64
	alphaParam float64
	betaParam  float64
	thetaParam float64
	probsFlag  string
	meanFlag   string
	covFlag    string

	xFlag     float64
	pointFlag string
	numDraws  int

	gridFrom   float64
	gridTo     float64
	gridPoints int
	fdStep     float64
	withGrad   bool

	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "dualdist",
		Short: "dual-number differentiable distributions",
		Run: func(cmd *cobra.Command, args []string) {
			if err := tui.Run(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	densityCmd := &cobra.Command{
		Use:   "density [family]",
		Short: "evaluate density and log-density at a point",
		Args:  cobra.ExactArgs(1),
		RunE:  runDensity,
	}

	gradCmd := &cobra.Command{
		Use:   "grad [family]",
		Short: "exact density gradient via dual seeding",
		Args:  cobra.ExactArgs(1),
		RunE:  runGrad,
	}

	sampleCmd := &cobra.Command{
		Use:   "sample [family]",
		Short: "draw samples from the delegate",
		Args:  cobra.ExactArgs(1),
		RunE:  runSample,
	}
	sampleCmd.Flags().IntVarP(&numDraws, "num", "n", 10, "number of samples")

	plotCmd := &cobra.Command{
		Use:   "plot [family]",
		Short: "plot the density curve",
		Args:  cobra.ExactArgs(1),
		RunE:  runPlot,
	}
	plotCmd.Flags().BoolVar(&withGrad, "grad", false, "plot the gradient curve instead")

	checkCmd := &cobra.Command{
		Use:   "check [family]",
		Short: "compare dual gradients against finite differences",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheck,
	}
	checkCmd.Flags().Float64Var(&fdStep, "step", check.DefaultStep, "finite-difference half-step")

	presetsCmd := &cobra.Command{
		Use:   "presets [family]",
		Short: "list presets for a family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if names == nil {
				return fmt.Errorf("no presets for family %q", args[0])
			}
			for _, name := range names {
				fmt.Println(name)
			}
			return nil
		},
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive explorer",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run()
		},
	}

	for _, cmd := range []*cobra.Command{densityCmd, gradCmd, sampleCmd, plotCmd, checkCmd} {
		cmd.Flags().Float64Var(&pParam, "p", 0.5, "success probability (bernoulli)")
		cmd.Flags().Float64Var(&muParam, "mu", 0, "mean (normal)")
		cmd.Flags().Float64Var(&sigmaParam, "sigma", 1, "standard deviation (normal)")
		cmd.Flags().Float64Var(&nuParam, "nu", 3, "degrees of freedom (student_t)")
		cmd.Flags().Float64Var(&alphaParam, "alpha", 2, "shape (gamma, inverse_gamma, beta)")
		cmd.Flags().Float64Var(&betaParam, "beta", 2, "second shape (beta)")
		cmd.Flags().Float64Var(&thetaParam, "theta", 1, "scale (exponential, gamma, inverse_gamma)")
		cmd.Flags().StringVar(&probsFlag, "probs", "", "comma-separated probabilities (categorical)")
		cmd.Flags().StringVar(&meanFlag, "mean", "", "comma-separated mean vector (mvnormal)")
		cmd.Flags().StringVar(&covFlag, "cov", "", "semicolon-separated covariance rows (mvnormal)")
		cmd.Flags().Float64Var(&xFlag, "x", 0, "scalar evaluation point")
		cmd.Flags().StringVar(&pointFlag, "point", "", "comma-separated vector evaluation point")
		cmd.Flags().Float64Var(&gridFrom, "from", config.DefaultGridFrom, "grid start")
		cmd.Flags().Float64Var(&gridTo, "to", config.DefaultGridTo, "grid end")
		cmd.Flags().IntVar(&gridPoints, "points", config.DefaultGridPoints, "grid size")
		cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
		cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	}

	rootCmd.AddCommand(densityCmd, gradCmd, sampleCmd, plotCmd, checkCmd, presetsCmd, exploreCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildConfig(family string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(family, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for family %q", preset, family)
		}
		return cfg, nil
	}

	cfg := &config.Config{
		Family: family,
		Params: map[string]float64{
			"p": pParam, "mu": muParam, "sigma": sigmaParam, "nu": nuParam,
			"alpha": alphaParam, "beta": betaParam, "theta": thetaParam,
		},
		Grid: config.GridConfig{From: gridFrom, To: gridTo, Points: gridPoints},
		Step: fdStep,
	}
	var err error
	if probsFlag != "" {
		if cfg.Probs, err = parseVector(probsFlag); err != nil {
			return nil, err
		}
	}
	if meanFlag != "" {
		if cfg.Mu, err = parseVector(meanFlag); err != nil {
			return nil, err
		}
	}
	if covFlag != "" {
		for _, rowSpec := range strings.Split(covFlag, ";") {
			row, err := parseVector(rowSpec)
			if err != nil {
				return nil, err
			}
			cfg.Cov = append(cfg.Cov, row)
		}
	}
	return cfg, nil
}

func buildVariant(family string) (dist.Variant, *config.Config, error) {
	cfg, err := buildConfig(family)
	if err != nil {
		return nil, nil, err
	}
	v, err := cfg.Build()
	if err != nil {
		return nil, nil, err
	}
	return v, cfg, nil
}

func parseVector(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	vals := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q: %w", p, err)
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func evalPoint() (point.Point, error) {
	if pointFlag == "" {
		return point.Real(xFlag), nil
	}
	xs, err := parseVector(pointFlag)
	if err != nil {
		return nil, err
	}
	return point.RealVec(xs), nil
}

func runDensity(cmd *cobra.Command, args []string) error {
	v, _, err := buildVariant(args[0])
	if err != nil {
		return err
	}
	pt, err := evalPoint()
	if err != nil {
		return err
	}
	d, err := dist.Density(v, pt)
	if err != nil {
		return err
	}
	ld, err := dist.LogDensity(v, pt)
	if err != nil {
		return err
	}
	fmt.Printf("density:     %.12g\n", d.Real)
	fmt.Printf("log-density: %.12g\n", ld)
	return nil
}

func runGrad(cmd *cobra.Command, args []string) error {
	v, _, err := buildVariant(args[0])
	if err != nil {
		return err
	}
	if pointFlag != "" {
		xs, err := parseVector(pointFlag)
		if err != nil {
			return err
		}
		g, err := grad.VectorParallel(v, xs)
		if err != nil {
			return err
		}
		for i, gi := range g {
			fmt.Printf("d/dx[%d]: %.12g\n", i, gi)
		}
		return nil
	}
	g, err := grad.Scalar(v, xFlag)
	if err != nil {
		return err
	}
	fmt.Printf("d/dx: %.12g\n", g)
	return nil
}

func runSample(cmd *cobra.Command, args []string) error {
	v, _, err := buildVariant(args[0])
	if err != nil {
		return err
	}
	for i := 0; i < numDraws; i++ {
		switch s := dist.Sample(v).(type) {
		case point.Real:
			fmt.Printf("%.8g\n", float64(s))
		case point.RealVec:
			parts := make([]string, len(s))
			for j, x := range s {
				parts[j] = fmt.Sprintf("%.8g", x)
			}
			fmt.Println(strings.Join(parts, ", "))
		}
	}
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	v, cfg, err := buildVariant(args[0])
	if err != nil {
		return err
	}
	xs := cfg.GridPoints()
	data := make([]float64, 0, len(xs))
	for _, x := range xs {
		var y float64
		if withGrad {
			y, err = grad.Scalar(v, x)
		} else {
			var d dual.Number
			d, err = dist.Density(v, point.Real(x))
			y = d.Real
		}
		if err != nil {
			return err
		}
		data = append(data, y)
	}

	caption := fmt.Sprintf("%s density, x in [%g, %g]", args[0], cfg.Grid.From, cfg.Grid.To)
	if withGrad {
		caption = fmt.Sprintf("%s d(density)/dx, x in [%g, %g]", args[0], cfg.Grid.From, cfg.Grid.To)
	}
	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(caption),
	)
	fmt.Println(graph)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	v, cfg, err := buildVariant(args[0])
	if err != nil {
		return err
	}
	var results []check.Result
	if pointFlag != "" {
		xs, perr := parseVector(pointFlag)
		if perr != nil {
			return perr
		}
		results, err = check.GradientVec(v, xs, fdStep)
	} else {
		results, err = check.Gradient(v, cfg.GridPoints(), fdStep)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "x\tdual\tcentral\trel err")
	for _, r := range results {
		fmt.Fprintf(w, "%.4g\t%.8g\t%.8g\t%.3g\n", r.X, r.Dual, r.Central, r.RelErr)
	}
	w.Flush()
	fmt.Printf("max rel err: %.3g\n", check.MaxRelErr(results))
	return nil
}
