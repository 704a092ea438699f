package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/okeanid/seapoly/internal/config"
	"github.com/okeanid/seapoly/internal/eos"
	"github.com/okeanid/seapoly/internal/funnel"
	"github.com/okeanid/seapoly/internal/profile"
	"github.com/okeanid/seapoly/internal/theta"
	"github.com/okeanid/seapoly/internal/tui"
	"github.com/spf13/cobra"
)

var (
	sa    float64
	ct    float64
	p     float64
	pmax  float64
	steps int
	// Config file and preset
	configFile string
	preset     string
	// Profile export
	exportPath   string
	exportFormat string
	// Convert direction
	pt        float64
	fromTheta bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "seapoly",
		Short: "seawater equation of state from polynomial fits",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the interactive explorer when no command given
			return tui.Run(config.DefaultConfig())
		},
	}

	evalCmd := &cobra.Command{
		Use:   "eval [variant]",
		Short: "evaluate one state point",
		Args:  cobra.MaximumNArgs(1),
		RunE:  evalPoint,
	}
	addStateFlags(evalCmd)

	profileCmd := &cobra.Command{
		Use:   "profile [variant]",
		Short: "evaluate a water column",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runProfile,
	}
	addStateFlags(profileCmd)
	profileCmd.Flags().StringVar(&exportPath, "export", "", "export file path")
	profileCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format (csv or json)")

	compareCmd := &cobra.Command{
		Use:   "compare [variant1] [variant2] ...",
		Short: "compare variants at one state point",
		RunE:  compareVariants,
	}
	addStateFlags(compareCmd)

	convertCmd := &cobra.Command{
		Use:   "convert",
		Short: "convert between conservative and potential temperature",
		RunE:  convertTemperature,
	}
	convertCmd.Flags().Float64Var(&sa, "sa", config.DefaultSA, "absolute salinity [g/kg]")
	convertCmd.Flags().Float64Var(&ct, "ct", config.DefaultCT, "conservative temperature [degC]")
	convertCmd.Flags().Float64Var(&pt, "pt", 0, "potential temperature [degC]")
	convertCmd.Flags().BoolVar(&fromTheta, "from-pt", false, "convert pt to ct instead")

	funnelCmd := &cobra.Command{
		Use:   "funnel",
		Short: "check a state point against the fitted region",
		RunE:  checkFunnel,
	}
	addStateFlags(funnelCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list water-mass presets",
		RunE:  listPresets,
	}

	liveCmd := &cobra.Command{
		Use:   "live [variant]",
		Short: "interactive state-space explorer",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addStateFlags(liveCmd)

	rootCmd.AddCommand(evalCmd, profileCmd, compareCmd, convertCmd, funnelCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addStateFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&sa, "sa", config.DefaultSA, "absolute salinity [g/kg]")
	cmd.Flags().Float64Var(&ct, "ct", config.DefaultCT, "conservative temperature [degC]")
	cmd.Flags().Float64Var(&p, "p", config.DefaultP, "sea pressure [dbar]")
	cmd.Flags().Float64Var(&pmax, "pmax", config.DefaultPMax, "bottom pressure for profiles [dbar]")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of pressure steps")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use water-mass preset")
}

// resolveConfig merges preset, config file and flags. Flags win over
// the config file, which wins over the preset, which wins over the
// defaults. A variant argument wins over everything.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		pcfg := config.GetPreset(preset)
		if pcfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = pcfg
	}

	if configFile != "" {
		fcfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fcfg
	}

	if cmd.Flags().Changed("sa") {
		cfg.SA = sa
	}
	if cmd.Flags().Changed("ct") {
		cfg.CT = ct
	}
	if cmd.Flags().Changed("p") {
		cfg.P = p
	}
	if cmd.Flags().Changed("pmax") {
		cfg.PMax = pmax
	}
	if cmd.Flags().Changed("steps") {
		cfg.Steps = steps
	}
	if len(args) > 0 {
		cfg.Variant = args[0]
	}

	return cfg, nil
}

func evalPoint(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	e, err := eos.Lookup(cfg.Variant)
	if err != nil {
		return err
	}

	r := e.Eval(cfg.SA, cfg.CT, cfg.P)
	labels := e.Labels()

	fmt.Printf("variant: %s\n", e.Name())
	fmt.Printf("state: SA=%.4f g/kg  CT=%.4f degC  p=%.1f dbar\n\n", cfg.SA, cfg.CT, cfg.P)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%.10g\n", labels[0], r.Value)
	fmt.Fprintf(w, "%s\t%.10g\n", labels[1], r.Alpha)
	fmt.Fprintf(w, "%s\t%.10g\n", labels[2], r.Beta)
	fmt.Fprintf(w, "%s\t%.10g\n", labels[3], r.Ref)
	fmt.Fprintf(w, "%s\t%.10g\n", labels[4], r.Anomaly)
	if err := w.Flush(); err != nil {
		return err
	}

	if !funnel.In(cfg.SA, cfg.CT, cfg.P) {
		fmt.Println("\nwarning: state point outside the fitted region")
	}
	return nil
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return err
	}
	e, err := eos.Lookup(cfg.Variant)
	if err != nil {
		return err
	}

	grid, err := profile.Grid(cfg.PMax, cfg.Steps)
	if err != nil {
		return err
	}
	prof, err := profile.Column(context.Background(), e, cfg.SA, cfg.CT, grid)
	if err != nil {
		return err
	}

	if exportPath != "" {
		if exportFormat != "csv" && exportFormat != "json" {
			return fmt.Errorf("unknown export format: %s", exportFormat)
		}
		if err := prof.Export(exportPath, exportFormat); err != nil {
			return err
		}
		fmt.Printf("exported %d levels to %s\n", prof.Len(), exportPath)
		return nil
	}

	fmt.Printf("variant: %s  SA=%.4f g/kg  CT=%.4f degC  0..%.0f dbar\n\n",
		prof.Variant, prof.SA, prof.CT, cfg.PMax)

	graph := asciigraph.Plot(prof.Value,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s vs pressure", prof.Labels[0])),
	)
	fmt.Println(graph)

	outside := 0
	for _, ok := range prof.InFunnel {
		if !ok {
			outside++
		}
	}
	if outside > 0 {
		fmt.Printf("\nwarning: %d of %d levels outside the fitted region\n", outside, prof.Len())
	}
	return nil
}

func compareVariants(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	names := args
	if len(names) == 0 {
		names = eos.Names()
	}

	fmt.Printf("state: SA=%.4f g/kg  CT=%.4f degC  p=%.1f dbar\n\n", cfg.SA, cfg.CT, cfg.P)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tVALUE\tALPHA\tBETA\tREF\tANOMALY")
	for _, name := range names {
		e, err := eos.Lookup(name)
		if err != nil {
			return err
		}
		r := e.Eval(cfg.SA, cfg.CT, cfg.P)
		fmt.Fprintf(w, "%s\t%.10g\t%.6g\t%.6g\t%.6g\t%.10g\n",
			name, r.Value, r.Alpha, r.Beta, r.Ref, r.Anomaly)
	}
	return w.Flush()
}

func convertTemperature(cmd *cobra.Command, args []string) error {
	if fromTheta {
		out := theta.CTFromPT(sa, pt)
		fmt.Printf("SA=%.4f g/kg  pt=%.6f degC  ->  CT=%.8f degC\n", sa, pt, out)
		return nil
	}
	out := theta.PTFromCT(sa, ct)
	fmt.Printf("SA=%.4f g/kg  CT=%.6f degC  ->  pt=%.8f degC\n", sa, ct, out)
	return nil
}

func checkFunnel(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd, nil)
	if err != nil {
		return err
	}

	if !cmd.Flags().Changed("pmax") && !cmd.Flags().Changed("steps") {
		if funnel.In(cfg.SA, cfg.CT, cfg.P) {
			fmt.Printf("SA=%.4f CT=%.4f p=%.1f: inside the fitted region\n", cfg.SA, cfg.CT, cfg.P)
		} else {
			fmt.Printf("SA=%.4f CT=%.4f p=%.1f: OUTSIDE the fitted region\n", cfg.SA, cfg.CT, cfg.P)
		}
		return nil
	}

	grid, err := profile.Grid(cfg.PMax, cfg.Steps)
	if err != nil {
		return err
	}
	saCol := make([]float64, len(grid))
	ctCol := make([]float64, len(grid))
	for i := range grid {
		saCol[i] = cfg.SA
		ctCol[i] = cfg.CT
	}
	mask := funnel.Mask(saCol, ctCol, grid)

	inside := 0
	for _, ok := range mask {
		if ok {
			inside++
		}
	}
	fmt.Printf("SA=%.4f CT=%.4f over 0..%.0f dbar: %d of %d levels inside\n",
		cfg.SA, cfg.CT, cfg.PMax, inside, len(mask))
	for i, ok := range mask {
		if !ok {
			fmt.Printf("  first level outside: p=%.1f dbar\n", grid[i])
			break
		}
	}
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVARIANT\tSA\tCT\tP\tPMAX")
	for _, name := range config.ListPresets() {
		c := config.Presets[name]
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.0f\t%.0f\n",
			name, c.Variant, c.SA, c.CT, c.P, c.PMax)
	}
	return w.Flush()
}
