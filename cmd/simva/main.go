package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/umg-minai/simva/internal/analysis"
	"github.com/umg-minai/simva/internal/config"
	"github.com/umg-minai/simva/internal/physio"
	"github.com/umg-minai/simva/internal/report"
	"github.com/umg-minai/simva/internal/tui"
	"github.com/umg-minai/simva/internal/uptake"
)

var (
	pinsp      float64
	deltaTime  float64
	totalTime  float64
	humidify   bool
	concEffect bool
	shuntFrac  float64
	metabFrac  float64
	configFile string
	presetName string
	outFile    string
	verbose    bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simva",
		Short: "anaesthetic uptake simulation (Cowles three-compartment model)",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run [agent]",
		Short: "run a wash-in simulation",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	addScenarioFlags(runCmd)

	plotCmd := &cobra.Command{
		Use:   "plot [agent]",
		Short: "run and plot the pressure series in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  plotSimulation,
	}
	addScenarioFlags(plotCmd)

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [agent]",
		Short: "run and export the result table as CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	addScenarioFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [agent]",
		Short: "run and export the result table as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	addScenarioFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVar(&outFile, "out", "", "output file (default stdout)")

	chartCmd := &cobra.Command{
		Use:   "chart [agent]",
		Short: "run and render a line chart (png/svg/pdf by extension)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  chartSimulation,
	}
	addScenarioFlags(chartCmd)
	chartCmd.Flags().StringVar(&outFile, "out", "washin.png", "chart file")

	liveCmd := &cobra.Command{
		Use:   "live [agent]",
		Short: "run with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	addScenarioFlags(liveCmd)

	agentsCmd := &cobra.Command{
		Use:   "agents",
		Short: "list anaesthetic agents and their partition coefficients",
		RunE:  listAgents,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [agent]",
		Short: "list scenario presets for an agent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets(args[0])
			if len(names) == 0 {
				fmt.Printf("no presets for agent: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, name := range names {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run every agent with the same scenario and compare the final pressures",
		Args:  cobra.NoArgs,
		RunE:  compareAgents,
	}
	addScenarioFlags(compareCmd)

	rootCmd.AddCommand(runCmd, plotCmd, exportCSVCmd, exportJSONCmd, chartCmd, liveCmd, agentsCmd, presetsCmd, compareCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addScenarioFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&pinsp, "pinsp", 0, "inspired partial pressure (mandatory unless set by config or preset)")
	cmd.Flags().Float64Var(&deltaTime, "dt", uptake.DefaultDeltaTime, "timestep (min)")
	cmd.Flags().Float64Var(&totalTime, "time", uptake.DefaultTotalTime, "total simulated time (min)")
	cmd.Flags().BoolVar(&humidify, "humidify", false, "dilute the inspired gas by saturated water vapor")
	cmd.Flags().BoolVar(&concEffect, "concentration-effect", false, "enable the concentration effect")
	cmd.Flags().Float64Var(&shuntFrac, "shunt", 0, "pulmonary shunt fraction [0,1]")
	cmd.Flags().Float64Var(&metabFrac, "metabolism", 0, "fractional metabolic clearance per hour [0,1]")
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&presetName, "preset", "", "scenario preset name")
}

// buildScenario merges preset, config file and flags, in rising precedence.
func buildScenario(cmd *cobra.Command, args []string) (*config.Config, error) {
	agent := ""
	if len(args) > 0 {
		agent = args[0]
	}

	cfg := config.DefaultConfig()

	if presetName != "" {
		if agent == "" {
			return nil, fmt.Errorf("presets are per agent; name the agent first")
		}
		preset := config.GetPreset(agent, presetName)
		if preset == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", presetName, config.ListPresets(agent))
		}
		cfg = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		log.Debugf("loaded scenario from %s", configFile)
		cfg = loaded
	}

	if agent != "" {
		cfg.Agent = agent
	}
	if cmd.Flags().Changed("pinsp") {
		cfg.Pinsp = &pinsp
	}
	if cmd.Flags().Changed("dt") {
		cfg.DeltaTime = deltaTime
	}
	if cmd.Flags().Changed("time") {
		cfg.TotalTime = totalTime
	}
	if cmd.Flags().Changed("humidify") {
		cfg.Humidify = humidify
	}
	if cmd.Flags().Changed("concentration-effect") {
		cfg.ConcentrationEffect = concEffect
	}
	if cmd.Flags().Changed("shunt") {
		cfg.ShuntFraction = shuntFrac
	}
	if cmd.Flags().Changed("metabolism") {
		cfg.MetabolismFraction = metabFrac
	}

	return cfg, nil
}

func simulate(cfg *config.Config) (*uptake.Result, float64, error) {
	inspired, err := cfg.Inspired()
	if err != nil {
		return nil, 0, err
	}
	params, err := cfg.Params()
	if err != nil {
		return nil, 0, err
	}
	opts, err := cfg.Options()
	if err != nil {
		return nil, 0, err
	}

	result, err := uptake.New(params).Run(context.Background(), inspired, opts)
	if err != nil {
		return nil, 0, err
	}

	final := result.Final()
	if math.IsNaN(final.Pcv) || math.IsInf(final.Pcv, 0) {
		log.Warn("degenerate inputs produced non-finite pressures")
	}
	return result, inspired, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}

	start := time.Now()
	result, inspired, err := simulate(cfg)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"agent":   cfg.Agent,
		"steps":   result.Len(),
		"elapsed": time.Since(start),
	}).Debug("simulation finished")

	fmt.Printf("%s wash-in, pinsp %.3g, %d steps of %.3g min\n\n",
		cfg.Agent, inspired, result.Len(), cfg.DeltaTime)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tPINSP\tPALV\tPART\tPVRG\tPMUS\tPFAT\tPCV")
	for _, row := range sampleRows(result, 10) {
		fmt.Fprintf(w, "%.1f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\n",
			row.Time, row.Pinsp, row.Palv, row.Part, row.Pvrg, row.Pmus, row.Pfat, row.Pcv)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	s := analysis.Summarize(result)
	fmt.Printf("\nFA/FI %.3f, peak palv %.4f, venous gap %.4f\n", s.FinalRatio, s.PeakAlveolar, s.VenousGap)
	if s.ReachedHalf {
		fmt.Printf("FA/FI reached 0.5 after %.1f min\n", s.HalfTime)
	}
	return nil
}

// sampleRows thins the table to about n evenly spaced rows for display.
func sampleRows(result *uptake.Result, n int) []uptake.Row {
	if result.Len() <= n {
		return result.Rows
	}
	stride := result.Len() / n
	rows := make([]uptake.Row, 0, n+1)
	for i := stride - 1; i < result.Len(); i += stride {
		rows = append(rows, result.Rows[i])
	}
	return rows
}

func plotSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	result, _, err := simulate(cfg)
	if err != nil {
		return err
	}
	return report.WriteASCII(os.Stdout, result, 10, 80)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	result, _, err := simulate(cfg)
	if err != nil {
		return err
	}

	out, closeOut, err := output()
	if err != nil {
		return err
	}
	defer closeOut()
	return report.WriteCSV(out, result)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	result, inspired, err := simulate(cfg)
	if err != nil {
		return err
	}

	out, closeOut, err := output()
	if err != nil {
		return err
	}
	defer closeOut()
	return report.WriteJSON(out, cfg.Agent, inspired, cfg.DeltaTime, cfg.TotalTime, result)
}

func output() (*os.File, func(), error) {
	if outFile == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(outFile)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

func chartSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	result, _, err := simulate(cfg)
	if err != nil {
		return err
	}
	if err := report.SaveChart(outFile, cfg.Agent, result); err != nil {
		return err
	}
	fmt.Printf("chart written to %s\n", outFile)
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildScenario(cmd, args)
	if err != nil {
		return err
	}
	inspired, err := cfg.Inspired()
	if err != nil {
		return err
	}
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	m, err := tui.NewModel(cfg.Agent, uptake.New(params), inspired, opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m).Run()
	return err
}

func listAgents(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AGENT\tBLOOD:GAS\tVRG\tMUS\tFAT")
	for _, agent := range physio.Agents() {
		pc, err := physio.PartitionCoefficients(agent)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.3f\t%.3f\t%.3f\t%.3f\n",
			agent, pc[physio.Lung], pc[physio.VRG], pc[physio.Muscle], pc[physio.Fat])
	}
	return w.Flush()
}

func compareAgents(cmd *cobra.Command, args []string) error {
	base, err := buildScenario(cmd, nil)
	if err != nil {
		return err
	}
	if _, err := base.Inspired(); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "AGENT\tPALV\tPART\tPVRG\tPMUS\tPFAT\tPCV\tFA/FI")

	for _, agent := range physio.Agents() {
		cfg := *base
		cfg.Agent = string(agent)

		result, _, err := simulate(&cfg)
		if err != nil {
			return err
		}
		final := result.Final()
		s := analysis.Summarize(result)
		fmt.Fprintf(w, "%s\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.4f\t%.3f\n",
			agent, final.Palv, final.Part, final.Pvrg, final.Pmus, final.Pfat, final.Pcv, s.FinalRatio)
	}
	return w.Flush()
}
