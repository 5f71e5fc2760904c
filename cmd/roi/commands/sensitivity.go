package commands

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/sensitivity"
)

// sensitivityCmd represents the sensitivity command
var sensitivityCmd = &cobra.Command{
	Use:   "sensitivity",
	Short: "Sweep an input across a range and chart the metric response",
	Long: `Varies one calculator input across a range while holding the rest
fixed, then reports how ROI, payback and NPV respond.

A single sweep is described with flags; several sweeps at once with a
YAML config file. With --config, base inputs come from the config's own
inputs block.

Example:
  go run ./cmd/roi sensitivity --param attribution_factor
  go run ./cmd/roi sensitivity --param blended_hourly_rate --min 20 --max 90 --steps 8
  go run ./cmd/roi sensitivity --config sweeps.yaml --json
  go run ./cmd/roi sensitivity params`,
	RunE: runSensitivity,
}

// sensitivityParamsCmd represents the sensitivity params command
var sensitivityParamsCmd = &cobra.Command{
	Use:   "params",
	Short: "List the sweepable inputs",
	RunE:  runSensitivityParams,
}

var (
	sweepParam  string
	sweepMin    float64
	sweepMax    float64
	sweepSteps  int
	sweepInput  string
	sweepConfig string
	sweepJSON   bool
)

func init() {
	rootCmd.AddCommand(sensitivityCmd)
	sensitivityCmd.AddCommand(sensitivityParamsCmd)

	// Flags
	sensitivityCmd.Flags().StringVar(&sweepParam, "param", "", "input to sweep (see 'sensitivity params')")
	sensitivityCmd.Flags().Float64Var(&sweepMin, "min", 0, "lowest swept value")
	sensitivityCmd.Flags().Float64Var(&sweepMax, "max", 100, "highest swept value")
	sensitivityCmd.Flags().IntVar(&sweepSteps, "steps", 5, "number of evenly spaced values")
	sensitivityCmd.Flags().StringVar(&sweepInput, "input", "", "YAML file with base calculator inputs")
	sensitivityCmd.Flags().StringVar(&sweepConfig, "config", "", "YAML file describing several sweeps")
	sensitivityCmd.Flags().BoolVar(&sweepJSON, "json", false, "emit the results as JSON")
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	var (
		base   roi.CalculatorInputs
		params []sensitivity.Parameter
	)

	if sweepConfig != "" {
		cfg, err := sensitivity.LoadConfig(sweepConfig)
		if err != nil {
			return fmt.Errorf("load sweep config: %w", err)
		}
		base = cfg.BaseInputs()
		params = cfg.Parameters
	} else {
		if sweepParam == "" {
			return fmt.Errorf("either --param or --config is required")
		}
		if sweepInput != "" {
			in, err := loadInputs(sweepInput)
			if err != nil {
				return err
			}
			base = in
		} else {
			base = roi.DefaultInputs()
		}
		params = []sensitivity.Parameter{{
			Name:  sweepParam,
			Min:   sweepMin,
			Max:   sweepMax,
			Steps: sweepSteps,
		}}
	}

	results, err := sensitivity.RunAll(base, params)
	if err != nil {
		return err
	}

	if sweepJSON {
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printSweepResults(results)
	return nil
}

func runSensitivityParams(cmd *cobra.Command, args []string) error {
	fmt.Println()
	widths := []int{30, 9, 52}
	PrintTableHeader([]string{"Name", "Unit", "Description"}, widths)
	for _, info := range sensitivity.Parameters() {
		PrintTableRow([]string{info.Name, info.Unit, info.Description}, widths)
	}
	fmt.Println()
	return nil
}

func printSweepResults(results []*sensitivity.Result) {
	f := interpret.DefaultFormatter()
	bandChanged := false

	for _, r := range results {
		fmt.Println()
		PrintDoubleSeparator()
		fmt.Printf("  Sweep: %s (%s)\n", r.Parameter.Name, r.Parameter.Unit)
		PrintDoubleSeparator()
		fmt.Printf("  %s\n", r.Parameter.Description)
		fmt.Printf("  Base value: %v  |  Base ROI: %s\n\n", r.Summary.BaseValue, f.Percent(r.Summary.BaseROI))

		widths := []int{12, 14, 14, 18, 10}
		PrintTableHeader([]string{"Value", "ROI", "Payback (yrs)", "NPV", "Band"}, widths)
		for _, pt := range r.Points {
			payback := "never"
			if !math.IsInf(pt.PaybackPeriodYears, 1) {
				payback = f.Years(pt.PaybackPeriodYears)
			}
			PrintTableRow([]string{
				fmt.Sprintf("%v", pt.Value),
				f.Percent(pt.ROIPercentage),
				payback,
				f.Currency(pt.NetPresentValue),
				pt.ROIBand,
			}, widths)
		}
		fmt.Println()

		fmt.Print("   Swing: ")
		switch r.Summary.Swing {
		case sensitivity.SwingLow:
			fmt.Println("LOW ✅")
		case sensitivity.SwingMedium:
			fmt.Println("MEDIUM ⚠️")
		default:
			fmt.Println("HIGH ❌")
		}

		if len(r.Summary.Notes) > 0 {
			fmt.Println("\n💡 Notes")
			PrintList(r.Summary.Notes)
		}

		if r.Summary.ROIBandChanges {
			bandChanged = true
		}
	}

	if bandChanged {
		PrintWarning("At least one input flips the outcome band inside its tested range; confirm those values with the client before presenting.")
	}
}
