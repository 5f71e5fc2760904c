package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/api/handlers"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Compute the full metric set for one scenario",
	Long: `Computes every derived financial metric for a single scenario:
implementation costs, annual benefits, ROI, payback period, NPV and the
plain-language interpretation.

Inputs come from a YAML file or from the canonical default scenario.

Example:
  go run ./cmd/roi calc --defaults
  go run ./cmd/roi calc --input scenario.yaml
  go run ./cmd/roi calc --input scenario.yaml --json`,
	RunE: runCalc,
}

var (
	calcInput    string
	calcDefaults bool
	calcJSON     bool
)

func init() {
	rootCmd.AddCommand(calcCmd)

	// Flags
	calcCmd.Flags().StringVar(&calcInput, "input", "", "YAML file with calculator inputs")
	calcCmd.Flags().BoolVar(&calcDefaults, "defaults", false, "use the canonical default scenario")
	calcCmd.Flags().BoolVar(&calcJSON, "json", false, "emit the result as JSON")
}

func runCalc(cmd *cobra.Command, args []string) error {
	inputs, err := resolveInputs(calcInput, calcDefaults)
	if err != nil {
		return err
	}

	result := roi.Calculate(inputs)

	if calcJSON {
		// The result carries a +Inf payback sentinel, which plain JSON
		// cannot represent; the response payload maps it to null plus a
		// flag.
		out, err := json.MarshalIndent(handlers.NewCalculateResponse(result), "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	printResult(result)
	return nil
}

// resolveInputs picks the input source shared by calc and sensitivity.
func resolveInputs(path string, useDefaults bool) (roi.CalculatorInputs, error) {
	if path != "" {
		return loadInputs(path)
	}
	if useDefaults {
		return roi.DefaultInputs(), nil
	}
	return roi.CalculatorInputs{}, fmt.Errorf("either --input or --defaults is required")
}

// loadInputs reads calculator inputs from YAML. Unknown fields are an
// error, not a silent skip.
func loadInputs(path string) (roi.CalculatorInputs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return roi.CalculatorInputs{}, err
	}

	var in roi.CalculatorInputs
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&in); err != nil {
		return roi.CalculatorInputs{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return in, nil
}

func printResult(result roi.Result) {
	f := interpret.DefaultFormatter()
	m := result.Metrics
	horizon := result.Inputs.Financial.TimeHorizonYears

	fmt.Println()
	PrintDoubleSeparator()
	fmt.Println("  ROI Analysis")
	PrintDoubleSeparator()
	fmt.Println()

	// Costs
	fmt.Println("💸 Costs")
	PrintKeyValue("Initial Investment", f.Currency(m.TotalInitialInvestment), 26)
	PrintKeyValue("Annual Operational Costs", f.Currency(m.TotalAnnualOperationalCosts), 26)
	PrintKeyValue(fmt.Sprintf("Total over %d years", horizon), f.Currency(m.TotalCostsOverHorizon), 26)
	fmt.Println()

	// Benefits
	fmt.Println("💰 Benefits")
	PrintKeyValue("Annual Cost Savings", f.Currency(m.AnnualCostSavings), 26)
	PrintKeyValue("Annual Efficiency Value", f.Currency(m.AnnualEfficiencyValue), 26)
	PrintKeyValue("Annual Revenue Impact", f.Currency(m.AnnualRevenueImpact), 26)
	PrintKeyValue("Total Annual Benefits", f.Currency(m.TotalAnnualBenefits), 26)
	PrintKeyValue(fmt.Sprintf("Total over %d years", horizon), f.Currency(m.TotalBenefitsOverHorizon), 26)
	fmt.Println()

	// Returns
	fmt.Println("📈 Returns")
	PrintKeyValue("Net Annual Benefit", f.Currency(m.NetAnnualBenefit), 26)
	PrintKeyValue(fmt.Sprintf("Net over %d years", horizon), f.Currency(m.NetBenefitsOverHorizon), 26)

	fmt.Printf("   %-26s : %s", "ROI", f.Percent(m.ROIPercentage))
	switch interpret.ROIBand(m.ROIPercentage) {
	case interpret.ROIBandStrong:
		fmt.Print(" 🌟 (Strong)")
	case interpret.ROIBandModest:
		fmt.Print(" ✅ (Modest)")
	default:
		fmt.Print(" ❌ (Negative)")
	}
	fmt.Println()

	fmt.Printf("   %-26s : ", "Payback Period")
	if math.IsInf(m.PaybackPeriodYears, 1) {
		fmt.Print("never ❌ (Indefinite)")
	} else {
		fmt.Printf("%s years", f.Years(m.PaybackPeriodYears))
		switch interpret.PaybackBand(m.PaybackPeriodYears) {
		case interpret.PaybackBandRapid:
			fmt.Print(" 🌟 (Rapid)")
		case interpret.PaybackBandModerate:
			fmt.Print(" ✅ (Moderate)")
		default:
			fmt.Print(" ⚠️  (Extended)")
		}
	}
	fmt.Println()

	fmt.Printf("   %-26s : %s", "NPV", f.Currency(m.NetPresentValue))
	if interpret.NPVBand(m.NetPresentValue) == interpret.NPVBandPositive {
		fmt.Print(" ✅ (Positive)")
	} else {
		fmt.Print(" ❌ (Negative)")
	}
	fmt.Println()
	fmt.Println()

	// Interpretation
	fmt.Println("💡 Interpretation")
	PrintSeparator()
	fmt.Println(result.Interpretation)
	PrintSeparator()
}
