package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/roi"
)

// defaultsCmd represents the defaults command
var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Show the canonical default scenario inputs",
	Long: `Prints the benchmark scenario every new analysis starts from,
before prospect-specific customization.

Example:
  go run ./cmd/roi defaults
  go run ./cmd/roi defaults --json > scenario.json`,
	RunE: runDefaults,
}

var defaultsJSON bool

func init() {
	rootCmd.AddCommand(defaultsCmd)

	// Flags
	defaultsCmd.Flags().BoolVar(&defaultsJSON, "json", false, "emit the inputs as JSON")
}

func runDefaults(cmd *cobra.Command, args []string) error {
	inputs := roi.DefaultInputs()

	if defaultsJSON {
		out, err := json.MarshalIndent(inputs, "", "  ")
		if err != nil {
			return fmt.Errorf("encode inputs: %w", err)
		}
		fmt.Println(string(out))
		return nil
	}

	f := interpret.DefaultFormatter()

	fmt.Println()
	PrintDoubleSeparator()
	fmt.Println("  Default Scenario Inputs")
	PrintDoubleSeparator()
	fmt.Println()

	fmt.Println("💸 Initial Costs")
	PrintKeyValue("License Setup Fee", f.Currency(inputs.Initial.SoftwareLicenseSetupFee), 26)
	PrintKeyValue("License Annual Fee", f.Currency(inputs.Initial.SoftwareLicenseAnnualFee), 26)
	PrintKeyValue("Hardware", f.Currency(inputs.Initial.HardwareCosts), 26)
	PrintKeyValue("Implementation", fmt.Sprintf("%.0f hrs @ %s/hr",
		inputs.Initial.ImplementationHours, f.Currency(inputs.Initial.ImplementationHourlyRate)), 26)
	PrintKeyValue("Training", fmt.Sprintf("%.0f users @ %s each",
		inputs.Initial.TrainingUsers, f.Currency(inputs.Initial.TrainingCostPerUser)), 26)
	PrintKeyValue("Other One-Time", f.Currency(inputs.Initial.OtherOneTimeCosts), 26)
	fmt.Println()

	fmt.Println("🔄 Ongoing Costs")
	PrintKeyValue("Maintenance & Support", f.Currency(inputs.Ongoing.AnnualMaintenanceSupport), 26)
	PrintKeyValue("Personnel", fmt.Sprintf("%.1f FTE @ %s",
		inputs.Ongoing.PersonnelFTEs, f.Currency(inputs.Ongoing.PersonnelBlendedSalary)), 26)
	PrintKeyValue("Utilities & Infrastructure", f.Currency(inputs.Ongoing.UtilitiesInfrastructure), 26)
	PrintKeyValue("Marketing & Adoption", f.Currency(inputs.Ongoing.MarketingAdoption), 26)
	PrintKeyValue("Other Annual OpEx", f.Currency(inputs.Ongoing.OtherAnnualOpEx), 26)
	fmt.Println()

	fmt.Println("💰 Quantifiable Benefits")
	tools := make([]string, 0, len(inputs.Benefits.CurrentToolCosts))
	for _, c := range inputs.Benefits.CurrentToolCosts {
		tools = append(tools, f.Currency(c))
	}
	PrintKeyValue("Replaced Tool Costs", strings.Join(tools, " + "), 26)
	PrintKeyValue("FTE Hours Saved", fmt.Sprintf("%.0f hrs/week @ %s/hr",
		inputs.Benefits.FTEHoursSavedPerWeek, f.Currency(inputs.Benefits.BlendedHourlyRate)), 26)
	PrintKeyValue("Client Revenue", f.Currency(inputs.Benefits.ClientCurrentRevenue), 26)
	PrintKeyValue("Benchmark Improvement", f.Percent(inputs.Benefits.BenchmarkImprovementPercent), 26)
	PrintKeyValue("Attribution Factor", f.Percent(inputs.Benefits.AttributionFactor), 26)
	fmt.Println()

	fmt.Println("📅 Financial Parameters")
	PrintKeyValue("Time Horizon", fmt.Sprintf("%d years", inputs.Financial.TimeHorizonYears), 26)
	PrintKeyValue("Discount Rate", f.Percent(inputs.Financial.AnnualDiscountRate), 26)
	fmt.Println()

	PrintInfo("Run 'calc --defaults' to compute the metrics for these inputs.")
	return nil
}
