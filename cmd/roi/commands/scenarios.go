package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/interpret"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/internal/scenario"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/config"
	"github.com/baymclaughlin-coder/anyroad-roi-calculator/pkg/database"
)

// scenariosCmd represents the scenarios command
var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "Inspect and maintain saved scenarios",
	Long: `Works directly against the scenario database, bypassing the API
and its cache, so output is never stale.

Example:
  go run ./cmd/roi scenarios list
  go run ./cmd/roi scenarios prune --days 3`,
}

// scenariosListCmd represents the scenarios list command
var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved scenarios, most recently updated first",
	RunE:  runScenariosList,
}

// scenariosPruneCmd represents the scenarios prune command
var scenariosPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove draft scenarios past the retention window",
	Long: `Deletes draft scenarios whose last update is older than the
retention window. Named non-draft scenarios are never touched.

Example:
  go run ./cmd/roi scenarios prune
  go run ./cmd/roi scenarios prune --days 3`,
	RunE: runScenariosPrune,
}

var (
	scenariosLimit  int
	scenariosOffset int
	pruneDays       int
)

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosPruneCmd)

	// Flags
	scenariosListCmd.Flags().IntVar(&scenariosLimit, "limit", 50, "maximum scenarios to list")
	scenariosListCmd.Flags().IntVar(&scenariosOffset, "offset", 0, "scenarios to skip")
	scenariosPruneCmd.Flags().IntVar(&pruneDays, "days", 0, "retention in days (0 = configured retention)")
}

func runScenariosList(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Saved Scenarios ===")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("❌ Failed to load config: %w", err)
	}

	// Create database connection
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("❌ Failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	list, err := scenario.NewRepository(db.Pool).List(ctx, scenariosLimit, scenariosOffset)
	if err != nil {
		return fmt.Errorf("❌ Failed to list scenarios: %w", err)
	}

	if len(list) == 0 {
		PrintInfo("No saved scenarios")
		return nil
	}

	f := interpret.DefaultFormatter()
	fmt.Println()
	widths := []int{10, 24, 20, 12, 6, 16}
	PrintTableHeader([]string{"ID", "Name", "Company", "ROI", "Draft", "Updated"}, widths)
	for _, sc := range list {
		draft := "no"
		if sc.Draft {
			draft = "yes"
		}
		PrintTableRow([]string{
			shortID(sc.ID),
			sc.Name,
			sc.Company,
			f.Percent(sc.Metrics.ROIPercentage),
			draft,
			sc.UpdatedAt.Format("2006-01-02 15:04"),
		}, widths)
	}

	fmt.Printf("\n📊 %d scenario(s)\n", len(list))
	return nil
}

func runScenariosPrune(cmd *cobra.Command, args []string) error {
	fmt.Println("=== Draft Scenario Cleanup ===")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("❌ Failed to load config: %w", err)
	}

	// Create database connection
	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("❌ Failed to connect to database: %w", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	days := pruneDays
	if days <= 0 {
		days = cfg.Scenario.DraftRetentionDays
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	fmt.Printf("🗑️  Removing drafts not updated since %s (%d day retention)\n",
		cutoff.Format("2006-01-02"), days)

	removed, err := scenario.NewRepository(db.Pool).PruneDrafts(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("❌ Failed to prune drafts: %w", err)
	}

	if removed == 0 {
		PrintInfo("No stale draft scenarios")
		return nil
	}

	PrintSuccess(fmt.Sprintf("Removed %d stale draft scenario(s)", removed))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
