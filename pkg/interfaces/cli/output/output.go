package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/tkoide/grocer/pkg/application/dto"
	"github.com/tkoide/grocer/pkg/milp"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	Path      string
	Verbose   bool
	SolveTime time.Duration
}

// Generate renders a plan result in the configured format. The xlsx format
// requires a path; text and json go to stdout, or to the path when one is
// set.
func Generate(result *dto.PlanResult, config Config) error {
	switch config.Format {
	case "text":
		return generateText(result, config)
	case "json":
		return generateJSON(result, config)
	case "xlsx":
		if config.Path == "" {
			return fmt.Errorf("xlsx output requires an output path")
		}
		return WriteWorkbook(result, config.Path)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateText renders a human-readable shopping list grouped by store
func generateText(result *dto.PlanResult, config Config) error {
	fmt.Printf("🛒 Weekly Shopping Plan\n")
	fmt.Printf("=======================\n\n")

	if result.Status != milp.StatusOptimal {
		fmt.Printf("No plan: solver status %s\n\n", result.Status)
		reportDataQuality(result)
		return nil
	}

	plan := result.Plan
	fmt.Printf("Total Cost: $%s\n", plan.TotalCost.StringFixed(2))
	fmt.Printf("Total Packages: %d\n", plan.TotalPackages)
	fmt.Printf("Total Weight: %.1f lb\n", plan.TotalWeightLb)
	if config.Verbose {
		fmt.Printf("Solve Time: %v\n", config.SolveTime)
	}
	fmt.Println()

	for _, store := range plan.Stores {
		fmt.Printf("🏪 %s (%d packages, $%s)\n",
			store.Store, store.Packages, store.Cost.StringFixed(2))
		fmt.Printf("%-42s %-6s %-10s %-10s %-10s\n",
			"Package", "Qty", "Unit $", "Cost $", "Weight lb")
		fmt.Printf("%-42s %-6s %-10s %-10s %-10s\n",
			"------------------------------------------", "------",
			"----------", "----------", "----------")
		for _, line := range store.Lines {
			fmt.Printf("%-42s %-6d %-10s %-10s %-10.2f\n",
				line.PackageDescription,
				line.Quantity,
				line.UnitPrice.StringFixed(2),
				line.Cost.StringFixed(2),
				line.TotalWeightLb)
		}
		fmt.Println()
	}

	reportDataQuality(result)

	if config.Path != "" {
		if err := WriteWorkbook(result, config.Path); err != nil {
			return err
		}
		if config.Verbose {
			fmt.Printf("💾 Plan saved to: %s\n", config.Path)
		}
	}
	return nil
}

// reportDataQuality prints the recovered input problems, if any
func reportDataQuality(result *dto.PlanResult) {
	if len(result.Report.DroppedCostRows) > 0 {
		fmt.Printf("⚠️  Cost rows dropped (no nutrition match):\n")
		for _, row := range result.Report.DroppedCostRows {
			fmt.Printf("  %s (%s)\n", row.PackageDescription, row.Food)
		}
		fmt.Println()
	}
	if len(result.Report.UnmatchedMembers) > 0 {
		fmt.Printf("⚠️  Household members with no requirement row:\n")
		for _, member := range result.Report.UnmatchedMembers {
			fmt.Printf("  %s, age %d\n", member.Gender, member.Age)
		}
		fmt.Println()
	}
}

// generateJSON renders the result as JSON
func generateJSON(result *dto.PlanResult, config Config) error {
	view := struct {
		Status string          `json:"status"`
		Result *dto.PlanResult `json:"result"`
	}{
		Status: result.Status.String(),
		Result: result,
	}

	data, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	if config.Path != "" {
		if err := os.WriteFile(config.Path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	fmt.Println(string(data))
	return nil
}
