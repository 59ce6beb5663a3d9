package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/tkoide/grocer/pkg/application/dto"
	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/milp"
)

var shoppingListHeader = []interface{}{
	"Store",
	"Food",
	"Package Description",
	"lb_per_package",
	"price_per_package",
	"Qty_to_Buy",
	"Total_Weight_lb",
	"Weekly_Cost",
}

// WriteWorkbook exports the plan as an xlsx workbook: a Summary sheet, the
// full Shopping List sheet, and one sheet per store. Excel caps sheet names
// at 31 characters.
func WriteWorkbook(result *dto.PlanResult, path string) error {
	if result.Status != milp.StatusOptimal || result.Plan == nil {
		return fmt.Errorf("no plan to export: solver status %s", result.Status)
	}
	plan := result.Plan

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	summary := f.GetSheetName(f.GetActiveSheetIndex())
	if err := f.SetSheetName(summary, "Summary"); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}

	summaryRows := [][]interface{}{
		{"Metric", "Value"},
		{"Total Cost", "$" + plan.TotalCost.StringFixed(2)},
		{"Total Packages", plan.TotalPackages},
		{"Total Weight (lbs)", fmt.Sprintf("%.1f", plan.TotalWeightLb)},
		{"Number of Stores", len(plan.Stores)},
	}
	if err := writeRows(f, "Summary", summaryRows); err != nil {
		return err
	}

	if _, err := f.NewSheet("Shopping List"); err != nil {
		return fmt.Errorf("failed to create shopping list sheet: %w", err)
	}
	if err := writeRows(f, "Shopping List", lineRows(plan.Lines)); err != nil {
		return err
	}

	for _, store := range plan.Stores {
		sheet := store.Store
		if len(sheet) > 31 {
			sheet = sheet[:31]
		}
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet for store %q: %w", store.Store, err)
		}
		if err := writeRows(f, sheet, lineRows(store.Lines)); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// lineRows renders plan lines as sheet rows under the shopping list header
func lineRows(lines []entities.PlanLine) [][]interface{} {
	rows := [][]interface{}{shoppingListHeader}
	for _, line := range lines {
		rows = append(rows, []interface{}{
			line.Store,
			line.Food,
			line.PackageDescription,
			line.WeightLb,
			line.UnitPrice.InexactFloat64(),
			line.Quantity,
			line.TotalWeightLb,
			line.Cost.InexactFloat64(),
		})
	}
	return rows
}

// writeRows fills a sheet row by row starting at A1
func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("failed to compute cell for row %d: %w", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d of sheet %s: %w", i+1, sheet, err)
		}
	}
	return nil
}
