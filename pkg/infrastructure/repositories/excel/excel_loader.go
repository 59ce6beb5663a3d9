// Package excel loads the grocery planning tables from the xlsx workbooks
// the planner was originally fed with: a grocery workbook holding the
// Cost_List, Nutrition_List and Check_Nutrition sheets, and a stock workbook
// whose active sheet holds the pantry snapshot.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	csvtables "github.com/tkoide/grocer/pkg/infrastructure/repositories/csv"

	"github.com/tkoide/grocer/pkg/domain/entities"
)

// Sheet names in the grocery workbook
const (
	CostSheet        = "Cost_List"
	NutritionSheet   = "Nutrition_List"
	RequirementSheet = "Check_Nutrition"
)

// GroceryTables holds the three tables of the grocery workbook
type GroceryTables struct {
	CostRows      []entities.CostRow
	NutritionRows []entities.NutritionRow
	Requirements  []entities.NutrientRequirement
}

// Loader handles loading grocery planning data from xlsx workbooks
type Loader struct{}

// NewLoader creates a new workbook loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadGroceryWorkbook loads the cost, nutrition and requirement tables from
// one workbook
func (l *Loader) LoadGroceryWorkbook(filename string) (*GroceryTables, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open grocery workbook %s: %w", filename, err)
	}
	defer func() { _ = f.Close() }()

	tables := &GroceryTables{}

	costRecords, err := sheetRecords(f, CostSheet, csvtables.CostHeader())
	if err != nil {
		return nil, err
	}
	for i, record := range costRecords {
		row, err := csvtables.ParseCostRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", CostSheet, i+2, err)
		}
		tables.CostRows = append(tables.CostRows, row)
	}

	nutritionRecords, err := sheetRecords(f, NutritionSheet, csvtables.NutritionHeader())
	if err != nil {
		return nil, err
	}
	for i, record := range nutritionRecords {
		row, err := csvtables.ParseNutritionRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", NutritionSheet, i+2, err)
		}
		tables.NutritionRows = append(tables.NutritionRows, row)
	}

	requirementRecords, err := sheetRecords(f, RequirementSheet, csvtables.RequirementHeader())
	if err != nil {
		return nil, err
	}
	for i, record := range requirementRecords {
		row, err := csvtables.ParseRequirementRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", RequirementSheet, i+2, err)
		}
		tables.Requirements = append(tables.Requirements, row)
	}

	return tables, nil
}

// LoadStockWorkbook loads the stock table from the active sheet of a
// workbook
func (l *Loader) LoadStockWorkbook(filename string) ([]entities.StockEntry, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open stock workbook %s: %w", filename, err)
	}
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	records, err := sheetRecords(f, sheet, csvtables.StockHeader())
	if err != nil {
		return nil, err
	}

	var entries []entities.StockEntry
	for i, record := range records {
		entry, err := csvtables.ParseStockRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", sheet, i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// sheetRecords reads a sheet, validates its header, and returns the data
// rows padded to the header width. Fully empty rows are skipped; excelize
// truncates trailing empty cells, so short rows are padded rather than
// rejected.
func sheetRecords(f *excelize.File, sheet string, expectedHeader []string) ([][]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("sheet %s must have header and at least one data row", sheet)
	}

	header := pad(rows[0], len(expectedHeader))
	if !csvtables.ValidateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("sheet %s header mismatch. Expected: %v, Got: %v",
			sheet, expectedHeader, rows[0])
	}

	var records [][]string
	for _, row := range rows[1:] {
		if isEmpty(row) {
			continue
		}
		if len(row) > len(expectedHeader) {
			row = row[:len(expectedHeader)]
		}
		records = append(records, pad(row, len(expectedHeader)))
	}
	return records, nil
}

func pad(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	padded := make([]string, width)
	copy(padded, row)
	return padded
}

func isEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
