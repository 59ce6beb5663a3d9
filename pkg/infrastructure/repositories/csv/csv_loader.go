// Package csv loads the grocery planning tables from CSV files laid out
// like the original workbook sheets.
package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tkoide/grocer/pkg/domain/entities"
)

// Header layouts, matching the workbook column names
var (
	costHeader        = []string{"food", "package description", "store", "price", "lb"}
	nutritionHeader   = []string{"food", "kcal", "protein (g)", "carbs (g)", "fat (g)", "food basket", "max_quantity"}
	requirementHeader = []string{"age_sex_group", "min_age", "max_age", "min_calorie", "min_protein", "min_carbohydrate", "min_fat"}
	stockHeader       = []string{"package description", "quantity_in_stock_lb"}
)

// Loader handles loading grocery planning data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadCostRows loads the cost table from a CSV file
func (l *Loader) LoadCostRows(filename string) ([]entities.CostRow, error) {
	records, err := readTable(filename, "cost", costHeader)
	if err != nil {
		return nil, err
	}

	var rows []entities.CostRow
	for i, record := range records {
		row, err := ParseCostRecord(record)
		if err != nil {
			return nil, fmt.Errorf("cost CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadNutritionRows loads the nutrition table from a CSV file
func (l *Loader) LoadNutritionRows(filename string) ([]entities.NutritionRow, error) {
	records, err := readTable(filename, "nutrition", nutritionHeader)
	if err != nil {
		return nil, err
	}

	var rows []entities.NutritionRow
	for i, record := range records {
		row, err := ParseNutritionRecord(record)
		if err != nil {
			return nil, fmt.Errorf("nutrition CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadRequirements loads the nutrient requirement table from a CSV file
func (l *Loader) LoadRequirements(filename string) ([]entities.NutrientRequirement, error) {
	records, err := readTable(filename, "requirements", requirementHeader)
	if err != nil {
		return nil, err
	}

	var rows []entities.NutrientRequirement
	for i, record := range records {
		row, err := ParseRequirementRecord(record)
		if err != nil {
			return nil, fmt.Errorf("requirements CSV row %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// LoadStockEntries loads the stock table from a CSV file
func (l *Loader) LoadStockEntries(filename string) ([]entities.StockEntry, error) {
	records, err := readTable(filename, "stock", stockHeader)
	if err != nil {
		return nil, err
	}

	var entries []entities.StockEntry
	for i, record := range records {
		entry, err := ParseStockRecord(record)
		if err != nil {
			return nil, fmt.Errorf("stock CSV row %d: %w", i+2, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// readTable reads a CSV file and validates its header
func readTable(filename, table string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", table, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", table, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", table)
	}

	if !ValidateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("%s CSV header mismatch. Expected: %v, Got: %v",
			table, expectedHeader, records[0])
	}

	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("%s CSV row %d: expected %d columns, got %d",
				table, i+2, len(expectedHeader), len(record))
		}
	}

	return records[1:], nil
}

// ValidateHeader checks a header row against the expected column names,
// ignoring case and surrounding whitespace
func ValidateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}
	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}
	return true
}

// CostHeader returns the expected cost table header
func CostHeader() []string { return costHeader }

// NutritionHeader returns the expected nutrition table header
func NutritionHeader() []string { return nutritionHeader }

// RequirementHeader returns the expected requirement table header
func RequirementHeader() []string { return requirementHeader }

// StockHeader returns the expected stock table header
func StockHeader() []string { return stockHeader }

// ParseCostRecord parses one cost table record in header column order
func ParseCostRecord(record []string) (entities.CostRow, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(record[3]))
	if err != nil {
		return entities.CostRow{}, fmt.Errorf("invalid price: %s", record[3])
	}

	weight, err := parseFloat(record[4], "lb")
	if err != nil {
		return entities.CostRow{}, err
	}

	return entities.CostRow{
		Food:               strings.TrimSpace(record[0]),
		PackageDescription: strings.TrimSpace(record[1]),
		Store:              strings.TrimSpace(record[2]),
		Price:              price,
		WeightLb:           weight,
	}, nil
}

// ParseNutritionRecord parses one nutrition table record in header column order
func ParseNutritionRecord(record []string) (entities.NutritionRow, error) {
	var nutrients entities.Nutrients
	var err error

	if nutrients.Calories, err = parseFloat(record[1], "kcal"); err != nil {
		return entities.NutritionRow{}, err
	}
	if nutrients.Protein, err = parseFloat(record[2], "protein (g)"); err != nil {
		return entities.NutritionRow{}, err
	}
	if nutrients.Carbohydrate, err = parseFloat(record[3], "carbs (g)"); err != nil {
		return entities.NutritionRow{}, err
	}
	if nutrients.Fat, err = parseFloat(record[4], "fat (g)"); err != nil {
		return entities.NutritionRow{}, err
	}

	maxQuantity, err := strconv.Atoi(strings.TrimSpace(record[6]))
	if err != nil {
		return entities.NutritionRow{}, fmt.Errorf("invalid max_quantity: %s", record[6])
	}

	return entities.NutritionRow{
		Food:        strings.TrimSpace(record[0]),
		PerPackage:  nutrients,
		Basket:      strings.TrimSpace(record[5]),
		MaxQuantity: maxQuantity,
	}, nil
}

// ParseRequirementRecord parses one requirement table record in header column order
func ParseRequirementRecord(record []string) (entities.NutrientRequirement, error) {
	minAge, err := strconv.Atoi(strings.TrimSpace(record[1]))
	if err != nil {
		return entities.NutrientRequirement{}, fmt.Errorf("invalid min_age: %s", record[1])
	}
	maxAge, err := strconv.Atoi(strings.TrimSpace(record[2]))
	if err != nil {
		return entities.NutrientRequirement{}, fmt.Errorf("invalid max_age: %s", record[2])
	}

	var daily entities.Nutrients
	if daily.Calories, err = parseFloat(record[3], "min_calorie"); err != nil {
		return entities.NutrientRequirement{}, err
	}
	if daily.Protein, err = parseFloat(record[4], "min_protein"); err != nil {
		return entities.NutrientRequirement{}, err
	}
	if daily.Carbohydrate, err = parseFloat(record[5], "min_carbohydrate"); err != nil {
		return entities.NutrientRequirement{}, err
	}
	if daily.Fat, err = parseFloat(record[6], "min_fat"); err != nil {
		return entities.NutrientRequirement{}, err
	}

	return entities.NutrientRequirement{
		Group:        strings.TrimSpace(record[0]),
		MinAge:       minAge,
		MaxAge:       maxAge,
		DailyMinimum: daily,
	}, nil
}

// ParseStockRecord parses one stock table record in header column order
func ParseStockRecord(record []string) (entities.StockEntry, error) {
	quantity, err := parseFloat(record[1], "quantity_in_stock_lb")
	if err != nil {
		return entities.StockEntry{}, err
	}
	return entities.StockEntry{
		PackageDescription: strings.TrimSpace(record[0]),
		QuantityLb:         quantity,
	}, nil
}

func parseFloat(s, column string) (float64, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %s", column, s)
	}
	return value, nil
}
