package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CostRow is one entry of the cost table: where a package is sold and what
// it costs
type CostRow struct {
	Food               string
	PackageDescription string
	Store              string
	Price              decimal.Decimal
	WeightLb           float64
}

// Validate checks the cost row against the table contract
func (r CostRow) Validate() error {
	if r.PackageDescription == "" {
		return fmt.Errorf("cost row for food %q has empty package description", r.Food)
	}
	if r.Price.IsNegative() {
		return fmt.Errorf("cost row %q has negative price %s", r.PackageDescription, r.Price)
	}
	if r.WeightLb <= 0 {
		return fmt.Errorf("cost row %q has non-positive weight %v lb", r.PackageDescription, r.WeightLb)
	}
	return nil
}

// NutritionRow is one entry of the nutrition table: per-package nutrient
// content, the food-basket category, and the purchase cap
type NutritionRow struct {
	Food        string
	PerPackage  Nutrients
	Basket      string
	MaxQuantity int
}

// Validate checks the nutrition row against the table contract
func (r NutritionRow) Validate() error {
	if r.Food == "" {
		return fmt.Errorf("nutrition row has empty food name")
	}
	if r.MaxQuantity < 0 {
		return fmt.Errorf("nutrition row %q has negative max quantity %d", r.Food, r.MaxQuantity)
	}
	return nil
}

// StockEntry records how much of one package the household already holds
type StockEntry struct {
	PackageDescription string
	QuantityLb         float64
}

// FoodPackage is the joined per-package record the optimizer works on: cost,
// nutrition and stock keyed by the unique package description
type FoodPackage struct {
	Food               string
	PackageDescription string
	Store              string
	Price              decimal.Decimal
	WeightLb           float64
	PerPackage         Nutrients
	Basket             string
	MaxQuantity        int
	StockLb            float64
}
