package services

import (
	"fmt"
	"sort"

	"github.com/tkoide/grocer/pkg/domain/entities"
)

// JoinResult holds the joined per-package records plus the cost rows that
// were dropped for lack of a nutrition match
type JoinResult struct {
	Packages        []entities.FoodPackage
	DroppedCostRows []entities.CostRow
}

// JoinCatalog merges the cost, nutrition and stock tables into one record
// per package description:
//
//   - cost -> nutrition is an inner join on Food; cost rows without a
//     nutrition match are dropped and reported
//   - the result -> stock is a left join on package description; packages
//     without a stock entry default to zero stock, duplicate stock entries
//     for one package are summed
//
// Package descriptions must be unique within the cost table; a duplicate is
// an error naming the offending key. The output is sorted by package
// description so downstream model construction is deterministic.
func JoinCatalog(
	cost []entities.CostRow,
	nutrition []entities.NutritionRow,
	stock []entities.StockEntry,
) (*JoinResult, error) {
	nutritionByFood := make(map[string]entities.NutritionRow, len(nutrition))
	for _, row := range nutrition {
		if _, exists := nutritionByFood[row.Food]; exists {
			// First row wins for a repeated food name
			continue
		}
		nutritionByFood[row.Food] = row
	}

	stockByPackage := make(map[string]float64, len(stock))
	for _, entry := range stock {
		stockByPackage[entry.PackageDescription] += entry.QuantityLb
	}

	seen := make(map[string]bool, len(cost))
	result := &JoinResult{}

	for _, costRow := range cost {
		if seen[costRow.PackageDescription] {
			return nil, fmt.Errorf(
				"duplicate package description in cost table: %q",
				costRow.PackageDescription,
			)
		}
		seen[costRow.PackageDescription] = true

		nutritionRow, ok := nutritionByFood[costRow.Food]
		if !ok {
			result.DroppedCostRows = append(result.DroppedCostRows, costRow)
			continue
		}

		result.Packages = append(result.Packages, entities.FoodPackage{
			Food:               costRow.Food,
			PackageDescription: costRow.PackageDescription,
			Store:              costRow.Store,
			Price:              costRow.Price,
			WeightLb:           costRow.WeightLb,
			PerPackage:         nutritionRow.PerPackage,
			Basket:             nutritionRow.Basket,
			MaxQuantity:        nutritionRow.MaxQuantity,
			StockLb:            stockByPackage[costRow.PackageDescription],
		})
	}

	sort.Slice(result.Packages, func(i, j int) bool {
		return result.Packages[i].PackageDescription < result.Packages[j].PackageDescription
	})

	return result, nil
}
