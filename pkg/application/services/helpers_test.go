package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/milp"
)

// testPackage builds a joined package record for tests
func testPackage(
	food, description, store string,
	price float64,
	weightLb float64,
	nutrients entities.Nutrients,
	basket string,
	maxQuantity int,
	stockLb float64,
) entities.FoodPackage {
	return entities.FoodPackage{
		Food:               food,
		PackageDescription: description,
		Store:              store,
		Price:              decimal.NewFromFloat(price),
		WeightLb:           weightLb,
		PerPackage:         nutrients,
		Basket:             basket,
		MaxQuantity:        maxQuantity,
		StockLb:            stockLb,
	}
}

// testCatalog is a small two-store, two-category catalog used across the
// service tests
func testCatalog() []entities.FoodPackage {
	return []entities.FoodPackage{
		testPackage("Chicken", "Chicken Breast 3lb", "Costco", 12.99, 3,
			entities.Nutrients{Calories: 1400, Protein: 280, Fat: 30}, "Protein", 5, 0),
		testPackage("Rice", "Jasmine Rice 10lb", "Kroger", 9.49, 10,
			entities.Nutrients{Calories: 16000, Protein: 320, Carbohydrate: 3500}, "Grains", 3, 0),
	}
}

// scriptedSolver returns a canned solution without consulting the model
type scriptedSolver struct {
	solution *milp.Solution
	err      error
	solved   int
}

func (s *scriptedSolver) Solve(_ context.Context, _ *milp.Model) (*milp.Solution, error) {
	s.solved++
	if s.err != nil {
		return nil, s.err
	}
	return s.solution, nil
}
