package services

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/milp"
)

// extractPlan converts an optimal solution back into a purchase plan. Every
// purchase variable solved strictly above the tolerance is rounded to the
// nearest integer and becomes one plan line; near-zero values are excluded.
// A solution shorter than the variable index is an internal defect.
func extractPlan(
	sm *shoppingModel,
	solution *milp.Solution,
	tolerance float64,
) (*entities.PurchasePlan, error) {
	plan := &entities.PurchasePlan{
		TotalCost: decimal.Zero,
	}

	for i, pkg := range sm.packages {
		if i >= len(solution.Values) {
			return nil, &InconsistencyError{
				Variable:           sm.model.Variables[i].Name,
				PackageDescription: pkg.PackageDescription,
			}
		}
		value := solution.Values[i]
		if value <= tolerance {
			continue
		}

		quantity := int(math.Round(value))
		if quantity == 0 {
			continue
		}
		cost := pkg.Price.Mul(decimal.NewFromInt(int64(quantity)))

		plan.Lines = append(plan.Lines, entities.PlanLine{
			Store:              pkg.Store,
			Food:               pkg.Food,
			PackageDescription: pkg.PackageDescription,
			WeightLb:           pkg.WeightLb,
			UnitPrice:          pkg.Price,
			Quantity:           quantity,
			TotalWeightLb:      pkg.WeightLb * float64(quantity),
			Cost:               cost,
		})

		plan.TotalCost = plan.TotalCost.Add(cost)
		plan.TotalPackages += quantity
		plan.TotalWeightLb += pkg.WeightLb * float64(quantity)
	}

	plan.Stores = groupByStore(plan.Lines)
	return plan, nil
}

// groupByStore buckets plan lines per store, sorted lexicographically by
// store name, each group carrying its own cost and package subtotals
func groupByStore(lines []entities.PlanLine) []entities.StoreSummary {
	byStore := make(map[string]*entities.StoreSummary)
	var stores []string

	for _, line := range lines {
		summary, ok := byStore[line.Store]
		if !ok {
			summary = &entities.StoreSummary{Store: line.Store, Cost: decimal.Zero}
			byStore[line.Store] = summary
			stores = append(stores, line.Store)
		}
		summary.Lines = append(summary.Lines, line)
		summary.Packages += line.Quantity
		summary.Cost = summary.Cost.Add(line.Cost)
	}

	sort.Strings(stores)
	summaries := make([]entities.StoreSummary, 0, len(stores))
	for _, store := range stores {
		summaries = append(summaries, *byStore[store])
	}
	return summaries
}
