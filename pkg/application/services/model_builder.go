package services

import (
	"sort"
	"strings"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/milp"
)

// ModelConfig holds configuration for model construction and extraction
type ModelConfig struct {
	// RequireCategoryCoverage forces every non-empty food-basket category to
	// be purchased or already stocked. When false the category indicators
	// are free to stay at zero and the diversity constraints bind nothing.
	RequireCategoryCoverage bool
	// Tolerance is the threshold below which a solved quantity counts as zero
	Tolerance float64
}

// DefaultModelConfig returns the standard planner configuration
func DefaultModelConfig() ModelConfig {
	return ModelConfig{
		RequireCategoryCoverage: true,
		Tolerance:               1e-6,
	}
}

// shoppingModel is one MILP instance plus the index needed to read its
// solution back: variable i in [0, len(packages)) is the purchase quantity
// of packages[i], the remaining variables are category indicators.
type shoppingModel struct {
	model        *milp.Model
	packages     []entities.FoodPackage
	categoryVars map[string]int
}

// nutrientFloors fixes the constraint order: one row per tracked nutrient
var nutrientFloors = []struct {
	name  string
	value func(entities.Nutrients) float64
}{
	{"protein_floor", func(n entities.Nutrients) float64 { return n.Protein }},
	{"carbohydrate_floor", func(n entities.Nutrients) float64 { return n.Carbohydrate }},
	{"fat_floor", func(n entities.Nutrients) float64 { return n.Fat }},
	{"calorie_floor", func(n entities.Nutrients) float64 { return n.Calories }},
}

// buildShoppingModel constructs the weekly purchase MILP. It is stateless:
// identical packages, floor and config yield a structurally identical model.
// Packages must already be in deterministic (joiner) order.
func buildShoppingModel(
	packages []entities.FoodPackage,
	weeklyFloor entities.Nutrients,
	cfg ModelConfig,
) *shoppingModel {
	model := milp.NewModel("weekly_shopping", milp.Minimize)

	// One integer purchase variable per package, bounded by its cap
	objective := make([]milp.Term, 0, len(packages))
	for _, pkg := range packages {
		idx := model.AddVariable(milp.Variable{
			Name:       pkg.PackageDescription,
			Kind:       milp.IntegerVar,
			LowerBound: 0,
			UpperBound: float64(pkg.MaxQuantity),
		})
		objective = append(objective, milp.Term{Var: idx, Coef: pkg.Price.InexactFloat64()})
	}
	model.SetObjective(objective)

	// Nutrient floors: purchased content plus the constant contribution of
	// stock on hand must reach the weekly floor. The stock contribution is
	// folded into the right-hand side.
	for _, nutrient := range nutrientFloors {
		terms := make([]milp.Term, 0, len(packages))
		stocked := 0.0
		for i, pkg := range packages {
			content := nutrient.value(pkg.PerPackage)
			stocked += content * pkg.StockLb
			if content != 0 {
				terms = append(terms, milp.Term{Var: i, Coef: content})
			}
		}
		model.AddConstraint(milp.Constraint{
			Name:     nutrient.name,
			Terms:    terms,
			Relation: milp.GreaterEq,
			RHS:      nutrient.value(weeklyFloor) - stocked,
		})
	}

	// Diversity: a binary presence indicator per non-empty category. The
	// presence row counts purchases plus packages already stocked; the
	// coverage row pins the indicator to one so every category must actually
	// be purchased or stocked.
	categoryVars := make(map[string]int)
	for _, category := range sortedCategories(packages) {
		idx := model.AddVariable(milp.Variable{
			Name:       indicatorName(category),
			Kind:       milp.BinaryVar,
			LowerBound: 0,
			UpperBound: 1,
		})
		categoryVars[category] = idx

		terms := []milp.Term{{Var: idx, Coef: -1}}
		stockedCount := 0
		for i, pkg := range packages {
			if pkg.Basket != category {
				continue
			}
			terms = append(terms, milp.Term{Var: i, Coef: 1})
			if pkg.StockLb > 0 {
				stockedCount++
			}
		}
		model.AddConstraint(milp.Constraint{
			Name:     category + "_presence",
			Terms:    terms,
			Relation: milp.GreaterEq,
			RHS:      float64(-stockedCount),
		})

		if cfg.RequireCategoryCoverage {
			model.AddConstraint(milp.Constraint{
				Name:     category + "_coverage",
				Terms:    []milp.Term{{Var: idx, Coef: 1}},
				Relation: milp.Equal,
				RHS:      1,
			})
		}
	}

	return &shoppingModel{
		model:        model,
		packages:     packages,
		categoryVars: categoryVars,
	}
}

// sortedCategories returns the distinct non-empty basket categories in
// lexicographic order
func sortedCategories(packages []entities.FoodPackage) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, pkg := range packages {
		if pkg.Basket == "" || seen[pkg.Basket] {
			continue
		}
		seen[pkg.Basket] = true
		categories = append(categories, pkg.Basket)
	}
	sort.Strings(categories)
	return categories
}

// indicatorName derives the indicator variable name from a category label
func indicatorName(category string) string {
	return "Has_" + strings.ReplaceAll(category, "&", "and")
}
