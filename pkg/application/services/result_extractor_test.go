package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/milp"
)

func optimalSolution(values ...float64) *milp.Solution {
	return &milp.Solution{Status: milp.StatusOptimal, Values: values}
}

func TestExtractPlan_Basic(t *testing.T) {
	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, DefaultModelConfig())

	// 2 chicken packs, 1 rice pack, both indicators on
	plan, err := extractPlan(sm, optimalSolution(2, 1, 1, 1), 1e-6)
	if err != nil {
		t.Fatalf("extractPlan failed: %v", err)
	}

	if len(plan.Lines) != 2 {
		t.Fatalf("expected 2 plan lines, got %d", len(plan.Lines))
	}

	chicken := plan.Lines[0]
	if chicken.PackageDescription != "Chicken Breast 3lb" || chicken.Quantity != 2 {
		t.Errorf("unexpected first line: %+v", chicken)
	}
	if !chicken.Cost.Equal(decimal.NewFromFloat(25.98)) {
		t.Errorf("chicken cost = %s, want 25.98", chicken.Cost)
	}
	if chicken.TotalWeightLb != 6 {
		t.Errorf("chicken weight = %v, want 6", chicken.TotalWeightLb)
	}

	wantTotal := decimal.NewFromFloat(25.98).Add(decimal.NewFromFloat(9.49))
	if !plan.TotalCost.Equal(wantTotal) {
		t.Errorf("total cost = %s, want %s", plan.TotalCost, wantTotal)
	}
	if plan.TotalPackages != 3 {
		t.Errorf("total packages = %d, want 3", plan.TotalPackages)
	}
	if plan.TotalWeightLb != 16 {
		t.Errorf("total weight = %v, want 16", plan.TotalWeightLb)
	}
}

func TestExtractPlan_NearZeroQuantitiesExcluded(t *testing.T) {
	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, DefaultModelConfig())

	plan, err := extractPlan(sm, optimalSolution(1e-9, 2, 1, 1), 1e-6)
	if err != nil {
		t.Fatalf("extractPlan failed: %v", err)
	}

	if len(plan.Lines) != 1 {
		t.Fatalf("expected the near-zero line excluded, got %d lines", len(plan.Lines))
	}
	if plan.Lines[0].PackageDescription != "Jasmine Rice 10lb" {
		t.Errorf("unexpected surviving line: %+v", plan.Lines[0])
	}
}

func TestExtractPlan_RoundsFractionalValues(t *testing.T) {
	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, DefaultModelConfig())

	// Solver numerics can report 1.9999999 for an integer variable
	plan, err := extractPlan(sm, optimalSolution(1.9999999, 0, 1, 0), 1e-6)
	if err != nil {
		t.Fatalf("extractPlan failed: %v", err)
	}

	if len(plan.Lines) != 1 || plan.Lines[0].Quantity != 2 {
		t.Fatalf("expected quantity rounded to 2, got %+v", plan.Lines)
	}
	if !plan.Lines[0].Cost.Equal(decimal.NewFromFloat(25.98)) {
		t.Errorf("cost must use the rounded quantity, got %s", plan.Lines[0].Cost)
	}
}

func TestExtractPlan_GroupsByStore(t *testing.T) {
	packages := []entities.FoodPackage{
		testPackage("Chicken", "Chicken Breast 3lb", "Costco", 12.99, 3,
			entities.Nutrients{Protein: 280}, "Protein", 5, 0),
		testPackage("Eggs", "Eggs 24ct", "Costco", 6.49, 3,
			entities.Nutrients{Protein: 150}, "Protein", 4, 0),
		testPackage("Rice", "Jasmine Rice 10lb", "Kroger", 9.49, 10,
			entities.Nutrients{Carbohydrate: 3500}, "Grains", 3, 0),
	}
	sm := buildShoppingModel(packages, entities.Nutrients{}, DefaultModelConfig())

	plan, err := extractPlan(sm, optimalSolution(1, 2, 1, 1, 1), 1e-6)
	if err != nil {
		t.Fatalf("extractPlan failed: %v", err)
	}

	if len(plan.Stores) != 2 {
		t.Fatalf("expected 2 store groups, got %d", len(plan.Stores))
	}

	costco := plan.Stores[0]
	if costco.Store != "Costco" {
		t.Fatalf("stores must be sorted, got %q first", costco.Store)
	}
	if costco.Packages != 3 || len(costco.Lines) != 2 {
		t.Errorf("Costco group = %+v", costco)
	}
	wantCostco := decimal.NewFromFloat(12.99).Add(decimal.NewFromFloat(6.49).Mul(decimal.NewFromInt(2)))
	if !costco.Cost.Equal(wantCostco) {
		t.Errorf("Costco subtotal = %s, want %s", costco.Cost, wantCostco)
	}

	kroger := plan.Stores[1]
	if kroger.Store != "Kroger" || kroger.Packages != 1 {
		t.Errorf("Kroger group = %+v", kroger)
	}

	// Store subtotals must sum back to the plan total
	total := decimal.Zero
	for _, store := range plan.Stores {
		total = total.Add(store.Cost)
	}
	if !total.Equal(plan.TotalCost) {
		t.Errorf("store subtotals sum to %s, plan total is %s", total, plan.TotalCost)
	}
}

func TestExtractPlan_ShortSolutionIsInconsistent(t *testing.T) {
	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, DefaultModelConfig())

	_, err := extractPlan(sm, optimalSolution(2), 1e-6)
	if err == nil {
		t.Fatal("expected an inconsistency error for a truncated solution")
	}

	var inconsistency *InconsistencyError
	if !errors.As(err, &inconsistency) {
		t.Fatalf("expected *InconsistencyError, got %T: %v", err, err)
	}
	if inconsistency.PackageDescription != "Jasmine Rice 10lb" {
		t.Errorf("error names package %q, want the missing rice variable",
			inconsistency.PackageDescription)
	}
}

func TestExtractPlan_AllZeroIsEmptyPlan(t *testing.T) {
	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, DefaultModelConfig())

	plan, err := extractPlan(sm, optimalSolution(0, 0, 1, 1), 1e-6)
	if err != nil {
		t.Fatalf("extractPlan failed: %v", err)
	}

	if len(plan.Lines) != 0 || plan.TotalPackages != 0 {
		t.Errorf("expected empty plan, got %+v", plan)
	}
	if !plan.TotalCost.Equal(decimal.Zero) {
		t.Errorf("total cost = %s, want 0", plan.TotalCost)
	}
	if len(plan.Stores) != 0 {
		t.Errorf("expected no store groups, got %v", plan.Stores)
	}
}
