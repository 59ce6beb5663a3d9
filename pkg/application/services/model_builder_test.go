package services

import (
	"reflect"
	"testing"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/milp"
)

func TestBuildShoppingModel_VariablesAndBounds(t *testing.T) {
	packages := testCatalog()
	weekly := entities.Nutrients{Calories: 14000, Protein: 350, Carbohydrate: 900, Fat: 400}

	sm := buildShoppingModel(packages, weekly, DefaultModelConfig())
	model := sm.model

	// One integer variable per package plus one binary per category
	if len(model.Variables) != 4 {
		t.Fatalf("expected 4 variables, got %d", len(model.Variables))
	}

	chicken := model.Variables[0]
	if chicken.Name != "Chicken Breast 3lb" || chicken.Kind != milp.IntegerVar {
		t.Errorf("unexpected first variable: %+v", chicken)
	}
	if chicken.LowerBound != 0 || chicken.UpperBound != 5 {
		t.Errorf("purchase bounds = [%v, %v], want [0, 5]", chicken.LowerBound, chicken.UpperBound)
	}

	// Categories sorted: Grains before Protein
	if model.Variables[2].Name != "Has_Grains" || model.Variables[2].Kind != milp.BinaryVar {
		t.Errorf("unexpected indicator variable: %+v", model.Variables[2])
	}
	if model.Variables[3].Name != "Has_Protein" {
		t.Errorf("unexpected indicator variable: %+v", model.Variables[3])
	}

	if model.Direction != milp.Minimize {
		t.Error("model must minimize cost")
	}
}

func TestBuildShoppingModel_ObjectiveIsPrice(t *testing.T) {
	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, DefaultModelConfig())

	if len(sm.model.Objective) != 2 {
		t.Fatalf("expected 2 objective terms, got %d", len(sm.model.Objective))
	}
	if sm.model.Objective[0].Coef != 12.99 {
		t.Errorf("objective coef for chicken = %v, want 12.99", sm.model.Objective[0].Coef)
	}
	if sm.model.Objective[1].Var != 1 || sm.model.Objective[1].Coef != 9.49 {
		t.Errorf("objective term for rice = %+v", sm.model.Objective[1])
	}
}

func TestBuildShoppingModel_NutrientConstraints(t *testing.T) {
	weekly := entities.Nutrients{Calories: 14000, Protein: 350, Carbohydrate: 900, Fat: 400}
	sm := buildShoppingModel(testCatalog(), weekly, DefaultModelConfig())

	byName := constraintsByName(sm.model)

	protein, ok := byName["protein_floor"]
	if !ok {
		t.Fatal("missing protein_floor constraint")
	}
	if protein.Relation != milp.GreaterEq || protein.RHS != 350 {
		t.Errorf("protein_floor = %+v", protein)
	}
	// Both packages contain protein
	if len(protein.Terms) != 2 {
		t.Errorf("protein_floor terms = %+v", protein.Terms)
	}

	// Only rice contains carbohydrate; zero coefficients are omitted
	carbs := byName["carbohydrate_floor"]
	if len(carbs.Terms) != 1 || carbs.Terms[0].Var != 1 || carbs.Terms[0].Coef != 3500 {
		t.Errorf("carbohydrate_floor terms = %+v", carbs.Terms)
	}
}

func TestBuildShoppingModel_StockFoldedIntoRHS(t *testing.T) {
	packages := testCatalog()
	packages[1].StockLb = 2 // 2 lb of rice on hand

	weekly := entities.Nutrients{Calories: 14000}
	sm := buildShoppingModel(packages, weekly, DefaultModelConfig())

	calories := constraintsByName(sm.model)["calorie_floor"]
	// 2 lb of stock contributes 2 x 16000 kcal against the 14000 floor
	want := 14000.0 - 2*16000
	if calories.RHS != want {
		t.Errorf("calorie_floor RHS = %v, want %v", calories.RHS, want)
	}
}

func TestBuildShoppingModel_CategoryCoverage(t *testing.T) {
	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, DefaultModelConfig())
	byName := constraintsByName(sm.model)

	presence, ok := byName["Protein_presence"]
	if !ok {
		t.Fatal("missing Protein_presence constraint")
	}
	if presence.Relation != milp.GreaterEq || presence.RHS != 0 {
		t.Errorf("Protein_presence = %+v", presence)
	}

	coverage, ok := byName["Protein_coverage"]
	if !ok {
		t.Fatal("missing Protein_coverage constraint")
	}
	if coverage.Relation != milp.Equal || coverage.RHS != 1 {
		t.Errorf("Protein_coverage = %+v", coverage)
	}

	// Indicator pinned by coverage references the Has_Protein variable
	idx := sm.categoryVars["Protein"]
	if coverage.Terms[0].Var != idx {
		t.Errorf("coverage constraint references var %d, want %d", coverage.Terms[0].Var, idx)
	}
}

func TestBuildShoppingModel_StockedCategoryRelaxesPresence(t *testing.T) {
	packages := testCatalog()
	packages[0].StockLb = 1.5 // chicken already stocked

	sm := buildShoppingModel(packages, entities.Nutrients{}, DefaultModelConfig())
	presence := constraintsByName(sm.model)["Protein_presence"]

	// One stocked package in the category moves the RHS to -1
	if presence.RHS != -1 {
		t.Errorf("Protein_presence RHS = %v, want -1", presence.RHS)
	}
}

func TestBuildShoppingModel_CoverageDisabled(t *testing.T) {
	cfg := DefaultModelConfig()
	cfg.RequireCategoryCoverage = false

	sm := buildShoppingModel(testCatalog(), entities.Nutrients{}, cfg)

	if _, ok := constraintsByName(sm.model)["Protein_coverage"]; ok {
		t.Error("coverage constraint must be absent when disabled")
	}
	if _, ok := constraintsByName(sm.model)["Protein_presence"]; !ok {
		t.Error("presence constraint must remain")
	}
}

func TestBuildShoppingModel_Deterministic(t *testing.T) {
	weekly := entities.Nutrients{Calories: 14000, Protein: 350, Carbohydrate: 900, Fat: 400}

	first := buildShoppingModel(testCatalog(), weekly, DefaultModelConfig())
	second := buildShoppingModel(testCatalog(), weekly, DefaultModelConfig())

	if !reflect.DeepEqual(first.model, second.model) {
		t.Error("identical inputs must produce structurally identical models")
	}
}

func TestBuildShoppingModel_EmptyBasketIgnored(t *testing.T) {
	packages := []entities.FoodPackage{
		testPackage("Salt", "Salt 1lb", "Kroger", 0.99, 1, entities.Nutrients{}, "", 2, 0),
	}

	sm := buildShoppingModel(packages, entities.Nutrients{}, DefaultModelConfig())

	if len(sm.categoryVars) != 0 {
		t.Errorf("expected no category indicators for empty basket labels, got %v", sm.categoryVars)
	}
}

func constraintsByName(m *milp.Model) map[string]milp.Constraint {
	out := make(map[string]milp.Constraint, len(m.Constraints))
	for _, c := range m.Constraints {
		out[c.Name] = c
	}
	return out
}
