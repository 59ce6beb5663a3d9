package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tkoide/grocer/pkg/application/dto"
	"github.com/tkoide/grocer/pkg/application/services"
	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/infrastructure/repositories/csv"
	"github.com/tkoide/grocer/pkg/infrastructure/repositories/excel"
	"github.com/tkoide/grocer/pkg/infrastructure/repositories/memory"
	"github.com/tkoide/grocer/pkg/infrastructure/repositories/yaml"
	"github.com/tkoide/grocer/pkg/interfaces/cli/output"
	"github.com/tkoide/grocer/pkg/milp"
)

// Config holds configuration for the plan command
type Config struct {
	GroceryWorkbook string
	StockWorkbook   string
	ScenarioDir     string
	HouseholdFile   string
	OutputPath      string
	Format          string
	Verbose         bool

	RequireCategoryCoverage bool
	Tolerance               float64
}

// PlanCommand runs one weekly plan end to end: load the tables, run the
// planning service, render the result
type PlanCommand struct {
	config Config
	solver milp.Solver
	log    *slog.Logger
}

// NewPlanCommand creates a plan command
func NewPlanCommand(config Config, solver milp.Solver, log *slog.Logger) *PlanCommand {
	return &PlanCommand{config: config, solver: solver, log: log}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	members, err := yaml.LoadHousehold(c.config.HouseholdFile)
	if err != nil {
		return fmt.Errorf("error loading household: %w", err)
	}

	costRows, nutritionRows, requirements, stockEntries, err := c.loadTables()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("✅ Data loaded:\n")
		fmt.Printf("  Household members: %d\n", len(members))
		fmt.Printf("  Cost rows: %d\n", len(costRows))
		fmt.Printf("  Nutrition rows: %d\n", len(nutritionRows))
		fmt.Printf("  Requirement rows: %d\n", len(requirements))
		fmt.Printf("  Stock entries: %d\n", len(stockEntries))
		fmt.Println()
	}

	catalogRepo := memory.NewCatalogRepository()
	if err := catalogRepo.LoadCostRows(costRows); err != nil {
		return fmt.Errorf("failed to load cost rows into repository: %w", err)
	}
	if err := catalogRepo.LoadNutritionRows(nutritionRows); err != nil {
		return fmt.Errorf("failed to load nutrition rows into repository: %w", err)
	}

	requirementRepo := memory.NewRequirementRepository()
	if err := requirementRepo.LoadRequirements(requirements); err != nil {
		return fmt.Errorf("failed to load requirements into repository: %w", err)
	}

	stockRepo := memory.NewStockRepository()
	if err := stockRepo.LoadStockEntries(stockEntries); err != nil {
		return fmt.Errorf("failed to load stock into repository: %w", err)
	}

	planner := services.NewPlanningServiceWithConfig(
		catalogRepo,
		stockRepo,
		requirementRepo,
		c.solver,
		c.log,
		services.ModelConfig{
			RequireCategoryCoverage: c.config.RequireCategoryCoverage,
			Tolerance:               c.config.Tolerance,
		},
	)

	result, err := planner.BuildWeeklyPlan(ctx, dto.PlanRequest{Members: members})
	if err != nil {
		return fmt.Errorf("error building weekly plan: %w", err)
	}

	return output.Generate(result, output.Config{
		Format:    c.config.Format,
		Path:      c.config.OutputPath,
		Verbose:   c.config.Verbose,
		SolveTime: result.SolveTime,
	})
}

// validateInputs validates the command configuration
func (c *PlanCommand) validateInputs() error {
	if c.config.HouseholdFile == "" {
		return fmt.Errorf("must specify a household file")
	}
	if c.config.ScenarioDir == "" && c.config.GroceryWorkbook == "" {
		return fmt.Errorf("must specify either -scenario directory or -grocery workbook")
	}
	return nil
}

// loadTables loads the four input tables from either the CSV scenario
// directory or the xlsx workbooks
func (c *PlanCommand) loadTables() (
	[]entities.CostRow,
	[]entities.NutritionRow,
	[]entities.NutrientRequirement,
	[]entities.StockEntry,
	error,
) {
	if c.config.ScenarioDir != "" {
		return c.loadScenarioDir()
	}
	return c.loadWorkbooks()
}

// loadScenarioDir loads the tables from cost.csv, nutrition.csv,
// requirements.csv and stock.csv under the scenario directory. The stock
// file is optional; a missing one means an empty pantry.
func (c *PlanCommand) loadScenarioDir() (
	[]entities.CostRow,
	[]entities.NutritionRow,
	[]entities.NutrientRequirement,
	[]entities.StockEntry,
	error,
) {
	loader := csv.NewLoader()
	dir := c.config.ScenarioDir

	costRows, err := loader.LoadCostRows(filepath.Join(dir, "cost.csv"))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading cost table: %w", err)
	}
	nutritionRows, err := loader.LoadNutritionRows(filepath.Join(dir, "nutrition.csv"))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading nutrition table: %w", err)
	}
	requirements, err := loader.LoadRequirements(filepath.Join(dir, "requirements.csv"))
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading requirement table: %w", err)
	}

	var stockEntries []entities.StockEntry
	stockPath := filepath.Join(dir, "stock.csv")
	if _, statErr := os.Stat(stockPath); statErr == nil {
		stockEntries, err = loader.LoadStockEntries(stockPath)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("error loading stock table: %w", err)
		}
	}

	return costRows, nutritionRows, requirements, stockEntries, nil
}

// loadWorkbooks loads the tables from the grocery and stock xlsx workbooks.
// The stock workbook is optional.
func (c *PlanCommand) loadWorkbooks() (
	[]entities.CostRow,
	[]entities.NutritionRow,
	[]entities.NutrientRequirement,
	[]entities.StockEntry,
	error,
) {
	loader := excel.NewLoader()

	tables, err := loader.LoadGroceryWorkbook(c.config.GroceryWorkbook)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("error loading grocery workbook: %w", err)
	}

	var stockEntries []entities.StockEntry
	if c.config.StockWorkbook != "" {
		stockEntries, err = loader.LoadStockWorkbook(c.config.StockWorkbook)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("error loading stock workbook: %w", err)
		}
	}

	return tables.CostRows, tables.NutritionRows, tables.Requirements, stockEntries, nil
}
