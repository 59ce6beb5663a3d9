package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/tkoide/grocer/pkg/infrastructure/config"
	"github.com/tkoide/grocer/pkg/infrastructure/logger"
	"github.com/tkoide/grocer/pkg/interfaces/cli/commands"
	"github.com/tkoide/grocer/pkg/milp/lpsolve"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to config file (optional)")
		grocery    = flag.String("grocery", "", "Path to grocery workbook (xlsx with Cost_List, Nutrition_List, Check_Nutrition sheets)")
		stock      = flag.String("stock", "", "Path to stock workbook (xlsx, optional)")
		scenario   = flag.String("scenario", "", "Path to scenario directory containing CSV files")
		household  = flag.String("household", "", "Path to household roster YAML file")
		outputPath = flag.String("output", "", "Output file path (required for xlsx format)")
		format     = flag.String("format", "", "Output format: text, json, xlsx")
		verbose    = flag.Bool("verbose", false, "Enable verbose output")
	)

	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags override the config file
	cmdConfig := commands.Config{
		GroceryWorkbook:         override(*grocery, cfg.Data.GroceryWorkbook),
		StockWorkbook:           override(*stock, cfg.Data.StockWorkbook),
		ScenarioDir:             override(*scenario, cfg.Data.ScenarioDir),
		HouseholdFile:           override(*household, cfg.Data.HouseholdFile),
		OutputPath:              override(*outputPath, cfg.Output.Path),
		Format:                  override(*format, cfg.Output.Format),
		Verbose:                 *verbose,
		RequireCategoryCoverage: cfg.Planner.RequireCategoryCoverage,
		Tolerance:               cfg.Planner.Tolerance,
	}

	log := logger.New(cfg.App.Env)

	cmd := commands.NewPlanCommand(cmdConfig, lpsolve.NewSolver(), log)
	if err := cmd.Execute(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func override(flagValue, configValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return configValue
}
