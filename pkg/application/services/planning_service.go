package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tkoide/grocer/pkg/application/dto"
	"github.com/tkoide/grocer/pkg/domain/repositories"
	"github.com/tkoide/grocer/pkg/domain/services"
	"github.com/tkoide/grocer/pkg/milp"
)

// PlanningService runs one optimization request end to end: resolve the
// household's weekly floor, join the catalog, build the MILP, solve it, and
// extract the purchase plan. The service holds no per-request state; every
// call takes fresh snapshots from its repositories.
type PlanningService struct {
	catalogRepo     repositories.CatalogRepository
	stockRepo       repositories.StockRepository
	requirementRepo repositories.RequirementRepository
	solver          milp.Solver
	config          ModelConfig
	log             *slog.Logger
}

// NewPlanningService creates a planning service with the default model
// configuration
func NewPlanningService(
	catalogRepo repositories.CatalogRepository,
	stockRepo repositories.StockRepository,
	requirementRepo repositories.RequirementRepository,
	solver milp.Solver,
	log *slog.Logger,
) *PlanningService {
	return NewPlanningServiceWithConfig(
		catalogRepo, stockRepo, requirementRepo, solver, log, DefaultModelConfig(),
	)
}

// NewPlanningServiceWithConfig creates a planning service with a custom
// model configuration
func NewPlanningServiceWithConfig(
	catalogRepo repositories.CatalogRepository,
	stockRepo repositories.StockRepository,
	requirementRepo repositories.RequirementRepository,
	solver milp.Solver,
	log *slog.Logger,
	config ModelConfig,
) *PlanningService {
	if log == nil {
		log = slog.Default()
	}
	return &PlanningService{
		catalogRepo:     catalogRepo,
		stockRepo:       stockRepo,
		requirementRepo: requirementRepo,
		solver:          solver,
		config:          config,
		log:             log,
	}
}

// BuildWeeklyPlan computes a cost-minimal weekly purchase plan for the
// request's household. A non-Optimal solver status is returned verbatim in
// the result with an empty plan; configuration problems and internal
// inconsistencies are returned as errors with no result.
func (s *PlanningService) BuildWeeklyPlan(
	ctx context.Context,
	request dto.PlanRequest,
) (*dto.PlanResult, error) {
	if len(request.Members) == 0 {
		return nil, &ConfigError{Reason: "household roster is empty"}
	}
	for _, member := range request.Members {
		if err := member.Validate(); err != nil {
			return nil, &ConfigError{Reason: err.Error()}
		}
	}

	requirementRows, err := s.requirementRepo.GetRequirements()
	if err != nil {
		return nil, fmt.Errorf("failed to load requirement table: %w", err)
	}
	if len(requirementRows) == 0 {
		return nil, &ConfigError{Reason: "requirement table is missing or empty"}
	}

	resolver := services.NewRequirementResolver(requirementRows)
	weeklyFloor, unmatched := resolver.ResolveWeeklyFloor(request.Members)
	for _, member := range unmatched {
		s.log.Warn("no requirement row matches household member",
			"age", member.Age, "gender", member.Gender.String())
	}

	costRows, err := s.catalogRepo.GetCostRows()
	if err != nil {
		return nil, fmt.Errorf("failed to load cost table: %w", err)
	}
	nutritionRows, err := s.catalogRepo.GetNutritionRows()
	if err != nil {
		return nil, fmt.Errorf("failed to load nutrition table: %w", err)
	}
	if len(costRows) == 0 || len(nutritionRows) == 0 {
		return nil, &ConfigError{Reason: "catalog tables are missing or empty"}
	}
	stockEntries, err := s.stockRepo.GetStockEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load stock table: %w", err)
	}

	joined, err := services.JoinCatalog(costRows, nutritionRows, stockEntries)
	if err != nil {
		return nil, &ConfigError{Reason: err.Error()}
	}
	for _, dropped := range joined.DroppedCostRows {
		s.log.Warn("cost row dropped, no nutrition match",
			"food", dropped.Food, "package", dropped.PackageDescription)
	}

	result := &dto.PlanResult{
		Objective:   decimal.Zero,
		WeeklyFloor: weeklyFloor,
		Report: dto.DataQualityReport{
			DroppedCostRows:  joined.DroppedCostRows,
			UnmatchedMembers: unmatched,
		},
	}

	sm := buildShoppingModel(joined.Packages, weeklyFloor, s.config)

	start := time.Now()
	solution, err := s.solver.Solve(ctx, sm.model)
	result.SolveTime = time.Since(start)
	if err != nil {
		return nil, fmt.Errorf("solver failed: %w", err)
	}

	result.Status = solution.Status
	s.log.Info("solve finished",
		"status", solution.Status.String(),
		"variables", len(sm.model.Variables),
		"constraints", len(sm.model.Constraints),
		"duration", result.SolveTime)

	if solution.Status != milp.StatusOptimal {
		return result, nil
	}

	plan, err := extractPlan(sm, solution, s.config.Tolerance)
	if err != nil {
		return nil, err
	}
	result.Plan = plan
	result.Objective = plan.TotalCost

	return result, nil
}
