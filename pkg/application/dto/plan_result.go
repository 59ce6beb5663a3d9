package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/milp"
)

// PlanRequest is one optimization request: the roster the plan must feed.
// Catalog, stock and requirement tables come from the repositories the
// planning service was constructed with.
type PlanRequest struct {
	Members []entities.HouseholdMember
}

// DataQualityReport lists recovered input problems: cost rows dropped for
// lack of a nutrition match and household members no requirement row covers
type DataQualityReport struct {
	DroppedCostRows  []entities.CostRow
	UnmatchedMembers []entities.HouseholdMember
}

// PlanResult contains the complete output of one optimization run. Plan is
// nil unless Status is Optimal; any other status is surfaced verbatim with
// no partial plan.
type PlanResult struct {
	Status      milp.Status
	Plan        *entities.PurchasePlan
	Objective   decimal.Decimal
	WeeklyFloor entities.Nutrients
	Report      DataQualityReport
	SolveTime   time.Duration
}
