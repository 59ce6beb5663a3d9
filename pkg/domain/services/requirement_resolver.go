package services

import (
	"github.com/tkoide/grocer/pkg/domain/entities"
)

// RequirementResolver maps a household roster to aggregate weekly nutrient
// floors using the age/gender requirement table
type RequirementResolver struct {
	rows []entities.NutrientRequirement
}

// NewRequirementResolver creates a resolver over a requirement table
// snapshot. Rows are matched in table order; the first matching row wins.
func NewRequirementResolver(rows []entities.NutrientRequirement) *RequirementResolver {
	return &RequirementResolver{rows: rows}
}

// ResolveWeeklyFloor returns the aggregate weekly nutrient floor for the
// roster (daily minimums summed across members, times seven) along with the
// members that matched no requirement row. Unmatched members contribute
// nothing; that is a data-quality concern for the caller to report, not a
// failure.
func (r *RequirementResolver) ResolveWeeklyFloor(
	members []entities.HouseholdMember,
) (entities.Nutrients, []entities.HouseholdMember) {
	var daily entities.Nutrients
	var unmatched []entities.HouseholdMember

	for _, member := range members {
		row, ok := r.findRow(member)
		if !ok {
			unmatched = append(unmatched, member)
			continue
		}
		daily = daily.Add(row.DailyMinimum)
	}

	return daily.Scale(entities.DaysPerWeek), unmatched
}

// findRow returns the first requirement row matching the member
func (r *RequirementResolver) findRow(m entities.HouseholdMember) (entities.NutrientRequirement, bool) {
	for _, row := range r.rows {
		if row.Matches(m) {
			return row, true
		}
	}
	return entities.NutrientRequirement{}, false
}
