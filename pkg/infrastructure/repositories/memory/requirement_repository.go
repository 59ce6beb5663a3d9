package memory

import (
	"fmt"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/domain/repositories"
)

// RequirementRepository provides the in-memory nutrient requirement table.
// Age ranges are validated at load time: overlapping ranges within one
// gender group would make member lookups ambiguous and are rejected.
type RequirementRepository struct {
	rows []entities.NutrientRequirement
}

// NewRequirementRepository creates a new in-memory requirement repository
func NewRequirementRepository() *RequirementRepository {
	return &RequirementRepository{}
}

// Verify interface compliance
var _ repositories.RequirementRepository = (*RequirementRepository)(nil)

// LoadRequirements validates and stores the requirement table
func (r *RequirementRepository) LoadRequirements(rows []entities.NutrientRequirement) error {
	for i, row := range rows {
		if row.MinAge > row.MaxAge {
			return fmt.Errorf("requirement row %d: min age %d exceeds max age %d",
				i+1, row.MinAge, row.MaxAge)
		}
		for j := 0; j < i; j++ {
			if row.Overlaps(rows[j]) {
				return fmt.Errorf(
					"requirement rows %d and %d overlap for group %q (ages %d-%d vs %d-%d)",
					j+1, i+1, row.Group, rows[j].MinAge, rows[j].MaxAge, row.MinAge, row.MaxAge,
				)
			}
		}
	}
	r.rows = rows
	return nil
}

// GetRequirements returns the requirement table snapshot
func (r *RequirementRepository) GetRequirements() ([]entities.NutrientRequirement, error) {
	return r.rows, nil
}
