package repositories

import "github.com/tkoide/grocer/pkg/domain/entities"

// RequirementRepository provides access to the nutrient requirement
// reference table
type RequirementRepository interface {
	GetRequirements() ([]entities.NutrientRequirement, error)
	LoadRequirements(rows []entities.NutrientRequirement) error
}
