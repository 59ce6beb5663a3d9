package memory

import (
	"fmt"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/domain/repositories"
)

// CatalogRepository provides in-memory cost and nutrition tables. Loaded
// rows are validated once and then treated as an immutable snapshot.
type CatalogRepository struct {
	costRows      []entities.CostRow
	nutritionRows []entities.NutritionRow
}

// NewCatalogRepository creates a new in-memory catalog repository
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// Verify interface compliance
var _ repositories.CatalogRepository = (*CatalogRepository)(nil)

// LoadCostRows validates and stores the cost table
func (r *CatalogRepository) LoadCostRows(rows []entities.CostRow) error {
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("cost row %d: %w", i+1, err)
		}
	}
	r.costRows = rows
	return nil
}

// LoadNutritionRows validates and stores the nutrition table
func (r *CatalogRepository) LoadNutritionRows(rows []entities.NutritionRow) error {
	for i, row := range rows {
		if err := row.Validate(); err != nil {
			return fmt.Errorf("nutrition row %d: %w", i+1, err)
		}
	}
	r.nutritionRows = rows
	return nil
}

// GetCostRows returns the cost table snapshot
func (r *CatalogRepository) GetCostRows() ([]entities.CostRow, error) {
	return r.costRows, nil
}

// GetNutritionRows returns the nutrition table snapshot
func (r *CatalogRepository) GetNutritionRows() ([]entities.NutritionRow, error) {
	return r.nutritionRows, nil
}
