package repositories

import "github.com/tkoide/grocer/pkg/domain/entities"

// CatalogRepository provides access to the cost and nutrition tables
type CatalogRepository interface {
	GetCostRows() ([]entities.CostRow, error)
	GetNutritionRows() ([]entities.NutritionRow, error)
	LoadCostRows(rows []entities.CostRow) error
	LoadNutritionRows(rows []entities.NutritionRow) error
}
