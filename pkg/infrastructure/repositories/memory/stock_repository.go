package memory

import (
	"fmt"

	"github.com/tkoide/grocer/pkg/domain/entities"
	"github.com/tkoide/grocer/pkg/domain/repositories"
)

// StockRepository provides an in-memory pantry stock snapshot
type StockRepository struct {
	entries []entities.StockEntry
}

// NewStockRepository creates a new in-memory stock repository
func NewStockRepository() *StockRepository {
	return &StockRepository{}
}

// Verify interface compliance
var _ repositories.StockRepository = (*StockRepository)(nil)

// LoadStockEntries validates and stores the stock table
func (r *StockRepository) LoadStockEntries(entries []entities.StockEntry) error {
	for i, entry := range entries {
		if entry.PackageDescription == "" {
			return fmt.Errorf("stock row %d: empty package description", i+1)
		}
		if entry.QuantityLb < 0 {
			return fmt.Errorf("stock row %d: negative quantity %v lb for %q",
				i+1, entry.QuantityLb, entry.PackageDescription)
		}
	}
	r.entries = entries
	return nil
}

// GetStockEntries returns the stock snapshot
func (r *StockRepository) GetStockEntries() ([]entities.StockEntry, error) {
	return r.entries, nil
}
