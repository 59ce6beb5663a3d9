package repositories

import "github.com/tkoide/grocer/pkg/domain/entities"

// StockRepository provides access to the pantry stock snapshot
type StockRepository interface {
	GetStockEntries() ([]entities.StockEntry, error)
	LoadStockEntries(entries []entities.StockEntry) error
}
