package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/inventory"
)

// LowStockAlert pairs a material with its current total stock when that
// stock has fallen to or below the advisory minimum.
type LowStockAlert struct {
	Material catalog.Material         `json:"material"`
	Stocks   []inventory.ProductStock `json:"stocks"`
}

// StockService reads the derived stock view. Every answer is computed
// fresh from the movement ledger; nothing here is cached or stored.
type StockService struct {
	stocks    inventory.StockViewRepository
	materials catalog.MaterialRepository
}

// NewStockService creates a new stock view service
func NewStockService(stocks inventory.StockViewRepository, materials catalog.MaterialRepository) *StockService {
	return &StockService{stocks: stocks, materials: materials}
}

// Overview returns the full stock view, one row per (product, color) pair
func (s *StockService) Overview(ctx context.Context) ([]inventory.ProductStock, error) {
	return s.stocks.All(ctx)
}

// ForProduct returns the per-color stock rows of one product
func (s *StockService) ForProduct(ctx context.Context, productID uuid.UUID) ([]inventory.ProductStock, error) {
	return s.stocks.ForProduct(ctx, productID)
}

// BelowMinimum lists materials whose summed stock sits at or under their
// advisory minimum, together with their current stock rows.
func (s *StockService) BelowMinimum(ctx context.Context) ([]LowStockAlert, error) {
	materials, err := s.materials.FindBelowMinStock(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]LowStockAlert, 0, len(materials))
	for _, material := range materials {
		stocks, err := s.stocks.ForProduct(ctx, material.ProductID)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, LowStockAlert{Material: material, Stocks: stocks})
	}
	return alerts, nil
}
