package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muebleria/backend/internal/domain/inventory"
)

// GormStockViewRepository reads the derived stock view by aggregating the
// movement ledger at query time. Nothing here is persisted or cached.
type GormStockViewRepository struct {
	db *gorm.DB
}

// NewGormStockViewRepository creates a new GormStockViewRepository
func NewGormStockViewRepository(db *gorm.DB) *GormStockViewRepository {
	return &GormStockViewRepository{db: db}
}

const stockViewQuery = `
	SELECT pm.product_id,
	       p.code AS product_code,
	       pm.color_id,
	       COALESCE(c.name, '') AS color_name,
	       COALESCE(c.hex, '') AS color_hex,
	       SUM(pm.quantity) AS quantity
	FROM product_movements pm
	JOIN products p ON p.id = pm.product_id
	LEFT JOIN colors c ON c.id = pm.color_id`

const stockViewGroup = `
	GROUP BY pm.product_id, p.code, pm.color_id, c.name, c.hex
	ORDER BY p.code ASC, color_name ASC`

// All returns the full stock view, one row per (product, color) pair
func (r *GormStockViewRepository) All(ctx context.Context) ([]inventory.ProductStock, error) {
	var rows []inventory.ProductStock
	if err := r.db.WithContext(ctx).
		Raw(stockViewQuery + stockViewGroup).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ForProduct returns the per-color stock rows of one product
func (r *GormStockViewRepository) ForProduct(ctx context.Context, productID uuid.UUID) ([]inventory.ProductStock, error) {
	var rows []inventory.ProductStock
	if err := r.db.WithContext(ctx).
		Raw(stockViewQuery+" WHERE pm.product_id = ?"+stockViewGroup, productID).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ForProducts returns stock rows for several products keyed by product ID
func (r *GormStockViewRepository) ForProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]inventory.ProductStock, error) {
	result := make(map[uuid.UUID][]inventory.ProductStock, len(productIDs))
	if len(productIDs) == 0 {
		return result, nil
	}

	var rows []inventory.ProductStock
	if err := r.db.WithContext(ctx).
		Raw(stockViewQuery+" WHERE pm.product_id IN ?"+stockViewGroup, productIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ProductID] = append(result[row.ProductID], row)
	}
	return result, nil
}

// Ensure GormStockViewRepository implements StockViewRepository
var _ inventory.StockViewRepository = (*GormStockViewRepository)(nil)
