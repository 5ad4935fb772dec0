package inventory

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/shared"
)

// ProductMovementRepository persists the append-only movement ledger.
// Entries are only ever created or removed whole; there is no update.
type ProductMovementRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ProductMovement, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]ProductMovement, error)
	FindBySource(ctx context.Context, source MovementSource) ([]ProductMovement, error)
	Create(ctx context.Context, movement *ProductMovement) error
	CreateBatch(ctx context.Context, movements []*ProductMovement) error
	DeleteBySource(ctx context.Context, source MovementSource) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}

// StockViewRepository reads the derived stock view. Implementations must
// aggregate the ledger at query time; the view is never cached.
type StockViewRepository interface {
	// All returns the full stock view, one row per (product, color) pair
	All(ctx context.Context) ([]ProductStock, error)
	// ForProduct returns the per-color stock rows of one product
	ForProduct(ctx context.Context, productID uuid.UUID) ([]ProductStock, error)
	// ForProducts returns stock rows for several products keyed by product ID
	ForProducts(ctx context.Context, productIDs []uuid.UUID) (map[uuid.UUID][]ProductStock, error)
}
