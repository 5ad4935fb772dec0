package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/shared"
)

// OrderRepository defines persistence operations for orders
type OrderRepository interface {
	shared.Repository[Order]
	FindByCode(ctx context.Context, code string) (*Order, error)
	// GenerateCode returns a fresh unique order code
	GenerateCode(ctx context.Context) (string, error)
}

// PaymentRepository defines persistence operations for payments
type PaymentRepository interface {
	shared.Repository[Payment]
	FindByOrderID(ctx context.Context, orderID uuid.UUID) ([]Payment, error)
}

// PurchaseRepository defines persistence operations for purchases
type PurchaseRepository interface {
	shared.Repository[Purchase]
	FindByCode(ctx context.Context, code string) (*Purchase, error)
	// DeleteItems removes all lines of a purchase (full-reset updates)
	DeleteItems(ctx context.Context, purchaseID uuid.UUID) error
}
