package finance

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
)

// ExchangeRateRepository defines persistence operations for rates
type ExchangeRateRepository interface {
	shared.Repository[ExchangeRate]
	FindByCurrency(ctx context.Context, currency valueobject.Currency) (*ExchangeRate, error)
	FindBase(ctx context.Context) (*ExchangeRate, error)
}

// InvoiceRepository defines persistence operations for invoices.
// NextNumber must take the current maximum under a row lock so two
// concurrent allocations can never observe the same value; call it only
// inside the transaction that saves the invoice.
type InvoiceRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	FindByOrderID(ctx context.Context, orderID uuid.UUID) (*Invoice, error)
	NextNumber(ctx context.Context) (int64, error)
	Create(ctx context.Context, invoice *Invoice) error
}
