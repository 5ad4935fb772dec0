package finance

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	tradeapp "github.com/muebleria/backend/internal/application/trade"
	"github.com/muebleria/backend/internal/domain/finance"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/trade"
)

// InvoiceService issues the fiscal document for completed orders. Number
// allocation and invoice creation happen inside one transaction so
// concurrent completions can never collide on a number.
type InvoiceService struct {
	scope   tradeapp.TransactionScope
	taxRate decimal.Decimal // percent applied to the local-currency subtotal
}

// NewInvoiceService creates a new invoice service with the given tax
// percentage.
func NewInvoiceService(scope tradeapp.TransactionScope, taxRate decimal.Decimal) *InvoiceService {
	return &InvoiceService{scope: scope, taxRate: taxRate}
}

// Attempts at allocating an invoice number before giving up. On an
// empty table the allocation lock has no row to hold, so two first
// invoices can race; the loser's unique violation is retried here.
const numberAttempts = 3

// GenerateForOrder issues the invoice for a completed order. Idempotent:
// if the order already has an invoice, that invoice is returned
// unchanged. Totals are converted to the local currency with the order's
// snapshotted exchange rate. Number collisions with a concurrent
// generation are retried with a fresh allocation.
func (s *InvoiceService) GenerateForOrder(ctx context.Context, orderID uuid.UUID) (*finance.Invoice, error) {
	var invoice *finance.Invoice
	var err error
	for attempt := 0; attempt < numberAttempts; attempt++ {
		invoice, err = s.generate(ctx, orderID)
		if err == nil || !errors.Is(err, shared.ErrAlreadyExists) {
			break
		}
	}
	return invoice, err
}

func (s *InvoiceService) generate(ctx context.Context, orderID uuid.UUID) (*finance.Invoice, error) {
	var invoice *finance.Invoice
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		existing, err := repos.InvoiceRepo().FindByOrderID(ctx, orderID)
		if err == nil {
			invoice = existing
			return nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		order, err := repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order.Status != trade.OrderStatusCompleted {
			return shared.NewDomainError("ORDER_NOT_COMPLETED", "Only a completed order can be invoiced")
		}

		number, err := repos.InvoiceRepo().NextNumber(ctx)
		if err != nil {
			return err
		}

		subtotal := order.Total().Mul(order.ExchangeRate)
		tax := subtotal.Mul(s.taxRate).Div(decimal.NewFromInt(100))

		invoice, err = finance.NewInvoice(order.ID, number, subtotal, tax)
		if err != nil {
			return err
		}
		return repos.InvoiceRepo().Create(ctx, invoice)
	})
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// Get returns one invoice
func (s *InvoiceService) Get(ctx context.Context, invoiceID uuid.UUID) (*finance.Invoice, error) {
	var invoice *finance.Invoice
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		var err error
		invoice, err = repos.InvoiceRepo().FindByID(ctx, invoiceID)
		return err
	})
	return invoice, err
}

// GetByOrder returns the invoice issued for an order
func (s *InvoiceService) GetByOrder(ctx context.Context, orderID uuid.UUID) (*finance.Invoice, error) {
	var invoice *finance.Invoice
	err := s.scope.Execute(ctx, func(repos tradeapp.TransactionalRepositories) error {
		var err error
		invoice, err = repos.InvoiceRepo().FindByOrderID(ctx, orderID)
		return err
	})
	return invoice, err
}
