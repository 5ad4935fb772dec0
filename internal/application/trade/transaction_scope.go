package trade

import (
	"context"

	"github.com/muebleria/backend/internal/domain/finance"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories
// touched by order, purchase and payment flows. A function executed
// within a scope commits or rolls back as one unit: an order row is
// never visible without its ledger movements.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to all repositories within a
// transaction. All repositories returned share the same underlying
// database transaction.
type TransactionalRepositories interface {
	// OrderRepo returns the order repository scoped to the current transaction
	OrderRepo() trade.OrderRepository
	// PaymentRepo returns the payment repository scoped to the current transaction
	PaymentRepo() trade.PaymentRepository
	// PurchaseRepo returns the purchase repository scoped to the current transaction
	PurchaseRepo() trade.PurchaseRepository
	// MovementRepo returns the movement ledger repository scoped to the current transaction
	MovementRepo() inventory.ProductMovementRepository
	// InvoiceRepo returns the invoice repository scoped to the current transaction
	InvoiceRepo() finance.InvoiceRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. Useful for tests.
type NoOpTransactionScope struct {
	orderRepo    trade.OrderRepository
	paymentRepo  trade.PaymentRepository
	purchaseRepo trade.PurchaseRepository
	movementRepo inventory.ProductMovementRepository
	invoiceRepo  finance.InvoiceRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories
func NewNoOpTransactionScope(
	orderRepo trade.OrderRepository,
	paymentRepo trade.PaymentRepository,
	purchaseRepo trade.PurchaseRepository,
	movementRepo inventory.ProductMovementRepository,
	invoiceRepo finance.InvoiceRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		orderRepo:    orderRepo,
		paymentRepo:  paymentRepo,
		purchaseRepo: purchaseRepo,
		movementRepo: movementRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// OrderRepo returns the order repository
func (s *NoOpTransactionScope) OrderRepo() trade.OrderRepository {
	return s.orderRepo
}

// PaymentRepo returns the payment repository
func (s *NoOpTransactionScope) PaymentRepo() trade.PaymentRepository {
	return s.paymentRepo
}

// PurchaseRepo returns the purchase repository
func (s *NoOpTransactionScope) PurchaseRepo() trade.PurchaseRepository {
	return s.purchaseRepo
}

// MovementRepo returns the movement ledger repository
func (s *NoOpTransactionScope) MovementRepo() inventory.ProductMovementRepository {
	return s.movementRepo
}

// InvoiceRepo returns the invoice repository
func (s *NoOpTransactionScope) InvoiceRepo() finance.InvoiceRepository {
	return s.invoiceRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
