package persistence

import (
	"context"

	"gorm.io/gorm"

	tradeapp "github.com/muebleria/backend/internal/application/trade"
	"github.com/muebleria/backend/internal/domain/finance"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/trade"
)

// GormTradeTransactionScope implements the trade TransactionScope by
// wrapping a gorm transaction and handing the callback repositories
// bound to the transaction connection.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the function within a database transaction
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos tradeapp.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTradeRepositories{tx: tx})
	})
}

// gormTradeRepositories provides repositories bound to one transaction
type gormTradeRepositories struct {
	tx *gorm.DB
}

func (r *gormTradeRepositories) OrderRepo() trade.OrderRepository {
	return NewGormOrderRepository(r.tx)
}

func (r *gormTradeRepositories) PaymentRepo() trade.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

func (r *gormTradeRepositories) PurchaseRepo() trade.PurchaseRepository {
	return NewGormPurchaseRepository(r.tx)
}

func (r *gormTradeRepositories) MovementRepo() inventory.ProductMovementRepository {
	return NewGormProductMovementRepository(r.tx)
}

func (r *gormTradeRepositories) InvoiceRepo() finance.InvoiceRepository {
	return NewGormInvoiceRepository(r.tx)
}

// Interface conformance assertions
var (
	_ tradeapp.TransactionScope          = (*GormTradeTransactionScope)(nil)
	_ tradeapp.TransactionalRepositories = (*gormTradeRepositories)(nil)
)
