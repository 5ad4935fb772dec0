package finance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// Invoice is the fiscal document issued when an order completes.
// Numbers are monotonic and assigned under a row lock so concurrent
// completions can never produce duplicates. Totals are expressed in the
// local currency, converted with the order's snapshotted exchange rate.
type Invoice struct {
	shared.BaseEntity
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Number        int64           `gorm:"not null;uniqueIndex"`
	ControlNumber string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Tax           decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	IssuedAt      time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// FormatControlNumber renders the fiscal control number for an invoice
// number: the "00-" series prefix plus the number zero-padded to eight
// digits.
func FormatControlNumber(number int64) string {
	return fmt.Sprintf("00-%08d", number)
}

// NewInvoice creates an invoice with an already-assigned number.
// The caller is responsible for allocating the number under a lock.
func NewInvoice(orderID uuid.UUID, number int64, subtotal, tax decimal.Decimal) (*Invoice, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Invoice requires an order")
	}
	if number <= 0 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Invoice number must be positive")
	}
	if subtotal.IsNegative() || tax.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Invoice amounts cannot be negative")
	}

	return &Invoice{
		BaseEntity:    shared.NewBaseEntity(),
		OrderID:       orderID,
		Number:        number,
		ControlNumber: FormatControlNumber(number),
		Subtotal:      subtotal.Round(2),
		Tax:           tax.Round(2),
		Total:         subtotal.Add(tax).Round(2),
		IssuedAt:      time.Now(),
	}, nil
}
