package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// PurchaseItem is one product line of a supplier purchase
type PurchaseItem struct {
	shared.BaseEntity
	PurchaseID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Cost       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	ColorID    *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (PurchaseItem) TableName() string {
	return "purchase_items"
}

// NewPurchaseItem creates a validated purchase line
func NewPurchaseItem(productID uuid.UUID, quantity, cost, discount decimal.Decimal, colorID *uuid.UUID) (*PurchaseItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Purchase item requires a product")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Purchase item quantity must be positive")
	}
	if cost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Purchase item cost cannot be negative")
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Purchase item discount must be between 0 and 100")
	}

	return &PurchaseItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		Cost:       cost,
		Discount:   discount,
		ColorID:    colorID,
	}, nil
}

// Purchase records goods received from a supplier. Each line produces a
// positive ledger movement owned by the purchase.
type Purchase struct {
	shared.BaseAggregateRoot
	Code       string         `gorm:"type:varchar(50);not null;uniqueIndex"`
	SupplierID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Date       time.Time      `gorm:"not null"`
	Notes      string         `gorm:"type:text"`
	Items      []PurchaseItem `gorm:"foreignKey:PurchaseID"`
}

// TableName returns the table name for GORM
func (Purchase) TableName() string {
	return "purchases"
}

// NewPurchase creates a new purchase record
func NewPurchase(code string, supplierID uuid.UUID, date time.Time, notes string) (*Purchase, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Purchase code cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Purchase requires a supplier")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Purchase{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		SupplierID:        supplierID,
		Date:              date,
		Notes:             notes,
	}, nil
}

// AddItem appends a validated line to the purchase
func (p *Purchase) AddItem(productID uuid.UUID, quantity, cost, discount decimal.Decimal, colorID *uuid.UUID) (*PurchaseItem, error) {
	item, err := NewPurchaseItem(productID, quantity, cost, discount, colorID)
	if err != nil {
		return nil, err
	}
	item.PurchaseID = p.ID

	p.Items = append(p.Items, *item)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return item, nil
}

// ReplaceItems swaps the full line list. Used by purchase updates, which
// reset and re-insert rather than diff.
func (p *Purchase) ReplaceItems(items []PurchaseItem) {
	for i := range items {
		items[i].PurchaseID = p.ID
	}
	p.Items = items
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}
