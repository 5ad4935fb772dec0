package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// SourceType identifies the kind of document that caused a movement
type SourceType string

const (
	// SourceTypeOrder is a customer order consuming stock
	SourceTypeOrder SourceType = "ORDER"
	// SourceTypePurchase is a supplier purchase restocking
	SourceTypePurchase SourceType = "PURCHASE"
	// SourceTypeAdjustment is a manual correction entry
	SourceTypeAdjustment SourceType = "ADJUSTMENT"
)

// String returns the string representation of SourceType
func (s SourceType) String() string {
	return string(s)
}

// IsValid returns true if the source type is valid
func (s SourceType) IsValid() bool {
	switch s {
	case SourceTypeOrder, SourceTypePurchase, SourceTypeAdjustment:
		return true
	}
	return false
}

// MovementSource is the tagged reference to the document that caused a
// movement. It replaces a loose type-string plus id pair: a source is
// always one of a closed set of document kinds.
type MovementSource struct {
	Type SourceType `gorm:"column:source_type;type:varchar(20);not null;index:idx_movement_source"`
	ID   uuid.UUID  `gorm:"column:source_id;type:uuid;not null;index:idx_movement_source"`
}

// OrderSource references the order that caused a movement
func OrderSource(orderID uuid.UUID) MovementSource {
	return MovementSource{Type: SourceTypeOrder, ID: orderID}
}

// PurchaseSource references the purchase that caused a movement
func PurchaseSource(purchaseID uuid.UUID) MovementSource {
	return MovementSource{Type: SourceTypePurchase, ID: purchaseID}
}

// AdjustmentSource references a manual correction
func AdjustmentSource(adjustmentID uuid.UUID) MovementSource {
	return MovementSource{Type: SourceTypeAdjustment, ID: adjustmentID}
}

// IsValid returns true if the source reference is complete
func (s MovementSource) IsValid() bool {
	return s.Type.IsValid() && s.ID != uuid.Nil
}

// ProductMovement is an immutable, append-only ledger entry recording a
// signed stock change for a (product, color) pair. Negative quantities
// consume stock, positive quantities restock. Stock is never stored:
// it is always the sum of movements for the pair.
type ProductMovement struct {
	shared.BaseEntity
	ProductID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_movement_product"`
	ColorID      *uuid.UUID      `gorm:"type:uuid;index:idx_movement_product"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	MovementDate time.Time       `gorm:"not null;index"`
	Source       MovementSource  `gorm:"embedded"`
	Note         string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (ProductMovement) TableName() string {
	return "product_movements"
}

// NewProductMovement creates a new immutable movement record.
// Quantity must be non-zero; its sign encodes the direction.
func NewProductMovement(
	productID uuid.UUID,
	colorID *uuid.UUID,
	quantity decimal.Decimal,
	source MovementSource,
) (*ProductMovement, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Movement requires a product")
	}
	if quantity.IsZero() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement quantity cannot be zero")
	}
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Movement requires a valid source reference")
	}

	return &ProductMovement{
		BaseEntity:   shared.NewBaseEntity(),
		ProductID:    productID,
		ColorID:      colorID,
		Quantity:     quantity,
		MovementDate: time.Now(),
		Source:       source,
	}, nil
}

// WithMovementDate overrides the movement date (backdated purchases)
func (m *ProductMovement) WithMovementDate(date time.Time) *ProductMovement {
	m.MovementDate = date
	return m
}

// WithNote attaches a free-form note
func (m *ProductMovement) WithNote(note string) *ProductMovement {
	m.Note = note
	return m
}

// IsInbound returns true if the movement adds stock
func (m *ProductMovement) IsInbound() bool {
	return m.Quantity.IsPositive()
}

// IsOutbound returns true if the movement consumes stock
func (m *ProductMovement) IsOutbound() bool {
	return m.Quantity.IsNegative()
}

// Reversal builds the counter-entry that undoes this movement's stock
// effect: same product and color, negated quantity, owned by the given
// source.
func (m *ProductMovement) Reversal(source MovementSource) (*ProductMovement, error) {
	reversal, err := NewProductMovement(m.ProductID, m.ColorID, m.Quantity.Neg(), source)
	if err != nil {
		return nil, err
	}
	return reversal.WithNote("reversal of " + m.ID.String()), nil
}
