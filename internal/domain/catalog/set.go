package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// SetFurniture joins a set to one of its component furnitures.
// Quantity is how many of the furniture one set requires.
type SetFurniture struct {
	SetID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FurnitureID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Furniture   *Furniture      `gorm:"foreignKey:FurnitureID"`
}

// TableName returns the table name for GORM
func (SetFurniture) TableName() string {
	return "sets_furnitures"
}

// Set is a bundle of furnitures sold as one product. It carries its own
// markup percentages which supersede the components' when pricing the
// bundle.
type Set struct {
	shared.BaseAggregateRoot
	ProductID   uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	ProfitPer   decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	PaintPer    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	LaborFabPer decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Furnitures  []SetFurniture  `gorm:"foreignKey:SetID"`
	Product     *Product        `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Set) TableName() string {
	return "sets"
}

// NewSet creates a new set for the given product identity
func NewSet(productID uuid.UUID) (*Set, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Set requires a product identity")
	}

	return &Set{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		ProfitPer:         decimal.Zero,
		PaintPer:          decimal.Zero,
		LaborFabPer:       decimal.Zero,
	}, nil
}

// SetMarkups sets the pricing percentages
func (s *Set) SetMarkups(profitPer, paintPer, laborFabPer decimal.Decimal) error {
	if err := validatePercent("profit_per", profitPer); err != nil {
		return err
	}
	if err := validatePercent("paint_per", paintPer); err != nil {
		return err
	}
	if err := validatePercent("labor_fab_per", laborFabPer); err != nil {
		return err
	}

	s.ProfitPer = profitPer
	s.PaintPer = paintPer
	s.LaborFabPer = laborFabPer
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// AddFurniture appends a component furniture to the bundle
func (s *Set) AddFurniture(furnitureID uuid.UUID, quantity decimal.Decimal) error {
	if furnitureID == uuid.Nil {
		return shared.NewDomainError("INVALID_FURNITURE", "Furniture ID is required")
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Furniture quantity must be positive")
	}
	for _, line := range s.Furnitures {
		if line.FurnitureID == furnitureID {
			return shared.NewDomainError("DUPLICATE_FURNITURE", "Furniture already present in the set")
		}
	}

	s.Furnitures = append(s.Furnitures, SetFurniture{
		SetID:       s.ID,
		FurnitureID: furnitureID,
		Quantity:    quantity,
	})
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// ReplaceComponents replaces the full component list in one step
func (s *Set) ReplaceComponents(furnitures []SetFurniture) error {
	for _, line := range furnitures {
		if !line.Quantity.IsPositive() {
			return shared.NewDomainError("INVALID_QUANTITY", "Furniture quantity must be positive")
		}
	}

	for i := range furnitures {
		furnitures[i].SetID = s.ID
	}

	s.Furnitures = furnitures
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
