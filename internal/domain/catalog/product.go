package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// ProductKind identifies which concrete catalog entity backs a product.
// Exactly one of Material, Furniture or Set exists per product.
type ProductKind string

const (
	ProductKindMaterial  ProductKind = "material"
	ProductKindFurniture ProductKind = "furniture"
	ProductKindSet       ProductKind = "set"
)

// IsValid checks if the product kind is valid
func (k ProductKind) IsValid() bool {
	switch k {
	case ProductKindMaterial, ProductKindFurniture, ProductKindSet:
		return true
	}
	return false
}

// String returns the string representation
func (k ProductKind) String() string {
	return string(k)
}

// Product is the sellable identity shared by materials, furnitures and sets.
// The Kind tag replaces the three optional one-to-one relations the schema
// would otherwise need, so "which kind row exists" is never ambiguous.
type Product struct {
	shared.BaseAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Kind        ProductKind     `gorm:"type:varchar(20);not null;index"`
	Sell        bool            `gorm:"not null;default:false"`
	Discount    decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"` // percent 0-100
	Colors      []Color         `gorm:"many2many:products_colors"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product of the given kind
func NewProduct(code, name string, kind ProductKind) (*Product, error) {
	if err := validateProductCode(code); err != nil {
		return nil, err
	}
	if err := validateProductName(name); err != nil {
		return nil, err
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Product kind must be material, furniture or set")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Kind:              kind,
		Sell:              false,
		Discount:          decimal.Zero,
	}

	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}

// Update updates the product's basic information
func (p *Product) Update(name, description string) error {
	if err := validateProductName(name); err != nil {
		return err
	}

	p.Name = name
	p.Description = description
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// UpdateCode updates the product's code.
// Other systems may reference the code, so use with caution.
func (p *Product) UpdateCode(code string) error {
	if err := validateProductCode(code); err != nil {
		return err
	}

	p.Code = strings.ToUpper(code)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	p.AddDomainEvent(NewProductUpdatedEvent(p))

	return nil
}

// SetSellable toggles whether the product appears in the sales catalog
func (p *Product) SetSellable(sell bool) {
	p.Sell = sell
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// SetDiscount sets the product-level discount percentage
func (p *Product) SetDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount must be between 0 and 100")
	}

	p.Discount = discount
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// ReplaceColors replaces the set of colors the product can be ordered in
func (p *Product) ReplaceColors(colors []Color) {
	p.Colors = colors
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// HasColor reports whether the product may be ordered in the given color
func (p *Product) HasColor(colorID uuid.UUID) bool {
	for _, c := range p.Colors {
		if c.ID == colorID {
			return true
		}
	}
	return false
}

func validateProductCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !isCodeChar(r) {
			return shared.NewDomainError("INVALID_CODE", "Product code may only contain letters, digits, dashes and underscores")
		}
	}
	return nil
}

func isCodeChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_'
}

func validateProductName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
