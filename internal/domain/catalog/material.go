package catalog

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/muebleria/backend/internal/domain/shared"
)

// strips combining marks so accented and plain spellings compare equal
var tagTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func normalizeTag(name string) string {
	stripped, _, err := transform.String(tagTransformer, name)
	if err != nil {
		stripped = name
	}
	return strings.ToLower(strings.TrimSpace(stripped))
}

// Material type tags that drive cost-bucket assignment during pricing.
// Tags are free-form operator input, so bucket matching ignores case and
// diacritics: "tapiceria" and "Tapicería" classify the same.
const (
	MaterialTypeSupply     = "Insumo"
	MaterialTypeUpholstery = "Tapicería"
)

// MaterialType is a classification tag for materials
type MaterialType struct {
	shared.BaseEntity
	Name string `gorm:"type:varchar(100);not null;uniqueIndex"`
}

// TableName returns the table name for GORM
func (MaterialType) TableName() string {
	return "material_types"
}

// NewMaterialType creates a new material type tag
func NewMaterialType(name string) (*MaterialType, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Material type name cannot be empty")
	}
	return &MaterialType{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
	}, nil
}

// Material is the leaf of the bill-of-materials graph: a directly priced
// purchasable unit. It carries the product identity it is sold under.
type Material struct {
	shared.BaseAggregateRoot
	ProductID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Unit      string          `gorm:"type:varchar(20);not null"`
	MinStock  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // advisory only
	MaxStock  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"` // advisory only
	Types     []MaterialType  `gorm:"many2many:materials_material_types"`
	Product   *Product        `gorm:"foreignKey:ProductID"`
}

// TableName returns the table name for GORM
func (Material) TableName() string {
	return "materials"
}

// NewMaterial creates a new material for the given product identity
func NewMaterial(productID uuid.UUID, price decimal.Decimal, unit string) (*Material, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Material requires a product identity")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Material price cannot be negative")
	}
	if unit == "" {
		return nil, shared.NewDomainError("INVALID_UNIT", "Material unit cannot be empty")
	}

	return &Material{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ProductID:         productID,
		Price:             price,
		Unit:              unit,
		MinStock:          decimal.Zero,
		MaxStock:          decimal.Zero,
	}, nil
}

// SetPrice updates the material's unit price
func (m *Material) SetPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Material price cannot be negative")
	}

	m.Price = price
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// SetStockBounds sets the advisory minimum and maximum stock levels
func (m *Material) SetStockBounds(minStock, maxStock decimal.Decimal) error {
	if minStock.IsNegative() || maxStock.IsNegative() {
		return shared.NewDomainError("INVALID_STOCK_BOUNDS", "Stock bounds cannot be negative")
	}
	if maxStock.IsPositive() && minStock.GreaterThan(maxStock) {
		return shared.NewDomainError("INVALID_STOCK_BOUNDS", "Minimum stock cannot exceed maximum stock")
	}

	m.MinStock = minStock
	m.MaxStock = maxStock
	m.UpdatedAt = time.Now()
	m.IncrementVersion()

	return nil
}

// ReplaceTypes replaces the material's classification tags
func (m *Material) ReplaceTypes(types []MaterialType) {
	m.Types = types
	m.UpdatedAt = time.Now()
	m.IncrementVersion()
}

// HasType reports whether the material carries the given type tag,
// compared case- and diacritic-insensitively
func (m *Material) HasType(name string) bool {
	want := normalizeTag(name)
	for _, t := range m.Types {
		if normalizeTag(t.Name) == want {
			return true
		}
	}
	return false
}

// IsSupply reports whether the material belongs to the supplies cost bucket
func (m *Material) IsSupply() bool {
	return m.HasType(MaterialTypeSupply)
}

// IsUpholstery reports whether the material belongs to the upholstery cost bucket
func (m *Material) IsUpholstery() bool {
	return m.HasType(MaterialTypeUpholstery)
}
