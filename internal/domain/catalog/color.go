package catalog

import (
	"strings"
	"time"

	"github.com/muebleria/backend/internal/domain/shared"
)

// Color represents a finish a product can be manufactured in.
// IsNatural marks the unfinished variant, which is priced at the
// natural rate instead of the painted rate.
type Color struct {
	shared.BaseEntity
	Name      string `gorm:"type:varchar(100);not null;uniqueIndex"`
	Hex       string `gorm:"type:varchar(7);not null;uniqueIndex"`
	IsNatural bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Color) TableName() string {
	return "colors"
}

// NewColor creates a new color
func NewColor(name, hex string, isNatural bool) (*Color, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Color name cannot be empty")
	}
	if err := validateHex(hex); err != nil {
		return nil, err
	}

	return &Color{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		Hex:        strings.ToLower(hex),
		IsNatural:  isNatural,
	}, nil
}

// Update updates the color's attributes
func (c *Color) Update(name, hex string, isNatural bool) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Color name cannot be empty")
	}
	if err := validateHex(hex); err != nil {
		return err
	}

	c.Name = name
	c.Hex = strings.ToLower(hex)
	c.IsNatural = isNatural
	c.UpdatedAt = time.Now()

	return nil
}

func validateHex(hex string) error {
	if len(hex) != 7 || hex[0] != '#' {
		return shared.NewDomainError("INVALID_HEX", "Color hex must be in #rrggbb form")
	}
	for _, r := range hex[1:] {
		if !((r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')) {
			return shared.NewDomainError("INVALID_HEX", "Color hex must be in #rrggbb form")
		}
	}
	return nil
}
