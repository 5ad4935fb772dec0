package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// Labor represents a manufacturing task priced per day of work
type Labor struct {
	shared.BaseEntity
	Name     string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	DailyPay decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Labor) TableName() string {
	return "labors"
}

// NewLabor creates a new labor entry
func NewLabor(name string, dailyPay decimal.Decimal) (*Labor, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Labor name cannot be empty")
	}
	if dailyPay.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DAILY_PAY", "Daily pay cannot be negative")
	}

	return &Labor{
		BaseEntity: shared.NewBaseEntity(),
		Name:       name,
		DailyPay:   dailyPay,
	}, nil
}

// Update updates the labor's attributes
func (l *Labor) Update(name string, dailyPay decimal.Decimal) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Labor name cannot be empty")
	}
	if dailyPay.IsNegative() {
		return shared.NewDomainError("INVALID_DAILY_PAY", "Daily pay cannot be negative")
	}

	l.Name = name
	l.DailyPay = dailyPay
	l.UpdatedAt = time.Now()

	return nil
}
