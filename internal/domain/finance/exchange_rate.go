package finance

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
)

// ExchangeRate tracks how much one unit of the base currency is worth in
// another currency. Exactly one currency is the base; its rate is fixed
// at 1 and can never be changed.
type ExchangeRate struct {
	shared.BaseAggregateRoot
	Currency valueobject.Currency `gorm:"type:varchar(3);not null;uniqueIndex"`
	Rate     decimal.Decimal      `gorm:"type:decimal(18,6);not null"`
	IsBase   bool                 `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (ExchangeRate) TableName() string {
	return "exchange_rates"
}

// NewExchangeRate creates a rate entry for a non-base currency
func NewExchangeRate(currency valueobject.Currency, rate decimal.Decimal) (*ExchangeRate, error) {
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}
	if !rate.IsPositive() {
		return nil, shared.NewDomainError("INVALID_RATE", "Exchange rate must be positive")
	}

	return &ExchangeRate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Currency:          valueobject.Currency(strings.ToUpper(string(currency))),
		Rate:              rate,
		IsBase:            false,
	}, nil
}

// NewBaseCurrency creates the base currency entry with a fixed rate of 1
func NewBaseCurrency(currency valueobject.Currency) (*ExchangeRate, error) {
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	return &ExchangeRate{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Currency:          valueobject.Currency(strings.ToUpper(string(currency))),
		Rate:              decimal.NewFromInt(1),
		IsBase:            true,
	}, nil
}

// UpdateRate changes the tracked rate. The base currency is immutable.
func (e *ExchangeRate) UpdateRate(rate decimal.Decimal) error {
	if e.IsBase {
		return shared.ErrBaseRateImmutable
	}
	if !rate.IsPositive() {
		return shared.NewDomainError("INVALID_RATE", "Exchange rate must be positive")
	}

	e.Rate = rate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

func validateCurrency(currency valueobject.Currency) error {
	if len(currency) != 3 {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency must be a 3-letter ISO code")
	}
	return nil
}
