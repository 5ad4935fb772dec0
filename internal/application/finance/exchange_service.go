package finance

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/muebleria/backend/internal/domain/finance"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
)

// RateCache caches exchange rates so order creation does not hit the
// database for every quote. A miss returns shared.ErrNotFound.
type RateCache interface {
	Get(ctx context.Context, currency valueobject.Currency) (decimal.Decimal, error)
	Set(ctx context.Context, currency valueobject.Currency, rate decimal.Decimal) error
	Invalidate(ctx context.Context, currency valueobject.Currency) error
}

// ExchangeService manages currency exchange rates. Reads go through the
// cache; writes update the store and invalidate the cached entry.
type ExchangeService struct {
	rates  finance.ExchangeRateRepository
	cache  RateCache
	logger *zap.Logger
}

// NewExchangeService creates a new exchange rate service. The cache is
// optional; without one every read hits the repository.
func NewExchangeService(rates finance.ExchangeRateRepository, cache RateCache, logger *zap.Logger) *ExchangeService {
	return &ExchangeService{rates: rates, cache: cache, logger: logger}
}

// Rate returns the current rate for a currency, cache-first
func (s *ExchangeService) Rate(ctx context.Context, currency valueobject.Currency) (decimal.Decimal, error) {
	if s.cache != nil {
		rate, err := s.cache.Get(ctx, currency)
		if err == nil {
			return rate, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("rate cache read failed", zap.Error(err))
		}
	}

	entry, err := s.rates.FindByCurrency(ctx, currency)
	if err != nil {
		return decimal.Zero, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, currency, entry.Rate); err != nil {
			s.logger.Warn("rate cache write failed", zap.Error(err))
		}
	}
	return entry.Rate, nil
}

// Convert expresses a base-currency amount in the target currency
func (s *ExchangeService) Convert(ctx context.Context, amount valueobject.Money, target valueobject.Currency) (valueobject.Money, error) {
	rate, err := s.Rate(ctx, target)
	if err != nil {
		return valueobject.Money{}, err
	}
	return amount.Convert(target, rate)
}

// CreateRate registers a tracked non-base currency
func (s *ExchangeService) CreateRate(ctx context.Context, currency valueobject.Currency, rate decimal.Decimal) (*finance.ExchangeRate, error) {
	if existing, err := s.rates.FindByCurrency(ctx, currency); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_CURRENCY", "This currency is already tracked")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	entry, err := finance.NewExchangeRate(currency, rate)
	if err != nil {
		return nil, err
	}
	if err := s.rates.Save(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// UpdateRate changes a tracked currency's rate. The base currency is
// rejected by the aggregate itself.
func (s *ExchangeService) UpdateRate(ctx context.Context, currency valueobject.Currency, rate decimal.Decimal) (*finance.ExchangeRate, error) {
	entry, err := s.rates.FindByCurrency(ctx, currency)
	if err != nil {
		return nil, err
	}

	if err := entry.UpdateRate(rate); err != nil {
		return nil, err
	}
	if err := s.rates.Save(ctx, entry); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, entry.Currency); err != nil {
			s.logger.Warn("rate cache invalidation failed", zap.Error(err))
		}
	}
	return entry, nil
}

// List returns all tracked currencies with their rates
func (s *ExchangeService) List(ctx context.Context) ([]finance.ExchangeRate, error) {
	return s.rates.FindAll(ctx, shared.DefaultFilter())
}
