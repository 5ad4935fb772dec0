package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muebleria/backend/internal/domain/finance"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/shared/valueobject"
)

// GormExchangeRateRepository implements ExchangeRateRepository using GORM
type GormExchangeRateRepository struct {
	db *gorm.DB
}

// NewGormExchangeRateRepository creates a new GormExchangeRateRepository
func NewGormExchangeRateRepository(db *gorm.DB) *GormExchangeRateRepository {
	return &GormExchangeRateRepository{db: db}
}

// FindByID finds a rate by ID
func (r *GormExchangeRateRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.ExchangeRate, error) {
	var rate finance.ExchangeRate
	if err := r.db.WithContext(ctx).First(&rate, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindByCurrency finds the rate entry for a currency code
func (r *GormExchangeRateRepository) FindByCurrency(ctx context.Context, currency valueobject.Currency) (*finance.ExchangeRate, error) {
	var rate finance.ExchangeRate
	code := strings.ToUpper(string(currency))
	if err := r.db.WithContext(ctx).Where("currency = ?", code).First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindBase finds the base currency entry
func (r *GormExchangeRateRepository) FindBase(ctx context.Context) (*finance.ExchangeRate, error) {
	var rate finance.ExchangeRate
	if err := r.db.WithContext(ctx).Where("is_base = ?", true).First(&rate).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &rate, nil
}

// FindAll finds all rates
func (r *GormExchangeRateRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.ExchangeRate, error) {
	var rates []finance.ExchangeRate
	query := r.db.WithContext(ctx).Model(&finance.ExchangeRate{})
	query = applyPagination(query, filter)
	query = query.Order("currency ASC")

	if err := query.Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}

// Save creates or updates a rate
func (r *GormExchangeRateRepository) Save(ctx context.Context, rate *finance.ExchangeRate) error {
	return r.db.WithContext(ctx).Save(rate).Error
}

// Delete deletes a rate
func (r *GormExchangeRateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&finance.ExchangeRate{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts rates
func (r *GormExchangeRateRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&finance.ExchangeRate{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormExchangeRateRepository implements ExchangeRateRepository
var _ finance.ExchangeRateRepository = (*GormExchangeRateRepository)(nil)
