package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
)

// GormProductMovementRepository implements ProductMovementRepository
// using GORM. The ledger is append-only: entries are created or removed
// whole, never updated.
type GormProductMovementRepository struct {
	db *gorm.DB
}

// NewGormProductMovementRepository creates a new GormProductMovementRepository
func NewGormProductMovementRepository(db *gorm.DB) *GormProductMovementRepository {
	return &GormProductMovementRepository{db: db}
}

// FindByID finds a movement by ID
func (r *GormProductMovementRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.ProductMovement, error) {
	var movement inventory.ProductMovement
	if err := r.db.WithContext(ctx).First(&movement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &movement, nil
}

// FindAll finds all movements matching the filter
func (r *GormProductMovementRepository) FindAll(ctx context.Context, filter shared.Filter) ([]inventory.ProductMovement, error) {
	var movements []inventory.ProductMovement
	query := r.applySearch(r.db.WithContext(ctx).Model(&inventory.ProductMovement{}), filter)
	query = applyPagination(query, filter)
	query = applySort(query, filter, MovementSortFields)

	if err := query.Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindBySource finds all movements owned by a source document
func (r *GormProductMovementRepository) FindBySource(ctx context.Context, source inventory.MovementSource) ([]inventory.ProductMovement, error) {
	var movements []inventory.ProductMovement
	if err := r.db.WithContext(ctx).
		Where("source_type = ? AND source_id = ?", source.Type, source.ID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Create appends one movement to the ledger
func (r *GormProductMovementRepository) Create(ctx context.Context, movement *inventory.ProductMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// CreateBatch appends several movements in one statement
func (r *GormProductMovementRepository) CreateBatch(ctx context.Context, movements []*inventory.ProductMovement) error {
	if len(movements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(movements).Error
}

// DeleteBySource removes all movements owned by a source document
func (r *GormProductMovementRepository) DeleteBySource(ctx context.Context, source inventory.MovementSource) error {
	return r.db.WithContext(ctx).
		Where("source_type = ? AND source_id = ?", source.Type, source.ID).
		Delete(&inventory.ProductMovement{}).Error
}

// Delete removes one movement
func (r *GormProductMovementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&inventory.ProductMovement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts movements matching the filter
func (r *GormProductMovementRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applySearch(r.db.WithContext(ctx).Model(&inventory.ProductMovement{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProductMovementRepository) applySearch(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "product_id":
			query = query.Where("product_id = ?", value)
		case "color_id":
			query = query.Where("color_id = ?", value)
		case "source_type":
			query = query.Where("source_type = ?", value)
		}
	}
	return query
}

// Ensure GormProductMovementRepository implements ProductMovementRepository
var _ inventory.ProductMovementRepository = (*GormProductMovementRepository)(nil)
