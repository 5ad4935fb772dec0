package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
)

// GormSetRepository implements SetRepository using GORM
type GormSetRepository struct {
	db *gorm.DB
}

// NewGormSetRepository creates a new GormSetRepository
func NewGormSetRepository(db *gorm.DB) *GormSetRepository {
	return &GormSetRepository{db: db}
}

// FindByID finds a set by ID with its component line keys loaded
func (r *GormSetRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Set, error) {
	var set catalog.Set
	if err := r.db.WithContext(ctx).
		Preload("Furnitures").
		First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &set, nil
}

// FindByIDHydrated loads components down to each furniture's full recipe,
// so the set can be priced and its color availability computed.
func (r *GormSetRepository) FindByIDHydrated(ctx context.Context, id uuid.UUID) (*catalog.Set, error) {
	var set catalog.Set
	if err := r.db.WithContext(ctx).
		Preload("Furnitures.Furniture.Materials.Material.Types").
		Preload("Furnitures.Furniture.Labors.Labor").
		Preload("Furnitures.Furniture.Product").
		Preload("Product").
		First(&set, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &set, nil
}

// FindByProductID finds the set backing a product
func (r *GormSetRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*catalog.Set, error) {
	var set catalog.Set
	if err := r.db.WithContext(ctx).
		Preload("Furnitures").
		Where("product_id = ?", productID).
		First(&set).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &set, nil
}

// FindAll finds all sets matching the filter
func (r *GormSetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Set, error) {
	var sets []catalog.Set
	query := r.db.WithContext(ctx).Model(&catalog.Set{}).Preload("Product")
	query = applyPagination(query, filter)
	query = applySort(query, filter, CommonSortFields)

	if err := query.Find(&sets).Error; err != nil {
		return nil, err
	}
	return sets, nil
}

// Save creates or updates a set and rewrites its component lines
func (r *GormSetRepository) Save(ctx context.Context, set *catalog.Set) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Furnitures", "Product").Save(set).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalog.SetFurniture{}, "set_id = ?", set.ID).Error; err != nil {
			return err
		}
		for i := range set.Furnitures {
			line := set.Furnitures[i]
			line.Furniture = nil
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a set and its component lines
func (r *GormSetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&catalog.SetFurniture{}, "set_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.Set{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts sets
func (r *GormSetRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Set{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSetRepository implements SetRepository
var _ catalog.SetRepository = (*GormSetRepository)(nil)
