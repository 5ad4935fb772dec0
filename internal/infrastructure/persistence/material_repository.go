package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
)

// GormMaterialRepository implements MaterialRepository using GORM
type GormMaterialRepository struct {
	db *gorm.DB
}

// NewGormMaterialRepository creates a new GormMaterialRepository
func NewGormMaterialRepository(db *gorm.DB) *GormMaterialRepository {
	return &GormMaterialRepository{db: db}
}

// FindByID finds a material by ID with its classification tags loaded
func (r *GormMaterialRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Material, error) {
	var material catalog.Material
	if err := r.db.WithContext(ctx).
		Preload("Types").
		Preload("Product").
		First(&material, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// FindByProductID finds the material backing a product
func (r *GormMaterialRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*catalog.Material, error) {
	var material catalog.Material
	if err := r.db.WithContext(ctx).
		Preload("Types").
		Preload("Product").
		Where("product_id = ?", productID).
		First(&material).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &material, nil
}

// FindAll finds all materials matching the filter
func (r *GormMaterialRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Material, error) {
	var materials []catalog.Material
	query := r.db.WithContext(ctx).Model(&catalog.Material{}).Preload("Types").Preload("Product")
	query = applyPagination(query, filter)
	query = applySort(query, filter, CommonSortFields)

	if err := query.Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// FindBelowMinStock finds materials whose summed ledger quantity sits at
// or under their advisory minimum. Materials with a zero minimum are
// never reported.
func (r *GormMaterialRepository) FindBelowMinStock(ctx context.Context) ([]catalog.Material, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id
		FROM materials m
		LEFT JOIN product_movements pm ON pm.product_id = m.product_id
		WHERE m.min_stock > 0
		GROUP BY m.id, m.min_stock
		HAVING COALESCE(SUM(pm.quantity), 0) <= m.min_stock`).
		Scan(&ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []catalog.Material{}, nil
	}

	var materials []catalog.Material
	if err := r.db.WithContext(ctx).
		Preload("Types").
		Preload("Product").
		Where("id IN ?", ids).
		Find(&materials).Error; err != nil {
		return nil, err
	}
	return materials, nil
}

// Save creates or updates a material and replaces its tag associations
func (r *GormMaterialRepository) Save(ctx context.Context, material *catalog.Material) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Types", "Product").Save(material).Error; err != nil {
			return err
		}
		return tx.Model(material).Association("Types").Replace(material.Types)
	})
}

// Delete deletes a material
func (r *GormMaterialRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Material{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts materials matching the filter
func (r *GormMaterialRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Material{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormMaterialRepository implements MaterialRepository
var _ catalog.MaterialRepository = (*GormMaterialRepository)(nil)
