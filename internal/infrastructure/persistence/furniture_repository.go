package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
)

// GormFurnitureRepository implements FurnitureRepository using GORM
type GormFurnitureRepository struct {
	db *gorm.DB
}

// NewGormFurnitureRepository creates a new GormFurnitureRepository
func NewGormFurnitureRepository(db *gorm.DB) *GormFurnitureRepository {
	return &GormFurnitureRepository{db: db}
}

// FindByID finds a furniture by ID with its recipe line keys loaded
func (r *GormFurnitureRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Furniture, error) {
	var furniture catalog.Furniture
	if err := r.db.WithContext(ctx).
		Preload("Materials").
		Preload("Labors").
		First(&furniture, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &furniture, nil
}

// FindByIDHydrated loads the full recipe so the result can be priced:
// each material line with the material and its classification tags, each
// labor line with the labor entry.
func (r *GormFurnitureRepository) FindByIDHydrated(ctx context.Context, id uuid.UUID) (*catalog.Furniture, error) {
	var furniture catalog.Furniture
	if err := r.db.WithContext(ctx).
		Preload("Materials.Material.Types").
		Preload("Labors.Labor").
		Preload("Product").
		First(&furniture, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &furniture, nil
}

// FindByProductID finds the furniture backing a product
func (r *GormFurnitureRepository) FindByProductID(ctx context.Context, productID uuid.UUID) (*catalog.Furniture, error) {
	var furniture catalog.Furniture
	if err := r.db.WithContext(ctx).
		Preload("Materials").
		Preload("Labors").
		Where("product_id = ?", productID).
		First(&furniture).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &furniture, nil
}

// FindAll finds all furnitures matching the filter
func (r *GormFurnitureRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Furniture, error) {
	var furnitures []catalog.Furniture
	query := r.db.WithContext(ctx).Model(&catalog.Furniture{}).Preload("Product")
	query = applyPagination(query, filter)
	query = applySort(query, filter, CommonSortFields)

	if err := query.Find(&furnitures).Error; err != nil {
		return nil, err
	}
	return furnitures, nil
}

// Save creates or updates a furniture and rewrites its recipe lines
func (r *GormFurnitureRepository) Save(ctx context.Context, furniture *catalog.Furniture) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Materials", "Labors", "Product").Save(furniture).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalog.FurnitureMaterial{}, "furniture_id = ?", furniture.ID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalog.FurnitureLabor{}, "furniture_id = ?", furniture.ID).Error; err != nil {
			return err
		}
		for i := range furniture.Materials {
			line := furniture.Materials[i]
			line.Material = nil
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		for i := range furniture.Labors {
			line := furniture.Labors[i]
			line.Labor = nil
			if err := tx.Create(&line).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete deletes a furniture and its recipe lines
func (r *GormFurnitureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&catalog.FurnitureMaterial{}, "furniture_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&catalog.FurnitureLabor{}, "furniture_id = ?", id).Error; err != nil {
			return err
		}
		result := tx.Delete(&catalog.Furniture{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts furnitures
func (r *GormFurnitureRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Furniture{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormFurnitureRepository implements FurnitureRepository
var _ catalog.FurnitureRepository = (*GormFurnitureRepository)(nil)
