package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
)

// GormColorRepository implements ColorRepository using GORM
type GormColorRepository struct {
	db *gorm.DB
}

// NewGormColorRepository creates a new GormColorRepository
func NewGormColorRepository(db *gorm.DB) *GormColorRepository {
	return &GormColorRepository{db: db}
}

// FindByID finds a color by ID
func (r *GormColorRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Color, error) {
	var color catalog.Color
	if err := r.db.WithContext(ctx).First(&color, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &color, nil
}

// FindByName finds a color by its exact name
func (r *GormColorRepository) FindByName(ctx context.Context, name string) (*catalog.Color, error) {
	var color catalog.Color
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&color).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &color, nil
}

// FindAll finds all colors matching the filter
func (r *GormColorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Color, error) {
	var colors []catalog.Color
	query := r.db.WithContext(ctx).Model(&catalog.Color{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyPagination(query, filter)
	query = query.Order("name ASC")

	if err := query.Find(&colors).Error; err != nil {
		return nil, err
	}
	return colors, nil
}

// Save creates or updates a color
func (r *GormColorRepository) Save(ctx context.Context, color *catalog.Color) error {
	return r.db.WithContext(ctx).Save(color).Error
}

// Delete deletes a color
func (r *GormColorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Color{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts colors
func (r *GormColorRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Color{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormLaborRepository implements LaborRepository using GORM
type GormLaborRepository struct {
	db *gorm.DB
}

// NewGormLaborRepository creates a new GormLaborRepository
func NewGormLaborRepository(db *gorm.DB) *GormLaborRepository {
	return &GormLaborRepository{db: db}
}

// FindByID finds a labor entry by ID
func (r *GormLaborRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Labor, error) {
	var labor catalog.Labor
	if err := r.db.WithContext(ctx).First(&labor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &labor, nil
}

// FindAll finds all labor entries matching the filter
func (r *GormLaborRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Labor, error) {
	var labors []catalog.Labor
	query := r.db.WithContext(ctx).Model(&catalog.Labor{})
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}
	query = applyPagination(query, filter)
	query = query.Order("name ASC")

	if err := query.Find(&labors).Error; err != nil {
		return nil, err
	}
	return labors, nil
}

// Save creates or updates a labor entry
func (r *GormLaborRepository) Save(ctx context.Context, labor *catalog.Labor) error {
	return r.db.WithContext(ctx).Save(labor).Error
}

// Delete deletes a labor entry
func (r *GormLaborRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Labor{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts labor entries
func (r *GormLaborRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.Labor{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GormMaterialTypeRepository implements MaterialTypeRepository using GORM
type GormMaterialTypeRepository struct {
	db *gorm.DB
}

// NewGormMaterialTypeRepository creates a new GormMaterialTypeRepository
func NewGormMaterialTypeRepository(db *gorm.DB) *GormMaterialTypeRepository {
	return &GormMaterialTypeRepository{db: db}
}

// FindByID finds a material type by ID
func (r *GormMaterialTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.MaterialType, error) {
	var materialType catalog.MaterialType
	if err := r.db.WithContext(ctx).First(&materialType, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &materialType, nil
}

// FindByName finds a material type by its exact name
func (r *GormMaterialTypeRepository) FindByName(ctx context.Context, name string) (*catalog.MaterialType, error) {
	var materialType catalog.MaterialType
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&materialType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &materialType, nil
}

// FindAll finds all material types
func (r *GormMaterialTypeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.MaterialType, error) {
	var types []catalog.MaterialType
	query := r.db.WithContext(ctx).Model(&catalog.MaterialType{})
	query = applyPagination(query, filter)
	query = query.Order("name ASC")

	if err := query.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// Save creates or updates a material type
func (r *GormMaterialTypeRepository) Save(ctx context.Context, materialType *catalog.MaterialType) error {
	return r.db.WithContext(ctx).Save(materialType).Error
}

// Delete deletes a material type
func (r *GormMaterialTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.MaterialType{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts material types
func (r *GormMaterialTypeRepository) Count(ctx context.Context, _ shared.Filter) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&catalog.MaterialType{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Interface conformance assertions
var (
	_ catalog.ColorRepository        = (*GormColorRepository)(nil)
	_ catalog.LaborRepository        = (*GormLaborRepository)(nil)
	_ catalog.MaterialTypeRepository = (*GormMaterialTypeRepository)(nil)
)
