package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
)

// ColorRequest carries a color's attributes
type ColorRequest struct {
	Name      string `json:"name" binding:"required"`
	Hex       string `json:"hex" binding:"required"`
	IsNatural bool   `json:"is_natural"`
}

// LaborRequest carries a labor entry's attributes
type LaborRequest struct {
	Name     string          `json:"name" binding:"required"`
	DailyPay decimal.Decimal `json:"daily_pay" binding:"required"`
}

// ReferenceService manages the catalog's reference data: colors, labor
// entries and material type tags.
type ReferenceService struct {
	scope TransactionScope
}

// NewReferenceService creates a new reference data service
func NewReferenceService(scope TransactionScope) *ReferenceService {
	return &ReferenceService{scope: scope}
}

// CreateColor registers a new color
func (s *ReferenceService) CreateColor(ctx context.Context, req ColorRequest) (*catalog.Color, error) {
	var color *catalog.Color
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if existing, err := repos.ColorRepo().FindByName(ctx, req.Name); err == nil && existing != nil {
			return shared.NewDomainError("DUPLICATE_COLOR", "A color with this name already exists")
		} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		var err error
		color, err = catalog.NewColor(req.Name, req.Hex, req.IsNatural)
		if err != nil {
			return err
		}
		return repos.ColorRepo().Save(ctx, color)
	})
	if err != nil {
		return nil, err
	}
	return color, nil
}

// UpdateColor changes a color's attributes
func (s *ReferenceService) UpdateColor(ctx context.Context, colorID uuid.UUID, req ColorRequest) (*catalog.Color, error) {
	var color *catalog.Color
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		color, err = repos.ColorRepo().FindByID(ctx, colorID)
		if err != nil {
			return err
		}
		if err := color.Update(req.Name, req.Hex, req.IsNatural); err != nil {
			return err
		}
		return repos.ColorRepo().Save(ctx, color)
	})
	if err != nil {
		return nil, err
	}
	return color, nil
}

// DeleteColor removes a color
func (s *ReferenceService) DeleteColor(ctx context.Context, colorID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.ColorRepo().Delete(ctx, colorID)
	})
}

// ListColors returns all colors
func (s *ReferenceService) ListColors(ctx context.Context, filter shared.Filter) ([]catalog.Color, error) {
	var colors []catalog.Color
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		colors, err = repos.ColorRepo().FindAll(ctx, filter)
		return err
	})
	return colors, err
}

// CreateLabor registers a new labor entry
func (s *ReferenceService) CreateLabor(ctx context.Context, req LaborRequest) (*catalog.Labor, error) {
	var labor *catalog.Labor
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		labor, err = catalog.NewLabor(req.Name, req.DailyPay)
		if err != nil {
			return err
		}
		return repos.LaborRepo().Save(ctx, labor)
	})
	if err != nil {
		return nil, err
	}
	return labor, nil
}

// UpdateLabor changes a labor entry's attributes
func (s *ReferenceService) UpdateLabor(ctx context.Context, laborID uuid.UUID, req LaborRequest) (*catalog.Labor, error) {
	var labor *catalog.Labor
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		labor, err = repos.LaborRepo().FindByID(ctx, laborID)
		if err != nil {
			return err
		}
		if err := labor.Update(req.Name, req.DailyPay); err != nil {
			return err
		}
		return repos.LaborRepo().Save(ctx, labor)
	})
	if err != nil {
		return nil, err
	}
	return labor, nil
}

// DeleteLabor removes a labor entry
func (s *ReferenceService) DeleteLabor(ctx context.Context, laborID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.LaborRepo().Delete(ctx, laborID)
	})
}

// ListLabors returns all labor entries
func (s *ReferenceService) ListLabors(ctx context.Context, filter shared.Filter) ([]catalog.Labor, error) {
	var labors []catalog.Labor
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		labors, err = repos.LaborRepo().FindAll(ctx, filter)
		return err
	})
	return labors, err
}

// CreateMaterialType registers a new material classification tag
func (s *ReferenceService) CreateMaterialType(ctx context.Context, name string) (*catalog.MaterialType, error) {
	var materialType *catalog.MaterialType
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		if existing, err := repos.MaterialTypeRepo().FindByName(ctx, name); err == nil && existing != nil {
			return shared.NewDomainError("DUPLICATE_TYPE", "A material type with this name already exists")
		} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return err
		}

		var err error
		materialType, err = catalog.NewMaterialType(name)
		if err != nil {
			return err
		}
		return repos.MaterialTypeRepo().Save(ctx, materialType)
	})
	if err != nil {
		return nil, err
	}
	return materialType, nil
}

// DeleteMaterialType removes a material classification tag
func (s *ReferenceService) DeleteMaterialType(ctx context.Context, typeID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		return repos.MaterialTypeRepo().Delete(ctx, typeID)
	})
}

// ListMaterialTypes returns all material classification tags
func (s *ReferenceService) ListMaterialTypes(ctx context.Context, filter shared.Filter) ([]catalog.MaterialType, error) {
	var types []catalog.MaterialType
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		types, err = repos.MaterialTypeRepo().FindAll(ctx, filter)
		return err
	})
	return types, err
}
