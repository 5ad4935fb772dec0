package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/shared"
)

// ProductRepository defines persistence operations for products
type ProductRepository interface {
	shared.Repository[Product]
	FindByCode(ctx context.Context, code string) (*Product, error)
	FindSellable(ctx context.Context, filter shared.Filter) ([]Product, error)
}

// MaterialRepository defines persistence operations for materials.
// FindByID implementations load the classification tags.
type MaterialRepository interface {
	shared.Repository[Material]
	FindByProductID(ctx context.Context, productID uuid.UUID) (*Material, error)
	FindBelowMinStock(ctx context.Context) ([]Material, error)
}

// FurnitureRepository defines persistence operations for furnitures.
// FindByIDHydrated loads the full recipe (materials with their types,
// labors) so the result can be priced directly.
type FurnitureRepository interface {
	shared.Repository[Furniture]
	FindByProductID(ctx context.Context, productID uuid.UUID) (*Furniture, error)
	FindByIDHydrated(ctx context.Context, id uuid.UUID) (*Furniture, error)
}

// SetRepository defines persistence operations for sets.
// FindByIDHydrated loads components down to each furniture's recipe.
type SetRepository interface {
	shared.Repository[Set]
	FindByProductID(ctx context.Context, productID uuid.UUID) (*Set, error)
	FindByIDHydrated(ctx context.Context, id uuid.UUID) (*Set, error)
}

// ColorRepository defines persistence operations for colors
type ColorRepository interface {
	shared.Repository[Color]
	FindByName(ctx context.Context, name string) (*Color, error)
}

// LaborRepository defines persistence operations for labor entries
type LaborRepository interface {
	shared.Repository[Labor]
}

// MaterialTypeRepository defines persistence operations for material types
type MaterialTypeRepository interface {
	shared.Repository[MaterialType]
	FindByName(ctx context.Context, name string) (*MaterialType, error)
}
