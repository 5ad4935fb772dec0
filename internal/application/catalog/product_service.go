package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
)

// CreateMaterialRequest carries everything needed to register a material
// together with its product identity.
type CreateMaterialRequest struct {
	Code        string          `json:"code" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" binding:"required"`
	Unit        string          `json:"unit" binding:"required"`
	MinStock    decimal.Decimal `json:"min_stock"`
	MaxStock    decimal.Decimal `json:"max_stock"`
	TypeIDs     []uuid.UUID     `json:"type_ids"`
}

// RecipeMaterialRequest is one material line of a furniture recipe
type RecipeMaterialRequest struct {
	MaterialID uuid.UUID       `json:"material_id" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
	ColorID    *uuid.UUID      `json:"color_id"`
}

// RecipeLaborRequest is one labor line of a furniture recipe
type RecipeLaborRequest struct {
	LaborID uuid.UUID       `json:"labor_id" binding:"required"`
	Days    decimal.Decimal `json:"days" binding:"required"`
}

// CreateFurnitureRequest carries a furniture, its product identity and
// its full recipe.
type CreateFurnitureRequest struct {
	Code        string                  `json:"code" binding:"required"`
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	ProfitPer   decimal.Decimal         `json:"profit_per"`
	PaintPer    decimal.Decimal         `json:"paint_per"`
	LaborFabPer decimal.Decimal         `json:"labor_fab_per"`
	Materials   []RecipeMaterialRequest `json:"materials"`
	Labors      []RecipeLaborRequest    `json:"labors"`
}

// SetComponentRequest is one component furniture of a set
type SetComponentRequest struct {
	FurnitureID uuid.UUID       `json:"furniture_id" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
}

// CreateSetRequest carries a set, its product identity and its components
type CreateSetRequest struct {
	Code        string                `json:"code" binding:"required"`
	Name        string                `json:"name" binding:"required"`
	Description string                `json:"description"`
	ProfitPer   decimal.Decimal       `json:"profit_per"`
	PaintPer    decimal.Decimal       `json:"paint_per"`
	LaborFabPer decimal.Decimal       `json:"labor_fab_per"`
	Components  []SetComponentRequest `json:"components" binding:"required,min=1"`
}

// UpdateProductRequest updates a product's shared attributes. Nil
// pointers leave the current value untouched.
type UpdateProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Sell        *bool            `json:"sell"`
	Discount    *decimal.Decimal `json:"discount"`
}

// ProductService manages the product catalog: materials, furnitures and
// sets, each paired with the product identity it is sold under.
type ProductService struct {
	scope          TransactionScope
	eventPublisher shared.EventPublisher
}

// NewProductService creates a new product service
func NewProductService(scope TransactionScope) *ProductService {
	return &ProductService{scope: scope}
}

// SetEventPublisher wires an optional publisher for domain events
func (s *ProductService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// CreateMaterial registers a material and its product identity atomically
func (s *ProductService) CreateMaterial(ctx context.Context, req CreateMaterialRequest) (*catalog.Material, error) {
	var material *catalog.Material
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := s.newProduct(ctx, repos, req.Code, req.Name, req.Description, catalog.ProductKindMaterial)
		if err != nil {
			return err
		}

		material, err = catalog.NewMaterial(product.ID, req.Price, req.Unit)
		if err != nil {
			return err
		}
		if err := material.SetStockBounds(req.MinStock, req.MaxStock); err != nil {
			return err
		}

		types := make([]catalog.MaterialType, 0, len(req.TypeIDs))
		for _, typeID := range req.TypeIDs {
			materialType, err := repos.MaterialTypeRepo().FindByID(ctx, typeID)
			if err != nil {
				return err
			}
			types = append(types, *materialType)
		}
		material.ReplaceTypes(types)
		material.Product = product

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		return repos.MaterialRepo().Save(ctx, material)
	})
	if err != nil {
		return nil, err
	}
	s.publish(material.Product)
	return material, nil
}

// CreateFurniture registers a furniture, its product identity and its
// recipe atomically. Every referenced material and labor must exist.
func (s *ProductService) CreateFurniture(ctx context.Context, req CreateFurnitureRequest) (*catalog.Furniture, error) {
	var furniture *catalog.Furniture
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := s.newProduct(ctx, repos, req.Code, req.Name, req.Description, catalog.ProductKindFurniture)
		if err != nil {
			return err
		}

		furniture, err = catalog.NewFurniture(product.ID)
		if err != nil {
			return err
		}
		if err := furniture.SetMarkups(req.ProfitPer, req.PaintPer, req.LaborFabPer); err != nil {
			return err
		}

		for _, line := range req.Materials {
			if _, err := repos.MaterialRepo().FindByID(ctx, line.MaterialID); err != nil {
				return err
			}
			if err := furniture.AddMaterial(line.MaterialID, line.Quantity, line.ColorID); err != nil {
				return err
			}
		}
		for _, line := range req.Labors {
			if _, err := repos.LaborRepo().FindByID(ctx, line.LaborID); err != nil {
				return err
			}
			if err := furniture.AddLabor(line.LaborID, line.Days); err != nil {
				return err
			}
		}
		furniture.Product = product

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		return repos.FurnitureRepo().Save(ctx, furniture)
	})
	if err != nil {
		return nil, err
	}
	s.publish(furniture.Product)
	return furniture, nil
}

// CreateSet registers a set, its product identity and its component
// furnitures atomically.
func (s *ProductService) CreateSet(ctx context.Context, req CreateSetRequest) (*catalog.Set, error) {
	var set *catalog.Set
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := s.newProduct(ctx, repos, req.Code, req.Name, req.Description, catalog.ProductKindSet)
		if err != nil {
			return err
		}

		set, err = catalog.NewSet(product.ID)
		if err != nil {
			return err
		}
		if err := set.SetMarkups(req.ProfitPer, req.PaintPer, req.LaborFabPer); err != nil {
			return err
		}

		for _, component := range req.Components {
			if _, err := repos.FurnitureRepo().FindByID(ctx, component.FurnitureID); err != nil {
				return err
			}
			if err := set.AddFurniture(component.FurnitureID, component.Quantity); err != nil {
				return err
			}
		}
		set.Product = product

		if err := repos.ProductRepo().Save(ctx, product); err != nil {
			return err
		}
		return repos.SetRepo().Save(ctx, set)
	})
	if err != nil {
		return nil, err
	}
	s.publish(set.Product)
	return set, nil
}

// UpdateFurnitureRecipe replaces a furniture's recipe and markups in one step
func (s *ProductService) UpdateFurnitureRecipe(ctx context.Context, furnitureID uuid.UUID, req CreateFurnitureRequest) (*catalog.Furniture, error) {
	var furniture *catalog.Furniture
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		furniture, err = repos.FurnitureRepo().FindByID(ctx, furnitureID)
		if err != nil {
			return err
		}

		if err := furniture.SetMarkups(req.ProfitPer, req.PaintPer, req.LaborFabPer); err != nil {
			return err
		}

		materials := make([]catalog.FurnitureMaterial, 0, len(req.Materials))
		for _, line := range req.Materials {
			if _, err := repos.MaterialRepo().FindByID(ctx, line.MaterialID); err != nil {
				return err
			}
			materials = append(materials, catalog.FurnitureMaterial{
				MaterialID: line.MaterialID,
				Quantity:   line.Quantity,
				ColorID:    line.ColorID,
			})
		}
		labors := make([]catalog.FurnitureLabor, 0, len(req.Labors))
		for _, line := range req.Labors {
			if _, err := repos.LaborRepo().FindByID(ctx, line.LaborID); err != nil {
				return err
			}
			labors = append(labors, catalog.FurnitureLabor{
				LaborID: line.LaborID,
				Days:    line.Days,
			})
		}
		if err := furniture.ReplaceRecipe(materials, labors); err != nil {
			return err
		}

		return repos.FurnitureRepo().Save(ctx, furniture)
	})
	if err != nil {
		return nil, err
	}
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(furniture.GetDomainEvents()...)
		furniture.ClearDomainEvents()
	}
	return furniture, nil
}

// UpdateSetComponents replaces a set's component list and markups in one step
func (s *ProductService) UpdateSetComponents(ctx context.Context, setID uuid.UUID, req CreateSetRequest) (*catalog.Set, error) {
	var set *catalog.Set
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		set, err = repos.SetRepo().FindByID(ctx, setID)
		if err != nil {
			return err
		}

		if err := set.SetMarkups(req.ProfitPer, req.PaintPer, req.LaborFabPer); err != nil {
			return err
		}

		components := make([]catalog.SetFurniture, 0, len(req.Components))
		for _, component := range req.Components {
			if _, err := repos.FurnitureRepo().FindByID(ctx, component.FurnitureID); err != nil {
				return err
			}
			components = append(components, catalog.SetFurniture{
				FurnitureID: component.FurnitureID,
				Quantity:    component.Quantity,
			})
		}
		if err := set.ReplaceComponents(components); err != nil {
			return err
		}

		return repos.SetRepo().Save(ctx, set)
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Update changes a product's shared attributes
func (s *ProductService) Update(ctx context.Context, productID uuid.UUID, req UpdateProductRequest) (*catalog.Product, error) {
	var product *catalog.Product
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		product, err = repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		if err := product.Update(req.Name, req.Description); err != nil {
			return err
		}
		if req.Sell != nil {
			product.SetSellable(*req.Sell)
		}
		if req.Discount != nil {
			if err := product.SetDiscount(*req.Discount); err != nil {
				return err
			}
		}

		return repos.ProductRepo().Save(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	s.publish(product)
	return product, nil
}

// ReplaceColors replaces the set of colors a product can be ordered in
func (s *ProductService) ReplaceColors(ctx context.Context, productID uuid.UUID, colorIDs []uuid.UUID) (*catalog.Product, error) {
	var product *catalog.Product
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		product, err = repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		colors := make([]catalog.Color, 0, len(colorIDs))
		for _, colorID := range colorIDs {
			color, err := repos.ColorRepo().FindByID(ctx, colorID)
			if err != nil {
				return err
			}
			colors = append(colors, *color)
		}
		product.ReplaceColors(colors)

		return repos.ProductRepo().Save(ctx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product together with its kind row
func (s *ProductService) Delete(ctx context.Context, productID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, productID)
		if err != nil {
			return err
		}

		switch product.Kind {
		case catalog.ProductKindMaterial:
			material, err := repos.MaterialRepo().FindByProductID(ctx, productID)
			if err != nil {
				return err
			}
			if err := repos.MaterialRepo().Delete(ctx, material.ID); err != nil {
				return err
			}
		case catalog.ProductKindFurniture:
			furniture, err := repos.FurnitureRepo().FindByProductID(ctx, productID)
			if err != nil {
				return err
			}
			if err := repos.FurnitureRepo().Delete(ctx, furniture.ID); err != nil {
				return err
			}
		case catalog.ProductKindSet:
			set, err := repos.SetRepo().FindByProductID(ctx, productID)
			if err != nil {
				return err
			}
			if err := repos.SetRepo().Delete(ctx, set.ID); err != nil {
				return err
			}
		}

		return repos.ProductRepo().Delete(ctx, productID)
	})
}

// Get returns one product
func (s *ProductService) Get(ctx context.Context, productID uuid.UUID) (*catalog.Product, error) {
	var product *catalog.Product
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		product, err = repos.ProductRepo().FindByID(ctx, productID)
		return err
	})
	return product, err
}

// List returns products matching the filter
func (s *ProductService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	var page shared.Paginated[catalog.Product]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		items, err := repos.ProductRepo().FindAll(ctx, filter)
		if err != nil {
			return err
		}
		total, err := repos.ProductRepo().Count(ctx, filter)
		if err != nil {
			return err
		}
		page = shared.NewPaginated(items, total, filter.Page, filter.PageSize)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ListSellable returns the products offered in the sales catalog
func (s *ProductService) ListSellable(ctx context.Context, filter shared.Filter) ([]catalog.Product, error) {
	var products []catalog.Product
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		products, err = repos.ProductRepo().FindSellable(ctx, filter)
		return err
	})
	return products, err
}

// newProduct creates the product identity after checking code uniqueness
func (s *ProductService) newProduct(ctx context.Context, repos TransactionalRepositories, code, name, description string, kind catalog.ProductKind) (*catalog.Product, error) {
	if existing, err := repos.ProductRepo().FindByCode(ctx, code); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_CODE", "A product with this code already exists")
	} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	product, err := catalog.NewProduct(code, name, kind)
	if err != nil {
		return nil, err
	}
	product.Description = description
	return product, nil
}

func (s *ProductService) publish(product *catalog.Product) {
	if s.eventPublisher == nil || product == nil {
		return
	}
	s.eventPublisher.Publish(product.GetDomainEvents()...)
	product.ClearDomainEvents()
}
