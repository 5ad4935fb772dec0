package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/shared"
)

// PricingService prices catalog entries from their loaded recipes. All
// reads, no writes: prices are computed on demand and never stored.
type PricingService struct {
	products   catalog.ProductRepository
	materials  catalog.MaterialRepository
	furnitures catalog.FurnitureRepository
	sets       catalog.SetRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(
	products catalog.ProductRepository,
	materials catalog.MaterialRepository,
	furnitures catalog.FurnitureRepository,
	sets catalog.SetRepository,
) *PricingService {
	return &PricingService{
		products:   products,
		materials:  materials,
		furnitures: furnitures,
		sets:       sets,
	}
}

// QuoteFurniture prices one furniture unit from its hydrated recipe,
// applying the owning product's discount.
func (s *PricingService) QuoteFurniture(ctx context.Context, furnitureID uuid.UUID) (*catalog.PriceQuote, error) {
	furniture, err := s.furnitures.FindByIDHydrated(ctx, furnitureID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, furniture.ProductID)
	if err != nil {
		return nil, err
	}

	price := furniture.CalculatePrices(product.Discount)
	return &price, nil
}

// QuoteSet prices one set unit by re-aggregating its component recipes
// under the set's own markups, applying the owning product's discount.
func (s *PricingService) QuoteSet(ctx context.Context, setID uuid.UUID) (*catalog.PriceQuote, error) {
	set, err := s.sets.FindByIDHydrated(ctx, setID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, set.ProductID)
	if err != nil {
		return nil, err
	}

	price := set.CalculatePrices(product.Discount)
	return &price, nil
}

// QuoteProduct prices a product by dispatching on its kind. Materials
// quote at their unit price less the product discount, identical in
// every variant since nothing is manufactured.
func (s *PricingService) QuoteProduct(ctx context.Context, productID uuid.UUID) (*catalog.PriceQuote, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	switch product.Kind {
	case catalog.ProductKindMaterial:
		material, err := s.materials.FindByProductID(ctx, productID)
		if err != nil {
			return nil, err
		}
		quote := catalog.QuoteMaterial(material.Price, product.Discount)
		return &quote, nil
	case catalog.ProductKindFurniture:
		furniture, err := s.furnitures.FindByProductID(ctx, productID)
		if err != nil {
			return nil, err
		}
		return s.QuoteFurniture(ctx, furniture.ID)
	case catalog.ProductKindSet:
		set, err := s.sets.FindByProductID(ctx, productID)
		if err != nil {
			return nil, err
		}
		return s.QuoteSet(ctx, set.ID)
	}
	return nil, shared.NewDomainError("INVALID_KIND", "Product has no priceable kind")
}
