package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
)

// AvailabilityService answers "how many of this bundle can be built per
// color right now" by combining a set's component list with the derived
// stock view.
type AvailabilityService struct {
	products catalog.ProductRepository
	sets     catalog.SetRepository
	stocks   inventory.StockViewRepository
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	products catalog.ProductRepository,
	sets catalog.SetRepository,
	stocks inventory.StockViewRepository,
) *AvailabilityService {
	return &AvailabilityService{
		products: products,
		sets:     sets,
		stocks:   stocks,
	}
}

// ForSet reports the per-color buildable quantity of one set. Each
// component constrains every color by its own stock; the reported figure
// is the tightest bottleneck.
func (s *AvailabilityService) ForSet(ctx context.Context, setID uuid.UUID) ([]inventory.ColorAvailability, error) {
	set, err := s.sets.FindByIDHydrated(ctx, setID)
	if err != nil {
		return nil, err
	}

	productIDs := make([]uuid.UUID, 0, len(set.Furnitures))
	for _, component := range set.Furnitures {
		if component.Furniture == nil {
			return nil, shared.NewDomainError("UNLOADED_COMPONENT", "Set component recipe is not loaded")
		}
		productIDs = append(productIDs, component.Furniture.ProductID)
	}

	stocksByProduct, err := s.stocks.ForProducts(ctx, productIDs)
	if err != nil {
		return nil, err
	}

	requirements := make([]inventory.ComponentRequirement, 0, len(set.Furnitures))
	for _, component := range set.Furnitures {
		requirements = append(requirements, inventory.ComponentRequirement{
			RequiredPerSet: component.Quantity,
			Stocks:         stocksByProduct[component.Furniture.ProductID],
		})
	}

	return inventory.AvailableColors(requirements), nil
}

// ForProduct reports the per-color buildable quantity of a set product.
// Only set products have a bottleneck analysis; other kinds answer with
// their own stock rows converted to availabilities.
func (s *AvailabilityService) ForProduct(ctx context.Context, productID uuid.UUID) ([]inventory.ColorAvailability, error) {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if product.Kind == catalog.ProductKindSet {
		set, err := s.sets.FindByProductID(ctx, productID)
		if err != nil {
			return nil, err
		}
		return s.ForSet(ctx, set.ID)
	}

	stocks, err := s.stocks.ForProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	var result []inventory.ColorAvailability
	for _, stock := range stocks {
		if stock.ColorName == "" {
			continue
		}
		units := stock.Quantity.Floor().IntPart()
		if units <= 0 {
			continue
		}
		result = append(result, inventory.ColorAvailability{
			Name:  stock.ColorName,
			Hex:   stock.ColorHex,
			Stock: units,
		})
	}
	return result, nil
}
