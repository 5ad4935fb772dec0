package inventory

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
)

// AdjustmentRequest carries a manual stock correction. The quantity's
// sign encodes the direction: positive restocks, negative writes off.
type AdjustmentRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	ColorID   *uuid.UUID      `json:"color_id"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Note      string          `json:"note"`
}

// MovementService exposes the movement ledger: browsing entries and
// recording manual adjustments. Order and purchase movements are created
// by their own services; this one only ever appends adjustments.
type MovementService struct {
	movements inventory.ProductMovementRepository
}

// NewMovementService creates a new movement service
func NewMovementService(movements inventory.ProductMovementRepository) *MovementService {
	return &MovementService{movements: movements}
}

// Get returns one ledger entry
func (s *MovementService) Get(ctx context.Context, movementID uuid.UUID) (*inventory.ProductMovement, error) {
	return s.movements.FindByID(ctx, movementID)
}

// List returns ledger entries matching the filter
func (s *MovementService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[inventory.ProductMovement], error) {
	items, err := s.movements.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.movements.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &page, nil
}

// ListBySource returns the ledger entries owned by one document
func (s *MovementService) ListBySource(ctx context.Context, source inventory.MovementSource) ([]inventory.ProductMovement, error) {
	return s.movements.FindBySource(ctx, source)
}

// CreateAdjustment appends a manual correction entry. Each adjustment
// owns its source reference, so it can be traced and reversed on its own.
func (s *MovementService) CreateAdjustment(ctx context.Context, req AdjustmentRequest) (*inventory.ProductMovement, error) {
	movement, err := inventory.NewProductMovement(
		req.ProductID, req.ColorID, req.Quantity, inventory.AdjustmentSource(uuid.New()))
	if err != nil {
		return nil, err
	}
	if req.Note != "" {
		movement.WithNote(req.Note)
	}

	if err := s.movements.Create(ctx, movement); err != nil {
		return nil, err
	}
	return movement, nil
}

// ReverseAdjustment appends the counter-entry undoing one manual
// adjustment. Only adjustment entries may be reversed this way; order
// and purchase movements are managed by their owning documents.
func (s *MovementService) ReverseAdjustment(ctx context.Context, movementID uuid.UUID) (*inventory.ProductMovement, error) {
	movement, err := s.movements.FindByID(ctx, movementID)
	if err != nil {
		return nil, err
	}
	if movement.Source.Type != inventory.SourceTypeAdjustment {
		return nil, shared.NewDomainError("INVALID_REVERSAL", "Only adjustment entries can be reversed directly")
	}

	reversal, err := movement.Reversal(inventory.AdjustmentSource(uuid.New()))
	if err != nil {
		return nil, err
	}
	if err := s.movements.Create(ctx, reversal); err != nil {
		return nil, err
	}
	return reversal, nil
}
