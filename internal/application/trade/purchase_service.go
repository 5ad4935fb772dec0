package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/trade"
)

// PurchaseLineRequest is one product line of a purchase request
type PurchaseLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Cost      decimal.Decimal `json:"cost" binding:"required"`
	Discount  decimal.Decimal `json:"discount"`
	ColorID   *uuid.UUID      `json:"color_id"`
}

// CreatePurchaseRequest carries everything needed to record a purchase
type CreatePurchaseRequest struct {
	Code       string                `json:"code" binding:"required"`
	SupplierID uuid.UUID             `json:"supplier_id" binding:"required"`
	Date       time.Time             `json:"date"`
	Notes      string                `json:"notes"`
	Lines      []PurchaseLineRequest `json:"lines" binding:"required,min=1"`
}

// PurchaseService orchestrates supplier purchases and their ledger
// effects. Every purchase line restocks with a positive movement owned
// by the purchase.
type PurchaseService struct {
	scope TransactionScope
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(scope TransactionScope) *PurchaseService {
	return &PurchaseService{scope: scope}
}

// Create records a purchase and its restocking movements atomically
func (s *PurchaseService) Create(ctx context.Context, req CreatePurchaseRequest) (*trade.Purchase, error) {
	if len(req.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_PURCHASE", "Purchase requires at least one line")
	}

	var purchase *trade.Purchase
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		purchase, err = trade.NewPurchase(req.Code, req.SupplierID, req.Date, req.Notes)
		if err != nil {
			return err
		}

		for _, line := range req.Lines {
			if _, err := purchase.AddItem(line.ProductID, line.Quantity, line.Cost, line.Discount, line.ColorID); err != nil {
				return err
			}
		}

		if err := repos.PurchaseRepo().Save(ctx, purchase); err != nil {
			return err
		}

		movements, err := purchaseMovements(purchase)
		if err != nil {
			return err
		}
		return repos.MovementRepo().CreateBatch(ctx, movements)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// Update performs a full reset of the purchase: the owned movements and
// lines are removed and re-inserted from the request. No diffing.
func (s *PurchaseService) Update(ctx context.Context, purchaseID uuid.UUID, req CreatePurchaseRequest) (*trade.Purchase, error) {
	if len(req.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_PURCHASE", "Purchase requires at least one line")
	}

	var purchase *trade.Purchase
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		purchase, err = repos.PurchaseRepo().FindByID(ctx, purchaseID)
		if err != nil {
			return err
		}

		if err := repos.MovementRepo().DeleteBySource(ctx, inventory.PurchaseSource(purchase.ID)); err != nil {
			return err
		}
		if err := repos.PurchaseRepo().DeleteItems(ctx, purchase.ID); err != nil {
			return err
		}

		items := make([]trade.PurchaseItem, 0, len(req.Lines))
		for _, line := range req.Lines {
			item, err := trade.NewPurchaseItem(line.ProductID, line.Quantity, line.Cost, line.Discount, line.ColorID)
			if err != nil {
				return err
			}
			items = append(items, *item)
		}
		purchase.ReplaceItems(items)
		purchase.SupplierID = req.SupplierID
		purchase.Notes = req.Notes
		if !req.Date.IsZero() {
			purchase.Date = req.Date
		}

		if err := repos.PurchaseRepo().Save(ctx, purchase); err != nil {
			return err
		}

		movements, err := purchaseMovements(purchase)
		if err != nil {
			return err
		}
		return repos.MovementRepo().CreateBatch(ctx, movements)
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// Delete removes a purchase together with its lines and owned movements
func (s *PurchaseService) Delete(ctx context.Context, purchaseID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		purchase, err := repos.PurchaseRepo().FindByID(ctx, purchaseID)
		if err != nil {
			return err
		}

		if err := repos.MovementRepo().DeleteBySource(ctx, inventory.PurchaseSource(purchase.ID)); err != nil {
			return err
		}
		if err := repos.PurchaseRepo().DeleteItems(ctx, purchase.ID); err != nil {
			return err
		}
		return repos.PurchaseRepo().Delete(ctx, purchase.ID)
	})
}

// Get returns one purchase with its lines
func (s *PurchaseService) Get(ctx context.Context, purchaseID uuid.UUID) (*trade.Purchase, error) {
	var purchase *trade.Purchase
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		purchase, err = repos.PurchaseRepo().FindByID(ctx, purchaseID)
		return err
	})
	return purchase, err
}

// List returns purchases matching the filter
func (s *PurchaseService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[trade.Purchase], error) {
	var page shared.Paginated[trade.Purchase]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		items, err := repos.PurchaseRepo().FindAll(ctx, filter)
		if err != nil {
			return err
		}
		total, err := repos.PurchaseRepo().Count(ctx, filter)
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

// purchaseMovements builds one positive restocking movement per line,
// dated with the purchase date.
func purchaseMovements(purchase *trade.Purchase) ([]*inventory.ProductMovement, error) {
	source := inventory.PurchaseSource(purchase.ID)
	movements := make([]*inventory.ProductMovement, 0, len(purchase.Items))
	for _, item := range purchase.Items {
		movement, err := inventory.NewProductMovement(item.ProductID, item.ColorID, item.Quantity, source)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement.WithMovementDate(purchase.Date))
	}
	return movements, nil
}
