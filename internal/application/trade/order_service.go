package trade

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/trade"
)

// OrderLineRequest is one product line of an order creation request
type OrderLineRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Quantity  decimal.Decimal `json:"quantity" binding:"required"`
	Price     decimal.Decimal `json:"price" binding:"required"`
	Discount  decimal.Decimal `json:"discount"`
	ColorID   *uuid.UUID      `json:"color_id"`
}

// PaymentRequest is an optional payment submitted with the order
type PaymentRequest struct {
	Method    string          `json:"method" binding:"required"`
	Reference string          `json:"reference"`
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	ProofPath string          `json:"proof_path"`
}

// CreateOrderRequest carries everything needed to place an order
type CreateOrderRequest struct {
	ExchangeRate decimal.Decimal    `json:"exchange_rate" binding:"required"`
	Notes        string             `json:"notes"`
	Lines        []OrderLineRequest `json:"lines" binding:"required,min=1"`
	Payment      *PaymentRequest    `json:"payment"`
}

// OrderService orchestrates order placement, cancellation and deletion
// together with their ledger effects.
type OrderService struct {
	scope          TransactionScope
	productRepo    catalog.ProductRepository
	setRepo        catalog.SetRepository
	eventPublisher shared.EventPublisher
}

// NewOrderService creates a new order service
func NewOrderService(
	scope TransactionScope,
	productRepo catalog.ProductRepository,
	setRepo catalog.SetRepository,
) *OrderService {
	return &OrderService{
		scope:       scope,
		productRepo: productRepo,
		setRepo:     setRepo,
	}
}

// SetEventPublisher wires an optional publisher for domain events
func (s *OrderService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// orderLine is a validated line with its resolved product and, for set
// products, the hydrated bundle needed for BOM expansion.
type orderLine struct {
	request OrderLineRequest
	product *catalog.Product
	set     *catalog.Set
}

// Create places an order atomically: order row, item lines, the BOM
// expanded ledger movements and the optional payment either all commit
// or none do.
func (s *OrderService) Create(ctx context.Context, req CreateOrderRequest) (*trade.Order, error) {
	if len(req.Lines) == 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order requires at least one line")
	}

	// Resolve and validate every product before opening the transaction.
	lines := make([]orderLine, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		product, err := s.productRepo.FindByID(ctx, lineReq.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.Sell {
			return nil, shared.NewDomainError("PRODUCT_NOT_SELLABLE", "Product "+product.Code+" is not for sale")
		}
		if lineReq.ColorID != nil && !product.HasColor(*lineReq.ColorID) {
			return nil, shared.NewDomainError("INVALID_COLOR", "Product "+product.Code+" is not offered in the requested color")
		}

		line := orderLine{request: lineReq, product: product}
		if product.Kind == catalog.ProductKindSet {
			set, err := s.setRepo.FindByProductID(ctx, product.ID)
			if err != nil {
				return nil, err
			}
			line.set = set
		}
		lines = append(lines, line)
	}

	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		code, err := repos.OrderRepo().GenerateCode(ctx)
		if err != nil {
			return err
		}

		order, err = trade.NewOrder(code, req.ExchangeRate, req.Notes)
		if err != nil {
			return err
		}

		movements := make([]*inventory.ProductMovement, 0, len(lines))
		for _, line := range lines {
			item, err := order.AddItem(line.request.ProductID, line.request.Quantity,
				line.request.Price, line.request.Discount, line.request.ColorID)
			if err != nil {
				return err
			}

			lineMovements, err := expandLine(order.ID, line, item)
			if err != nil {
				return err
			}
			movements = append(movements, lineMovements...)
		}

		if req.Payment != nil {
			if err := order.MarkVerifying(); err != nil {
				return err
			}
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		if err := repos.MovementRepo().CreateBatch(ctx, movements); err != nil {
			return err
		}

		if req.Payment != nil {
			payment, err := trade.NewPayment(order.ID, req.Payment.Method, req.Payment.Reference,
				req.Payment.Amount, req.Payment.ProofPath)
			if err != nil {
				return err
			}
			if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(order)

	return order, nil
}

// expandLine turns one order line into its ledger movements. A set line
// consumes stock of every component furniture's product, scaled by the
// component quantity and carrying the line's chosen color. Any other
// kind consumes the line quantity directly.
func expandLine(orderID uuid.UUID, line orderLine, item *trade.OrderItem) ([]*inventory.ProductMovement, error) {
	source := inventory.OrderSource(orderID)

	if line.set == nil {
		movement, err := inventory.NewProductMovement(line.product.ID, item.ColorID, item.Quantity.Neg(), source)
		if err != nil {
			return nil, err
		}
		return []*inventory.ProductMovement{movement}, nil
	}

	movements := make([]*inventory.ProductMovement, 0, len(line.set.Furnitures))
	for _, component := range line.set.Furnitures {
		if component.Furniture == nil {
			return nil, shared.NewDomainError("SET_NOT_HYDRATED", "Set components must be loaded before expansion")
		}
		deduct := item.Quantity.Mul(component.Quantity).Neg()
		movement, err := inventory.NewProductMovement(component.Furniture.ProductID, item.ColorID, deduct, source)
		if err != nil {
			return nil, err
		}
		movements = append(movements, movement)
	}
	return movements, nil
}

// Cancel cancels a pending_payment order. The order's ledger movements
// are removed outright; the aggregation semantics of the stock view
// restore availability the moment the transaction commits.
func (s *OrderService) Cancel(ctx context.Context, orderID uuid.UUID) (*trade.Order, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := order.Cancel(); err != nil {
			return err
		}

		if err := repos.MovementRepo().DeleteBySource(ctx, inventory.OrderSource(order.ID)); err != nil {
			return err
		}

		return repos.OrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	s.publish(order)

	return order, nil
}

// Delete removes an order entirely. Unlike cancellation this reverses
// the stock effect additively: every movement the order still owns gets
// a positive counter-entry preserving its color, so the audit trail of
// the original consumption survives the order row.
func (s *OrderService) Delete(ctx context.Context, orderID uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		owned, err := repos.MovementRepo().FindBySource(ctx, inventory.OrderSource(order.ID))
		if err != nil {
			return err
		}

		reversalSource := inventory.AdjustmentSource(order.ID)
		reversals := make([]*inventory.ProductMovement, 0, len(owned))
		for i := range owned {
			reversal, err := owned[i].Reversal(reversalSource)
			if err != nil {
				return err
			}
			reversals = append(reversals, reversal)
		}

		if err := repos.MovementRepo().CreateBatch(ctx, reversals); err != nil {
			return err
		}

		return repos.OrderRepo().Delete(ctx, order.ID)
	})
}

// Get returns one order with its items
func (s *OrderService) Get(ctx context.Context, orderID uuid.UUID) (*trade.Order, error) {
	var order *trade.Order
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		order, err = repos.OrderRepo().FindByID(ctx, orderID)
		return err
	})
	return order, err
}

// List returns orders matching the filter
func (s *OrderService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[trade.Order], error) {
	var page shared.Paginated[trade.Order]
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		items, err := repos.OrderRepo().FindAll(ctx, filter)
		if err != nil {
			return err
		}
		total, err := repos.OrderRepo().Count(ctx, filter)
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

func (s *OrderService) publish(order *trade.Order) {
	if s.eventPublisher == nil || order == nil {
		return
	}
	s.eventPublisher.Publish(order.GetDomainEvents()...)
	order.ClearDomainEvents()
}
