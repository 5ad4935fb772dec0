package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// OrderStatus represents the status of a customer order
type OrderStatus string

const (
	// OrderStatusPendingPayment means the order awaits a payment submission
	OrderStatusPendingPayment OrderStatus = "pending_payment"
	// OrderStatusVerifyingPayment means a payment was submitted and awaits review
	OrderStatusVerifyingPayment OrderStatus = "verifying_payment"
	// OrderStatusCompleted means the payment was verified (terminal)
	OrderStatusCompleted OrderStatus = "completed"
	// OrderStatusCancelled means the order was cancelled before paying (terminal)
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of OrderStatus
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid returns true if the status is valid
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPendingPayment, OrderStatusVerifyingPayment, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal returns true if no further transition is allowed
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo checks if transitioning to the target status is allowed
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case OrderStatusPendingPayment:
		return target == OrderStatusVerifyingPayment || target == OrderStatusCancelled
	case OrderStatusVerifyingPayment:
		return target == OrderStatusCompleted || target == OrderStatusPendingPayment
	case OrderStatusCompleted, OrderStatusCancelled:
		return false
	}
	return false
}

// OrderItem is one product line of an order. Price and discount are
// snapshots taken at order time; ColorID is the chosen finish variant.
type OrderItem struct {
	shared.BaseEntity
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	ColorID   *uuid.UUID      `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (OrderItem) TableName() string {
	return "order_items"
}

// NewOrderItem creates a validated order line
func NewOrderItem(productID uuid.UUID, quantity, price, discount decimal.Decimal, colorID *uuid.UUID) (*OrderItem, error) {
	if productID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Order item requires a product")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Order item quantity must be positive")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Order item price cannot be negative")
	}
	if discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Order item discount must be between 0 and 100")
	}

	return &OrderItem{
		BaseEntity: shared.NewBaseEntity(),
		ProductID:  productID,
		Quantity:   quantity,
		Price:      price,
		Discount:   discount,
		ColorID:    colorID,
	}, nil
}

// LineTotal returns the item amount after discount
func (i *OrderItem) LineTotal() decimal.Decimal {
	gross := i.Price.Mul(i.Quantity)
	discount := gross.Mul(i.Discount).Div(decimal.NewFromInt(100))
	return gross.Sub(discount)
}

// Order is a customer order. The exchange rate is snapshotted at
// creation so invoice totals stay stable however the rate moves later.
type Order struct {
	shared.BaseAggregateRoot
	Code         string          `gorm:"type:varchar(20);not null;uniqueIndex"`
	Status       OrderStatus     `gorm:"type:varchar(30);not null;default:'pending_payment';index"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(18,6);not null"`
	Notes        string          `gorm:"type:text"`
	Items        []OrderItem     `gorm:"foreignKey:OrderID"`
	CompletedAt  *time.Time
	CancelledAt  *time.Time
}

// TableName returns the table name for GORM
func (Order) TableName() string {
	return "orders"
}

// NewOrder creates a new order in pending_payment
func NewOrder(code string, exchangeRate decimal.Decimal, notes string) (*Order, error) {
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Order code cannot be empty")
	}
	if len(code) > 20 {
		return nil, shared.NewDomainError("INVALID_CODE", "Order code cannot exceed 20 characters")
	}
	if !exchangeRate.IsPositive() {
		return nil, shared.NewDomainError("INVALID_EXCHANGE_RATE", "Order exchange rate must be positive")
	}

	order := &Order{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Status:            OrderStatusPendingPayment,
		ExchangeRate:      exchangeRate,
		Notes:             notes,
	}

	order.AddDomainEvent(NewOrderCreatedEvent(order))

	return order, nil
}

// AddItem appends a validated line to the order.
// Items can only be added before any payment is in flight.
func (o *Order) AddItem(productID uuid.UUID, quantity, price, discount decimal.Decimal, colorID *uuid.UUID) (*OrderItem, error) {
	if o.Status != OrderStatusPendingPayment {
		return nil, shared.NewDomainError("ORDER_NOT_EDITABLE", "Items can only be added while the order is pending payment")
	}

	item, err := NewOrderItem(productID, quantity, price, discount, colorID)
	if err != nil {
		return nil, err
	}
	item.OrderID = o.ID

	o.Items = append(o.Items, *item)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return item, nil
}

// Total returns the order amount after per-line discounts
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].LineTotal())
	}
	return total
}

// MarkVerifying transitions the order after a payment submission
func (o *Order) MarkVerifying() error {
	if !o.Status.CanTransitionTo(OrderStatusVerifyingPayment) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot move order to verifying_payment from "+o.Status.String())
	}

	o.Status = OrderStatusVerifyingPayment
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Complete transitions the order after its payment is verified
func (o *Order) Complete() error {
	if !o.Status.CanTransitionTo(OrderStatusCompleted) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot complete order from "+o.Status.String())
	}

	now := time.Now()
	o.Status = OrderStatusCompleted
	o.CompletedAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderCompletedEvent(o))

	return nil
}

// ReturnToPending transitions the order back after a payment rejection
func (o *Order) ReturnToPending() error {
	if !o.Status.CanTransitionTo(OrderStatusPendingPayment) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot return order to pending_payment from "+o.Status.String())
	}

	o.Status = OrderStatusPendingPayment
	o.UpdatedAt = time.Now()
	o.IncrementVersion()

	return nil
}

// Cancel cancels the order. Only a pending_payment order can be
// cancelled; anything later must go through deletion, which reverses
// the stock effect instead.
func (o *Order) Cancel() error {
	if o.Status != OrderStatusPendingPayment {
		return shared.NewDomainError("INVALID_STATE",
			"Only a pending_payment order can be cancelled, current status is "+o.Status.String())
	}

	now := time.Now()
	o.Status = OrderStatusCancelled
	o.CancelledAt = &now
	o.UpdatedAt = now
	o.IncrementVersion()

	o.AddDomainEvent(NewOrderCancelledEvent(o))

	return nil
}
