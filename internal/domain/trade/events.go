package trade

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeOrder   = "Order"
	AggregateTypePayment = "Payment"
)

// Event type constants
const (
	EventTypeOrderCreated    = "OrderCreated"
	EventTypeOrderCompleted  = "OrderCompleted"
	EventTypeOrderCancelled  = "OrderCancelled"
	EventTypePaymentVerified = "PaymentVerified"
)

// OrderCreatedEvent is raised when a new order is created
type OrderCreatedEvent struct {
	shared.BaseDomainEvent
	OrderID      uuid.UUID       `json:"order_id"`
	Code         string          `json:"code"`
	ExchangeRate decimal.Decimal `json:"exchange_rate"`
}

// NewOrderCreatedEvent creates a new OrderCreatedEvent
func NewOrderCreatedEvent(order *Order) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCreated, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		Code:            order.Code,
		ExchangeRate:    order.ExchangeRate,
	}
}

// EventType returns the event type name
func (e *OrderCreatedEvent) EventType() string {
	return EventTypeOrderCreated
}

// OrderCompletedEvent is raised when an order's payment is verified.
// The invoice generator reacts to this event.
type OrderCompletedEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID `json:"order_id"`
	Code    string    `json:"code"`
}

// NewOrderCompletedEvent creates a new OrderCompletedEvent
func NewOrderCompletedEvent(order *Order) *OrderCompletedEvent {
	return &OrderCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCompleted, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		Code:            order.Code,
	}
}

// EventType returns the event type name
func (e *OrderCompletedEvent) EventType() string {
	return EventTypeOrderCompleted
}

// OrderCancelledEvent is raised when a pending order is cancelled
type OrderCancelledEvent struct {
	shared.BaseDomainEvent
	OrderID uuid.UUID `json:"order_id"`
	Code    string    `json:"code"`
}

// NewOrderCancelledEvent creates a new OrderCancelledEvent
func NewOrderCancelledEvent(order *Order) *OrderCancelledEvent {
	return &OrderCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeOrderCancelled, AggregateTypeOrder, order.ID),
		OrderID:         order.ID,
		Code:            order.Code,
	}
}

// EventType returns the event type name
func (e *OrderCancelledEvent) EventType() string {
	return EventTypeOrderCancelled
}

// PaymentVerifiedEvent is raised when an operator approves a payment
type PaymentVerifiedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	OrderID   uuid.UUID       `json:"order_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewPaymentVerifiedEvent creates a new PaymentVerifiedEvent
func NewPaymentVerifiedEvent(payment *Payment) *PaymentVerifiedEvent {
	return &PaymentVerifiedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentVerified, AggregateTypePayment, payment.ID),
		PaymentID:       payment.ID,
		OrderID:         payment.OrderID,
		Amount:          payment.Amount,
	}
}

// EventType returns the event type name
func (e *PaymentVerifiedEvent) EventType() string {
	return EventTypePaymentVerified
}
