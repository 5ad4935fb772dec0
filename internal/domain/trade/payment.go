package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/muebleria/backend/internal/domain/shared"
)

// PaymentStatus represents the review status of a submitted payment
type PaymentStatus string

const (
	// PaymentStatusPending means the payment proof awaits review
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusVerified means the payment was approved (terminal)
	PaymentStatusVerified PaymentStatus = "verified"
	// PaymentStatusRejected means the payment was turned down (terminal)
	PaymentStatusRejected PaymentStatus = "rejected"
)

// String returns the string representation of PaymentStatus
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid returns true if the status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusVerified, PaymentStatusRejected:
		return true
	}
	return false
}

// Payment is a customer's payment submission against an order, reviewed
// manually by an operator.
type Payment struct {
	shared.BaseAggregateRoot
	OrderID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Method     string          `gorm:"type:varchar(50);not null"`
	Reference  string          `gorm:"type:varchar(100)"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	ProofPath  string          `gorm:"type:varchar(255)"`
	Status     PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
	ReviewedAt *time.Time
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "payments"
}

// NewPayment creates a pending payment submission for an order
func NewPayment(orderID uuid.UUID, method, reference string, amount decimal.Decimal, proofPath string) (*Payment, error) {
	if orderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ORDER", "Payment requires an order")
	}
	if method == "" {
		return nil, shared.NewDomainError("INVALID_METHOD", "Payment method cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}

	return &Payment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OrderID:           orderID,
		Method:            method,
		Reference:         reference,
		Amount:            amount,
		ProofPath:         proofPath,
		Status:            PaymentStatusPending,
	}, nil
}

// Verify approves a pending payment
func (p *Payment) Verify() error {
	if p.Status != PaymentStatusPending {
		return shared.NewDomainError("INVALID_STATE",
			"Only a pending payment can be verified, current status is "+p.Status.String())
	}

	now := time.Now()
	p.Status = PaymentStatusVerified
	p.ReviewedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	p.AddDomainEvent(NewPaymentVerifiedEvent(p))

	return nil
}

// Reject turns down a pending payment
func (p *Payment) Reject() error {
	if p.Status != PaymentStatusPending {
		return shared.NewDomainError("INVALID_STATE",
			"Only a pending payment can be rejected, current status is "+p.Status.String())
	}

	now := time.Now()
	p.Status = PaymentStatusRejected
	p.ReviewedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	return nil
}
