package trade

import (
	"context"

	"github.com/google/uuid"

	"github.com/muebleria/backend/internal/domain/shared"
	"github.com/muebleria/backend/internal/domain/trade"
)

// InvoiceGenerator is notified when an order completes so the invoice
// can be produced asynchronously. Implementations must be idempotent
// per order.
type InvoiceGenerator interface {
	Enqueue(orderID uuid.UUID)
}

// VerificationResult reports the outcome of a payment review
type VerificationResult struct {
	PaymentStatus trade.PaymentStatus `json:"payment_status"`
	OrderStatus   trade.OrderStatus   `json:"order_status"`
}

// PaymentService handles payment submission and manual review
type PaymentService struct {
	scope            TransactionScope
	invoiceGenerator InvoiceGenerator
	eventPublisher   shared.EventPublisher
}

// NewPaymentService creates a new payment service
func NewPaymentService(scope TransactionScope) *PaymentService {
	return &PaymentService{scope: scope}
}

// SetInvoiceGenerator wires the asynchronous invoice generator
func (s *PaymentService) SetInvoiceGenerator(generator InvoiceGenerator) {
	s.invoiceGenerator = generator
}

// SetEventPublisher wires an optional publisher for domain events
func (s *PaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Submit records a payment against a pending order and moves the order
// into verification.
func (s *PaymentService) Submit(ctx context.Context, orderID uuid.UUID, req PaymentRequest) (*trade.Payment, error) {
	var payment *trade.Payment
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		order, err := repos.OrderRepo().FindByID(ctx, orderID)
		if err != nil {
			return err
		}

		if err := order.MarkVerifying(); err != nil {
			return err
		}

		payment, err = trade.NewPayment(order.ID, req.Method, req.Reference, req.Amount, req.ProofPath)
		if err != nil {
			return err
		}

		if err := repos.OrderRepo().Save(ctx, order); err != nil {
			return err
		}
		return repos.PaymentRepo().Save(ctx, payment)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// Verify reviews a pending payment. Approval completes the order and
// hands it to the invoice generator; rejection sends the order back to
// pending_payment so the customer can retry.
func (s *PaymentService) Verify(ctx context.Context, paymentID uuid.UUID, approved bool) (*VerificationResult, error) {
	var payment *trade.Payment
	var order *trade.Order

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		payment, err = repos.PaymentRepo().FindByID(ctx, paymentID)
		if err != nil {
			return err
		}
		order, err = repos.OrderRepo().FindByID(ctx, payment.OrderID)
		if err != nil {
			return err
		}

		if approved {
			if err := payment.Verify(); err != nil {
				return err
			}
			if err := order.Complete(); err != nil {
				return err
			}
		} else {
			if err := payment.Reject(); err != nil {
				return err
			}
			if err := order.ReturnToPending(); err != nil {
				return err
			}
		}

		if err := repos.PaymentRepo().Save(ctx, payment); err != nil {
			return err
		}
		return repos.OrderRepo().Save(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	if approved && s.invoiceGenerator != nil {
		s.invoiceGenerator.Enqueue(order.ID)
	}
	if s.eventPublisher != nil {
		s.eventPublisher.Publish(payment.GetDomainEvents()...)
		s.eventPublisher.Publish(order.GetDomainEvents()...)
		payment.ClearDomainEvents()
		order.ClearDomainEvents()
	}

	return &VerificationResult{
		PaymentStatus: payment.Status,
		OrderStatus:   order.Status,
	}, nil
}

// ListForOrder returns the payments submitted against an order
func (s *PaymentService) ListForOrder(ctx context.Context, orderID uuid.UUID) ([]trade.Payment, error) {
	var payments []trade.Payment
	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		var err error
		payments, err = repos.PaymentRepo().FindByOrderID(ctx, orderID)
		return err
	})
	return payments, err
}
