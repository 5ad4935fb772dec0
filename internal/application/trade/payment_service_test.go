package trade

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/trade"
)

type recordingGenerator struct {
	mu     sync.Mutex
	orders []uuid.UUID
}

func (g *recordingGenerator) Enqueue(orderID uuid.UUID) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.orders = append(g.orders, orderID)
}

func submitTestOrder(t *testing.T, env *testEnv) (*trade.Order, *trade.Payment) {
	t.Helper()
	product := sellableProduct(t, env, "WARDROBE-"+uuid.NewString()[:8], catalog.ProductKindFurniture)

	order, err := orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(400)},
		},
		Payment: &PaymentRequest{Method: "transfer", Reference: "REF-9", Amount: decimal.NewFromInt(400)},
	})
	require.NoError(t, err)

	payments, err := env.payments.FindByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)

	payment, err := env.payments.FindByID(context.Background(), payments[0].ID)
	require.NoError(t, err)
	return order, payment
}

func TestPaymentService_Verify_Approved(t *testing.T) {
	env := newTestEnv()
	generator := &recordingGenerator{}
	service := NewPaymentService(env.scope)
	service.SetInvoiceGenerator(generator)

	order, payment := submitTestOrder(t, env)

	result, err := service.Verify(context.Background(), payment.ID, true)
	require.NoError(t, err)

	assert.Equal(t, trade.PaymentStatusVerified, result.PaymentStatus)
	assert.Equal(t, trade.OrderStatusCompleted, result.OrderStatus)

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusCompleted, stored.Status)

	require.Len(t, generator.orders, 1)
	assert.Equal(t, order.ID, generator.orders[0])
}

func TestPaymentService_Verify_Rejected(t *testing.T) {
	env := newTestEnv()
	generator := &recordingGenerator{}
	service := NewPaymentService(env.scope)
	service.SetInvoiceGenerator(generator)

	order, payment := submitTestOrder(t, env)

	result, err := service.Verify(context.Background(), payment.ID, false)
	require.NoError(t, err)

	assert.Equal(t, trade.PaymentStatusRejected, result.PaymentStatus)
	assert.Equal(t, trade.OrderStatusPendingPayment, result.OrderStatus)

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusPendingPayment, stored.Status)

	assert.Empty(t, generator.orders, "rejection must not trigger invoicing")
}

func TestPaymentService_Verify_AlreadyReviewed(t *testing.T) {
	env := newTestEnv()
	service := NewPaymentService(env.scope)

	_, payment := submitTestOrder(t, env)

	_, err := service.Verify(context.Background(), payment.ID, true)
	require.NoError(t, err)

	_, err = service.Verify(context.Background(), payment.ID, true)
	require.Error(t, err)
}

func TestPaymentService_Submit(t *testing.T) {
	env := newTestEnv()
	product := sellableProduct(t, env, "SHELF-01", catalog.ProductKindFurniture)

	order, err := orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(150)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, trade.OrderStatusPendingPayment, order.Status)

	service := NewPaymentService(env.scope)
	payment, err := service.Submit(context.Background(), order.ID, PaymentRequest{
		Method: "zelle",
		Amount: decimal.NewFromInt(150),
	})
	require.NoError(t, err)
	assert.Equal(t, trade.PaymentStatusPending, payment.Status)

	stored, err := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusVerifyingPayment, stored.Status)

	// A second submission while verifying is rejected.
	_, err = service.Submit(context.Background(), order.ID, PaymentRequest{
		Method: "zelle",
		Amount: decimal.NewFromInt(150),
	})
	require.Error(t, err)
}
