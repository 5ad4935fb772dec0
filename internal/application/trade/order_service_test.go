package trade

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria/backend/internal/domain/catalog"
	"github.com/muebleria/backend/internal/domain/inventory"
	"github.com/muebleria/backend/internal/domain/trade"
)

func sellableProduct(t *testing.T, env *testEnv, code string, kind catalog.ProductKind) *catalog.Product {
	t.Helper()
	product, err := catalog.NewProduct(code, code, kind)
	require.NoError(t, err)
	product.SetSellable(true)
	env.products.add(product)
	return product
}

// setWithComponent registers a set product whose single component
// furniture requires the given quantity per set.
func setWithComponent(t *testing.T, env *testEnv, qtyPerSet int64) (setProduct, furnitureProduct *catalog.Product) {
	t.Helper()
	furnitureProduct = sellableProduct(t, env, "FURN-"+uuid.NewString()[:8], catalog.ProductKindFurniture)
	furniture, err := catalog.NewFurniture(furnitureProduct.ID)
	require.NoError(t, err)

	setProduct = sellableProduct(t, env, "SET-"+uuid.NewString()[:8], catalog.ProductKindSet)
	set, err := catalog.NewSet(setProduct.ID)
	require.NoError(t, err)
	set.Furnitures = []catalog.SetFurniture{
		{SetID: set.ID, FurnitureID: furniture.ID, Quantity: decimal.NewFromInt(qtyPerSet), Furniture: furniture},
	}
	env.sets.add(set)
	return setProduct, furnitureProduct
}

func orderService(env *testEnv) *OrderService {
	return NewOrderService(env.scope, env.products, env.sets)
}

func TestOrderService_Create_SetExpansion(t *testing.T) {
	env := newTestEnv()
	setProduct, furnitureProduct := setWithComponent(t, env, 3)

	// Ordering 2 sets whose component furniture is needed 3 times per
	// set must deduct exactly 6 units of the furniture's product.
	order, err := orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromFloat(36.5),
		Lines: []OrderLineRequest{
			{ProductID: setProduct.ID, Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(500)},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, trade.OrderStatusPendingPayment, order.Status)
	assert.NotEmpty(t, order.Code)

	movements := env.movements.all()
	require.Len(t, movements, 1)
	assert.Equal(t, furnitureProduct.ID, movements[0].ProductID)
	assert.True(t, movements[0].Quantity.Equal(decimal.NewFromInt(-6)),
		"expected -6, got %s", movements[0].Quantity)
	assert.Equal(t, inventory.SourceTypeOrder, movements[0].Source.Type)
	assert.Equal(t, order.ID, movements[0].Source.ID)
}

func TestOrderService_Create_PlainProductMovesOwnStock(t *testing.T) {
	env := newTestEnv()
	product := sellableProduct(t, env, "CHAIR-01", catalog.ProductKindFurniture)

	walnut, err := catalog.NewColor("Walnut", "#5c4033", false)
	require.NoError(t, err)
	product.ReplaceColors([]catalog.Color{*walnut})

	order, err := orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(4), Price: decimal.NewFromInt(120), ColorID: &walnut.ID},
		},
	})
	require.NoError(t, err)

	movements := env.movements.all()
	require.Len(t, movements, 1)
	assert.Equal(t, product.ID, movements[0].ProductID)
	assert.True(t, movements[0].Quantity.Equal(decimal.NewFromInt(-4)))
	require.NotNil(t, movements[0].ColorID)
	assert.Equal(t, walnut.ID, *movements[0].ColorID)
	assert.Equal(t, order.ID, movements[0].Source.ID)
}

func TestOrderService_Create_WithPaymentStartsVerifying(t *testing.T) {
	env := newTestEnv()
	product := sellableProduct(t, env, "TABLE-01", catalog.ProductKindFurniture)

	order, err := orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(200)},
		},
		Payment: &PaymentRequest{Method: "transfer", Amount: decimal.NewFromInt(200), ProofPath: "proofs/x.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, trade.OrderStatusVerifyingPayment, order.Status)

	payments, err := env.payments.FindByOrderID(context.Background(), order.ID)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, trade.PaymentStatusPending, payments[0].Status)
}

func TestOrderService_Create_RejectsUnknownColor(t *testing.T) {
	env := newTestEnv()
	product := sellableProduct(t, env, "BED-01", catalog.ProductKindFurniture)
	colorID := uuid.New()

	_, err := orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100), ColorID: &colorID},
		},
	})
	require.Error(t, err)
	assert.Empty(t, env.movements.all(), "no movement may exist after a rejected order")
}

func TestOrderService_Create_RejectsNonSellable(t *testing.T) {
	env := newTestEnv()
	product, err := catalog.NewProduct("HIDDEN-01", "Hidden", catalog.ProductKindFurniture)
	require.NoError(t, err)
	env.products.add(product)

	_, err = orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(100)},
		},
	})
	require.Error(t, err)
}

func TestOrderService_Cancel(t *testing.T) {
	env := newTestEnv()
	product := sellableProduct(t, env, "SOFA-01", catalog.ProductKindFurniture)
	service := orderService(env)

	order, err := service.Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(300)},
		},
	})
	require.NoError(t, err)
	require.Len(t, env.movements.all(), 1)

	cancelled, err := service.Cancel(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, trade.OrderStatusCancelled, cancelled.Status)
	assert.Empty(t, env.movements.all(), "cancellation removes the order's movements")
}

func TestOrderService_Cancel_NonPendingLeavesLedgerUntouched(t *testing.T) {
	env := newTestEnv()
	product := sellableProduct(t, env, "DESK-01", catalog.ProductKindFurniture)
	service := orderService(env)

	order, err := service.Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: product.ID, Quantity: decimal.NewFromInt(1), Price: decimal.NewFromInt(90)},
		},
		Payment: &PaymentRequest{Method: "transfer", Amount: decimal.NewFromInt(90)},
	})
	require.NoError(t, err)

	before := env.movements.all()
	_, err = service.Cancel(context.Background(), order.ID)
	require.Error(t, err)

	stored, findErr := env.orders.FindByID(context.Background(), order.ID)
	require.NoError(t, findErr)
	assert.Equal(t, trade.OrderStatusVerifyingPayment, stored.Status)
	assert.Equal(t, len(before), len(env.movements.all()))
}

func TestOrderService_Delete_CreatesCounterMovements(t *testing.T) {
	env := newTestEnv()
	setProduct, furnitureProduct := setWithComponent(t, env, 3)
	service := orderService(env)

	order, err := service.Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
		Lines: []OrderLineRequest{
			{ProductID: setProduct.ID, Quantity: decimal.NewFromInt(2), Price: decimal.NewFromInt(900)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), order.ID))

	_, err = env.orders.FindByID(context.Background(), order.ID)
	require.Error(t, err)

	// Original -6 plus a +6 counter-entry: the ledger nets to zero and
	// keeps the full history.
	movements := env.movements.all()
	require.Len(t, movements, 2)
	net := decimal.Zero
	for _, movement := range movements {
		assert.Equal(t, furnitureProduct.ID, movement.ProductID)
		net = net.Add(movement.Quantity)
	}
	assert.True(t, net.IsZero(), "ledger must net to zero after deletion, got %s", net)
}

func TestOrderService_Create_RejectsEmptyOrder(t *testing.T) {
	env := newTestEnv()
	_, err := orderService(env).Create(context.Background(), CreateOrderRequest{
		ExchangeRate: decimal.NewFromInt(36),
	})
	require.Error(t, err)
}
