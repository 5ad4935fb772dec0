package trade

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria/backend/internal/domain/inventory"
)

func TestPurchaseService_Create(t *testing.T) {
	env := newTestEnv()
	service := NewPurchaseService(env.scope)

	productA := uuid.New()
	productB := uuid.New()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	purchase, err := service.Create(context.Background(), CreatePurchaseRequest{
		Code:       "PC-0001",
		SupplierID: uuid.New(),
		Date:       date,
		Lines: []PurchaseLineRequest{
			{ProductID: productA, Quantity: decimal.NewFromInt(10), Cost: decimal.NewFromInt(25)},
			{ProductID: productB, Quantity: decimal.NewFromInt(3), Cost: decimal.NewFromInt(80)},
		},
	})
	require.NoError(t, err)
	require.Len(t, purchase.Items, 2)

	movements := env.movements.all()
	require.Len(t, movements, 2)
	byProduct := map[uuid.UUID]decimal.Decimal{}
	for _, movement := range movements {
		assert.Equal(t, inventory.SourceTypePurchase, movement.Source.Type)
		assert.Equal(t, purchase.ID, movement.Source.ID)
		assert.True(t, movement.MovementDate.Equal(date))
		byProduct[movement.ProductID] = movement.Quantity
	}
	assert.True(t, byProduct[productA].Equal(decimal.NewFromInt(10)))
	assert.True(t, byProduct[productB].Equal(decimal.NewFromInt(3)))
}

func TestPurchaseService_Create_RejectsEmptyLines(t *testing.T) {
	env := newTestEnv()
	service := NewPurchaseService(env.scope)

	_, err := service.Create(context.Background(), CreatePurchaseRequest{
		Code:       "PC-0002",
		SupplierID: uuid.New(),
	})
	require.Error(t, err)
	assert.Empty(t, env.movements.all())
}

func TestPurchaseService_Update_ResetsMovements(t *testing.T) {
	env := newTestEnv()
	service := NewPurchaseService(env.scope)

	oldProduct := uuid.New()
	newProduct := uuid.New()

	purchase, err := service.Create(context.Background(), CreatePurchaseRequest{
		Code:       "PC-0003",
		SupplierID: uuid.New(),
		Date:       time.Now(),
		Lines: []PurchaseLineRequest{
			{ProductID: oldProduct, Quantity: decimal.NewFromInt(5), Cost: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)
	require.Len(t, env.movements.all(), 1)

	updated, err := service.Update(context.Background(), purchase.ID, CreatePurchaseRequest{
		Code:       "PC-0003",
		SupplierID: purchase.SupplierID,
		Lines: []PurchaseLineRequest{
			{ProductID: newProduct, Quantity: decimal.NewFromInt(7), Cost: decimal.NewFromInt(40)},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Items, 1)

	// The old line's movement is gone. Only the rebuilt line remains.
	movements := env.movements.all()
	require.Len(t, movements, 1)
	assert.Equal(t, newProduct, movements[0].ProductID)
	assert.True(t, movements[0].Quantity.Equal(decimal.NewFromInt(7)))
	assert.Equal(t, purchase.ID, movements[0].Source.ID)
}

func TestPurchaseService_Delete(t *testing.T) {
	env := newTestEnv()
	service := NewPurchaseService(env.scope)

	purchase, err := service.Create(context.Background(), CreatePurchaseRequest{
		Code:       "PC-0004",
		SupplierID: uuid.New(),
		Date:       time.Now(),
		Lines: []PurchaseLineRequest{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(2), Cost: decimal.NewFromInt(60)},
		},
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), purchase.ID))

	_, err = env.purchases.FindByID(context.Background(), purchase.ID)
	require.Error(t, err)
	assert.Empty(t, env.movements.all(), "deleting a purchase removes its restocking movements")
}

func TestPurchaseService_Delete_NotFound(t *testing.T) {
	env := newTestEnv()
	service := NewPurchaseService(env.scope)

	err := service.Delete(context.Background(), uuid.New())
	require.Error(t, err)
}
