package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria/backend/internal/domain/catalog"
)

func seedMaterialType(t *testing.T, env *testEnv, name string) *catalog.MaterialType {
	t.Helper()
	materialType, err := catalog.NewMaterialType(name)
	require.NoError(t, err)
	require.NoError(t, env.materialTypes.Save(context.Background(), materialType))
	return materialType
}

func TestProductService_CreateMaterial(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)
	supply := seedMaterialType(t, env, catalog.MaterialTypeSupply)

	material, err := service.CreateMaterial(context.Background(), CreateMaterialRequest{
		Code:    "mdf-18mm",
		Name:    "MDF board 18mm",
		Price:   decimal.NewFromInt(12),
		Unit:    "sheet",
		TypeIDs: []uuid.UUID{supply.ID},
	})
	require.NoError(t, err)
	require.NotNil(t, material)
	assert.True(t, material.IsSupply())

	product, err := env.products.FindByID(context.Background(), material.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "MDF-18MM", product.Code)
	assert.Equal(t, catalog.ProductKindMaterial, product.Kind)
	assert.False(t, product.Sell)
}

func TestProductService_CreateMaterial_DuplicateCode(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)

	req := CreateMaterialRequest{
		Code:  "PINE-2X4",
		Name:  "Pine stud",
		Price: decimal.NewFromInt(4),
		Unit:  "unit",
	}
	_, err := service.CreateMaterial(context.Background(), req)
	require.NoError(t, err)

	_, err = service.CreateMaterial(context.Background(), req)
	require.Error(t, err)
}

func TestProductService_CreateFurniture_UnknownMaterial(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)

	_, err := service.CreateFurniture(context.Background(), CreateFurnitureRequest{
		Code: "CHAIR-01",
		Name: "Dining chair",
		Materials: []RecipeMaterialRequest{
			{MaterialID: uuid.New(), Quantity: decimal.NewFromInt(2)},
		},
	})
	require.Error(t, err)

	_, err = env.products.FindByCode(context.Background(), "CHAIR-01")
	require.Error(t, err, "no product identity may survive a failed creation")
}

func TestProductService_CreateSet(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)

	furniture, err := service.CreateFurniture(context.Background(), CreateFurnitureRequest{
		Code:      "CHAIR-02",
		Name:      "Dining chair",
		ProfitPer: decimal.NewFromInt(20),
	})
	require.NoError(t, err)

	set, err := service.CreateSet(context.Background(), CreateSetRequest{
		Code: "DINING-SET",
		Name: "Dining set",
		Components: []SetComponentRequest{
			{FurnitureID: furniture.ID, Quantity: decimal.NewFromInt(4)},
		},
	})
	require.NoError(t, err)
	require.Len(t, set.Furnitures, 1)
	assert.True(t, set.Furnitures[0].Quantity.Equal(decimal.NewFromInt(4)))

	product, err := env.products.FindByID(context.Background(), set.ProductID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ProductKindSet, product.Kind)
}

func TestProductService_Update(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)

	material, err := service.CreateMaterial(context.Background(), CreateMaterialRequest{
		Code:  "OAK-PLANK",
		Name:  "Oak plank",
		Price: decimal.NewFromInt(30),
		Unit:  "unit",
	})
	require.NoError(t, err)

	sell := true
	discount := decimal.NewFromInt(15)
	product, err := service.Update(context.Background(), material.ProductID, UpdateProductRequest{
		Name:     "Oak plank premium",
		Sell:     &sell,
		Discount: &discount,
	})
	require.NoError(t, err)
	assert.Equal(t, "Oak plank premium", product.Name)
	assert.True(t, product.Sell)
	assert.True(t, product.Discount.Equal(discount))
}

func TestProductService_Update_RejectsDiscountOver100(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)

	material, err := service.CreateMaterial(context.Background(), CreateMaterialRequest{
		Code:  "GLUE-1L",
		Name:  "Wood glue",
		Price: decimal.NewFromInt(7),
		Unit:  "bottle",
	})
	require.NoError(t, err)

	discount := decimal.NewFromInt(120)
	_, err = service.Update(context.Background(), material.ProductID, UpdateProductRequest{
		Name:     "Wood glue",
		Discount: &discount,
	})
	require.Error(t, err)
}

func TestProductService_ReplaceColors(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)

	material, err := service.CreateMaterial(context.Background(), CreateMaterialRequest{
		Code:  "VARNISH-1L",
		Name:  "Varnish",
		Price: decimal.NewFromInt(9),
		Unit:  "bottle",
	})
	require.NoError(t, err)

	color, err := catalog.NewColor("Mahogany", "#4a2511", false)
	require.NoError(t, err)
	require.NoError(t, env.colors.Save(context.Background(), color))

	product, err := service.ReplaceColors(context.Background(), material.ProductID, []uuid.UUID{color.ID})
	require.NoError(t, err)
	assert.True(t, product.HasColor(color.ID))

	_, err = service.ReplaceColors(context.Background(), material.ProductID, []uuid.UUID{uuid.New()})
	require.Error(t, err)
}

func TestProductService_Delete_RemovesKindRow(t *testing.T) {
	env := newTestEnv()
	service := NewProductService(env.scope)

	material, err := service.CreateMaterial(context.Background(), CreateMaterialRequest{
		Code:  "SCREW-BOX",
		Name:  "Screw box",
		Price: decimal.NewFromInt(3),
		Unit:  "box",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), material.ProductID))

	_, err = env.products.FindByID(context.Background(), material.ProductID)
	require.Error(t, err)
	_, err = env.materials.FindByID(context.Background(), material.ID)
	require.Error(t, err)
}
