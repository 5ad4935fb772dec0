package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers

func newTestMaterial(t *testing.T, price float64, typeNames ...string) *Material {
	t.Helper()
	material, err := NewMaterial(uuid.New(), decimal.NewFromFloat(price), "m")
	require.NoError(t, err)
	types := make([]MaterialType, 0, len(typeNames))
	for _, name := range typeNames {
		mt, err := NewMaterialType(name)
		require.NoError(t, err)
		types = append(types, *mt)
	}
	material.ReplaceTypes(types)
	return material
}

func newTestLabor(t *testing.T, dailyPay float64) *Labor {
	t.Helper()
	labor, err := NewLabor("carpentry-"+uuid.NewString(), decimal.NewFromFloat(dailyPay))
	require.NoError(t, err)
	return labor
}

// buildTestFurniture assembles a hydrated furniture with
// supplies=100, upholstery=80, labor=50 and the given markups.
func buildTestFurniture(t *testing.T, profit, paint, laborFab float64) *Furniture {
	t.Helper()
	furniture, err := NewFurniture(uuid.New())
	require.NoError(t, err)
	require.NoError(t, furniture.SetMarkups(
		decimal.NewFromFloat(profit),
		decimal.NewFromFloat(paint),
		decimal.NewFromFloat(laborFab),
	))

	wood := newTestMaterial(t, 25, MaterialTypeSupply)       // 4 x 25 = 100 supplies
	fabric := newTestMaterial(t, 40, MaterialTypeUpholstery) // 2 x 40 = 80 upholstery
	assembly := newTestLabor(t, 25)                          // 2 days x 25 = 50 labor

	furniture.Materials = []FurnitureMaterial{
		{FurnitureID: furniture.ID, MaterialID: wood.ID, Quantity: decimal.NewFromInt(4), Material: wood},
		{FurnitureID: furniture.ID, MaterialID: fabric.ID, Quantity: decimal.NewFromInt(2), Material: fabric},
	}
	furniture.Labors = []FurnitureLabor{
		{FurnitureID: furniture.ID, LaborID: assembly.ID, Days: decimal.NewFromInt(2), Labor: assembly},
	}
	return furniture
}

// ============================================
// Furniture pricing
// ============================================

func TestFurniture_CostBreakdown(t *testing.T) {
	furniture := buildTestFurniture(t, 20, 10, 5)

	costs := furniture.CostBreakdown()

	assert.True(t, costs.Supplies.Equal(decimal.NewFromInt(100)), "supplies = %s", costs.Supplies)
	assert.True(t, costs.Upholstery.Equal(decimal.NewFromInt(80)), "upholstery = %s", costs.Upholstery)
	assert.True(t, costs.Labor.Equal(decimal.NewFromInt(50)), "labor = %s", costs.Labor)
	assert.True(t, costs.Uncategorized.IsZero())
}

func TestFurniture_CostBreakdown_AccentedUpholsteryTag(t *testing.T) {
	furniture, err := NewFurniture(uuid.New())
	require.NoError(t, err)

	fabric := newTestMaterial(t, 80, "Tapicería")
	furniture.Materials = []FurnitureMaterial{
		{FurnitureID: furniture.ID, MaterialID: fabric.ID, Quantity: decimal.NewFromInt(1), Material: fabric},
	}

	costs := furniture.CostBreakdown()

	assert.True(t, costs.Upholstery.Equal(decimal.NewFromInt(80)), "upholstery = %s", costs.Upholstery)
	assert.True(t, costs.Uncategorized.IsZero(), "uncategorized = %s", costs.Uncategorized)
}

func TestFurniture_CalculatePrices(t *testing.T) {
	// supplies=100, labor=50, upholstery=80, profit=20, paint=10, labor_fab=5
	furniture := buildTestFurniture(t, 20, 10, 5)

	quote := furniture.CalculatePrices(decimal.Zero)

	// pvp_natural = (100+50+80*1.05) * 1.20 = 280.80
	// pvp_color   = ((100+50)*1.10 + 80*1.05) * 1.20 = 298.80
	assert.Equal(t, "280.80", quote.PVPNatural.StringFixed(2))
	assert.Equal(t, "298.80", quote.PVPColor.StringFixed(2))
}

func TestFurniture_CalculatePrices_WithDiscount(t *testing.T) {
	furniture := buildTestFurniture(t, 20, 10, 5)

	quote := furniture.CalculatePrices(decimal.NewFromInt(50))

	assert.Equal(t, "140.40", quote.PVPNatural.StringFixed(2))
	assert.Equal(t, "149.40", quote.PVPColor.StringFixed(2))
}

func TestFurniture_CalculatePrices_Idempotent(t *testing.T) {
	furniture := buildTestFurniture(t, 20, 10, 5)

	first := furniture.CalculatePrices(decimal.Zero)
	second := furniture.CalculatePrices(decimal.Zero)

	assert.True(t, first.PVPNatural.Equal(second.PVPNatural))
	assert.True(t, first.PVPColor.Equal(second.PVPColor))
	assert.True(t, first.Costs.Supplies.Equal(second.Costs.Supplies))
}

func TestFurniture_CalculatePrices_ColorAtLeastNaturalWhenPainted(t *testing.T) {
	furniture := buildTestFurniture(t, 20, 10, 5)

	quote := furniture.CalculatePrices(decimal.Zero)

	assert.True(t, quote.PVPColor.GreaterThanOrEqual(quote.PVPNatural),
		"pvp_color %s must be >= pvp_natural %s when paint_per > 0", quote.PVPColor, quote.PVPNatural)
}

func TestFurniture_CalculatePrices_ZeroMarkups(t *testing.T) {
	furniture := buildTestFurniture(t, 0, 0, 0)

	quote := furniture.CalculatePrices(decimal.Zero)

	// With all markups at zero both variants collapse to raw cost.
	assert.Equal(t, "230.00", quote.PVPNatural.StringFixed(2))
	assert.Equal(t, "230.00", quote.PVPColor.StringFixed(2))
}

func TestFurniture_CostBreakdown_UncategorizedBucket(t *testing.T) {
	furniture, err := NewFurniture(uuid.New())
	require.NoError(t, err)

	untyped := newTestMaterial(t, 30) // no classification tags
	furniture.Materials = []FurnitureMaterial{
		{FurnitureID: furniture.ID, MaterialID: untyped.ID, Quantity: decimal.NewFromInt(2), Material: untyped},
	}

	costs := furniture.CostBreakdown()
	quote := furniture.CalculatePrices(decimal.Zero)

	assert.True(t, costs.Supplies.IsZero())
	assert.True(t, costs.Upholstery.IsZero())
	assert.True(t, costs.Uncategorized.Equal(decimal.NewFromInt(60)))
	// Uncategorized cost is reported but never priced.
	assert.True(t, quote.PVPNatural.IsZero())
	assert.True(t, quote.PVPColor.IsZero())
}

func TestFurniture_CostBreakdown_UnloadedRelationsContributeZero(t *testing.T) {
	furniture, err := NewFurniture(uuid.New())
	require.NoError(t, err)

	furniture.Materials = []FurnitureMaterial{
		{FurnitureID: furniture.ID, MaterialID: uuid.New(), Quantity: decimal.NewFromInt(4)}, // Material not loaded
	}
	furniture.Labors = []FurnitureLabor{
		{FurnitureID: furniture.ID, LaborID: uuid.New(), Days: decimal.NewFromInt(2)}, // Labor not loaded
	}

	costs := furniture.CostBreakdown()

	assert.True(t, costs.Supplies.IsZero())
	assert.True(t, costs.Labor.IsZero())
}

// ============================================
// Set pricing
// ============================================

func TestSet_CalculatePrices_FlatReAggregation(t *testing.T) {
	// Component carries its own markups, which must NOT leak into the
	// bundle price: the set's percentages supersede them.
	component := buildTestFurniture(t, 50, 50, 50)

	set, err := NewSet(uuid.New())
	require.NoError(t, err)
	require.NoError(t, set.SetMarkups(
		decimal.NewFromInt(20),
		decimal.NewFromInt(10),
		decimal.NewFromInt(5),
	))
	set.Furnitures = []SetFurniture{
		{SetID: set.ID, FurnitureID: component.ID, Quantity: decimal.NewFromInt(1), Furniture: component},
	}

	quote := set.CalculatePrices(decimal.Zero)

	// Same raw costs as the furniture vector, priced with the set's markups.
	assert.Equal(t, "280.80", quote.PVPNatural.StringFixed(2))
	assert.Equal(t, "298.80", quote.PVPColor.StringFixed(2))
}

func TestSet_CostBreakdown_ScalesByComponentQuantity(t *testing.T) {
	component := buildTestFurniture(t, 20, 10, 5)

	set, err := NewSet(uuid.New())
	require.NoError(t, err)
	set.Furnitures = []SetFurniture{
		{SetID: set.ID, FurnitureID: component.ID, Quantity: decimal.NewFromInt(3), Furniture: component},
	}

	costs := set.CostBreakdown()

	assert.True(t, costs.Supplies.Equal(decimal.NewFromInt(300)))
	assert.True(t, costs.Upholstery.Equal(decimal.NewFromInt(240)))
	assert.True(t, costs.Labor.Equal(decimal.NewFromInt(150)))
}

func TestSet_CostBreakdown_UnloadedComponentContributesZero(t *testing.T) {
	set, err := NewSet(uuid.New())
	require.NoError(t, err)
	set.Furnitures = []SetFurniture{
		{SetID: set.ID, FurnitureID: uuid.New(), Quantity: decimal.NewFromInt(2)}, // Furniture not loaded
	}

	costs := set.CostBreakdown()

	assert.True(t, costs.Supplies.IsZero())
	assert.True(t, costs.Labor.IsZero())
}

func TestSet_CalculatePrices_Idempotent(t *testing.T) {
	component := buildTestFurniture(t, 20, 10, 5)

	set, err := NewSet(uuid.New())
	require.NoError(t, err)
	require.NoError(t, set.SetMarkups(decimal.NewFromInt(20), decimal.NewFromInt(10), decimal.NewFromInt(5)))
	set.Furnitures = []SetFurniture{
		{SetID: set.ID, FurnitureID: component.ID, Quantity: decimal.NewFromInt(2), Furniture: component},
	}

	first := set.CalculatePrices(decimal.NewFromInt(10))
	second := set.CalculatePrices(decimal.NewFromInt(10))

	assert.True(t, first.PVPNatural.Equal(second.PVPNatural))
	assert.True(t, first.PVPColor.Equal(second.PVPColor))
}
