package catalog

import (
	"github.com/shopspring/decimal"
)

// CostBreakdown holds the per-bucket cost subtotals of one unit.
// Materials tagged neither Insumo nor Tapicería land in Uncategorized;
// that bucket never enters the price formulas but is reported so callers
// can alert on unclassified recipe lines.
type CostBreakdown struct {
	Supplies      decimal.Decimal `json:"supplies"`
	Upholstery    decimal.Decimal `json:"upholstery"`
	Labor         decimal.Decimal `json:"labor"`
	Uncategorized decimal.Decimal `json:"uncategorized"`
}

// Add returns the breakdown with the other breakdown's buckets added in
func (c CostBreakdown) Add(other CostBreakdown) CostBreakdown {
	return CostBreakdown{
		Supplies:      c.Supplies.Add(other.Supplies),
		Upholstery:    c.Upholstery.Add(other.Upholstery),
		Labor:         c.Labor.Add(other.Labor),
		Uncategorized: c.Uncategorized.Add(other.Uncategorized),
	}
}

// Scale returns the breakdown with every bucket multiplied by the factor
func (c CostBreakdown) Scale(factor decimal.Decimal) CostBreakdown {
	return CostBreakdown{
		Supplies:      c.Supplies.Mul(factor),
		Upholstery:    c.Upholstery.Mul(factor),
		Labor:         c.Labor.Mul(factor),
		Uncategorized: c.Uncategorized.Mul(factor),
	}
}

// PriceQuote is the result of pricing one unit: the cost buckets plus the
// suggested retail price for the natural and the painted variant, both
// rounded to currency precision.
type PriceQuote struct {
	Costs      CostBreakdown   `json:"costs"`
	PVPNatural decimal.Decimal `json:"pvp_natural"`
	PVPColor   decimal.Decimal `json:"pvp_color"`
}

var hundred = decimal.NewFromInt(100)

// percentage factor 1 + p/100
func markupFactor(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Add(percent.Div(hundred))
}

// discount factor 1 - p/100
func discountFactor(percent decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(1).Sub(percent.Div(hundred))
}

// quote applies the two retail price formulas to the given cost buckets.
//
//	pvp_natural = (supplies + labor + upholstery*(1+labor_fab/100))
//	              * (1+profit/100) * (1-discount/100)
//	pvp_color   = ((supplies+labor)*(1+paint/100) + upholstery*(1+labor_fab/100))
//	              * (1+profit/100) * (1-discount/100)
//
// The paint surcharge only touches the structural base; upholstered parts
// carry their own fabrication surcharge in both variants, since painting
// does not re-touch fabric.
func quote(costs CostBreakdown, profitPer, paintPer, laborFabPer, discount decimal.Decimal) PriceQuote {
	upholstered := costs.Upholstery.Mul(markupFactor(laborFabPer))
	structural := costs.Supplies.Add(costs.Labor)

	natural := structural.Add(upholstered).
		Mul(markupFactor(profitPer)).
		Mul(discountFactor(discount))

	color := structural.Mul(markupFactor(paintPer)).Add(upholstered).
		Mul(markupFactor(profitPer)).
		Mul(discountFactor(discount))

	return PriceQuote{
		Costs: CostBreakdown{
			Supplies:      costs.Supplies.Round(2),
			Upholstery:    costs.Upholstery.Round(2),
			Labor:         costs.Labor.Round(2),
			Uncategorized: costs.Uncategorized.Round(2),
		},
		PVPNatural: natural.Round(2),
		PVPColor:   color.Round(2),
	}
}

// QuoteMaterial prices a material product: the unit price with the
// product discount applied, identical in both variants since nothing
// is manufactured or painted.
func QuoteMaterial(price, discount decimal.Decimal) PriceQuote {
	discounted := price.Mul(discountFactor(discount)).Round(2)
	return PriceQuote{
		PVPNatural: discounted,
		PVPColor:   discounted,
	}
}

// CostBreakdown computes the cost buckets of one furniture unit from its
// loaded recipe. Lines whose Material or Labor association is not loaded
// contribute zero; callers must hydrate the aggregate first.
func (f *Furniture) CostBreakdown() CostBreakdown {
	var costs CostBreakdown

	for _, line := range f.Materials {
		if line.Material == nil {
			continue
		}
		amount := line.Quantity.Mul(line.Material.Price)
		switch {
		case line.Material.IsSupply():
			costs.Supplies = costs.Supplies.Add(amount)
		case line.Material.IsUpholstery():
			costs.Upholstery = costs.Upholstery.Add(amount)
		default:
			costs.Uncategorized = costs.Uncategorized.Add(amount)
		}
	}

	for _, line := range f.Labors {
		if line.Labor == nil {
			continue
		}
		costs.Labor = costs.Labor.Add(line.Days.Mul(line.Labor.DailyPay))
	}

	return costs
}

// CalculatePrices prices one furniture unit. The discount percentage
// comes from the owning product. Pure function of the loaded recipe:
// repeated calls on an unchanged aggregate yield identical quotes.
func (f *Furniture) CalculatePrices(discount decimal.Decimal) PriceQuote {
	return quote(f.CostBreakdown(), f.ProfitPer, f.PaintPer, f.LaborFabPer, discount)
}

// CostBreakdown computes the cost buckets of one set by re-aggregating
// every component furniture's recipe scaled by the component quantity.
// Components whose Furniture association is not loaded contribute zero.
func (s *Set) CostBreakdown() CostBreakdown {
	var costs CostBreakdown

	for _, component := range s.Furnitures {
		if component.Furniture == nil {
			continue
		}
		costs = costs.Add(component.Furniture.CostBreakdown().Scale(component.Quantity))
	}

	return costs
}

// CalculatePrices prices one set unit. This is a flat re-aggregation of
// the component recipes under the set's own markup percentages, not a sum
// of the components' individual quotes: the bundle carries its own margin
// policy.
func (s *Set) CalculatePrices(discount decimal.Decimal) PriceQuote {
	return quote(s.CostBreakdown(), s.ProfitPer, s.PaintPer, s.LaborFabPer, discount)
}
