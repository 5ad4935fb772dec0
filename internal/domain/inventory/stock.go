package inventory

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStock is one row of the derived stock view: the summed movement
// quantity for a (product, color) pair. It is computed fresh from the
// ledger on every read and never persisted or cached.
type ProductStock struct {
	ProductID   uuid.UUID       `json:"product_id"`
	ProductCode string          `json:"product_code"`
	ColorID     *uuid.UUID      `json:"color_id,omitempty"`
	ColorName   string          `json:"color_name"`
	ColorHex    string          `json:"color_hex"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// ColorAvailability reports how many units of a bundle can be built in a
// given finish.
type ColorAvailability struct {
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	Stock int64  `json:"stock"`
}

// ComponentRequirement is one bundle component as seen by the
// availability calculator: how many units each built set requires and
// the component's current per-color stock rows.
type ComponentRequirement struct {
	RequiredPerSet decimal.Decimal
	Stocks         []ProductStock
}

// AvailableColors performs the bottleneck analysis for a bundle: for
// every color seen across the components' stock rows, the buildable
// quantity is the minimum over all components of
// floor(component stock in that color / required per set). Components
// with a zero requirement do not constrain. Colors whose bottleneck is
// zero are omitted rather than reported as zero.
func AvailableColors(components []ComponentRequirement) []ColorAvailability {
	if len(components) == 0 {
		return nil
	}

	type colorInfo struct {
		name string
		hex  string
	}
	seen := make(map[string]colorInfo)
	for _, component := range components {
		for _, stock := range component.Stocks {
			if stock.ColorName == "" {
				continue
			}
			if _, ok := seen[stock.ColorName]; !ok {
				seen[stock.ColorName] = colorInfo{name: stock.ColorName, hex: stock.ColorHex}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]ColorAvailability, 0, len(names))
	for _, name := range names {
		bottleneck := int64(-1) // unbounded until a component constrains

		for _, component := range components {
			if !component.RequiredPerSet.IsPositive() {
				continue
			}

			available := decimal.Zero
			for _, stock := range component.Stocks {
				if stock.ColorName == name {
					available = stock.Quantity
					break
				}
			}

			possible := available.Div(component.RequiredPerSet).Floor().IntPart()
			if possible < 0 {
				possible = 0
			}
			if bottleneck < 0 || possible < bottleneck {
				bottleneck = possible
			}
		}

		if bottleneck > 0 {
			result = append(result, ColorAvailability{
				Name:  name,
				Hex:   seen[name].hex,
				Stock: bottleneck,
			})
		}
	}

	return result
}
