// Package pricing implements the tiered, quantity-based pricing and
// grade-bundling calculation engine. Every function is a pure mapping from
// explicit inputs to outputs: no I/O, no clocks, no shared mutable state.
// Callers pass a stock snapshot in; the engine never re-fetches it.
package pricing

import (
	"github.com/google/uuid"

	"github.com/vendora/storefront-backend/pkg/types"
)

// StoreSettings carries the store-level catalog enablement flags consumed by
// model resolution.
type StoreSettings struct {
	RetailEnabled    bool
	WholesaleEnabled bool
}

// Product is the engine's view of a catalog product: identity, price
// configuration, and the stock snapshot supplied by the caller.
type Product struct {
	ID          uuid.UUID
	Name        string
	RetailPrice types.Money

	// WholesalePrice together with MinWholesaleQty configures the simple
	// two-tier model. WholesaleTiers configures gradual multi-tier pricing;
	// when it holds more than one breakpoint it takes precedence.
	WholesalePrice  *types.Money
	MinWholesaleQty int
	WholesaleTiers  []PriceTier

	Stock              int
	AllowNegativeStock bool
}

// MinimumWholesaleQuantity returns the configured floor, defaulting to 1.
func (p Product) MinimumWholesaleQuantity() int {
	if p.MinWholesaleQty < 1 {
		return 1
	}
	return p.MinWholesaleQty
}

// Variation is a purchasable variant of a product. Stock and price adjustment
// are per-variation; a grade config turns the variation into a bundle.
type Variation struct {
	ID              uuid.UUID
	Stock           int
	PriceAdjustment types.Money
	Grade           *GradeConfig
}

// GradeConfig describes a fixed assortment sold as one purchasable unit.
// Sizes and UnitsPerSize are parallel arrays. A flexible grade additionally
// carries alternative assortments; the caller picks one explicitly.
type GradeConfig struct {
	Sizes        []string
	UnitsPerSize []int
	Options      []GradeOption
}

// GradeOption is one alternative assortment of a flexible grade.
type GradeOption struct {
	Label        string
	Sizes        []string
	UnitsPerSize []int
}

// Flexible reports whether the grade offers alternative assortments.
func (g GradeConfig) Flexible() bool {
	return len(g.Options) > 0
}

// CartLine references a product, an optional variation, and the requested
// quantity. For flexible grades GradeOption selects the assortment by index.
type CartLine struct {
	Product     Product
	Variation   *Variation
	Quantity    int
	GradeOption *int
}

// stockSnapshot returns the stock figure the clamp should honor: the
// variation's when one is selected, the product's otherwise.
func (l CartLine) stockSnapshot() int {
	if l.Variation != nil {
		return l.Variation.Stock
	}
	return l.Product.Stock
}
