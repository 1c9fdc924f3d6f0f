package pricing

import (
	"github.com/vendora/storefront-backend/pkg/enums"
)

// ResolvePriceModel decides which pricing strategy applies to a product given
// the selected variation and the store's catalog flags. Resolution is pure
// and stable: callers invoke it on every keystroke and must always get the
// same answer for the same inputs.
//
// Priority order:
//  1. a grade config on the selected variation wins outright
//  2. a wholesale-exclusive store forces the single wholesale price
//  3. more than one wholesale breakpoint means gradual tiering
//  4. a single wholesale price plus minimum quantity means the simple model
//  5. everything else is plain retail
func ResolvePriceModel(product Product, variation *Variation, settings StoreSettings) enums.PriceModel {
	if variation != nil && variation.Grade != nil {
		return enums.PriceModelGradeBundle
	}
	if settings.WholesaleEnabled && !settings.RetailEnabled {
		return enums.PriceModelWholesaleOnly
	}
	if len(product.WholesaleTiers) > 1 {
		return enums.PriceModelGradualWholesale
	}
	if product.WholesalePrice != nil || len(product.WholesaleTiers) == 1 {
		return enums.PriceModelSimpleWholesale
	}
	return enums.PriceModelRetailOnly
}

// wholesaleUnitPrice returns the product's single wholesale price and its
// minimum quantity, falling back to a lone breakpoint when the simple pair is
// not configured. The second return is false when no wholesale price exists.
func wholesaleUnitPrice(product Product) (PriceTier, bool) {
	if product.WholesalePrice != nil {
		return PriceTier{
			Name:        "wholesale",
			MinQuantity: product.MinimumWholesaleQuantity(),
			UnitPrice:   *product.WholesalePrice,
		}, true
	}
	if len(product.WholesaleTiers) == 1 {
		return product.WholesaleTiers[0], true
	}
	return PriceTier{}, false
}
