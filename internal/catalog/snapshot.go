package catalog

import (
	"github.com/vendora/storefront-backend/internal/pricing"
	"github.com/vendora/storefront-backend/pkg/db/models"
	"github.com/vendora/storefront-backend/pkg/types"
)

// LineSnapshot is the fully resolved input for pricing one cart line.
type LineSnapshot struct {
	Settings  pricing.StoreSettings
	Product   pricing.Product
	Variation *pricing.Variation
}

// StoreSettings maps the tenant row onto the engine's enablement flags.
func StoreSettings(store *models.Store) pricing.StoreSettings {
	return pricing.StoreSettings{
		RetailEnabled:    store.RetailEnabled,
		WholesaleEnabled: store.WholesaleEnabled,
	}
}

// ProductSnapshot converts a persisted product into the engine's value type.
// Cents become decimal money here and never earlier.
func ProductSnapshot(p *models.Product) pricing.Product {
	out := pricing.Product{
		ID:                 p.ID,
		Name:               p.Name,
		RetailPrice:        types.NewMoneyFromCents(int64(p.RetailPriceCents)),
		MinWholesaleQty:    p.MinWholesaleQty,
		AllowNegativeStock: p.AllowNegativeStock,
	}

	if p.WholesalePriceCents != nil {
		m := types.NewMoneyFromCents(int64(*p.WholesalePriceCents))
		out.WholesalePrice = &m
	}

	if p.Inventory != nil {
		out.Stock = p.Inventory.SellableQty()
	}

	for _, tier := range p.PriceTiers {
		out.WholesaleTiers = append(out.WholesaleTiers, pricing.PriceTier{
			Name:        tier.Name,
			MinQuantity: tier.MinQty,
			UnitPrice:   types.NewMoneyFromCents(int64(tier.UnitPriceCents)),
		})
	}

	return out
}

// VariationSnapshot converts a persisted variation, including its grade
// configuration when present.
func VariationSnapshot(v *models.ProductVariation) pricing.Variation {
	out := pricing.Variation{
		ID:              v.ID,
		Stock:           v.Stock,
		PriceAdjustment: types.NewMoneyFromCents(int64(v.PriceAdjustmentCents)),
	}

	if grade := gradeSnapshot(v); grade != nil {
		out.Grade = grade
	}

	return out
}

func gradeSnapshot(v *models.ProductVariation) *pricing.GradeConfig {
	if len(v.GradeSizes) == 0 && len(v.GradeOptions) == 0 {
		return nil
	}

	cfg := &pricing.GradeConfig{
		Sizes:        []string(v.GradeSizes),
		UnitsPerSize: toInts(v.GradeUnits),
	}

	for _, opt := range v.GradeOptions {
		cfg.Options = append(cfg.Options, pricing.GradeOption{
			Label:        opt.Label,
			Sizes:        []string(opt.Sizes),
			UnitsPerSize: toInts(opt.Units),
		})
	}

	return cfg
}

func toInts(in []int64) []int {
	if len(in) == 0 {
		return nil
	}
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}
