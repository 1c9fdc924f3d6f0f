package quotes

import (
	"context"

	"github.com/vendora/storefront-backend/internal/pricing"
	"github.com/vendora/storefront-backend/pkg/logger"
)

// logObserver surfaces engine decisions through the structured logger. It
// never mutates the computation.
type logObserver struct {
	ctx  context.Context
	logg *logger.Logger
}

func (o logObserver) TierSelected(line pricing.CartLine, tier pricing.PriceTier) {
	ctx := o.logg.WithFields(o.ctx, map[string]any{
		"product_id":   line.Product.ID.String(),
		"tier":         tier.Name,
		"tier_min_qty": tier.MinQuantity,
	})
	o.logg.Debug(ctx, "price tier selected")
}

func (o logObserver) QuantityClamped(line pricing.CartLine, requested, clamped int) {
	ctx := o.logg.WithFields(o.ctx, map[string]any{
		"product_id": line.Product.ID.String(),
		"requested":  requested,
		"clamped":    clamped,
	})
	o.logg.Warn(ctx, "cart line quantity clamped")
}

func (o logObserver) LineUnfulfillable(line pricing.CartLine, stock, minimum int) {
	ctx := o.logg.WithFields(o.ctx, map[string]any{
		"product_id": line.Product.ID.String(),
		"stock":      stock,
		"minimum":    minimum,
	})
	o.logg.Warn(ctx, "cart line unfulfillable")
}
