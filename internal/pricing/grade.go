package pricing

import (
	"fmt"

	"github.com/vendora/storefront-backend/pkg/types"
)

// GradePortion is one (size, units) pair of a bundle breakdown, kept for
// display and audit.
type GradePortion struct {
	Size  string
	Units int
}

// GradeQuote prices an assortment sold as a single purchasable unit. The
// per-unit price is always the product's base retail price: the grade itself
// is the unit of sale, so quantity tiering never applies inside it.
type GradeQuote struct {
	TotalUnits  int
	PerUnit     types.Money
	BundlePrice types.Money
	Breakdown   []GradePortion
}

// PriceGradeBundle computes the bundle price for one assortment of the grade.
// For flexible grades the caller must select an option explicitly; the
// calculator never guesses which assortment was intended.
func PriceGradeBundle(baseUnitPrice types.Money, cfg GradeConfig, selected *int) (GradeQuote, error) {
	sizes, units := cfg.Sizes, cfg.UnitsPerSize
	if cfg.Flexible() {
		if selected == nil {
			return GradeQuote{}, errConfiguration("flexible grade requires an explicit option selection", map[string]any{
				"options": len(cfg.Options),
			})
		}
		if *selected < 0 || *selected >= len(cfg.Options) {
			return GradeQuote{}, errConfiguration(fmt.Sprintf("grade option %d does not exist", *selected), map[string]any{
				"selected": *selected,
				"options":  len(cfg.Options),
			})
		}
		opt := cfg.Options[*selected]
		sizes, units = opt.Sizes, opt.UnitsPerSize
	}

	if len(sizes) != len(units) {
		return GradeQuote{}, errConfiguration("grade sizes and units are not parallel", map[string]any{
			"sizes": len(sizes),
			"units": len(units),
		})
	}

	total := 0
	breakdown := make([]GradePortion, 0, len(sizes))
	for i, size := range sizes {
		if units[i] < 0 {
			return GradeQuote{}, errConfiguration(fmt.Sprintf("grade size %q has negative units", size), map[string]any{
				"size":  size,
				"units": units[i],
			})
		}
		total += units[i]
		breakdown = append(breakdown, GradePortion{Size: size, Units: units[i]})
	}
	if total == 0 {
		return GradeQuote{}, errConfiguration("grade total units must be positive", nil)
	}
	if !baseUnitPrice.IsPositive() {
		return GradeQuote{}, errConfiguration("grade base unit price must be positive", map[string]any{
			"unit_price": baseUnitPrice.String(),
		})
	}

	return GradeQuote{
		TotalUnits:  total,
		PerUnit:     baseUnitPrice,
		BundlePrice: baseUnitPrice.Mul(types.NewMoneyFromInt(int64(total))),
		Breakdown:   breakdown,
	}, nil
}
