package pricing

import (
	"github.com/vendora/storefront-backend/pkg/types"
)

// CartAggregateResult sums the cart's line results. It is recomputed from the
// line set alone on every call: there is no running total to drift.
type CartAggregateResult struct {
	CartTotal types.Money

	// PotentialSavings sums, per line with a reachable next tier, the per-unit
	// saving times the quantity still needed. It is an upsell hint, not a
	// guaranteed discount.
	PotentialSavings types.Money

	// ItemsToNextTier is the smallest additional quantity across lines that
	// crosses any next tier, nil when no line has one.
	ItemsToNextTier *int

	Lines []PricingResult
}

// AggregateCart prices every line and folds the results into cart totals.
// Aggregation is order-independent: totals are sums and the global hint is a
// minimum, so permuting the lines cannot change the outcome.
func (c Calculator) AggregateCart(lines []CartLine, settings StoreSettings) (CartAggregateResult, error) {
	result := CartAggregateResult{
		CartTotal:        types.ZeroMoney(),
		PotentialSavings: types.ZeroMoney(),
		Lines:            make([]PricingResult, 0, len(lines)),
	}

	for _, line := range lines {
		priced, err := c.PriceCartLine(line, settings)
		if err != nil {
			return CartAggregateResult{}, err
		}
		result.Lines = append(result.Lines, priced)
		result.CartTotal = result.CartTotal.Add(priced.LineTotal)

		if priced.NextTier == nil {
			continue
		}
		needed := priced.QuantityNeededForNextTier
		result.PotentialSavings = result.PotentialSavings.Add(
			priced.PotentialSavingsPerUnit.Mul(types.NewMoneyFromInt(int64(needed))),
		)
		if result.ItemsToNextTier == nil || needed < *result.ItemsToNextTier {
			n := needed
			result.ItemsToNextTier = &n
		}
	}

	return result, nil
}

// AggregateCart aggregates with a silent, zero-value calculator.
func AggregateCart(lines []CartLine, settings StoreSettings) (CartAggregateResult, error) {
	return Calculator{}.AggregateCart(lines, settings)
}
