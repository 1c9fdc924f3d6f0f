package pricing

import (
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/vendora/storefront-backend/pkg/types"
)

func cartFixture() []CartLine {
	return []CartLine{
		{Product: gradualProduct(1000), Quantity: 7},
		{Product: gradualProduct(1000), Quantity: 4},
		{Product: Product{ID: uuid.New(), Name: "plain", RetailPrice: types.MustMoney("5"), Stock: 50}, Quantity: 2},
	}
}

func TestAggregateCartTotals(t *testing.T) {
	t.Parallel()

	result, err := AggregateCart(cartFixture(), retailWholesaleSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 7×9 + 4×10 + 2×5
	if !result.CartTotal.Equal(types.MustMoney("113")) {
		t.Fatalf("expected 113, got %s", result.CartTotal)
	}

	// Line 1: $1 saved per unit, 3 needed. Line 2: $1 saved, 1 needed to
	// reach the 5+ tier. Line 3: no next tier.
	if !result.PotentialSavings.Equal(types.MustMoney("4")) {
		t.Fatalf("expected savings 4, got %s", result.PotentialSavings)
	}

	if result.ItemsToNextTier == nil || *result.ItemsToNextTier != 1 {
		t.Fatalf("expected 1 item to next tier, got %+v", result.ItemsToNextTier)
	}
}

func TestAggregateCartOrderIndependent(t *testing.T) {
	t.Parallel()

	lines := cartFixture()
	base, err := AggregateCart(lines, retailWholesaleSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		shuffled := make([]CartLine, len(lines))
		copy(shuffled, lines)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := AggregateCart(shuffled, retailWholesaleSettings())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.CartTotal.Equal(base.CartTotal) || !got.PotentialSavings.Equal(base.PotentialSavings) {
			t.Fatalf("shuffle changed totals: %s/%s vs %s/%s", got.CartTotal, got.PotentialSavings, base.CartTotal, base.PotentialSavings)
		}
	}
}

func TestAggregateCartIdempotent(t *testing.T) {
	t.Parallel()

	lines := cartFixture()
	first, err := AggregateCart(lines, retailWholesaleSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := AggregateCart(lines, retailWholesaleSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !first.CartTotal.Equal(second.CartTotal) {
		t.Fatal("aggregation is not idempotent")
	}

	// The cart total is always the sum of freshly recomputed line totals.
	sum := types.ZeroMoney()
	for _, line := range second.Lines {
		sum = sum.Add(line.LineTotal)
	}
	if !sum.Equal(second.CartTotal) {
		t.Fatalf("cart total %s is not the sum of line totals %s", second.CartTotal, sum)
	}
}

func TestAggregateCartEmpty(t *testing.T) {
	t.Parallel()

	result, err := AggregateCart(nil, retailWholesaleSettings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.CartTotal.IsZero() || result.ItemsToNextTier != nil {
		t.Fatalf("expected empty aggregate, got %+v", result)
	}
}

func TestAggregateCartPropagatesLineErrors(t *testing.T) {
	t.Parallel()

	lines := []CartLine{{Product: Product{ID: uuid.New(), RetailPrice: types.MustMoney("5"), Stock: 10}, Quantity: 0}}
	if _, err := AggregateCart(lines, retailWholesaleSettings()); !IsInvalidQuantityError(err) {
		t.Fatalf("expected invalid quantity error, got %v", err)
	}
}
