package pricing

import (
	"testing"

	"github.com/vendora/storefront-backend/pkg/types"
)

func TestPriceGradeBundleFixedAssortment(t *testing.T) {
	t.Parallel()

	cfg := GradeConfig{Sizes: []string{"38", "39", "40"}, UnitsPerSize: []int{2, 3, 1}}
	quote, err := PriceGradeBundle(types.MustMoney("50"), cfg, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalUnits != 6 {
		t.Fatalf("expected 6 total units, got %d", quote.TotalUnits)
	}
	if !quote.BundlePrice.Equal(types.MustMoney("300")) {
		t.Fatalf("expected bundle price 300, got %s", quote.BundlePrice)
	}
	if !quote.PerUnit.Equal(types.MustMoney("50")) {
		t.Fatalf("expected per-unit 50, got %s", quote.PerUnit)
	}
	if len(quote.Breakdown) != 3 || quote.Breakdown[1].Size != "39" || quote.Breakdown[1].Units != 3 {
		t.Fatalf("unexpected breakdown %+v", quote.Breakdown)
	}
}

func TestPriceGradeBundleZeroUnitsIsConfigError(t *testing.T) {
	t.Parallel()

	cfg := GradeConfig{Sizes: []string{"38", "39"}, UnitsPerSize: []int{0, 0}}
	_, err := PriceGradeBundle(types.MustMoney("50"), cfg, nil)
	if !IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestPriceGradeBundleMismatchedArrays(t *testing.T) {
	t.Parallel()

	cfg := GradeConfig{Sizes: []string{"38", "39"}, UnitsPerSize: []int{2}}
	if _, err := PriceGradeBundle(types.MustMoney("50"), cfg, nil); !IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestPriceGradeBundleFlexibleRequiresSelection(t *testing.T) {
	t.Parallel()

	cfg := GradeConfig{
		Options: []GradeOption{
			{Label: "runners", Sizes: []string{"40", "41"}, UnitsPerSize: []int{3, 3}},
			{Label: "mixed", Sizes: []string{"38", "42"}, UnitsPerSize: []int{2, 4}},
		},
	}

	if _, err := PriceGradeBundle(types.MustMoney("20"), cfg, nil); !IsConfigurationError(err) {
		t.Fatalf("expected error without a selection, got %v", err)
	}

	selected := 1
	quote, err := PriceGradeBundle(types.MustMoney("20"), cfg, &selected)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.TotalUnits != 6 {
		t.Fatalf("expected 6 units from the mixed option, got %d", quote.TotalUnits)
	}
	if !quote.BundlePrice.Equal(types.MustMoney("120")) {
		t.Fatalf("expected 120, got %s", quote.BundlePrice)
	}

	outOfRange := 7
	if _, err := PriceGradeBundle(types.MustMoney("20"), cfg, &outOfRange); !IsConfigurationError(err) {
		t.Fatalf("expected error for unknown option, got %v", err)
	}
}

func TestPriceGradeBundleNegativeUnits(t *testing.T) {
	t.Parallel()

	cfg := GradeConfig{Sizes: []string{"38"}, UnitsPerSize: []int{-2}}
	if _, err := PriceGradeBundle(types.MustMoney("50"), cfg, nil); !IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestPriceGradeBundleNonPositiveBasePrice(t *testing.T) {
	t.Parallel()

	cfg := GradeConfig{Sizes: []string{"38"}, UnitsPerSize: []int{2}}
	if _, err := PriceGradeBundle(types.ZeroMoney(), cfg, nil); !IsConfigurationError(err) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}
