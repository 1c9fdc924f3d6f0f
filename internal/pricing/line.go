package pricing

import (
	"github.com/google/uuid"

	"github.com/vendora/storefront-backend/pkg/enums"
	"github.com/vendora/storefront-backend/pkg/types"
)

// PricingResult is the complete pricing outcome for one cart line. It is
// derived on demand and never persisted: recomputing it from the same inputs
// always yields an identical value.
type PricingResult struct {
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	PriceModel  enums.PriceModel

	// UnitPrice includes the per-variation price adjustment; the tier fields
	// report the schedule as configured. LineTotal is UnitPrice times
	// ClampedQuantity, rounded to currency precision exactly once.
	UnitPrice types.Money
	LineTotal types.Money

	CurrentTier               *PriceTier
	NextTier                  *PriceTier
	QuantityNeededForNextTier int
	PotentialSavingsPerUnit   types.Money

	IsGradeBundle bool
	Grade         *GradeQuote

	ClampedQuantity int
	WasClamped      bool
	Fulfillable     bool
}

// PriceCartLine resolves the price model for a line and produces its
// PricingResult. The quantity actually priced is the clamped quantity: the
// active tier always matches what the buyer would be charged for.
func (c Calculator) PriceCartLine(line CartLine, settings StoreSettings) (PricingResult, error) {
	if line.Quantity < 1 {
		return PricingResult{}, errInvalidQuantity(line.Quantity)
	}

	model := ResolvePriceModel(line.Product, line.Variation, settings)
	if model == enums.PriceModelGradeBundle {
		return c.priceGradeLine(line, model)
	}

	schedule, minimum, err := scheduleForModel(line.Product, model)
	if err != nil {
		return PricingResult{}, err
	}

	result := PricingResult{
		ProductID:   line.Product.ID,
		VariationID: variationID(line.Variation),
		PriceModel:  model,
	}

	clamp := clampQuantity(line.Quantity, line.stockSnapshot(), line.Product.AllowNegativeStock, minimum)
	result.ClampedQuantity = clamp.ClampedQuantity
	result.WasClamped = clamp.WasClamped
	result.Fulfillable = clamp.Fulfillable
	if clamp.WasClamped {
		c.observer().QuantityClamped(line, line.Quantity, clamp.ClampedQuantity)
	}
	if !clamp.Fulfillable {
		c.observer().LineUnfulfillable(line, line.stockSnapshot(), minimum)
	}

	eval, err := schedule.Evaluate(result.ClampedQuantity)
	if err != nil {
		return PricingResult{}, err
	}
	c.observer().TierSelected(line, eval.Current)

	current := eval.Current
	result.CurrentTier = &current
	result.NextTier = eval.Next
	result.QuantityNeededForNextTier = eval.QuantityNeeded
	result.PotentialSavingsPerUnit = eval.SavingsPerUnit

	result.UnitPrice = current.UnitPrice
	if line.Variation != nil {
		result.UnitPrice = result.UnitPrice.Add(line.Variation.PriceAdjustment)
	}
	result.LineTotal = types.RoundCurrency(result.UnitPrice.Mul(types.NewMoneyFromInt(int64(result.ClampedQuantity))))

	return result, nil
}

func (c Calculator) priceGradeLine(line CartLine, model enums.PriceModel) (PricingResult, error) {
	quote, err := PriceGradeBundle(line.Product.RetailPrice, *line.Variation.Grade, line.GradeOption)
	if err != nil {
		return PricingResult{}, err
	}

	// A grade is bought whole: the clamp counts bundles, not units.
	clamp := clampQuantity(line.Quantity, line.stockSnapshot(), line.Product.AllowNegativeStock, 1)
	if clamp.WasClamped {
		c.observer().QuantityClamped(line, line.Quantity, clamp.ClampedQuantity)
	}
	if !clamp.Fulfillable {
		c.observer().LineUnfulfillable(line, line.stockSnapshot(), 1)
	}

	return PricingResult{
		ProductID:       line.Product.ID,
		VariationID:     variationID(line.Variation),
		PriceModel:      model,
		UnitPrice:       quote.BundlePrice,
		LineTotal:       types.RoundCurrency(quote.BundlePrice.Mul(types.NewMoneyFromInt(int64(clamp.ClampedQuantity)))),
		IsGradeBundle:   true,
		Grade:           &quote,
		ClampedQuantity: clamp.ClampedQuantity,
		WasClamped:      clamp.WasClamped,
		Fulfillable:     clamp.Fulfillable,
	}, nil
}

// scheduleForModel builds the tier schedule a non-grade model evaluates,
// along with the minimum purchase quantity the clamp enforces.
func scheduleForModel(product Product, model enums.PriceModel) (TierSchedule, int, error) {
	switch model {
	case enums.PriceModelRetailOnly:
		return TierSchedule{Tiers: []PriceTier{{Name: "retail", MinQuantity: 1, UnitPrice: product.RetailPrice}}}, 1, nil

	case enums.PriceModelWholesaleOnly:
		tier, ok := wholesaleUnitPrice(product)
		if !ok {
			return TierSchedule{}, 0, errConfiguration("wholesale-only model requires a wholesale price", map[string]any{
				"product": product.Name,
			})
		}
		schedule := TierSchedule{Tiers: []PriceTier{{Name: tier.Name, MinQuantity: 1, UnitPrice: tier.UnitPrice}}}
		return schedule, tier.MinQuantity, nil

	case enums.PriceModelSimpleWholesale:
		tier, ok := wholesaleUnitPrice(product)
		if !ok {
			return TierSchedule{}, 0, errConfiguration("simple wholesale model requires a wholesale price", map[string]any{
				"product": product.Name,
			})
		}
		if tier.MinQuantity <= 1 {
			// Wholesale applies from the first unit; retail never shows.
			schedule := TierSchedule{Tiers: []PriceTier{{Name: tier.Name, MinQuantity: 1, UnitPrice: tier.UnitPrice}}}
			return schedule, 1, nil
		}
		schedule := TierSchedule{Tiers: []PriceTier{
			{Name: "retail", MinQuantity: 1, UnitPrice: product.RetailPrice},
			tier,
		}}
		return schedule, 1, nil

	case enums.PriceModelGradualWholesale:
		tiers := make([]PriceTier, 0, len(product.WholesaleTiers)+1)
		tiers = append(tiers, PriceTier{Name: "retail", MinQuantity: 1, UnitPrice: product.RetailPrice})
		tiers = append(tiers, product.WholesaleTiers...)
		return TierSchedule{Tiers: tiers}, 1, nil
	}

	return TierSchedule{}, 0, errConfiguration("unsupported price model", map[string]any{"model": model.String()})
}

func variationID(v *Variation) *uuid.UUID {
	if v == nil {
		return nil
	}
	id := v.ID
	return &id
}

// PriceCartLine prices a line with a silent, zero-value calculator.
func PriceCartLine(line CartLine, settings StoreSettings) (PricingResult, error) {
	return Calculator{}.PriceCartLine(line, settings)
}
