package pricing

import (
	"github.com/google/uuid"

	enginepricing "github.com/vendora/storefront-backend/internal/pricing"
	"github.com/vendora/storefront-backend/pkg/enums"
)

// TierView is a price tier as exposed over the wire. Money renders as a
// decimal string so clients never touch binary floats.
type TierView struct {
	Name        string `json:"name"`
	MinQuantity int    `json:"min_quantity"`
	UnitPrice   string `json:"unit_price"`
}

// GradePortionView is one size/units pair of a grade breakdown.
type GradePortionView struct {
	Size  string `json:"size"`
	Units int    `json:"units"`
}

// GradeView reports the computed bundle quote.
type GradeView struct {
	TotalUnits  int                `json:"total_units"`
	PerUnit     string             `json:"per_unit"`
	BundlePrice string             `json:"bundle_price"`
	Breakdown   []GradePortionView `json:"breakdown"`
}

// LineQuoteView is the full pricing outcome for one line.
type LineQuoteView struct {
	ProductID   uuid.UUID  `json:"product_id"`
	VariationID *uuid.UUID `json:"variation_id,omitempty"`
	PriceModel  string     `json:"price_model"`

	UnitPrice string `json:"unit_price"`
	LineTotal string `json:"line_total"`

	CurrentTier               *TierView `json:"current_tier,omitempty"`
	NextTier                  *TierView `json:"next_tier,omitempty"`
	QuantityNeededForNextTier int       `json:"quantity_needed_for_next_tier,omitempty"`
	PotentialSavingsPerUnit   string    `json:"potential_savings_per_unit,omitempty"`

	IsGradeBundle bool       `json:"is_grade_bundle"`
	Grade         *GradeView `json:"grade,omitempty"`

	ClampedQuantity int  `json:"clamped_quantity"`
	WasClamped      bool `json:"was_clamped"`
	Fulfillable     bool `json:"fulfillable"`

	Warnings []enums.LineWarningType `json:"warnings,omitempty"`
}

// CartQuoteView is the aggregate response.
type CartQuoteView struct {
	CartTotal        string          `json:"cart_total"`
	PotentialSavings string          `json:"potential_savings"`
	ItemsToNextTier  *int            `json:"items_to_next_tier,omitempty"`
	Lines            []LineQuoteView `json:"lines"`
}

func newTierView(tier *enginepricing.PriceTier) *TierView {
	if tier == nil {
		return nil
	}
	return &TierView{
		Name:        tier.Name,
		MinQuantity: tier.MinQuantity,
		UnitPrice:   tier.UnitPrice.String(),
	}
}

func newGradeView(grade *enginepricing.GradeQuote) *GradeView {
	if grade == nil {
		return nil
	}
	view := &GradeView{
		TotalUnits:  grade.TotalUnits,
		PerUnit:     grade.PerUnit.String(),
		BundlePrice: grade.BundlePrice.String(),
	}
	for _, portion := range grade.Breakdown {
		view.Breakdown = append(view.Breakdown, GradePortionView{
			Size:  portion.Size,
			Units: portion.Units,
		})
	}
	return view
}

// lineWarnings classifies the quote outcome against the requested quantity.
// The engine only reports what happened; the warning taxonomy is an API
// concern.
func lineWarnings(result enginepricing.PricingResult, requested int) []enums.LineWarningType {
	var warnings []enums.LineWarningType
	if !result.Fulfillable {
		warnings = append(warnings, enums.LineWarningTypeUnfulfillable)
	}
	if result.WasClamped {
		if result.ClampedQuantity > requested {
			warnings = append(warnings, enums.LineWarningTypeClampedToMinimum)
		} else {
			warnings = append(warnings, enums.LineWarningTypeClampedToStock)
		}
	}
	return warnings
}

func newLineQuoteView(result enginepricing.PricingResult, requested int) LineQuoteView {
	view := LineQuoteView{
		ProductID:                 result.ProductID,
		VariationID:               result.VariationID,
		PriceModel:                result.PriceModel.String(),
		UnitPrice:                 result.UnitPrice.String(),
		LineTotal:                 result.LineTotal.String(),
		CurrentTier:               newTierView(result.CurrentTier),
		NextTier:                  newTierView(result.NextTier),
		QuantityNeededForNextTier: result.QuantityNeededForNextTier,
		IsGradeBundle:             result.IsGradeBundle,
		Grade:                     newGradeView(result.Grade),
		ClampedQuantity:           result.ClampedQuantity,
		WasClamped:                result.WasClamped,
		Fulfillable:               result.Fulfillable,
		Warnings:                  lineWarnings(result, requested),
	}
	if !result.PotentialSavingsPerUnit.IsZero() {
		view.PotentialSavingsPerUnit = result.PotentialSavingsPerUnit.String()
	}
	return view
}

// newCartQuoteView pairs each priced line with the requested quantity from
// the matching request line; the service preserves line order.
func newCartQuoteView(result *enginepricing.CartAggregateResult, requested []LineRequest) CartQuoteView {
	view := CartQuoteView{
		CartTotal:        result.CartTotal.String(),
		PotentialSavings: result.PotentialSavings.String(),
		ItemsToNextTier:  result.ItemsToNextTier,
		Lines:            make([]LineQuoteView, 0, len(result.Lines)),
	}
	for i, line := range result.Lines {
		quantity := line.ClampedQuantity
		if i < len(requested) {
			quantity = requested[i].Quantity
		}
		view.Lines = append(view.Lines, newLineQuoteView(line, quantity))
	}
	return view
}
