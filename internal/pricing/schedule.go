package pricing

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/vendora/storefront-backend/pkg/types"
)

// PriceTier is one quantity breakpoint of a schedule.
type PriceTier struct {
	Name        string
	MinQuantity int
	UnitPrice   types.Money
}

// TierSchedule is an ordered sequence of breakpoints evaluated as a step
// function. The first tier starts at quantity 1, breakpoints strictly
// increase, and unit prices never increase with volume. A schedule violating
// any of these is a configuration error and is never silently repaired.
type TierSchedule struct {
	Tiers []PriceTier
}

// TierEvaluation is the outcome of evaluating a schedule at a quantity.
// Next is nil at the top tier; the savings hint fields are only meaningful
// when Next is present.
type TierEvaluation struct {
	Current        PriceTier
	Next           *PriceTier
	QuantityNeeded int
	SavingsPerUnit types.Money
}

// Validate checks the schedule invariants, aggregating every violation so a
// store admin sees the full problem at once.
func (s TierSchedule) Validate() error {
	if len(s.Tiers) == 0 {
		return errConfiguration("tier schedule has no tiers", nil)
	}

	var errs error
	if s.Tiers[0].MinQuantity != 1 {
		errs = multierr.Append(errs, errConfiguration(
			fmt.Sprintf("first tier %q must start at quantity 1", s.Tiers[0].Name),
			map[string]any{"tier": s.Tiers[0].Name, "min_quantity": s.Tiers[0].MinQuantity},
		))
	}
	for i, tier := range s.Tiers {
		if !tier.UnitPrice.IsPositive() {
			errs = multierr.Append(errs, errConfiguration(
				fmt.Sprintf("tier %q unit price must be positive", tier.Name),
				map[string]any{"tier": tier.Name, "unit_price": tier.UnitPrice.String()},
			))
		}
		if i == 0 {
			continue
		}
		prev := s.Tiers[i-1]
		if tier.MinQuantity <= prev.MinQuantity {
			errs = multierr.Append(errs, errConfiguration(
				fmt.Sprintf("tier %q breakpoint %d does not increase past %q", tier.Name, tier.MinQuantity, prev.Name),
				map[string]any{"tier": tier.Name, "min_quantity": tier.MinQuantity, "previous_min_quantity": prev.MinQuantity},
			))
		}
		if tier.UnitPrice.GreaterThan(prev.UnitPrice) {
			errs = multierr.Append(errs, errConfiguration(
				fmt.Sprintf("tier %q raises the unit price above %q", tier.Name, prev.Name),
				map[string]any{"tier": tier.Name, "unit_price": tier.UnitPrice.String(), "previous_unit_price": prev.UnitPrice.String()},
			))
		}
	}
	return errs
}

// Evaluate selects the tier with the greatest breakpoint not exceeding the
// quantity and derives the next-tier incentive. The schedule must already be
// valid; quantity below 1 fails fast.
func (s TierSchedule) Evaluate(quantity int) (TierEvaluation, error) {
	if quantity < 1 {
		return TierEvaluation{}, errInvalidQuantity(quantity)
	}
	if err := s.Validate(); err != nil {
		return TierEvaluation{}, err
	}

	active := 0
	for i, tier := range s.Tiers {
		if tier.MinQuantity > quantity {
			break
		}
		active = i
	}

	eval := TierEvaluation{Current: s.Tiers[active]}
	if active+1 < len(s.Tiers) {
		next := s.Tiers[active+1]
		eval.Next = &next
		eval.QuantityNeeded = next.MinQuantity - quantity
		eval.SavingsPerUnit = eval.Current.UnitPrice.Sub(next.UnitPrice)
	}
	return eval, nil
}
