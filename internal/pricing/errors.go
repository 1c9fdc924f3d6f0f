package pricing

import (
	pkgerrors "github.com/vendora/storefront-backend/pkg/errors"
)

// The engine reports three error families. None of them is recoverable here:
// configuration errors go back to the store admin, the others to the caller.

func errConfiguration(message string, details map[string]any) error {
	err := pkgerrors.New(pkgerrors.CodeConfiguration, message)
	if details != nil {
		err = err.WithDetails(details)
	}
	return err
}

func errInvalidQuantity(requested int) error {
	return pkgerrors.New(pkgerrors.CodeInvalidQuantity, "quantity must be at least 1").
		WithDetails(map[string]any{"requested": requested})
}

// NewUnfulfillableError reports that stock cannot cover the enforced minimum
// purchase quantity. The engine itself surfaces unfulfillable lines as data
// (PricingResult.Fulfillable); hosts use this constructor when they need to
// reject instead of warn.
func NewUnfulfillableError(productName string, stock, minimum int) error {
	return pkgerrors.New(pkgerrors.CodeUnfulfillable, "stock below minimum purchase quantity").
		WithDetails(map[string]any{
			"product":          productName,
			"stock":            stock,
			"minimum_quantity": minimum,
		})
}

// IsConfigurationError reports whether err is a catalog configuration error.
func IsConfigurationError(err error) bool {
	return pkgerrors.HasCode(err, pkgerrors.CodeConfiguration)
}

// IsInvalidQuantityError reports whether err rejects the requested quantity.
func IsInvalidQuantityError(err error) bool {
	return pkgerrors.HasCode(err, pkgerrors.CodeInvalidQuantity)
}

// IsUnfulfillableError reports whether err marks a line as unfulfillable.
func IsUnfulfillableError(err error) bool {
	return pkgerrors.HasCode(err, pkgerrors.CodeUnfulfillable)
}
