package pricing

// ClampResult reports how a requested quantity was adjusted against stock and
// the minimum purchase quantity. The clamp never mutates anything; the caller
// decides whether WasClamped deserves a warning.
type ClampResult struct {
	ClampedQuantity int
	WasClamped      bool
	Fulfillable     bool
}

// clampQuantity floors the request at minimum and caps it at the stock
// snapshot. When negative stock is allowed there is no upper bound at all;
// the bound is represented by its absence, not by a numeric sentinel.
func clampQuantity(requested, stock int, allowNegativeStock bool, minimum int) ClampResult {
	if minimum < 1 {
		minimum = 1
	}

	var upper *int
	if !allowNegativeStock {
		upper = &stock
	}

	if upper != nil && *upper < minimum {
		// Stock cannot cover the enforced minimum: report, never downgrade.
		return ClampResult{ClampedQuantity: requested, Fulfillable: false}
	}

	clamped := requested
	if clamped < minimum {
		clamped = minimum
	}
	if upper != nil && clamped > *upper {
		clamped = *upper
	}

	return ClampResult{
		ClampedQuantity: clamped,
		WasClamped:      clamped != requested,
		Fulfillable:     true,
	}
}
