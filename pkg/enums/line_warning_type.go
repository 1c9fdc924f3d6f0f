package enums

import "fmt"

// LineWarningType classifies the warnings a quote can attach to a cart line.
type LineWarningType string

const (
	LineWarningTypeClampedToMinimum LineWarningType = "clamped_to_minimum"
	LineWarningTypeClampedToStock   LineWarningType = "clamped_to_stock"
	LineWarningTypeUnfulfillable    LineWarningType = "unfulfillable"
	LineWarningTypePriceChanged     LineWarningType = "price_changed"
)

var validLineWarningTypes = []LineWarningType{
	LineWarningTypeClampedToMinimum,
	LineWarningTypeClampedToStock,
	LineWarningTypeUnfulfillable,
	LineWarningTypePriceChanged,
}

// String implements fmt.Stringer.
func (w LineWarningType) String() string {
	return string(w)
}

// IsValid reports whether the value is known.
func (w LineWarningType) IsValid() bool {
	for _, candidate := range validLineWarningTypes {
		if candidate == w {
			return true
		}
	}
	return false
}

// ParseLineWarningType converts raw input into a LineWarningType.
func ParseLineWarningType(value string) (LineWarningType, error) {
	for _, candidate := range validLineWarningTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid line warning type %q", value)
}
