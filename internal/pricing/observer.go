package pricing

// Observer receives structured hooks around the calculation. The engine calls
// it when one is configured but never depends on it: every result is
// identical with observation disabled.
type Observer interface {
	TierSelected(line CartLine, tier PriceTier)
	QuantityClamped(line CartLine, requested, clamped int)
	LineUnfulfillable(line CartLine, stock, minimum int)
}

type nopObserver struct{}

func (nopObserver) TierSelected(CartLine, PriceTier)     {}
func (nopObserver) QuantityClamped(CartLine, int, int)   {}
func (nopObserver) LineUnfulfillable(CartLine, int, int) {}

// Calculator evaluates cart lines. The zero value is ready to use and fully
// silent; WithObserver attaches hooks.
type Calculator struct {
	obs Observer
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithObserver attaches observation hooks to the calculator.
func WithObserver(obs Observer) Option {
	return func(c *Calculator) {
		c.obs = obs
	}
}

// NewCalculator builds a calculator with the provided options.
func NewCalculator(opts ...Option) Calculator {
	var c Calculator
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Calculator) observer() Observer {
	if c.obs == nil {
		return nopObserver{}
	}
	return c.obs
}
