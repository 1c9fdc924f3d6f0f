// Package quotes hosts the pricing engine behind the storefront API: it loads
// catalog snapshots, runs the calculator, and memoizes full-cart results.
package quotes

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/vendora/storefront-backend/internal/catalog"
	"github.com/vendora/storefront-backend/internal/pricing"
	"github.com/vendora/storefront-backend/pkg/enums"
	"github.com/vendora/storefront-backend/pkg/logger"
	"github.com/vendora/storefront-backend/pkg/metrics"
)

type lineLoader interface {
	Settings(ctx context.Context, storeID uuid.UUID) (pricing.StoreSettings, error)
	LineInputs(ctx context.Context, storeID, productID uuid.UUID, variationID *uuid.UUID) (*catalog.LineSnapshot, error)
}

type quoteCache interface {
	Get(context.Context, string) (string, error)
	Set(context.Context, string, any, time.Duration) error
	QuoteKey(storeID, fingerprint string) string
}

// Service exposes the pricing operations served over HTTP.
type Service interface {
	ResolveModel(ctx context.Context, input ResolveInput) (*ModelResolution, error)
	PriceLine(ctx context.Context, input LineInput) (*pricing.PricingResult, error)
	PriceCart(ctx context.Context, input CartInput) (*pricing.CartAggregateResult, error)
}

type service struct {
	loader  lineLoader
	cache   quoteCache
	ttl     time.Duration
	logg    *logger.Logger
	metrics *metrics.QuoteMetrics
}

// Options carries the optional collaborators of the quote service.
type Options struct {
	Cache    quoteCache
	CacheTTL time.Duration
	Metrics  *metrics.QuoteMetrics
}

// NewService builds a quote service backed by the provided catalog loader.
func NewService(loader lineLoader, logg *logger.Logger, opts Options) (Service, error) {
	if loader == nil {
		return nil, fmt.Errorf("catalog loader required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		loader:  loader,
		cache:   opts.Cache,
		ttl:     opts.CacheTTL,
		logg:    logg,
		metrics: opts.Metrics,
	}, nil
}

// ResolveInput identifies the product whose price model should be reported.
type ResolveInput struct {
	StoreID     uuid.UUID
	ProductID   uuid.UUID
	VariationID *uuid.UUID
}

// ModelResolution reports which pricing strategy applies to a product.
type ModelResolution struct {
	ProductID   uuid.UUID        `json:"product_id"`
	VariationID *uuid.UUID       `json:"variation_id,omitempty"`
	PriceModel  enums.PriceModel `json:"price_model"`
}

// LineInput is one line to price: product, optional variation, quantity, and
// the selected assortment for flexible grades.
type LineInput struct {
	StoreID     uuid.UUID
	ProductID   uuid.UUID
	VariationID *uuid.UUID
	Quantity    int
	GradeOption *int
}

// CartInput prices a whole cart for one store.
type CartInput struct {
	StoreID uuid.UUID
	Lines   []CartLineInput
}

// CartLineInput is the per-line portion of CartInput.
type CartLineInput struct {
	ProductID   uuid.UUID  `json:"product_id"`
	VariationID *uuid.UUID `json:"variation_id,omitempty"`
	Quantity    int        `json:"quantity"`
	GradeOption *int       `json:"grade_option,omitempty"`
}

// ResolveModel loads the snapshot and reports the applicable price model
// without computing a price.
func (s *service) ResolveModel(ctx context.Context, input ResolveInput) (*ModelResolution, error) {
	start := time.Now()

	snapshot, err := s.loader.LineInputs(ctx, input.StoreID, input.ProductID, input.VariationID)
	if err != nil {
		return nil, err
	}

	model := pricing.ResolvePriceModel(snapshot.Product, snapshot.Variation, snapshot.Settings)
	s.metrics.ObserveDuration("resolve", time.Since(start))

	resolution := &ModelResolution{
		ProductID:  input.ProductID,
		PriceModel: model,
	}
	if snapshot.Variation != nil {
		resolution.VariationID = input.VariationID
	}
	return resolution, nil
}

// PriceLine computes the full pricing result for a single line.
func (s *service) PriceLine(ctx context.Context, input LineInput) (*pricing.PricingResult, error) {
	start := time.Now()

	ctx = s.logg.WithStoreID(ctx, input.StoreID.String())
	ctx = s.logg.WithProductID(ctx, input.ProductID.String())

	snapshot, err := s.loader.LineInputs(ctx, input.StoreID, input.ProductID, input.VariationID)
	if err != nil {
		return nil, err
	}

	line := pricing.CartLine{
		Product:     snapshot.Product,
		Variation:   snapshot.Variation,
		Quantity:    input.Quantity,
		GradeOption: input.GradeOption,
	}

	result, err := s.calculator(ctx).PriceCartLine(line, snapshot.Settings)
	if err != nil {
		return nil, err
	}

	s.recordLine(result)
	s.metrics.ObserveDuration("line", time.Since(start))
	return &result, nil
}

// PriceCart resolves every line's snapshot, prices the cart, and memoizes the
// aggregate when a cache is configured. The cache key fingerprints the request
// only; a short TTL bounds staleness against catalog edits.
func (s *service) PriceCart(ctx context.Context, input CartInput) (*pricing.CartAggregateResult, error) {
	start := time.Now()
	ctx = s.logg.WithStoreID(ctx, input.StoreID.String())

	key := ""
	if s.cache != nil {
		fingerprint, err := cartFingerprint(input)
		if err == nil {
			key = s.cache.QuoteKey(input.StoreID.String(), fingerprint)
			if cached, hit := s.cachedCart(ctx, key); hit {
				s.metrics.IncCacheHit()
				return cached, nil
			}
			s.metrics.IncCacheMiss()
		}
	}

	settings, err := s.loader.Settings(ctx, input.StoreID)
	if err != nil {
		return nil, err
	}

	lines := make([]pricing.CartLine, 0, len(input.Lines))
	for _, item := range input.Lines {
		snapshot, err := s.loader.LineInputs(ctx, input.StoreID, item.ProductID, item.VariationID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, pricing.CartLine{
			Product:     snapshot.Product,
			Variation:   snapshot.Variation,
			Quantity:    item.Quantity,
			GradeOption: item.GradeOption,
		})
	}

	result, err := s.calculator(ctx).AggregateCart(lines, settings)
	if err != nil {
		return nil, err
	}

	for _, line := range result.Lines {
		s.recordLine(line)
	}

	if s.cache != nil && key != "" {
		s.storeCart(ctx, key, &result)
	}

	s.metrics.ObserveDuration("cart", time.Since(start))
	return &result, nil
}

func (s *service) calculator(ctx context.Context) pricing.Calculator {
	return pricing.NewCalculator(pricing.WithObserver(logObserver{ctx: ctx, logg: s.logg}))
}

func (s *service) recordLine(result pricing.PricingResult) {
	s.metrics.IncComputation(result.PriceModel.String())
	if !result.Fulfillable {
		s.metrics.IncUnfulfillable(result.PriceModel.String())
	}
}

func (s *service) cachedCart(ctx context.Context, key string) (*pricing.CartAggregateResult, bool) {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, goredis.Nil) {
			s.logg.Debug(ctx, "quote cache read failed")
		}
		return nil, false
	}
	var cached pricing.CartAggregateResult
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		s.logg.Debug(ctx, "quote cache entry corrupt")
		return nil, false
	}
	return &cached, true
}

func (s *service) storeCart(ctx context.Context, key string, result *pricing.CartAggregateResult) {
	payload, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
		s.logg.Debug(ctx, "quote cache write failed")
	}
}
