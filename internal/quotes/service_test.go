package quotes

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/vendora/storefront-backend/internal/catalog"
	"github.com/vendora/storefront-backend/internal/pricing"
	"github.com/vendora/storefront-backend/pkg/enums"
	pkgerrors "github.com/vendora/storefront-backend/pkg/errors"
	"github.com/vendora/storefront-backend/pkg/logger"
	"github.com/vendora/storefront-backend/pkg/types"
)

type stubLoader struct {
	settings  pricing.StoreSettings
	snapshots map[uuid.UUID]*catalog.LineSnapshot
	calls     int
}

func (s *stubLoader) Settings(ctx context.Context, storeID uuid.UUID) (pricing.StoreSettings, error) {
	return s.settings, nil
}

func (s *stubLoader) LineInputs(ctx context.Context, storeID, productID uuid.UUID, variationID *uuid.UUID) (*catalog.LineSnapshot, error) {
	s.calls++
	snapshot, ok := s.snapshots[productID]
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return snapshot, nil
}

type memCache struct {
	data map[string]string
	sets int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (m *memCache) Get(ctx context.Context, key string) (string, error) {
	v, ok := m.data[key]
	if !ok {
		return "", goredis.Nil
	}
	return v, nil
}

func (m *memCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.sets++
	m.data[key] = value.(string)
	return nil
}

func (m *memCache) QuoteKey(storeID, fingerprint string) string {
	return "sf:quote:" + storeID + ":" + fingerprint
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "quotes-test", Level: zerolog.ErrorLevel, Output: io.Discard})
}

func gradualSnapshot() *catalog.LineSnapshot {
	return &catalog.LineSnapshot{
		Settings: pricing.StoreSettings{RetailEnabled: true, WholesaleEnabled: true},
		Product: pricing.Product{
			ID:          uuid.New(),
			Name:        "Gradual Widget",
			RetailPrice: types.MustMoney("10"),
			WholesaleTiers: []pricing.PriceTier{
				{Name: "5", MinQuantity: 5, UnitPrice: types.MustMoney("9")},
				{Name: "10", MinQuantity: 10, UnitPrice: types.MustMoney("8")},
			},
			Stock: 50,
		},
	}
}

func newTestService(t *testing.T, loader *stubLoader, cache *memCache) Service {
	t.Helper()
	opts := Options{CacheTTL: time.Minute}
	if cache != nil {
		opts.Cache = cache
	}
	svc, err := NewService(loader, testLogger(), opts)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	return svc
}

func TestPriceLineComputesResult(t *testing.T) {
	snapshot := gradualSnapshot()
	loader := &stubLoader{
		settings:  snapshot.Settings,
		snapshots: map[uuid.UUID]*catalog.LineSnapshot{snapshot.Product.ID: snapshot},
	}
	svc := newTestService(t, loader, nil)

	result, err := svc.PriceLine(context.Background(), LineInput{
		StoreID:   uuid.New(),
		ProductID: snapshot.Product.ID,
		Quantity:  7,
	})
	if err != nil {
		t.Fatalf("PriceLine failed: %v", err)
	}

	if result.PriceModel != enums.PriceModelGradualWholesale {
		t.Fatalf("expected gradual model, got %s", result.PriceModel)
	}
	if got := result.UnitPrice.String(); got != "9" {
		t.Fatalf("expected unit price 9, got %s", got)
	}
	if got := result.LineTotal.String(); got != "63" {
		t.Fatalf("expected line total 63, got %s", got)
	}
}

func TestPriceLineUnknownProduct(t *testing.T) {
	loader := &stubLoader{snapshots: map[uuid.UUID]*catalog.LineSnapshot{}}
	svc := newTestService(t, loader, nil)

	_, err := svc.PriceLine(context.Background(), LineInput{
		StoreID:   uuid.New(),
		ProductID: uuid.New(),
		Quantity:  1,
	})
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
	if !pkgerrors.HasCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not-found code, got %v", err)
	}
}

func TestResolveModelReportsWithoutPricing(t *testing.T) {
	snapshot := gradualSnapshot()
	loader := &stubLoader{
		settings:  snapshot.Settings,
		snapshots: map[uuid.UUID]*catalog.LineSnapshot{snapshot.Product.ID: snapshot},
	}
	svc := newTestService(t, loader, nil)

	resolution, err := svc.ResolveModel(context.Background(), ResolveInput{
		StoreID:   uuid.New(),
		ProductID: snapshot.Product.ID,
	})
	if err != nil {
		t.Fatalf("ResolveModel failed: %v", err)
	}
	if resolution.PriceModel != enums.PriceModelGradualWholesale {
		t.Fatalf("expected gradual model, got %s", resolution.PriceModel)
	}
	if resolution.VariationID != nil {
		t.Fatal("expected nil variation id")
	}
}

func TestPriceCartMemoizesAggregate(t *testing.T) {
	snapshot := gradualSnapshot()
	loader := &stubLoader{
		settings:  snapshot.Settings,
		snapshots: map[uuid.UUID]*catalog.LineSnapshot{snapshot.Product.ID: snapshot},
	}
	cache := newMemCache()
	svc := newTestService(t, loader, cache)

	input := CartInput{
		StoreID: uuid.New(),
		Lines: []CartLineInput{
			{ProductID: snapshot.Product.ID, Quantity: 7},
		},
	}

	first, err := svc.PriceCart(context.Background(), input)
	if err != nil {
		t.Fatalf("first PriceCart failed: %v", err)
	}
	if got := first.CartTotal.String(); got != "63" {
		t.Fatalf("expected cart total 63, got %s", got)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}
	callsAfterFirst := loader.calls

	second, err := svc.PriceCart(context.Background(), input)
	if err != nil {
		t.Fatalf("second PriceCart failed: %v", err)
	}
	if loader.calls != callsAfterFirst {
		t.Fatalf("expected cached result without loader calls, got %d extra", loader.calls-callsAfterFirst)
	}
	if !second.CartTotal.Equal(first.CartTotal) {
		t.Fatalf("cached total %s differs from computed %s", second.CartTotal.String(), first.CartTotal.String())
	}
	if len(second.Lines) != 1 {
		t.Fatalf("expected 1 cached line, got %d", len(second.Lines))
	}
}

func TestPriceCartDifferentQuantitiesMissCache(t *testing.T) {
	snapshot := gradualSnapshot()
	loader := &stubLoader{
		settings:  snapshot.Settings,
		snapshots: map[uuid.UUID]*catalog.LineSnapshot{snapshot.Product.ID: snapshot},
	}
	cache := newMemCache()
	svc := newTestService(t, loader, cache)

	storeID := uuid.New()
	for _, qty := range []int{3, 5} {
		_, err := svc.PriceCart(context.Background(), CartInput{
			StoreID: storeID,
			Lines:   []CartLineInput{{ProductID: snapshot.Product.ID, Quantity: qty}},
		})
		if err != nil {
			t.Fatalf("PriceCart qty=%d failed: %v", qty, err)
		}
	}
	if cache.sets != 2 {
		t.Fatalf("expected two distinct cache entries, got %d writes", cache.sets)
	}
}

func TestPriceCartWithoutCache(t *testing.T) {
	snapshot := gradualSnapshot()
	loader := &stubLoader{
		settings:  snapshot.Settings,
		snapshots: map[uuid.UUID]*catalog.LineSnapshot{snapshot.Product.ID: snapshot},
	}
	svc := newTestService(t, loader, nil)

	input := CartInput{
		StoreID: uuid.New(),
		Lines:   []CartLineInput{{ProductID: snapshot.Product.ID, Quantity: 2}},
	}

	for i := 0; i < 2; i++ {
		if _, err := svc.PriceCart(context.Background(), input); err != nil {
			t.Fatalf("PriceCart failed: %v", err)
		}
	}
	if loader.calls != 2 {
		t.Fatalf("expected loader hit on every call, got %d", loader.calls)
	}
}
