package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vendora/storefront-backend/api/controllers"
	enginepricing "github.com/vendora/storefront-backend/internal/pricing"
	"github.com/vendora/storefront-backend/internal/quotes"
	"github.com/vendora/storefront-backend/pkg/config"
	"github.com/vendora/storefront-backend/pkg/enums"
	"github.com/vendora/storefront-backend/pkg/logger"
	"github.com/vendora/storefront-backend/pkg/types"
)

type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error {
	return s.err
}

type stubQuoteService struct{}

func (stubQuoteService) ResolveModel(ctx context.Context, input quotes.ResolveInput) (*quotes.ModelResolution, error) {
	return &quotes.ModelResolution{ProductID: input.ProductID, PriceModel: enums.PriceModelRetailOnly}, nil
}

func (stubQuoteService) PriceLine(ctx context.Context, input quotes.LineInput) (*enginepricing.PricingResult, error) {
	return &enginepricing.PricingResult{
		ProductID:       input.ProductID,
		PriceModel:      enums.PriceModelRetailOnly,
		UnitPrice:       types.MustMoney("10"),
		LineTotal:       types.MustMoney("10"),
		ClampedQuantity: input.Quantity,
		Fulfillable:     true,
	}, nil
}

func (stubQuoteService) PriceCart(ctx context.Context, input quotes.CartInput) (*enginepricing.CartAggregateResult, error) {
	return &enginepricing.CartAggregateResult{
		CartTotal:        types.ZeroMoney(),
		PotentialSavings: types.ZeroMoney(),
	}, nil
}

func testRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})
	deps := map[string]controllers.Pinger{"db": stubPinger{}}
	return NewRouter(cfg, logg, deps, nil, stubQuoteService{}, nil)
}

func TestHealthLiveRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if got := resp.Header().Get("X-Vendora-Env"); got != config.AppEnvDev {
		t.Fatalf("unexpected env header: %q", got)
	}
}

func TestPublicPingRoute(t *testing.T) {
	router := testRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/public/ping", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestPricingLineRouteWired(t *testing.T) {
	router := testRouter(t)

	storeID := uuid.NewString()
	body := `{"product_id":"` + uuid.NewString() + `","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stores/"+storeID+"/pricing/line", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestPricingRouteRejectsBadStoreID(t *testing.T) {
	router := testRouter(t)

	body := `{"product_id":"` + uuid.NewString() + `","quantity":1}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stores/not-a-uuid/pricing/line", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestHealthReadyReportsDependencyFailure(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	logg := logger.New(logger.Options{ServiceName: "test", Level: zerolog.ErrorLevel, Output: io.Discard})
	deps := map[string]controllers.Pinger{"redis": stubPinger{err: context.DeadlineExceeded}}
	router := NewRouter(cfg, logg, deps, nil, stubQuoteService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
}
