package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/enhancement"
	"github.com/osse101/gla-tools/internal/handler"
	"github.com/osse101/gla-tools/internal/leveling"
	"github.com/osse101/gla-tools/internal/testing/leaktest"
)

func newTestHandler(t *testing.T, apiKey string) http.Handler {
	t.Helper()
	prices := domain.PriceTable{
		domain.CrystalCeu:      100,
		domain.CrystalSabio:    200,
		domain.CrystalCarmesim: 300,
		domain.CrystalRadiante: 400,
	}
	srv := NewServer(Options{APIKey: apiKey}, leveling.NewService(), enhancement.NewService(enhancement.Config{CacheSize: 16}), prices)
	return srv.Handler()
}

func TestRouter_ExperienceBetween(t *testing.T) {
	h := newTestHandler(t, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/xp/between?start=1&end=70", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.ExperienceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(5243374), resp.Experience)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}

func TestRouter_ExperienceBetween_BadRange(t *testing.T) {
	h := newTestHandler(t, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/xp/between?start=70&end=1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PlanPotions(t *testing.T) {
	h := newTestHandler(t, "")

	body := `{"start_level":1,"end_level":70,"tier":"Diamante"}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/xp/plan", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var plan domain.PotionPlan
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Equal(t, int64(5243374), plan.Experience)
}

func TestRouter_EstimateUsesDefaultPrices(t *testing.T) {
	h := newTestHandler(t, "")

	body := `{"slot":"Emblema","current_level":15}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/crystals/estimate", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var est domain.UpgradeEstimate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &est))
	require.Len(t, est.Levels, 1)
	assert.Equal(t, int64(42), est.TotalLow)
	assert.Equal(t, int64(68), est.TotalHigh)
	assert.Equal(t, int64(42*400), est.TotalCostLow)
	assert.Equal(t, 10, est.TransferCost)
}

func TestRouter_EstimateZeroesOversizedPrice(t *testing.T) {
	h := newTestHandler(t, "")

	body := `{"slot":"Emblema","current_level":15,"prices":{"radiante":"100000000000000000"}}`
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/crystals/estimate", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp handler.EstimateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.UpgradeEstimate)
	assert.Equal(t, int64(0), resp.TotalCostLow)
	assert.Equal(t, int64(0), resp.TotalCostHigh)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "above the limit")
}

func TestRouter_EstimateWithRepeatedCrystalIsStable(t *testing.T) {
	h := newTestHandler(t, "")

	body := `{"slot":"Capacete","current_level":1,"prices":{"ceu":1,"Cristais do Céu":2,"CEU":3}}`
	var first string
	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/crystals/estimate", strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code)
		if i == 0 {
			first = rec.Body.String()
			continue
		}
		require.Equal(t, first, rec.Body.String())
	}

	var resp handler.EstimateResponse
	require.NoError(t, json.Unmarshal([]byte(first), &resp))
	require.NotEmpty(t, resp.Levels)
	assert.Equal(t, int64(3), resp.Levels[0].UnitPrice)
	assert.Len(t, resp.Warnings, 2)
}

func TestRouter_PlanPotionsZeroStartIsInvalidRange(t *testing.T) {
	h := newTestHandler(t, "")

	for _, path := range []string{"/api/v1/xp/plan", "/api/v1/xp/between?start=0&end=70"} {
		rec := httptest.NewRecorder()
		if strings.HasSuffix(path, "plan") {
			body := `{"start_level":0,"end_level":70,"tier":"Ouro"}`
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
		} else {
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		}

		require.Equal(t, http.StatusBadRequest, rec.Code, path)
		var resp handler.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), path)
		assert.Equal(t, handler.ErrMsgInvalidRangeError, resp.Error, path)
	}
}

func TestRouter_TransferCost(t *testing.T) {
	h := newTestHandler(t, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/crystals/transfer-cost?slot=peito&level=9", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"gems":10`)
}

func TestRouter_AuthRequiredWhenKeySet(t *testing.T) {
	h := newTestHandler(t, "k3y")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/crystals/rules", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/crystals/rules", nil)
	req.Header.Set(HeaderAPIKey, "k3y")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := newTestHandler(t, "")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_StartStopLeavesNoGoroutines(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	srv := NewServer(Options{Port: 0}, leveling.NewService(), enhancement.NewService(enhancement.Config{}), nil)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	time.Sleep(50 * time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	err := <-errCh
	assert.True(t, errors.Is(err, http.ErrServerClosed), "unexpected error: %v", err)
	checker.Check(1)
}
