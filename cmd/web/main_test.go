package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yemalin/internal/services"
	"yemalin/internal/testutil"
	"yemalin/internal/universe"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	universeService := services.NewUniverseService(db)
	_, err := universeService.Seed(universe.Default())
	require.NoError(t, err)

	router, err := newRouter(services.NewAdvisorService(universeService, 10), universeService)
	require.NoError(t, err)
	return router
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRouter_EndToEnd(t *testing.T) {
	r := newTestServer(t)

	t.Run("home", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "EUROSTOXX50")
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("optimize", func(t *testing.T) {
		form := url.Values{
			"risk_tolerance": {"5"},
			"horizon":        {"long"},
			"amount":         {"20000"},
			"cash_reserve":   {"0"},
			"min_liquidity":  {"90"},
			"max_assets":     {"2"},
		}
		req := httptest.NewRequest(http.MethodPost, "/optimize", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := serve(r, req)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := rec.Body.String()
		assert.Contains(t, body, "Proposed allocation")
		assert.Contains(t, body, "MSCI_WORLD")
		assert.Contains(t, body, "<svg")
	})

	t.Run("universe_page", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/universe?class=bond", http.NoBody))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "GOV_CORE")
		assert.NotContains(t, rec.Body.String(), "GOLD")
	})

	t.Run("static", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/static/style.css", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown_route", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/nope", http.NoBody)
		req.Header.Set("Accept", "text/html")
		rec := serve(r, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "Page not found")
	})

	t.Run("health", func(t *testing.T) {
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/api/health", http.NoBody))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})
}
