package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dropDatabas3/recordsvc/internal/config"
)

func TestNew_DefaultConfig(t *testing.T) {
	a, err := New(config.Default(), Deps{Version: "1.0.0"})
	require.NoError(t, err)
	assert.Nil(t, a.Metrics)
	assert.Equal(t, "Get all records", a.Info.Endpoints["GET /api/records"])

	req := httptest.NewRequest(http.MethodPost, "/api/records", strings.NewReader(`{"name":"John","lastName":"Doe"}`))
	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNew_WithMetrics(t *testing.T) {
	cfg := config.Default()
	cfg.Metrics.Enabled = true

	a, err := New(cfg, Deps{})
	require.NoError(t, err)
	require.NotNil(t, a.Metrics)

	rr := httptest.NewRecorder()
	a.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "records_stored 0")
}
