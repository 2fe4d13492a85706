package handlers_test

import (
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grocery/internal/config"
	"grocery/internal/http/handlers"
	"grocery/internal/repos"
)

func TestBodyLimit(t *testing.T) {
	cfg := config.Config{DBDriver: "sqlite", DBDSN: ":memory:", CORSOrigins: "*", BodyLimit: 64}
	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	require.NoError(t, err)
	defer db.Close()
	app := handlers.NewApp(cfg, db)

	// fasthttp rejects the body before routing, which app.Test reports as a
	// client error; a real listener shows what the caller receives.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	defer func() { _ = app.Shutdown() }()

	big := `{"name":"` + strings.Repeat("x", 512) + `"}`
	resp, err := http.Post("http://"+ln.Addr().String()+"/api/uoms", "application/json", strings.NewReader(big))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)

	var n int
	require.NoError(t, db.Get(&n, `SELECT COUNT(*) FROM unit_of_measures`))
	assert.Zero(t, n)
}

func TestRateLimit(t *testing.T) {
	cfg := config.Config{DBDriver: "sqlite", DBDSN: ":memory:", CORSOrigins: "*", BodyLimit: 1 << 20, RateLimit: 2}
	db, err := repos.OpenDB(cfg.DBDriver, cfg.DBDSN)
	require.NoError(t, err)
	defer db.Close()
	app := handlers.NewApp(cfg, db)

	for i := 0; i < 2; i++ {
		status, _ := call(t, app, "GET", "/api/uoms", "")
		require.Equal(t, http.StatusOK, status)
	}
	status, env := call(t, app, "GET", "/api/uoms", "")
	assert.Equal(t, http.StatusTooManyRequests, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Too many requests", env.Error)

	// health stays reachable for probes
	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCORSPreflight(t *testing.T) {
	app, _ := newTestApp(t)
	req := httptest.NewRequest("OPTIONS", "/api/products", nil)
	req.Header.Set("Origin", "http://127.0.0.1:5500")
	req.Header.Set("Access-Control-Request-Method", "POST")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	app, _ := newTestApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get("X-Request-ID"), 36)
}

func TestUnknownRouteEnvelope(t *testing.T) {
	app, _ := newTestApp(t)
	status, env := call(t, app, "GET", "/api/nope", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	assert.Equal(t, "Not found", env.Error)
}
