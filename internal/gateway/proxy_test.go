package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
)

type echo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
	Query  string `json:"query"`
	Body   string `json:"body"`
}

func newEchoServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTeapot) // distinctive status to prove passthrough
		_ = json.NewEncoder(w).Encode(echo{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,
			Body:   string(body),
		})
	}))
	t.Cleanup(server.Close)
	return server
}

func newGatewayApp(routes ...config.GatewayRoute) *fiber.App {
	app := fiber.New()
	Register(app, config.GatewayConfig{Routes: routes}, zap.NewNop())
	return app
}

func decodeEcho(t *testing.T, res *http.Response) echo {
	t.Helper()
	var e echo
	require.NoError(t, json.NewDecoder(res.Body).Decode(&e))
	return e
}

func TestForwardStripsPrefix(t *testing.T) {
	target := newEchoServer(t)
	app := newGatewayApp(config.GatewayRoute{Prefix: "/hr", Target: target.URL})

	req := httptest.NewRequest(http.MethodGet, "/hr/foo", nil)
	res, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, res.StatusCode)

	e := decodeEcho(t, res)
	assert.Equal(t, "/foo", e.Path)
}

func TestForwardBarePrefixBecomesRoot(t *testing.T) {
	target := newEchoServer(t)
	app := newGatewayApp(config.GatewayRoute{Prefix: "/hr", Target: target.URL})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/hr", nil), -1)
	require.NoError(t, err)

	e := decodeEcho(t, res)
	assert.Equal(t, "/", e.Path)
}

func TestForwardKeepsMethodBodyAndQuery(t *testing.T) {
	target := newEchoServer(t)
	app := newGatewayApp(config.GatewayRoute{Prefix: "/file", Target: target.URL})

	req := httptest.NewRequest(http.MethodPost, "/file/associate?dry=1", nil)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req, -1)
	require.NoError(t, err)

	e := decodeEcho(t, res)
	assert.Equal(t, http.MethodPost, e.Method)
	assert.Equal(t, "/associate", e.Path)
	assert.Equal(t, "dry=1", e.Query)
}

func TestIndexListsConfiguredPrefixes(t *testing.T) {
	target := newEchoServer(t)
	app := newGatewayApp(
		config.GatewayRoute{Prefix: "/hr", Target: target.URL},
		config.GatewayRoute{Prefix: "/notify", Target: target.URL},
	)

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "/hr/api-docs")
	assert.Contains(t, string(body), "/notify/api-docs")
}

func TestUnconfiguredPrefixIsNotFound(t *testing.T) {
	target := newEchoServer(t)
	app := newGatewayApp(config.GatewayRoute{Prefix: "/hr", Target: target.URL})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/billing/foo", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUnreachableTargetIsBadGateway(t *testing.T) {
	target := newEchoServer(t)
	target.Close() // nothing listens any more
	app := newGatewayApp(config.GatewayRoute{Prefix: "/hr", Target: target.URL})

	res, err := app.Test(httptest.NewRequest(http.MethodGet, "/hr/foo", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
}
