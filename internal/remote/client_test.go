package remote

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-platform/internal/config"
)

func newTestClient(t *testing.T, retries int) *Client {
	t.Helper()
	return NewClient(config.RemoteConfig{TimeoutSeconds: 2, Retries: retries}, zap.NewNop())
}

func TestCallReturnsJSONResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 7, "name": "dossier"}`))
	}))
	defer server.Close()

	result, err := newTestClient(t, 0).Call(context.Background(), server.URL, CallOptions{})
	require.NoError(t, err)
	assert.True(t, result.IsJSON())

	var decoded struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}
	require.NoError(t, result.Decode(&decoded))
	assert.Equal(t, int64(7), decoded.ID)
	assert.Equal(t, "dossier", decoded.Name)
}

func TestCallReturnsTextResultWhenBodyIsNotJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("plain acknowledgment"))
	}))
	defer server.Close()

	result, err := newTestClient(t, 0).Call(context.Background(), server.URL, CallOptions{})
	require.NoError(t, err)
	assert.False(t, result.IsJSON())
	assert.Equal(t, "plain acknowledgment", result.Text)
	assert.Error(t, result.Decode(&struct{}{}))
}

func TestCallDefaultsToGET(t *testing.T) {
	var method atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method.Store(r.Method)
	}))
	defer server.Close()

	_, err := newTestClient(t, 0).Call(context.Background(), server.URL, CallOptions{})
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, method.Load())
}

func TestCallRetriesUntilSuccessWithinBudget(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	result, err := newTestClient(t, 2).CallRetry(context.Background(), server.URL, CallOptions{}, 2)
	require.NoError(t, err)
	assert.True(t, result.IsJSON())
	assert.Equal(t, int32(3), calls.Load())
}

func TestCallFailsAfterBudgetPlusOneAttempts(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	_, err := newTestClient(t, 2).CallRetry(context.Background(), server.URL, CallOptions{}, 2)
	require.Error(t, err)

	var callErr *CallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, 3, callErr.Attempts)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, http.StatusServiceUnavailable, callErr.Status)
	assert.Contains(t, callErr.Body, "boom")
}

func TestCallZeroBudgetMeansSingleAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := newTestClient(t, 0).CallRetry(context.Background(), server.URL, CallOptions{}, 0)
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCallRetriesTransportErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing listens any more

	_, err := newTestClient(t, 1).CallRetry(context.Background(), server.URL, CallOptions{}, 1)
	require.Error(t, err)

	var callErr *CallError
	require.True(t, errors.As(err, &callErr))
	assert.Equal(t, 2, callErr.Attempts)
	assert.Zero(t, callErr.Status)
	assert.Error(t, callErr.Unwrap())
}

func TestCallSendsBodyAndHeadersOnEveryAttempt(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := make([]byte, 16)
		n, _ := r.Body.Read(body)
		assert.Equal(t, `{"x":1}`, string(body[:n]))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := newTestClient(t, 1).Call(context.Background(), server.URL, CallOptions{
		Method:  http.MethodPost,
		Headers: map[string]string{"Content-Type": "application/json"},
		Body:    []byte(`{"x":1}`),
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
}
