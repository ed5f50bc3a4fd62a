package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vendorParams struct {
	MaterialType string  `json:"materialType"`
	Quantity     float64 `json:"quantity"`
}

type vendorResult struct {
	Vendors []string `json:"vendors"`
}

type memCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{items: make(map[string][]byte)}
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[key] = value
	return nil
}

func (m *memCache) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewClient(Config{BaseURL: srv.URL + "/", APIKey: "secret", Timeout: 2 * time.Second, CacheTTL: time.Minute}, opts...)
	require.NoError(t, err)
	return c
}

func TestClient_Call(t *testing.T) {
	var gotPath, gotAuth, gotContentType string
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"vendors":["Acme","Bolt"]}`))
	})

	var out vendorResult
	err := c.Call(context.Background(), "/purchasing/recommend-vendors", "vendor_recommendation",
		vendorParams{MaterialType: "rebar", Quantity: 12.5}, &out)
	require.NoError(t, err)

	assert.Equal(t, "/api/ai/purchasing/recommend-vendors", gotPath)
	assert.Equal(t, "Bearer secret", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "vendor_recommendation", gotBody["modelType"])
	assert.Equal(t, "rebar", gotBody["materialType"])
	assert.Equal(t, 12.5, gotBody["quantity"])
	assert.Equal(t, []string{"Acme", "Bolt"}, out.Vendors)
}

func TestClient_GenericHelpers(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{}`))
	})
	ctx := context.Background()

	require.NoError(t, c.AnalyzeData(ctx, "m", nil, nil))
	require.NoError(t, c.GetRecommendations(ctx, "m", nil, nil))
	require.NoError(t, c.GetPrediction(ctx, "m", nil, nil))
	require.NoError(t, c.GetOptimizationPlan(ctx, "m", nil, nil))
	require.NoError(t, c.GenerateContent(ctx, "m", nil, nil))

	assert.Equal(t, []string{
		"/api/ai/analyze",
		"/api/ai/recommendations",
		"/api/ai/predict",
		"/api/ai/optimize",
		"/api/ai/generate",
	}, paths)
}

func TestClient_NonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("model unavailable"))
	})

	err := c.Call(context.Background(), "predict", "m", map[string]any{"a": 1}, nil)
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusInternalServerError, statusErr.StatusCode)
	assert.Equal(t, "model unavailable", statusErr.Body)
}

func TestClient_RejectsNonObjectParams(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request must not be sent")
	})
	err := c.Call(context.Background(), "predict", "m", []int{1, 2}, nil)
	assert.Error(t, err)
}

func TestClient_InvalidJSONResponse(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})
	var out vendorResult
	err := c.Call(context.Background(), "predict", "m", nil, &out)
	assert.ErrorContains(t, err, "decode")
}

func TestClient_ContextCancelled(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := c.Call(ctx, "predict", "m", nil, nil)
	assert.Error(t, err)
}

func TestClient_UsesCache(t *testing.T) {
	var hits atomic.Int32
	store := newMemCache()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"vendors":["Acme"]}`))
	}, WithCache(store))

	params := vendorParams{MaterialType: "strand"}
	for i := 0; i < 3; i++ {
		var out vendorResult
		require.NoError(t, c.Call(context.Background(), "purchasing/recommend-vendors", "vendor_recommendation", params, &out))
		assert.Equal(t, []string{"Acme"}, out.Vendors)
	}
	assert.Equal(t, int32(1), hits.Load())

	var out vendorResult
	require.NoError(t, c.Call(context.Background(), "purchasing/recommend-vendors", "vendor_recommendation",
		vendorParams{MaterialType: "mesh"}, &out))
	assert.Equal(t, int32(2), hits.Load())
}

func TestClient_DoesNotCacheFailures(t *testing.T) {
	var hits atomic.Int32
	store := newMemCache()
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, WithCache(store))

	assert.Error(t, c.Call(context.Background(), "predict", "m", nil, nil))
	assert.Error(t, c.Call(context.Background(), "predict", "m", nil, nil))
	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, 0, store.Len())
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := NewClient(Config{})
	assert.Error(t, err)
}
