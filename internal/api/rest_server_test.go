package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/annel0/blockreg/internal/cache"
	"github.com/annel0/blockreg/internal/logging"
	"github.com/annel0/blockreg/internal/world/block"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource всегда возвращает ноль
type fixedSource struct{}

func (fixedSource) IntN(int) int { return 0 }

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T) (*RestServer, *prometheus.Registry) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reg, err := block.New(block.WithSource(fixedSource{}))
	require.NoError(t, err)

	var out bytes.Buffer
	log, err := logging.NewLoggerWithOptions("api", logging.Options{Console: &out, MinConsoleLevel: logging.ERROR})
	require.NoError(t, err)

	prom := prometheus.NewRegistry()
	rs := NewRestServer(Config{Registry: reg, Logger: log, Prometheus: prom})
	return rs, prom
}

func get(t *testing.T, rs *RestServer, url string) (int, envelope) {
	t.Helper()
	w := httptest.NewRecorder()
	rs.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, url, nil))

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return w.Code, env
}

func TestGetBlock(t *testing.T) {
	rs, _ := newTestServer(t)

	code, env := get(t, rs, "/api/blocks/1")
	require.Equal(t, http.StatusOK, code)
	assert.True(t, env.Success)

	var view BlockView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, BlockView{ID: 1, Name: "Stone", Aliases: []string{"stone", "rock"}}, view)

	code, env = get(t, rs, "/api/blocks/0")
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Success)

	code, _ = get(t, rs, "/api/blocks/9999")
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = get(t, rs, "/api/blocks/stone")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestListBlocks(t *testing.T) {
	rs, _ := newTestServer(t)

	code, env := get(t, rs, "/api/blocks")
	require.Equal(t, http.StatusOK, code)

	var views []BlockView
	require.NoError(t, json.Unmarshal(env.Data, &views))
	assert.Len(t, views, block.Default().Len())
	assert.Equal(t, "Air", views[0].Name)
}

func TestResolve(t *testing.T) {
	rs, _ := newTestServer(t)

	tests := []struct {
		url    string
		code   int
		wantID int
	}{
		{"/api/resolve?q=cobblestone", http.StatusOK, 4},
		{"/api/resolve?q=COBBLESTONE", http.StatusOK, 4},
		{"/api/resolve?q=obsidan", http.StatusNotFound, 0},
		{"/api/resolve?q=obsidan&fuzzy=true", http.StatusOK, 49},
		{"/api/resolve?q=49", http.StatusOK, 49},
		{"/api/resolve?q=", http.StatusBadRequest, 0},
		{"/api/resolve?q=stone&fuzzy=maybe", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		code, env := get(t, rs, tt.url)
		require.Equal(t, tt.code, code, tt.url)
		if tt.code != http.StatusOK {
			continue
		}
		var view BlockView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, tt.wantID, view.ID, tt.url)
	}
}

func TestResolveFuzzyDefaultFromConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rs := NewRestServer(Config{FuzzyLookup: true, Prometheus: prometheus.NewRegistry()})

	code, _ := get(t, rs, "/api/resolve?q=obsidan")
	assert.Equal(t, http.StatusOK, code)

	code, _ = get(t, rs, "/api/resolve?q=obsidan&fuzzy=false")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDrop(t *testing.T) {
	rs, _ := newTestServer(t)

	code, env := get(t, rs, "/api/blocks/13/drop")
	require.Equal(t, http.StatusOK, code)
	var view DropView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "item", view.Kind)
	require.NotNil(t, view.Item)
	assert.Equal(t, block.ItemStack{ID: int(block.FlintItemID), Amount: 1}, *view.Item)

	code, env = get(t, rs, "/api/blocks/7/drop?data=3")
	require.Equal(t, http.StatusOK, code)
	view = DropView{}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "indestructible", view.Kind)
	assert.Nil(t, view.Item)

	code, _ = get(t, rs, "/api/blocks/13/drop?data=x")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestAttachment(t *testing.T) {
	rs, _ := newTestServer(t)

	code, env := get(t, rs, "/api/blocks/69/attachment?data=12")
	require.Equal(t, http.StatusOK, code)
	var view AttachmentView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, AttachmentView{ID: 69, Data: 12, Attached: true, Direction: "west"}, view)

	code, env = get(t, rs, "/api/blocks/1/attachment")
	require.Equal(t, http.StatusOK, code)
	view = AttachmentView{}
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.False(t, view.Attached)
	assert.Empty(t, view.Direction)
}

func TestPlacement(t *testing.T) {
	rs, _ := newTestServer(t)

	tests := []struct {
		url  string
		want PlacementView
	}{
		{"/api/blocks/1/placement", PlacementView{ID: 1, Tier: "normal"}},
		{"/api/blocks/66/placement", PlacementView{ID: 66, Tier: "place_after_normal", IsRail: true}},
		{"/api/blocks/34/placement", PlacementView{ID: 34, Tier: "place_last"}},
	}
	for _, tt := range tests {
		code, env := get(t, rs, tt.url)
		require.Equal(t, http.StatusOK, code)
		var view PlacementView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, tt.want, view, tt.url)
	}
}

func TestHealth(t *testing.T) {
	rs, _ := newTestServer(t)

	w := httptest.NewRecorder()
	rs.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.EqualValues(t, block.Default().Len(), body["blocks"])
}

func TestDomainMetrics(t *testing.T) {
	rs, _ := newTestServer(t)

	get(t, rs, "/api/blocks/1")
	get(t, rs, "/api/blocks/0")
	get(t, rs, "/api/resolve?q=glass")
	get(t, rs, "/api/blocks/7/drop")
	get(t, rs, "/api/blocks/20/drop")

	w := httptest.NewRecorder()
	rs.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, `blockreg_lookups_total{op="by_id",result="hit"} 1`)
	assert.Contains(t, body, `blockreg_lookups_total{op="by_id",result="miss"} 1`)
	assert.Contains(t, body, `blockreg_lookups_total{op="resolve",result="hit"} 1`)
	assert.Contains(t, body, `blockreg_drops_total{kind="indestructible"} 1`)
	assert.Contains(t, body, `blockreg_drops_total{kind="empty"} 1`)
}

func TestStartStop(t *testing.T) {
	rs, _ := newTestServer(t)
	rs.port = "127.0.0.1:0"

	require.NoError(t, rs.Start())
	t.Cleanup(func() { _ = rs.Stop(context.Background()) })

	resp, err := http.Get("http://" + rs.Addr() + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestResolveUsesCache(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, err := cache.NewMemoryCache(cache.CacheConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	rs := NewRestServer(Config{Cache: c, Prometheus: prometheus.NewRegistry()})

	for i := 0; i < 3; i++ {
		code, env := get(t, rs, "/api/resolve?q=Obsidan&fuzzy=true")
		require.Equal(t, http.StatusOK, code)
		var view BlockView
		require.NoError(t, json.Unmarshal(env.Data, &view))
		assert.Equal(t, 49, view.ID)
	}

	code, _ := get(t, rs, "/api/resolve?q=air")
	assert.Equal(t, http.StatusOK, code)
	code, env := get(t, rs, "/api/resolve?q=air")
	require.Equal(t, http.StatusOK, code, "воздух из кеша")
	var view BlockView
	require.NoError(t, json.Unmarshal(env.Data, &view))
	assert.Equal(t, "Air", view.Name)

	for i := 0; i < 2; i++ {
		code, _ = get(t, rs, "/api/resolve?q=unobtainium")
		assert.Equal(t, http.StatusNotFound, code)
	}

	m := c.GetMetrics()
	assert.EqualValues(t, 7, m.TotalRequests)
	assert.EqualValues(t, 4, m.CacheHits)
	assert.EqualValues(t, 3, m.TotalKeys)
}

func TestResolveCorruptCacheEntry(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, err := cache.NewMemoryCache(cache.CacheConfig{})
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	require.NoError(t, c.Set(context.Background(), resolveKey("stone", false), []byte("garbage"), 0))
	rs := NewRestServer(Config{Cache: c, Prometheus: prometheus.NewRegistry()})

	code, _ := get(t, rs, "/api/resolve?q=stone")
	assert.Equal(t, http.StatusOK, code)

	raw, err := c.Get(context.Background(), resolveKey("stone", false))
	require.NoError(t, err)
	assert.Equal(t, "1", string(raw), "запись перезаписана верным id")
}
