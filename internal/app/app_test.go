package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/book-catalog-service/config"
	"github.com/guttosm/book-catalog-service/internal/cache"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitializeCache(t *testing.T) {
	t.Run("disabled uses memory store", func(t *testing.T) {
		components := InitializeCache(config.CacheConfig{Enabled: false, TTL: time.Minute})

		require.NotNil(t, components.Store)
		assert.Nil(t, components.Redis)
		assert.IsType(t, &cache.MemoryStore{}, components.Store)
		assert.Equal(t, time.Minute, components.TTL)
	})

	t.Run("unreachable redis falls back to memory store", func(t *testing.T) {
		components := InitializeCache(config.CacheConfig{
			Enabled: true,
			Addr:    "127.0.0.1:1",
			TTL:     time.Minute,
		})

		require.NotNil(t, components.Store)
		assert.Nil(t, components.Redis)
		assert.IsType(t, &cache.MemoryStore{}, components.Store)
	})
}

func TestInitializeServices(t *testing.T) {
	components := InitializeServices()

	require.NotNil(t, components.Books)
	books := components.Books.List()
	assert.Len(t, books, 6)
	assert.Equal(t, 1, books[0].ID)
	assert.Equal(t, "Computer Science Pro", books[0].Title)
}

func TestInitializeRouter(t *testing.T) {
	cfg := config.Load()
	services := InitializeServices()
	cacheComponents := InitializeCache(config.CacheConfig{Enabled: false, TTL: time.Minute})

	components := InitializeRouter(services, cacheComponents, cfg)

	require.NotNil(t, components.Handler)
	require.NotNil(t, components.DebugHandler)
	require.NotNil(t, components.HealthHandler)
	assert.Equal(t, cfg.Server.RateLimit, components.Config.RateLimit)
	assert.Equal(t, cfg.Server.RequestTimeout, components.Config.RequestTimeout)
}

func TestInitializeApp(t *testing.T) {
	cfg := config.Load()
	cfg.Cache.Enabled = false

	router := InitializeApp(cfg)
	require.NotNil(t, router)

	t.Run("serves health endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("serves seeded catalog", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/books", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Computer Science Pro")
	})
}
