package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-catalog-service/internal/cache"
)

// DebugHandler exposes read-only endpoints for inspecting the cache backend.
type DebugHandler struct {
	store cache.KeyValueStore
}

// NewDebugHandler creates a DebugHandler over the given store.
func NewDebugHandler(store cache.KeyValueStore) *DebugHandler {
	return &DebugHandler{store: store}
}

// ListKeys handles GET /redis/keys requests.
//
// Backend failures are returned as a 200 body carrying the error description
// instead of an HTTP error. The endpoint exists to inspect a possibly
// unhealthy cache, so it must keep answering when the backend is down.
//
// @Summary      List cache keys
// @Tags         Debug
// @Produce      json
// @Success      200 {object} map[string]interface{} "Keys, or an error description"
// @Router       /redis/keys [get]
func (h *DebugHandler) ListKeys(c *gin.Context) {
	keys, err := h.store.Keys(c.Request.Context(), "*")
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// GetValue handles GET /redis/get/{key} requests. It returns the raw cached
// value as a JSON string, or null when the key is absent.
//
// @Summary      Get a raw cached value
// @Tags         Debug
// @Produce      json
// @Param        key path string true "Cache key"
// @Success      200 {string} string "Raw cached value, or null"
// @Failure      500 {object} dto.ErrorResponse "Cache backend error"
// @Router       /redis/get/{key} [get]
func (h *DebugHandler) GetValue(c *gin.Context) {
	value, ok, err := h.store.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Cache backend error", err)
		return
	}
	if !ok {
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, string(value))
}
