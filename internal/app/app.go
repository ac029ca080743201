// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/book-catalog-service/config"
	"github.com/guttosm/book-catalog-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize the cache backend (Redis, or in-memory when disabled)
	cacheComponents := InitializeCache(cfg.Cache)

	// Initialize the seeded catalog and its service
	serviceComponents := InitializeServices()

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, cacheComponents, cfg)

	return http.NewRouter(
		routerComponents.Handler,
		routerComponents.DebugHandler,
		routerComponents.HealthHandler,
		routerComponents.Config,
	)
}
