// Package app provides router configuration.
package app

import (
	"github.com/guttosm/book-catalog-service/config"
	"github.com/guttosm/book-catalog-service/internal/http"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	DebugHandler  *http.DebugHandler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	cacheComponents *CacheComponents,
	cfg config.Config,
) *RouterComponents {
	handler := http.NewHandler(services.Books, cacheComponents.Store, cacheComponents.TTL)
	debugHandler := http.NewDebugHandler(cacheComponents.Store)

	healthHandler := http.NewHealthHandler()
	if cacheComponents.Redis != nil {
		healthHandler.AddChecker("redis", cacheComponents.Redis)
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		RequestTimeout: cfg.Server.RequestTimeout,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
	}

	return &RouterComponents{
		Handler:       handler,
		DebugHandler:  debugHandler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
