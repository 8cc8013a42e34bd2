package api

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"go.uber.org/zap"

	"meetpoint-service/internal/api/handlers"
	"meetpoint-service/internal/cache"
	"meetpoint-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// how their collaborators were constructed.
func NewRouter(svc *services.TriangulationService, cacheInstance *cache.Cache, apiKeyConfigured bool, logger *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	triangulateHandler := &handlers.TriangulateHandler{
		Service:          svc,
		APIKeyConfigured: apiKeyConfigured,
		Logger:           logger,
	}
	healthHandler := &handlers.HealthHandler{
		Cache:  cacheInstance,
		Logger: logger,
	}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/api/v1/triangulate", triangulateHandler.Triangulate)

	return gziphandler.GzipHandler(requestLogging(logger, mux))
}
