package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"meetpoint-service/internal/cache"
)

// HealthHandler serves GET /health
type HealthHandler struct {
	Cache  *cache.Cache
	Logger *zap.Logger
}

type healthResponse struct {
	Status string      `json:"status"`
	Cache  cache.Stats `json:"cache"`
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.Logger, http.StatusOK, healthResponse{
		Status: "ok",
		Cache:  h.Cache.GetStats(),
	})
}
