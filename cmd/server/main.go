package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"meetpoint-service/internal/api"
	"meetpoint-service/internal/cache"
	"meetpoint-service/internal/config"
	"meetpoint-service/internal/lib/suggest"
	"meetpoint-service/internal/services"
)

// main is the application composition root: config, logger, cache,
// suggester, triangulation service, HTTP server.
func main() {
	// .env is a convenience for local runs; deployments use the environment
	_ = godotenv.Load()

	configPath := os.Getenv("MEET_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	defer logger.Sync()

	cacheInstance := cache.New(logger)
	cacheInstance.StartPeriodicCleanup(context.Background(), cfg.Cache.CleanupInterval)

	suggester := suggest.NewSuggester(suggest.ClientOptions{
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		BaseURL:     cfg.AI.BaseURL,
		Temperature: float32(cfg.AI.Temperature),
		MaxTokens:   cfg.AI.MaxTokens,
	})
	cachedSuggester := suggest.NewCachedSuggester(suggester, cacheInstance, cfg.Cache.SuggestionTTL, logger)

	svc := services.NewTriangulationService(cachedSuggester, &cfg.Triangulation, logger)

	apiKeyConfigured := cfg.AI.APIKey != ""
	if !apiKeyConfigured {
		logger.Warn("AI API key not configured; triangulation requests will be rejected")
	}

	router := api.NewRouter(svc, cacheInstance, apiKeyConfigured, logger)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("meeting point server starting",
		zap.String("addr", addr),
		zap.String("model", cfg.AI.Model),
		zap.Float64("outlier_threshold", cfg.Triangulation.OutlierThreshold),
	)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	logger, err := zapCfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	return logger
}
