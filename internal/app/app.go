package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/traderflow/mse-api/config"
	"github.com/traderflow/mse-api/internal/api"
	"github.com/traderflow/mse-api/internal/service"
	"github.com/traderflow/mse-api/internal/storage"
	"github.com/traderflow/mse-api/internal/upstream"
)

// InitializeApp sets up all application dependencies and returns a fully
// configured Gin router, a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL.
//   - Initializes the repository and service layers.
//   - Builds the three upstream proxy clients with their caches.
//   - Configures the router and registers health probes.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewCompanyRepository(db)

	companies := service.NewCompanyService(repo)
	history := service.NewHistoryService(repo)

	upstreamCfg := upstream.Config{
		PredictionBaseURL: cfg.Upstream.PredictionBaseURL,
		IndicatorsBaseURL: cfg.Upstream.IndicatorsBaseURL,
		NewsBaseURL:       cfg.Upstream.NewsBaseURL,
		Timeout:           cfg.Upstream.Timeout,
		CacheSize:         cfg.Cache.Size,
		CacheTTL:          cfg.Cache.TTL,
	}
	predictor := upstream.NewPredictionClient(upstreamCfg)
	indicators := upstream.NewIndicatorsClient(upstreamCfg)
	news := upstream.NewNewsClient(upstreamCfg)

	handler := api.NewHandler(companies, history, predictor, indicators, news)
	router := api.NewRouter(handler)

	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
