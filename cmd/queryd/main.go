package main

import (
	qhandlers "github.com/eros1981/fanbase-inside-out-top5/internal/queryd/handlers"
	qleaderboard "github.com/eros1981/fanbase-inside-out-top5/internal/queryd/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/internal/queryd/metrics"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/config"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/database"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/monitoring"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/server"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/signing"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("top5-query")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Top5 Query Service")

	hmacSecret := config.RequireEnv("HMAC_SHARED_SECRET")
	clickhouseHost := config.RequireEnv("CLICKHOUSE_HOST")
	clickhouseDB := config.RequireEnv("CLICKHOUSE_DB")
	clickhouseUser := config.RequireEnv("CLICKHOUSE_USER")
	clickhousePassword := config.RequireEnv("CLICKHOUSE_PASSWORD")

	// Connect to ClickHouse (the leaderboard warehouse)
	chConfig := database.DefaultClickHouseConfig()
	chConfig.Addr = []string{clickhouseHost}
	chConfig.Database = clickhouseDB
	chConfig.Username = clickhouseUser
	chConfig.Password = clickhousePassword
	clickhouse := database.MustConnectClickHouse(chConfig, logger)
	defer func() { _ = clickhouse.Close() }()

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("top5-query", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("top5-query", version.Version, version.GitCommit)

	healthChecker.AddCheck("clickhouse", monitoring.DatabaseHealthCheck(clickhouse))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"HMAC_SHARED_SECRET": hmacSecret,
		"CLICKHOUSE_HOST":    clickhouseHost,
		"CLICKHOUSE_DB":      clickhouseDB,
	}))

	serviceMetrics := metrics.NewMetrics(metricsCollector)

	executor := qleaderboard.NewExecutor(clickhouse, logger, serviceMetrics)
	service := qleaderboard.NewService(executor, logger)
	handlers := qhandlers.NewHandlers(service, executor, logger, serviceMetrics)

	// Liveness, readiness and metrics stay outside the signed group.
	router := server.SetupServiceRouter(logger, "top5-query", healthChecker, metricsCollector)

	apiGroup := router.Group("/api")
	apiGroup.Use(signing.Middleware(hmacSecret, logger))
	apiGroup.POST("/top5", handlers.Top5)

	serverConfig := server.DefaultConfig("top5-query", "18080")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server startup failed")
	}
}
