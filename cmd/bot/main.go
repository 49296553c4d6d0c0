package main

import (
	"github.com/slack-go/slack"

	"github.com/eros1981/fanbase-inside-out-top5/internal/bot/access"
	bothandlers "github.com/eros1981/fanbase-inside-out-top5/internal/bot/handlers"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/clients/top5"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/config"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/monitoring"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/server"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/version"
)

func main() {
	// Setup logger
	logger := logging.NewLoggerWithService("top5-bot")

	// Load environment variables
	config.LoadEnv(logger)

	logger.Info("Starting Top5 Slack Bot")

	slackSigningSecret := config.RequireEnv("SLACK_SIGNING_SECRET")
	slackBotToken := config.RequireEnv("SLACK_BOT_TOKEN")
	queryServiceURL := config.RequireEnv("QUERY_SERVICE_URL")
	hmacSecret := config.RequireEnv("HMAC_SHARED_SECRET")

	allowedUserIDs := config.GetEnvList("ALLOWED_USER_IDS")
	allowedGroupID := config.GetEnv("ALLOWED_USERGROUP_ID", "")
	if len(allowedUserIDs) == 0 && allowedGroupID == "" {
		logger.Warn("Neither ALLOWED_USER_IDS nor ALLOWED_USERGROUP_ID is set; all commands will be denied")
	}
	logger.WithFields(logging.Fields{
		"allowlist_size": len(allowedUserIDs),
		"usergroup_set":  allowedGroupID != "",
		"query_service":  queryServiceURL,
	}).Info("Authorization configuration loaded")

	slackClient := slack.New(slackBotToken)
	checker := access.NewChecker(allowedUserIDs, allowedGroupID, access.NewSlackDirectory(slackClient), logger)

	queryClient := top5.NewClient(top5.Config{
		BaseURL: queryServiceURL,
		Secret:  hmacSecret,
		Logger:  logger,
	})

	// Setup monitoring
	healthChecker := monitoring.NewHealthChecker("top5-bot", version.Version)
	metricsCollector := monitoring.NewMetricsCollector("top5-bot", version.Version, version.GitCommit)

	healthChecker.AddCheck("query_service", monitoring.HTTPServiceHealthCheck("top5-query", queryServiceURL+"/health"))
	healthChecker.AddCheck("config", monitoring.ConfigurationHealthCheck(map[string]string{
		"SLACK_SIGNING_SECRET": slackSigningSecret,
		"SLACK_BOT_TOKEN":      slackBotToken,
		"QUERY_SERVICE_URL":    queryServiceURL,
		"HMAC_SHARED_SECRET":   hmacSecret,
	}))

	handlers := bothandlers.NewHandlers(slackSigningSecret, checker, queryClient, logger)

	router := server.SetupServiceRouter(logger, "top5-bot", healthChecker, metricsCollector)
	router.POST("/slack/command", handlers.SlashCommand)

	serverConfig := server.DefaultConfig("top5-bot", "18081")
	if err := server.Start(serverConfig, router, logger); err != nil {
		logger.WithError(err).Fatal("Server startup failed")
	}
}
