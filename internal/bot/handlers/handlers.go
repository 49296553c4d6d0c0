// Package handlers exposes the chat bot's HTTP surface: the slash command
// endpoint Slack posts to.
package handlers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"

	"github.com/eros1981/fanbase-inside-out-top5/internal/bot/command"
	"github.com/eros1981/fanbase-inside-out-top5/internal/bot/render"
	api "github.com/eros1981/fanbase-inside-out-top5/pkg/api/top5"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

const lookupTimeout = 30 * time.Second

// Slack response_type values for command replies.
const (
	responseEphemeral = "ephemeral"
	responseInChannel = "in_channel"
)

const usageHint = "Usage: `/insideout top5 [month] [year] [category|all]`\n" +
	"Example: `/insideout top5 aug 2025 all`"

// Authorizer decides whether a user may run lookups.
type Authorizer interface {
	Allowed(ctx context.Context, userID string) bool
}

// QueryClient fetches leaderboard data from the query service.
type QueryClient interface {
	Top5(ctx context.Context, period leaderboard.Period, category leaderboard.Category) (*api.Response, error)
}

// Handlers carries the bot's dependencies.
type Handlers struct {
	signingSecret string
	authorizer    Authorizer
	client        QueryClient
	logger        logging.Logger
	httpClient    *http.Client
	now           func() time.Time
}

// NewHandlers wires the slash command handler. The Slack signing secret
// authenticates inbound requests; it is unrelated to the query service's
// shared HMAC secret.
func NewHandlers(signingSecret string, authorizer Authorizer, client QueryClient, logger logging.Logger) *Handlers {
	return &Handlers{
		signingSecret: signingSecret,
		authorizer:    authorizer,
		client:        client,
		logger:        logger,
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		now:           time.Now,
	}
}

// SlashCommand handles POST /slack/command. Slack expects an acknowledgement
// within its deadline, so the query itself runs after the ack and the result
// is delivered through the command's response URL.
func (h *Handlers) SlashCommand(c *gin.Context) {
	if !h.verifySlackSignature(c) {
		c.String(http.StatusUnauthorized, "invalid signature")
		return
	}

	cmd, err := slack.SlashCommandParse(c.Request)
	if err != nil {
		h.logger.WithError(err).Error("Failed to parse slash command")
		c.String(http.StatusBadRequest, "bad request")
		return
	}

	if !h.authorizer.Allowed(c.Request.Context(), cmd.UserID) {
		h.logger.WithField("user_id", cmd.UserID).Warn("Access denied for slash command")
		ephemeral(c, "❌ Access denied. This command is restricted.")
		return
	}

	if command.IsHelp(cmd.Text) {
		ephemeral(c, command.HelpText)
		return
	}

	args := command.ParseAt(cmd.Text, h.now().UTC())

	period, err := leaderboard.NewPeriod(args.Month, args.Year)
	if err != nil {
		ephemeral(c, "❌ Invalid month. Use a month name, `YYYY-MM`, or `last`.\n\n"+usageHint)
		return
	}

	selector := leaderboard.Category(args.Category)
	if args.Category == "" {
		selector = leaderboard.All
	}
	if !leaderboard.IsValid(selector) {
		ephemeral(c, "❌ Invalid category. Valid options: "+leaderboard.ValidNamesList())
		return
	}

	go h.lookupAndRespond(cmd, period, selector)
	ephemeral(c, "⏳ Fetching top 5 for "+period.DisplayName()+"...")
}

// lookupAndRespond runs after the command has been acknowledged, so it gets
// its own deadline instead of the dead request context.
func (h *Handlers) lookupAndRespond(cmd slack.SlashCommand, period leaderboard.Period, selector leaderboard.Category) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	resp, err := h.client.Top5(ctx, period, selector)
	if err != nil {
		h.logger.WithError(err).WithFields(logging.Fields{
			"user_id": cmd.UserID,
			"period":  period.String(),
		}).Error("Leaderboard lookup failed")
		h.respond(ctx, cmd.ResponseURL, &slack.WebhookMessage{
			ResponseType: responseEphemeral,
			Text: "❌ Unable to fetch top 5 data. Please check your parameters and try again.\n\n" +
				usageHint,
		})
		return
	}

	blocks := render.Top5Blocks(resp, selector, h.now().UTC())
	h.respond(ctx, cmd.ResponseURL, &slack.WebhookMessage{
		ResponseType: responseInChannel,
		Blocks:       &slack.Blocks{BlockSet: blocks},
	})

	h.logger.WithFields(logging.Fields{
		"user_id":  cmd.UserID,
		"period":   resp.Period,
		"category": selector,
	}).Info("Slash command processed")
}

func (h *Handlers) respond(ctx context.Context, responseURL string, msg *slack.WebhookMessage) {
	if err := slack.PostWebhookCustomHTTPContext(ctx, responseURL, h.httpClient, msg); err != nil {
		h.logger.WithError(err).Error("Failed to deliver command response")
	}
}

// verifySlackSignature checks Slack's request signature and restores the
// body for the form parser.
func (h *Handlers) verifySlackSignature(c *gin.Context) bool {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return false
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	verifier, err := slack.NewSecretsVerifier(c.Request.Header, h.signingSecret)
	if err != nil {
		h.logger.WithError(err).Warn("Slash command missing signature headers")
		return false
	}
	if _, err := verifier.Write(body); err != nil {
		return false
	}
	if err := verifier.Ensure(); err != nil {
		h.logger.WithError(err).Warn("Slash command signature mismatch")
		return false
	}
	return true
}

// ephemeral acknowledges the command with a message only the caller sees.
func ephemeral(c *gin.Context, text string) {
	c.JSON(http.StatusOK, gin.H{
		"response_type": responseEphemeral,
		"text":          text,
	})
}
