// Package handlers exposes the query service HTTP surface.
package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eros1981/fanbase-inside-out-top5/internal/queryd/metrics"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/api/common"
	api "github.com/eros1981/fanbase-inside-out-top5/pkg/api/top5"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

// Queryer resolves a period and selector into per-category results.
// Satisfied by the fan-out service.
type Queryer interface {
	Query(ctx context.Context, period leaderboard.Period, selector leaderboard.Category) (map[string][]leaderboard.RankedRow, error)
}

// Freshness looks up the warehouse sync marker. Satisfied by the executor.
type Freshness interface {
	LastUpdated(ctx context.Context) string
}

// Handlers carries the query service dependencies. No package-level state;
// everything is injected so tests can swap the service out.
type Handlers struct {
	service   Queryer
	freshness Freshness
	logger    logging.Logger
	metrics   *metrics.Metrics
}

// NewHandlers wires the HTTP layer to the fan-out service.
func NewHandlers(service Queryer, freshness Freshness, logger logging.Logger, m *metrics.Metrics) *Handlers {
	return &Handlers{service: service, freshness: freshness, logger: logger, metrics: m}
}

// Top5 handles POST /api/top5. The body has already passed signature
// verification by the time this runs.
func (h *Handlers) Top5(c *gin.Context) {
	var req api.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid request body"})
		return
	}

	period, err := leaderboard.ParsePeriod(req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{Error: "Invalid month format. Expected YYYY-MM"})
		return
	}

	selector := leaderboard.Category(req.Category)
	if !leaderboard.IsValid(selector) {
		c.JSON(http.StatusBadRequest, common.ErrorResponse{
			Error: fmt.Sprintf("Invalid category. Valid options: %s", leaderboard.ValidNamesList()),
		})
		return
	}

	results, err := h.service.Query(c.Request.Context(), period, selector)
	if err != nil {
		h.logger.WithError(err).WithFields(logging.Fields{
			"month":    req.Month,
			"category": req.Category,
		}).Error("Leaderboard query failed")
		h.observe(selector, "error")
		c.JSON(http.StatusInternalServerError, common.ErrorResponse{Error: "Failed to fetch leaderboard data"})
		return
	}
	h.observe(selector, "success")

	c.JSON(http.StatusOK, api.Response{
		Period:      period.String(),
		Results:     results,
		Notes:       []string{api.TieBreakNote},
		LastUpdated: h.freshness.LastUpdated(c.Request.Context()),
	})
}

func (h *Handlers) observe(category leaderboard.Category, status string) {
	if h.metrics == nil {
		return
	}
	h.metrics.LeaderboardQueries.WithLabelValues(string(category), status).Inc()
}
