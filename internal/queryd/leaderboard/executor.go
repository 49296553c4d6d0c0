// Package leaderboard implements the query side of the top-5 pipeline: one
// embedded SQL template per category, parameterized execution against the
// warehouse, row normalization and tie-aware rank assignment.
package leaderboard

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"strconv"
	"time"

	"github.com/eros1981/fanbase-inside-out-top5/internal/queryd/metrics"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

//go:embed sql/*.sql
var templates embed.FS

// FreshnessUnknown is the sentinel returned when the freshness lookup fails.
// Freshness is advisory and must never block a request.
const FreshnessUnknown = "Unknown"

// Executor runs per-category leaderboard queries against the warehouse.
type Executor struct {
	db      *sql.DB
	logger  logging.Logger
	metrics *metrics.Metrics
}

// NewExecutor builds an executor over an already connected warehouse handle.
func NewExecutor(db *sql.DB, logger logging.Logger, m *metrics.Metrics) *Executor {
	return &Executor{db: db, logger: logger, metrics: m}
}

// template loads the embedded query for a category, keyed by the
// "{category}_top5" naming convention.
func template(category leaderboard.Category) (string, error) {
	name := fmt.Sprintf("sql/%s_top5.sql", category)
	raw, err := templates.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("no query template for category %q: %w", category, err)
	}
	return string(raw), nil
}

// Top5 executes the category's query for the given period and normalizes the
// rows. The month value is bound as a query parameter, never spliced into the
// query text.
func (e *Executor) Top5(ctx context.Context, category leaderboard.Category, period leaderboard.Period) ([]leaderboard.RankedRow, error) {
	query, err := template(category)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	rows, err := e.db.QueryContext(ctx, query, period.String())
	if e.metrics != nil {
		e.metrics.QueryDuration.WithLabelValues(string(category)).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if e.metrics != nil {
			e.metrics.WarehouseQueries.WithLabelValues(string(category)+"_top5", "error").Inc()
		}
		return nil, fmt.Errorf("query for %s failed: %w", category, err)
	}
	defer rows.Close()

	var result []leaderboard.RankedRow
	for rows.Next() {
		var displayName, userName, userID, metricValue, unit sql.NullString
		if err := rows.Scan(&displayName, &userName, &userID, &metricValue, &unit); err != nil {
			return nil, fmt.Errorf("scan for %s failed: %w", category, err)
		}
		result = append(result, normalizeRow(category, displayName, userName, userID, metricValue, unit))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration for %s failed: %w", category, err)
	}

	if category != leaderboard.ProductWhisperer {
		leaderboard.AssignRanks(result)
	}

	if e.metrics != nil {
		e.metrics.WarehouseQueries.WithLabelValues(string(category)+"_top5", "success").Inc()
	}
	e.logger.WithFields(logging.Fields{
		"category": category,
		"month":    period.String(),
		"rows":     len(result),
	}).Debug("Leaderboard query executed")

	return result, nil
}

// normalizeRow maps a raw warehouse row onto the common ranked-row shape.
// Product Whisperer is a static informational message: no rank, no value,
// empty unit.
func normalizeRow(category leaderboard.Category, displayName, userName, userID, metricValue, unit sql.NullString) leaderboard.RankedRow {
	user := "Unknown"
	if displayName.Valid && displayName.String != "" {
		user = displayName.String
	} else if userName.Valid && userName.String != "" {
		user = userName.String
	}

	row := leaderboard.RankedRow{
		User:   user,
		UserID: userID.String,
	}

	if category == leaderboard.ProductWhisperer {
		return row
	}

	value := 0.0
	if metricValue.Valid {
		if parsed, err := strconv.ParseFloat(metricValue.String, 64); err == nil {
			value = parsed
		}
	}
	row.Value = &value

	row.Unit = "points"
	if unit.Valid && unit.String != "" {
		row.Unit = unit.String
	}

	return row
}

// LastUpdated returns a human-readable UTC freshness marker, or the
// FreshnessUnknown sentinel on any failure.
func (e *Executor) LastUpdated(ctx context.Context) string {
	query, err := templates.ReadFile("sql/last_updated.sql")
	if err != nil {
		e.logger.WithError(err).Error("Freshness template missing")
		return FreshnessUnknown
	}

	var lastUpdated sql.NullTime
	if err := e.db.QueryRowContext(ctx, string(query)).Scan(&lastUpdated); err != nil {
		e.logger.WithError(err).Warn("Freshness lookup failed")
		return FreshnessUnknown
	}
	if !lastUpdated.Valid {
		return FreshnessUnknown
	}

	return lastUpdated.Time.UTC().Format("January 2, 2006 at 3:04 PM UTC")
}
