package leaderboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

var rowColumns = []string{"display_name", "user_name", "user_id", "metric_value", "unit"}

func newMockExecutor(t *testing.T) (*Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewExecutor(db, logging.NewLogger(), nil), mock
}

func TestTop5NormalizesAndRanksRows(t *testing.T) {
	executor, mock := newMockExecutor(t)

	rows := sqlmock.NewRows(rowColumns).
		AddRow("Ada Lovelace", "ada", "U1", "2500.50", "USD").
		AddRow(nil, "grace", "U2", "1800", "USD").
		AddRow(nil, nil, "U3", "1800", "USD").
		AddRow("Linus", "linus", "U4", "not-a-number", nil)
	mock.ExpectQuery("SELECT").WithArgs("2025-08").WillReturnRows(rows)

	period, err := leaderboard.ParsePeriod("2025-08")
	require.NoError(t, err)

	result, err := executor.Top5(context.Background(), leaderboard.Monetizer, period)
	require.NoError(t, err)
	require.Len(t, result, 4)

	// display_name wins, then user_name, then the Unknown fallback.
	assert.Equal(t, "Ada Lovelace", result[0].User)
	assert.Equal(t, "grace", result[1].User)
	assert.Equal(t, "Unknown", result[2].User)

	// Ties share a rank and the next rank is offset by the group size.
	require.NotNil(t, result[1].Rank)
	require.NotNil(t, result[2].Rank)
	require.NotNil(t, result[3].Rank)
	assert.Equal(t, 1, *result[0].Rank)
	assert.Equal(t, 2, *result[1].Rank)
	assert.Equal(t, 2, *result[2].Rank)
	assert.Equal(t, 4, *result[3].Rank)

	// Unparseable values fall back to zero, missing units to "points".
	require.NotNil(t, result[3].Value)
	assert.Zero(t, *result[3].Value)
	assert.Equal(t, "points", result[3].Unit)
	assert.Equal(t, "USD", result[0].Unit)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTop5ProductWhispererSkipsRanking(t *testing.T) {
	executor, mock := newMockExecutor(t)

	rows := sqlmock.NewRows(rowColumns).
		AddRow("August went deep on the playlist editor revamp.", nil, "U9", "", "")
	mock.ExpectQuery("SELECT").WithArgs("2025-08").WillReturnRows(rows)

	period, err := leaderboard.ParsePeriod("2025-08")
	require.NoError(t, err)

	result, err := executor.Top5(context.Background(), leaderboard.ProductWhisperer, period)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Nil(t, result[0].Rank)
	assert.Nil(t, result[0].Value)
	assert.Empty(t, result[0].Unit)
}

func TestTop5QueryErrorIsWrapped(t *testing.T) {
	executor, mock := newMockExecutor(t)
	mock.ExpectQuery("SELECT").WithArgs("2025-08").WillReturnError(errors.New("connection refused"))

	period, err := leaderboard.ParsePeriod("2025-08")
	require.NoError(t, err)

	_, err = executor.Top5(context.Background(), leaderboard.Monetizer, period)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monetizer")
}

func TestTop5UnknownCategoryHasNoTemplate(t *testing.T) {
	executor, _ := newMockExecutor(t)

	period, err := leaderboard.ParsePeriod("2025-08")
	require.NoError(t, err)

	_, err = executor.Top5(context.Background(), leaderboard.Category("bogus"), period)
	assert.Error(t, err)
}

func TestLastUpdatedFormatsUTC(t *testing.T) {
	executor, mock := newMockExecutor(t)

	syncedAt := time.Date(2025, time.September, 1, 6, 30, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"last_updated"}).AddRow(syncedAt))

	assert.Equal(t, "September 1, 2025 at 6:30 AM UTC", executor.LastUpdated(context.Background()))
}

func TestLastUpdatedFailureReturnsUnknown(t *testing.T) {
	executor, mock := newMockExecutor(t)
	mock.ExpectQuery("SELECT").WillReturnError(errors.New("table missing"))

	assert.Equal(t, FreshnessUnknown, executor.LastUpdated(context.Background()))
}

func TestLastUpdatedNullReturnsUnknown(t *testing.T) {
	executor, mock := newMockExecutor(t)
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"last_updated"}).AddRow(nil))

	assert.Equal(t, FreshnessUnknown, executor.LastUpdated(context.Background()))
}
