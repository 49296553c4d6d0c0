package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

type fakeRunner struct {
	failing leaderboard.Category
	rows    map[leaderboard.Category][]leaderboard.RankedRow
}

func (f *fakeRunner) Top5(_ context.Context, category leaderboard.Category, _ leaderboard.Period) ([]leaderboard.RankedRow, error) {
	if category == f.failing {
		return nil, errors.New("warehouse timeout")
	}
	return f.rows[category], nil
}

func testPeriod(t *testing.T) leaderboard.Period {
	t.Helper()
	period, err := leaderboard.ParsePeriod("2025-08")
	require.NoError(t, err)
	return period
}

func TestQueryAllIsolatesCategoryFailure(t *testing.T) {
	value := 1200.0
	runner := &fakeRunner{
		failing: leaderboard.EyeballEmperor,
		rows: map[leaderboard.Category][]leaderboard.RankedRow{
			leaderboard.Monetizer: {{User: "Ada", UserID: "U1", Value: &value, Unit: "USD"}},
		},
	}
	svc := NewService(runner, logging.NewLogger())

	results, err := svc.Query(context.Background(), testPeriod(t), leaderboard.All)
	require.NoError(t, err)

	assert.Len(t, results, len(leaderboard.Expand(leaderboard.All)))
	for _, category := range leaderboard.Expand(leaderboard.All) {
		rows, ok := results[string(category)]
		require.True(t, ok, "missing key for %s", category)
		assert.NotNil(t, rows)
	}
	assert.Empty(t, results[string(leaderboard.EyeballEmperor)])
	assert.Len(t, results[string(leaderboard.Monetizer)], 1)
	assert.Equal(t, "Ada", results[string(leaderboard.Monetizer)][0].User)
}

func TestQuerySingleCategoryPropagatesFailure(t *testing.T) {
	runner := &fakeRunner{failing: leaderboard.Monetizer}
	svc := NewService(runner, logging.NewLogger())

	_, err := svc.Query(context.Background(), testPeriod(t), leaderboard.Monetizer)
	assert.Error(t, err)
}

func TestQuerySingleCategoryReturnsOnlyThatKey(t *testing.T) {
	runner := &fakeRunner{
		rows: map[leaderboard.Category][]leaderboard.RankedRow{
			leaderboard.ContentMachine: {{User: "Grace", UserID: "U2"}},
		},
	}
	svc := NewService(runner, logging.NewLogger())

	results, err := svc.Query(context.Background(), testPeriod(t), leaderboard.ContentMachine)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Len(t, results[string(leaderboard.ContentMachine)], 1)
}

func TestQueryEmptyResultsSerializeAsSlices(t *testing.T) {
	runner := &fakeRunner{}
	svc := NewService(runner, logging.NewLogger())

	results, err := svc.Query(context.Background(), testPeriod(t), leaderboard.HostWithTheMost)
	require.NoError(t, err)
	rows := results[string(leaderboard.HostWithTheMost)]
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
