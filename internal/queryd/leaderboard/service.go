package leaderboard

import (
	"context"
	"sync"

	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/logging"
)

// Runner executes one category query. Satisfied by *Executor; narrowed to an
// interface so the fan-out can be tested without a warehouse.
type Runner interface {
	Top5(ctx context.Context, category leaderboard.Category, period leaderboard.Period) ([]leaderboard.RankedRow, error)
}

// Service fans a single logical request out over category queries.
type Service struct {
	runner Runner
	logger logging.Logger
}

// NewService builds the fan-out orchestrator.
func NewService(runner Runner, logger logging.Logger) *Service {
	return &Service{runner: runner, logger: logger}
}

// Query resolves a selector into per-category results.
//
// Under "all", every category runs as an independent concurrent query and
// failures are isolated: a failing category contributes an empty result for
// its own key and never aborts the batch. A single-category request
// propagates its failure to the caller instead.
func (s *Service) Query(ctx context.Context, period leaderboard.Period, selector leaderboard.Category) (map[string][]leaderboard.RankedRow, error) {
	if selector != leaderboard.All {
		rows, err := s.runner.Top5(ctx, selector, period)
		if err != nil {
			return nil, err
		}
		return map[string][]leaderboard.RankedRow{string(selector): emptyNotNil(rows)}, nil
	}

	categories := leaderboard.Expand(leaderboard.All)
	resultSets := make([][]leaderboard.RankedRow, len(categories))

	var wg sync.WaitGroup
	for i, category := range categories {
		wg.Add(1)
		go func(i int, category leaderboard.Category) {
			defer wg.Done()
			rows, err := s.runner.Top5(ctx, category, period)
			if err != nil {
				// Isolation boundary: this category degrades to an
				// empty result, siblings are unaffected.
				s.logger.WithError(err).WithFields(logging.Fields{
					"category": category,
					"month":    period.String(),
				}).Error("Category query failed; returning empty result")
				return
			}
			resultSets[i] = rows
		}(i, category)
	}
	wg.Wait()

	results := make(map[string][]leaderboard.RankedRow, len(categories))
	for i, category := range categories {
		results[string(category)] = emptyNotNil(resultSets[i])
	}
	return results, nil
}

// emptyNotNil keeps "no data" serializing as [] rather than null.
func emptyNotNil(rows []leaderboard.RankedRow) []leaderboard.RankedRow {
	if rows == nil {
		return []leaderboard.RankedRow{}
	}
	return rows
}
