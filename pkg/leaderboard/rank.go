package leaderboard

// RankedRow is one leaderboard entry. Rank and Value are nil for the
// product_whisperer category, which carries a static informational message
// rather than a ranking.
type RankedRow struct {
	Rank   *int     `json:"rank,omitempty"`
	User   string   `json:"user"`
	UserID string   `json:"user_id"`
	Value  *float64 `json:"value,omitempty"`
	Unit   string   `json:"unit"`
}

// AssignRanks applies competition ranking in place: rows with equal values
// share the rank of the first row in the tie group, and the next distinct
// value's rank is offset by the group size (1, 2, 2, 4). Rows are assumed to
// arrive already sorted by the data source.
func AssignRanks(rows []RankedRow) {
	for i := range rows {
		rank := i + 1
		if i > 0 && rows[i].Value != nil && rows[i-1].Value != nil &&
			*rows[i].Value == *rows[i-1].Value && rows[i-1].Rank != nil {
			rank = *rows[i-1].Rank
		}
		r := rank
		rows[i].Rank = &r
	}
}
