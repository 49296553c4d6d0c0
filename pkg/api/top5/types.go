// Package top5 defines the wire contract between the chat bot and the
// query service.
package top5

import (
	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
)

// QueryRequest is the signed request body sent to POST /api/top5.
type QueryRequest struct {
	Month    string `json:"month"`    // canonical period, "YYYY-MM"
	Category string `json:"category"` // category identifier or "all"
}

// Response is the aggregate result for one request. Results maps concrete
// category identifiers (never "all") to ranked rows in display order.
type Response struct {
	Period      string                             `json:"period"`
	Results     map[string][]leaderboard.RankedRow `json:"results"`
	Notes       []string                           `json:"notes"`
	LastUpdated string                             `json:"lastUpdated,omitempty"`
}

// TieBreakNote is the disclosure attached to every response. Rank assignment
// implements competition ranking, so the note reflects actual behaviour.
const TieBreakNote = "Ties share the same rank; next rank is offset accordingly."
