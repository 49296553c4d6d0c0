package render

import (
	"testing"
	"time"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "github.com/eros1981/fanbase-inside-out-top5/pkg/api/top5"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
)

var renderTime = time.Date(2025, time.September, 1, 9, 0, 0, 0, time.UTC)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func fullResponse() *api.Response {
	results := map[string][]leaderboard.RankedRow{
		"monetizer": {
			{Rank: intPtr(1), User: "Ada", UserID: "U1", Value: floatPtr(1234.5), Unit: "USD"},
			{Rank: intPtr(2), User: "Grace", UserID: "U2", Value: floatPtr(900), Unit: "USD"},
		},
		"content_machine":    {{Rank: intPtr(1), User: "Linus", UserID: "U3", Value: floatPtr(42), Unit: "posts"}},
		"eyeball_emperor":    {},
		"host_with_the_most": {},
		"product_whisperer":  {{User: "Deep dive on the playlist editor revamp.", UserID: "U4"}},
	}
	return &api.Response{
		Period:      "2025-08",
		Results:     results,
		Notes:       []string{api.TieBreakNote},
		LastUpdated: "September 1, 2025 at 6:30 AM UTC",
	}
}

func sectionTexts(t *testing.T, blocks []slack.Block) []string {
	t.Helper()
	var texts []string
	for _, b := range blocks {
		if section, ok := b.(*slack.SectionBlock); ok {
			require.NotNil(t, section.Text)
			texts = append(texts, section.Text.Text)
		}
	}
	return texts
}

func TestTop5BlocksAllCategories(t *testing.T) {
	blocks := Top5Blocks(fullResponse(), leaderboard.All, renderTime)

	header, ok := blocks[0].(*slack.HeaderBlock)
	require.True(t, ok)
	assert.Equal(t, "🏆 Top 5 Performers – August 2025", header.Text.Text)

	texts := sectionTexts(t, blocks)
	require.Len(t, texts, 5)
	assert.Contains(t, texts[0], "💰 Monetizer")
	assert.Contains(t, texts[0], "1. *Ada* - $1,234.50")
	assert.Contains(t, texts[0], "2. *Grace* - $900.00")
	assert.Contains(t, texts[1], "1. *Linus* - 42 posts")
	assert.Contains(t, texts[2], "_No data available for this period_")
	assert.Contains(t, texts[4], "🧠 Product Whisperer")
	assert.Contains(t, texts[4], "Deep dive on the playlist editor revamp.")
	assert.NotContains(t, texts[4], "1.")
}

func TestTop5BlocksDividersBetweenNotAfterLast(t *testing.T) {
	blocks := Top5Blocks(fullResponse(), leaderboard.All, renderTime)

	// Header divider plus four between the five category sections.
	dividers := 0
	for _, b := range blocks {
		if _, ok := b.(*slack.DividerBlock); ok {
			dividers++
		}
	}
	assert.Equal(t, 5, dividers)

	// Last two blocks are the final section and the context footer.
	_, isSection := blocks[len(blocks)-2].(*slack.SectionBlock)
	assert.True(t, isSection)
	_, isContext := blocks[len(blocks)-1].(*slack.ContextBlock)
	assert.True(t, isContext)
}

func TestTop5BlocksSingleCategory(t *testing.T) {
	blocks := Top5Blocks(fullResponse(), leaderboard.Monetizer, renderTime)

	texts := sectionTexts(t, blocks)
	require.Len(t, texts, 1)
	assert.Contains(t, texts[0], "💰 Monetizer")

	dividers := 0
	for _, b := range blocks {
		if _, ok := b.(*slack.DividerBlock); ok {
			dividers++
		}
	}
	assert.Equal(t, 1, dividers, "only the header divider for a single section")
}

func footerText(t *testing.T, blocks []slack.Block) string {
	t.Helper()
	ctx, ok := blocks[len(blocks)-1].(*slack.ContextBlock)
	require.True(t, ok)
	elements := ctx.ContextElements.Elements
	require.Len(t, elements, 1)
	text, ok := elements[0].(*slack.TextBlockObject)
	require.True(t, ok)
	return text.Text
}

func TestFooterIncludesFreshnessWhenKnown(t *testing.T) {
	text := footerText(t, Top5Blocks(fullResponse(), leaderboard.All, renderTime))
	assert.Contains(t, text, "📊 Data as of 9/1/2025")
	assert.Contains(t, text, "Last updated: September 1, 2025 at 6:30 AM UTC")
	assert.Contains(t, text, api.TieBreakNote)
}

func TestFooterOmitsUnknownFreshness(t *testing.T) {
	resp := fullResponse()
	resp.LastUpdated = "Unknown"
	text := footerText(t, Top5Blocks(resp, leaderboard.All, renderTime))
	assert.NotContains(t, text, "Last updated")
	assert.Contains(t, text, api.TieBreakNote)
}
