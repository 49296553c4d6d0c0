// Package render turns an aggregate leaderboard response into Slack Block
// Kit output.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/slack-go/slack"

	api "github.com/eros1981/fanbase-inside-out-top5/pkg/api/top5"
	"github.com/eros1981/fanbase-inside-out-top5/pkg/leaderboard"
)

// freshnessUnknown matches the query service's advisory sentinel; the footer
// omits the freshness marker when it comes back as this value.
const freshnessUnknown = "Unknown"

// Top5Blocks renders a response as Block Kit blocks: a header naming the
// period, one section per category in fixed display order filtered to the
// requested selector, dividers between sections, and a context footer.
func Top5Blocks(resp *api.Response, selector leaderboard.Category, now time.Time) []slack.Block {
	period, err := leaderboard.ParsePeriod(resp.Period)
	displayPeriod := resp.Period
	if err == nil {
		displayPeriod = period.DisplayName()
	}

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType,
			fmt.Sprintf("🏆 Top 5 Performers – %s", displayPeriod), true, false)),
		slack.NewDividerBlock(),
	}

	shown := leaderboard.Expand(selector)
	for i, category := range shown {
		blocks = append(blocks, categorySection(category, resp.Results[string(category)]))
		if i < len(shown)-1 {
			blocks = append(blocks, slack.NewDividerBlock())
		}
	}

	blocks = append(blocks, footer(resp, now))
	return blocks
}

func categorySection(category leaderboard.Category, rows []leaderboard.RankedRow) *slack.SectionBlock {
	info, _ := leaderboard.Lookup(category)
	title := fmt.Sprintf("*%s %s*", info.Emoji, info.Label)

	var body string
	switch {
	case len(rows) == 0:
		body = "_No data available for this period_"
	case info.Format == leaderboard.FormatText:
		// A single freeform line, no rank or value.
		body = rows[0].User
	default:
		lines := make([]string, 0, len(rows))
		for i, row := range rows {
			rank := i + 1
			if row.Rank != nil {
				rank = *row.Rank
			}
			value := 0.0
			if row.Value != nil {
				value = *row.Value
			}
			lines = append(lines, fmt.Sprintf("%d. *%s* - %s", rank, row.User,
				leaderboard.FormatValue(value, row.Unit)))
		}
		body = strings.Join(lines, "\n")
	}

	return slack.NewSectionBlock(
		slack.NewTextBlockObject(slack.MarkdownType, title+"\n"+body, false, false), nil, nil)
}

func footer(resp *api.Response, now time.Time) *slack.ContextBlock {
	parts := []string{fmt.Sprintf("📊 Data as of %s", now.UTC().Format("1/2/2006"))}
	if resp.LastUpdated != "" && resp.LastUpdated != freshnessUnknown {
		parts = append(parts, "Last updated: "+resp.LastUpdated)
	}
	note := api.TieBreakNote
	if len(resp.Notes) > 0 {
		note = strings.Join(resp.Notes, " ")
	}
	parts = append(parts, note)

	return slack.NewContextBlock("",
		slack.NewTextBlockObject(slack.MarkdownType, strings.Join(parts, " | "), false, false))
}
