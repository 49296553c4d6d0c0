package command

import "strings"

// IsHelp reports whether the command text is a help request.
func IsHelp(text string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(text))
	return trimmed == "help" || trimmed == "top5 help"
}

// HelpText is the static usage listing shown for the help subcommand.
const HelpText = "*Top 5 Leaderboard*\n" +
	"Usage: `/insideout [top5] [month] [year] [category|all]`\n\n" +
	"*Months*: full name or 3-letter abbreviation (`aug`, `august`), " +
	"`YYYY-MM`, or `last` for the previous month.\n" +
	"*Categories*: `monetizer`, `content_machine`, `eyeball_emperor`, " +
	"`host_with_the_most`, `product_whisperer`, `all`.\n\n" +
	"*Examples*:\n" +
	"• `/insideout` – previous month, all categories\n" +
	"• `/insideout top5 aug 2025 all`\n" +
	"• `/insideout 2025-08 monetizer`\n" +
	"• `/insideout last 2025 monetizer`"
