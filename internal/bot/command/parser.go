// Package command turns free-text slash command input into a structured
// query. Parsing is deliberately permissive and total; strict validation
// happens in the handler.
package command

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Args is the parsed command input. Month is "1".."12" or zero-padded,
// Year is 4 digits. Category is empty when the user did not name one,
// letting the caller apply its own default. Unrecognized month or category
// tokens pass through unchanged for the caller to reject.
type Args struct {
	Month    string
	Year     string
	Category string
}

var isoPeriod = regexp.MustCompile(`^\d{4}-\d{2}$`)

var monthAliases = map[string]string{
	"jan": "01", "january": "01",
	"feb": "02", "february": "02",
	"mar": "03", "march": "03",
	"apr": "04", "april": "04",
	"may": "05",
	"jun": "06", "june": "06",
	"jul": "07", "july": "07",
	"aug": "08", "august": "08",
	"sep": "09", "september": "09",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

// Parse parses command text relative to the current time.
func Parse(text string) Args {
	return ParseAt(text, time.Now().UTC())
}

// ParseAt parses command text relative to a reference time. It never fails;
// it returns best-effort structured output.
func ParseAt(text string, now time.Time) Args {
	tokens := strings.Fields(text)

	// No arguments: default to the previous calendar month, all categories.
	if len(tokens) == 0 {
		month, year := previousMonth(now)
		return Args{Month: month, Year: year, Category: "all"}
	}

	// A leading "top5" literal is noise from the command syntax.
	if strings.EqualFold(tokens[0], "top5") {
		tokens = tokens[1:]
	}

	if len(tokens) < 2 {
		// A single leftover token is ambiguous; fall back to the current
		// month and let the handler apply the category default.
		return Args{
			Month: strconv.Itoa(int(now.Month())),
			Year:  strconv.Itoa(now.Year()),
		}
	}

	args := Args{}
	monthToken := strings.ToLower(tokens[0])
	switch {
	case monthToken == "last" || monthToken == "last-month":
		// Resolves from the clock; a supplied year token is ignored.
		args.Month, args.Year = previousMonth(now)
		args.Category = categoryAfterYear(tokens[1:])
	case isoPeriod.MatchString(monthToken):
		args.Year = monthToken[:4]
		args.Month = monthToken[5:]
		args.Category = categoryAfterYear(tokens[1:])
	default:
		if mapped, ok := monthAliases[monthToken]; ok {
			args.Month = mapped
		} else {
			args.Month = monthToken
		}
		args.Year = tokens[1]
		if len(tokens) >= 3 {
			args.Category = strings.ToLower(tokens[2])
		}
	}
	return args
}

var yearToken = regexp.MustCompile(`^\d{4}$`)

// categoryAfterYear picks the category from leftover tokens when the month
// form already fixed the year ("last" and YYYY-MM). A redundant year token
// is skipped so "last 2024 monetizer" and "2025-08 all" both resolve.
func categoryAfterYear(rest []string) string {
	for _, token := range rest {
		if yearToken.MatchString(token) {
			continue
		}
		return strings.ToLower(token)
	}
	return ""
}

// previousMonth returns the month before now's calendar month, handling the
// January rollover. Computed from components rather than AddDate so that
// end-of-month dates cannot skip a month.
func previousMonth(now time.Time) (month, year string) {
	m := int(now.Month()) - 1
	y := now.Year()
	if m == 0 {
		m = 12
		y--
	}
	return strconv.Itoa(m), strconv.Itoa(y)
}
