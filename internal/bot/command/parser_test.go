package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Mid-month reference so previous-month math is unambiguous.
var august = time.Date(2025, time.August, 15, 12, 0, 0, 0, time.UTC)

func TestParseEmptyDefaultsToPreviousMonth(t *testing.T) {
	for _, text := range []string{"", "   "} {
		args := ParseAt(text, august)
		assert.Equal(t, "7", args.Month, "input %q", text)
		assert.Equal(t, "2025", args.Year)
		assert.Equal(t, "all", args.Category)
	}
}

func TestParseEmptyJanuaryRollsYearBack(t *testing.T) {
	january := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	args := ParseAt("", january)
	assert.Equal(t, "12", args.Month)
	assert.Equal(t, "2025", args.Year)
}

func TestParseEndOfMonthDoesNotSkip(t *testing.T) {
	endOfMarch := time.Date(2025, time.March, 31, 23, 0, 0, 0, time.UTC)
	args := ParseAt("", endOfMarch)
	assert.Equal(t, "2", args.Month)
	assert.Equal(t, "2025", args.Year)
}

func TestParseLastIgnoresSuppliedYear(t *testing.T) {
	args := ParseAt("top5 last 2024 monetizer", august)
	assert.Equal(t, "7", args.Month)
	assert.Equal(t, "2025", args.Year)
	assert.Equal(t, "monetizer", args.Category)
}

func TestParseISOForm(t *testing.T) {
	args := ParseAt("top5 2025-08 all", august)
	assert.Equal(t, "08", args.Month)
	assert.Equal(t, "2025", args.Year)
	assert.Equal(t, "all", args.Category)
}

func TestParseMonthAbbreviation(t *testing.T) {
	args := ParseAt("top5 aug 2025", august)
	assert.Equal(t, "08", args.Month)
	assert.Equal(t, "2025", args.Year)
	assert.Empty(t, args.Category)
}

func TestParseFullMonthNameCaseInsensitive(t *testing.T) {
	args := ParseAt("DECEMBER 2024 content_machine", august)
	assert.Equal(t, "12", args.Month)
	assert.Equal(t, "2024", args.Year)
	assert.Equal(t, "content_machine", args.Category)
}

func TestParseUnrecognizedMonthPassesThrough(t *testing.T) {
	args := ParseAt("top5 smarch 2025 all", august)
	assert.Equal(t, "smarch", args.Month)
	assert.Equal(t, "2025", args.Year)
	assert.Equal(t, "all", args.Category)
}

func TestParseSingleTokenFallsBackToCurrentMonth(t *testing.T) {
	args := ParseAt("top5", august)
	assert.Equal(t, "8", args.Month)
	assert.Equal(t, "2025", args.Year)
	assert.Empty(t, args.Category)
}

func TestParseCategoryIsLowercased(t *testing.T) {
	args := ParseAt("aug 2025 MONETIZER", august)
	assert.Equal(t, "monetizer", args.Category)
}

func TestParseLastMonthLiteral(t *testing.T) {
	args := ParseAt("last-month 2025", august)
	assert.Equal(t, "7", args.Month)
	assert.Equal(t, "2025", args.Year)
	assert.Empty(t, args.Category)
}
