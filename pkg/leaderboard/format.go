package leaderboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// FormatValue renders a metric value for display. USD values get a currency
// prefix, two decimal places and thousands separators; anything else renders
// as a grouped number followed by the unit label.
func FormatValue(value float64, unit string) string {
	if unit == "USD" {
		return printer.Sprintf("$%v", number.Decimal(value,
			number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	}
	return printer.Sprintf("%v %s", number.Decimal(value), unit)
}
