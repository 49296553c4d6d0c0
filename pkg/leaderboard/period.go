package leaderboard

import (
	"fmt"
	"regexp"
	"strconv"
)

// Period is a fully validated calendar month. Construct via NewPeriod or
// ParsePeriod only; the string form is "YYYY-MM".
type Period struct {
	Year  string // 4 digits
	Month string // 2 digits, zero padded, "01".."12"
}

var periodRe = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

var monthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// NewPeriod validates loosely formatted month and year strings (month may be
// unpadded) and builds a canonical period.
func NewPeriod(month, year string) (Period, error) {
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return Period{}, fmt.Errorf("invalid month %q", month)
	}
	y, err := strconv.Atoi(year)
	if err != nil || y < 1000 || y > 9999 {
		return Period{}, fmt.Errorf("invalid year %q", year)
	}
	return Period{Year: fmt.Sprintf("%04d", y), Month: fmt.Sprintf("%02d", m)}, nil
}

// ParsePeriod parses the canonical "YYYY-MM" form.
func ParsePeriod(s string) (Period, error) {
	match := periodRe.FindStringSubmatch(s)
	if match == nil {
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY-MM", s)
	}
	return NewPeriod(match[2], match[1])
}

// String returns the canonical "YYYY-MM" form.
func (p Period) String() string {
	return p.Year + "-" + p.Month
}

// DisplayName returns the human form, e.g. "August 2025".
func (p Period) DisplayName() string {
	m, _ := strconv.Atoi(p.Month)
	return monthNames[m-1] + " " + p.Year
}
