package leaderboard

import "testing"

func TestFormatValue(t *testing.T) {
	tests := []struct {
		value float64
		unit  string
		want  string
	}{
		{1234.5, "USD", "$1,234.50"},
		{42, "USD", "$42.00"},
		{1000000, "USD", "$1,000,000.00"},
		{42, "points", "42 points"},
		{1234, "points", "1,234 points"},
		{98765, "views", "98,765 views"},
		{7, "bananas", "7 bananas"}, // unknown units fall back to count style
	}

	for _, tt := range tests {
		if got := FormatValue(tt.value, tt.unit); got != tt.want {
			t.Errorf("FormatValue(%v, %q) = %q, want %q", tt.value, tt.unit, got, tt.want)
		}
	}
}
