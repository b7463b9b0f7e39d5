package cli

import "testing"

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{42.5, "$42.50"},
		{0, "$0.00"},
		{150, "$150"},
		{12345.6, "$12,346"},
		{-42.5, "-$42.50"},
		{-250.75, "-$251"},
	}
	for _, tc := range cases {
		if got := FormatAmount(tc.in); got != tc.want {
			t.Errorf("FormatAmount(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-5000, "-5,000"},
	}
	for _, tc := range cases {
		if got := FormatNumber(tc.in); got != tc.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatDayOfWeek(t *testing.T) {
	if got := FormatDayOfWeek(0); got != "Mon" {
		t.Errorf("day 0 = %q, want Mon", got)
	}
	if got := FormatDayOfWeek(6); got != "Sun" {
		t.Errorf("day 6 = %q, want Sun", got)
	}
	if got := FormatDayOfWeek(9); got != "???" {
		t.Errorf("day 9 = %q, want ???", got)
	}
}
