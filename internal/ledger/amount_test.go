package ledger

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"  2500.75 ", 2500.75},
		{"$2500", 2500},
		{"$1,234.56", 1234.56},
		{"(1,000.50)", -1000.50},
		{"($1,000.50)", -1000.50},
		{"(45)", -45},
		{".-1000", -1000},
		{"-12.5", -12.5},
		{"???", 0},
		{"", 0},
		{"abc", 0},
		{"USD 99.99", 99.99},
		{"5000000", MaxAmount},
		{"1000000", MaxAmount},
		{"-5000000", -5000000}, // no lower clip
	}

	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if got != tc.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseAmount_NeverPanics(t *testing.T) {
	for _, in := range []string{"(", ")", ".", "-", ".-", "--", "1.2.3", "(.)"} {
		got := ParseAmount(in)
		if got != 0 {
			t.Errorf("ParseAmount(%q) = %v, want 0 for unparseable input", in, got)
		}
	}
}
