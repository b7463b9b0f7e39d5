package ledger

import "testing"

func TestCanonicalCategory_Synonyms(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"fod", "food"},
		{"foods", "food"},
		{"rnt", "rent"},
		{"rentt", "rent"},
		{"utlities", "utilities"},
		{"entrtnmnt", "entertainment"},
		{"helth", "health"},
		{"salary", "income"},
		{"bonus", "income"},
		{"saving", "savings"},
		{"other", "misc"},
		{"  FOOD  ", "food"},
		{"EDU", "education"},
	}

	for _, tc := range cases {
		got := CanonicalCategory(tc.in)
		if got != tc.want {
			t.Errorf("CanonicalCategory(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCanonicalCategory_PassthroughUnknown(t *testing.T) {
	got := CanonicalCategory("  Groceries ")
	if got != "groceries" {
		t.Errorf("unknown category = %q, want lowered/trimmed passthrough %q", got, "groceries")
	}
}

func TestMergedSynonyms_OverridesWithoutMutation(t *testing.T) {
	merged := MergedSynonyms(map[string]string{"Groceries": "Food", "fod": "misc"})

	if got := CanonicalWith("groceries", merged); got != "food" {
		t.Errorf("override lookup = %q, want food", got)
	}
	if got := CanonicalWith("fod", merged); got != "misc" {
		t.Errorf("override should win over default, got %q", got)
	}
	// Default table must be untouched.
	if got := CanonicalCategory("fod"); got != "food" {
		t.Errorf("default table mutated: fod = %q, want food", got)
	}
}
