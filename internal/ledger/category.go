package ledger

import "strings"

// Uncategorized is assigned to every record when the ledger has no
// category column at all.
const Uncategorized = "uncategorized"

// CanonicalCategories is the fixed set that the synonym table maps into.
// Unrecognized labels pass through unchanged, so the set is not closed.
var CanonicalCategories = []string{
	"food", "education", "entertainment", "rent", "utilities",
	"travel", "health", "savings", "income", "misc",
}

// defaultSynonyms maps common misspellings and variants to a canonical
// category. Process-wide constant; merged copies are built for overrides,
// the table itself is never mutated.
var defaultSynonyms = map[string]string{
	"food": "food", "fod": "food", "foodd": "food", "foods": "food",
	"education": "education", "edu": "education", "educaton": "education",
	"entertainment": "entertainment", "entertain": "entertainment", "entrtnmnt": "entertainment",
	"rent": "rent", "rentt": "rent", "rnt": "rent",
	"utilities": "utilities", "utility": "utilities", "utlities": "utilities", "utilties": "utilities",
	"travel": "travel", "traval": "travel", "travl": "travel",
	"health": "health", "helth": "health",
	"saving": "savings", "savings": "savings",
	"salary": "income", "bonus": "income",
	"misc": "misc", "other": "misc", "others": "misc",
}

// CanonicalCategory lowercases and trims raw, then maps it through the
// default synonym table. Unknown labels are returned as-is (lowered and
// trimmed).
func CanonicalCategory(raw string) string {
	return CanonicalWith(raw, defaultSynonyms)
}

// CanonicalWith is CanonicalCategory against a caller-supplied table.
func CanonicalWith(raw string, table map[string]string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if mapped, ok := table[s]; ok {
		return mapped
	}
	return s
}

// MergedSynonyms returns a copy of the default table with overrides
// applied on top. Override keys are lowered and trimmed to match lookup.
func MergedSynonyms(overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(defaultSynonyms)+len(overrides))
	for k, v := range defaultSynonyms {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}
	return merged
}
