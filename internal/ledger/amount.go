package ledger

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MaxAmount is the upper clip applied to every parsed amount. There is no
// lower clip: negative amounts (refunds) pass through unchanged.
const MaxAmount = 1_000_000

var (
	reParenNegative = regexp.MustCompile(`\(([$€£\d.,\s]+)\)`)
	reNonNumeric    = regexp.MustCompile(`[^\d.-]`)
	reDotMinus      = regexp.MustCompile(`^\.-`)

	maxAmountDec = decimal.NewFromInt(MaxAmount)
)

// ParseAmount repairs noisy currency text and parses it as a decimal.
// The repair steps run in a fixed order:
//
//  1. trim whitespace
//  2. rewrite accounting-style "(N)" to "-N", where N may carry commas
//     and currency symbols
//  3. strip everything that is not a digit, dot, or minus
//  4. rewrite a leading ".-" to "-"
//  5. parse; any failure yields 0.0
//  6. clip to MaxAmount
//
// Parse failures never drop the row, they coerce the amount to zero.
func ParseAmount(raw string) float64 {
	f, _ := parseAmount(raw)
	return f
}

// parseAmount additionally reports whether the text actually parsed, so
// the reader can count coerced zeros without treating real zero amounts
// as repairs.
func parseAmount(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	s = reParenNegative.ReplaceAllString(s, "-$1")
	s = reNonNumeric.ReplaceAllString(s, "")
	s = reDotMinus.ReplaceAllString(s, "-")

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0.0, false
	}
	if d.GreaterThan(maxAmountDec) {
		d = maxAmountDec
	}
	f, _ := d.Float64()
	return f, true
}
