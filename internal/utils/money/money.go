package money

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var symbolReplacer = strings.NewReplacer("₦", "", "NGN", "", ",", "")

// ParseAmount normalizes a possibly-formatted currency string ("₦1,250,000.50",
// "NGN 85000", " 1 200 ") into a decimal. Empty or unparseable input yields
// zero with ok=false; callers decide whether the leniency is worth a warning.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := symbolReplacer.Replace(raw)
	cleaned = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, cleaned)
	if cleaned == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
