package paye

import "github.com/shopspring/decimal"

// Statutory constants for the Nigerian consolidated relief allowance.
// The fixed floor and both percentage terms are policy values and must not
// be changed without sign-off from whoever owns the payroll policy.
var (
	reliefFloor   = decimal.NewFromInt(200000)
	reliefGrossPc = decimal.NewFromFloat(0.01) // 1% of gross annual
	reliefRatePc  = decimal.NewFromFloat(0.20) // 20% of gross annual
)

// band is one bracket of the progressive table. Width is the size of the
// bracket, not a cumulative ceiling; a zero width marks the unbounded tail.
type band struct {
	Width decimal.Decimal
	Rate  decimal.Decimal
}

var taxBands = []band{
	{Width: decimal.NewFromInt(300000), Rate: decimal.NewFromFloat(0.07)},
	{Width: decimal.NewFromInt(300000), Rate: decimal.NewFromFloat(0.11)},
	{Width: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.15)},
	{Width: decimal.NewFromInt(500000), Rate: decimal.NewFromFloat(0.19)},
	{Width: decimal.NewFromInt(1600000), Rate: decimal.NewFromFloat(0.21)},
	{Width: decimal.Zero, Rate: decimal.NewFromFloat(0.24)},
}

// ReliefAllowance computes the consolidated relief allowance on an annual
// gross figure: max(200,000, 1% of gross) + 20% of gross.
func ReliefAllowance(grossAnnual decimal.Decimal) decimal.Decimal {
	grossAnnual = clampNonNegative(grossAnnual)
	onePct := grossAnnual.Mul(reliefGrossPc)
	base := reliefFloor
	if onePct.GreaterThan(base) {
		base = onePct
	}
	return base.Add(grossAnnual.Mul(reliefRatePc))
}

// TaxableIncome is annual gross less relief, floored at zero.
func TaxableIncome(grossAnnual decimal.Decimal) decimal.Decimal {
	grossAnnual = clampNonNegative(grossAnnual)
	return clampNonNegative(grossAnnual.Sub(ReliefAllowance(grossAnnual)))
}

// AnnualTax walks the progressive bands over the taxable income derived from
// grossAnnual and returns the total annual PAYE liability. The result is
// non-negative and non-decreasing in grossAnnual; callers divide by twelve
// for the monthly deduction.
func AnnualTax(grossAnnual decimal.Decimal) decimal.Decimal {
	remaining := TaxableIncome(grossAnnual)
	tax := decimal.Zero
	for _, b := range taxBands {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		slab := remaining
		if !b.Width.IsZero() && b.Width.LessThan(remaining) {
			slab = b.Width
		}
		tax = tax.Add(slab.Mul(b.Rate))
		remaining = remaining.Sub(slab)
	}
	return tax
}

func clampNonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
