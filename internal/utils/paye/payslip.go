package paye

import (
	"github.com/shopspring/decimal"

	"github.com/zenitherp/payroll_backend/internal/core/domain"
)

// Flat statutory deduction and allowance rates applied to every payslip.
var (
	allowanceRate = decimal.NewFromFloat(0.15)  // transport + housing, on basic
	pensionRate   = decimal.NewFromFloat(0.08)  // on monthly gross
	nhfRate       = decimal.NewFromFloat(0.025) // on basic only
	twelve        = decimal.NewFromInt(12)
	oneHundred    = decimal.NewFromInt(100)
)

// RunOptions are the per-run knobs applied to every employee's payslip.
type RunOptions struct {
	Include13thMonth   bool
	CashBenefitPercent decimal.Decimal // 0..100, applied to basic
}

// ComputeLine builds a full payslip from a monthly basic salary. It is pure
// and never fails; a zero basic yields a zero payslip.
//
// Tax is computed by annualizing the current month's gross (x12) rather than
// a year-to-date figure, so a bonus month lands in a higher bracket and is
// taxed more heavily in that month alone. That is the calibrated behaviour;
// do not switch to trailing annual income without product sign-off.
//
// Every money field is rounded to 2dp before the net is derived, so
// net == gross - paye - pension - nhf holds exactly on the stored values.
func ComputeLine(basic decimal.Decimal, opts RunOptions) domain.PayrollLine {
	basic = clampNonNegative(basic).Round(2)

	allowances := basic.Mul(allowanceRate).Round(2)
	bonus := decimal.Zero
	if opts.Include13thMonth {
		bonus = basic
	}
	cashBenefits := basic.Mul(clampNonNegative(opts.CashBenefitPercent)).Div(oneHundred).Round(2)

	gross := basic.Add(allowances).Add(bonus).Add(cashBenefits)
	annualGross := gross.Mul(twelve)

	paye := AnnualTax(annualGross).Div(twelve).Round(2)
	cra := ReliefAllowance(annualGross).Div(twelve).Round(2)
	taxable := TaxableIncome(annualGross).Div(twelve).Round(2)

	pension := gross.Mul(pensionRate).Round(2)
	nhf := basic.Mul(nhfRate).Round(2)
	net := gross.Sub(paye).Sub(pension).Sub(nhf)

	return domain.PayrollLine{
		BasicSalary:  basic,
		Allowances:   allowances,
		Bonus:        bonus,
		CashBenefits: cashBenefits,
		GrossPay:     gross,
		Cra:          cra,
		Taxable:      taxable,
		Paye:         paye,
		Pension:      pension,
		Nhf:          nhf,
		NetPay:       net,
	}
}
