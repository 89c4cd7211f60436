package paye_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenitherp/payroll_backend/internal/utils/paye"
)

func TestComputeLine_StandardMonth(t *testing.T) {
	// One employee on 1,000,000/month, no bonus, no cash benefits.
	line := paye.ComputeLine(d("1000000"), paye.RunOptions{})

	assert.True(t, d("150000").Equal(line.Allowances), "allowances: %s", line.Allowances)
	assert.True(t, line.Bonus.IsZero())
	assert.True(t, line.CashBenefits.IsZero())
	assert.True(t, d("1150000").Equal(line.GrossPay), "gross: %s", line.GrossPay)
	// Annual gross 13.8M: relief 2.96M, taxable 10.84M, annual tax 2,393,600.
	assert.True(t, d("199466.67").Equal(line.Paye), "paye: %s", line.Paye)
	assert.True(t, d("246666.67").Equal(line.Cra), "cra: %s", line.Cra)
	assert.True(t, d("903333.33").Equal(line.Taxable), "taxable: %s", line.Taxable)
	assert.True(t, d("92000").Equal(line.Pension), "pension: %s", line.Pension)
	assert.True(t, d("25000").Equal(line.Nhf), "nhf: %s", line.Nhf)
	assert.True(t, d("833533.33").Equal(line.NetPay), "net: %s", line.NetPay)
}

func TestComputeLine_ThirteenthMonthTaxedHeavier(t *testing.T) {
	basic := d("500000")
	plain := paye.ComputeLine(basic, paye.RunOptions{})
	bonus := paye.ComputeLine(basic, paye.RunOptions{Include13thMonth: true})

	assert.True(t, basic.Equal(bonus.Bonus))
	assert.True(t, d("1075000").Equal(bonus.GrossPay), "gross: %s", bonus.GrossPay)
	assert.True(t, d("89066.67").Equal(plain.Paye), "plain paye: %s", plain.Paye)
	assert.True(t, d("185066.67").Equal(bonus.Paye), "bonus paye: %s", bonus.Paye)

	// Annualizing the bonus month pushes it into a higher effective rate:
	// the bonus month pays more than double the plain month's tax.
	assert.True(t, bonus.Paye.GreaterThan(plain.Paye.Mul(d("2"))))
}

func TestComputeLine_CashBenefitPercent(t *testing.T) {
	line := paye.ComputeLine(d("200000"), paye.RunOptions{CashBenefitPercent: d("10")})

	assert.True(t, d("20000").Equal(line.CashBenefits), "cash: %s", line.CashBenefits)
	assert.True(t, d("30000").Equal(line.Allowances))
	assert.True(t, d("250000").Equal(line.GrossPay))
	// Annual gross 3M: relief 800k, taxable 2.2M, annual tax 350,000.
	assert.True(t, d("29166.67").Equal(line.Paye), "paye: %s", line.Paye)
	assert.True(t, d("20000").Equal(line.Pension))
	assert.True(t, d("5000").Equal(line.Nhf))
	assert.True(t, d("195833.33").Equal(line.NetPay), "net: %s", line.NetPay)
}

func TestComputeLine_ZeroAndNegativeBasic(t *testing.T) {
	for _, basic := range []string{"0", "-100"} {
		line := paye.ComputeLine(d(basic), paye.RunOptions{Include13thMonth: true, CashBenefitPercent: d("25")})
		assert.True(t, line.GrossPay.IsZero(), "basic %s gross: %s", basic, line.GrossPay)
		assert.True(t, line.Paye.IsZero())
		assert.True(t, line.NetPay.IsZero())
	}
}

func TestComputeLine_NetIdentity(t *testing.T) {
	// net == gross - paye - pension - nhf must hold exactly on stored values.
	basics := []string{"85000", "123456.78", "500000", "1000000", "9999999.99"}
	opts := []paye.RunOptions{
		{},
		{Include13thMonth: true},
		{CashBenefitPercent: d("12.5")},
		{Include13thMonth: true, CashBenefitPercent: d("100")},
	}

	for _, b := range basics {
		for _, o := range opts {
			line := paye.ComputeLine(d(b), o)
			lhs := line.GrossPay.Sub(line.Paye).Sub(line.Pension).Sub(line.Nhf)
			assert.True(t, lhs.Equal(line.NetPay), "basic %s opts %+v: %s != %s", b, o, lhs, line.NetPay)
		}
	}
}
