package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zenitherp/payroll_backend/internal/utils/money"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"plain number", "85000", "85000", true},
		{"naira symbol and commas", "₦1,250,000.50", "1250000.5", true},
		{"currency code with space", "NGN 85,000", "85000", true},
		{"embedded spaces", " 1 200 ", "1200", true},
		{"negative passes through", "-500", "-500", true},
		{"empty degrades to zero", "", "0", false},
		{"whitespace only degrades to zero", "   ", "0", false},
		{"garbage degrades to zero", "twelve naira", "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := money.ParseAmount(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got.String())
		})
	}
}
