package service_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microlend/lending-console/internal/domain/service"
)

func TestRepaymentCalculator_PrivilegedOrganizationRate(t *testing.T) {
	calc := service.NewRepaymentCalculator()

	// 100000 over 12 months at 4.5: (100000/12) * (1 + 0.045*12) = 12833.33.
	snap := calc.Compute(
		"NIGERIAN POLICE FORCE",
		decimal.NewFromInt(100_000), 12,
		decimal.NewFromInt(80_000),
	)

	assert.Equal(t, "4.5", snap.InterestRate.String())
	assert.Equal(t, "12833.33", snap.MonthlyRepayment.StringFixed(2))
	assert.Equal(t, "154000.00", snap.TotalRepayment.StringFixed(2))
}

func TestRepaymentCalculator_PrivilegedMatchIsCaseInsensitive(t *testing.T) {
	calc := service.NewRepaymentCalculator()

	for _, org := range []string{
		"nigerian police force",
		"Nigerian Police Force",
		"  NIGERIAN POLICE FORCE  ",
	} {
		snap := calc.Compute(org, decimal.NewFromInt(100_000), 12, decimal.NewFromInt(80_000))
		assert.Equal(t, "4.5", snap.InterestRate.String(), "org %q", org)
	}
}

func TestRepaymentCalculator_FallbackRate(t *testing.T) {
	calc := service.NewRepaymentCalculator()

	// Any other organization: (100000/12) * (1 + 0.05*12) = 13333.33.
	snap := calc.Compute(
		"ANY OTHER",
		decimal.NewFromInt(100_000), 12,
		decimal.NewFromInt(80_000),
	)

	assert.Equal(t, "5", snap.InterestRate.String())
	assert.Equal(t, "13333.33", snap.MonthlyRepayment.StringFixed(2))
	assert.Equal(t, "160000.00", snap.TotalRepayment.StringFixed(2))
}

func TestRepaymentCalculator_DegenerateInputsYieldZeroSnapshot(t *testing.T) {
	calc := service.NewRepaymentCalculator()

	cases := []struct {
		name      string
		principal decimal.Decimal
		tenor     int
	}{
		{"zero principal", decimal.Zero, 12},
		{"zero tenor", decimal.NewFromInt(100_000), 0},
		{"negative principal", decimal.NewFromInt(-5), 12},
		{"negative tenor", decimal.NewFromInt(100_000), -1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := calc.Compute("ANY", tc.principal, tc.tenor, decimal.NewFromInt(80_000))
			assert.True(t, snap.MonthlyRepayment.IsZero())
			assert.True(t, snap.TotalRepayment.IsZero())
			assert.True(t, snap.EligibleAmount.IsZero())
			assert.True(t, snap.InterestRate.IsZero())
		})
	}
}

func TestRepaymentCalculator_IsPure(t *testing.T) {
	calc := service.NewRepaymentCalculator()

	first := calc.Compute("ACME LTD", decimal.NewFromInt(250_000), 18, decimal.NewFromInt(120_000))
	second := calc.Compute("ACME LTD", decimal.NewFromInt(250_000), 18, decimal.NewFromInt(120_000))

	assert.True(t, first.EligibleAmount.Equal(second.EligibleAmount))
	assert.True(t, first.MonthlyRepayment.Equal(second.MonthlyRepayment))
	assert.True(t, first.TotalRepayment.Equal(second.TotalRepayment))
	assert.True(t, first.InterestRate.Equal(second.InterestRate))
}

func TestRepaymentCalculator_EligibleAmountRespectsPolicyCap(t *testing.T) {
	calc := service.NewRepaymentCalculator()

	netPay := decimal.NewFromInt(100_000)
	eligible := calc.EligibleAmount("ACME LTD", netPay, 12)
	require.False(t, eligible.IsZero())

	// The installment on the eligible amount must not exceed the capped share
	// of net pay (33% for the fallback policy).
	snap := calc.Compute("ACME LTD", eligible, 12, netPay)
	maxInstallment := netPay.Mul(decimal.NewFromFloat(0.33))
	assert.True(t, snap.MonthlyRepayment.LessThanOrEqual(maxInstallment.Add(decimal.NewFromFloat(0.01))),
		"installment %s exceeds cap %s", snap.MonthlyRepayment, maxInstallment)

	// The privileged organization carries a higher cap and lower rate, so its
	// ceiling is strictly higher for the same net pay.
	privileged := calc.EligibleAmount("NIGERIAN POLICE FORCE", netPay, 12)
	assert.True(t, privileged.GreaterThan(eligible))
}

func TestRepaymentCalculator_ZeroNetPayMeansNothingEligible(t *testing.T) {
	calc := service.NewRepaymentCalculator()

	snap := calc.Compute("ACME LTD", decimal.NewFromInt(50_000), 12, decimal.Zero)
	assert.True(t, snap.EligibleAmount.IsZero())
	// Repayment terms for the requested principal are still computed.
	assert.False(t, snap.MonthlyRepayment.IsZero())
}
