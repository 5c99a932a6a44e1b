package service

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// RepaymentCalculator – domain service for eligibility and repayment terms
// ---------------------------------------------------------------------------

// EligibilitySnapshot holds the derived repayment terms for a requested loan.
// It is recomputed whenever organization, principal, or tenor changes and is
// never persisted on its own.
type EligibilitySnapshot struct {
	EligibleAmount   decimal.Decimal
	MonthlyRepayment decimal.Decimal
	TotalRepayment   decimal.Decimal
	InterestRate     decimal.Decimal
}

// ZeroSnapshot is the defined result for degenerate inputs (zero principal,
// tenor, or rate). Returning it instead of an error lets the consuming screen
// recompute on every keystroke without special-casing empty fields.
func ZeroSnapshot() EligibilitySnapshot {
	return EligibilitySnapshot{
		EligibleAmount:   decimal.Zero,
		MonthlyRepayment: decimal.Zero,
		TotalRepayment:   decimal.Zero,
		InterestRate:     decimal.Zero,
	}
}

// OrganizationPolicy binds an organization-name predicate to the lending
// terms that apply to its employees. Rates and affordability coefficients are
// policy data, not code: adding an organization means appending an entry, not
// branching at call sites.
type OrganizationPolicy struct {
	// Name labels the policy for diagnostics.
	Name string
	// Matches reports whether the policy applies to the given organization.
	Matches func(organization string) bool
	// InterestRate is the flat rate in percent applied per the repayment formula.
	InterestRate decimal.Decimal
	// RepaymentCap is the share of monthly net pay that may service the loan.
	RepaymentCap decimal.Decimal
}

// RepaymentCalculator resolves the applicable policy for an organization and
// derives eligibility and repayment terms. It is pure: same inputs, same
// snapshot.
type RepaymentCalculator struct {
	policies []OrganizationPolicy
	fallback OrganizationPolicy
}

// equalsFold returns a predicate matching the given name case-insensitively.
func equalsFold(name string) func(string) bool {
	return func(org string) bool {
		return strings.EqualFold(strings.TrimSpace(org), name)
	}
}

// NewRepaymentCalculator returns a calculator loaded with the current policy
// table: one privileged organization at a reduced rate and a flat fallback
// for everyone else.
func NewRepaymentCalculator() *RepaymentCalculator {
	return &RepaymentCalculator{
		policies: []OrganizationPolicy{
			{
				Name:         "nigerian-police-force",
				Matches:      equalsFold("NIGERIAN POLICE FORCE"),
				InterestRate: decimal.NewFromFloat(4.5),
				RepaymentCap: decimal.NewFromFloat(0.5),
			},
		},
		fallback: OrganizationPolicy{
			Name:         "default",
			Matches:      func(string) bool { return true },
			InterestRate: decimal.NewFromFloat(5.0),
			RepaymentCap: decimal.NewFromFloat(0.33),
		},
	}
}

// PolicyFor resolves the policy that applies to the given organization.
func (c *RepaymentCalculator) PolicyFor(organization string) OrganizationPolicy {
	for _, p := range c.policies {
		if p.Matches(organization) {
			return p
		}
	}
	return c.fallback
}

// Compute derives the eligibility snapshot for the requested terms.
//
// The installment formula is simple, non-amortizing interest:
//
//	installment = (principal / tenor) * (1 + rate/100 * tenor)
//	total       = installment * tenor
//
// Rounding to 2 decimal places happens after the full-precision computation,
// so total remains principal * (1 + rate/100 * tenor) to the cent.
func (c *RepaymentCalculator) Compute(
	organization string,
	principal decimal.Decimal,
	tenorMonths int,
	netPay decimal.Decimal,
) EligibilitySnapshot {
	policy := c.PolicyFor(organization)

	if principal.LessThanOrEqual(decimal.Zero) || tenorMonths <= 0 || policy.InterestRate.IsZero() {
		return ZeroSnapshot()
	}

	tenor := decimal.NewFromInt(int64(tenorMonths))
	growth := decimal.NewFromInt(1).Add(
		policy.InterestRate.Div(decimal.NewFromInt(100)).Mul(tenor),
	)

	installment := principal.Div(tenor).Mul(growth)
	total := installment.Mul(tenor)

	return EligibilitySnapshot{
		EligibleAmount:   c.eligibleAmount(policy, netPay, tenor, growth),
		MonthlyRepayment: installment.Round(2),
		TotalRepayment:   total.Round(2),
		InterestRate:     policy.InterestRate,
	}
}

// EligibleAmount derives the affordability cap on its own, for screens that
// need the ceiling before a principal has been entered.
func (c *RepaymentCalculator) EligibleAmount(
	organization string,
	netPay decimal.Decimal,
	tenorMonths int,
) decimal.Decimal {
	policy := c.PolicyFor(organization)
	if tenorMonths <= 0 || policy.InterestRate.IsZero() {
		return decimal.Zero
	}

	tenor := decimal.NewFromInt(int64(tenorMonths))
	growth := decimal.NewFromInt(1).Add(
		policy.InterestRate.Div(decimal.NewFromInt(100)).Mul(tenor),
	)
	return c.eligibleAmount(policy, netPay, tenor, growth)
}

// eligibleAmount inverts the installment formula at the policy's repayment
// cap: the largest principal whose installment stays within the capped share
// of monthly net pay.
func (c *RepaymentCalculator) eligibleAmount(
	policy OrganizationPolicy,
	netPay decimal.Decimal,
	tenor decimal.Decimal,
	growth decimal.Decimal,
) decimal.Decimal {
	if netPay.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	maxInstallment := netPay.Mul(policy.RepaymentCap)
	return maxInstallment.Mul(tenor).Div(growth).Round(2)
}
