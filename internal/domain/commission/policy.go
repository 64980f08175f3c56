package commission

import "github.com/shopspring/decimal"

// Policy centralizes the fallback defaults and deduction rules that both the
// aggregator and the engine apply. One value is built from config at startup
// and injected into both, so the fallbacks live in exactly one place.
type Policy struct {
	// DefaultSalaryModelID is used when an agent's model cannot be resolved.
	DefaultSalaryModelID string
	// UnknownOfficeLabel is assigned to agents missing from the roster.
	UnknownOfficeLabel string
	// TenureMonths is the employment length below which the tenure deduction
	// applies (unless manually overridden).
	TenureMonths int
	// TenureDeductionRate is the proportional deduction on gross commission,
	// e.g. 0.05 for the five percent rule.
	TenureDeductionRate decimal.Decimal
}

// DefaultPolicy mirrors the long-standing production rules: model "1",
// "Ukjent" office, 5% under 9 months.
func DefaultPolicy() Policy {
	return Policy{
		DefaultSalaryModelID: "1",
		UnknownOfficeLabel:   "Ukjent",
		TenureMonths:         9,
		TenureDeductionRate:  decimal.NewFromFloat(0.05),
	}
}
