package commission

import (
	"time"

	"github.com/shopspring/decimal"
)

// AgentMonthAggregate is one agent's summed premiums for one calendar month,
// with the salary-model and deduction context already resolved. It is derived
// on every read and never persisted.
type AgentMonthAggregate struct {
	AgentName     string
	AgentID       *string
	Month         string // YYYY-MM
	Office        string
	SalaryModelID string

	LivPremium   decimal.Decimal
	SkadePremium decimal.Decimal
	TotalPremium decimal.Decimal
	LivCount     int
	SkadeCount   int
	TotalCount   int

	MonthsEmployed   int
	ApplyFivePercent bool
}

// Result is one computed commission for an agent-month. GrossCommission and
// NetCommission are deliberately separate fields; callers must never
// substitute one for the other.
type Result struct {
	BaseCommissionLiv   decimal.Decimal
	BaseCommissionSkade decimal.Decimal
	BaseCommission      decimal.Decimal
	BonusCommission     decimal.Decimal

	// GrossCommission is base + bonus commission, before any deduction. This
	// is the figure frozen into an approval record.
	GrossCommission decimal.Decimal

	FivePercentDeduction    decimal.Decimal
	TjenestetorgetDeduction decimal.Decimal
	ByttDeduction           decimal.Decimal
	OtherDeductions         decimal.Decimal

	BaseSalary         decimal.Decimal
	DiscretionaryBonus decimal.Decimal

	// NetCommission = gross − five-percent − tender deductions + base salary
	// + discretionary bonus. The payable amount.
	NetCommission decimal.Decimal
}

// ApprovalRecord is the authoritative snapshot of a commission computation for
// one (agent, month). The approved and revoked flags are independent: a record
// counts as approved only when approved is true AND revoked is false.
type ApprovalRecord struct {
	ID        string
	AgentName string
	Month     string // YYYY-MM

	Approved           bool
	ApprovedCommission decimal.Decimal // gross figure at approval time
	ApprovedBy         *string
	ApprovedAt         *time.Time
	Comment            *string
	SalaryModelID      *string

	// Deduction context frozen at approval time.
	TjenestetorgetDeduction decimal.Decimal
	ByttDeduction           decimal.Decimal
	OtherDeductions         decimal.Decimal
	FivePercentApplied      bool

	Revoked          bool
	RevokedBy        *string
	RevokedAt        *time.Time
	RevocationReason *string

	// Version guards concurrent approvals: every write bumps it and a write
	// with a stale version fails instead of silently overwriting.
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsApproved reports whether the record counts toward approved totals.
func (a ApprovalRecord) IsApproved() bool {
	return a.Approved && !a.Revoked
}
