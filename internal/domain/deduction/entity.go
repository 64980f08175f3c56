package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// TenderDeduction holds the flat per-agent-month deduction amounts sourced
// from the tender/office dataset. Amounts are kroner, not percentages.
type TenderDeduction struct {
	ID             string
	AgentName      string
	Month          string // YYYY-MM
	Tjenestetorget decimal.Decimal
	Bytt           decimal.Decimal
	Other          decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
