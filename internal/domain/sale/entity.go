package sale

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleRecord is one imported policy sale line. AgentID is the durable link to
// the roster; legacy imports carry only the agent's name.
type SaleRecord struct {
	ID              string
	AgentID         *string
	AgentName       string
	PolicySaleDate  time.Time
	CommissionGroup string
	NetPremium      decimal.Decimal
	CancelCode      string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Cancelled reports whether the sale carries any cancel code. Cancelled sales
// are kept for audit but never counted.
func (s SaleRecord) Cancelled() bool {
	return s.CancelCode != ""
}
